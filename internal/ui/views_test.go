package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sugarstack/sweetshop-cli/internal/models"
)

func TestPickSweet(t *testing.T) {
	sweets := []models.Sweet{{ID: "a", Name: "Ladoo"}, {ID: "b", Name: "Barfi"}}

	picked, ok := pickSweet(sweets, "2")
	require.True(t, ok)
	assert.Equal(t, "Barfi", picked.Name)

	_, ok = pickSweet(sweets, "0")
	assert.False(t, ok)
	_, ok = pickSweet(sweets, "3")
	assert.False(t, ok)
	_, ok = pickSweet(sweets, "two")
	assert.False(t, ok)
	_, ok = pickSweet(nil, "1")
	assert.False(t, ok)
}

func TestParsePrice(t *testing.T) {
	require.NotNil(t, parsePrice("10.50"))
	assert.Equal(t, 10.5, *parsePrice(" 10.50 "))
	assert.Nil(t, parsePrice(""))
	assert.Nil(t, parsePrice("ten"))
}

func TestParseQuantity(t *testing.T) {
	require.NotNil(t, parseQuantity("5"))
	assert.Equal(t, 5, *parseQuantity(" 5 "))
	assert.Nil(t, parseQuantity(""))
	assert.Nil(t, parseQuantity("5.5"))
}
