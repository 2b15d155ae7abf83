package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/sugarstack/sweetshop-cli/internal/models"
	"github.com/sugarstack/sweetshop-cli/internal/models/dto"
)

// ListSweets fetches the full catalog snapshot.
func (c *Client) ListSweets(ctx context.Context) ([]models.Sweet, error) {
	var sweets []models.Sweet
	if err := c.do(ctx, http.MethodGet, "/api/sweets", nil, &sweets); err != nil {
		return nil, err
	}
	return sweets, nil
}

// SearchSweets fetches catalog entries whose name matches the query. Match
// semantics are owned by the server.
func (c *Client) SearchSweets(ctx context.Context, name string) ([]models.Sweet, error) {
	var sweets []models.Sweet
	path := "/api/sweets/search?name=" + url.QueryEscape(name)
	if err := c.do(ctx, http.MethodGet, path, nil, &sweets); err != nil {
		return nil, err
	}
	return sweets, nil
}

// CreateSweet submits a new sweet. Admin only.
func (c *Client) CreateSweet(ctx context.Context, input dto.SweetInput) (models.Sweet, error) {
	var sweet models.Sweet
	if err := c.do(ctx, http.MethodPost, "/api/sweets", input, &sweet); err != nil {
		return models.Sweet{}, err
	}
	return sweet, nil
}

// UpdateSweet fully replaces the mutable fields of a sweet. Admin only.
func (c *Client) UpdateSweet(ctx context.Context, id string, input dto.SweetInput) (models.Sweet, error) {
	var sweet models.Sweet
	if err := c.do(ctx, http.MethodPut, "/api/sweets/"+url.PathEscape(id), input, &sweet); err != nil {
		return models.Sweet{}, err
	}
	return sweet, nil
}

// DeleteSweet removes a sweet from the catalog. Admin only.
func (c *Client) DeleteSweet(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/sweets/"+url.PathEscape(id), nil, nil)
}

// PurchaseSweet decrements stock by one unit.
func (c *Client) PurchaseSweet(ctx context.Context, id string) (models.Sweet, error) {
	var sweet models.Sweet
	if err := c.do(ctx, http.MethodPost, "/api/sweets/"+url.PathEscape(id)+"/purchase", struct{}{}, &sweet); err != nil {
		return models.Sweet{}, err
	}
	return sweet, nil
}
