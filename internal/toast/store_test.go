package toast

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPushPreservesInsertionOrder(t *testing.T) {
	s := NewStore(0)
	first := s.Push("one", SeverityInfo)
	second := s.Push("two", SeveritySuccess)
	third := s.Push("three", SeverityError)

	active := s.Active()
	require.Len(t, active, 3)
	assert.Equal(t, []string{first.ID, second.ID, third.ID}, []string{active[0].ID, active[1].ID, active[2].ID})
	assert.Equal(t, "two", active[1].Message)
	assert.Equal(t, SeveritySuccess, active[1].Severity)
}

func TestDismissRemovesOnlyThatToast(t *testing.T) {
	s := NewStore(0)
	keep := s.Push("keep", SeverityInfo)
	gone := s.Push("gone", SeverityWarning)

	s.Dismiss(gone.ID)

	active := s.Active()
	require.Len(t, active, 1)
	assert.Equal(t, keep.ID, active[0].ID)
}

func TestDismissIsIdempotent(t *testing.T) {
	s := NewStore(0)
	toast := s.Push("once", SeverityInfo)

	s.Dismiss(toast.ID)
	s.Dismiss(toast.ID)
	s.Dismiss("never-existed")

	assert.Empty(t, s.Active())
}

func TestToastExpiresAfterTTL(t *testing.T) {
	s := NewStore(0)
	s.Push("short-lived", SeverityInfo, 20*time.Millisecond)

	require.Len(t, s.Active(), 1)
	assert.Eventually(t, func() bool {
		return len(s.Active()) == 0
	}, time.Second, 5*time.Millisecond)
}

func TestDefaultTTLApplied(t *testing.T) {
	s := NewStore(250 * time.Millisecond)
	toast := s.Push("default", SeverityInfo)
	assert.Equal(t, 250*time.Millisecond, toast.TTL)

	explicit := s.Push("explicit", SeverityInfo, time.Minute)
	assert.Equal(t, time.Minute, explicit.TTL)
}

func TestConcurrentPushesNeverCollide(t *testing.T) {
	s := NewStore(time.Minute)

	const workers = 16
	const perWorker = 50

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				s.Push(fmt.Sprintf("w%d-%d", w, i), SeverityInfo)
			}
		}(w)
	}
	wg.Wait()

	active := s.Active()
	require.Len(t, active, workers*perWorker)

	seen := make(map[string]bool, len(active))
	for _, toast := range active {
		assert.False(t, seen[toast.ID], "duplicate toast id %s", toast.ID)
		seen[toast.ID] = true
	}
}

func TestDrainReturnsAndClears(t *testing.T) {
	s := NewStore(time.Minute)
	s.Push("a", SeverityInfo)
	s.Push("b", SeverityError)

	drained := s.Drain()
	require.Len(t, drained, 2)
	assert.Equal(t, "a", drained[0].Message)
	assert.Empty(t, s.Active())
	assert.Empty(t, s.Drain())
}
