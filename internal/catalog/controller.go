// Package catalog owns the client-side snapshot of the sweet inventory. The
// snapshot is never authoritative: it is replaced wholesale by the result of
// the newest fetch, and every successful mutation triggers one full refetch
// rather than a local patch.
package catalog

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/sugarstack/sweetshop-cli/internal/api"
	"github.com/sugarstack/sweetshop-cli/internal/models"
	"github.com/sugarstack/sweetshop-cli/internal/models/dto"
)

// SweetAPI captures the inventory operations the controller needs from the
// API client.
type SweetAPI interface {
	ListSweets(ctx context.Context) ([]models.Sweet, error)
	SearchSweets(ctx context.Context, name string) ([]models.Sweet, error)
	CreateSweet(ctx context.Context, input dto.SweetInput) (models.Sweet, error)
	UpdateSweet(ctx context.Context, id string, input dto.SweetInput) (models.Sweet, error)
	DeleteSweet(ctx context.Context, id string) error
	PurchaseSweet(ctx context.Context, id string) (models.Sweet, error)
}

// Notifier is the slice of the toast store the controller reports through.
type Notifier interface {
	Success(message string)
	Error(message string)
}

// DefaultDebounce is the quiet period a query must survive before a search
// request fires.
const DefaultDebounce = 500 * time.Millisecond

// Controller fetches and caches the sweet catalog. It is the only writer of
// the list snapshot.
type Controller struct {
	api      SweetAPI
	toasts   Notifier
	validate *validator.Validate
	log      *logrus.Logger
	debounce time.Duration

	// seq is bumped when a fetch is issued; a response only lands while its
	// sequence number is still the newest issued, so a stale search result can
	// never overwrite a fresher one.
	seq atomic.Uint64

	mu      sync.Mutex
	sweets  []models.Sweet
	pending *time.Timer
}

// New builds a controller. A non-positive debounce falls back to
// DefaultDebounce.
func New(sweetAPI SweetAPI, toasts Notifier, debounce time.Duration, log *logrus.Logger) *Controller {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Controller{
		api:      sweetAPI,
		toasts:   toasts,
		validate: validator.New(),
		log:      log,
		debounce: debounce,
	}
}

// Sweets returns a copy of the current snapshot.
func (c *Controller) Sweets() []models.Sweet {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.Sweet, len(c.sweets))
	copy(out, c.sweets)
	return out
}

// ListAll fetches the full catalog and replaces the snapshot.
func (c *Controller) ListAll(ctx context.Context) error {
	return c.fetch(ctx, "")
}

// Search fetches entries matching query and replaces the snapshot. An empty
// or whitespace query lists everything instead.
func (c *Controller) Search(ctx context.Context, query string) error {
	return c.fetch(ctx, query)
}

// SetQuery feeds one keystroke-level change of the search box. Each call
// restarts the debounce timer; only the last query still pending when the
// quiet period elapses fires a request.
func (c *Controller) SetQuery(query string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.pending != nil {
		c.pending.Stop()
	}
	c.pending = time.AfterFunc(c.debounce, func() {
		c.fetch(context.Background(), query)
	})
}

// fetch issues a sequenced catalog read. The result is discarded when a newer
// fetch was issued while this one was in flight.
func (c *Controller) fetch(ctx context.Context, query string) error {
	seq := c.seq.Add(1)

	var (
		sweets []models.Sweet
		err    error
	)
	if strings.TrimSpace(query) == "" {
		sweets, err = c.api.ListSweets(ctx)
		if err != nil {
			c.toasts.Error(api.Message(err, "Failed to fetch sweets"))
			return err
		}
	} else {
		sweets, err = c.api.SearchSweets(ctx, query)
		if err != nil {
			c.toasts.Error(api.Message(err, "Search failed"))
			return err
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if seq != c.seq.Load() {
		c.log.WithFields(logrus.Fields{"seq": seq, "latest": c.seq.Load()}).Debug("discarding stale catalog response")
		return nil
	}
	c.sweets = sweets
	return nil
}

// Purchase requests a one-unit stock decrement. The quantity is never
// decremented locally: success is reflected by the follow-up refetch, and a
// lost out-of-stock race surfaces as the server's error message.
func (c *Controller) Purchase(ctx context.Context, id, name string) error {
	if _, err := c.api.PurchaseSweet(ctx, id); err != nil {
		c.toasts.Error(api.Message(err, "Purchase failed"))
		return err
	}
	c.toasts.Success(fmt.Sprintf("Successfully purchased %s!", name))
	return c.ListAll(ctx)
}

// Create validates and submits a new sweet. Validation failure short-circuits
// with an error toast before any network call.
func (c *Controller) Create(ctx context.Context, input dto.SweetInput) error {
	input, err := c.validateInput(input)
	if err != nil {
		c.toasts.Error("Please fill in all fields")
		return err
	}
	if _, err := c.api.CreateSweet(ctx, input); err != nil {
		c.toasts.Error(api.Message(err, "Failed to add sweet"))
		return err
	}
	c.toasts.Success("Sweet added successfully!")
	return c.ListAll(ctx)
}

// Update fully replaces the four mutable fields of a sweet.
func (c *Controller) Update(ctx context.Context, id string, input dto.SweetInput) error {
	input, err := c.validateInput(input)
	if err != nil {
		c.toasts.Error("Please fill in all fields")
		return err
	}
	if _, err := c.api.UpdateSweet(ctx, id, input); err != nil {
		c.toasts.Error(api.Message(err, "Failed to update sweet"))
		return err
	}
	c.toasts.Success("Sweet updated successfully!")
	return c.ListAll(ctx)
}

// Delete removes a sweet. Callers must have confirmed with the user first;
// the controller only performs the call and reports the outcome.
func (c *Controller) Delete(ctx context.Context, id, name string) error {
	if err := c.api.DeleteSweet(ctx, id); err != nil {
		c.toasts.Error(api.Message(err, "Failed to delete sweet"))
		return err
	}
	c.toasts.Success(fmt.Sprintf("%q deleted successfully", name))
	return c.ListAll(ctx)
}

// validateInput trims the text fields and checks presence and non-negativity.
func (c *Controller) validateInput(input dto.SweetInput) (dto.SweetInput, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Category = strings.TrimSpace(input.Category)
	if err := c.validate.Struct(input); err != nil {
		return input, fmt.Errorf("invalid sweet input: %w", err)
	}
	return input, nil
}
