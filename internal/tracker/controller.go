package tracker

import (
	"fmt"
	"sync"
	"time"

	"github.com/platewatch/platewatch/internal/models"
)

// Controller is the single owner of the plate state and refresh status.
// All reads and writes from the tray, the refresh job and the file watcher
// go through it.
type Controller struct {
	mu     sync.RWMutex
	state  models.PlateState
	status Status

	// saveMu orders in-memory swaps with their writes to the store.
	saveMu sync.Mutex

	store   Store
	display Requester
	now     func() time.Time
}

// Option configures a Controller.
type Option func(*Controller)

// WithClock overrides the wall clock used for projections and timestamps.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) {
		c.now = now
	}
}

// NewController creates a controller holding initial.
func NewController(initial *models.PlateState, store Store, display Requester, opts ...Option) *Controller {
	c := &Controller{
		store:   store,
		display: display,
		now:     time.Now,
	}
	if initial != nil {
		c.state = *initial
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.state.UpdatedAt.IsZero() {
		c.state.UpdatedAt = c.now().UTC()
	}
	return c
}

// LoadController creates a controller from the state held in store.
func LoadController(store Store, display Requester, opts ...Option) (*Controller, error) {
	state, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load plates: %w", err)
	}
	return NewController(state, store, display, opts...), nil
}

// SetDisplay attaches the display that mutations notify.
func (c *Controller) SetDisplay(display Requester) {
	c.mu.Lock()
	c.display = display
	c.mu.Unlock()
}

// DisplayFields returns the counts projected to the current time.
func (c *Controller) DisplayFields() models.PlateInfo {
	c.mu.RLock()
	state := c.state
	c.mu.RUnlock()
	return state.Project(c.now())
}

// State returns a copy of the stored state.
func (c *Controller) State() models.PlateState {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

// Status returns the refresh status.
func (c *Controller) Status() Status {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.status
}

// SetStatus replaces the refresh status and requests a render.
func (c *Controller) SetStatus(s Status) {
	c.mu.Lock()
	c.status = s
	display := c.display
	c.mu.Unlock()

	if display != nil {
		display.Request()
	}
}

// SetCounts replaces both counters, stamps them with the current time,
// requests a render and writes the new state to the store. The in-memory
// state keeps the new counts even when the write fails.
func (c *Controller) SetCounts(primary, overflow int) error {
	next := models.NewPlateState(primary, overflow, c.now())
	if err := next.Validate(); err != nil {
		return err
	}

	c.saveMu.Lock()
	defer c.saveMu.Unlock()

	c.mu.Lock()
	c.state = *next
	display := c.display
	c.mu.Unlock()

	if display != nil {
		display.Request()
	}

	if c.store == nil {
		return nil
	}
	if err := c.store.Save(next); err != nil {
		return fmt.Errorf("failed to save plates: %w", err)
	}
	return nil
}

// Replace swaps in a state that is already persisted, such as one written
// by another process. It returns false when state matches the current one.
func (c *Controller) Replace(state *models.PlateState) (bool, error) {
	if err := state.Validate(); err != nil {
		return false, err
	}

	c.saveMu.Lock()
	defer c.saveMu.Unlock()

	c.mu.Lock()
	if c.state.Equal(state) {
		c.mu.Unlock()
		return false, nil
	}
	c.state = *state
	display := c.display
	c.mu.Unlock()

	if display != nil {
		display.Request()
	}
	return true, nil
}
