// Package reader reads plate counts from the game window by capturing its
// text and retrying until both counts can be parsed.
package reader

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/platewatch/platewatch/internal/models"
	"github.com/platewatch/platewatch/internal/tracker"
)

// ErrWindowNotFound is returned by a Source when the game window is absent.
var ErrWindowNotFound = errors.New("game window not found")

// Source captures the visible text of the game window.
type Source interface {
	Capture(ctx context.Context) (string, error)
}

// Reader polls a Source until it yields both plate counts or times out.
type Reader struct {
	Source  Source
	Timeout time.Duration
	Delay   time.Duration
}

// New creates a Reader for source using the timing from cfg.
func New(source Source, cfg models.ReaderConfig) *Reader {
	return &Reader{
		Source:  source,
		Timeout: cfg.Timeout(),
		Delay:   cfg.RetryDelay(),
	}
}

// FromSettings builds a Reader that runs the configured capture command.
func FromSettings(settings *models.Settings) (*Reader, error) {
	if len(settings.Reader.Command) == 0 {
		return nil, fmt.Errorf("no capture command configured")
	}
	return New(NewCommandSource(settings.Reader.Command), settings.Reader), nil
}

// Read returns the plate counts shown in the game window. It fails with
// tracker.ErrSourceNotFound as soon as the window is missing, and with
// tracker.ErrTimedOut when no readable capture arrives before Timeout.
// Cancelling parent aborts the read with parent's error instead.
func (r *Reader) Read(parent context.Context) (int, int, error) {
	ctx, cancel := context.WithTimeout(parent, r.Timeout)
	defer cancel()

	attempt := 0
	for {
		attempt++
		text, err := r.Source.Capture(ctx)
		switch {
		case errors.Is(err, ErrWindowNotFound):
			return 0, 0, fmt.Errorf("%w: %v", tracker.ErrSourceNotFound, err)
		case err != nil:
			log.Printf("[reader] capture attempt %d failed: %v", attempt, err)
		default:
			if primary, overflow, ok := Parse(text); ok {
				return primary, overflow, nil
			}
			log.Printf("[reader] capture attempt %d unreadable", attempt)
		}

		timer := time.NewTimer(r.Delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			if err := parent.Err(); err != nil {
				return 0, 0, fmt.Errorf("read cancelled after %d attempts: %w", attempt, err)
			}
			return 0, 0, fmt.Errorf("%w after %s (%d attempts)", tracker.ErrTimedOut, r.Timeout, attempt)
		case <-timer.C:
		}
	}
}
