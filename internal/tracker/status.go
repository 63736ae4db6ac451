// Package tracker owns the plate state shown in the tray and the background
// work that keeps it current: the single-flight refresh job that reads the
// game window, and the periodic refresher that re-renders derived text.
package tracker

import (
	"context"
	"errors"

	"github.com/platewatch/platewatch/internal/models"
)

// Reader failures. Implementations wrap these so callers can use errors.Is.
var (
	ErrSourceNotFound = errors.New("source not found")
	ErrTimedOut       = errors.New("timed out reading source")
)

// Status is the state of the refresh trigger shown in the menu.
type Status int

const (
	StatusIdle Status = iota
	StatusInProgress
)

// Label returns the menu text for the status.
func (s Status) Label() string {
	switch s {
	case StatusInProgress:
		return "waiting for source..."
	default:
		return "click to update"
	}
}

func (s Status) String() string {
	switch s {
	case StatusInProgress:
		return "in-progress"
	default:
		return "idle"
	}
}

// Failure classifies why a refresh did not produce new counts.
type Failure int

const (
	FailureUnknown Failure = iota
	FailureSourceNotFound
	FailureTimedOut
)

// ClassifyFailure maps a reader error to a Failure.
func ClassifyFailure(err error) Failure {
	switch {
	case errors.Is(err, ErrSourceNotFound):
		return FailureSourceNotFound
	case errors.Is(err, ErrTimedOut):
		return FailureTimedOut
	default:
		return FailureUnknown
	}
}

// User-facing refresh messages.
const (
	MessageSourceNotFound = "Couldn't find the game window. Open the game and try again."
	MessageTimedOut       = "Timed out reading plates from the game window."
	MessageReadFailed     = "Couldn't read plates from the game window."
)

// Message returns the notification text for the failure.
func (f Failure) Message() string {
	switch f {
	case FailureSourceNotFound:
		return MessageSourceNotFound
	case FailureTimedOut:
		return MessageTimedOut
	default:
		return MessageReadFailed
	}
}

// Severity tells the notifier how to present a message.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityError
)

// Reader fetches fresh plate counts from outside the process. Read blocks
// and enforces its own timeout.
type Reader interface {
	Read(ctx context.Context) (primary, overflow int, err error)
}

// Store persists plate state.
type Store interface {
	Load() (*models.PlateState, error)
	Save(state *models.PlateState) error
}

// Notifier presents a one-off message to the user.
type Notifier interface {
	Notify(message string, severity Severity)
}

// Requester asks the display to re-render. Request must not block or
// trigger a refresh itself.
type Requester interface {
	Request()
}
