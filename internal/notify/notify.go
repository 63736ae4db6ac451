// Package notify presents refresh results as desktop notifications.
package notify

import (
	"log"
	"sync/atomic"

	"github.com/gen2brain/beeep"

	"github.com/platewatch/platewatch/internal/tracker"
)

const title = "Platewatch"

// Desktop shows messages through the OS notification center. Errors are
// shown as alerts. Every message is logged, shown or not.
type Desktop struct {
	enabled atomic.Bool

	// notify and alert are swapped out in tests.
	notify func(title, message string, icon any) error
	alert  func(title, message string, icon any) error
}

// NewDesktop creates a notifier.
func NewDesktop(enabled bool) *Desktop {
	beeep.AppName = title

	d := &Desktop{
		notify: beeep.Notify,
		alert:  beeep.Alert,
	}
	d.enabled.Store(enabled)
	return d
}

// SetEnabled toggles whether messages reach the desktop.
func (d *Desktop) SetEnabled(enabled bool) {
	d.enabled.Store(enabled)
}

// Notify implements tracker.Notifier.
func (d *Desktop) Notify(message string, severity tracker.Severity) {
	log.Printf("[notify] %s", message)
	if !d.enabled.Load() {
		return
	}

	show := d.notify
	if severity == tracker.SeverityError {
		show = d.alert
	}
	if err := show(title, message, ""); err != nil {
		log.Printf("[notify] failed to show notification: %v", err)
	}
}
