package tui

import "github.com/platewatch/platewatch/internal/tracker"

// refreshMsg asks the model to re-read the controller.
type refreshMsg struct{}

// noteMsg carries a refresh result or manual update outcome.
type noteMsg struct {
	message  string
	severity tracker.Severity
}
