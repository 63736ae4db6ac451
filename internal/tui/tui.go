// Package tui implements the terminal view of the plate tracker.
package tui

import (
	"context"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/platewatch/platewatch/internal/daemon"
	"github.com/platewatch/platewatch/internal/models"
	"github.com/platewatch/platewatch/internal/tracker"
)

// programRef is a shared reference to the tea.Program for goroutine sends.
// It's set after tea.NewProgram but before p.Run().
type programRef struct {
	mu sync.Mutex
	p  *tea.Program
}

func (r *programRef) Set(p *tea.Program) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.p = p
}

func (r *programRef) Send(msg tea.Msg) {
	r.mu.Lock()
	p := r.p
	r.mu.Unlock()
	if p != nil {
		p.Send(msg)
	}
}

// Clear nils out the program reference, preventing post-exit sends.
func (r *programRef) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.p = nil
}

// programNotifier shows refresh results inside the TUI.
type programNotifier struct {
	ref *programRef
}

func (n programNotifier) Notify(message string, severity tracker.Severity) {
	n.ref.Send(noteMsg{message: message, severity: severity})
}

// Run launches the TUI and blocks until the user quits.
func Run(settings *models.Settings) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ref := &programRef{}
	d, err := daemon.New(ctx, settings, programNotifier{ref: ref})
	if err != nil {
		return err
	}

	p := tea.NewProgram(NewModel(d), tea.WithAltScreen())
	ref.Set(p)
	defer ref.Clear()

	display := tracker.NewRenderLoop(func() error {
		ref.Send(refreshMsg{})
		return nil
	})
	if err := d.Start(ctx, display); err != nil {
		return err
	}
	defer d.Stop()

	_, err = p.Run()
	return err
}
