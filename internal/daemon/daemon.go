// Package daemon assembles the plate controller, refresh job, periodic
// refresher and file watcher behind whichever display is running.
package daemon

import (
	"context"
	"fmt"
	"log"

	"github.com/platewatch/platewatch/internal/config"
	"github.com/platewatch/platewatch/internal/daemon/watcher"
	"github.com/platewatch/platewatch/internal/models"
	"github.com/platewatch/platewatch/internal/reader"
	"github.com/platewatch/platewatch/internal/tracker"
)

// Toggler is implemented by notifiers that can be switched on and off.
type Toggler interface {
	SetEnabled(enabled bool)
}

// Daemon wires the plate state to a display.
type Daemon struct {
	Controller *tracker.Controller
	Refresher  *tracker.Refresher

	notifier tracker.Notifier
	watcher  *watcher.Watcher
}

// New loads the stored plates and builds the refresh job from settings.
func New(ctx context.Context, settings *models.Settings, notifier tracker.Notifier) (*Daemon, error) {
	ctrl, err := tracker.LoadController(config.FileStore{}, nil)
	if err != nil {
		return nil, err
	}

	rd, err := reader.FromSettings(settings)
	if err != nil {
		return nil, fmt.Errorf("failed to configure reader: %w", err)
	}

	return &Daemon{
		Controller: ctrl,
		Refresher:  tracker.NewRefresher(ctx, ctrl, rd, notifier),
		notifier:   notifier,
	}, nil
}

// DisplayFields implements tray.PlateSource.
func (d *Daemon) DisplayFields() models.PlateInfo {
	return d.Controller.DisplayFields()
}

// Status implements tray.PlateSource.
func (d *Daemon) Status() tracker.Status {
	return d.Controller.Status()
}

// Refresh starts a refresh unless one is already running.
func (d *Daemon) Refresh() {
	if !d.Refresher.Trigger() {
		log.Println("[refresh] already running, ignoring request")
	}
}

// SetCounts records counts entered by hand.
func (d *Daemon) SetCounts(primary, overflow int) error {
	return d.Controller.SetCounts(primary, overflow)
}

// Start attaches display and runs the render loop, the periodic refresher
// and the file watcher until ctx is cancelled.
func (d *Daemon) Start(ctx context.Context, display *tracker.RenderLoop) error {
	d.Controller.SetDisplay(display)
	go display.Run(ctx)
	go tracker.NewPeriodicRefresher(models.RegenInterval, display).Run(ctx)

	if err := config.EnsureGlobalDir(); err != nil {
		return err
	}
	dir, err := config.GlobalDir()
	if err != nil {
		return err
	}
	w, err := watcher.New(dir)
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := w.Start(); err != nil {
		w.Stop()
		return fmt.Errorf("failed to start watcher: %w", err)
	}
	d.watcher = w
	go d.watch(ctx)

	display.Request()
	return nil
}

// Stop stops the file watcher.
func (d *Daemon) Stop() {
	if d.watcher != nil {
		d.watcher.Stop()
	}
}

func (d *Daemon) watch(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev := <-d.watcher.Events():
			d.handleEvent(ev)
		}
	}
}

func (d *Daemon) handleEvent(ev watcher.Event) {
	switch ev.Type {
	case watcher.EventPlatesChanged:
		state, err := config.LoadPlates()
		if err != nil {
			log.Printf("[watcher] Failed to reload plates: %v", err)
			return
		}
		changed, err := d.Controller.Replace(state)
		if err != nil {
			log.Printf("[watcher] Ignoring plates file: %v", err)
			return
		}
		if changed {
			log.Printf("[watcher] Plates changed on disk: %d/%d", state.Primary, state.Overflow)
		}

	case watcher.EventSettingsChanged:
		settings, err := config.LoadSettings()
		if err != nil {
			log.Printf("[watcher] Failed to reload settings: %v", err)
			return
		}
		if t, ok := d.notifier.(Toggler); ok {
			t.SetEnabled(settings.Notifications.Enabled)
		}
		log.Println("[watcher] Settings reloaded (reader changes apply on restart)")
	}
}
