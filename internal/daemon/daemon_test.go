package daemon

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/platewatch/platewatch/internal/config"
	"github.com/platewatch/platewatch/internal/daemon/watcher"
	"github.com/platewatch/platewatch/internal/models"
	"github.com/platewatch/platewatch/internal/tracker"
)

type toggleNotifier struct {
	enabled []bool
}

func (n *toggleNotifier) Notify(string, tracker.Severity) {}

func (n *toggleNotifier) SetEnabled(enabled bool) {
	n.enabled = append(n.enabled, enabled)
}

func newTestDaemon(t *testing.T) (*Daemon, *toggleNotifier) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	if err := config.SavePlates(models.NewPlateState(1, 2, time.Now())); err != nil {
		t.Fatal(err)
	}
	notifier := &toggleNotifier{}
	d, err := New(context.Background(), models.NewSettings(), notifier)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	return d, notifier
}

func TestNewLoadsStoredPlates(t *testing.T) {
	d, _ := newTestDaemon(t)

	if got := d.DisplayFields(); got.Primary != 1 || got.Overflow != 2 {
		t.Errorf("DisplayFields() = %+v, want 1/2", got)
	}
	if d.Status() != tracker.StatusIdle {
		t.Errorf("Status() = %v, want idle", d.Status())
	}
}

func TestNewWithPartialSettingsFile(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "notifications only", content: "notifications:\n  enabled: false\n"},
		{name: "empty file", content: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("HOME", t.TempDir())
			if err := config.EnsureGlobalDir(); err != nil {
				t.Fatal(err)
			}
			path, err := config.GlobalSettingsFile()
			if err != nil {
				t.Fatal(err)
			}
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatal(err)
			}

			settings, err := config.LoadSettings()
			if err != nil {
				t.Fatalf("LoadSettings() error: %v", err)
			}
			if _, err := New(context.Background(), settings, &toggleNotifier{}); err != nil {
				t.Errorf("New() error: %v", err)
			}
		})
	}
}

func TestHandlePlatesChanged(t *testing.T) {
	d, _ := newTestDaemon(t)

	if err := config.SavePlates(models.NewPlateState(70, 80, time.Now())); err != nil {
		t.Fatal(err)
	}
	d.handleEvent(watcher.Event{Type: watcher.EventPlatesChanged})

	if got := d.Controller.State(); got.Primary != 70 || got.Overflow != 80 {
		t.Errorf("State() = %+v, want 70/80", got)
	}
}

func TestHandleSettingsChanged(t *testing.T) {
	d, notifier := newTestDaemon(t)

	settings := models.NewSettings()
	settings.Notifications.Enabled = false
	if err := config.SaveSettings(settings); err != nil {
		t.Fatal(err)
	}
	d.handleEvent(watcher.Event{Type: watcher.EventSettingsChanged})

	if len(notifier.enabled) != 1 || notifier.enabled[0] {
		t.Errorf("SetEnabled calls = %v, want [false]", notifier.enabled)
	}
}
