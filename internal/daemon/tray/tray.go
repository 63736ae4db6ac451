package tray

import (
	"errors"
	"log"
	"sync"

	"github.com/getlantern/systray"

	"github.com/platewatch/platewatch/internal/tracker"
)

var errNotReady = errors.New("tray menu not ready")

// Tray owns the menu items. Render may be called from any goroutine but
// must not be called concurrently with itself; tracker.RenderLoop ensures that.
type Tray struct {
	source  PlateSource
	onStart func()
	onExit  func()

	mu           sync.Mutex
	primaryItem  *systray.MenuItem
	overflowItem *systray.MenuItem
	fullItem     *systray.MenuItem
	refreshItem  *systray.MenuItem
	manualItem   *systray.MenuItem
	quitItem     *systray.MenuItem
}

// New creates a tray for source. onStart is called once the menu exists
// (start background work there). onExit is called when the tray exits.
func New(source PlateSource, onStart, onExit func()) *Tray {
	return &Tray{
		source:  source,
		onStart: onStart,
		onExit:  onExit,
	}
}

// Run starts the system tray. This blocks the calling goroutine (must be main).
func (t *Tray) Run() {
	systray.Run(t.onReady, t.onQuit)
}

// Quit signals the tray to exit.
func Quit() {
	systray.Quit()
}

func (t *Tray) onReady() {
	systray.SetTemplateIcon(iconData, iconData)
	systray.SetTooltip("Platewatch")

	header := systray.AddMenuItem("Platewatch", "")
	header.Disable()

	systray.AddSeparator()

	t.mu.Lock()
	t.primaryItem = systray.AddMenuItem("Waveplates: -", "")
	t.primaryItem.Disable()
	t.overflowItem = systray.AddMenuItem("Overflow: -", "")
	t.overflowItem.Disable()
	t.fullItem = systray.AddMenuItem("", "Time until primary plates are full")
	t.fullItem.Disable()

	systray.AddSeparator()

	t.refreshItem = systray.AddMenuItem("Update from game", "Read plates from the game window")
	t.manualItem = systray.AddMenuItem("Update manually", "Use `platewatch set` from a terminal")
	t.manualItem.Disable()

	systray.AddSeparator()

	t.quitItem = systray.AddMenuItem("Quit", "Quit Platewatch")
	t.mu.Unlock()

	if t.onStart != nil {
		t.onStart()
	}

	go t.handleClicks()
}

func (t *Tray) onQuit() {
	if t.onExit != nil {
		t.onExit()
	}
}

func (t *Tray) handleClicks() {
	for {
		select {
		case <-t.refreshItem.ClickedCh:
			t.source.Refresh()
		case <-t.quitItem.ClickedCh:
			log.Println("[tray] Quit requested")
			systray.Quit()
			return
		}
	}
}

// Render pulls fresh text from the source and updates the menu.
func (t *Tray) Render() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.primaryItem == nil {
		return errNotReady
	}

	labels := tracker.FormatLabels(t.source.DisplayFields(), t.source.Status())

	systray.SetTitle(labels.Title)
	systray.SetTooltip(labels.Tooltip)
	t.primaryItem.SetTitle(labels.Primary)
	t.overflowItem.SetTitle(labels.Overflow)
	t.fullItem.SetTitle(labels.TimeToFull)
	t.refreshItem.SetTitle(labels.Refresh)
	return nil
}
