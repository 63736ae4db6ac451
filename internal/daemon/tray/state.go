// Package tray implements the system tray icon and menu.
package tray

import (
	_ "embed"

	"github.com/platewatch/platewatch/internal/models"
	"github.com/platewatch/platewatch/internal/tracker"
)

//go:embed icon.png
var iconData []byte

// PlateSource provides the tray with plate data and the refresh action.
type PlateSource interface {
	DisplayFields() models.PlateInfo
	Status() tracker.Status
	Refresh()
}
