package tracker

import (
	"fmt"
	"math"

	"github.com/platewatch/platewatch/internal/models"
)

// Labels is the text shown by the tray for one render.
type Labels struct {
	Title      string // next to the icon, where the platform supports it
	Tooltip    string
	Primary    string
	Overflow   string
	TimeToFull string
	Refresh    string
}

// FormatLabels renders plate info and refresh status as menu text.
func FormatLabels(info models.PlateInfo, status Status) Labels {
	full := "Full"
	if info.TimeToFull > 0 {
		full = "Full in " + FormatHours(info.TimeToFull)
	}

	return Labels{
		Title:      fmt.Sprintf("%d", info.Primary),
		Tooltip:    fmt.Sprintf("Platewatch: %d/%d, %s", info.Primary, models.PrimaryCapacity, lowerFirst(full)),
		Primary:    fmt.Sprintf("Waveplates: %d/%d", info.Primary, models.PrimaryCapacity),
		Overflow:   fmt.Sprintf("Overflow: %d/%d", info.Overflow, models.OverflowCapacity),
		TimeToFull: full,
		Refresh:    fmt.Sprintf("Update from game (%s)", status.Label()),
	}
}

// FormatHours formats fractional hours as "5h 06m".
func FormatHours(hours float64) string {
	minutes := int(math.Round(hours * 60))
	return fmt.Sprintf("%dh %02dm", minutes/60, minutes%60)
}

// Summary is the one-line plate report printed by the CLI.
func Summary(info models.PlateInfo) string {
	return fmt.Sprintf("You have %d blue plates, %d green plates, and %.1f hours until full.",
		info.Primary, info.Overflow, info.TimeToFull)
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	b := []byte(s)
	if b[0] >= 'A' && b[0] <= 'Z' {
		b[0] += 'a' - 'A'
	}
	return string(b)
}
