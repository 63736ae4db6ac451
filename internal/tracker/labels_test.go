package tracker

import (
	"testing"

	"github.com/platewatch/platewatch/internal/models"
)

func TestFormatLabels(t *testing.T) {
	tests := []struct {
		name     string
		info     models.PlateInfo
		status   Status
		expected Labels
	}{
		{
			name:   "filling idle",
			info:   models.PlateInfo{Primary: 60, Overflow: 255, TimeToFull: 18},
			status: StatusIdle,
			expected: Labels{
				Title:      "60",
				Tooltip:    "Platewatch: 60/240, full in 18h 00m",
				Primary:    "Waveplates: 60/240",
				Overflow:   "Overflow: 255/480",
				TimeToFull: "Full in 18h 00m",
				Refresh:    "Update from game (click to update)",
			},
		},
		{
			name:   "full while refreshing",
			info:   models.PlateInfo{Primary: 240, Overflow: 3, TimeToFull: 0},
			status: StatusInProgress,
			expected: Labels{
				Title:      "240",
				Tooltip:    "Platewatch: 240/240, full",
				Primary:    "Waveplates: 240/240",
				Overflow:   "Overflow: 3/480",
				TimeToFull: "Full",
				Refresh:    "Update from game (waiting for source...)",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatLabels(tt.info, tt.status)
			if got != tt.expected {
				t.Errorf("FormatLabels() = %+v, want %+v", got, tt.expected)
			}
		})
	}
}

func TestFormatHours(t *testing.T) {
	tests := []struct {
		hours    float64
		expected string
	}{
		{0, "0h 00m"},
		{0.1, "0h 06m"},
		{23.5, "23h 30m"},
		{1.999, "2h 00m"},
	}
	for _, tt := range tests {
		if got := FormatHours(tt.hours); got != tt.expected {
			t.Errorf("FormatHours(%v) = %q, want %q", tt.hours, got, tt.expected)
		}
	}
}

func TestSummary(t *testing.T) {
	got := Summary(models.PlateInfo{Primary: 60, Overflow: 255, TimeToFull: 18})
	want := "You have 60 blue plates, 255 green plates, and 18.0 hours until full."
	if got != want {
		t.Errorf("Summary() = %q, want %q", got, want)
	}
}
