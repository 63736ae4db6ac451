package models

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

const (
	// RegenInterval is the time it takes to regenerate one primary plate.
	RegenInterval = 360 * time.Second

	// PrimaryCapacity is the daily cap for primary plates.
	PrimaryCapacity = 240

	// OverflowCapacity caps how far regeneration can grow the overflow pool.
	OverflowCapacity = 480

	// OverflowRate is how many overflow plates one excess primary plate yields.
	OverflowRate = 0.5
)

// PlateState is the last known plate count.
// This corresponds to ~/.platewatch/plates.yaml.
type PlateState struct {
	Primary   int       `yaml:"primary"`
	Overflow  int       `yaml:"overflow"`
	UpdatedAt time.Time `yaml:"updated_at"`
}

// PlateInfo is a PlateState projected to a point in time.
type PlateInfo struct {
	Primary    int
	Overflow   int
	TimeToFull float64 // hours
}

// NewPlateState creates a state with the given counts stamped at now.
func NewPlateState(primary, overflow int, now time.Time) *PlateState {
	return &PlateState{
		Primary:   primary,
		Overflow:  overflow,
		UpdatedAt: now.UTC(),
	}
}

// Validate rejects negative counts.
func (s *PlateState) Validate() error {
	if s.Primary < 0 || s.Overflow < 0 {
		return fmt.Errorf("plate counts must not be negative (got %d/%d)", s.Primary, s.Overflow)
	}
	return nil
}

// Equal reports whether two states hold the same counts and timestamp.
func (s *PlateState) Equal(o *PlateState) bool {
	if s == nil || o == nil {
		return s == o
	}
	return s.Primary == o.Primary && s.Overflow == o.Overflow && s.UpdatedAt.Equal(o.UpdatedAt)
}

// Project returns the plate counts at now, including plates regenerated
// since UpdatedAt. Primary plates beyond PrimaryCapacity spill into the
// overflow pool at OverflowRate.
func (s *PlateState) Project(now time.Time) PlateInfo {
	primary := s.Primary
	overflow := s.Overflow

	if elapsed := now.Sub(s.UpdatedAt); elapsed > 0 {
		primary += int(elapsed / RegenInterval)
	}

	if primary > PrimaryCapacity {
		excess := primary - PrimaryCapacity
		primary = PrimaryCapacity
		if overflow < OverflowCapacity {
			overflow += int(math.Floor(float64(excess) * OverflowRate))
			if overflow > OverflowCapacity {
				overflow = OverflowCapacity
			}
		}
	}

	return PlateInfo{
		Primary:    primary,
		Overflow:   overflow,
		TimeToFull: TimeToFullHours(primary, PrimaryCapacity, RegenInterval),
	}
}

// TimeToFullHours returns the hours until primary reaches capacity.
func TimeToFullHours(primary, capacity int, regen time.Duration) float64 {
	missing := capacity - primary
	if missing <= 0 {
		return 0
	}
	return float64(missing) * regen.Seconds() / 3600
}

// ParseCounts parses manual input in the form "primary/overflow", e.g. "60/255".
func ParseCounts(input string) (primary, overflow int, err error) {
	parts := strings.Split(strings.TrimSpace(input), "/")
	if len(parts) < 2 {
		return 0, 0, fmt.Errorf("did not provide enough values (want primary/overflow, e.g. 60/255)")
	}
	if len(parts) > 2 {
		return 0, 0, fmt.Errorf("invalid format %q (want primary/overflow, e.g. 60/255)", input)
	}

	nums := make([]int, 2)
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || n < 0 {
			return 0, 0, fmt.Errorf("invalid format %q (want primary/overflow, e.g. 60/255)", input)
		}
		nums[i] = n
	}
	return nums[0], nums[1], nil
}
