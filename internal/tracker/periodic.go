package tracker

import (
	"context"
	"log"
	"time"
)

// PeriodicRefresher asks the display to re-render on a fixed interval so
// time-derived text stays current without new counts.
type PeriodicRefresher struct {
	interval time.Duration
	display  Requester
}

// NewPeriodicRefresher creates a refresher ticking every interval.
func NewPeriodicRefresher(interval time.Duration, display Requester) *PeriodicRefresher {
	return &PeriodicRefresher{
		interval: interval,
		display:  display,
	}
}

// Run ticks until ctx is cancelled.
func (p *PeriodicRefresher) Run(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.tick()
		}
	}
}

func (p *PeriodicRefresher) tick() {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[render] refresh tick panicked: %v", r)
		}
	}()
	p.display.Request()
}
