package tracker

import (
	"context"
	"log"
)

// RenderLoop serializes display renders. Requests made while a render is
// pending or running collapse into a single follow-up render.
type RenderLoop struct {
	render  func() error
	pending chan struct{}
}

// NewRenderLoop creates a loop that calls render on request.
func NewRenderLoop(render func() error) *RenderLoop {
	return &RenderLoop{
		render:  render,
		pending: make(chan struct{}, 1),
	}
}

// Request schedules a render. It never blocks.
func (l *RenderLoop) Request() {
	select {
	case l.pending <- struct{}{}:
	default:
	}
}

// Run renders on request until ctx is cancelled.
func (l *RenderLoop) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-l.pending:
			l.renderOnce()
		}
	}
}

func (l *RenderLoop) renderOnce() {
	defer func() {
		if p := recover(); p != nil {
			log.Printf("[render] panic: %v", p)
		}
	}()
	if err := l.render(); err != nil {
		log.Printf("[render] failed: %v", err)
	}
}
