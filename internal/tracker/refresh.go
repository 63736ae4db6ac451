package tracker

import (
	"context"
	"fmt"
	"log"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
)

// Refresher runs the read-then-persist job in the background. At most one
// job runs at a time; triggers while one is running are dropped.
type Refresher struct {
	// ctx bounds every job for the lifetime of the process; cancelling it
	// aborts an in-flight read and suppresses its notification.
	ctx      context.Context
	ctrl     *Controller
	reader   Reader
	notifier Notifier

	// mu orders the running flag with the status it implies, so an Idle
	// label never hides a job that still holds the flag.
	mu      sync.Mutex
	running atomic.Bool
	wg      sync.WaitGroup
}

// NewRefresher creates a refresher. ctx is the process-lifetime context
// handed to the reader; cancel it on shutdown.
func NewRefresher(ctx context.Context, ctrl *Controller, reader Reader, notifier Notifier) *Refresher {
	return &Refresher{
		ctx:      ctx,
		ctrl:     ctrl,
		reader:   reader,
		notifier: notifier,
	}
}

// Trigger starts a refresh unless one is already running and reports
// whether it started one. The status is InProgress by the time it returns.
func (r *Refresher) Trigger() bool {
	r.mu.Lock()
	if r.running.Load() {
		r.mu.Unlock()
		return false
	}
	r.running.Store(true)
	r.ctrl.SetStatus(StatusInProgress)
	r.wg.Add(1)
	r.mu.Unlock()

	go r.run(uuid.NewString()[:8])
	return true
}

// Running reports whether a refresh is in flight.
func (r *Refresher) Running() bool {
	return r.running.Load()
}

// Wait blocks until the current refresh, if any, has finished.
func (r *Refresher) Wait() {
	r.wg.Wait()
}

func (r *Refresher) run(id string) {
	defer r.wg.Done()

	log.Printf("[refresh] %s: reading plates", id)
	message, severity := r.execute(id)

	// Idle is only set after the save.
	r.mu.Lock()
	r.running.Store(false)
	r.ctrl.SetStatus(StatusIdle)
	r.mu.Unlock()

	if err := r.ctx.Err(); err != nil {
		log.Printf("[refresh] %s: shutting down, not notifying: %v", id, err)
		return
	}
	if r.notifier != nil {
		r.notifier.Notify(message, severity)
	}
}

func (r *Refresher) execute(id string) (message string, severity Severity) {
	defer func() {
		if p := recover(); p != nil {
			log.Printf("[refresh] %s: panic: %v", id, p)
			message, severity = FailureUnknown.Message(), SeverityError
		}
	}()

	primary, overflow, err := r.reader.Read(r.ctx)
	if err != nil {
		failure := ClassifyFailure(err)
		log.Printf("[refresh] %s: read failed: %v", id, err)
		return failure.Message(), SeverityError
	}

	if err := r.ctrl.SetCounts(primary, overflow); err != nil {
		log.Printf("[refresh] %s: update failed: %v", id, err)
		return fmt.Sprintf("Read %d/%d but couldn't update plates: %v", primary, overflow, err), SeverityError
	}

	log.Printf("[refresh] %s: plates updated to %d/%d", id, primary, overflow)
	return fmt.Sprintf("Plates updated: %d primary, %d overflow.", primary, overflow), SeverityInfo
}
