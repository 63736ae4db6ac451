package tracker

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/platewatch/platewatch/internal/models"
)

var testNow = time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return testNow }

type fakeReader struct {
	primary  int
	overflow int
	err      error

	// release, when set, blocks Read until closed.
	release chan struct{}
	onRead  func()
	calls   atomic.Int32
}

func (r *fakeReader) Read(ctx context.Context) (int, int, error) {
	r.calls.Add(1)
	if r.onRead != nil {
		r.onRead()
	}
	if r.release != nil {
		<-r.release
	}
	if r.err != nil {
		return 0, 0, r.err
	}
	return r.primary, r.overflow, nil
}

type fakeStore struct {
	mu    sync.Mutex
	saved []models.PlateState
	err   error

	// onSave runs before each write, outside the lock.
	onSave func()
}

func (s *fakeStore) Load() (*models.PlateState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.saved) == 0 {
		return nil, errors.New("empty store")
	}
	last := s.saved[len(s.saved)-1]
	return &last, nil
}

func (s *fakeStore) Save(state *models.PlateState) error {
	if s.onSave != nil {
		s.onSave()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.saved = append(s.saved, *state)
	return nil
}

func (s *fakeStore) Saved() []models.PlateState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.PlateState(nil), s.saved...)
}

type note struct {
	message  string
	severity Severity
}

type fakeNotifier struct {
	mu     sync.Mutex
	notes  []note
	onNote func()
}

func (n *fakeNotifier) Notify(message string, severity Severity) {
	n.mu.Lock()
	n.notes = append(n.notes, note{message: message, severity: severity})
	hook := n.onNote
	n.mu.Unlock()
	if hook != nil {
		hook()
	}
}

func (n *fakeNotifier) Notes() []note {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]note(nil), n.notes...)
}

type countingDisplay struct {
	count atomic.Int32
}

func (d *countingDisplay) Request() {
	d.count.Add(1)
}

// statusRecorder captures the status and running flag seen by each render.
type statusRecorder struct {
	mu      sync.Mutex
	ctrl    *Controller
	r       *Refresher
	samples []statusSample
}

type statusSample struct {
	status  Status
	running bool
}

func (d *statusRecorder) Request() {
	sample := statusSample{status: d.ctrl.Status(), running: d.r.Running()}
	d.mu.Lock()
	d.samples = append(d.samples, sample)
	d.mu.Unlock()
}

func (d *statusRecorder) Samples() []statusSample {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]statusSample(nil), d.samples...)
}
