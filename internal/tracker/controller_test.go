package tracker

import (
	"errors"
	"sync"
	"testing"

	"github.com/platewatch/platewatch/internal/models"
)

func TestSetCountsUpdatesAndSaves(t *testing.T) {
	store := &fakeStore{}
	display := &countingDisplay{}
	ctrl := NewController(models.NewPlateState(10, 20, testNow), store, display, WithClock(fixedClock))

	if err := ctrl.SetCounts(5, 2); err != nil {
		t.Fatalf("SetCounts() error: %v", err)
	}

	fields := ctrl.DisplayFields()
	if fields.Primary != 5 || fields.Overflow != 2 {
		t.Errorf("DisplayFields() = %+v, want 5/2", fields)
	}
	if fields.TimeToFull != 23.5 {
		t.Errorf("TimeToFull = %v, want 23.5", fields.TimeToFull)
	}

	saved := store.Saved()
	if len(saved) != 1 || saved[0].Primary != 5 || saved[0].Overflow != 2 {
		t.Errorf("saved = %+v, want one 5/2 state", saved)
	}
	if !saved[0].UpdatedAt.Equal(testNow) {
		t.Errorf("saved UpdatedAt = %v, want %v", saved[0].UpdatedAt, testNow)
	}
	if got := display.count.Load(); got != 1 {
		t.Errorf("render requests = %d, want 1", got)
	}
}

func TestSetCountsRejectsNegative(t *testing.T) {
	store := &fakeStore{}
	ctrl := NewController(models.NewPlateState(10, 20, testNow), store, nil, WithClock(fixedClock))

	if err := ctrl.SetCounts(-1, 2); err == nil {
		t.Fatal("SetCounts() accepted a negative count")
	}
	if got := ctrl.State(); got.Primary != 10 || got.Overflow != 20 {
		t.Errorf("state changed to %+v after rejected update", got)
	}
	if len(store.Saved()) != 0 {
		t.Error("rejected update was saved")
	}
}

func TestSetCountsKeepsValuesWhenSaveFails(t *testing.T) {
	store := &fakeStore{err: errors.New("disk full")}
	ctrl := NewController(models.NewPlateState(10, 20, testNow), store, nil, WithClock(fixedClock))

	if err := ctrl.SetCounts(7, 8); err == nil {
		t.Fatal("SetCounts() did not report the save failure")
	}
	if got := ctrl.State(); got.Primary != 7 || got.Overflow != 8 {
		t.Errorf("state = %+v, want 7/8 kept in memory", got)
	}
}

func TestSetStatusRequestsRender(t *testing.T) {
	display := &countingDisplay{}
	ctrl := NewController(nil, nil, display, WithClock(fixedClock))

	if ctrl.Status() != StatusIdle {
		t.Fatalf("initial status = %v, want idle", ctrl.Status())
	}
	ctrl.SetStatus(StatusInProgress)
	if ctrl.Status() != StatusInProgress {
		t.Errorf("Status() = %v, want in-progress", ctrl.Status())
	}
	if got := display.count.Load(); got != 1 {
		t.Errorf("render requests = %d, want 1", got)
	}
}

func TestReplace(t *testing.T) {
	display := &countingDisplay{}
	store := &fakeStore{}
	ctrl := NewController(models.NewPlateState(10, 20, testNow), store, display, WithClock(fixedClock))

	changed, err := ctrl.Replace(models.NewPlateState(10, 20, testNow))
	if err != nil || changed {
		t.Fatalf("Replace(same) = %v, %v, want false, nil", changed, err)
	}
	if display.count.Load() != 0 {
		t.Error("Replace(same) requested a render")
	}

	changed, err = ctrl.Replace(models.NewPlateState(30, 40, testNow))
	if err != nil || !changed {
		t.Fatalf("Replace(new) = %v, %v, want true, nil", changed, err)
	}
	if got := ctrl.State(); got.Primary != 30 || got.Overflow != 40 {
		t.Errorf("State() = %+v, want 30/40", got)
	}
	if display.count.Load() != 1 {
		t.Errorf("render requests = %d, want 1", display.count.Load())
	}
	if len(store.Saved()) != 0 {
		t.Error("Replace() wrote to the store")
	}

	if _, err := ctrl.Replace(&models.PlateState{Primary: -1}); err == nil {
		t.Error("Replace() accepted a negative count")
	}
}

func TestLoadController(t *testing.T) {
	store := &fakeStore{}
	if _, err := LoadController(store, nil); err == nil {
		t.Fatal("LoadController() on failing store returned no error")
	}

	_ = store.Save(models.NewPlateState(3, 4, testNow))
	ctrl, err := LoadController(store, nil, WithClock(fixedClock))
	if err != nil {
		t.Fatalf("LoadController() error: %v", err)
	}
	if got := ctrl.DisplayFields(); got.Primary != 3 || got.Overflow != 4 {
		t.Errorf("DisplayFields() = %+v, want 3/4", got)
	}
}

func TestDisplayFieldsSnapshotIsConsistent(t *testing.T) {
	ctrl := NewController(models.NewPlateState(0, 0, testNow), nil, nil, WithClock(fixedClock))

	var wg sync.WaitGroup
	stop := make(chan struct{})

	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 2000; i++ {
			n := i % 200
			if err := ctrl.SetCounts(n, n); err != nil {
				t.Errorf("SetCounts() error: %v", err)
				return
			}
		}
		close(stop)
	}()

	for r := 0; r < 4; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-stop:
					return
				default:
				}
				f := ctrl.DisplayFields()
				if f.Primary != f.Overflow {
					t.Errorf("torn snapshot: primary %d, overflow %d", f.Primary, f.Overflow)
					return
				}
			}
		}()
	}

	wg.Wait()
}
