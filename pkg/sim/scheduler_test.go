package sim

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestSchedulerStep(t *testing.T) {
	r := NewRegistry()
	d := newFakeDevice("d")
	if err := r.Add(d); err != nil {
		t.Fatal(err)
	}

	s := NewScheduler(r, 0.01, 1.0, zerolog.Nop())

	for i := 0; i < 5; i++ {
		s.Step()
	}

	if got := s.SimTime(); got < 0.0499 || got > 0.0501 {
		t.Errorf("expected sim time 0.05, got %v", got)
	}
	if s.Ticks() != 5 {
		t.Errorf("expected 5 ticks, got %d", s.Ticks())
	}
	if d.updates != 5 {
		t.Errorf("expected 5 device updates, got %d", d.updates)
	}
	if d.lastDT != 0.01 {
		t.Errorf("expected dt 0.01, got %v", d.lastDT)
	}
}

func TestSchedulerDefaults(t *testing.T) {
	s := NewScheduler(NewRegistry(), 0, 0, zerolog.Nop())
	s.Step()
	if got := s.SimTime(); got != 0.01 {
		t.Errorf("expected default dt 0.01, got %v", got)
	}
}

func TestSchedulerOnTick(t *testing.T) {
	s := NewScheduler(NewRegistry(), 0.01, 1.0, zerolog.Nop())

	var gotTime float64
	var gotTicks uint64
	s.OnTick(func(simTime float64, ticks uint64) {
		gotTime = simTime
		gotTicks = ticks
	})

	s.Step()
	s.Step()

	if gotTicks != 2 {
		t.Errorf("expected hook to see tick 2, got %d", gotTicks)
	}
	if gotTime < 0.0199 || gotTime > 0.0201 {
		t.Errorf("expected hook to see t=0.02, got %v", gotTime)
	}
}

func TestSchedulerPauseResume(t *testing.T) {
	r := NewRegistry()
	d := newFakeDevice("d")
	if err := r.Add(d); err != nil {
		t.Fatal(err)
	}

	s := NewScheduler(r, 0.001, 10.0, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Run(ctx)
		close(done)
	}()

	deadline := time.After(2 * time.Second)
	for s.Ticks() == 0 {
		select {
		case <-deadline:
			t.Fatal("scheduler never ticked")
		case <-time.After(time.Millisecond):
		}
	}

	s.Pause()
	if !s.Paused() {
		t.Error("expected paused state")
	}
	// Let any in-flight tick drain, then confirm the clock is frozen.
	time.Sleep(20 * time.Millisecond)
	frozen := s.Ticks()
	time.Sleep(20 * time.Millisecond)
	if s.Ticks() != frozen {
		t.Error("expected no ticks while paused")
	}

	// Single-stepping advances even while paused.
	s.Step()
	if s.Ticks() != frozen+1 {
		t.Errorf("expected step to advance ticks to %d, got %d", frozen+1, s.Ticks())
	}

	s.Resume()
	if s.Paused() {
		t.Error("expected running state after Resume")
	}

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("scheduler did not stop on context cancel")
	}
}
