package sim

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Scheduler drives the fixed-timestep simulation loop. Each tick
// advances simulated time by exactly dt and updates every registered
// device once; the time factor only changes how fast the wall clock
// replays those ticks, never their size.
type Scheduler struct {
	mu sync.Mutex

	registry   *Registry
	dt         float64
	timeFactor float64
	simTime    float64
	ticks      uint64
	paused     bool
	onTick     func(simTime float64, ticks uint64)
	log        zerolog.Logger
}

// NewScheduler creates a scheduler over the registry. dt is the fixed
// timestep in simulated seconds; timeFactor of 1.0 runs in real time,
// larger values faster.
func NewScheduler(registry *Registry, dt, timeFactor float64, log zerolog.Logger) *Scheduler {
	if dt <= 0 {
		dt = 0.01
	}
	if timeFactor <= 0 {
		timeFactor = 1.0
	}
	return &Scheduler{
		registry:   registry,
		dt:         dt,
		timeFactor: timeFactor,
		log:        log,
	}
}

// SimTime returns the accumulated simulated time in seconds.
func (s *Scheduler) SimTime() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.simTime
}

// Ticks returns the number of ticks executed.
func (s *Scheduler) Ticks() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ticks
}

// Paused reports whether the loop is paused.
func (s *Scheduler) Paused() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.paused
}

// Pause stops ticking; the wall clock keeps running but simulated time
// freezes until Resume.
func (s *Scheduler) Pause() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.paused = true
}

// Resume continues ticking after a Pause.
func (s *Scheduler) Resume() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.paused = false
}

// Step executes exactly one tick, regardless of the paused state. It is
// how the interactive console single-steps a paused simulation.
func (s *Scheduler) Step() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tickLocked()
}

// OnTick installs a hook called after every tick with the new sim time
// and tick count. The hook runs on the tick goroutine and must not call
// back into the scheduler.
func (s *Scheduler) OnTick(fn func(simTime float64, ticks uint64)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onTick = fn
}

func (s *Scheduler) tickLocked() {
	s.simTime += s.dt
	s.ticks++
	s.registry.UpdateAll(s.simTime, s.dt)
	if s.onTick != nil {
		s.onTick(s.simTime, s.ticks)
	}
}

// Run executes the tick loop until the context is canceled. The wall
// interval between ticks is dt/timeFactor.
func (s *Scheduler) Run(ctx context.Context) {
	interval := time.Duration(s.dt / s.timeFactor * float64(time.Second))
	if interval <= 0 {
		interval = time.Millisecond
	}

	s.log.Info().
		Float64("dt", s.dt).
		Float64("time_factor", s.timeFactor).
		Int("devices", s.registry.Len()).
		Msg("simulation started")

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.log.Info().
				Float64("sim_time", s.SimTime()).
				Uint64("ticks", s.Ticks()).
				Msg("simulation stopped")
			return
		case <-ticker.C:
			s.mu.Lock()
			if !s.paused {
				s.tickLocked()
			}
			s.mu.Unlock()
		}
	}
}
