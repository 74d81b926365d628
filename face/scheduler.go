package face

import (
	"time"

	"github.com/jonboulle/clockwork"
)

// DefaultCadence is the interactive redraw period.
const DefaultCadence = time.Second

// scheduler arms one phase-aligned wake at a time. Every arm or cancel
// bumps the generation, so a wake already in flight when Reconcile runs is
// recognized as stale and dropped.
type scheduler struct {
	clock   clockwork.Clock
	cadence time.Duration
	fire    func(gen uint64)

	gen   uint64
	timer clockwork.Timer
}

func newScheduler(c clockwork.Clock, cadence time.Duration, fire func(gen uint64)) *scheduler {
	if cadence <= 0 {
		cadence = DefaultCadence
	}
	return &scheduler{clock: c, cadence: cadence, fire: fire}
}

// delay returns the time until the next cadence boundary of the wall
// clock. On a boundary it is a full period.
func (s *scheduler) delay(now time.Time) time.Duration {
	c := s.cadence.Nanoseconds()
	rem := now.UnixNano() % c
	if rem < 0 {
		rem += c
	}
	return time.Duration(c - rem)
}

// Reconcile cancels any pending wake and arms a new one if run is true.
func (s *scheduler) Reconcile(run bool) {
	s.cancel()
	if run {
		s.arm()
	}
}

// Armed reports whether a wake is pending.
func (s *scheduler) Armed() bool {
	return s.timer != nil
}

// Stale reports whether gen belongs to a cancelled wake.
func (s *scheduler) Stale(gen uint64) bool {
	return gen != s.gen || s.timer == nil
}

// Fired marks the pending wake as consumed.
func (s *scheduler) Fired() {
	s.timer = nil
}

func (s *scheduler) cancel() {
	s.gen++
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

func (s *scheduler) arm() {
	gen := s.gen
	s.timer = s.clock.AfterFunc(s.delay(s.clock.Now()), func() { s.fire(gen) })
}
