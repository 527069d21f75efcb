package autoscroll

import (
	"math"
	"time"
)

// StateListener is notified when auto-scrolling starts (true) or stops (false).
type StateListener func(scrolling bool)

// Option configures a Scroller.
type Option func(*Scroller)

// WithClock replaces time.Now as the scroller's time source.
func WithClock(now func() time.Time) Option {
	return func(s *Scroller) {
		if now != nil {
			s.now = now
		}
	}
}

// Scroller turns a velocity into integer scroll deltas over wall-clock time.
// It never schedules anything itself; the owner calls Tick once per frame
// while IsScrolling is true.
type Scroller struct {
	velocity  float64
	lastTick  time.Time
	carry     float64
	scrolling bool
	now       func() time.Time
	listener  StateListener
}

// NewScroller creates an idle scroller.
func NewScroller(listener StateListener, opts ...Option) *Scroller {
	s := &Scroller{
		now:      time.Now,
		listener: listener,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SetVelocity stores v as the current velocity in units per millisecond.
//
// A zero velocity stops a running scroll. From rest, scrolling only starts
// when the previous velocity was non-zero and v is strictly faster than it,
// so the first non-zero call after a stop never starts scrolling.
func (s *Scroller) SetVelocity(v float64) {
	if v != 0 {
		shouldStart := math.Abs(s.velocity) > 0 && math.Abs(v) > math.Abs(s.velocity)
		if !s.scrolling && shouldStart {
			s.scrolling = true
			s.lastTick = s.now()
			s.carry = 0
			s.notify(true)
		}
	} else if s.scrolling {
		s.scrolling = false
		s.lastTick = time.Time{}
		s.carry = 0
		s.notify(false)
	}
	s.velocity = v
}

// Velocity returns the last stored velocity.
func (s *Scroller) Velocity() float64 {
	return s.velocity
}

// IsScrolling reports whether a scroll is running.
func (s *Scroller) IsScrolling() bool {
	return s.scrolling
}

// Tick returns the scroll delta for the time elapsed since the previous
// tick (or since scrolling started).
//
// This refines the plain round(elapsed * velocity) rule: the rounding
// remainder carries over to the next tick. In cell units a slow velocity
// such as 6 cells/s over a 16ms frame rounds to zero on every tick, and
// without the carry the list would never move.
func (s *Scroller) Tick() int {
	if !s.scrolling || s.lastTick.IsZero() {
		return 0
	}
	now := s.now()
	elapsed := float64(now.Sub(s.lastTick)) / float64(time.Millisecond)
	s.lastTick = now
	exact := elapsed*s.velocity + s.carry
	delta := math.Round(exact)
	s.carry = exact - delta
	return int(delta)
}

func (s *Scroller) notify(scrolling bool) {
	if s.listener != nil {
		s.listener(scrolling)
	}
}
