package autoscroll

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newTestScroller(t *testing.T) (*Scroller, *fakeClock, *[]bool) {
	t.Helper()
	clock := &fakeClock{now: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)}
	var events []bool
	s := NewScroller(func(scrolling bool) {
		events = append(events, scrolling)
	}, WithClock(clock.Now))
	return s, clock, &events
}

func TestScrollerFirstVelocityFromRestDoesNotStart(t *testing.T) {
	s, _, events := newTestScroller(t)

	s.SetVelocity(0.5)

	assert.False(t, s.IsScrolling())
	assert.Empty(t, *events)
	assert.Equal(t, 0.5, s.Velocity())
}

func TestScrollerStartsOnSecondFasterVelocity(t *testing.T) {
	s, _, events := newTestScroller(t)

	s.SetVelocity(0.5)
	s.SetVelocity(0.6)

	assert.True(t, s.IsScrolling())
	assert.Equal(t, []bool{true}, *events)
}

func TestScrollerStartRequiresStrictlyFasterMagnitude(t *testing.T) {
	s, _, events := newTestScroller(t)

	s.SetVelocity(-0.5)
	s.SetVelocity(0.5)
	assert.False(t, s.IsScrolling(), "equal magnitude must not start")

	s.SetVelocity(0.4)
	assert.False(t, s.IsScrolling(), "slower must not start")

	s.SetVelocity(-0.7)
	assert.True(t, s.IsScrolling())
	assert.Equal(t, []bool{true}, *events)
	assert.Equal(t, -0.7, s.Velocity())
}

func TestScrollerStopNotifiesOnlyWhenRunning(t *testing.T) {
	s, _, events := newTestScroller(t)

	s.SetVelocity(0)
	assert.Empty(t, *events)

	s.SetVelocity(0.2)
	s.SetVelocity(0.3)
	s.SetVelocity(0)

	assert.False(t, s.IsScrolling())
	assert.Equal(t, []bool{true, false}, *events)
	assert.Equal(t, 0.0, s.Velocity())
}

func TestScrollerKeepsRunningWhileVelocityChanges(t *testing.T) {
	s, _, events := newTestScroller(t)

	s.SetVelocity(0.2)
	s.SetVelocity(0.3)
	s.SetVelocity(0.1)
	s.SetVelocity(-0.9)

	assert.True(t, s.IsScrolling())
	assert.Equal(t, []bool{true}, *events)
	assert.Equal(t, -0.9, s.Velocity())
}

func TestScrollerTickUsesElapsedTime(t *testing.T) {
	s, clock, _ := newTestScroller(t)
	s.SetVelocity(0.3)
	s.SetVelocity(0.6)
	require.True(t, s.IsScrolling())

	clock.Advance(16 * time.Millisecond)
	assert.Equal(t, 10, s.Tick()) // 9.6 rounds up, carry -0.4

	clock.Advance(16 * time.Millisecond)
	assert.Equal(t, 9, s.Tick()) // 9.6 - 0.4

	clock.Advance(100 * time.Millisecond)
	assert.Equal(t, 60, s.Tick())
}

func TestScrollerTickCarriesSlowVelocity(t *testing.T) {
	s, clock, _ := newTestScroller(t)
	s.SetVelocity(0.01)
	s.SetVelocity(0.02)

	total := 0
	for i := 0; i < 10; i++ {
		clock.Advance(10 * time.Millisecond)
		total += s.Tick()
	}

	assert.Equal(t, 2, total)
}

func TestScrollerTickNegativeVelocity(t *testing.T) {
	s, clock, _ := newTestScroller(t)
	s.SetVelocity(-0.5)
	s.SetVelocity(-1)

	clock.Advance(20 * time.Millisecond)

	assert.Equal(t, -20, s.Tick())
}

func TestScrollerTickWhenIdleIsZero(t *testing.T) {
	s, clock, _ := newTestScroller(t)

	clock.Advance(time.Second)
	assert.Equal(t, 0, s.Tick())

	s.SetVelocity(0.2)
	clock.Advance(time.Second)
	assert.Equal(t, 0, s.Tick())
}
