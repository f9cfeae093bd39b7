package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const ms = time.Millisecond

func TestScheduler_Every(t *testing.T) {
	s := New()
	var fired []time.Duration
	s.Every(80*ms, func() { fired = append(fired, s.Now()) })

	s.Advance(250 * ms)
	assert.Equal(t, []time.Duration{80 * ms, 160 * ms, 240 * ms}, fired)
	assert.Equal(t, 250*ms, s.Now())
}

func TestScheduler_AfterRunsOnce(t *testing.T) {
	s := New()
	calls := 0
	s.After(500*ms, func() { calls++ })

	s.Advance(499 * ms)
	assert.Equal(t, 0, calls)
	s.Advance(1 * ms)
	assert.Equal(t, 1, calls)
	s.Advance(time.Second)
	assert.Equal(t, 1, calls)
	assert.Equal(t, 0, s.Pending())
}

func TestScheduler_DueOrder(t *testing.T) {
	s := New()
	var order []string
	s.Every(100*ms, func() { order = append(order, "slow") })
	s.Every(25*ms, func() { order = append(order, "fast") })
	s.After(100*ms, func() { order = append(order, "once") })

	s.Advance(100 * ms)
	assert.Equal(t, []string{"fast", "fast", "fast", "slow", "fast", "once"}, order,
		"ties at 100ms run in registration order")
}

func TestScheduler_Cancel(t *testing.T) {
	s := New()
	calls := 0
	h := s.Every(10*ms, func() { calls++ })

	s.Advance(35 * ms)
	s.Cancel(h)
	s.Advance(100 * ms)
	assert.Equal(t, 3, calls)

	s.Cancel(h)
	s.Cancel(Handle(999))
}

func TestScheduler_CancelFromCallback(t *testing.T) {
	s := New()
	calls := 0
	var h Handle
	h = s.Every(10*ms, func() {
		calls++
		if calls == 2 {
			s.Cancel(h)
		}
	})
	s.Advance(time.Second)
	assert.Equal(t, 2, calls)
}

func TestScheduler_NestedRegistration(t *testing.T) {
	s := New()
	var fired []time.Duration
	s.After(10*ms, func() {
		s.After(5*ms, func() { fired = append(fired, s.Now()) })
	})

	s.Advance(20 * ms)
	require.Len(t, fired, 1)
	assert.Equal(t, 15*ms, fired[0], "task created mid-advance fires within the same advance")
}

func TestScheduler_Stop(t *testing.T) {
	s := New()
	calls := 0
	s.Every(10*ms, func() { calls++ })
	s.After(15*ms, func() { s.Stop() })
	s.After(40*ms, func() { calls += 100 })

	s.Advance(time.Second)
	assert.Equal(t, 1, calls, "nothing runs after Stop, not even tasks due in the same advance")
	assert.True(t, s.Stopped())
	assert.Equal(t, 0, s.Pending())
	assert.Equal(t, 15*ms, s.Now(), "clock frozen")

	assert.Equal(t, Handle(0), s.Every(10*ms, func() { calls++ }))
	s.Advance(time.Second)
	assert.Equal(t, 1, calls)
}

func TestScheduler_EveryPanicsOnZeroPeriod(t *testing.T) {
	s := New()
	assert.Panics(t, func() { s.Every(0, func() {}) })
}

func TestScheduler_SixtyHertzIsDriftFree(t *testing.T) {
	s := New()
	ticks := 0
	s.Every(time.Second/60, func() { ticks++ })

	for i := 0; i < 600; i++ {
		s.Advance(time.Second / 60)
	}
	assert.Equal(t, 600, ticks)
}
