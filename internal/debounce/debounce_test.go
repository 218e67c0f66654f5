package debounce

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func TestDebouncerFiresOnceAfterQuietPeriod(t *testing.T) {
	t.Parallel()

	clock := NewFakeClock(epoch)
	d := New(clock, time.Second)

	var calls []int
	for i := 1; i <= 3; i++ {
		i := i
		d.Trigger(func() { calls = append(calls, i) })
		clock.Advance(300 * time.Millisecond)
	}
	require.Empty(t, calls, "window resets on every trigger")
	require.True(t, d.Pending())

	clock.Advance(time.Second)
	assert.Equal(t, []int{3}, calls)
	assert.False(t, d.Pending())
}

func TestDebouncerSpacedTriggersEachFire(t *testing.T) {
	t.Parallel()

	clock := NewFakeClock(epoch)
	d := New(clock, time.Second)

	count := 0
	d.Trigger(func() { count++ })
	clock.Advance(1500 * time.Millisecond)
	d.Trigger(func() { count++ })
	clock.Advance(1500 * time.Millisecond)

	assert.Equal(t, 2, count)
}

func TestDebouncerCancelDiscardsPending(t *testing.T) {
	t.Parallel()

	clock := NewFakeClock(epoch)
	d := New(clock, time.Second)

	fired := false
	d.Trigger(func() { fired = true })
	d.Cancel()
	clock.Advance(5 * time.Second)

	assert.False(t, fired)
	assert.False(t, d.Pending())
	assert.Zero(t, clock.Pending())
}

func TestDebouncerTriggerAfterOverridesWindow(t *testing.T) {
	t.Parallel()

	clock := NewFakeClock(epoch)
	d := New(clock, time.Hour)

	fired := false
	d.TriggerAfter(10*time.Millisecond, func() { fired = true })
	clock.Advance(10 * time.Millisecond)

	assert.True(t, fired)
}

func TestDebouncerSystemClock(t *testing.T) {
	t.Parallel()

	d := New(nil, 5*time.Millisecond)
	done := make(chan struct{})
	d.Trigger(func() { close(done) })

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("debounced call never ran")
	}
}

func TestFakeClockRunsInDeadlineOrder(t *testing.T) {
	t.Parallel()

	clock := NewFakeClock(epoch)
	var order []string
	clock.AfterFunc(2*time.Second, func() { order = append(order, "late") })
	clock.AfterFunc(time.Second, func() { order = append(order, "early") })

	clock.Advance(3 * time.Second)
	assert.Equal(t, []string{"early", "late"}, order)
	assert.Equal(t, epoch.Add(3*time.Second), clock.Now())
}
