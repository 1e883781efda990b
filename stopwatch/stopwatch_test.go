package stopwatch

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStopwatch(t *testing.T) {
	base := time.Date(2019, 1, 1, 0, 0, 0, 0, time.UTC)
	ticks := []time.Time{base, base.Add(250 * time.Millisecond)}
	sw := WithClock(func() time.Time {
		now := ticks[0]
		ticks = ticks[1:]
		return now
	})

	sw.Start()
	assert.Zero(t, sw.ElapsedSeconds(), "before Stop")
	sw.Stop()
	assert.Equal(t, 250*time.Millisecond, sw.Elapsed())
	assert.InDelta(t, 0.25, sw.ElapsedSeconds(), 1e-6)
}

func TestSystemClock(t *testing.T) {
	sw := New()
	sw.Start()
	time.Sleep(time.Millisecond)
	sw.Stop()
	assert.True(t, sw.Elapsed() >= time.Millisecond)
}
