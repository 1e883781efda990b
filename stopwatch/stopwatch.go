// Package stopwatch measures wall-clock intervals.
package stopwatch

import "time"

// Stopwatch measures the time between Start and Stop.
type Stopwatch struct {
	now         func() time.Time
	start, stop time.Time
}

// New returns a stopwatch reading the system clock.
func New() *Stopwatch { return &Stopwatch{now: time.Now} }

// WithClock returns a stopwatch reading the given clock.
func WithClock(now func() time.Time) *Stopwatch { return &Stopwatch{now: now} }

func (sw *Stopwatch) Start() {
	sw.start = sw.now()
	sw.stop = sw.start
}

func (sw *Stopwatch) Stop() { sw.stop = sw.now() }

// Elapsed returns the last measured interval.
func (sw *Stopwatch) Elapsed() time.Duration { return sw.stop.Sub(sw.start) }

// ElapsedSeconds returns the last measured interval in seconds.
func (sw *Stopwatch) ElapsedSeconds() float32 { return float32(sw.Elapsed().Seconds()) }
