package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// Clock supplies wall time to the frame loop.
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// ManualClock only moves when advanced.
type ManualClock struct {
	T time.Time
}

func (m *ManualClock) Now() time.Time { return m.T }

func (m *ManualClock) Advance(d time.Duration) {
	m.T = m.T.Add(d)
}

// ClockData turns wall time into an uncapped per-frame delta in ms.
type ClockData struct {
	Source  Clock
	DeltaMs float64
	Frame   uint64
	last    time.Time
	started bool
}

// Tick samples the clock. The first tick has a zero delta.
func (c *ClockData) Tick() float64 {
	src := c.Source
	if src == nil {
		src = SystemClock{}
	}
	now := src.Now()
	if !c.started {
		c.started = true
		c.DeltaMs = 0
	} else {
		c.DeltaMs = float64(now.Sub(c.last)) / float64(time.Millisecond)
	}
	c.last = now
	c.Frame++
	return c.DeltaMs
}

var FrameClock = donburi.NewComponentType[ClockData]()
