package hal

import (
	"sync/atomic"
	"time"
)

type hostTime struct {
	ms atomic.Uint64

	last time.Time
	acc  time.Duration
}

func newHostTime() *hostTime {
	return &hostTime{}
}

func (t *hostTime) Millis() uint64 { return t.ms.Load() }

// step advances the clock by the wall time elapsed since the previous call.
// The first call only records the starting point.
func (t *hostTime) step() {
	now := time.Now()
	if t.last.IsZero() {
		t.last = now
		t.acc = 0
		return
	}

	t.acc += now.Sub(t.last)
	t.last = now

	const tickDur = time.Millisecond
	ticks := uint64(t.acc / tickDur)
	if ticks == 0 {
		return
	}
	t.acc = t.acc % tickDur
	t.ms.Add(ticks)
}
