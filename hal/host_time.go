//go:build !tinygo

package hal

import "time"

// hostTime drives the tick stream from the runner loop and reports a simulated
// wall clock that can run faster than real time.
type hostTime struct {
	ch  chan uint64
	seq uint64

	last time.Time
	acc  time.Duration

	clock  func() time.Time
	origin time.Time
	start  time.Time
	speed  float64
}

func newHostTime(start time.Time, speed float64) *hostTime {
	return newHostTimeWithClock(start, speed, time.Now)
}

func newHostTimeWithClock(start time.Time, speed float64, clock func() time.Time) *hostTime {
	if clock == nil {
		clock = time.Now
	}
	if speed <= 0 {
		speed = 1
	}
	origin := clock()
	if start.IsZero() {
		start = origin
	}
	return &hostTime{
		ch:     make(chan uint64, 1024),
		clock:  clock,
		origin: origin,
		start:  start,
		speed:  speed,
	}
}

func (t *hostTime) Ticks() <-chan uint64 { return t.ch }

// Now returns start plus the real time elapsed since the HAL was created,
// scaled by speed.
func (t *hostTime) Now() time.Time {
	elapsed := t.clock().Sub(t.origin)
	return t.start.Add(time.Duration(float64(elapsed) * t.speed))
}

func (t *hostTime) step(n uint64) {
	now := t.clock()
	if t.last.IsZero() {
		t.last = now
		t.acc = 0
		t.stepN(n)
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
	t.stepN(ticks)
}

func (t *hostTime) stepN(n uint64) {
	for i := uint64(0); i < n; i++ {
		t.seq++
		select {
		case t.ch <- t.seq:
		default:
		}
	}
}
