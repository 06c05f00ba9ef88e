package timesvc_test

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"slowtime/kernel"
	timesvc "slowtime/services/time"
)

type fakeTime struct {
	ch  chan uint64
	now time.Time
	seq uint64
}

func newFakeTime(now time.Time) *fakeTime {
	return &fakeTime{ch: make(chan uint64, 16), now: now}
}

func (f *fakeTime) Ticks() <-chan uint64 { return f.ch }
func (f *fakeTime) Now() time.Time       { return f.now }

func (f *fakeTime) advance(d time.Duration) {
	f.now = f.now.Add(d)
	f.seq++
	f.ch <- f.seq
}

func drain(d *kernel.Dispatcher) []kernel.Event {
	var out []kernel.Event
	d.Drain(func(ev kernel.Event) { out = append(out, ev) })
	return out
}

func TestPollPostsOncePerMinute(t *testing.T) {
	start := time.Date(2024, 3, 9, 6, 30, 10, 0, time.UTC)
	ft := newFakeTime(start)
	s := timesvc.New(ft, zerolog.Nop())
	d := kernel.NewDispatcher(zerolog.Nop())

	s.Poll(d)
	evs := drain(d)
	require.Len(t, evs, 1, "first poll snapshots the clock")
	assert.Equal(t, kernel.KindTick, evs[0].Kind)
	assert.Equal(t, start, evs[0].Time)

	ft.advance(20 * time.Second)
	s.Poll(d)
	assert.Empty(t, drain(d), "same minute")

	ft.advance(40 * time.Second)
	s.Poll(d)
	evs = drain(d)
	require.Len(t, evs, 1)
	assert.Equal(t, 31, evs[0].Time.Minute())
	assert.Equal(t, uint64(2), s.Seq())
}

func TestPollWithoutTicksKeepsQuiet(t *testing.T) {
	ft := newFakeTime(time.Date(2024, 3, 9, 6, 30, 0, 0, time.UTC))
	s := timesvc.New(ft, zerolog.Nop())
	d := kernel.NewDispatcher(zerolog.Nop())

	s.Poll(d)
	drain(d)

	ft.now = ft.now.Add(5 * time.Minute)
	s.Poll(d)
	assert.Empty(t, drain(d), "the clock is only read when base ticks arrive")

	ft.advance(0)
	s.Poll(d)
	assert.Len(t, drain(d), 1)
}

func TestPollRetriesDroppedTick(t *testing.T) {
	ft := newFakeTime(time.Date(2024, 3, 9, 23, 59, 0, 0, time.UTC))
	s := timesvc.New(ft, zerolog.Nop())
	d := kernel.NewDispatcher(zerolog.Nop())

	for d.Post(kernel.Battery(50, false)) {
	}
	s.Poll(d)
	assert.Equal(t, uint64(2), d.Dropped(), "the fill loop drops one, the tick another")

	drain(d)
	s.Poll(d)
	evs := drain(d)
	require.Len(t, evs, 1)
	assert.Equal(t, kernel.KindTick, evs[0].Kind)
}

func TestNilTime(t *testing.T) {
	s := timesvc.New(nil, zerolog.Nop())
	d := kernel.NewDispatcher(zerolog.Nop())
	s.Poll(d)
	assert.Zero(t, d.Pending())
	assert.True(t, s.Now().IsZero())
	assert.Equal(t, "time", s.Name())
}
