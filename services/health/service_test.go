package health_test

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"slowtime/kernel"
	"slowtime/services/health"
)

type fakeHealth struct {
	steps int
	ok    bool
}

func (f *fakeHealth) StepsToday() (int, bool) { return f.steps, f.ok }

func drain(d *kernel.Dispatcher) []kernel.Event {
	var out []kernel.Event
	d.Drain(func(ev kernel.Event) { out = append(out, ev) })
	return out
}

func TestPercent(t *testing.T) {
	s := health.New(nil, 8000, zerolog.Nop())
	tests := []struct {
		steps int
		want  int
	}{
		{0, 0},
		{-5, 0},
		{4000, 50},
		{7999, 99},
		{8000, 100},
		{12000, 150},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, s.Percent(tt.steps), "steps %d", tt.steps)
	}
}

func TestDefaultGoal(t *testing.T) {
	assert.Equal(t, health.DefaultGoal, health.New(nil, 0, zerolog.Nop()).Goal())
}

func TestPollPostsPercentChanges(t *testing.T) {
	fh := &fakeHealth{steps: 5000, ok: true}
	s := health.New(fh, 10000, zerolog.Nop())
	d := kernel.NewDispatcher(zerolog.Nop())

	s.Poll(d)
	evs := drain(d)
	require.Len(t, evs, 1)
	assert.Equal(t, kernel.Steps(50), evs[0])

	fh.steps = 5050
	s.Poll(d)
	assert.Empty(t, drain(d), "same percent")

	fh.steps = 12000
	s.Poll(d)
	evs = drain(d)
	require.Len(t, evs, 1)
	assert.Equal(t, 120, evs[0].Percent)
}

func TestUnavailablePostedOnce(t *testing.T) {
	d := kernel.NewDispatcher(zerolog.Nop())

	s := health.New(nil, 10000, zerolog.Nop())
	s.Poll(d)
	s.Poll(d)
	evs := drain(d)
	require.Len(t, evs, 1)
	assert.Equal(t, kernel.KindStepsUnavailable, evs[0].Kind)

	fh := &fakeHealth{steps: 100, ok: true}
	s = health.New(fh, 10000, zerolog.Nop())
	s.Poll(d)
	fh.ok = false
	s.Poll(d)
	s.Poll(d)
	fh.ok = true
	s.Poll(d)
	evs = drain(d)
	require.Len(t, evs, 3)
	assert.Equal(t, kernel.KindSteps, evs[0].Kind)
	assert.Equal(t, kernel.KindStepsUnavailable, evs[1].Kind)
	assert.Equal(t, kernel.KindSteps, evs[2].Kind)
}
