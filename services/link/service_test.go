package link_test

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"slowtime/kernel"
	"slowtime/services/link"
)

type fakeLink struct{ connected bool }

func (f *fakeLink) Connected() bool { return f.connected }

func TestPollPostsChanges(t *testing.T) {
	fl := &fakeLink{connected: true}
	s := link.New(fl, zerolog.Nop())
	d := kernel.NewDispatcher(zerolog.Nop())

	var got []kernel.Event
	collect := func(ev kernel.Event) { got = append(got, ev) }

	s.Poll(d)
	s.Poll(d)
	fl.connected = false
	s.Poll(d)
	d.Drain(collect)

	require.Len(t, got, 2)
	assert.True(t, got[0].Connected)
	assert.False(t, got[1].Connected)
}

func TestNilSource(t *testing.T) {
	s := link.New(nil, zerolog.Nop())
	d := kernel.NewDispatcher(zerolog.Nop())
	s.Poll(d)
	assert.Zero(t, d.Pending())
}
