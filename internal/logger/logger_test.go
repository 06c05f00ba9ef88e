package logger

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type lines struct{ got []string }

func (l *lines) WriteLineString(s string) { l.got = append(l.got, s) }
func (l *lines) WriteLineBytes(b []byte)  { l.got = append(l.got, string(b)) }

func TestLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, Level(true, true))
	assert.Equal(t, zerolog.InfoLevel, Level(false, true))
	assert.Equal(t, zerolog.WarnLevel, Level(false, false))
}

func TestNewJSONLines(t *testing.T) {
	sink := &lines{}
	log := New(sink, zerolog.InfoLevel, false)

	log.Debug().Msg("hidden")
	log.Info().Str("face", "slow").Msg("started")

	require.Len(t, sink.got, 1)
	assert.JSONEq(t, `{"level":"info","face":"slow","message":"started"}`, sink.got[0])
}

func TestNewConsole(t *testing.T) {
	sink := &lines{}
	log := New(sink, zerolog.WarnLevel, true)

	log.Warn().Int("outer", 3).Msg("degenerate layout")

	require.Len(t, sink.got, 1)
	assert.Contains(t, sink.got[0], "degenerate layout")
	assert.Contains(t, sink.got[0], "outer=3")
	assert.NotContains(t, sink.got[0], "\n")
}

func TestLineWriterNilSink(t *testing.T) {
	n, err := LineWriter{}.Write([]byte("x\n"))
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}
