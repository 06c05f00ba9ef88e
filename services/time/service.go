// Package timesvc turns the HAL base tick stream into one tick event per
// wall clock minute.
package timesvc

import (
	"time"

	"github.com/rs/zerolog"

	"slowtime/hal"
	"slowtime/kernel"
)

type Service struct {
	ht  hal.Time
	log zerolog.Logger

	seq     uint64
	minute  int64
	started bool
}

func New(ht hal.Time, log zerolog.Logger) *Service {
	return &Service{ht: ht, log: log.With().Str("service", "time").Logger()}
}

func (s *Service) Name() string { return "time" }

// Now is the wall clock, used for the snapshot taken before the first tick.
func (s *Service) Now() time.Time {
	if s.ht == nil {
		return time.Time{}
	}
	return s.ht.Now()
}

// Seq is the last base tick seen.
func (s *Service) Seq() uint64 { return s.seq }

// Poll posts a tick when the minute has changed since the last accepted one.
// The first poll always posts. A dropped tick is retried on the next poll.
func (s *Service) Poll(d *kernel.Dispatcher) {
	if s.ht == nil {
		return
	}
	if !s.drainTicks() && s.started {
		return
	}
	now := s.ht.Now()
	m := now.Unix() / 60
	if s.started && m == s.minute {
		return
	}
	if !d.Post(kernel.Tick(now)) {
		return
	}
	if s.started && m != s.minute+1 {
		s.log.Debug().Int64("skipped", m-s.minute-1).Msg("clock jumped")
	}
	s.started = true
	s.minute = m
}

// drainTicks consumes pending base ticks and reports whether any arrived.
func (s *Service) drainTicks() bool {
	ch := s.ht.Ticks()
	if ch == nil {
		return true
	}
	got := false
	for {
		select {
		case seq := <-ch:
			s.seq = seq
			got = true
		default:
			return got
		}
	}
}
