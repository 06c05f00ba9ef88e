// Package health reports daily step progress as a percentage of the goal.
package health

import (
	"github.com/rs/zerolog"

	"slowtime/hal"
	"slowtime/kernel"
)

// DefaultGoal is used when the configured goal is not positive.
const DefaultGoal = 10000

type state uint8

const (
	stateUnknown state = iota
	stateUnavailable
	stateAvailable
)

type Service struct {
	h    hal.Health
	goal int
	log  zerolog.Logger

	state   state
	percent int
}

// New accepts a nil source for boards without a pedometer.
func New(h hal.Health, goal int, log zerolog.Logger) *Service {
	if goal <= 0 {
		goal = DefaultGoal
	}
	return &Service{h: h, goal: goal, log: log.With().Str("service", "health").Logger()}
}

func (s *Service) Name() string { return "health" }

func (s *Service) Goal() int { return s.goal }

// Percent converts a step count to goal progress. Counts past the goal give
// values above 100.
func (s *Service) Percent(steps int) int {
	if steps <= 0 {
		return 0
	}
	return steps * 100 / s.goal
}

// Poll posts the step percentage when it changes, or a single unavailable
// event when there is no source or it has no data.
func (s *Service) Poll(d *kernel.Dispatcher) {
	var (
		steps int
		ok    bool
	)
	if s.h != nil {
		steps, ok = s.h.StepsToday()
	}
	if !ok {
		if s.state == stateUnavailable {
			return
		}
		if d.Post(kernel.StepsUnavailable()) {
			s.log.Debug().Msg("step data unavailable")
			s.state = stateUnavailable
		}
		return
	}
	p := s.Percent(steps)
	if s.state == stateAvailable && p == s.percent {
		return
	}
	if d.Post(kernel.Steps(p)) {
		if p >= 100 && s.percent < 100 && s.state == stateAvailable {
			s.log.Info().Int("steps", steps).Int("goal", s.goal).Msg("step goal reached")
		}
		s.state = stateAvailable
		s.percent = p
	}
}
