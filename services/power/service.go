// Package power reports battery changes to the face.
package power

import (
	"github.com/rs/zerolog"

	"slowtime/hal"
	"slowtime/kernel"
)

type Service struct {
	p   hal.Power
	log zerolog.Logger

	percent  int
	charging bool
	known    bool
}

// New accepts a nil source for boards without a fuel gauge; the service then
// posts nothing and the battery ring stays empty.
func New(p hal.Power, log zerolog.Logger) *Service {
	return &Service{p: p, log: log.With().Str("service", "power").Logger()}
}

func (s *Service) Name() string { return "power" }

func (s *Service) Poll(d *kernel.Dispatcher) {
	if s.p == nil {
		return
	}
	percent, charging := s.p.Battery()
	if s.known && percent == s.percent && charging == s.charging {
		return
	}
	if !d.Post(kernel.Battery(percent, charging)) {
		return
	}
	if s.known && charging != s.charging {
		s.log.Info().Bool("charging", charging).Int("percent", percent).Msg("charger changed")
	}
	s.percent, s.charging, s.known = percent, charging, true
}
