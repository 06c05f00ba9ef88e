// Package link reports phone connection changes.
package link

import (
	"github.com/rs/zerolog"

	"slowtime/hal"
	"slowtime/kernel"
)

type Service struct {
	l   hal.Link
	log zerolog.Logger

	connected bool
	known     bool
}

// New accepts a nil source; the service then posts nothing and the face never
// shows the disconnected marker.
func New(l hal.Link, log zerolog.Logger) *Service {
	return &Service{l: l, log: log.With().Str("service", "link").Logger()}
}

func (s *Service) Name() string { return "link" }

func (s *Service) Poll(d *kernel.Dispatcher) {
	if s.l == nil {
		return
	}
	c := s.l.Connected()
	if s.known && c == s.connected {
		return
	}
	if !d.Post(kernel.Link(c)) {
		return
	}
	if s.known {
		s.log.Info().Bool("connected", c).Msg("link changed")
	}
	s.connected, s.known = c, true
}
