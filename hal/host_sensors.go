//go:build !tinygo

package hal

import (
	"sync"
	"time"
)

const (
	drainEvery    = 30 * time.Minute
	chargeEvery   = time.Minute
	walkFromHour  = 7
	walkUntilHour = 22
)

// hostSensors simulates battery, pedometer and phone link from the simulated
// clock. Keyboard controls nudge the values on top of the simulation.
type hostSensors struct {
	mu  sync.Mutex
	now func() time.Time

	last     time.Time
	drainAcc time.Duration
	stepAcc  time.Duration

	battery  int
	charging bool

	steps       int
	stepsPerMin int
	health      bool
	day         int

	connected bool
}

func newHostSensors(cfg HostConfig, now func() time.Time) *hostSensors {
	if now == nil {
		now = time.Now
	}
	s := &hostSensors{
		now:         now,
		battery:     clamp(cfg.Battery, 0, 100),
		charging:    cfg.Charging,
		steps:       cfg.Steps,
		stepsPerMin: cfg.StepsPerMinute,
		health:      !cfg.NoHealth,
		connected:   !cfg.Disconnected,
	}
	s.last = now()
	s.day = s.last.YearDay()
	return s
}

// advance folds the simulated time since the last call into the readings.
func (s *hostSensors) advance() {
	now := s.now()
	elapsed := now.Sub(s.last)
	if elapsed <= 0 {
		return
	}
	s.last = now

	if d := now.YearDay(); d != s.day {
		s.day = d
		s.steps = 0
		s.stepAcc = 0
	}

	s.drainAcc += elapsed
	if s.charging {
		n := int(s.drainAcc / chargeEvery)
		s.drainAcc %= chargeEvery
		s.battery = clamp(s.battery+n, 0, 100)
	} else {
		n := int(s.drainAcc / drainEvery)
		s.drainAcc %= drainEvery
		s.battery = clamp(s.battery-n, 0, 100)
	}

	if h := now.Hour(); h >= walkFromHour && h < walkUntilHour && s.stepsPerMin > 0 {
		s.stepAcc += elapsed
		n := int(s.stepAcc / time.Minute)
		s.stepAcc %= time.Minute
		s.steps += n * s.stepsPerMin
	}
}

func (s *hostSensors) Battery() (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.advance()
	return s.battery, s.charging
}

func (s *hostSensors) StepsToday() (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.health {
		return 0, false
	}
	s.advance()
	return s.steps, true
}

func (s *hostSensors) Connected() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.connected
}

func (s *hostSensors) adjustBattery(delta int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.battery = clamp(s.battery+delta, 0, 100)
}

func (s *hostSensors) adjustSteps(delta int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.steps += delta
	if s.steps < 0 {
		s.steps = 0
	}
}

func (s *hostSensors) toggleCharging() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.charging = !s.charging
	s.drainAcc = 0
}

func (s *hostSensors) toggleLink() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.connected = !s.connected
}

// handleKey applies a simulator control and reports whether the key was one.
//
//	up/down     battery +/-5%
//	right/left  steps +/-500
//	c           toggle charging
//	b           toggle phone link
func (s *hostSensors) handleKey(ev KeyEvent) bool {
	if !ev.Press {
		return false
	}
	switch ev.Code {
	case KeyUp:
		s.adjustBattery(5)
		return true
	case KeyDown:
		s.adjustBattery(-5)
		return true
	case KeyRight:
		s.adjustSteps(500)
		return true
	case KeyLeft:
		s.adjustSteps(-500)
		return true
	}
	switch ev.Rune {
	case 'c', 'C':
		s.toggleCharging()
		return true
	case 'b', 'B':
		s.toggleLink()
		return true
	}
	return false
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
