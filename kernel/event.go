package kernel

import (
	"fmt"
	"time"
)

// Kind identifies what an Event reports.
type Kind uint8

const (
	KindTick Kind = iota + 1
	KindBattery
	KindSteps
	KindStepsUnavailable
	KindLink
)

func (k Kind) String() string {
	switch k {
	case KindTick:
		return "tick"
	case KindBattery:
		return "battery"
	case KindSteps:
		return "steps"
	case KindStepsUnavailable:
		return "steps-unavailable"
	case KindLink:
		return "link"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Event is a fixed-size notification from a service to the face. Only the
// fields that belong to Kind are meaningful.
type Event struct {
	Kind Kind

	// Time is the wall clock snapshot of a tick.
	Time time.Time

	Percent   int
	Charging  bool
	Connected bool
}

func Tick(t time.Time) Event { return Event{Kind: KindTick, Time: t} }

func Battery(percent int, charging bool) Event {
	return Event{Kind: KindBattery, Percent: percent, Charging: charging}
}

func Steps(percent int) Event { return Event{Kind: KindSteps, Percent: percent} }

func StepsUnavailable() Event { return Event{Kind: KindStepsUnavailable} }

func Link(connected bool) Event { return Event{Kind: KindLink, Connected: connected} }
