package face

import (
	"slowtime/internal/geometry"
	"slowtime/kernel"
)

// Apply folds one event into the face state and marks the affected layers.
// Unknown kinds are ignored.
func (r *Renderer) Apply(ev kernel.Event) {
	switch ev.Kind {
	case kernel.KindTick:
		r.Tick(geometry.ReadingFromTime(ev.Time), DateOf(ev.Time))
	case kernel.KindBattery:
		r.Battery(ev.Percent, ev.Charging)
	case kernel.KindSteps:
		r.Steps(ev.Percent)
	case kernel.KindStepsUnavailable:
		r.StepsUnavailable()
	case kernel.KindLink:
		r.Link(ev.Connected)
	default:
		r.log.Debug().Stringer("kind", ev.Kind).Msg("ignoring event")
	}
}
