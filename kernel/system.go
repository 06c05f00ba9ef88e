package kernel

import (
	"sync/atomic"

	"github.com/rs/zerolog"
)

// Source is a service that turns hardware readings into events.
type Source interface {
	Name() string
	Poll(d *Dispatcher)
}

// Dispatcher serializes events from any number of producers to one consumer.
// Producers call Post from any goroutine; Drain must only ever be called from
// the goroutine that owns the face state.
type Dispatcher struct {
	mbox    Mailbox
	posted  atomic.Uint64
	dropped atomic.Uint64
	log     zerolog.Logger
}

// NewDispatcher creates an empty dispatcher.
func NewDispatcher(log zerolog.Logger) *Dispatcher {
	return &Dispatcher{log: log.With().Str("component", "kernel").Logger()}
}

// Post queues ev without blocking. When the mailbox is full the event is
// dropped and counted; the next reading from the same source supersedes it.
func (d *Dispatcher) Post(ev Event) bool {
	if !d.mbox.TrySend(ev) {
		n := d.dropped.Add(1)
		d.log.Debug().Stringer("kind", ev.Kind).Uint64("dropped", n).Msg("mailbox full, event dropped")
		return false
	}
	d.posted.Add(1)
	return true
}

// Drain hands queued events to fn in arrival order and returns how many were
// delivered. It stops after one mailbox worth so a busy producer cannot starve
// rendering.
func (d *Dispatcher) Drain(fn func(Event)) int {
	n := 0
	for n < mailboxSlots {
		ev, ok := d.mbox.TryRecv()
		if !ok {
			break
		}
		fn(ev)
		n++
	}
	return n
}

// Poll asks each source for new readings.
func (d *Dispatcher) Poll(sources ...Source) {
	for _, s := range sources {
		if s == nil {
			continue
		}
		s.Poll(d)
	}
}

// Pending is the approximate number of queued events.
func (d *Dispatcher) Pending() int { return d.mbox.Len() }

// Posted counts accepted events.
func (d *Dispatcher) Posted() uint64 { return d.posted.Load() }

// Dropped counts events lost to a full mailbox.
func (d *Dispatcher) Dropped() uint64 { return d.dropped.Load() }
