package kernel

import (
	"runtime"
	"sync/atomic"
)

const (
	mailboxSlots = 32
	mailboxMask  = mailboxSlots - 1
)

type slot struct {
	// seq is the slot's sequence number minus its index, so the zero value marks
	// every slot free for its first lap.
	seq atomic.Uint32
	ev  Event
}

// Mailbox is a fixed-size multi-producer, single-consumer queue of events.
// It never allocates and the zero value is ready to use. A slot becomes visible
// to the consumer only after its producer finished writing it.
type Mailbox struct {
	_     [0]func() // prevent accidental copying.
	head  atomic.Uint32
	tail  atomic.Uint32
	slots [mailboxSlots]slot
}

// TrySend attempts to enqueue an event, returning false if the mailbox is full.
func (mb *Mailbox) TrySend(ev Event) bool {
	for {
		pos := mb.head.Load()
		idx := pos & mailboxMask
		s := &mb.slots[idx]
		diff := int32(s.seq.Load() + idx - pos)
		switch {
		case diff == 0:
			if mb.head.CompareAndSwap(pos, pos+1) {
				s.ev = ev
				s.seq.Store(pos + 1 - idx)
				return true
			}
		case diff < 0:
			return false
		}
		// Another producer claimed pos; reload.
	}
}

// Send enqueues an event, blocking until it succeeds.
func (mb *Mailbox) Send(ev Event) {
	for !mb.TrySend(ev) {
		runtime.Gosched()
	}
}

// TryRecv attempts to dequeue one event, returning false if empty. Only one
// goroutine may receive.
func (mb *Mailbox) TryRecv() (Event, bool) {
	pos := mb.tail.Load()
	idx := pos & mailboxMask
	s := &mb.slots[idx]
	if int32(s.seq.Load()+idx-(pos+1)) < 0 {
		return Event{}, false
	}

	ev := s.ev
	s.ev = Event{}
	s.seq.Store(pos + mailboxSlots - idx)
	mb.tail.Store(pos + 1)
	return ev, true
}

// Recv blocks until one event is available.
func (mb *Mailbox) Recv() Event {
	for {
		ev, ok := mb.TryRecv()
		if ok {
			return ev
		}
		runtime.Gosched()
	}
}

// Len is a racy count of queued events, for diagnostics.
func (mb *Mailbox) Len() int {
	n := int32(mb.head.Load() - mb.tail.Load())
	if n < 0 {
		return 0
	}
	return int(n)
}
