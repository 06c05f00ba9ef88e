package kernel

import (
	"runtime"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestMailboxTryRecvEmpty(t *testing.T) {
	var mb Mailbox

	_, ok := mb.TryRecv()
	if ok {
		t.Fatalf("TryRecv() ok = true, want false")
	}
}

func TestMailboxTrySendFull(t *testing.T) {
	var mb Mailbox

	for i := 0; i < mailboxSlots; i++ {
		if ok := mb.TrySend(Steps(i)); !ok {
			t.Fatalf("TrySend() ok = false at slot %d, want true", i)
		}
	}
	if ok := mb.TrySend(Steps(-1)); ok {
		t.Fatalf("TrySend() ok = true when full, want false")
	}
	if got := mb.Len(); got != mailboxSlots {
		t.Fatalf("Len() = %d, want %d", got, mailboxSlots)
	}

	for i := 0; i < mailboxSlots; i++ {
		ev, ok := mb.TryRecv()
		if !ok {
			t.Fatalf("TryRecv() ok = false at slot %d, want true", i)
		}
		if ev.Percent != i {
			t.Fatalf("TryRecv() percent = %d, want %d", ev.Percent, i)
		}
	}
	if _, ok := mb.TryRecv(); ok {
		t.Fatalf("TryRecv() ok = true after draining, want false")
	}
}

func TestMailboxWrapsAround(t *testing.T) {
	var mb Mailbox

	for lap := 0; lap < 5; lap++ {
		for i := 0; i < mailboxSlots-3; i++ {
			if !mb.TrySend(Battery(i, lap%2 == 0)) {
				t.Fatalf("lap %d: TrySend(%d) failed", lap, i)
			}
		}
		for i := 0; i < mailboxSlots-3; i++ {
			ev, ok := mb.TryRecv()
			if !ok || ev.Percent != i || ev.Kind != KindBattery {
				t.Fatalf("lap %d: TryRecv() = %+v, %v; want battery %d", lap, ev, ok, i)
			}
		}
	}
}

func TestMailboxConcurrentProducers(t *testing.T) {
	oldProcs := runtime.GOMAXPROCS(1)
	defer runtime.GOMAXPROCS(oldProcs)

	const (
		producers = 4
		perProd   = 10_000
		total     = producers * perProd
	)

	var mb Mailbox

	start := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(producers)
	for producerID := 0; producerID < producers; producerID++ {
		go func(producerID int) {
			defer wg.Done()
			<-start
			for i := 0; i < perProd; i++ {
				mb.Send(Steps(producerID*perProd + i))
			}
		}(producerID)
	}
	close(start)

	seen := make([]bool, total)
	last := make([]int, producers)
	for i := range last {
		last[i] = -1
	}
	for i := 0; i < total; i++ {
		ev := mb.Recv()
		if ev.Kind != KindSteps {
			t.Fatalf("Recv() kind = %v, want steps", ev.Kind)
		}
		id := ev.Percent
		if id < 0 || id >= total {
			t.Fatalf("Recv() id = %d, want < %d", id, total)
		}
		if seen[id] {
			t.Fatalf("Recv() duplicate id %d", id)
		}
		seen[id] = true

		// Events from one producer keep their order.
		p := id / perProd
		if id <= last[p] {
			t.Fatalf("Recv() producer %d out of order: %d after %d", p, id, last[p])
		}
		last[p] = id
	}

	wg.Wait()
}

func TestDispatcherDropsWhenFull(t *testing.T) {
	d := NewDispatcher(zerolog.Nop())

	for i := 0; i < mailboxSlots; i++ {
		if !d.Post(Link(i%2 == 0)) {
			t.Fatalf("Post() = false at %d, want true", i)
		}
	}
	if d.Post(Link(true)) {
		t.Fatalf("Post() = true when full, want false")
	}
	if got := d.Dropped(); got != 1 {
		t.Fatalf("Dropped() = %d, want 1", got)
	}
	if got := d.Posted(); got != mailboxSlots {
		t.Fatalf("Posted() = %d, want %d", got, mailboxSlots)
	}

	n := d.Drain(func(Event) {})
	if n != mailboxSlots {
		t.Fatalf("Drain() = %d, want %d", n, mailboxSlots)
	}
	if d.Pending() != 0 {
		t.Fatalf("Pending() = %d after drain, want 0", d.Pending())
	}
}

func TestDispatcherDrainOrder(t *testing.T) {
	d := NewDispatcher(zerolog.Nop())
	now := time.Date(2024, 3, 9, 6, 30, 0, 0, time.UTC)

	d.Post(Tick(now))
	d.Post(Battery(40, true))
	d.Post(StepsUnavailable())

	var kinds []Kind
	d.Drain(func(ev Event) { kinds = append(kinds, ev.Kind) })

	want := []Kind{KindTick, KindBattery, KindStepsUnavailable}
	if len(kinds) != len(want) {
		t.Fatalf("Drain() delivered %v, want %v", kinds, want)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Fatalf("Drain()[%d] = %v, want %v", i, kinds[i], want[i])
		}
	}
}

type countingSource struct{ polls int }

func (s *countingSource) Name() string { return "counting" }

func (s *countingSource) Poll(d *Dispatcher) {
	s.polls++
	d.Post(Steps(s.polls))
}

func TestDispatcherPollSkipsNil(t *testing.T) {
	d := NewDispatcher(zerolog.Nop())
	src := &countingSource{}

	d.Poll(src, nil, src)

	if src.polls != 2 {
		t.Fatalf("polls = %d, want 2", src.polls)
	}
	if d.Pending() != 2 {
		t.Fatalf("Pending() = %d, want 2", d.Pending())
	}
}
