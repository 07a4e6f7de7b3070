package event

import "testing"

func TestBusDeliversInOrder(t *testing.T) {
	b := NewBus(0)
	var got []string
	first := b.Subscribe(func(ev Event) { got = append(got, "a:"+ev.Type.String()) })
	b.Subscribe(func(ev Event) { got = append(got, "b:"+ev.Type.String()) })

	b.Publish(Event{Type: Jumped, Frame: 1})
	b.Publish(Event{Type: Landed, Frame: 2})
	if len(got) != 0 {
		t.Fatalf("events must not be delivered before the flush")
	}
	if n := b.Flush(); n != 2 {
		t.Fatalf("expected two delivered events, got %d", n)
	}
	want := []string{"a:jumped", "b:jumped", "a:landed", "b:landed"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}

	if !b.Unsubscribe(first) || b.Unsubscribe(first) {
		t.Fatalf("expected the first unsubscribe to succeed and the second to fail")
	}
	got = nil
	b.Publish(Event{Type: Reparented})
	b.Flush()
	if len(got) != 1 || got[0] != "b:reparented" {
		t.Fatalf("expected only the remaining handler to be called, got %v", got)
	}
}

func TestBusDrainWithoutSubscribers(t *testing.T) {
	b := NewBus(2)
	b.Publish(Event{Type: Landed, Frame: 1})
	b.Publish(Event{Type: Jumped, Frame: 2})
	b.Publish(Event{Type: Reparented, Frame: 3})
	if b.Flush() != 0 || b.Pending() != 2 {
		t.Fatalf("without subscribers events must stay queued")
	}
	events := b.Drain()
	if len(events) != 2 || events[0].Frame != 2 || events[1].Frame != 3 {
		t.Fatalf("expected the two newest events, got %v", events)
	}
	if b.Drain() != nil {
		t.Fatalf("expected an empty queue after draining")
	}
}
