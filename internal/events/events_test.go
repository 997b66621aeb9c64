package events

import "testing"

func TestBusDeliversToAllSubscribers(t *testing.T) {
	var bus Bus[SubtitleChanged]
	ch1, cancel1 := bus.Subscribe(1)
	defer cancel1()
	ch2, cancel2 := bus.Subscribe(1)
	defer cancel2()

	bus.Publish(SubtitleChanged{Text: "hello"})

	got1 := <-ch1
	got2 := <-ch2
	if got1.Text != "hello" || got2.Text != "hello" {
		t.Fatalf("got %+v, %+v", got1, got2)
	}
}

func TestBusPublishDoesNotBlockOnFullSubscriber(t *testing.T) {
	var bus Bus[SubtitleChanged]
	ch, cancel := bus.Subscribe(1)
	defer cancel()

	bus.Publish(SubtitleChanged{Text: "first"})
	bus.Publish(SubtitleChanged{Text: "second"})

	got := <-ch
	if got.Text != "first" {
		t.Fatalf("got %q, want first", got.Text)
	}
	select {
	case extra := <-ch:
		t.Fatalf("unexpected second delivery: %+v", extra)
	default:
	}
}

func TestUnsubscribeClosesChannel(t *testing.T) {
	var bus Bus[NoteAdded]
	ch, cancel := bus.Subscribe(1)
	cancel()

	if _, ok := <-ch; ok {
		t.Fatalf("expected closed channel after unsubscribe")
	}
}
