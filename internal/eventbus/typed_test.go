package eventbus

import "testing"

type improvement struct {
	run   string
	score float64
}

func TestTypedBusPublishSubscribe(t *testing.T) {
	bus := NewTyped[improvement]()
	ch := bus.Subscribe()
	bus.Publish(improvement{run: "a", score: 0.5})
	v := <-ch
	if v.run != "a" || v.score != 0.5 {
		t.Fatalf("unexpected event %+v", v)
	}
	bus.Unsubscribe(ch)
	if _, ok := <-ch; ok {
		t.Fatalf("expected channel closed by Unsubscribe")
	}
}

func TestTypedBusCloseKeepsBufferedEvents(t *testing.T) {
	bus := NewTyped[int]()
	ch1 := bus.Subscribe()
	ch2 := bus.Subscribe()
	bus.Publish(1)
	bus.Close()
	bus.Publish(2)
	if v, ok := <-ch1; !ok || v != 1 {
		t.Fatalf("expected buffered event, got %v %v", v, ok)
	}
	if _, ok := <-ch1; ok {
		t.Fatalf("expected ch1 closed")
	}
	<-ch2
	if _, ok := <-ch2; ok {
		t.Fatalf("expected ch2 closed")
	}
	if _, ok := <-bus.Subscribe(); ok {
		t.Fatalf("expected closed channel from closed bus")
	}
}

func TestTypedBusUnsubscribeAfterClose(t *testing.T) {
	bus := NewTyped[float64]()
	ch := bus.Subscribe()
	bus.Close()
	defer func() {
		if r := recover(); r != nil {
			t.Fatalf("panic on Unsubscribe after Close: %v", r)
		}
	}()
	bus.Unsubscribe(ch)
}

func TestTypedBusCountsDropped(t *testing.T) {
	bus := NewTypedWithBuffer[int](2)
	ch := bus.Subscribe()
	for i := 0; i < 5; i++ {
		bus.Publish(i)
	}
	if got := bus.Dropped(); got != 3 {
		t.Fatalf("expected 3 dropped got %d", got)
	}
	if v := <-ch; v != 0 {
		t.Fatalf("expected oldest event first, got %d", v)
	}

	if NewTypedWithBuffer[int](0).buffer != 1 {
		t.Fatalf("buffer must be at least one")
	}
}
