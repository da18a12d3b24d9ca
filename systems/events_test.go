package systems

import "testing"

func TestPointerBusDelivery(t *testing.T) {
	bus := NewPointerBus()

	var got [][2]float32
	bus.Subscribe(func(x, y float32) { got = append(got, [2]float32{x, y}) })
	calls := 0
	bus.Subscribe(func(x, y float32) { calls++ })

	bus.Publish(10, 20)
	bus.Publish(30, 40)

	if len(got) != 2 || got[1] != [2]float32{30, 40} {
		t.Errorf("first subscriber got %v", got)
	}
	if calls != 2 {
		t.Errorf("second subscriber called %d times, want 2", calls)
	}
	if bus.Len() != 2 {
		t.Errorf("Len() = %d, want 2", bus.Len())
	}
}

func TestPointerBusUnsubscribe(t *testing.T) {
	bus := NewPointerBus()

	a, b := 0, 0
	unsubA := bus.Subscribe(func(x, y float32) { a++ })
	bus.Subscribe(func(x, y float32) { b++ })

	bus.Publish(1, 1)
	unsubA()
	unsubA() // idempotent
	bus.Publish(2, 2)

	if a != 1 {
		t.Errorf("unsubscribed listener called %d times, want 1", a)
	}
	if b != 2 {
		t.Errorf("remaining listener called %d times, want 2", b)
	}
	if bus.Len() != 1 {
		t.Errorf("Len() = %d, want 1", bus.Len())
	}
}

func TestFrameSchedulerRunsOnce(t *testing.T) {
	f := NewFrameScheduler()
	calls := 0
	f.Request(func() { calls++ })

	f.Run()
	f.Run()

	if calls != 1 {
		t.Errorf("callback ran %d times, want 1", calls)
	}
	if f.Pending() != 0 {
		t.Errorf("Pending() = %d, want 0", f.Pending())
	}
}

func TestFrameSchedulerReRequestWaitsForNextFrame(t *testing.T) {
	f := NewFrameScheduler()
	calls := 0
	var loop func()
	loop = func() {
		calls++
		f.Request(loop)
	}
	f.Request(loop)

	for i := 0; i < 5; i++ {
		f.Run()
	}
	if calls != 5 {
		t.Errorf("self-requesting callback ran %d times in 5 frames, want 5", calls)
	}
	if f.Pending() != 1 {
		t.Errorf("Pending() = %d, want 1", f.Pending())
	}
}

func TestFrameSchedulerCancel(t *testing.T) {
	f := NewFrameScheduler()
	ran := false
	id := f.Request(func() { ran = true })
	f.Cancel(id)
	f.Cancel(id)    // no-op
	f.Cancel(12345) // unknown id
	f.Run()

	if ran {
		t.Error("cancelled callback ran")
	}
}

func TestFrameSchedulerCancelWithinSameFrame(t *testing.T) {
	f := NewFrameScheduler()
	ran := false
	var second FrameID
	f.Request(func() { f.Cancel(second) })
	second = f.Request(func() { ran = true })

	f.Run()
	if ran {
		t.Error("callback cancelled earlier in the same frame still ran")
	}

	// Cancellation marks do not leak into later frames
	again := false
	f.Request(func() { again = true })
	f.Run()
	if !again {
		t.Error("callback in the following frame did not run")
	}
}
