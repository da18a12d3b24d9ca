package systems

// PointerFunc receives an absolute pointer position in window pixels.
type PointerFunc func(x, y float32)

// PointerBus fans pointer-move events out to subscribers.
// It is not safe for concurrent use; publish and subscribe from the main loop.
type PointerBus struct {
	listeners map[int]PointerFunc
	order     []int
	nextID    int
}

// NewPointerBus creates an empty bus.
func NewPointerBus() *PointerBus {
	return &PointerBus{listeners: make(map[int]PointerFunc)}
}

// Subscribe registers fn and returns a function that removes it again.
// The returned function may be called any number of times.
func (b *PointerBus) Subscribe(fn PointerFunc) (unsubscribe func()) {
	id := b.nextID
	b.nextID++
	b.listeners[id] = fn
	b.order = append(b.order, id)

	return func() {
		if _, ok := b.listeners[id]; !ok {
			return
		}
		delete(b.listeners, id)
		for i, o := range b.order {
			if o == id {
				b.order = append(b.order[:i], b.order[i+1:]...)
				break
			}
		}
	}
}

// Publish delivers a pointer position to every subscriber in subscription order.
func (b *PointerBus) Publish(x, y float32) {
	for _, id := range b.order {
		if fn, ok := b.listeners[id]; ok {
			fn(x, y)
		}
	}
}

// Len returns the number of live subscriptions.
func (b *PointerBus) Len() int {
	return len(b.listeners)
}

// FrameID identifies a pending frame callback.
type FrameID int

// FrameScheduler runs callbacks once on the next frame, in request order.
// Callbacks that want to run every frame must request themselves again.
type FrameScheduler struct {
	pending   []frameRequest
	running   []frameRequest
	cancelled map[FrameID]bool
	nextID    FrameID
}

type frameRequest struct {
	id FrameID
	fn func()
}

// NewFrameScheduler creates an empty scheduler.
func NewFrameScheduler() *FrameScheduler {
	return &FrameScheduler{nextID: 1, cancelled: make(map[FrameID]bool)}
}

// Request schedules fn for the next Run and returns an id usable with Cancel.
func (f *FrameScheduler) Request(fn func()) FrameID {
	id := f.nextID
	f.nextID++
	f.pending = append(f.pending, frameRequest{id: id, fn: fn})
	return id
}

// Cancel drops a pending callback. Unknown or already-run ids are ignored.
func (f *FrameScheduler) Cancel(id FrameID) {
	for i, r := range f.pending {
		if r.id == id {
			f.pending = append(f.pending[:i], f.pending[i+1:]...)
			return
		}
	}
	// Still queued in the batch that is running right now
	for _, r := range f.running {
		if r.id == id {
			f.cancelled[id] = true
			return
		}
	}
}

// Run executes the callbacks that were pending when Run started.
// Requests made during Run wait for the next frame.
func (f *FrameScheduler) Run() {
	f.running = f.pending
	f.pending = nil
	for _, r := range f.running {
		if f.cancelled[r.id] {
			continue
		}
		r.fn()
	}
	f.running = nil
	clear(f.cancelled)
}

// Pending returns the number of callbacks waiting for the next frame.
func (f *FrameScheduler) Pending() int {
	return len(f.pending)
}
