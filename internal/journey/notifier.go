package journey

// ImmersionEvent is emitted on the frame the camera crosses the waterline.
type ImmersionEvent struct {
	Immersed bool
}

// ImmersionHandler receives immersion edges.
type ImmersionHandler func(ImmersionEvent)

// Notifier turns the per-frame immersion flag into edge events. It starts
// dry and only remembers the last value it saw.
type Notifier struct {
	prev     bool
	handlers []ImmersionHandler
}

// NewNotifier returns a Notifier in the dry state.
func NewNotifier() *Notifier {
	return &Notifier{}
}

// Subscribe registers fn; handlers run in registration order.
func (n *Notifier) Subscribe(fn ImmersionHandler) {
	if fn == nil {
		return
	}
	n.handlers = append(n.handlers, fn)
}

// Observe records immersed and reports whether it differs from the previous
// frame. Handlers fire only on a change.
func (n *Notifier) Observe(immersed bool) (ImmersionEvent, bool) {
	if immersed == n.prev {
		return ImmersionEvent{}, false
	}
	n.prev = immersed
	ev := ImmersionEvent{Immersed: immersed}
	for _, fn := range n.handlers {
		fn(ev)
	}
	return ev, true
}

// Immersed returns the last observed value.
func (n *Notifier) Immersed() bool { return n.prev }

// Reset returns the notifier to dry without emitting.
func (n *Notifier) Reset() { n.prev = false }
