package menu

import (
	"slices"

	"honnef.co/go/radial"
)

// Click is a single click, dispatched in one cycle to every interested
// handler.
type Click struct {
	// Pos is the location of the click in menu coordinates, with the center
	// of the trigger at the origin.
	Pos radial.Point
	// Cycle identifies the dispatch cycle. Every call to
	// [Dispatcher.Dispatch] starts a new cycle.
	Cycle uint64
}

type Handler func(Click)

// Dispatcher delivers clicks the way a bubbling event is propagated: first to
// the handler of the target that was clicked, then to every global listener,
// in the order they were added. Handlers run to completion, one at a time.
//
// A Dispatcher is not safe for concurrent use.
type Dispatcher struct {
	cycle     uint64
	targets   []*Listener
	listeners []*Listener
}

// Listener is a handle for a registered handler. The handler stays registered
// until Release is called.
type Listener struct {
	d       *Dispatcher
	hit     func(radial.Point) bool
	handler Handler
}

// Release unregisters the handler. It is safe to call Release more than once.
func (l *Listener) Release() {
	if l == nil || l.d == nil {
		return
	}
	d := l.d
	l.d = nil
	match := func(o *Listener) bool { return o == l }
	d.targets = slices.DeleteFunc(d.targets, match)
	d.listeners = slices.DeleteFunc(d.listeners, match)
}

// Active reports whether the handler is still registered.
func (l *Listener) Active() bool {
	return l != nil && l.d != nil
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

// Target registers a target-local handler. It receives clicks for which hit
// returns true. If several targets are hit, the one registered last, which is
// considered topmost, receives the click.
func (d *Dispatcher) Target(hit func(radial.Point) bool, handler Handler) *Listener {
	l := &Listener{d: d, hit: hit, handler: handler}
	d.targets = append(d.targets, l)
	return l
}

// Listen registers a global handler that receives every click, after the
// clicked target's handler.
func (d *Dispatcher) Listen(handler Handler) *Listener {
	l := &Listener{d: d, handler: handler}
	d.listeners = append(d.listeners, l)
	return l
}

// Dispatch delivers a click at pos and returns the cycle it was delivered in.
func (d *Dispatcher) Dispatch(pos radial.Point) uint64 {
	d.cycle++
	ev := Click{Pos: pos, Cycle: d.cycle}

	for i := len(d.targets) - 1; i >= 0; i-- {
		if t := d.targets[i]; t.hit(pos) {
			t.handler(ev)
			break
		}
	}
	// Handlers may release listeners while we iterate; work on a snapshot and
	// skip the ones that are gone.
	for _, l := range slices.Clone(d.listeners) {
		if l.Active() {
			l.handler(ev)
		}
	}
	return ev.Cycle
}

// Listeners returns the number of registered handlers, targets included.
func (d *Dispatcher) Listeners() int {
	return len(d.targets) + len(d.listeners)
}
