// Package menu implements the interaction side of a radial menu: opening and
// closing it in response to clicks, and turning a click on a wedge into a
// selected value.
//
// Clicks reach a [Controller] through a [Dispatcher], which models how a
// platform propagates a click: the clicked target's handler runs first, then
// every global listener. A controller registers both when it is mounted and
// releases both when it is unmounted.
package menu

import (
	"errors"
	"io"
	"log/slog"
	"slices"

	"honnef.co/go/radial"
)

// Item is one option of a menu.
type Item struct {
	// Value is reported as the menu's selection when the item's wedge is
	// clicked.
	Value string
	// Label is the content shown on the item's wedge.
	Label string
}

// Geometry holds the dimensions of a menu.
type Geometry struct {
	// TriggerRadius is the radius of the round trigger control, which is
	// also the inner radius of the wedges.
	TriggerRadius float64
	// MenuRadius is the outer radius of the wedges.
	MenuRadius  float64
	StrokeWidth float64
	Gap         float64
}

// DefaultGeometry matches a 50px trigger inside a 200px menu with 2px gaps.
var DefaultGeometry = Geometry{
	TriggerRadius: 25,
	MenuRadius:    100,
	StrokeWidth:   0,
	Gap:           2,
}

// ErrMounted is returned when mounting a controller that is already mounted.
var ErrMounted = errors.New("menu: already mounted")

type Option func(*Controller)

// WithLogger sets the logger used for state transitions. By default nothing
// is logged.
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) { c.log = l }
}

// OnChange sets a function that is called when the user selects a value.
// Programmatic changes through [Controller.SetValue] are not reported.
func OnChange(fn func(old, new string)) Option {
	return func(c *Controller) { c.onChange = fn }
}

// Controller owns the state of one menu.
//
// A Controller is not safe for concurrent use; like the [Dispatcher] it is
// attached to, it expects clicks to be handled one at a time.
type Controller struct {
	items    []Item
	geometry Geometry
	log      *slog.Logger
	onChange func(old, new string)

	wedges  []radial.Wedge
	trigger radial.Circle
	surface radial.Circle

	state State
	// openedIn is the cycle in which the menu entered Opening.
	openedIn uint64

	value    string
	hasValue bool

	target  *Listener
	dismiss *Listener
}

// New returns a controller for the given items. The items are copied; later
// changes to the slice are not observed.
func New(items []Item, geometry Geometry, opts ...Option) *Controller {
	c := &Controller{
		items:    slices.Clone(items),
		geometry: geometry,
		log:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Mount computes the menu's geometry and attaches the controller to d. The
// geometry is computed once; opening and closing the menu reuse it.
//
// Mount returns a [*radial.ConfigurationError] if the geometry cannot fit the
// items, in which case nothing is attached.
func (c *Controller) Mount(d *Dispatcher) error {
	if c.dismiss.Active() {
		return ErrMounted
	}
	g := c.geometry
	wedges, err := radial.LayoutSectors(len(c.items), g.MenuRadius, g.TriggerRadius, g.StrokeWidth, g.Gap)
	if err != nil {
		return err
	}
	c.wedges = wedges
	c.trigger = radial.Circle{Radius: g.TriggerRadius}
	c.surface = radial.Circle{Radius: g.MenuRadius}
	c.state = Closed

	c.target = d.Target(c.hit, c.handleTarget)
	c.dismiss = d.Listen(c.handleDismiss)
	c.log.Debug("menu mounted", "items", len(c.items), "wedges", len(c.wedges))
	return nil
}

// Unmount detaches the controller from its dispatcher and closes the menu.
// It is safe to call Unmount on a controller that is not mounted.
func (c *Controller) Unmount() {
	if c.target == nil && c.dismiss == nil {
		return
	}
	c.target.Release()
	c.dismiss.Release()
	c.target = nil
	c.dismiss = nil
	c.state = Closed
	c.log.Debug("menu unmounted")
}

// Mounted reports whether the controller is attached to a dispatcher.
func (c *Controller) Mounted() bool {
	return c.dismiss.Active()
}

// hit reports whether pos is on one of the controller's targets: the trigger,
// or a wedge while the menu is visible.
func (c *Controller) hit(pos radial.Point) bool {
	if c.trigger.Contains(pos) {
		return true
	}
	if !c.state.Visible() {
		return false
	}
	_, ok := radial.HitTest(c.wedges, pos)
	return ok
}

func (c *Controller) handleTarget(ev Click) {
	c.settle(ev.Cycle)
	if c.trigger.Contains(ev.Pos) {
		c.activate(ev.Cycle)
		return
	}
	if i, ok := radial.HitTest(c.wedges, ev.Pos); ok && c.state.Visible() {
		c.selectItem(i)
	}
}

func (c *Controller) handleDismiss(ev Click) {
	c.settle(ev.Cycle)
	inside := c.state.Visible() && c.surface.Contains(ev.Pos)
	c.transition(c.state.Dismiss(inside), "dismiss", ev.Cycle)
}

// settle promotes an Opening state left over from an earlier cycle.
func (c *Controller) settle(cycle uint64) {
	if c.state == Opening && cycle != c.openedIn {
		c.transition(c.state.Settle(), "settle", cycle)
	}
}

func (c *Controller) activate(cycle uint64) {
	next := c.state.Activate()
	if next == Opening {
		c.openedIn = cycle
	}
	c.transition(next, "activate", cycle)
}

func (c *Controller) selectItem(i int) {
	old := c.value
	c.value = c.items[i].Value
	c.hasValue = true
	c.log.Info("menu value selected", "index", i, "value", c.value)
	c.transition(c.state.Select(), "select", 0)
	if c.onChange != nil {
		c.onChange(old, c.value)
	}
}

func (c *Controller) transition(next State, cause string, cycle uint64) {
	if next == c.state {
		return
	}
	c.log.Debug("menu state", "from", c.state, "to", next, "cause", cause, "cycle", cycle)
	c.state = next
}

// Select selects the item at index i as if its wedge had been clicked: the
// value is recorded and reported, and the menu closes.
func (c *Controller) Select(i int) {
	if i < 0 || i >= len(c.items) {
		panic("menu: item index out of range")
	}
	c.selectItem(i)
}

// State returns the menu's current state.
func (c *Controller) State() State {
	return c.state
}

// Value returns the selected value. ok is false until a value has been
// selected or set.
func (c *Controller) Value() (value string, ok bool) {
	return c.value, c.hasValue
}

// SetValue sets the selected value without notifying the change observer.
// The trigger's label follows the new value.
func (c *Controller) SetValue(v string) {
	c.value = v
	c.hasValue = true
}

// TriggerLabel returns the text shown on the trigger, which is the selected
// value.
func (c *Controller) TriggerLabel() string {
	return c.value
}

// Items returns a copy of the menu's items.
func (c *Controller) Items() []Item {
	return slices.Clone(c.items)
}

// Wedges returns the wedges computed at mount time, in item order.
func (c *Controller) Wedges() []radial.Wedge {
	return c.wedges
}

// Trigger returns the trigger control's outline.
func (c *Controller) Trigger() radial.Circle {
	return c.trigger
}

// Geometry returns the dimensions the controller was created with.
func (c *Controller) Geometry() Geometry {
	return c.geometry
}

// Hover returns the index of the wedge under pos, if the menu is visible.
func (c *Controller) Hover(pos radial.Point) (int, bool) {
	if !c.state.Visible() {
		return -1, false
	}
	return radial.HitTest(c.wedges, pos)
}
