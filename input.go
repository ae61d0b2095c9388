package marquee

import (
	"log/slog"
	"time"
)

// wheelStep is the scroll distance, in pixels, of one wheel notch when a
// wheel event is not consumed by a listener.
const wheelStep = 40.0

// PointerEvent carries pointer press, move and release data. X and Y are
// document coordinates and are not adjusted for any container's scroll.
type PointerEvent struct {
	X, Y   float64
	Button MouseButton
	Target *Node

	defaultPrevented bool
}

// Pos returns the pointer position as a Vec2.
func (e *PointerEvent) Pos() Vec2 {
	return Vec2{e.X, e.Y}
}

// PreventDefault marks the event as handled so the document skips its
// default action.
func (e *PointerEvent) PreventDefault() {
	e.defaultPrevented = true
}

// DefaultPrevented reports whether a listener called PreventDefault.
func (e *PointerEvent) DefaultPrevented() bool {
	return e.defaultPrevented
}

// WheelEvent carries wheel input. DeltaX and DeltaY are in wheel notches.
type WheelEvent struct {
	X, Y           float64
	DeltaX, DeltaY float64
	Target         *Node

	defaultPrevented bool
}

// PreventDefault suppresses the document's native wheel scrolling.
func (e *WheelEvent) PreventDefault() {
	e.defaultPrevented = true
}

// DefaultPrevented reports whether a listener called PreventDefault.
func (e *WheelEvent) DefaultPrevented() bool {
	return e.defaultPrevented
}

// --- Listener registry ---

type listenerKind uint8

const (
	listenPointerDown listenerKind = iota
	listenPointerMove
	listenPointerUp
	listenWheel

	listenerKindCount
)

type listener struct {
	id      uint32
	node    *Node // nil for document-wide listeners
	pointer func(*PointerEvent)
	wheel   func(*WheelEvent)
	removed bool
}

type listenerRegistry struct {
	byKind [listenerKindCount][]*listener
	nextID uint32
}

func (r *listenerRegistry) add(kind listenerKind, l *listener) ListenerHandle {
	r.nextID++
	l.id = r.nextID
	r.byKind[kind] = append(r.byKind[kind], l)
	return ListenerHandle{id: l.id, reg: r, kind: kind}
}

// snapshot returns the current listeners of kind. Dispatch iterates the
// snapshot and skips entries removed mid-dispatch.
func (r *listenerRegistry) snapshot(kind listenerKind) []*listener {
	return append([]*listener(nil), r.byKind[kind]...)
}

// ListenerHandle allows removing a pointer or wheel listener. The zero
// value is an inactive handle.
type ListenerHandle struct {
	id   uint32
	reg  *listenerRegistry
	kind listenerKind
}

// Remove unregisters the listener. Safe to call during dispatch and more
// than once.
func (h ListenerHandle) Remove() {
	if h.reg == nil {
		return
	}
	s := h.reg.byKind[h.kind]
	for i, l := range s {
		if l.id == h.id {
			l.removed = true
			copy(s[i:], s[i+1:])
			s[len(s)-1] = nil
			h.reg.byKind[h.kind] = s[:len(s)-1]
			return
		}
	}
}

// Active reports whether the handle refers to a registered listener.
func (h ListenerHandle) Active() bool {
	if h.reg == nil {
		return false
	}
	for _, l := range h.reg.byKind[h.kind] {
		if l.id == h.id {
			return true
		}
	}
	return false
}

// --- Document ---

// Document is the host of an element tree: it owns the root node, routes
// pointer and wheel input to listeners, and runs frame-loop timers. All
// methods must be called from the single loop goroutine.
type Document struct {
	root      *Node
	clock     Clock
	timers    timerQueue
	listeners listenerRegistry
	logger    *slog.Logger

	injectQueue []syntheticPointerEvent
	testRunner  *TestRunner
}

// DocumentOption configures a Document.
type DocumentOption func(*Document)

// WithClock sets the time source for timers. Defaults to the system clock.
func WithClock(c Clock) DocumentOption {
	return func(d *Document) {
		d.clock = c
	}
}

// WithDocumentLogger sets the logger used for input tracing.
func WithDocumentLogger(logger *slog.Logger) DocumentOption {
	return func(d *Document) {
		d.logger = logger
	}
}

// NewDocument creates a document whose root container has the given size.
func NewDocument(width, height float64, opts ...DocumentOption) *Document {
	d := &Document{
		root:  NewContainer("root", width, height),
		clock: systemClock{},
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.logger == nil {
		d.logger = discardLogger()
	}
	return d
}

// Root returns the document's root container node.
func (d *Document) Root() *Node {
	return d.root
}

// Now returns the document clock's current time.
func (d *Document) Now() time.Time {
	return d.clock.Now()
}

// AfterFunc schedules fn to run on the first Update at or after delay has
// elapsed on the document clock.
func (d *Document) AfterFunc(delay time.Duration, fn func()) TimerHandle {
	return d.timers.schedule(d.clock.Now().Add(delay), fn)
}

// PendingTimers returns the number of scheduled timers.
func (d *Document) PendingTimers() int {
	return d.timers.len()
}

// Update advances the document by one frame: it steps the attached test
// runner, fires due timers and consumes at most one injected pointer
// event. Returns true if an injected event was consumed, in which case the
// caller should skip real device input for this frame.
func (d *Document) Update() bool {
	if d.testRunner != nil {
		d.testRunner.step(d)
	}
	d.timers.fireDue(d.clock.Now())
	return d.processInjectedInput()
}

// --- Listener registration ---

// OnPointerDown registers fn for presses on node or any of its descendants.
func (d *Document) OnPointerDown(node *Node, fn func(*PointerEvent)) ListenerHandle {
	return d.listeners.add(listenPointerDown, &listener{node: node, pointer: fn})
}

// OnPointerMove registers a document-wide pointer move listener.
func (d *Document) OnPointerMove(fn func(*PointerEvent)) ListenerHandle {
	return d.listeners.add(listenPointerMove, &listener{pointer: fn})
}

// OnPointerUp registers a document-wide pointer release listener.
func (d *Document) OnPointerUp(fn func(*PointerEvent)) ListenerHandle {
	return d.listeners.add(listenPointerUp, &listener{pointer: fn})
}

// OnWheel registers fn for wheel input over node or any of its descendants.
func (d *Document) OnWheel(node *Node, fn func(*WheelEvent)) ListenerHandle {
	return d.listeners.add(listenWheel, &listener{node: node, wheel: fn})
}

// --- Input dispatch ---

// PointerDown dispatches a press at (x, y). Listeners run from the hit
// target up through its ancestors.
func (d *Document) PointerDown(x, y float64, button MouseButton) *PointerEvent {
	evt := &PointerEvent{X: x, Y: y, Button: button, Target: d.HitTest(x, y)}
	d.bubblePointer(listenPointerDown, evt)
	return evt
}

// PointerMove dispatches a move to every document-wide move listener.
func (d *Document) PointerMove(x, y float64, button MouseButton) *PointerEvent {
	evt := &PointerEvent{X: x, Y: y, Button: button, Target: d.HitTest(x, y)}
	for _, l := range d.listeners.snapshot(listenPointerMove) {
		if !l.removed {
			l.pointer(evt)
		}
	}
	return evt
}

// PointerUp dispatches a release to every document-wide release listener.
func (d *Document) PointerUp(x, y float64, button MouseButton) *PointerEvent {
	evt := &PointerEvent{X: x, Y: y, Button: button, Target: d.HitTest(x, y)}
	for _, l := range d.listeners.snapshot(listenPointerUp) {
		if !l.removed {
			l.pointer(evt)
		}
	}
	return evt
}

// Wheel dispatches wheel input at (x, y). Unless a listener prevents the
// default, the nearest scrollable ancestor of the target is scrolled.
func (d *Document) Wheel(x, y, dx, dy float64) *WheelEvent {
	evt := &WheelEvent{X: x, Y: y, DeltaX: dx, DeltaY: dy, Target: d.HitTest(x, y)}
	ls := d.listeners.snapshot(listenWheel)
	for n := evt.Target; n != nil; n = n.Parent {
		for _, l := range ls {
			if l.node == n && !l.removed {
				l.wheel(evt)
			}
		}
	}
	if evt.defaultPrevented {
		return evt
	}
	for n := evt.Target; n != nil; n = n.Parent {
		if n.Scrollable() {
			n.ScrollBy(dx*wheelStep, dy*wheelStep)
			break
		}
	}
	return evt
}

func (d *Document) bubblePointer(kind listenerKind, evt *PointerEvent) {
	ls := d.listeners.snapshot(kind)
	for n := evt.Target; n != nil; n = n.Parent {
		for _, l := range ls {
			if l.node == n && !l.removed {
				l.pointer(evt)
			}
		}
	}
}

// --- Hit testing ---

// HitTest finds the topmost visible, interactable node at the document
// point (x, y). Children are tested in reverse order so later siblings win.
// Returns nil if the point is outside the root.
func (d *Document) HitTest(x, y float64) *Node {
	return hitTestNode(d.root, Vec2{}, x, y)
}

// hitTestNode tests n whose parent content origin sits at origin in
// document coordinates.
func hitTestNode(n *Node, origin Vec2, x, y float64) *Node {
	if !n.Visible {
		return nil
	}
	box := Rect{X: origin.X + n.X, Y: origin.Y + n.Y, Width: n.Width, Height: n.Height}
	inside := box.Contains(x, y)
	if n.Clip && !inside {
		return nil
	}
	client := Rect{
		X: box.X + n.Border, Y: box.Y + n.Border,
		Width: n.ClientWidth(), Height: n.ClientHeight(),
	}
	if !n.Clip || client.Contains(x, y) {
		childOrigin := Vec2{client.X - n.ScrollX, client.Y - n.ScrollY}
		for i := len(n.children) - 1; i >= 0; i-- {
			if hit := hitTestNode(n.children[i], childOrigin, x, y); hit != nil {
				return hit
			}
		}
	}
	if inside && n.Interactable {
		return n
	}
	return nil
}
