package marquee

type syntheticKind uint8

const (
	synthPress syntheticKind = iota
	synthMove
	synthRelease
	synthWheel
)

// syntheticPointerEvent represents a single injected input event, in
// document coordinates.
type syntheticPointerEvent struct {
	kind   syntheticKind
	x, y   float64
	dx, dy float64
	button MouseButton
}

// InjectPress queues a left-button press at (x, y). The event is consumed
// on the next Update.
func (d *Document) InjectPress(x, y float64) {
	d.injectQueue = append(d.injectQueue, syntheticPointerEvent{
		kind: synthPress, x: x, y: y, button: MouseButtonLeft,
	})
}

// InjectMove queues a pointer move with the left button held. Use this
// between InjectPress and InjectRelease to simulate a drag.
func (d *Document) InjectMove(x, y float64) {
	d.injectQueue = append(d.injectQueue, syntheticPointerEvent{
		kind: synthMove, x: x, y: y, button: MouseButtonLeft,
	})
}

// InjectRelease queues a left-button release at (x, y).
func (d *Document) InjectRelease(x, y float64) {
	d.injectQueue = append(d.injectQueue, syntheticPointerEvent{
		kind: synthRelease, x: x, y: y, button: MouseButtonLeft,
	})
}

// InjectWheel queues wheel input at (x, y).
func (d *Document) InjectWheel(x, y, dx, dy float64) {
	d.injectQueue = append(d.injectQueue, syntheticPointerEvent{
		kind: synthWheel, x: x, y: y, dx: dx, dy: dy,
	})
}

// InjectDrag queues a full drag sequence: a press at (fromX, fromY),
// frames-1 linearly interpolated moves ending at (toX, toY) and a release
// there, frames+1 events in all. Minimum frames is 2.
func (d *Document) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	d.InjectPress(fromX, fromY)
	moves := frames - 1
	for i := 1; i <= moves; i++ {
		t := float64(i) / float64(moves)
		d.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	d.InjectRelease(toX, toY)
}

// PendingInjections returns the number of queued synthetic events.
func (d *Document) PendingInjections() int {
	return len(d.injectQueue)
}

// processInjectedInput pops one event from the inject queue and dispatches
// it. Returns true if an event was consumed.
func (d *Document) processInjectedInput() bool {
	if len(d.injectQueue) == 0 {
		return false
	}
	evt := d.injectQueue[0]
	copy(d.injectQueue, d.injectQueue[1:])
	d.injectQueue = d.injectQueue[:len(d.injectQueue)-1]

	switch evt.kind {
	case synthPress:
		d.PointerDown(evt.x, evt.y, evt.button)
	case synthMove:
		d.PointerMove(evt.x, evt.y, evt.button)
	case synthRelease:
		d.PointerUp(evt.x, evt.y, evt.button)
	case synthWheel:
		d.Wheel(evt.x, evt.y, evt.dx, evt.dy)
	}
	return true
}
