package marquee

// EventType identifies a selection notification.
type EventType uint8

const (
	EventStart       EventType = iota // fires when a gesture is armed by a pointer press
	EventSelecting                    // fires when an element enters the selection box
	EventUnselecting                  // fires when an element leaves the selection box
	EventSelected                     // fires once at gesture end with every selected element
	EventUnselected                   // fires once at gesture end with every unselected element
	EventStop                         // fires after the end-of-gesture lists

	eventTypeCount
)

var eventTypeNames = [eventTypeCount]string{
	EventStart:       "start",
	EventSelecting:   "selecting",
	EventUnselecting: "unselecting",
	EventSelected:    "selected",
	EventUnselected:  "unselected",
	EventStop:        "stop",
}

func (t EventType) String() string {
	if t < eventTypeCount {
		return eventTypeNames[t]
	}
	return "unknown"
}

// Event is a selection notification. Element is set for EventSelecting and
// EventUnselecting; Elements is set for EventSelected and EventUnselected.
type Event struct {
	Type      EventType
	Container *Node
	Element   *Node
	Elements  []*Node
}

// EventSink receives every notification emitted by a Registry, after the
// per-container callbacks. Used to bridge notifications into other event
// systems such as an ECS world.
type EventSink interface {
	EmitEvent(event Event)
}

// --- Handler registry ---

type eventHandler struct {
	id      uint32
	fn      func(Event)
	removed bool
}

type handlerRegistry struct {
	byType [eventTypeCount][]*eventHandler
	nextID uint32
}

func (r *handlerRegistry) add(t EventType, fn func(Event)) CallbackHandle {
	r.nextID++
	id := r.nextID
	r.byType[t] = append(r.byType[t], &eventHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: r, event: t}
}

// fire calls the handlers registered when dispatch starts. Handlers removed
// by an earlier handler in the same dispatch are skipped; handlers added
// during dispatch wait for the next event.
func (r *handlerRegistry) fire(ev Event) {
	handlers := append([]*eventHandler(nil), r.byType[ev.Type]...)
	for _, h := range handlers {
		if h.removed {
			continue
		}
		h.fn(ev)
	}
}

// CallbackHandle allows removing a registered notification callback.
type CallbackHandle struct {
	id    uint32
	reg   *handlerRegistry
	event EventType
}

// Remove unregisters this callback so it no longer fires. Safe to call from
// inside a callback and more than once.
func (h CallbackHandle) Remove() {
	if h.reg == nil || h.event >= eventTypeCount {
		return
	}
	s := h.reg.byType[h.event]
	for i, eh := range s {
		if eh.id == h.id {
			eh.removed = true
			copy(s[i:], s[i+1:])
			s[len(s)-1] = nil
			h.reg.byType[h.event] = s[:len(s)-1]
			return
		}
	}
}
