package marquee

// Axis is a scrolling axis.
type Axis uint8

const (
	AxisVertical   Axis = iota // scrolls along Y
	AxisHorizontal             // scrolls along X
)

func (a Axis) String() string {
	if a == AxisHorizontal {
		return "horizontal"
	}
	return "vertical"
}

// Edge indexes the four viewport borders, in the order used by
// Scroller.ScrollableDistances.
type Edge uint8

const (
	EdgeTop Edge = iota
	EdgeRight
	EdgeBottom
	EdgeLeft
)

func (e Edge) String() string {
	switch e {
	case EdgeTop:
		return "top"
	case EdgeRight:
		return "right"
	case EdgeBottom:
		return "bottom"
	case EdgeLeft:
		return "left"
	default:
		return "unknown"
	}
}

// Scroller moves a selection container's viewport while a selection box is
// dragged toward its borders.
type Scroller interface {
	// ScrollableDistances returns how far the viewport can still scroll
	// toward each border, indexed by Edge (top, right, bottom, left).
	ScrollableDistances() [4]float64

	// Scroll moves the viewport by shift pixels along axis. Positive shifts
	// scroll downward / rightward.
	Scroll(axis Axis, shift float64)

	// ScrollOffset is added to every selectable's position before hit
	// testing. Zero for native scrolling; non-zero when scrolling is
	// emulated by translating content.
	ScrollOffset() Vec2
}

// ScrollerFactory builds a Scroller for a container when a gesture starts.
// viewport is the container's client box in document coordinates.
type ScrollerFactory func(container *Node, viewport Rect) Scroller

// NativeScroller scrolls the container node itself through its ScrollX and
// ScrollY fields. It is the default Scroller.
type NativeScroller struct {
	node     *Node
	viewport Rect
}

// NewNativeScroller returns a NativeScroller for container. It satisfies
// ScrollerFactory.
func NewNativeScroller(container *Node, viewport Rect) Scroller {
	return &NativeScroller{node: container, viewport: viewport}
}

// ScrollableDistances implements Scroller.
func (s *NativeScroller) ScrollableDistances() [4]float64 {
	n := s.node
	return [4]float64{
		EdgeTop:    n.ScrollY,
		EdgeRight:  n.ContentWidth() - n.ScrollX - s.viewport.Width,
		EdgeBottom: n.ContentHeight() - n.ScrollY - s.viewport.Height,
		EdgeLeft:   n.ScrollX,
	}
}

// Scroll implements Scroller.
func (s *NativeScroller) Scroll(axis Axis, shift float64) {
	if axis == AxisVertical {
		s.node.ScrollBy(0, shift)
	} else {
		s.node.ScrollBy(shift, 0)
	}
}

// ScrollOffset implements Scroller. Native scrolling needs no correction.
func (s *NativeScroller) ScrollOffset() Vec2 {
	return Vec2{}
}
