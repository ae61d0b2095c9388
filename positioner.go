package marquee

// Positioner measures selectable elements when a gesture starts. The
// returned rectangle is relative to the container's content origin (inside
// its border, unaffected by its scroll) and spans the element's outer box.
// It is called once per selectable per gesture.
type Positioner interface {
	Position(container, element *Node) Rect
}

// PositionerFunc adapts a function to the Positioner interface.
type PositionerFunc func(container, element *Node) Rect

// Position implements Positioner.
func (f PositionerFunc) Position(container, element *Node) Rect {
	return f(container, element)
}

// OffsetPositioner is the default Positioner. It sums node offsets from the
// element up to the container, including the border and scroll of any
// intermediate ancestor. Elements outside the container's subtree are
// measured relative to the document root.
type OffsetPositioner struct{}

// Position implements Positioner.
func (OffsetPositioner) Position(container, element *Node) Rect {
	r := Rect{X: element.X, Y: element.Y, Width: element.Width, Height: element.Height}
	for p := element.Parent; p != nil && p != container; p = p.Parent {
		r.X += p.X + p.Border - p.ScrollX
		r.Y += p.Y + p.Border - p.ScrollY
	}
	return r
}
