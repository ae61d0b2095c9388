package marquee

import "slices"

// nodeIDCounter is a plain counter, not atomic: marquee is single-threaded.
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// Node is an element of the document tree. Containers and selectable
// elements share one flat struct; a Node becomes a selection container when
// it is registered with a Registry.
//
// X and Y are the offset of the node's border box from the content origin of
// its parent (inside the parent's border, before the parent's scroll is
// applied). Width and Height are the outer size including the border.
type Node struct {
	// Identity
	ID   uint32
	Name string
	Tag  string

	// Hierarchy
	Parent   *Node
	children []*Node

	// Box
	X, Y          float64
	Width, Height float64
	Border        float64 // symmetric border width on all four sides

	// Scrolling. ScrollWidth and ScrollHeight are the content extent; zero
	// means the content fits the client box. ScrollbarSize reserves space on
	// the right and bottom edges of a scrollable node.
	ScrollX, ScrollY          float64
	ScrollWidth, ScrollHeight float64
	ScrollbarSize             float64

	// Clip hides (and excludes from hit testing) children outside the
	// client box.
	Clip bool

	// Visibility & interaction
	Visible      bool
	Interactable bool

	// Rendering
	Color Color

	// Metadata
	UserData any

	classes []string

	// Internal
	disposed bool
}

// nodeDefaults sets the common default field values shared by all constructors.
func nodeDefaults(n *Node) {
	n.ID = nextNodeID()
	n.Color = ColorWhite
	n.Visible = true
	n.Interactable = true
}

// NewContainer creates a group node with the given size.
func NewContainer(name string, width, height float64) *Node {
	n := &Node{Name: name, Tag: "div", Width: width, Height: height}
	nodeDefaults(n)
	return n
}

// NewElement creates a node with the given tag, position and size.
func NewElement(name, tag string, x, y, width, height float64) *Node {
	n := &Node{Name: name, Tag: tag, X: x, Y: y, Width: width, Height: height}
	nodeDefaults(n)
	return n
}

// --- Tree manipulation ---

// AddChild appends child to this node's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this node (cycle).
func (n *Node) AddChild(child *Node) {
	if child == nil {
		panic("marquee: cannot add nil child")
	}
	if globalDebug {
		debugCheckDisposed(n, "AddChild (parent)")
		debugCheckDisposed(child, "AddChild (child)")
	}
	if isAncestor(child, n) {
		panic("marquee: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = n
	n.children = append(n.children, child)
	if globalDebug {
		debugCheckTreeDepth(child)
		debugCheckChildCount(n)
	}
}

// RemoveChild detaches child from this node.
// Panics if child.Parent != n.
func (n *Node) RemoveChild(child *Node) {
	if child.Parent != n {
		panic("marquee: child's parent is not this node")
	}
	n.removeChildByPtr(child)
	child.Parent = nil
}

// RemoveFromParent detaches this node from its parent.
// No-op if this node has no parent.
func (n *Node) RemoveFromParent() {
	if n.Parent == nil {
		return
	}
	n.Parent.RemoveChild(n)
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (n *Node) Children() []*Node {
	return n.children
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// Walk calls fn for every descendant of n in document order (depth-first,
// pre-order), not including n itself.
func (n *Node) Walk(fn func(*Node)) {
	for _, child := range n.children {
		fn(child)
		child.Walk(fn)
	}
}

// Contains reports whether other is n or one of its descendants.
func (n *Node) Contains(other *Node) bool {
	return isAncestor(n, other)
}

// --- Classes ---

// AddClass adds a class name. Adding a class twice is a no-op.
func (n *Node) AddClass(class string) {
	if !n.HasClass(class) {
		n.classes = append(n.classes, class)
	}
}

// RemoveClass removes a class name if present.
func (n *Node) RemoveClass(class string) {
	if i := slices.Index(n.classes, class); i >= 0 {
		n.classes = slices.Delete(n.classes, i, i+1)
	}
}

// HasClass reports whether the node carries class.
func (n *Node) HasClass(class string) bool {
	return slices.Contains(n.classes, class)
}

// Classes returns the class list. The returned slice MUST NOT be mutated by the caller.
func (n *Node) Classes() []string {
	return n.classes
}

// --- Geometry ---

// ClientWidth is the inner width available to content: the outer width less
// borders and the vertical scrollbar.
func (n *Node) ClientWidth() float64 {
	return max(n.Width-2*n.Border-n.ScrollbarSize, 0)
}

// ClientHeight is the inner height available to content: the outer height
// less borders and the horizontal scrollbar.
func (n *Node) ClientHeight() float64 {
	return max(n.Height-2*n.Border-n.ScrollbarSize, 0)
}

// ContentWidth returns the scrollable content width, never smaller than the
// client width.
func (n *Node) ContentWidth() float64 {
	return max(n.ScrollWidth, n.ClientWidth())
}

// ContentHeight returns the scrollable content height, never smaller than
// the client height.
func (n *Node) ContentHeight() float64 {
	return max(n.ScrollHeight, n.ClientHeight())
}

// ScrollTo sets the scroll position, clamped to the scrollable range.
func (n *Node) ScrollTo(x, y float64) {
	n.ScrollX = clamp(x, 0, n.ContentWidth()-n.ClientWidth())
	n.ScrollY = clamp(y, 0, n.ContentHeight()-n.ClientHeight())
}

// ScrollBy scrolls by (dx, dy), clamped to the scrollable range.
func (n *Node) ScrollBy(dx, dy float64) {
	n.ScrollTo(n.ScrollX+dx, n.ScrollY+dy)
}

// Scrollable reports whether the content overflows the client box on
// either axis.
func (n *Node) Scrollable() bool {
	return n.ContentWidth() > n.ClientWidth() || n.ContentHeight() > n.ClientHeight()
}

// DocumentPosition returns the top-left corner of the node's border box in
// document coordinates, accounting for every ancestor's border and scroll.
func (n *Node) DocumentPosition() Vec2 {
	pos := Vec2{n.X, n.Y}
	for p := n.Parent; p != nil; p = p.Parent {
		pos.X += p.X + p.Border - p.ScrollX
		pos.Y += p.Y + p.Border - p.ScrollY
	}
	return pos
}

// DocumentRect returns the node's border box in document coordinates.
func (n *Node) DocumentRect() Rect {
	pos := n.DocumentPosition()
	return Rect{X: pos.X, Y: pos.Y, Width: n.Width, Height: n.Height}
}

// ClientRect returns the node's client box in document coordinates.
func (n *Node) ClientRect() Rect {
	pos := n.DocumentPosition()
	return Rect{
		X:      pos.X + n.Border,
		Y:      pos.Y + n.Border,
		Width:  n.ClientWidth(),
		Height: n.ClientHeight(),
	}
}

// --- Disposal ---

// Dispose removes this node from its parent, marks it as disposed,
// and recursively disposes all descendants.
func (n *Node) Dispose() {
	if n.disposed {
		return
	}
	n.RemoveFromParent()
	n.dispose()
}

func (n *Node) dispose() {
	n.disposed = true
	n.ID = 0
	for _, child := range n.children {
		child.Parent = nil
		child.dispose()
	}
	n.children = nil
	n.classes = nil
	n.Parent = nil
	n.UserData = nil
}

// IsDisposed returns true if this node has been disposed.
func (n *Node) IsDisposed() bool {
	return n.disposed
}

// --- Helpers ---

// isAncestor reports whether candidate is node or an ancestor of node.
func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from n.children without clearing child.Parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (n *Node) removeChildByPtr(child *Node) {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			return
		}
	}
}

func clamp(v, lo, hi float64) float64 {
	if hi < lo {
		hi = lo
	}
	return min(max(v, lo), hi)
}
