package marquee

import (
	"testing"
)

// --- Constructor defaults ---

func TestNewContainerDefaults(t *testing.T) {
	n := NewContainer("test", 100, 50)
	assertNodeDefaults(t, n, "test", "div")
	if n.Width != 100 || n.Height != 50 {
		t.Errorf("size = (%v, %v), want (100, 50)", n.Width, n.Height)
	}
}

func TestNewElementDefaults(t *testing.T) {
	n := NewElement("row", "li", 5, 6, 20, 10)
	assertNodeDefaults(t, n, "row", "li")
	if n.X != 5 || n.Y != 6 || n.Width != 20 || n.Height != 10 {
		t.Errorf("box = (%v, %v, %v, %v), want (5, 6, 20, 10)", n.X, n.Y, n.Width, n.Height)
	}
}

func assertNodeDefaults(t *testing.T, n *Node, name, tag string) {
	t.Helper()
	if n.ID == 0 {
		t.Error("ID should be non-zero")
	}
	if n.Name != name {
		t.Errorf("Name = %q, want %q", n.Name, name)
	}
	if n.Tag != tag {
		t.Errorf("Tag = %q, want %q", n.Tag, tag)
	}
	if n.Color != ColorWhite {
		t.Errorf("Color = %v, want white", n.Color)
	}
	if !n.Visible {
		t.Error("Visible should be true")
	}
	if !n.Interactable {
		t.Error("Interactable should be true")
	}
}

// --- Unique IDs ---

func TestUniqueIDs(t *testing.T) {
	a := NewContainer("a", 0, 0)
	b := NewContainer("b", 0, 0)
	c := NewElement("c", "li", 0, 0, 0, 0)
	if a.ID == b.ID || b.ID == c.ID || a.ID == c.ID {
		t.Errorf("IDs should be unique: %d, %d, %d", a.ID, b.ID, c.ID)
	}
}

// --- AddChild ---

func TestAddChildBasic(t *testing.T) {
	parent := NewContainer("parent", 0, 0)
	child := NewContainer("child", 0, 0)
	parent.AddChild(child)

	if child.Parent != parent {
		t.Error("child.Parent should be parent")
	}
	if parent.NumChildren() != 1 {
		t.Errorf("NumChildren = %d, want 1", parent.NumChildren())
	}
	if parent.Children()[0] != child {
		t.Error("Children()[0] should be child")
	}
}

func TestAddChildReparent(t *testing.T) {
	p1 := NewContainer("p1", 0, 0)
	p2 := NewContainer("p2", 0, 0)
	child := NewContainer("child", 0, 0)

	p1.AddChild(child)
	if p1.NumChildren() != 1 {
		t.Fatal("p1 should have 1 child")
	}

	p2.AddChild(child)
	if p1.NumChildren() != 0 {
		t.Error("p1 should have 0 children after reparent")
	}
	if p2.NumChildren() != 1 {
		t.Error("p2 should have 1 child")
	}
	if child.Parent != p2 {
		t.Error("child.Parent should be p2")
	}
}

func TestAddChildCyclePanic(t *testing.T) {
	parent := NewContainer("parent", 0, 0)
	child := NewContainer("child", 0, 0)
	grandchild := NewContainer("grandchild", 0, 0)
	parent.AddChild(child)
	child.AddChild(grandchild)

	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for cycle, got none")
		}
	}()
	grandchild.AddChild(parent)
}

func TestAddChildSelfPanic(t *testing.T) {
	n := NewContainer("self", 0, 0)
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for self-add, got none")
		}
	}()
	n.AddChild(n)
}

func TestAddChildNilPanic(t *testing.T) {
	n := NewContainer("n", 0, 0)
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for nil child, got none")
		}
	}()
	n.AddChild(nil)
}

// --- RemoveChild ---

func TestRemoveChild(t *testing.T) {
	parent := NewContainer("parent", 0, 0)
	a := NewContainer("a", 0, 0)
	b := NewContainer("b", 0, 0)
	parent.AddChild(a)
	parent.AddChild(b)

	parent.RemoveChild(a)
	if a.Parent != nil {
		t.Error("a.Parent should be nil")
	}
	if parent.NumChildren() != 1 || parent.Children()[0] != b {
		t.Error("children should be [b]")
	}
}

func TestRemoveChildWrongParentPanic(t *testing.T) {
	p1 := NewContainer("p1", 0, 0)
	p2 := NewContainer("p2", 0, 0)
	child := NewContainer("child", 0, 0)
	p1.AddChild(child)

	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for wrong parent, got none")
		}
	}()
	p2.RemoveChild(child)
}

func TestRemoveFromParentNoParent(t *testing.T) {
	n := NewContainer("orphan", 0, 0)
	n.RemoveFromParent() // no-op, must not panic
}

// --- Walk / Contains ---

func TestWalkDocumentOrder(t *testing.T) {
	root := NewContainer("root", 0, 0)
	a := NewContainer("a", 0, 0)
	a1 := NewContainer("a1", 0, 0)
	b := NewContainer("b", 0, 0)
	root.AddChild(a)
	a.AddChild(a1)
	root.AddChild(b)

	var names []string
	root.Walk(func(n *Node) { names = append(names, n.Name) })

	want := []string{"a", "a1", "b"}
	if len(names) != len(want) {
		t.Fatalf("Walk visited %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("Walk visited %v, want %v", names, want)
		}
	}
}

func TestContains(t *testing.T) {
	root := NewContainer("root", 0, 0)
	child := NewContainer("child", 0, 0)
	other := NewContainer("other", 0, 0)
	root.AddChild(child)

	if !root.Contains(root) {
		t.Error("node should contain itself")
	}
	if !root.Contains(child) {
		t.Error("root should contain child")
	}
	if root.Contains(other) {
		t.Error("root should not contain a detached node")
	}
	if child.Contains(root) {
		t.Error("child should not contain its parent")
	}
}

// --- Classes ---

func TestClasses(t *testing.T) {
	n := NewElement("n", "li", 0, 0, 0, 0)
	n.AddClass("a")
	n.AddClass("b")
	n.AddClass("a")

	if got := len(n.Classes()); got != 2 {
		t.Errorf("len(Classes) = %d, want 2", got)
	}
	if !n.HasClass("a") || !n.HasClass("b") {
		t.Error("expected classes a and b")
	}
	n.RemoveClass("a")
	n.RemoveClass("missing")
	if n.HasClass("a") {
		t.Error("class a should be removed")
	}
	if !n.HasClass("b") {
		t.Error("class b should remain")
	}
}

// --- Geometry ---

func TestClientSize(t *testing.T) {
	n := NewContainer("n", 100, 80)
	n.Border = 2
	n.ScrollbarSize = 10
	if got := n.ClientWidth(); got != 86 {
		t.Errorf("ClientWidth = %v, want 86", got)
	}
	if got := n.ClientHeight(); got != 66 {
		t.Errorf("ClientHeight = %v, want 66", got)
	}
}

func TestContentSizeNeverSmallerThanClient(t *testing.T) {
	n := NewContainer("n", 100, 100)
	if n.ContentWidth() != 100 || n.ContentHeight() != 100 {
		t.Errorf("content = (%v, %v), want (100, 100)", n.ContentWidth(), n.ContentHeight())
	}
	if n.Scrollable() {
		t.Error("fitting content should not be scrollable")
	}
	n.ScrollHeight = 500
	if n.ContentHeight() != 500 {
		t.Errorf("ContentHeight = %v, want 500", n.ContentHeight())
	}
	if !n.Scrollable() {
		t.Error("overflowing content should be scrollable")
	}
}

func TestScrollClamped(t *testing.T) {
	n := NewContainer("n", 100, 100)
	n.ScrollWidth, n.ScrollHeight = 300, 250

	n.ScrollTo(1000, 1000)
	if n.ScrollX != 200 || n.ScrollY != 150 {
		t.Errorf("scroll = (%v, %v), want (200, 150)", n.ScrollX, n.ScrollY)
	}
	n.ScrollBy(-500, 20)
	if n.ScrollX != 0 || n.ScrollY != 150 {
		t.Errorf("scroll = (%v, %v), want (0, 150)", n.ScrollX, n.ScrollY)
	}
}

func TestDocumentPosition(t *testing.T) {
	root := NewContainer("root", 500, 500)
	outer := NewContainer("outer", 300, 300)
	outer.X, outer.Y = 10, 20
	outer.Border = 3
	outer.ScrollHeight = 1000
	outer.ScrollY = 40
	inner := NewElement("inner", "li", 5, 100, 10, 10)
	root.AddChild(outer)
	outer.AddChild(inner)

	pos := inner.DocumentPosition()
	if pos.X != 18 || pos.Y != 83 {
		t.Errorf("DocumentPosition = %v, want (18, 83)", pos)
	}
	cr := outer.ClientRect()
	if cr != (Rect{X: 13, Y: 23, Width: 294, Height: 294}) {
		t.Errorf("ClientRect = %+v", cr)
	}
}

// --- Dispose ---

func TestDispose(t *testing.T) {
	parent := NewContainer("parent", 0, 0)
	child := NewContainer("child", 0, 0)
	grandchild := NewContainer("grandchild", 0, 0)
	parent.AddChild(child)
	child.AddChild(grandchild)

	child.Dispose()

	if !child.IsDisposed() || !grandchild.IsDisposed() {
		t.Error("child and grandchild should be disposed")
	}
	if parent.NumChildren() != 0 {
		t.Error("parent should have no children")
	}
	if child.Parent != nil || grandchild.Parent != nil {
		t.Error("disposed nodes should have nil Parent")
	}
	child.Dispose() // idempotent
}

func TestDebugAddChildDisposedPanics(t *testing.T) {
	globalDebug = true
	defer func() { globalDebug = false }()

	parent := NewContainer("parent", 0, 0)
	child := NewContainer("child", 0, 0)
	child.Dispose()

	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic adding a disposed node in debug mode")
		}
	}()
	parent.AddChild(child)
}
