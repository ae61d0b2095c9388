package marquee

import (
	"bytes"
	"fmt"
	"log/slog"
	"strings"
	"testing"
)

func newBufferLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestDebugMode_DisposedNodePanics(t *testing.T) {
	reg := NewRegistry(NewDocument(100, 100))
	reg.SetDebugMode(true)
	defer reg.SetDebugMode(false)

	n := NewContainer("gone", 0, 0)
	n.Dispose()

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic on disposed node")
		}
		if !strings.Contains(fmt.Sprint(r), "disposed node") {
			t.Errorf("panic = %v", r)
		}
	}()
	reg.Document().Root().AddChild(n)
}

func TestReleaseMode_DisposedNodeNoPanic(t *testing.T) {
	parent := NewContainer("parent", 0, 0)
	n := NewContainer("gone", 0, 0)
	n.Dispose()
	parent.AddChild(n) // no debug checks outside debug mode
}

func TestDebugMode_TreeDepthWarning(t *testing.T) {
	var buf bytes.Buffer
	reg := NewRegistry(NewDocument(100, 100), WithLogger(newBufferLogger(&buf)))
	reg.SetDebugMode(true)
	defer reg.SetDebugMode(false)

	current := reg.Document().Root()
	for i := 0; i < debugMaxTreeDepth+5; i++ {
		child := NewContainer(fmt.Sprintf("depth_%d", i), 0, 0)
		current.AddChild(child)
		current = child
	}

	if !strings.Contains(buf.String(), "tree depth exceeds threshold") {
		t.Errorf("expected tree depth warning, got: %q", buf.String())
	}
}

func TestDebugMode_ChildCountWarning(t *testing.T) {
	var buf bytes.Buffer
	reg := NewRegistry(NewDocument(100, 100), WithLogger(newBufferLogger(&buf)))
	reg.SetDebugMode(true)
	defer reg.SetDebugMode(false)

	parent := NewContainer("many_children", 0, 0)
	reg.Document().Root().AddChild(parent)
	for i := 0; i < debugMaxChildCount+1; i++ {
		parent.AddChild(NewContainer(fmt.Sprintf("c_%d", i), 0, 0))
	}

	out := buf.String()
	if !strings.Contains(out, "child count exceeds threshold") || !strings.Contains(out, "many_children") {
		t.Errorf("expected child count warning, got: %q", out)
	}
}

func TestDebugMode_GestureTrace(t *testing.T) {
	var buf bytes.Buffer
	doc := NewDocument(400, 400)
	list := NewContainer("list", 300, 300)
	doc.Root().AddChild(list)
	list.AddChild(NewElement("item", "li", 50, 50, 20, 20))

	reg := NewRegistry(doc, WithLogger(newBufferLogger(&buf)))
	reg.SetDebugMode(true)
	defer reg.SetDebugMode(false)
	if err := reg.Init(list, DefaultOptions()); err != nil {
		t.Fatal(err)
	}

	doc.PointerDown(10, 10, MouseButtonLeft)
	doc.PointerMove(100, 100, MouseButtonLeft)
	doc.PointerUp(100, 100, MouseButtonLeft)

	out := buf.String()
	for _, msg := range []string{"msg=armed", "msg=dragging", "msg=stopped", "container=list"} {
		if !strings.Contains(out, msg) {
			t.Errorf("trace missing %q:\n%s", msg, out)
		}
	}
}

func TestReleaseMode_NoGestureTrace(t *testing.T) {
	var buf bytes.Buffer
	doc := NewDocument(400, 400)
	list := NewContainer("list", 300, 300)
	doc.Root().AddChild(list)

	reg := NewRegistry(doc, WithLogger(newBufferLogger(&buf)))
	if err := reg.Init(list, DefaultOptions()); err != nil {
		t.Fatal(err)
	}
	doc.PointerDown(10, 10, MouseButtonLeft)
	doc.PointerUp(10, 10, MouseButtonLeft)

	if buf.Len() != 0 {
		t.Errorf("expected no output outside debug mode, got %q", buf.String())
	}
}

func TestDebugMode_SharedAcrossRegistries(t *testing.T) {
	a := NewRegistry(NewDocument(100, 100))
	b := NewRegistry(NewDocument(100, 100))
	a.SetDebugMode(true)
	b.SetDebugMode(true)
	b.SetDebugMode(true) // no double count

	b.SetDebugMode(false)
	if !globalDebug {
		t.Fatal("tree checks should stay on while another registry is in debug mode")
	}
	if !a.debug || b.debug {
		t.Errorf("per-registry flags = (%v, %v), want (true, false)", a.debug, b.debug)
	}

	b.SetDebugMode(false) // no double decrement
	if !globalDebug {
		t.Fatal("disabling twice must not turn off the other registry's checks")
	}

	a.SetDebugMode(false)
	if globalDebug {
		t.Error("tree checks should be off once no registry is in debug mode")
	}
	if debugRegistries != 0 {
		t.Errorf("debugRegistries = %d, want 0", debugRegistries)
	}
}
