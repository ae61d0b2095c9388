package marquee

import (
	"math"
	"time"
)

// selectable is a filter-matching element measured once at gesture start.
type selectable struct {
	element  *Node
	rect     Rect
	selected bool
}

// session is the state of one selection gesture on one container. It lives
// from an accepted pointer-down to the matching pointer-up.
type session struct {
	opts     Options
	viewport Rect // container client box, document coordinates

	// Pointer positions in document coordinates, not adjusted for scroll.
	// Auto-scroll shifts start and cur so the box anchor stays on content.
	start, last, cur Vec2

	rect        Rect // container-relative, scroll-adjusted
	scroller    Scroller
	scrollTimer TimerHandle
	selectables []selectable

	// glass and box are nil until the drag distance is exceeded.
	glass, box *Node

	move, up, wheel ListenerHandle
}

func (s *session) state() State {
	if s.box != nil {
		return StateDragging
	}
	return StateArmed
}

// onPointerDown arms a gesture when the press is a primary-button press on
// the container's content box, outside any cancel match.
func (i *instance) onPointerDown(evt *PointerEvent) {
	if i.session != nil || evt.Button != MouseButtonLeft {
		return
	}
	if !i.cancel.IsZero() && i.cancel.MatchSelfOrAncestor(evt.Target) {
		return
	}
	c := i.container
	pos := c.DocumentPosition()
	// Presses on the scrollbars are still inside the container's box.
	if evt.X > pos.X+c.ClientWidth() || evt.Y > pos.Y+c.ClientHeight() {
		return
	}

	i.emit(Event{Type: EventStart})

	doc := i.reg.doc
	s := &session{
		opts: i.options,
		viewport: Rect{
			X:      pos.X + c.Border,
			Y:      pos.Y + c.Border,
			Width:  c.ClientWidth(),
			Height: c.ClientHeight(),
		},
		start: evt.Pos(),
		cur:   evt.Pos(),
	}
	s.last = s.cur
	factory := s.opts.Scroller
	if factory == nil {
		factory = NewNativeScroller
	}
	s.scroller = factory(c, s.viewport)

	s.up = doc.OnPointerUp(i.onPointerUp)
	s.move = doc.OnPointerMove(func(e *PointerEvent) { i.tick(e.Pos(), time.Time{}) })
	s.wheel = doc.OnWheel(c, func(e *WheelEvent) { e.PreventDefault() })
	i.session = s

	evt.PreventDefault()
	i.reg.debugf(c, "armed", "x", evt.X, "y", evt.Y)
}

// tick advances a gesture for a pointer position p. It runs for real
// pointer moves (zero scrollStamp) and for auto-scroll timer ticks
// (scrollStamp = time of the previous scroll step), identically.
func (i *instance) tick(p Vec2, scrollStamp time.Time) {
	s := i.session
	if s == nil {
		return
	}
	d := s.opts.Distance
	if s.box == nil && math.Abs(s.start.X-p.X) < d && math.Abs(s.start.Y-p.Y) < d {
		return
	}

	s.last = s.cur
	s.cur = p

	if s.box == nil {
		i.snapshotSelectables()
		i.createSelectionBox()
		i.reg.debugf(i.container, "dragging", "selectables", len(s.selectables))
	}

	i.updateViewportScrolling(p, scrollStamp)
	i.updateSelectionBox(p)
	i.markSelected()
}

// snapshotSelectables measures every filter-matching descendant and clears
// its selected class. Geometry is not re-measured until the next gesture.
func (i *instance) snapshotSelectables() {
	s := i.session
	pos := s.opts.Positioner
	if pos == nil {
		pos = OffsetPositioner{}
	}
	s.selectables = s.selectables[:0]
	i.container.Walk(func(n *Node) {
		if !i.filter.Match(n) {
			return
		}
		n.RemoveClass(ClassSelected)
		s.selectables = append(s.selectables, selectable{
			element: n,
			rect:    pos.Position(i.container, n),
		})
	})
}

// createSelectionBox adds the glass panel and the selection box to the
// container. The glass covers the whole scrollable content and sits above
// the selectables, so presses and releases during the gesture land on it
// rather than on embedded content.
func (i *instance) createSelectionBox() {
	s := i.session
	c := i.container
	s.glass = NewContainer(ClassGlass, c.ContentWidth(), c.ContentHeight())
	s.glass.AddClass(ClassGlass)
	s.glass.Clip = true
	s.box = NewContainer(ClassBox, 0, 0)
	s.box.AddClass(ClassBox)
	s.glass.AddChild(s.box)
	c.AddChild(s.glass)
}

// updateSelectionBox spans the box from the (scroll-corrected) start
// position to p, in container content coordinates.
func (i *instance) updateSelectionBox(p Vec2) {
	s := i.session
	c := i.container
	origin := Vec2{s.viewport.X - c.ScrollX, s.viewport.Y - c.ScrollY}
	s.rect = spanRect(s.start.Sub(origin), p.Sub(origin))
	s.box.X, s.box.Y = s.rect.X, s.rect.Y
	s.box.Width, s.box.Height = s.rect.Width, s.rect.Height
}

// onPointerUp ends the gesture. All session listeners and the pending
// auto-scroll timer are gone before it returns.
func (i *instance) onPointerUp(*PointerEvent) {
	s := i.session
	if s == nil {
		return
	}
	s.scrollTimer.Cancel()
	s.scrollTimer = TimerHandle{}
	s.wheel.Remove()
	s.move.Remove()
	s.up.Remove()
	i.session = nil

	if s.box == nil {
		i.reg.debugf(i.container, "released before drag")
		return
	}
	s.glass.Dispose()

	var selected, unselected []*Node
	for k := len(s.selectables) - 1; k >= 0; k-- {
		if s.selectables[k].selected {
			selected = append(selected, s.selectables[k].element)
		} else {
			unselected = append(unselected, s.selectables[k].element)
		}
	}
	i.reg.debugf(i.container, "stopped", "selected", len(selected), "unselected", len(unselected))

	i.emit(Event{Type: EventSelected, Elements: selected})
	i.emit(Event{Type: EventUnselected, Elements: unselected})
	i.emit(Event{Type: EventStop})
}
