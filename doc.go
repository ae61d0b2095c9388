// Package marquee implements drag-to-select (box selection) over scrollable
// containers of a retained-mode element tree.
//
// A user presses the primary pointer button inside a container, drags to
// span a rectangle, and every descendant matching the container's filter
// that the rectangle touches is marked selected. The container scrolls
// automatically while the pointer is held near one of its borders.
//
// # Quick start
//
//	doc := marquee.NewDocument(640, 480)
//	list := marquee.NewContainer("list", 300, 300)
//	list.ScrollHeight = 2000
//	doc.Root().AddChild(list)
//	for i := 0; i < 100; i++ {
//		item := marquee.NewElement(fmt.Sprint("item", i), "li", 0, float64(i)*20, 280, 18)
//		list.AddChild(item)
//	}
//
//	reg := marquee.NewRegistry(doc)
//	opts := marquee.DefaultOptions()
//	opts.Filter = "li"
//	if err := reg.Init(list, opts); err != nil {
//		log.Fatal(err)
//	}
//	reg.On(list, marquee.EventSelected, func(ev marquee.Event) {
//		fmt.Println(len(ev.Elements), "selected")
//	})
//
// The Document is fed by a host loop: call the pointer methods
// ([Document.PointerDown], [Document.PointerMove], [Document.PointerUp],
// [Document.Wheel]) from device input and [Document.Update] once per frame
// so auto-scroll timers fire. The ebitenhost package does both for an
// Ebitengine game.
//
// # Gesture
//
// A gesture is armed by a left-button press on the container's client box,
// unless the press lands on (or inside) an element matching the cancel
// selector. It becomes a drag once the pointer has moved Distance pixels on
// either axis: the selectables are measured once, a glass panel holding the
// selection box is added to the container, and from then on every move
// updates the box and emits selecting / unselecting notifications. Release
// emits selected and unselected with the final lists, then stop.
//
// # Scrolling and positioning
//
// [Scroller] and [Positioner] are pluggable. [NewNativeScroller] scrolls
// the container node; [Viewport] emulates scrolling over an endless
// canvas. [OffsetPositioner] measures selectables from node offsets.
package marquee
