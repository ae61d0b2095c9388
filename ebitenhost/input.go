// Package ebitenhost drives a marquee Document from an Ebitengine game: it
// polls mouse and wheel state each frame and draws the element tree with
// its selection overlay.
package ebitenhost

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/marquee"
)

// Input translates Ebitengine device state into Document pointer calls.
// Call Update once per game tick.
type Input struct {
	doc *marquee.Document

	down         bool
	button       marquee.MouseButton
	lastX, lastY float64
}

// NewInput returns an Input feeding doc.
func NewInput(doc *marquee.Document) *Input {
	return &Input{doc: doc}
}

// Update advances the document by one frame and dispatches real device
// input. Frames that consumed an injected event skip the device, so
// scripted gestures are not disturbed by the idle mouse.
func (in *Input) Update() {
	if in.doc.Update() {
		return
	}
	mx, my := ebiten.CursorPosition()

	// If the pointer is already down, keep the stored button so a second
	// button cannot change the gesture mid-drag.
	var pressed bool
	var button marquee.MouseButton
	left := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	right := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	middle := ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle)
	if left || right || middle {
		pressed = true
		if left {
			button = marquee.MouseButtonLeft
		} else if right {
			button = marquee.MouseButtonRight
		} else {
			button = marquee.MouseButtonMiddle
		}
	}

	wx, wy := ebiten.Wheel()
	in.process(float64(mx), float64(my), pressed, button, wx, wy)
}

// process runs the pointer state machine for one frame of device state.
// Wheel deltas are in notches; Ebitengine reports positive Y for scrolling
// up, so the sign is flipped to match document scroll direction.
func (in *Input) process(x, y float64, pressed bool, button marquee.MouseButton, wheelX, wheelY float64) {
	switch {
	case pressed && !in.down:
		in.down = true
		in.button = button
		in.doc.PointerDown(x, y, button)
	case !pressed && in.down:
		in.down = false
		in.doc.PointerUp(x, y, in.button)
	case x != in.lastX || y != in.lastY:
		b := button
		if in.down {
			b = in.button
		}
		in.doc.PointerMove(x, y, b)
	}
	in.lastX, in.lastY = x, y

	if wheelX != 0 || wheelY != 0 {
		in.doc.Wheel(x, y, -wheelX, -wheelY)
	}
}

// Down reports whether a pointer button is held.
func (in *Input) Down() bool {
	return in.down
}
