package marquee

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// scrollAnim holds active scroll-to tweens for the pan X and Y.
type scrollAnim struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	doneX  bool
	doneY  bool
}

// Viewport is a virtual Scroller: instead of scrolling the container node,
// it keeps a pan offset over an unbounded (or bounded) content plane, and
// selectables are translated by that offset. This suits map-like endless
// canvases whose children are positioned in content coordinates.
type Viewport struct {
	// X and Y are the content coordinates shown at the viewport's top-left.
	X, Y float64
	// Width and Height are the visible size.
	Width, Height float64

	// BoundsEnabled limits panning so the visible area stays within Bounds.
	// Without bounds the viewport can pan forever in every direction.
	BoundsEnabled bool
	// Bounds is the content-space rectangle the viewport is clamped to when
	// BoundsEnabled is true.
	Bounds Rect

	scrollTween *scrollAnim
}

// NewViewport creates a Viewport of the given visible size, panned to the
// content origin.
func NewViewport(width, height float64) *Viewport {
	return &Viewport{Width: width, Height: height}
}

// Factory returns a ScrollerFactory that hands out this viewport, so a
// container can share one pan state across gestures.
func (v *Viewport) Factory() ScrollerFactory {
	return func(*Node, Rect) Scroller { return v }
}

// SetBounds enables bounds clamping.
func (v *Viewport) SetBounds(bounds Rect) {
	v.BoundsEnabled = true
	v.Bounds = bounds
	v.clampToBounds()
}

// ClearBounds disables bounds clamping.
func (v *Viewport) ClearBounds() {
	v.BoundsEnabled = false
}

// ScrollableDistances implements Scroller. Unbounded axes report +Inf.
func (v *Viewport) ScrollableDistances() [4]float64 {
	if !v.BoundsEnabled {
		inf := math.Inf(1)
		return [4]float64{inf, inf, inf, inf}
	}
	return [4]float64{
		EdgeTop:    math.Max(v.Y-v.Bounds.Y, 0),
		EdgeRight:  math.Max(v.Bounds.Right()-(v.X+v.Width), 0),
		EdgeBottom: math.Max(v.Bounds.Bottom()-(v.Y+v.Height), 0),
		EdgeLeft:   math.Max(v.X-v.Bounds.X, 0),
	}
}

// Scroll implements Scroller. A manual scroll cancels any running ScrollTo.
func (v *Viewport) Scroll(axis Axis, shift float64) {
	v.scrollTween = nil
	if axis == AxisVertical {
		v.Y += shift
	} else {
		v.X += shift
	}
	v.clampToBounds()
}

// ScrollOffset implements Scroller: content at (x, y) appears at
// (x - X, y - Y) in the container.
func (v *Viewport) ScrollOffset() Vec2 {
	return Vec2{-v.X, -v.Y}
}

// ContentToView converts a content-space point to container coordinates.
func (v *Viewport) ContentToView(x, y float64) (float64, float64) {
	return x - v.X, y - v.Y
}

// ViewToContent converts a container-space point to content coordinates.
func (v *Viewport) ViewToContent(x, y float64) (float64, float64) {
	return x + v.X, y + v.Y
}

// VisibleBounds returns the content-space rectangle currently shown.
func (v *Viewport) VisibleBounds() Rect {
	return Rect{X: v.X, Y: v.Y, Width: v.Width, Height: v.Height}
}

// ScrollTo animates the pan so that (x, y) becomes the top-left corner over
// duration seconds. Advance it with Update.
func (v *Viewport) ScrollTo(x, y float64, duration float32, easeFn ease.TweenFunc) {
	v.scrollTween = &scrollAnim{
		tweenX: gween.New(float32(v.X), float32(x), duration, easeFn),
		tweenY: gween.New(float32(v.Y), float32(y), duration, easeFn),
	}
}

// Scrolling reports whether a ScrollTo animation is running.
func (v *Viewport) Scrolling() bool {
	return v.scrollTween != nil
}

// Update advances a running ScrollTo by dt seconds.
func (v *Viewport) Update(dt float32) {
	if v.scrollTween == nil {
		return
	}
	if !v.scrollTween.doneX {
		val, done := v.scrollTween.tweenX.Update(dt)
		v.X = float64(val)
		v.scrollTween.doneX = done
	}
	if !v.scrollTween.doneY {
		val, done := v.scrollTween.tweenY.Update(dt)
		v.Y = float64(val)
		v.scrollTween.doneY = done
	}
	if v.scrollTween.doneX && v.scrollTween.doneY {
		v.scrollTween = nil
	}
	v.clampToBounds()
}

// clampToBounds restricts the pan so the visible area stays within Bounds.
func (v *Viewport) clampToBounds() {
	if !v.BoundsEnabled {
		return
	}
	maxX := v.Bounds.Right() - v.Width
	maxY := v.Bounds.Bottom() - v.Height

	// If bounds are smaller than the visible area, pin to the bounds origin.
	if maxX < v.Bounds.X {
		v.X = v.Bounds.X
	} else {
		v.X = math.Max(v.Bounds.X, math.Min(v.X, maxX))
	}
	if maxY < v.Bounds.Y {
		v.Y = v.Bounds.Y
	} else {
		v.Y = math.Max(v.Bounds.Y, math.Min(v.Y, maxY))
	}
}
