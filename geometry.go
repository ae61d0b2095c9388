package marquee

// Overlap reports whether two rectangles overlap on both axes.
// Edges are inclusive, so rectangles that only touch are overlapping.
func Overlap(a, b Rect) bool {
	return overlap1D(a.Y, a.Height, b.Y, b.Height) &&
		overlap1D(a.X, a.Width, b.X, b.Width)
}

// overlap1D reports whether [start1, start1+width1] and
// [start2, start2+width2] share at least one point. The third clause covers
// the second interval fully containing the first, which neither endpoint
// test catches.
func overlap1D(start1, width1, start2, width2 float64) bool {
	end1, end2 := start1+width1, start2+width2
	return (start2 >= start1 && start2 <= end1) ||
		(end2 >= start1 && end2 <= end1) ||
		(start2 <= start1 && end2 >= end1)
}

// sign returns -1, 0 or 1 according to the sign of v.
func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// spanRect returns the rectangle spanned by two corner points, with a
// non-negative size on both axes.
func spanRect(a, b Vec2) Rect {
	r := Rect{X: a.X, Y: a.Y, Width: b.X - a.X, Height: b.Y - a.Y}
	if r.Width < 0 {
		r.X = b.X
		r.Width = -r.Width
	}
	if r.Height < 0 {
		r.Y = b.Y
		r.Height = -r.Height
	}
	return r
}
