package marquee

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

func TestOverlap(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want bool
	}{
		{"disjoint x", Rect{0, 0, 10, 10}, Rect{20, 0, 10, 10}, false},
		{"disjoint y", Rect{0, 0, 10, 10}, Rect{0, 20, 10, 10}, false},
		{"diagonal miss", Rect{0, 0, 10, 10}, Rect{11, 11, 5, 5}, false},
		{"partial", Rect{0, 0, 10, 10}, Rect{5, 5, 10, 10}, true},
		{"touching edge", Rect{0, 0, 10, 10}, Rect{10, 0, 10, 10}, true},
		{"touching corner", Rect{0, 0, 10, 10}, Rect{10, 10, 5, 5}, true},
		{"b inside a", Rect{0, 0, 100, 100}, Rect{40, 40, 10, 10}, true},
		{"a inside b", Rect{40, 40, 10, 10}, Rect{0, 0, 100, 100}, true},
		{"cross shape", Rect{0, 40, 100, 10}, Rect{40, 0, 10, 100}, true},
		{"zero size inside", Rect{5, 5, 0, 0}, Rect{0, 0, 10, 10}, true},
		{"zero size outside", Rect{50, 50, 0, 0}, Rect{0, 0, 10, 10}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Overlap(tt.a, tt.b); got != tt.want {
				t.Errorf("Overlap(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
			if got := Overlap(tt.b, tt.a); got != tt.want {
				t.Errorf("Overlap(%v, %v) = %v, want %v (swapped)", tt.b, tt.a, got, tt.want)
			}
		})
	}
}

func TestOverlapReflexive(t *testing.T) {
	for _, r := range []Rect{{0, 0, 0, 0}, {-5, -5, 3, 3}, {1, 2, 300, 4}} {
		if !Overlap(r, r) {
			t.Errorf("Overlap(%v, %v) = false, want true", r, r)
		}
	}
}

func TestSpanRect(t *testing.T) {
	tests := []struct {
		a, b Vec2
		want Rect
	}{
		{Vec2{10, 10}, Vec2{100, 60}, Rect{10, 10, 90, 50}},
		{Vec2{100, 60}, Vec2{10, 10}, Rect{10, 10, 90, 50}},
		{Vec2{100, 10}, Vec2{10, 60}, Rect{10, 10, 90, 50}},
		{Vec2{5, 5}, Vec2{5, 5}, Rect{5, 5, 0, 0}},
	}
	for _, tt := range tests {
		if got := spanRect(tt.a, tt.b); got != tt.want {
			t.Errorf("spanRect(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestSign(t *testing.T) {
	if sign(3) != 1 || sign(-0.5) != -1 || sign(0) != 0 {
		t.Error("sign returned an unexpected value")
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{10, 10, 20, 20}
	if !r.Contains(10, 10) || !r.Contains(30, 30) || !r.Contains(20, 15) {
		t.Error("expected points on and inside the edge to be contained")
	}
	if r.Contains(9.9, 15) || r.Contains(15, 30.1) {
		t.Error("expected outside points to be rejected")
	}
}

func TestRectTranslate(t *testing.T) {
	r := Rect{1, 2, 3, 4}.Translate(Vec2{-1, 10})
	if r != (Rect{0, 12, 3, 4}) {
		t.Errorf("Translate = %v", r)
	}
	if r.Right() != 3 || r.Bottom() != 16 {
		t.Errorf("Right/Bottom = %v/%v, want 3/16", r.Right(), r.Bottom())
	}
}

func TestColorRGBA(t *testing.T) {
	c := Color{R: 1, G: 0.5, B: 0, A: 0.5}.RGBA()
	if c.R != 128 || c.G != 64 || c.B != 0 || c.A != 128 {
		t.Errorf("RGBA = %v, want premultiplied {128 64 0 128}", c)
	}
	if w := ColorWhite.RGBA(); w.R != 255 || w.A != 255 {
		t.Errorf("white = %v", w)
	}
}

func TestStateString(t *testing.T) {
	if StateIdle.String() != "idle" || StateArmed.String() != "armed" || StateDragging.String() != "dragging" {
		t.Error("unexpected State names")
	}
	if State(99).String() != "unknown" {
		t.Error("out-of-range State should be unknown")
	}
}
