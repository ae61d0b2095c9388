package marquee

import (
	"math"
	"time"
)

const (
	// scrollInterval is the auto-scroll re-arm delay, about one 60 Hz frame.
	scrollInterval = 16 * time.Millisecond
	// scrollFrameMillis is the frame length that lag multipliers are
	// normalized against.
	scrollFrameMillis = 16.0
	// scrollProximityDivisor converts border proximity into pixels per step.
	scrollProximityDivisor = 10.0
)

// edgeMetric describes the pointer's relation to one viewport border.
type edgeMetric struct {
	distance  float64 // pointer to border, clamped at 0
	direction float64 // -1 scrolls up / left, +1 down / right
	axis      Axis
}

// edgeMetrics returns the metrics of the four borders of viewport for
// pointer p, indexed by Edge.
func edgeMetrics(viewport Rect, p Vec2) [4]edgeMetric {
	return [4]edgeMetric{
		EdgeTop: {
			distance:  math.Max(p.Y-viewport.Y, 0),
			direction: -1,
			axis:      AxisVertical,
		},
		EdgeRight: {
			distance:  math.Max(viewport.Right()-p.X, 0),
			direction: 1,
			axis:      AxisHorizontal,
		},
		EdgeBottom: {
			distance:  math.Max(viewport.Bottom()-p.Y, 0),
			direction: 1,
			axis:      AxisVertical,
		},
		EdgeLeft: {
			distance:  math.Max(p.X-viewport.X, 0),
			direction: -1,
			axis:      AxisHorizontal,
		},
	}
}

// component returns the coordinate of v along axis.
func component(v Vec2, axis Axis) float64 {
	if axis == AxisVertical {
		return v.Y
	}
	return v.X
}

// lagMultiplier scales a scroll step by the time actually elapsed since the
// previous step, so scrolling advances at the same speed as it would at
// exactly 60 steps per second. The first step of a run (zero prev) uses 1.
func lagMultiplier(prev, now time.Time) float64 {
	if prev.IsZero() {
		return 1
	}
	return float64(now.Sub(prev)) / float64(time.Millisecond) / scrollFrameMillis
}

// scrollShift computes the signed scroll step for an edge. The closer the
// pointer is to the border, the larger the step, never beyond what is
// still available.
func scrollShift(m edgeMetric, available, threshold, lag, speed float64) float64 {
	step := math.Min(available, math.Ceil((threshold-m.distance)/scrollProximityDivisor))
	return m.direction * step * lag * speed
}

// updateViewportScrolling scrolls the container when the pointer p moves
// toward a viewport border it is close to, and keeps scrolling from a timer
// while the pointer rests there. scrollStamp is the time of the previous
// scroll step, zero when called for a real pointer move.
func (i *instance) updateViewportScrolling(p Vec2, scrollStamp time.Time) {
	s := i.session
	s.scrollTimer.Cancel()
	s.scrollTimer = TimerHandle{}

	threshold := s.opts.ScrollingThreshold
	metrics := edgeMetrics(s.viewport, p)
	available := s.scroller.ScrollableDistances()

	now := i.reg.doc.Now()
	lag := lagMultiplier(scrollStamp, now)

	scrolled := false
	for e := len(metrics) - 1; e >= 0; e-- {
		m := metrics[e]
		moving := sign(component(s.cur, m.axis) - component(s.last, m.axis))
		if m.distance >= threshold || available[e] <= 0 || moving != m.direction {
			continue
		}

		shift := scrollShift(m, available[e], threshold, lag, s.opts.ScrollSpeedMultiplier)
		s.scroller.Scroll(m.axis, shift)

		// Move the anchor the opposite way so the box origin stays on the
		// same content while the content moves under it.
		if m.axis == AxisVertical {
			s.start.Y -= shift
			s.cur.Y -= shift
		} else {
			s.start.X -= shift
			s.cur.X -= shift
		}
		scrolled = true
		if i.reg.debugEnabled() {
			i.reg.debugf(i.container, "auto-scroll", "edge", Edge(e).String(), "shift", shift, "lag", lag)
		}
	}

	if scrolled {
		s.scrollTimer = i.reg.doc.AfterFunc(scrollInterval, func() {
			i.tick(p, now)
		})
	}
}
