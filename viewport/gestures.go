package viewport

import (
	"math"
	"time"

	"github.com/theted/aws-concept-map/core"
	"github.com/theted/aws-concept-map/geometry"
)

// dragState tracks an in-progress pointer or single-touch pan.
type dragState struct {
	active   bool
	last     core.Point
	lastTime time.Time
	total    float64 // accumulated drag distance, for click detection
	vx, vy   float64 // smoothed velocity, units per millisecond
}

// pinchState tracks a two-touch zoom.
type pinchState struct {
	active   bool
	distance float64
}

// PointerDown begins a drag pan. Any in-flight transform animation is
// cancelled synchronously before the gesture starts mutating state.
func (e *Engine) PointerDown(p core.Point) {
	e.cancelTransform()
	e.drag = dragState{active: true, last: p, lastTime: e.now()}
}

// PointerMove pans the view directly, with no animation, and accumulates
// drag distance and a smoothed velocity estimate.
func (e *Engine) PointerMove(p core.Point) {
	if !e.drag.active {
		return
	}
	// A transform started mid-drag (keyboard pan, say) would fight the
	// direct writes below.
	e.cancelTransform()
	dx := p.X - e.drag.last.X
	dy := p.Y - e.drag.last.Y
	e.state.TranslateX += dx
	e.state.TranslateY += dy
	e.drag.total += math.Hypot(dx, dy)

	now := e.now()
	if dt := float64(now.Sub(e.drag.lastTime)) / float64(time.Millisecond); dt > 0 {
		a := e.tun.VelocitySmoothing
		e.drag.vx += (dx/dt - e.drag.vx) * a
		e.drag.vy += (dy/dt - e.drag.vy) * a
	}
	e.drag.last = p
	e.drag.lastTime = now
}

// PointerUp ends a drag. A short drag registers as a click and resolves a
// selection via hit-testing; a fast release launches a momentum pan.
func (e *Engine) PointerUp(p core.Point) {
	if !e.drag.active {
		return
	}
	drag := e.drag
	e.drag = dragState{}

	if drag.total <= e.tun.ClickThreshold {
		if n, ok := e.NodeAt(geometry.ScreenToWorld(p, e.state)); ok {
			e.Select(n.Key)
		} else {
			e.Select("")
		}
		return
	}

	if math.Hypot(drag.vx, drag.vy) > e.tun.MomentumThreshold {
		target := e.state
		target.TranslateX += drag.vx * e.tun.MomentumMultiplier
		target.TranslateY += drag.vy * e.tun.MomentumMultiplier
		e.startTransform(target, e.tun.MomentumDuration)
	}
}

// PointerLeave abandons any drag in progress without momentum.
func (e *Engine) PointerLeave() {
	e.drag = dragState{}
}

// Wheel zooms by one exponential step toward the anchor point. Rapid
// events retarget the in-flight zoom so steps accumulate instead of
// resetting.
func (e *Engine) Wheel(anchor core.Point, zoomIn bool) {
	factor := e.tun.WheelFactor
	if !zoomIn {
		factor = 1 / factor
	}

	base := e.state.Scale
	if e.transformActive && e.zoomTarget > 0 {
		base = e.zoomTarget
	}
	scale := geometry.Clamp(base*factor, e.tun.MinScale, e.tun.MaxScale)

	target := geometry.ZoomAround(e.state, anchor, scale)
	e.startTransform(target, e.tun.WheelDuration)
	e.zoomTarget = scale
}

// ZoomAtCenter zooms by one step anchored at the viewport center, for the
// keyboard +/- bindings.
func (e *Engine) ZoomAtCenter(zoomIn bool) {
	w, h := e.surface.Size()
	e.Wheel(core.Point{X: float64(w) / 2, Y: float64(h) / 2}, zoomIn)
}

// PanBy shifts the view translation by the given screen-space delta.
func (e *Engine) PanBy(dx, dy float64, animate bool) {
	target := e.state
	target.TranslateX += dx
	target.TranslateY += dy
	e.applyTransform(target, animate, e.tun.PanDuration)
}

// TouchStart begins either a single-touch pan or a two-touch pinch.
func (e *Engine) TouchStart(points []core.Point) {
	switch {
	case len(points) >= 2:
		e.cancelTransform()
		e.drag = dragState{}
		e.pinch = pinchState{active: true, distance: geometry.Distance(points[0], points[1])}
	case len(points) == 1:
		e.PointerDown(points[0])
	}
}

// TouchMove drives the active gesture. Pinch zoom tracks the finger
// distance ratio directly, anchored at the touch midpoint, so fingers stay
// glued to the content.
func (e *Engine) TouchMove(points []core.Point) {
	switch {
	case e.pinch.active && len(points) >= 2:
		dist := geometry.Distance(points[0], points[1])
		if e.pinch.distance <= 0 || dist <= 0 {
			return
		}
		scale := geometry.Clamp(e.state.Scale*dist/e.pinch.distance,
			e.tun.MinScale, e.tun.MaxScale)
		mid := core.Point{
			X: (points[0].X + points[1].X) / 2,
			Y: (points[0].Y + points[1].Y) / 2,
		}
		e.state = geometry.ZoomAround(e.state, mid, scale)
		e.pinch.distance = dist
	case len(points) == 1:
		e.PointerMove(points[0])
	}
}

// TouchEnd finishes the active touch gesture.
func (e *Engine) TouchEnd(points []core.Point) {
	if e.pinch.active {
		e.pinch = pinchState{}
		return
	}
	if len(points) == 1 {
		e.PointerUp(points[0])
	} else {
		e.drag = dragState{}
	}
}
