// Package geometry provides pure coordinate math for the view transform.
package geometry

import (
	"math"

	"github.com/theted/aws-concept-map/core"
)

// ScreenToWorld maps a screen point into world space under the given
// canvas state.
func ScreenToWorld(p core.Point, s core.CanvasState) core.Point {
	return core.Point{
		X: (p.X - s.TranslateX) / s.Scale,
		Y: (p.Y - s.TranslateY) / s.Scale,
	}
}

// WorldToScreen maps a world point into screen space under the given
// canvas state.
func WorldToScreen(p core.Point, s core.CanvasState) core.Point {
	return core.Point{
		X: p.X*s.Scale + s.TranslateX,
		Y: p.Y*s.Scale + s.TranslateY,
	}
}

// WorldToScreenRect maps a world rectangle into screen space.
func WorldToScreenRect(r core.Rect, s core.CanvasState) core.Rect {
	tl := WorldToScreen(core.Point{X: r.X, Y: r.Y}, s)
	return core.Rect{
		X:      tl.X,
		Y:      tl.Y,
		Width:  r.Width * s.Scale,
		Height: r.Height * s.Scale,
	}
}

// VisibleWorldRect returns the world-space rectangle covered by a screen
// area of the given size under the current transform.
func VisibleWorldRect(width, height float64, s core.CanvasState) core.Rect {
	tl := ScreenToWorld(core.Point{}, s)
	br := ScreenToWorld(core.Point{X: width, Y: height}, s)
	return core.Rect{X: tl.X, Y: tl.Y, Width: br.X - tl.X, Height: br.Y - tl.Y}
}

// ZoomAround returns the canvas state with the given scale such that the
// world point currently under anchor stays under anchor after rescaling.
func ZoomAround(s core.CanvasState, anchor core.Point, scale float64) core.CanvasState {
	w := ScreenToWorld(anchor, s)
	return core.CanvasState{
		Scale:      scale,
		TranslateX: anchor.X - w.X*scale,
		TranslateY: anchor.Y - w.Y*scale,
	}
}

// Clamp limits v to the range [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Distance returns the Euclidean distance between two points.
func Distance(a, b core.Point) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}
