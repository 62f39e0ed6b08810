package viewport

import (
	"math"

	"github.com/theted/aws-concept-map/core"
)

// SelectNext selects the next service in canonical (category, name) order
// and brings it into view. With no selection it starts from the first.
func (e *Engine) SelectNext() {
	if len(e.nodes) == 0 {
		return
	}
	idx := 0
	if cur, ok := e.index[e.selected]; ok {
		idx = (cur + 1) % len(e.nodes)
	}
	key := e.nodes[idx].Key
	e.Select(key)
	e.Focus(key, true)
}

// SelectPrevious selects the previous service in canonical order and
// brings it into view. With no selection it starts from the last.
func (e *Engine) SelectPrevious() {
	if len(e.nodes) == 0 {
		return
	}
	idx := len(e.nodes) - 1
	if cur, ok := e.index[e.selected]; ok {
		idx = (cur - 1 + len(e.nodes)) % len(e.nodes)
	}
	key := e.nodes[idx].Key
	e.Select(key)
	e.Focus(key, true)
}

// NavigateDirection moves the selection to the nearest service in the
// given direction. Candidates must clear a small primary-axis threshold;
// each is scored as primary distance plus weighted perpendicular offset,
// so a roughly in-line node beats a merely close one. With no qualifying
// candidate, or no selection at all, the view pans instead.
func (e *Engine) NavigateDirection(d core.Direction) {
	cur, ok := e.index[e.selected]
	if !ok {
		e.panDirection(d)
		return
	}

	from := e.nodes[cur]
	best := ""
	bestScore := math.Inf(1)
	for _, n := range e.nodes {
		if n.Key == from.Key {
			continue
		}
		primary, perp := axisDeltas(from, n, d)
		if primary <= e.tun.NavThreshold {
			continue
		}
		score := primary + perp*e.tun.NavPerpWeight
		if score < bestScore {
			bestScore = score
			best = n.Key
		}
	}

	if best == "" {
		e.panDirection(d)
		return
	}
	e.Select(best)
	e.Focus(best, true)
}

// axisDeltas splits the offset between two nodes into the signed distance
// along the navigation axis and the absolute perpendicular offset.
func axisDeltas(from, to core.Node, d core.Direction) (primary, perp float64) {
	dx := to.X - from.X
	dy := to.Y - from.Y
	switch d {
	case core.DirUp:
		return -dy, math.Abs(dx)
	case core.DirDown:
		return dy, math.Abs(dx)
	case core.DirLeft:
		return -dx, math.Abs(dy)
	default:
		return dx, math.Abs(dy)
	}
}

// panDirection pans the view one step. Panning right moves the viewport
// right across the world, so the translation decreases.
func (e *Engine) panDirection(d core.Direction) {
	step := e.tun.PanStep
	switch d {
	case core.DirUp:
		e.PanBy(0, step, true)
	case core.DirDown:
		e.PanBy(0, -step, true)
	case core.DirLeft:
		e.PanBy(step, 0, true)
	default:
		e.PanBy(-step, 0, true)
	}
}
