// Package viewport implements the interactive canvas engine: the view
// transform, gesture handling, hit-testing, culling, and the animated
// navigation between services. All engine state is mutated from a single
// goroutine, by input handlers and by frame ticks from the scheduler.
package viewport

import (
	"errors"
	"time"

	"github.com/theted/aws-concept-map/animation"
	"github.com/theted/aws-concept-map/core"
	"github.com/theted/aws-concept-map/geometry"
	"github.com/theted/aws-concept-map/layout"
)

// SelectFunc receives selection changes. Deselection is reported with the
// empty key and a zero node.
type SelectFunc func(key string, node core.Node)

// Options configures an Engine beyond its data inputs. Zero values fall
// back to defaults.
type Options struct {
	Layout layout.Config
	Tuning Tuning
	Now    func() time.Time
}

// Engine owns the canvas state and drives all interaction with the map.
type Engine struct {
	surface Surface
	sched   animation.Scheduler
	now     func() time.Time
	tun     Tuning

	nodes  []core.Node // positioned, canonical order
	index  map[string]int
	conns  []core.Connection // endpoints resolve; duplicates preserved
	widths map[string]float64
	titles map[string]string
	groups []core.CategoryGroup
	bounds core.Rect

	state           core.CanvasState
	transformHandle animation.Handle
	transformActive bool
	zoomTarget      float64 // in-flight wheel zoom target scale, 0 when idle

	selected string
	onSelect SelectFunc

	drag  dragState
	pinch pinchState

	connOpacity   map[string]*opacityState
	opacityHandle animation.Handle
	opacityActive bool

	fadeOpacity float64
}

// New builds an engine from raw (unpositioned) nodes. It runs a layout
// pass, resolves connections, and starts the initial fade-in. It fails
// fast when no drawing surface is available.
func New(surface Surface, sched animation.Scheduler, nodes []core.Node,
	conns []core.Connection, widths map[string]float64,
	titles map[string]string, opts Options) (*Engine, error) {

	if surface == nil {
		return nil, errors.New("viewport: no drawing surface")
	}
	if sched == nil {
		return nil, errors.New("viewport: no scheduler")
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Tuning == (Tuning{}) {
		opts.Tuning = DefaultTuning()
	}
	if opts.Layout.NodeHeight == 0 {
		opts.Layout = layout.DefaultConfig()
	}

	input := make([]core.Node, len(nodes))
	copy(input, nodes)
	for i := range input {
		if w, ok := widths[input[i].Key]; ok {
			input[i].Width = w
		}
		if input[i].Width <= 0 {
			input[i].Width = 10
		}
	}

	result := layout.Compute(input, opts.Layout)

	e := &Engine{
		surface:     surface,
		sched:       sched,
		now:         opts.Now,
		tun:         opts.Tuning,
		nodes:       result.Nodes,
		index:       make(map[string]int, len(result.Nodes)),
		widths:      make(map[string]float64, len(result.Nodes)),
		titles:      titles,
		groups:      result.Groups,
		bounds:      result.Bounds,
		state:       core.CanvasState{Scale: 1},
		connOpacity: make(map[string]*opacityState),
	}
	for i, n := range e.nodes {
		e.index[n.Key] = i
		e.widths[n.Key] = n.Width
	}

	// Connections whose endpoints don't resolve are dropped here and never
	// drawn or navigated.
	for _, c := range conns {
		if _, ok := e.index[c.From]; !ok {
			continue
		}
		if _, ok := e.index[c.To]; !ok {
			continue
		}
		e.conns = append(e.conns, c)
		if _, ok := e.connOpacity[c.Key()]; !ok {
			e.connOpacity[c.Key()] = &opacityState{
				current: e.tun.OpacityNormal,
				target:  e.tun.OpacityNormal,
			}
		}
	}

	e.CenterOnContent(false)
	e.startFadeIn()
	return e, nil
}

// State returns the current view transform.
func (e *Engine) State() core.CanvasState {
	return e.state
}

// StatePatch is a partial view transform; nil fields are left unchanged.
type StatePatch struct {
	Scale      *float64
	TranslateX *float64
	TranslateY *float64
}

// SetState applies a partial transform immediately, cancelling any
// in-flight transform animation first so the two never race on the same
// fields. Scale is clamped to the configured range.
func (e *Engine) SetState(p StatePatch) {
	e.cancelTransform()
	if p.Scale != nil {
		e.state.Scale = geometry.Clamp(*p.Scale, e.tun.MinScale, e.tun.MaxScale)
	}
	if p.TranslateX != nil {
		e.state.TranslateX = *p.TranslateX
	}
	if p.TranslateY != nil {
		e.state.TranslateY = *p.TranslateY
	}
}

// IsAnimating reports whether a view transform animation is in flight.
func (e *Engine) IsAnimating() bool {
	return e.transformActive
}

// Nodes returns the positioned nodes in canonical order.
func (e *Engine) Nodes() []core.Node {
	return e.nodes
}

// NodeWidths returns a copy of the node width map.
func (e *Engine) NodeWidths() map[string]float64 {
	widths := make(map[string]float64, len(e.widths))
	for k, v := range e.widths {
		widths[k] = v
	}
	return widths
}

// SelectedKey returns the currently selected service key, or "".
func (e *Engine) SelectedKey() string {
	return e.selected
}

// SetOnSelect registers the selection callback.
func (e *Engine) SetOnSelect(cb SelectFunc) {
	e.onSelect = cb
}

// Select sets the current selection. An empty key deselects and reports
// the empty sentinel, but only when something was selected; an unknown key
// is ignored.
func (e *Engine) Select(key string) {
	if key == "" {
		if e.selected == "" {
			return
		}
		e.selected = ""
		e.retargetOpacities()
		if e.onSelect != nil {
			e.onSelect("", core.Node{})
		}
		return
	}
	idx, ok := e.index[key]
	if !ok {
		return
	}
	e.selected = key
	e.retargetOpacities()
	if e.onSelect != nil {
		e.onSelect(key, e.nodes[idx])
	}
}

// NodeAt returns the first node in canonical order containing the world
// point. Draw order is hit-test priority.
func (e *Engine) NodeAt(world core.Point) (core.Node, bool) {
	for _, n := range e.nodes {
		if n.Contains(world) {
			return n, true
		}
	}
	return core.Node{}, false
}

// CenterOnContent fits the whole map into the viewport, optionally
// animated.
func (e *Engine) CenterOnContent(animate bool) {
	w, h := e.surface.Size()
	target := e.fitState(float64(w), float64(h))
	e.applyTransform(target, animate, e.tun.CenterDuration)
}

// Focus centers the view on a service at the focus scale. Unknown keys are
// a no-op.
func (e *Engine) Focus(key string, animate bool) {
	idx, ok := e.index[key]
	if !ok {
		return
	}
	n := e.nodes[idx]
	w, h := e.surface.Size()
	scale := geometry.Clamp(e.tun.FocusScale, e.tun.MinScale, e.tun.MaxScale)
	target := core.CanvasState{
		Scale:      scale,
		TranslateX: float64(w)/2 - n.X*scale,
		TranslateY: float64(h)/2 - n.Y*scale,
	}
	e.applyTransform(target, animate, e.tun.FocusDuration)
}

// ResetView deselects and re-centers on the full content.
func (e *Engine) ResetView() {
	e.Select("")
	e.CenterOnContent(true)
}

// Render draws the full current state: category regions, connections, then
// nodes, culling everything outside the padded viewport. Culling is
// render-only and never affects hit-testing.
func (e *Engine) Render() {
	w, h := e.surface.Size()
	e.surface.Clear()

	view := geometry.VisibleWorldRect(float64(w), float64(h), e.state).
		Expand(e.tun.CullPadding / e.state.Scale)

	for _, g := range e.groups {
		if !g.Bounds.Intersects(view) {
			continue
		}
		e.surface.DrawGroup(g, e.titles[g.Category],
			geometry.WorldToScreenRect(g.Bounds, e.state), e.fadeOpacity)
	}

	for _, c := range e.conns {
		a := e.nodes[e.index[c.From]]
		b := e.nodes[e.index[c.To]]
		if !endpointBox(a, b).Intersects(view) {
			continue
		}
		e.surface.DrawConnection(
			geometry.WorldToScreen(a.Center(), e.state),
			geometry.WorldToScreen(b.Center(), e.state),
			a.Category,
			e.connOpacity[c.Key()].current*e.fadeOpacity,
			e.selected != "" && c.Touches(e.selected),
		)
	}

	for _, n := range e.nodes {
		if !n.Bounds().Intersects(view) {
			continue
		}
		e.surface.DrawNode(n,
			geometry.WorldToScreenRect(n.Bounds(), e.state),
			n.Key == e.selected, e.fadeOpacity)
	}

	e.surface.Flush()
}

// endpointBox is the bounding box of a connection's two endpoints.
func endpointBox(a, b core.Node) core.Rect {
	minX, maxX := a.X, b.X
	if minX > maxX {
		minX, maxX = maxX, minX
	}
	minY, maxY := a.Y, b.Y
	if minY > maxY {
		minY, maxY = maxY, minY
	}
	return core.Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// fitState computes the transform that fits the content bounds into a
// screen of the given size.
func (e *Engine) fitState(w, h float64) core.CanvasState {
	if e.bounds.Width <= 0 || e.bounds.Height <= 0 {
		return core.CanvasState{Scale: 1, TranslateX: w / 2, TranslateY: h / 2}
	}
	scale := geometry.Clamp(
		min(w/e.bounds.Width, h/e.bounds.Height)*e.tun.FitMargin,
		e.tun.MinScale, e.tun.MaxScale)
	center := e.bounds.Center()
	return core.CanvasState{
		Scale:      scale,
		TranslateX: w/2 - center.X*scale,
		TranslateY: h/2 - center.Y*scale,
	}
}

// applyTransform either snaps to the target state or animates toward it.
// Starting a new animation cancels and replaces any in-flight one.
func (e *Engine) applyTransform(target core.CanvasState, animate bool, d time.Duration) {
	e.cancelTransform()
	if !animate {
		e.state = target
		return
	}
	e.startTransform(target, d)
}

// startTransform begins an eased animation of the view transform,
// replacing any job already in flight so the transform never has two
// writers. Only the fields that actually change are tweened.
func (e *Engine) startTransform(target core.CanvasState, d time.Duration) {
	e.cancelTransform()

	var tweens []animation.Tween
	if target.Scale != e.state.Scale {
		tweens = append(tweens, animation.Tween{
			From: e.state.Scale, To: target.Scale,
			Apply: func(v float64) { e.state.Scale = v },
		})
	}
	if target.TranslateX != e.state.TranslateX {
		tweens = append(tweens, animation.Tween{
			From: e.state.TranslateX, To: target.TranslateX,
			Apply: func(v float64) { e.state.TranslateX = v },
		})
	}
	if target.TranslateY != e.state.TranslateY {
		tweens = append(tweens, animation.Tween{
			From: e.state.TranslateY, To: target.TranslateY,
			Apply: func(v float64) { e.state.TranslateY = v },
		})
	}
	if len(tweens) == 0 {
		return
	}

	job := animation.NewJob(e.now(), d, animation.EaseOutCubic, tweens...)
	e.transformActive = true
	e.transformHandle = e.sched.Schedule(func(now time.Time) {
		if job.Step(now) {
			e.sched.Cancel(e.transformHandle)
			e.transformActive = false
			e.zoomTarget = 0
		}
	})
}

// cancelTransform stops any in-flight transform animation, leaving the
// state at its last interpolated value. Best-effort and never fails.
func (e *Engine) cancelTransform() {
	if !e.transformActive {
		return
	}
	e.sched.Cancel(e.transformHandle)
	e.transformActive = false
	e.zoomTarget = 0
}

// startFadeIn runs the one-shot initial fade as its own job so it overlaps
// freely with transform and opacity animations.
func (e *Engine) startFadeIn() {
	if e.tun.FadeInDuration <= 0 {
		e.fadeOpacity = 1
		return
	}
	e.fadeOpacity = 0
	job := animation.NewJob(e.now(), e.tun.FadeInDuration, animation.EaseOutCubic,
		animation.Tween{From: 0, To: 1, Apply: func(v float64) { e.fadeOpacity = v }})
	var handle animation.Handle
	handle = e.sched.Schedule(func(now time.Time) {
		if job.Step(now) {
			e.sched.Cancel(handle)
		}
	})
}
