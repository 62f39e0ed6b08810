package viewport

import (
	"math"
	"time"
)

// opacityState tracks one connection's opacity as it eases toward its
// selection-driven target.
type opacityState struct {
	current float64
	target  float64
}

// retargetOpacities recomputes every connection's target opacity for the
// current selection and makes sure the shared decay loop is running. The
// loop is independent of the view transform job, so both animate
// concurrently.
func (e *Engine) retargetOpacities() {
	for _, c := range e.conns {
		st := e.connOpacity[c.Key()]
		switch {
		case e.selected == "":
			st.target = e.tun.OpacityNormal
		case c.Touches(e.selected):
			st.target = e.tun.OpacityHighlight
		default:
			st.target = e.tun.OpacityDimmed
		}
	}
	e.ensureOpacityLoop()
}

// ensureOpacityLoop schedules the shared opacity tick if it isn't already
// running. The loop cancels itself once every connection settles within
// epsilon of its target.
func (e *Engine) ensureOpacityLoop() {
	if e.opacityActive {
		return
	}
	e.opacityActive = true
	e.opacityHandle = e.sched.Schedule(func(time.Time) {
		settled := true
		for _, st := range e.connOpacity {
			d := st.target - st.current
			if math.Abs(d) <= e.tun.OpacityEpsilon {
				st.current = st.target
				continue
			}
			st.current += d * e.tun.OpacityRate
			settled = false
		}
		if settled {
			e.sched.Cancel(e.opacityHandle)
			e.opacityActive = false
		}
	})
}

// ConnectionOpacity returns the current animated opacity for the
// connection with the given order-independent pair key. Unknown keys
// report fully transparent.
func (e *Engine) ConnectionOpacity(pairKey string) float64 {
	if st, ok := e.connOpacity[pairKey]; ok {
		return st.current
	}
	return 0
}
