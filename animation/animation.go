// Package animation provides the cooperative per-frame scheduling and
// interpolation machinery used by the viewport. Animated concerns register
// a tick callback with a Scheduler; each concern owns at most one Job at a
// time, and starting a new job replaces the old one in place.
package animation

import (
	"sort"
	"time"
)

// Easing maps linear progress in [0,1] to eased progress in [0,1].
type Easing func(t float64) float64

// EaseOutCubic decelerates toward the target: 1-(1-t)^3.
func EaseOutCubic(t float64) float64 {
	u := 1 - t
	return 1 - u*u*u
}

// Linear applies no easing.
func Linear(t float64) float64 { return t }

// Tween interpolates one scalar field, writing each interpolated value back
// through Apply so concurrent readers of the live state always see a
// consistent snapshot.
type Tween struct {
	From, To float64
	Apply    func(v float64)
}

// Job interpolates a set of tweens from a start time over a fixed duration.
type Job struct {
	start    time.Time
	duration time.Duration
	easing   Easing
	tweens   []Tween
}

// NewJob creates a job starting at the given time. A zero or negative
// duration completes on the first step.
func NewJob(start time.Time, duration time.Duration, easing Easing, tweens ...Tween) *Job {
	if easing == nil {
		easing = EaseOutCubic
	}
	return &Job{start: start, duration: duration, easing: easing, tweens: tweens}
}

// Step applies the interpolated values for the given time and reports
// whether the job has finished. At completion every tween is set to its
// exact target value.
func (j *Job) Step(now time.Time) bool {
	progress := 1.0
	if j.duration > 0 {
		progress = float64(now.Sub(j.start)) / float64(j.duration)
	}
	if progress >= 1 {
		for _, tw := range j.tweens {
			tw.Apply(tw.To)
		}
		return true
	}
	if progress < 0 {
		progress = 0
	}
	eased := j.easing(progress)
	for _, tw := range j.tweens {
		tw.Apply(tw.From + (tw.To-tw.From)*eased)
	}
	return false
}

// Handle identifies a scheduled tick callback.
type Handle int

// TickFunc is invoked once per frame with the current time.
type TickFunc func(now time.Time)

// Scheduler drives per-frame callbacks. Implementations decide frame
// timing; tests drive ticks with a virtual clock.
type Scheduler interface {
	// Schedule registers a tick callback to run every frame until cancelled.
	Schedule(tick TickFunc) Handle
	// Cancel stops a callback. Cancelling an unknown handle is a no-op.
	Cancel(h Handle)
}

// Runner is the single-goroutine Scheduler used by both the terminal frame
// loop and tests. Tick dispatches one frame to every registered callback.
type Runner struct {
	next  Handle
	ticks map[Handle]TickFunc
}

// NewRunner creates an empty Runner.
func NewRunner() *Runner {
	return &Runner{next: 1, ticks: make(map[Handle]TickFunc)}
}

// Schedule registers a callback and returns its handle.
func (r *Runner) Schedule(tick TickFunc) Handle {
	h := r.next
	r.next++
	r.ticks[h] = tick
	return h
}

// Cancel removes a callback. A cancelled callback simply stops being
// invoked; no other cleanup happens.
func (r *Runner) Cancel(h Handle) {
	delete(r.ticks, h)
}

// Active reports whether any callback is registered.
func (r *Runner) Active() bool {
	return len(r.ticks) > 0
}

// Tick runs one frame. Callbacks may cancel themselves or schedule new
// callbacks during the tick; newly scheduled callbacks run from the next
// frame on.
func (r *Runner) Tick(now time.Time) {
	handles := make([]Handle, 0, len(r.ticks))
	for h := range r.ticks {
		handles = append(handles, h)
	}
	sort.Slice(handles, func(i, j int) bool { return handles[i] < handles[j] })
	for _, h := range handles {
		if tick, ok := r.ticks[h]; ok {
			tick(now)
		}
	}
}
