package viewport

import "time"

// Tuning holds the interaction feel constants. The defaults are tuned for
// terminal cell units; every value can be overridden through configuration.
type Tuning struct {
	MinScale float64
	MaxScale float64

	// Wheel zoom: exponential step per event, briefly animated so rapid
	// events feel continuous. The inverse of WheelFactor is the zoom-out
	// step.
	WheelFactor   float64
	WheelDuration time.Duration

	// Keyboard panning.
	PanStep     float64
	PanDuration time.Duration

	// Fitting and focusing.
	CenterDuration time.Duration
	FocusScale     float64
	FocusDuration  time.Duration
	FitMargin      float64 // fraction of the screen content fills when centered

	// Drag, click and momentum.
	ClickThreshold     float64 // max drag distance still treated as a click
	VelocitySmoothing  float64 // EMA factor for the velocity estimate
	MomentumThreshold  float64 // minimum release speed, units per ms
	MomentumMultiplier float64 // displacement = velocity * multiplier
	MomentumDuration   time.Duration

	// Render-only culling margin, in screen units.
	CullPadding float64

	// Spatial navigation scoring.
	NavThreshold  float64 // minimum primary-axis delta for a candidate
	NavPerpWeight float64 // perpendicular offset weight, < 1

	// Connection opacity animation.
	OpacityNormal    float64
	OpacityHighlight float64
	OpacityDimmed    float64
	OpacityRate      float64 // fraction of remaining distance per frame
	OpacityEpsilon   float64

	FadeInDuration time.Duration
}

// DefaultTuning returns the stock interaction constants.
func DefaultTuning() Tuning {
	return Tuning{
		MinScale:           0.25,
		MaxScale:           4,
		WheelFactor:        1.1,
		WheelDuration:      80 * time.Millisecond,
		PanStep:            12,
		PanDuration:        150 * time.Millisecond,
		CenterDuration:     400 * time.Millisecond,
		FocusScale:         1.5,
		FocusDuration:      400 * time.Millisecond,
		FitMargin:          0.9,
		ClickThreshold:     3,
		VelocitySmoothing:  0.2,
		MomentumThreshold:  0.05,
		MomentumMultiplier: 200,
		MomentumDuration:   600 * time.Millisecond,
		CullPadding:        10,
		NavThreshold:       0.5,
		NavPerpWeight:      0.4,
		OpacityNormal:      0.65,
		OpacityHighlight:   1,
		OpacityDimmed:      0.15,
		OpacityRate:        0.2,
		OpacityEpsilon:     0.01,
		FadeInDuration:     400 * time.Millisecond,
	}
}
