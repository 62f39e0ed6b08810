// Package config loads viewer settings from TOML, layered over defaults.
// Every interaction constant is a product tuning knob, so all of them are
// exposed here rather than baked into the engines.
package config

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/theted/aws-concept-map/layout"
	"github.com/theted/aws-concept-map/viewport"
)

// Duration wraps time.Duration so values like "250ms" parse from TOML.
type Duration time.Duration

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

// Config is the full viewer configuration.
type Config struct {
	Layout   Layout   `toml:"layout"`
	Viewport Viewport `toml:"viewport"`
}

// Layout mirrors the layout engine's tuning.
type Layout struct {
	NodeHeight      float64  `toml:"node_height"`
	NodePadding     float64  `toml:"node_padding"`
	CategoryPadding float64  `toml:"category_padding"`
	CategoryColumns int      `toml:"category_columns"`
	CategoryOrder   []string `toml:"category_order"`
}

// Viewport mirrors the interaction tuning.
type Viewport struct {
	MinScale           float64  `toml:"min_scale"`
	MaxScale           float64  `toml:"max_scale"`
	WheelFactor        float64  `toml:"wheel_factor"`
	WheelDuration      Duration `toml:"wheel_duration"`
	PanStep            float64  `toml:"pan_step"`
	PanDuration        Duration `toml:"pan_duration"`
	CenterDuration     Duration `toml:"center_duration"`
	FocusScale         float64  `toml:"focus_scale"`
	FocusDuration      Duration `toml:"focus_duration"`
	FitMargin          float64  `toml:"fit_margin"`
	ClickThreshold     float64  `toml:"click_threshold"`
	VelocitySmoothing  float64  `toml:"velocity_smoothing"`
	MomentumThreshold  float64  `toml:"momentum_threshold"`
	MomentumMultiplier float64  `toml:"momentum_multiplier"`
	MomentumDuration   Duration `toml:"momentum_duration"`
	CullPadding        float64  `toml:"cull_padding"`
	NavThreshold       float64  `toml:"nav_threshold"`
	NavPerpWeight      float64  `toml:"nav_perp_weight"`
	OpacityNormal      float64  `toml:"opacity_normal"`
	OpacityHighlight   float64  `toml:"opacity_highlight"`
	OpacityDimmed      float64  `toml:"opacity_dimmed"`
	OpacityRate        float64  `toml:"opacity_rate"`
	OpacityEpsilon     float64  `toml:"opacity_epsilon"`
	FadeInDuration     Duration `toml:"fade_in_duration"`
}

// Default returns the stock configuration.
func Default() Config {
	lc := layout.DefaultConfig()
	tun := viewport.DefaultTuning()
	return Config{
		Layout: Layout{
			NodeHeight:      lc.NodeHeight,
			NodePadding:     lc.NodePadding,
			CategoryPadding: lc.CategoryPadding,
			CategoryColumns: lc.CategoryColumns,
			CategoryOrder:   lc.CategoryOrder,
		},
		Viewport: Viewport{
			MinScale:           tun.MinScale,
			MaxScale:           tun.MaxScale,
			WheelFactor:        tun.WheelFactor,
			WheelDuration:      Duration(tun.WheelDuration),
			PanStep:            tun.PanStep,
			PanDuration:        Duration(tun.PanDuration),
			CenterDuration:     Duration(tun.CenterDuration),
			FocusScale:         tun.FocusScale,
			FocusDuration:      Duration(tun.FocusDuration),
			FitMargin:          tun.FitMargin,
			ClickThreshold:     tun.ClickThreshold,
			VelocitySmoothing:  tun.VelocitySmoothing,
			MomentumThreshold:  tun.MomentumThreshold,
			MomentumMultiplier: tun.MomentumMultiplier,
			MomentumDuration:   Duration(tun.MomentumDuration),
			CullPadding:        tun.CullPadding,
			NavThreshold:       tun.NavThreshold,
			NavPerpWeight:      tun.NavPerpWeight,
			OpacityNormal:      tun.OpacityNormal,
			OpacityHighlight:   tun.OpacityHighlight,
			OpacityDimmed:      tun.OpacityDimmed,
			OpacityRate:        tun.OpacityRate,
			OpacityEpsilon:     tun.OpacityEpsilon,
			FadeInDuration:     Duration(tun.FadeInDuration),
		},
	}
}

// Load reads a TOML file over the defaults. Unknown keys are rejected so
// typos surface immediately.
func Load(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("loading config %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return cfg, fmt.Errorf("unknown config key %q in %s", undecoded[0], path)
	}
	return cfg, nil
}

// LayoutConfig converts to the layout engine's config type.
func (c Config) LayoutConfig() layout.Config {
	return layout.Config{
		NodeHeight:      c.Layout.NodeHeight,
		NodePadding:     c.Layout.NodePadding,
		CategoryPadding: c.Layout.CategoryPadding,
		CategoryColumns: c.Layout.CategoryColumns,
		CategoryOrder:   c.Layout.CategoryOrder,
	}
}

// Tuning converts to the viewport engine's tuning type.
func (c Config) Tuning() viewport.Tuning {
	v := c.Viewport
	return viewport.Tuning{
		MinScale:           v.MinScale,
		MaxScale:           v.MaxScale,
		WheelFactor:        v.WheelFactor,
		WheelDuration:      time.Duration(v.WheelDuration),
		PanStep:            v.PanStep,
		PanDuration:        time.Duration(v.PanDuration),
		CenterDuration:     time.Duration(v.CenterDuration),
		FocusScale:         v.FocusScale,
		FocusDuration:      time.Duration(v.FocusDuration),
		FitMargin:          v.FitMargin,
		ClickThreshold:     v.ClickThreshold,
		VelocitySmoothing:  v.VelocitySmoothing,
		MomentumThreshold:  v.MomentumThreshold,
		MomentumMultiplier: v.MomentumMultiplier,
		MomentumDuration:   time.Duration(v.MomentumDuration),
		CullPadding:        v.CullPadding,
		NavThreshold:       v.NavThreshold,
		NavPerpWeight:      v.NavPerpWeight,
		OpacityNormal:      v.OpacityNormal,
		OpacityHighlight:   v.OpacityHighlight,
		OpacityDimmed:      v.OpacityDimmed,
		OpacityRate:        v.OpacityRate,
		OpacityEpsilon:     v.OpacityEpsilon,
		FadeInDuration:     time.Duration(v.FadeInDuration),
	}
}
