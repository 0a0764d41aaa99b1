package palette

import (
	"errors"
	"fmt"
	"math"

	"github.com/tokyo-night-lod/tnl/internal/hexcolor"
)

var ErrInvalidModification = errors.New("invalid modification")

const (
	warmTarget = "#ff9e64"
	coolTarget = "#3d7eff"

	// Largest blend applied at |Warmth| = 1 and at Contrast = 1.
	maxWarmth   = 0.15
	maxContrast = 0.5
)

// Modification describes an HSL-space adjustment applied to every base color
// before token generation. The zero value leaves a palette unchanged.
type Modification struct {
	// HueShift rotates hue, in degrees (-360..360).
	HueShift float64 `mapstructure:"hue_shift"`
	// Saturation scales saturation by 1+Saturation (-1..1).
	Saturation float64 `mapstructure:"saturation"`
	// Lightness is added to HSL lightness (-1..1).
	Lightness float64 `mapstructure:"lightness"`
	// Contrast pushes surfaces and text apart (0..1).
	Contrast float64 `mapstructure:"contrast"`
	// Warmth blends toward orange when positive and blue when negative (-1..1).
	Warmth float64 `mapstructure:"warmth"`
}

func (m Modification) IsZero() bool {
	return m == Modification{}
}

func (m Modification) Validate() error {
	checks := []struct {
		name     string
		v        float64
		min, max float64
	}{
		{"hue_shift", m.HueShift, -360, 360},
		{"saturation", m.Saturation, -1, 1},
		{"lightness", m.Lightness, -1, 1},
		{"contrast", m.Contrast, 0, 1},
		{"warmth", m.Warmth, -1, 1},
	}
	for _, c := range checks {
		if math.IsNaN(c.v) || c.v < c.min || c.v > c.max {
			return fmt.Errorf("%s = %v (want %v..%v): %w", c.name, c.v, c.min, c.max, ErrInvalidModification)
		}
	}
	return nil
}

// Apply returns a modified copy of b.
func (m Modification) Apply(b Base) (Base, error) {
	if err := m.Validate(); err != nil {
		return Base{}, err
	}
	if m.IsZero() {
		return b, nil
	}
	light, err := hexcolor.IsLight(b.Bg)
	if err != nil {
		return Base{}, err
	}

	out := b
	for _, f := range out.fields() {
		v, err := m.applyOne(*f.ptr, f.role, light)
		if err != nil {
			return Base{}, fmt.Errorf("modify %s: %w", f.name, err)
		}
		*f.ptr = v
	}
	return out, nil
}

func (m Modification) applyOne(color string, role colorRole, light bool) (string, error) {
	hsl, err := hexcolor.ToHSL(color)
	if err != nil {
		return "", err
	}
	hsl.H += m.HueShift
	hsl.S *= 1 + m.Saturation
	hsl.L += m.Lightness
	c := hsl.Hex()

	if m.Contrast > 0 && role != roleAccent {
		amount := m.Contrast * maxContrast
		// Surfaces move toward the background extreme, text away from it.
		toward := hexcolor.Black
		if light != (role == roleText) {
			toward = hexcolor.White
		}
		if c, err = hexcolor.Mix(c, toward, amount); err != nil {
			return "", err
		}
	}

	switch {
	case m.Warmth > 0:
		c, err = hexcolor.Mix(c, warmTarget, m.Warmth*maxWarmth)
	case m.Warmth < 0:
		c, err = hexcolor.Mix(c, coolTarget, -m.Warmth*maxWarmth)
	}
	return c, err
}
