package hexcolor

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// HSL uses degrees for hue and [0,1] for saturation and lightness.
type HSL struct {
	H, S, L float64
}

func ToHSL(hex string) (HSL, error) {
	c, err := toColorful(hex)
	if err != nil {
		return HSL{}, fmt.Errorf("to hsl: %w", err)
	}
	h, s, l := c.Hsl()
	return HSL{H: h, S: s, L: l}, nil
}

// Hex normalizes the hue, clamps saturation and lightness and serializes.
func (c HSL) Hex() string {
	h := math.Mod(c.H, 360)
	if h < 0 {
		h += 360
	}
	return fromColorful(colorful.Hsl(h, clamp01(c.S), clamp01(c.L)))
}

// RotateHue shifts the hue of color by degrees.
func RotateHue(color string, degrees float64) (string, error) {
	c, err := ToHSL(color)
	if err != nil {
		return "", err
	}
	c.H += degrees
	return c.Hex(), nil
}

// Saturate multiplies the saturation of color by factor.
func Saturate(color string, factor float64) (string, error) {
	c, err := ToHSL(color)
	if err != nil {
		return "", err
	}
	c.S *= factor
	return c.Hex(), nil
}

// ShiftLightness adds offset to the lightness of color.
func ShiftLightness(color string, offset float64) (string, error) {
	c, err := ToHSL(color)
	if err != nil {
		return "", err
	}
	c.L += offset
	return c.Hex(), nil
}
