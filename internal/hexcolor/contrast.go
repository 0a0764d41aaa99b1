package hexcolor

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// WCAG 2.x thresholds.
const (
	MinContrastLarge = 3.0
	MinContrastAA    = 4.5
	MinContrastAAA   = 7.0
)

type Level string

const (
	LevelPoor       Level = "poor"
	LevelAcceptable Level = "acceptable"
	LevelAA         Level = "AA"
	LevelAAA        Level = "AAA"
)

// Classify buckets a contrast ratio against the WCAG thresholds.
func Classify(ratio float64) Level {
	switch {
	case ratio >= MinContrastAAA:
		return LevelAAA
	case ratio >= MinContrastAA:
		return LevelAA
	case ratio >= MinContrastLarge:
		return LevelAcceptable
	default:
		return LevelPoor
	}
}

func sRGBToLinear(c float64) float64 {
	if c <= 0.03928 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

func (c RGB) Luminance() float64 {
	return 0.2126*sRGBToLinear(float64(c.R)/255.0) +
		0.7152*sRGBToLinear(float64(c.G)/255.0) +
		0.0722*sRGBToLinear(float64(c.B)/255.0)
}

// Luminance returns the WCAG relative luminance of a hex color.
func Luminance(hex string) (float64, error) {
	c, err := Parse(hex)
	if err != nil {
		return 0, err
	}
	return c.Luminance(), nil
}

func contrastOf(a, b RGB) float64 {
	la, lb := a.Luminance(), b.Luminance()
	lighter := math.Max(la, lb)
	darker := math.Min(la, lb)
	return (lighter + 0.05) / (darker + 0.05)
}

// ContrastRatio returns (L_lighter + 0.05) / (L_darker + 0.05).
func ContrastRatio(hexFg, hexBg string) (float64, error) {
	fg, err := Parse(hexFg)
	if err != nil {
		return 0, fmt.Errorf("contrast: %w", err)
	}
	bg, err := Parse(hexBg)
	if err != nil {
		return 0, fmt.Errorf("contrast: %w", err)
	}
	return contrastOf(fg, bg), nil
}

// IsLight reports whether a background reads as light.
func IsLight(hex string) (bool, error) {
	c, err := Parse(hex)
	if err != nil {
		return false, err
	}
	luma := (0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)) / 255.0
	return luma > 0.5, nil
}

// DeltaE is the CIE76 color difference on the usual 0-100 scale.
func DeltaE(a, b string) (float64, error) {
	ca, err := toColorful(a)
	if err != nil {
		return 0, err
	}
	cb, err := toColorful(b)
	if err != nil {
		return 0, err
	}
	return ca.DistanceCIE76(cb) * 100, nil
}

func toColorful(hex string) (colorful.Color, error) {
	c, err := Parse(hex)
	if err != nil {
		return colorful.Color{}, err
	}
	return colorful.Color{R: float64(c.R) / 255.0, G: float64(c.G) / 255.0, B: float64(c.B) / 255.0}, nil
}

func fromColorful(c colorful.Color) string {
	c = c.Clamped()
	return Serialize(c.R*255, c.G*255, c.B*255)
}

type hsv struct {
	H, S, V float64
}

func rgbToHSV(c RGB) hsv {
	r, g, b := float64(c.R)/255.0, float64(c.G)/255.0, float64(c.B)/255.0
	max := math.Max(math.Max(r, g), b)
	min := math.Min(math.Min(r, g), b)
	delta := max - min

	var h float64
	if delta == 0 {
		h = 0
	} else if max == r {
		h = math.Mod((g-b)/delta, 6.0) / 6.0
	} else if max == g {
		h = ((b-r)/delta + 2.0) / 6.0
	} else {
		h = ((r-g)/delta + 4.0) / 6.0
	}
	if h < 0 {
		h += 1.0
	}

	var s float64
	if max != 0 {
		s = delta / max
	}
	return hsv{H: h, S: s, V: max}
}

func hsvToHex(v hsv) string {
	h := v.H * 6.0
	c := v.V * v.S
	x := c * (1.0 - math.Abs(math.Mod(h, 2.0)-1.0))
	m := v.V - c

	var r, g, b float64
	switch int(h) {
	case 0:
		r, g, b = c, x, 0
	case 1:
		r, g, b = x, c, 0
	case 2:
		r, g, b = 0, c, x
	case 3:
		r, g, b = 0, x, c
	case 4:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	return Serialize((r+m)*255, (g+m)*255, (b+m)*255)
}

// EnsureContrast walks the HSV value of color away from bg until the WCAG
// ratio reaches minRatio. Light backgrounds try darker candidates first. The
// original color is returned when it already passes or no candidate does.
func EnsureContrast(color, bg string, minRatio float64) (string, error) {
	fg, err := Parse(color)
	if err != nil {
		return "", fmt.Errorf("ensure contrast: %w", err)
	}
	back, err := Parse(bg)
	if err != nil {
		return "", fmt.Errorf("ensure contrast: %w", err)
	}
	if contrastOf(fg, back) >= minRatio {
		return fg.Hex(), nil
	}
	lightMode, _ := IsLight(bg)

	base := rgbToHSV(fg)
	for step := 1; step < 50; step++ {
		delta := float64(step) * 0.02
		darker := hsvToHex(hsv{H: base.H, S: base.S, V: math.Max(0, base.V-delta)})
		lighter := hsvToHex(hsv{H: base.H, S: base.S, V: math.Min(1, base.V+delta)})
		candidates := []string{lighter, darker}
		if lightMode {
			candidates = []string{darker, lighter}
		}
		for _, cand := range candidates {
			if contrastOf(MustParse(cand), back) >= minRatio {
				return cand, nil
			}
		}
	}
	return fg.Hex(), nil
}
