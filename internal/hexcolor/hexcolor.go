// Package hexcolor implements the color algebra used to derive theme colors:
// parsing and serializing hex strings, linear blending, alpha, luminance and
// contrast. Every function is pure. Malformed input is reported with
// ErrInvalidColorFormat and never coerced.
package hexcolor

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var ErrInvalidColorFormat = errors.New("invalid color format")

var (
	hexPattern  = regexp.MustCompile(`^#([0-9a-fA-F]{6})([0-9a-fA-F]{2})?$`)
	rgbaPattern = regexp.MustCompile(`^rgba\(\s*(\d{1,3})\s*,\s*(\d{1,3})\s*,\s*(\d{1,3})\s*,\s*([0-9]*\.?[0-9]+)\s*\)$`)
)

const (
	White = "#ffffff"
	Black = "#000000"
)

// RGB holds 8-bit channels.
type RGB struct {
	R, G, B int
}

func (c RGB) Hex() string {
	return Serialize(float64(c.R), float64(c.G), float64(c.B))
}

// IsHex reports whether s is #rrggbb or #rrggbbaa.
func IsHex(s string) bool {
	return hexPattern.MatchString(s)
}

// IsValid reports whether s belongs to the accepted color grammar:
// #rrggbb, #rrggbbaa or rgba(r, g, b, a).
func IsValid(s string) bool {
	if hexPattern.MatchString(s) {
		return true
	}
	_, _, err := parseRGBA(s)
	return err == nil
}

func Validate(s string) error {
	if !IsValid(s) {
		return fmt.Errorf("%q: %w", s, ErrInvalidColorFormat)
	}
	return nil
}

// Parse decodes the color channels of a #rrggbb or #rrggbbaa string. The alpha
// byte, if any, is ignored.
func Parse(hex string) (RGB, error) {
	m := hexPattern.FindStringSubmatch(hex)
	if m == nil {
		return RGB{}, fmt.Errorf("%q: %w", hex, ErrInvalidColorFormat)
	}
	v, err := strconv.ParseUint(m[1], 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("%q: %w", hex, ErrInvalidColorFormat)
	}
	return RGB{R: int(v >> 16 & 0xff), G: int(v >> 8 & 0xff), B: int(v & 0xff)}, nil
}

// MustParse is Parse for compile-time literals.
func MustParse(hex string) RGB {
	c, err := Parse(hex)
	if err != nil {
		panic(err)
	}
	return c
}

// ParseAlpha decodes any accepted color string into channels and an alpha in
// [0,1]. Six-digit colors are opaque.
func ParseAlpha(s string) (RGB, float64, error) {
	if m := hexPattern.FindStringSubmatch(s); m != nil {
		c, err := Parse(s)
		if err != nil {
			return RGB{}, 0, err
		}
		if m[2] == "" {
			return c, 1, nil
		}
		a, err := strconv.ParseUint(m[2], 16, 8)
		if err != nil {
			return RGB{}, 0, fmt.Errorf("%q: %w", s, ErrInvalidColorFormat)
		}
		return c, float64(a) / 255.0, nil
	}
	return parseRGBA(s)
}

func parseRGBA(s string) (RGB, float64, error) {
	m := rgbaPattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return RGB{}, 0, fmt.Errorf("%q: %w", s, ErrInvalidColorFormat)
	}
	var ch [3]int
	for i := 0; i < 3; i++ {
		v, err := strconv.Atoi(m[i+1])
		if err != nil || v > 255 {
			return RGB{}, 0, fmt.Errorf("%q: channel out of range: %w", s, ErrInvalidColorFormat)
		}
		ch[i] = v
	}
	a, err := strconv.ParseFloat(m[4], 64)
	if err != nil || a > 1 {
		return RGB{}, 0, fmt.Errorf("%q: alpha out of range: %w", s, ErrInvalidColorFormat)
	}
	return RGB{R: ch[0], G: ch[1], B: ch[2]}, a, nil
}

// Serialize clamps each channel to [0,255], rounds it and formats #rrggbb.
func Serialize(r, g, b float64) string {
	return fmt.Sprintf("#%02x%02x%02x", channel(r), channel(g), channel(b))
}

func channel(v float64) int {
	if math.IsNaN(v) {
		return 0
	}
	return int(math.Round(math.Max(0, math.Min(255, v))))
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

// Mix interpolates linearly per channel: a*(1-ratio) + b*ratio. The ratio is
// clamped to [0,1].
func Mix(a, b string, ratio float64) (string, error) {
	ca, err := Parse(a)
	if err != nil {
		return "", fmt.Errorf("mix: %w", err)
	}
	cb, err := Parse(b)
	if err != nil {
		return "", fmt.Errorf("mix: %w", err)
	}
	if math.IsNaN(ratio) {
		return "", fmt.Errorf("mix: ratio is not a number: %w", ErrInvalidColorFormat)
	}
	r := clamp01(ratio)
	return Serialize(
		float64(ca.R)*(1-r)+float64(cb.R)*r,
		float64(ca.G)*(1-r)+float64(cb.G)*r,
		float64(ca.B)*(1-r)+float64(cb.B)*r,
	), nil
}

// WithAlpha replaces any alpha byte of color with round(alpha*255). Alpha is
// clamped to [0,1].
func WithAlpha(color string, alpha float64) (string, error) {
	c, err := Parse(color)
	if err != nil {
		return "", fmt.Errorf("with alpha: %w", err)
	}
	if math.IsNaN(alpha) || math.IsInf(alpha, 0) {
		return "", fmt.Errorf("with alpha: alpha %v is not a number: %w", alpha, ErrInvalidColorFormat)
	}
	return fmt.Sprintf("%s%02x", c.Hex(), int(math.Round(clamp01(alpha)*255))), nil
}

// WithAlphaHex appends a literal two-digit alpha byte.
func WithAlphaHex(color, alpha string) (string, error) {
	c, err := Parse(color)
	if err != nil {
		return "", fmt.Errorf("with alpha: %w", err)
	}
	if len(alpha) != 2 {
		return "", fmt.Errorf("with alpha: %q: %w", alpha, ErrInvalidColorFormat)
	}
	if _, err := strconv.ParseUint(alpha, 16, 8); err != nil {
		return "", fmt.Errorf("with alpha: %q: %w", alpha, ErrInvalidColorFormat)
	}
	return c.Hex() + strings.ToLower(alpha), nil
}

// Lighten moves color toward white.
func Lighten(color string, amount float64) (string, error) {
	return LightenToward(color, White, amount)
}

// Darken moves color toward black.
func Darken(color string, amount float64) (string, error) {
	return DarkenToward(color, Black, amount)
}

// LightenToward moves base toward a lighter target color.
func LightenToward(base, target string, amount float64) (string, error) {
	return Mix(base, target, amount)
}

// DarkenToward moves base toward a darker target color.
func DarkenToward(base, target string, amount float64) (string, error) {
	return Mix(base, target, amount)
}

// Composite flattens a translucent color over an opaque background.
func Composite(fg, bg string) (string, error) {
	c, a, err := ParseAlpha(fg)
	if err != nil {
		return "", fmt.Errorf("composite: %w", err)
	}
	base, err := Parse(bg)
	if err != nil {
		return "", fmt.Errorf("composite: %w", err)
	}
	return Serialize(
		float64(c.R)*a+float64(base.R)*(1-a),
		float64(c.G)*a+float64(base.G)*(1-a),
		float64(c.B)*a+float64(base.B)*(1-a),
	), nil
}
