package hexcolor

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected RGB
	}{
		{
			name:     "black",
			input:    "#000000",
			expected: RGB{R: 0, G: 0, B: 0},
		},
		{
			name:     "white",
			input:    "#ffffff",
			expected: RGB{R: 255, G: 255, B: 255},
		},
		{
			name:     "uppercase",
			input:    "#7AA2F7",
			expected: RGB{R: 122, G: 162, B: 247},
		},
		{
			name:     "alpha suffix is ignored",
			input:    "#1a1b2680",
			expected: RGB{R: 26, G: 27, B: 38},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%s) returned error: %v", tt.input, err)
			}
			if result != tt.expected {
				t.Errorf("Parse(%s) = %v, expected %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestParseRejectsMalformed(t *testing.T) {
	for _, input := range []string{"", "notahex", "#ff00", "ffffff", "#fffffff", "#gggggg", "#ffffff0"} {
		t.Run(input, func(t *testing.T) {
			if _, err := Parse(input); !errors.Is(err, ErrInvalidColorFormat) {
				t.Errorf("Parse(%q) error = %v, expected ErrInvalidColorFormat", input, err)
			}
		})
	}
}

func TestSerialize(t *testing.T) {
	tests := []struct {
		name     string
		r, g, b  float64
		expected string
	}{
		{name: "black", expected: "#000000"},
		{name: "white", r: 255, g: 255, b: 255, expected: "#ffffff"},
		{name: "rounds to nearest", r: 127.5, g: 127.4, b: 0.6, expected: "#807f01"},
		{name: "clamping above 255", r: 300, g: 128, b: 128, expected: "#ff8080"},
		{name: "clamping below 0", r: -20, g: 128, b: 128, expected: "#008080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := Serialize(tt.r, tt.g, tt.b); result != tt.expected {
				t.Errorf("Serialize(%v, %v, %v) = %s, expected %s", tt.r, tt.g, tt.b, result, tt.expected)
			}
		})
	}
}

func TestIsValid(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"#1a1b26", true},
		{"#1a1b2680", true},
		{"rgba(26, 27, 38, 0.5)", true},
		{"rgba(0,0,0,1)", true},
		{"rgba(300, 0, 0, 0.5)", false},
		{"rgba(0, 0, 0, 1.5)", false},
		{"transparent", false},
		{"#fff", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := IsValid(tt.input); got != tt.valid {
				t.Errorf("IsValid(%q) = %t, expected %t", tt.input, got, tt.valid)
			}
		})
	}
}

func TestParseAlpha(t *testing.T) {
	tests := []struct {
		input string
		rgb   RGB
		alpha float64
	}{
		{"#ff0000", RGB{R: 255}, 1},
		{"#ff000080", RGB{R: 255}, 128.0 / 255.0},
		{"rgba(0, 255, 0, 0.25)", RGB{G: 255}, 0.25},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			rgb, alpha, err := ParseAlpha(tt.input)
			if err != nil {
				t.Fatalf("ParseAlpha(%s) returned error: %v", tt.input, err)
			}
			if rgb != tt.rgb || !floatEqual(alpha, tt.alpha) {
				t.Errorf("ParseAlpha(%s) = %v, %f, expected %v, %f", tt.input, rgb, alpha, tt.rgb, tt.alpha)
			}
		})
	}
}

func TestMixEndpoints(t *testing.T) {
	pairs := [][2]string{
		{"#000000", "#ffffff"},
		{"#7aa2f7", "#1a1b26"},
		{"#f7768e", "#9ece6a"},
	}

	for _, p := range pairs {
		t.Run(p[0]+"-"+p[1], func(t *testing.T) {
			if got, _ := Mix(p[0], p[1], 0); got != p[0] {
				t.Errorf("Mix(%s, %s, 0) = %s, expected %s", p[0], p[1], got, p[0])
			}
			if got, _ := Mix(p[0], p[1], 1); got != p[1] {
				t.Errorf("Mix(%s, %s, 1) = %s, expected %s", p[0], p[1], got, p[1])
			}
		})
	}
}

func TestMixClampsRatio(t *testing.T) {
	a, b := "#7aa2f7", "#1a1b26"
	for _, r := range []float64{-1, -0.5, -0.01, 0, 0.25, 0.5, 0.75, 1, 1.01, 1.5, 2} {
		t.Run(fmt.Sprintf("%g", r), func(t *testing.T) {
			got, err := Mix(a, b, r)
			if err != nil {
				t.Fatalf("Mix returned error: %v", err)
			}
			want, _ := Mix(a, b, math.Max(0, math.Min(1, r)))
			if got != want {
				t.Errorf("Mix(%s, %s, %g) = %s, expected %s", a, b, r, got, want)
			}
		})
	}
}

func TestMixMidpoint(t *testing.T) {
	got, err := Mix("#000000", "#ffffff", 0.5)
	if err != nil {
		t.Fatal(err)
	}
	if got != "#808080" {
		t.Errorf("Mix(black, white, 0.5) = %s, expected #808080", got)
	}
}

func TestWithAlpha(t *testing.T) {
	for _, c := range []string{"#000000", "#7aa2f7", "#c0caf5"} {
		for i := 0; i <= 20; i++ {
			a := float64(i) / 20
			got, err := WithAlpha(c, a)
			if err != nil {
				t.Fatalf("WithAlpha(%s, %f) returned error: %v", c, a, err)
			}
			if len(got) != 9 {
				t.Fatalf("WithAlpha(%s, %f) = %s, expected 8 hex digits", c, a, got)
			}
			if got[:7] != c {
				t.Errorf("WithAlpha(%s, %f) = %s, color digits changed", c, a, got)
			}
			if want := fmt.Sprintf("%02x", int(math.Round(a*255))); got[7:] != want {
				t.Errorf("WithAlpha(%s, %f) alpha = %s, expected %s", c, a, got[7:], want)
			}
		}
	}
}

func TestWithAlphaClampsAndReplaces(t *testing.T) {
	tests := []struct {
		color    string
		alpha    float64
		expected string
	}{
		{"#7aa2f7", 1.5, "#7aa2f7ff"},
		{"#7aa2f7", -1, "#7aa2f700"},
		{"#7aa2f780", 0.2, "#7aa2f733"},
	}

	for _, tt := range tests {
		got, err := WithAlpha(tt.color, tt.alpha)
		if err != nil {
			t.Fatalf("WithAlpha(%s, %f) returned error: %v", tt.color, tt.alpha, err)
		}
		if got != tt.expected {
			t.Errorf("WithAlpha(%s, %f) = %s, expected %s", tt.color, tt.alpha, got, tt.expected)
		}
	}
}

func TestWithAlphaHex(t *testing.T) {
	got, err := WithAlphaHex("#7aa2f7", "4D")
	if err != nil {
		t.Fatal(err)
	}
	if got != "#7aa2f74d" {
		t.Errorf("WithAlphaHex = %s, expected #7aa2f74d", got)
	}
	if _, err := WithAlphaHex("#7aa2f7", "x1"); !errors.Is(err, ErrInvalidColorFormat) {
		t.Errorf("WithAlphaHex with bad alpha error = %v", err)
	}
}

func TestInvalidInputRejected(t *testing.T) {
	cases := map[string]func() error{
		"mix first":           func() error { _, err := Mix("notahex", "#ffffff", 0.5); return err },
		"mix second":          func() error { _, err := Mix("#ffffff", "#fff", 0.5); return err },
		"mix nan":             func() error { _, err := Mix("#ffffff", "#000000", math.NaN()); return err },
		"with alpha short":    func() error { _, err := WithAlpha("#ff00", 0.5); return err },
		"with alpha nan":      func() error { _, err := WithAlpha("#ff0000", math.NaN()); return err },
		"lighten":             func() error { _, err := Lighten("red", 0.5); return err },
		"darken toward":       func() error { _, err := DarkenToward("#000000", "black", 0.5); return err },
		"contrast":            func() error { _, err := ContrastRatio("#000", "#ffffff"); return err },
		"composite":           func() error { _, err := Composite("#00000080", "inherit"); return err },
		"ensure contrast bad": func() error { _, err := EnsureContrast("#12", "#ffffff", 4.5); return err },
	}

	for name, fn := range cases {
		t.Run(name, func(t *testing.T) {
			if err := fn(); !errors.Is(err, ErrInvalidColorFormat) {
				t.Errorf("expected ErrInvalidColorFormat, got %v", err)
			}
		})
	}
}

func TestLightenDarken(t *testing.T) {
	light, _ := Lighten("#000000", 1)
	dark, _ := Darken("#ffffff", 1)
	if light != White || dark != Black {
		t.Errorf("Lighten/Darken extremes = %s, %s", light, dark)
	}
	toward, _ := LightenToward("#000000", "#ff0000", 0.5)
	if toward != "#800000" {
		t.Errorf("LightenToward = %s, expected #800000", toward)
	}
}

func TestComposite(t *testing.T) {
	got, err := Composite("#ffffff80", "#000000")
	if err != nil {
		t.Fatal(err)
	}
	if got != "#808080" {
		t.Errorf("Composite = %s, expected #808080", got)
	}
	got, _ = Composite("rgba(255, 0, 0, 1)", "#000000")
	if got != "#ff0000" {
		t.Errorf("Composite opaque rgba = %s, expected #ff0000", got)
	}
}

func TestRoundTripConversion(t *testing.T) {
	testColors := []string{"#000000", "#ffffff", "#ff0000", "#00ff00", "#0000ff", "#7aa2f7", "#808080"}

	for _, hex := range testColors {
		t.Run(hex, func(t *testing.T) {
			rgb := MustParse(hex)
			if result := rgb.Hex(); result != hex {
				t.Errorf("Round trip %s -> RGB -> %s failed", hex, result)
			}
		})
	}
}

func TestMustParsePanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("MustParse did not panic on malformed input")
		} else if !strings.Contains(fmt.Sprint(r), "invalid color format") {
			t.Errorf("unexpected panic value %v", r)
		}
	}()
	MustParse("#zzzzzz")
}

func floatEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
