package hexcolor

import (
	"math"
	"testing"
)

func TestLuminance(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected float64
	}{
		{
			name:     "black",
			input:    "#000000",
			expected: 0.0,
		},
		{
			name:     "white",
			input:    "#ffffff",
			expected: 1.0,
		},
		{
			name:     "red",
			input:    "#ff0000",
			expected: 0.2126,
		},
		{
			name:     "green",
			input:    "#00ff00",
			expected: 0.7152,
		},
		{
			name:     "blue",
			input:    "#0000ff",
			expected: 0.0722,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Luminance(tt.input)
			if err != nil {
				t.Fatal(err)
			}
			if !floatEqual(result, tt.expected) {
				t.Errorf("Luminance(%s) = %f, expected %f", tt.input, result, tt.expected)
			}
		})
	}
}

func TestContrastRatio(t *testing.T) {
	tests := []struct {
		name     string
		fg       string
		bg       string
		expected float64
	}{
		{
			name:     "black on white",
			fg:       "#000000",
			bg:       "#ffffff",
			expected: 21.0,
		},
		{
			name:     "white on black",
			fg:       "#ffffff",
			bg:       "#000000",
			expected: 21.0,
		},
		{
			name:     "same color",
			fg:       "#808080",
			bg:       "#808080",
			expected: 1.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ContrastRatio(tt.fg, tt.bg)
			if err != nil {
				t.Fatal(err)
			}
			if math.Abs(result-tt.expected) > 0.01 {
				t.Errorf("ContrastRatio(%s, %s) = %f, expected %f", tt.fg, tt.bg, result, tt.expected)
			}
		})
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		ratio    float64
		expected Level
	}{
		{1.0, LevelPoor},
		{2.99, LevelPoor},
		{3.0, LevelAcceptable},
		{4.49, LevelAcceptable},
		{4.5, LevelAA},
		{6.99, LevelAA},
		{7.0, LevelAAA},
		{21.0, LevelAAA},
	}

	for _, tt := range tests {
		if got := Classify(tt.ratio); got != tt.expected {
			t.Errorf("Classify(%f) = %s, expected %s", tt.ratio, got, tt.expected)
		}
	}
}

func TestEnsureContrast(t *testing.T) {
	tests := []struct {
		name     string
		color    string
		bg       string
		minRatio float64
	}{
		{
			name:     "already sufficient contrast dark background",
			color:    "#ffffff",
			bg:       "#000000",
			minRatio: 4.5,
		},
		{
			name:     "already sufficient contrast light background",
			color:    "#000000",
			bg:       "#ffffff",
			minRatio: 4.5,
		},
		{
			name:     "needs adjustment dark background",
			color:    "#404040",
			bg:       "#1a1a1a",
			minRatio: 4.5,
		},
		{
			name:     "needs adjustment light background",
			color:    "#c0c0c0",
			bg:       "#f8f8f8",
			minRatio: 4.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := EnsureContrast(tt.color, tt.bg, tt.minRatio)
			if err != nil {
				t.Fatal(err)
			}
			actual, _ := ContrastRatio(result, tt.bg)
			if actual < tt.minRatio {
				t.Errorf("EnsureContrast(%s, %s, %f) = %s with ratio %f, expected ratio >= %f",
					tt.color, tt.bg, tt.minRatio, result, actual, tt.minRatio)
			}
		})
	}
}

func TestDeltaE(t *testing.T) {
	same, err := DeltaE("#7aa2f7", "#7aa2f7")
	if err != nil {
		t.Fatal(err)
	}
	if same != 0 {
		t.Errorf("DeltaE of identical colors = %f, expected 0", same)
	}
	far, _ := DeltaE("#000000", "#ffffff")
	if far < 99 || far > 101 {
		t.Errorf("DeltaE(black, white) = %f, expected ~100", far)
	}
}

func TestHSLOperations(t *testing.T) {
	rotated, err := RotateHue("#ff0000", 120)
	if err != nil {
		t.Fatal(err)
	}
	if rotated != "#00ff00" {
		t.Errorf("RotateHue(red, 120) = %s, expected #00ff00", rotated)
	}

	gray, _ := Saturate("#ff0000", 0)
	if gray != "#808080" {
		t.Errorf("Saturate(red, 0) = %s, expected #808080", gray)
	}

	white, _ := ShiftLightness("#7aa2f7", 1)
	if white != White {
		t.Errorf("ShiftLightness(+1) = %s, expected white", white)
	}

	back, _ := RotateHue("#7aa2f7", 360)
	if back != "#7aa2f7" {
		t.Errorf("RotateHue(360) = %s, expected unchanged", back)
	}
}
