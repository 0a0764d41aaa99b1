package palette

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownVariant = errors.New("unknown variant")

type Variant string

const (
	VariantNight    Variant = "tokyo-night"
	VariantStorm    Variant = "tokyo-storm"
	VariantMoon     Variant = "tokyo-moon"
	VariantLight    Variant = "tokyo-light"
	VariantContrast Variant = "tokyo-contrast"
	VariantPastel   Variant = "tokyo-pastel"
	VariantCustom   Variant = "custom"
)

type variantDef struct {
	typ       ThemeType
	display   string
	slug      string
	base      func() Base
	intensity func() Intensity
	modify    Modification
	pinned    map[string]string
}

var variants = map[Variant]variantDef{
	VariantNight: {
		typ:       TypeDark,
		display:   "Tokyo Night Lod",
		slug:      "tokyo-night-lod",
		base:      nightBase,
		intensity: DefaultIntensity,
	},
	VariantStorm: {
		typ:       TypeStorm,
		display:   "Tokyo Night Lod Storm",
		slug:      "tokyo-night-lod-storm",
		base:      stormBase,
		intensity: DefaultIntensity,
	},
	VariantMoon: {
		typ:       TypeMoon,
		display:   "Tokyo Night Lod Moon",
		slug:      "tokyo-night-lod-moon",
		base:      moonBase,
		intensity: DefaultIntensity,
	},
	VariantLight: {
		typ:       TypeLight,
		display:   "Tokyo Night Lod Light",
		slug:      "tokyo-night-lod-light",
		base:      lightBase,
		intensity: LightIntensity,
		pinned:    lightStructure,
	},
	VariantContrast: {
		typ:       TypeContrast,
		display:   "Tokyo Night Lod High Contrast",
		slug:      "tokyo-night-lod-contrast",
		base:      contrastBase,
		intensity: ContrastIntensity,
	},
	VariantPastel: {
		typ:       TypePastel,
		display:   "Tokyo Night Lod Pastel",
		slug:      "tokyo-night-lod-pastel",
		base:      nightBase,
		intensity: DefaultIntensity,
		modify:    Modification{Saturation: -0.3, Lightness: 0.04},
	},
}

// lightStructure replaces the surface, text and border tokens of the light
// variant with hand-tuned values. Blending dark-theme formulas over a light
// base does not produce usable chrome.
var lightStructure = map[string]string{
	"bg.sunken":               "#d6d8df",
	"bg.deep":                 "#e9e9ed",
	"bg.raised":               "#d8dae2",
	"bg.hover":                "#c8cbd9",
	"bg.active":               "#bcc0d4",
	"bg.float":                "#dcdee5",
	"bg.line":                 "#d4d6e0",
	"bg.shadow":               "#00000026",
	"text.secondary":          "#4c5a8f",
	"text.muted":              "#6172b0",
	"text.subtle":             "#7d87b4",
	"text.faint":              "#9aa0c0",
	"text.gutter":             "#9aa1c3",
	"text.line_number_active": "#5a6294",
	"border.default":          "#c1c4d4",
	"border.subtle":           "#d0d2dc",
	"border.strong":           "#a8aecb",
	"border.separator":        "#c8cad6",
}

// Variants lists the built-in variants in build order. Custom is excluded.
func Variants() []Variant {
	return []Variant{VariantNight, VariantStorm, VariantMoon, VariantLight, VariantContrast, VariantPastel}
}

func ParseVariant(s string) (Variant, error) {
	v := Variant(strings.ToLower(strings.TrimSpace(s)))
	if v == VariantCustom {
		return v, nil
	}
	if _, ok := variants[v]; !ok {
		return "", fmt.Errorf("%q: %w", s, ErrUnknownVariant)
	}
	return v, nil
}

// Type is the theme type of a built-in variant. Custom reports dark; its real
// type comes from the base it is derived from.
func (v Variant) Type() ThemeType {
	if d, ok := variants[v]; ok {
		return d.typ
	}
	return TypeDark
}

func (v Variant) DisplayName() string {
	if d, ok := variants[v]; ok {
		return d.display
	}
	return "Tokyo Night Lod Custom"
}

// Slug is the file name stem of the variant's theme.
func (v Variant) Slug() string {
	if d, ok := variants[v]; ok {
		return d.slug
	}
	return "tokyo-night-lod-custom"
}

func (v Variant) String() string { return string(v) }
