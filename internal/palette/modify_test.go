package palette

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tokyo-night-lod/tnl/internal/hexcolor"
)

func TestZeroModificationIsIdentity(t *testing.T) {
	b := nightBase()
	got, err := Modification{}.Apply(b)
	require.NoError(t, err)
	if diff := cmp.Diff(b, got); diff != "" {
		t.Errorf("zero modification changed the base (-want +got):\n%s", diff)
	}
}

func TestModificationValidate(t *testing.T) {
	tests := []struct {
		name string
		mod  Modification
	}{
		{"hue too large", Modification{HueShift: 400}},
		{"saturation below range", Modification{Saturation: -1.5}},
		{"lightness above range", Modification{Lightness: 1.2}},
		{"negative contrast", Modification{Contrast: -0.1}},
		{"warmth above range", Modification{Warmth: 2}},
		{"nan", Modification{Lightness: math.NaN()}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.mod.Validate(), ErrInvalidModification)
			_, err := tt.mod.Apply(nightBase())
			assert.ErrorIs(t, err, ErrInvalidModification)
		})
	}
}

func TestModificationHueShift(t *testing.T) {
	b := nightBase()
	got, err := Modification{HueShift: 180}.Apply(b)
	require.NoError(t, err)

	want, _ := hexcolor.RotateHue(b.Blue, 180)
	assert.Equal(t, want, got.Blue)
	assert.NotEqual(t, b.Blue, got.Blue)
}

func TestModificationDesaturate(t *testing.T) {
	got, err := Modification{Saturation: -1}.Apply(nightBase())
	require.NoError(t, err)

	for name, c := range got.Colors() {
		hsl, err := hexcolor.ToHSL(c)
		require.NoError(t, err)
		assert.InDeltaf(t, 0, hsl.S, 0.02, "%s = %s still saturated", name, c)
	}
}

func TestModificationContrastSeparatesSurfacesAndText(t *testing.T) {
	b := nightBase()
	got, err := Modification{Contrast: 1}.Apply(b)
	require.NoError(t, err)

	before, _ := hexcolor.ContrastRatio(b.Fg, b.Bg)
	after, _ := hexcolor.ContrastRatio(got.Fg, got.Bg)
	assert.Greater(t, after, before)
	assert.Equal(t, b.Red, got.Red, "accents are not affected by contrast")

	lb := lightBase()
	lgot, err := Modification{Contrast: 1}.Apply(lb)
	require.NoError(t, err)
	lbefore, _ := hexcolor.ContrastRatio(lb.Fg, lb.Bg)
	lafter, _ := hexcolor.ContrastRatio(lgot.Fg, lgot.Bg)
	assert.Greater(t, lafter, lbefore)
}

func TestModificationWarmth(t *testing.T) {
	b := nightBase()
	warm, err := Modification{Warmth: 1}.Apply(b)
	require.NoError(t, err)
	cool, err := Modification{Warmth: -1}.Apply(b)
	require.NoError(t, err)

	w := hexcolor.MustParse(warm.Bg)
	c := hexcolor.MustParse(cool.Bg)
	assert.Greater(t, w.R, c.R)
	assert.Greater(t, c.B, w.B)
}

func TestCustomVariant(t *testing.T) {
	night, err := Adapt(VariantNight)
	require.NoError(t, err)

	same, err := Adapt(VariantCustom)
	require.NoError(t, err)
	assert.Equal(t, night.Tokens.Map(), same.Tokens.Map())
	assert.Equal(t, "Tokyo Night Lod Custom", same.Name)

	shifted, err := Adapt(VariantCustom,
		WithModification(Modification{HueShift: 30, Lightness: 0.05}),
		WithName("Sunset"),
	)
	require.NoError(t, err)
	assert.Equal(t, "Sunset", shifted.Name)
	assert.NotEqual(t, night.Accent.Primary, shifted.Accent.Primary)

	_, err = Adapt(VariantCustom, WithModification(Modification{Saturation: 3}))
	assert.ErrorIs(t, err, ErrInvalidModification)
}

func TestCustomFromPastelBase(t *testing.T) {
	pastel, err := Adapt(VariantPastel)
	require.NoError(t, err)
	custom, err := Adapt(VariantCustom, WithCustomBase(VariantPastel))
	require.NoError(t, err)

	assert.Equal(t, pastel.Base, custom.Base)
	assert.Equal(t, TypePastel, custom.Type)
}

func TestPastelIsSofterThanNight(t *testing.T) {
	night, err := Adapt(VariantNight)
	require.NoError(t, err)
	pastel, err := Adapt(VariantPastel)
	require.NoError(t, err)

	n, _ := hexcolor.ToHSL(night.Accent.Primary)
	p, _ := hexcolor.ToHSL(pastel.Accent.Primary)
	assert.Less(t, p.S, n.S)
}
