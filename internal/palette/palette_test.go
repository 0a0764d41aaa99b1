package palette

import (
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tokyo-night-lod/tnl/internal/hexcolor"
)

func TestAdaptBuiltinVariants(t *testing.T) {
	for _, v := range Variants() {
		t.Run(string(v), func(t *testing.T) {
			p, err := Adapt(v)
			require.NoError(t, err)

			assert.Equal(t, v, p.Variant)
			assert.Equal(t, v.Type(), p.Type)
			assert.Equal(t, v.DisplayName(), p.Name)
			assert.Len(t, p.Adaptive, len(Components()))
			for _, c := range Components() {
				assert.Truef(t, hexcolor.IsHex(p.Background(c)), "%s background %q", c, p.Background(c))
			}
			for i, c := range p.Terminal {
				assert.Truef(t, hexcolor.IsHex(c), "terminal color %d = %q", i, c)
			}
			assert.Equal(t, p.Base.Bg, p.Bg.Base)
			assert.Equal(t, p.Bg.Base, p.Background(ComponentEditor))
		})
	}
}

func TestAdaptiveTableIsTotal(t *testing.T) {
	require.NoError(t, CheckAdaptiveTable(DefaultRegistry()))

	for _, typ := range ThemeTypes {
		for _, c := range Components() {
			_, ok := ShadeFor(typ, c)
			assert.Truef(t, ok, "%s/%s has no shade", typ, c)
		}
	}
}

func TestAdaptiveTableCheckReportsGaps(t *testing.T) {
	g := NewRegistry()
	g.Register("bg.base", base(func(b Base) string { return b.Bg }))

	err := CheckAdaptiveTable(g)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingToken)
	assert.Contains(t, err.Error(), `dark/sideBar: token "bg.dark"`)
}

func TestAssembleReportsMissingTokens(t *testing.T) {
	_, err := Assemble(VariantNight, TypeDark, "x", nightBase(), Table{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingToken)
	assert.Contains(t, err.Error(), "syntax.keyword")
}

func TestVariantIndependence(t *testing.T) {
	before, err := Adapt(VariantNight)
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([]*Palette, len(Variants()))
	errs := make([]error, len(Variants()))
	for i, v := range Variants() {
		i, v := i, v
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i], errs[i] = Adapt(v)
		}()
	}
	wg.Wait()
	for _, err := range errs {
		require.NoError(t, err)
	}

	after, err := Adapt(VariantNight)
	require.NoError(t, err)
	if diff := cmp.Diff(before.Tokens.Map(), after.Tokens.Map()); diff != "" {
		t.Errorf("night tokens changed after building other variants (-before +after):\n%s", diff)
	}
	if diff := cmp.Diff(before.Tokens.Map(), results[0].Tokens.Map()); diff != "" {
		t.Errorf("concurrent night build differs (-sequential +concurrent):\n%s", diff)
	}

	light := results[3]
	assert.Equal(t, VariantLight, light.Variant)
	assert.NotEqual(t, before.Bg.Base, light.Bg.Base)
}

func TestIntensityOverrideIsScopedToOnePass(t *testing.T) {
	tuned := DefaultIntensity()
	tuned.Selection.Background = 0.9

	custom, err := Adapt(VariantNight, WithIntensity(tuned))
	require.NoError(t, err)
	plain, err := Adapt(VariantNight)
	require.NoError(t, err)

	assert.Equal(t, "e6", custom.Selection.Background[7:])
	assert.Equal(t, "59", plain.Selection.Background[7:])
	assert.Equal(t, 0.35, DefaultIntensity().Selection.Background)
}

func TestLightVariantStructure(t *testing.T) {
	p, err := Adapt(VariantLight)
	require.NoError(t, err)

	assert.True(t, p.Type.IsLight())
	assert.Equal(t, "#d6d8df", p.Bg.Sunken)
	assert.Equal(t, "#c1c4d4", p.Border.Default)
	assert.Equal(t, hexcolor.White, p.Text.Inverse)

	light, err := hexcolor.IsLight(p.Background(ComponentSideBar))
	require.NoError(t, err)
	assert.True(t, light)
}

func TestSyntaxColorsAreReadable(t *testing.T) {
	for _, v := range Variants() {
		p, err := Adapt(v)
		require.NoError(t, err)

		for _, c := range []string{p.Syntax.Keyword, p.Syntax.String, p.Syntax.Function, p.Syntax.Comment, p.Syntax.Parameter} {
			ratio, err := hexcolor.ContrastRatio(c, p.Bg.Base)
			require.NoError(t, err)
			assert.GreaterOrEqualf(t, ratio, hexcolor.MinContrastLarge, "%s: %s on %s", v, c, p.Bg.Base)
		}
	}
}

func TestParseVariant(t *testing.T) {
	tests := []struct {
		input    string
		expected Variant
		wantErr  bool
	}{
		{"tokyo-night", VariantNight, false},
		{"  Tokyo-Storm ", VariantStorm, false},
		{"custom", VariantCustom, false},
		{"tokyo-noon", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseVariant(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownVariant)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestVariantNames(t *testing.T) {
	assert.Equal(t, "tokyo-night-lod", VariantNight.Slug())
	assert.Equal(t, "Tokyo Night Lod Light", VariantLight.DisplayName())
	assert.Equal(t, TypeLight, VariantLight.Type())
	assert.Equal(t, "tokyo-night-lod-custom", VariantCustom.Slug())
	assert.NotContains(t, Variants(), VariantCustom)
}

func TestAdaptUnknownVariant(t *testing.T) {
	_, err := Adapt(Variant("tokyo-noon"))
	assert.ErrorIs(t, err, ErrUnknownVariant)

	_, err = Adapt(VariantCustom, WithCustomBase("nope"))
	assert.ErrorIs(t, err, ErrUnknownVariant)
}

func TestIntensityValidation(t *testing.T) {
	require.NoError(t, DefaultIntensity().Validate())
	require.NoError(t, LightIntensity().Validate())
	require.NoError(t, ContrastIntensity().Validate())

	i := DefaultIntensity()
	require.NoError(t, i.Set("diff.inserted", 0.3))
	assert.Equal(t, 0.3, i.Diff.Inserted)

	assert.ErrorIs(t, i.Set("diff.unknown", 0.3), ErrInvalidIntensity)
	assert.ErrorIs(t, i.Set("diff.inserted", -0.1), ErrInvalidIntensity)

	i.Text.Muted = 2
	err := i.Validate()
	assert.ErrorIs(t, err, ErrInvalidIntensity)
	assert.Contains(t, err.Error(), "text.muted")
}

func TestIntensityOverrides(t *testing.T) {
	light, err := Adapt(VariantLight)
	require.NoError(t, err)
	got, err := Adapt(VariantLight, WithIntensityOverrides(map[string]float64{"selection.background": 0.6}))
	require.NoError(t, err)

	assert.NotEqual(t, light.Selection.Background, got.Selection.Background)
	assert.Equal(t, light.Bg.Base, got.Bg.Base)
	assert.Equal(t, light.Selection.Inactive, got.Selection.Inactive, "other light intensities are kept")

	_, err = Adapt(VariantNight, WithIntensityOverrides(map[string]float64{"selection.nope": 0.5}))
	assert.ErrorIs(t, err, ErrInvalidIntensity)
	_, err = Adapt(VariantNight, WithIntensityOverrides(map[string]float64{"selection.background": 2}))
	assert.ErrorIs(t, err, ErrInvalidIntensity)
}
