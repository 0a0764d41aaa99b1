package config

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tokyo-night-lod/tnl/internal/palette"
)

func writeConfig(t *testing.T, body string) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/cfg/tnl.yaml", []byte(body), 0o644))
	return fs
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(afero.NewMemMapFs(), "")
	require.NoError(t, err)

	assert.Equal(t, "themes", cfg.Output)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.Source)
	assert.True(t, cfg.Validation.SkipInfo)
	assert.False(t, cfg.Validation.Strict)
	if diff := cmp.Diff(palette.Variants(), cfg.SelectedVariants()); diff != "" {
		t.Errorf("variants mismatch (-want +got):\n%s", diff)
	}
	assert.Empty(t, cfg.PaletteOptions(palette.VariantNight))
}

func TestLoad_File(t *testing.T) {
	fs := writeConfig(t, `
output: dist
variants: [tokyo-night, tokyo-light, custom]
validation:
  strict: true
  skip_info: false
intensity:
  selection:
    background: 0.5
custom:
  base: tokyo-moon
  name: Moonrise
  hue_shift: 20
  warmth: 0.5
`)

	cfg, err := Load(fs, "/cfg/tnl.yaml")
	require.NoError(t, err)

	assert.Equal(t, "dist", cfg.Output)
	assert.Equal(t, "/cfg/tnl.yaml", cfg.Source)
	assert.Equal(t, Validation{Strict: true}, cfg.Validation)
	assert.Equal(t, []palette.Variant{palette.VariantNight, palette.VariantLight, palette.VariantCustom}, cfg.SelectedVariants())
	assert.Equal(t, palette.Modification{HueShift: 20, Warmth: 0.5}, cfg.Custom.Modification)
	assert.Len(t, cfg.PaletteOptions(palette.VariantNight), 1)

	p, err := palette.Adapt(palette.VariantCustom, cfg.PaletteOptions(palette.VariantCustom)...)
	require.NoError(t, err)
	assert.Equal(t, "Moonrise", p.Name)
	assert.Equal(t, palette.TypeMoon, p.Type)

	night, err := palette.Adapt(palette.VariantNight)
	require.NoError(t, err)
	overridden, err := palette.Adapt(palette.VariantNight, cfg.PaletteOptions(palette.VariantNight)...)
	require.NoError(t, err)
	assert.NotEqual(t, night.Selection.Background, overridden.Selection.Background)
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("TNL_OUTPUT", "build")
	t.Setenv("TNL_VALIDATION_STRICT", "true")

	cfg, err := Load(afero.NewMemMapFs(), "")
	require.NoError(t, err)
	assert.Equal(t, "build", cfg.Output)
	assert.True(t, cfg.Validation.Strict)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"unknown variant", "variants: [tokyo-dusk]"},
		{"empty output", "output: ''"},
		{"custom base is custom", "custom:\n  base: custom"},
		{"unknown intensity group", "intensity:\n  sparkle:\n    level: 0.5"},
		{"intensity out of range", "intensity:\n  selection:\n    background: 1.5"},
		{"modification out of range", "custom:\n  saturation: 4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body), "/cfg/tnl.yaml")
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(afero.NewMemMapFs(), "/nope/tnl.yaml")
	assert.Error(t, err)
}

func TestLoad_Malformed(t *testing.T) {
	_, err := Load(writeConfig(t, "variants: [unclosed"), "/cfg/tnl.yaml")
	assert.Error(t, err)
}
