// Package config loads build settings from an optional tnl.yaml file and
// TNL_ prefixed environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/viper"

	"github.com/tokyo-night-lod/tnl/internal/log"
	"github.com/tokyo-night-lod/tnl/internal/palette"
)

var ErrInvalidConfig = errors.New("invalid config")

const (
	fileName  = "tnl"
	envPrefix = "TNL"
)

type Validation struct {
	SkipInfo bool `mapstructure:"skip_info"`
	Strict   bool `mapstructure:"strict"`
	Fix      bool `mapstructure:"fix"`
}

// Custom configures the custom variant.
type Custom struct {
	Base         string               `mapstructure:"base"`
	Name         string               `mapstructure:"name"`
	Modification palette.Modification `mapstructure:",squash"`
}

type Config struct {
	LogLevel   string                        `mapstructure:"log_level"`
	Output     string                        `mapstructure:"output"`
	Variants   []string                      `mapstructure:"variants"`
	Validation Validation                    `mapstructure:"validation"`
	Intensity  map[string]map[string]float64 `mapstructure:"intensity"`
	Custom     Custom                        `mapstructure:"custom"`

	// Source is the config file that was read, empty for defaults only.
	Source string `mapstructure:"-"`

	variants  []palette.Variant
	overrides map[string]float64
	base      palette.Variant
}

func newViper(fs afero.Fs) *viper.Viper {
	v := viper.New()
	v.SetFs(fs)
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	defaults := palette.Variants()
	names := make([]string, len(defaults))
	for i, d := range defaults {
		names[i] = d.String()
	}

	v.SetDefault("log_level", "info")
	v.SetDefault("output", "themes")
	v.SetDefault("variants", names)
	v.SetDefault("validation.skip_info", true)
	v.SetDefault("validation.strict", false)
	v.SetDefault("validation.fix", false)
	v.SetDefault("custom.base", palette.VariantNight.String())
	v.SetDefault("custom.name", "")
	for _, key := range []string{"hue_shift", "saturation", "lightness", "contrast", "warmth"} {
		v.SetDefault("custom."+key, 0.0)
	}
	return v
}

// Load reads path, or tnl.yaml from the working directory when path is
// empty. A missing tnl.yaml is not an error; a missing explicit path is.
func Load(fs afero.Fs, path string) (*Config, error) {
	v := newViper(fs)
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(fileName)
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: failed to read %s: %w", describe(path), err)
		}
		log.Debug("No config file found, using defaults")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse %s: %w", describe(v.ConfigFileUsed()), err)
	}
	cfg.Source = v.ConfigFileUsed()

	if err := cfg.resolve(); err != nil {
		return nil, err
	}
	if cfg.Source != "" {
		log.Debugf("Loaded config from %s", cfg.Source)
	}
	return &cfg, nil
}

func describe(path string) string {
	if path == "" {
		return fileName + ".yaml"
	}
	return path
}

// resolve parses and checks the raw values.
func (c *Config) resolve() error {
	if strings.TrimSpace(c.Output) == "" {
		return fmt.Errorf("output must not be empty: %w", ErrInvalidConfig)
	}
	if len(c.Variants) == 0 {
		return fmt.Errorf("no variants selected: %w", ErrInvalidConfig)
	}

	c.variants = c.variants[:0]
	for _, name := range c.Variants {
		v, err := palette.ParseVariant(name)
		if err != nil {
			return fmt.Errorf("variants: %v: %w", err, ErrInvalidConfig)
		}
		c.variants = append(c.variants, v)
	}

	base, err := palette.ParseVariant(c.Custom.Base)
	if err != nil || base == palette.VariantCustom {
		return fmt.Errorf("custom.base %q must be a built-in variant: %w", c.Custom.Base, ErrInvalidConfig)
	}
	c.base = base
	if err := c.Custom.Modification.Validate(); err != nil {
		return fmt.Errorf("custom: %v: %w", err, ErrInvalidConfig)
	}

	c.overrides = make(map[string]float64)
	probe := palette.DefaultIntensity()
	for group, values := range c.Intensity {
		for name, value := range values {
			key := group + "." + name
			if err := probe.Set(key, value); err != nil {
				return fmt.Errorf("intensity: %v: %w", err, ErrInvalidConfig)
			}
			c.overrides[key] = value
		}
	}
	return nil
}

// SelectedVariants returns the parsed variant list.
func (c *Config) SelectedVariants() []palette.Variant {
	out := make([]palette.Variant, len(c.variants))
	copy(out, c.variants)
	return out
}

// PaletteOptions returns the adapt options for variant v. Intensity
// overrides apply to every variant, the custom settings only to custom.
func (c *Config) PaletteOptions(v palette.Variant) []palette.Option {
	var opts []palette.Option
	if len(c.overrides) > 0 {
		opts = append(opts, palette.WithIntensityOverrides(c.overrides))
	}
	if v == palette.VariantCustom {
		opts = append(opts,
			palette.WithCustomBase(c.base),
			palette.WithModification(c.Custom.Modification),
		)
		if c.Custom.Name != "" {
			opts = append(opts, palette.WithName(c.Custom.Name))
		}
	}
	return opts
}
