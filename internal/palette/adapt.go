package palette

import (
	"fmt"
	"sort"
)

type adaptOptions struct {
	intensity    *Intensity
	overrides    map[string]float64
	modification Modification
	customBase   Variant
	name         string
	registry     *Registry
}

type Option func(*adaptOptions)

// WithIntensity replaces the variant's default intensity configuration.
func WithIntensity(i Intensity) Option {
	return func(o *adaptOptions) { o.intensity = &i }
}

// WithIntensityOverrides sets individual intensity values, keyed
// "group.name", on top of the variant's own configuration.
func WithIntensityOverrides(values map[string]float64) Option {
	return func(o *adaptOptions) { o.overrides = values }
}

// WithModification sets the HSL adjustment of the custom variant.
func WithModification(m Modification) Option {
	return func(o *adaptOptions) { o.modification = m }
}

// WithCustomBase selects the built-in variant the custom variant starts from.
func WithCustomBase(v Variant) Option {
	return func(o *adaptOptions) { o.customBase = v }
}

// WithName overrides the display name.
func WithName(name string) Option {
	return func(o *adaptOptions) { o.name = name }
}

// WithRegistry generates tokens from r instead of the default formulas.
func WithRegistry(r *Registry) Option {
	return func(o *adaptOptions) { o.registry = r }
}

// Adapt selects the base palette, intensity and structural overrides of a
// variant, runs a fresh generation pass and assembles the result.
func Adapt(v Variant, opts ...Option) (*Palette, error) {
	o := adaptOptions{customBase: VariantNight, registry: defaultRegistry}
	for _, opt := range opts {
		opt(&o)
	}

	def, mod, err := resolveVariant(v, o)
	if err != nil {
		return nil, err
	}

	b, err := mod.Apply(def.base())
	if err != nil {
		return nil, fmt.Errorf("adapt %s: %w", v, err)
	}
	intensity := def.intensity()
	if o.intensity != nil {
		intensity = *o.intensity
	}
	keys := make([]string, 0, len(o.overrides))
	for key := range o.overrides {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		if err := intensity.Set(key, o.overrides[key]); err != nil {
			return nil, fmt.Errorf("adapt %s: %w", v, err)
		}
	}
	name := def.display
	if o.name != "" {
		name = o.name
	}

	table, err := o.registry.Generate(Inputs{
		Type:      def.typ,
		Base:      b,
		Intensity: intensity,
		Pinned:    def.pinned,
	})
	if err != nil {
		return nil, fmt.Errorf("adapt %s: %w", v, err)
	}
	return Assemble(v, def.typ, name, b, table)
}

func resolveVariant(v Variant, o adaptOptions) (variantDef, Modification, error) {
	if v != VariantCustom {
		def, ok := variants[v]
		if !ok {
			return variantDef{}, Modification{}, fmt.Errorf("%q: %w", v, ErrUnknownVariant)
		}
		return def, def.modify, nil
	}

	def, ok := variants[o.customBase]
	if !ok {
		return variantDef{}, Modification{}, fmt.Errorf("custom base %q: %w", o.customBase, ErrUnknownVariant)
	}
	if err := o.modification.Validate(); err != nil {
		return variantDef{}, Modification{}, err
	}
	// Pinned literals would ignore the modification, so custom re-derives
	// every token from the modified base.
	def.pinned = nil
	def.display = VariantCustom.DisplayName()
	def.slug = VariantCustom.Slug()

	mod := o.modification
	if !def.modify.IsZero() {
		combined, err := def.modify.Apply(def.base())
		if err != nil {
			return variantDef{}, Modification{}, err
		}
		def.base = func() Base { return combined }
	}
	return def, mod, nil
}
