package palette

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/tokyo-night-lod/tnl/internal/hexcolor"
)

var (
	ErrCyclicTokenDependency = errors.New("cyclic token dependency")
	ErrUnknownToken          = errors.New("unknown token")
)

// Formula derives one token from the generation inputs. Dependencies on other
// tokens go through the resolver, which memoizes them.
type Formula func(r *Resolver) string

// Registry is an ordered set of named formulas. It is not safe to register
// concurrently with Generate; the default registry is frozen after init.
type Registry struct {
	order    []string
	formulas map[string]Formula
}

func NewRegistry() *Registry {
	return &Registry{formulas: make(map[string]Formula)}
}

// Register adds a formula. Registering a name twice is a programming error.
func (g *Registry) Register(name string, f Formula) {
	if _, exists := g.formulas[name]; exists {
		panic(fmt.Sprintf("palette: token %q registered twice", name))
	}
	g.order = append(g.order, name)
	g.formulas[name] = f
}

func (g *Registry) Has(name string) bool {
	_, ok := g.formulas[name]
	return ok
}

// Names returns token names in registration order.
func (g *Registry) Names() []string {
	out := make([]string, len(g.order))
	copy(out, g.order)
	return out
}

func (g *Registry) Len() int { return len(g.order) }

// Inputs is everything a generation pass may read.
type Inputs struct {
	Type      ThemeType
	Base      Base
	Intensity Intensity
	// Pinned tokens resolve to a literal value instead of their formula.
	Pinned map[string]string
}

// Generate evaluates every registered formula exactly once and returns the
// resulting table. Each call uses a fresh cache.
func (g *Registry) Generate(in Inputs) (Table, error) {
	if err := in.Base.Validate(); err != nil {
		return Table{}, err
	}
	if err := in.Intensity.Validate(); err != nil {
		return Table{}, err
	}
	for name, v := range in.Pinned {
		if !g.Has(name) {
			return Table{}, fmt.Errorf("pinned token %q: %w", name, ErrUnknownToken)
		}
		if err := hexcolor.Validate(v); err != nil {
			return Table{}, fmt.Errorf("pinned token %q: %w", name, err)
		}
	}

	r := &Resolver{
		registry:  g,
		in:        in,
		base:      in.Base.Colors(),
		cache:     make(map[string]string, len(g.order)),
		resolving: make(map[string]bool),
	}
	for _, name := range g.order {
		r.Token(name)
		if r.err != nil {
			return Table{}, r.err
		}
	}
	return Table{values: r.cache}, nil
}

// Resolver evaluates formulas on demand for a single generation pass. The
// first error encountered is kept; later calls return empty strings.
type Resolver struct {
	registry  *Registry
	in        Inputs
	base      map[string]string
	cache     map[string]string
	resolving map[string]bool
	stack     []string
	err       error
}

// Token returns the value of another token, computing it on first access.
func (r *Resolver) Token(name string) string {
	if r.err != nil {
		return ""
	}
	if v, ok := r.cache[name]; ok {
		return v
	}
	if r.resolving[name] {
		path := append(append([]string{}, r.stack...), name)
		r.fail(fmt.Errorf("%s: %w", strings.Join(path, " -> "), ErrCyclicTokenDependency))
		return ""
	}
	f, ok := r.registry.formulas[name]
	if !ok {
		r.fail(fmt.Errorf("%q referenced from %s: %w", name, r.current(), ErrUnknownToken))
		return ""
	}

	if v, pinned := r.in.Pinned[name]; pinned {
		r.cache[name] = v
		return v
	}

	r.resolving[name] = true
	r.stack = append(r.stack, name)
	v := f(r)
	r.stack = r.stack[:len(r.stack)-1]
	delete(r.resolving, name)

	if r.err != nil {
		return ""
	}
	if err := hexcolor.Validate(v); err != nil {
		r.fail(fmt.Errorf("token %s: %w", name, err))
		return ""
	}
	r.cache[name] = v
	return v
}

// BaseColor returns a base color by its snake_case name.
func (r *Resolver) BaseColor(name string) string {
	v, ok := r.base[name]
	if !ok {
		r.fail(fmt.Errorf("base color %q referenced from %s: %w", name, r.current(), ErrUnknownToken))
		return ""
	}
	return v
}

func (r *Resolver) Base() Base           { return r.in.Base }
func (r *Resolver) Intensity() Intensity { return r.in.Intensity }
func (r *Resolver) Type() ThemeType      { return r.in.Type }

// Pick returns light when the pass is for a light theme and dark otherwise.
func (r *Resolver) Pick(dark, light string) string {
	if r.in.Type.IsLight() {
		return light
	}
	return dark
}

func (r *Resolver) Mix(a, b string, ratio float64) string {
	return r.check(hexcolor.Mix(a, b, ratio))
}

func (r *Resolver) Alpha(color string, alpha float64) string {
	return r.check(hexcolor.WithAlpha(color, alpha))
}

func (r *Resolver) Lighten(color string, amount float64) string {
	return r.check(hexcolor.Lighten(color, amount))
}

func (r *Resolver) Darken(color string, amount float64) string {
	return r.check(hexcolor.Darken(color, amount))
}

func (r *Resolver) LightenToward(base, target string, amount float64) string {
	return r.check(hexcolor.LightenToward(base, target, amount))
}

func (r *Resolver) DarkenToward(base, target string, amount float64) string {
	return r.check(hexcolor.DarkenToward(base, target, amount))
}

// Deepen darkens on dark themes and lightens on light themes.
func (r *Resolver) Deepen(color string, amount float64) string {
	if r.in.Type.IsLight() {
		return r.Lighten(color, amount)
	}
	return r.Darken(color, amount)
}

func (r *Resolver) EnsureContrast(color, bg string, minRatio float64) string {
	return r.check(hexcolor.EnsureContrast(color, bg, minRatio))
}

func (r *Resolver) check(v string, err error) string {
	if err != nil {
		r.fail(fmt.Errorf("token %s: %w", r.current(), err))
		return ""
	}
	return v
}

func (r *Resolver) fail(err error) {
	if r.err == nil {
		r.err = err
	}
}

func (r *Resolver) current() string {
	if len(r.stack) == 0 {
		return "<root>"
	}
	return r.stack[len(r.stack)-1]
}

// Table is the immutable result of a generation pass.
type Table struct {
	values map[string]string
}

func (t Table) Get(name string) (string, bool) {
	v, ok := t.values[name]
	return v, ok
}

func (t Table) Len() int { return len(t.values) }

// Names returns the token names sorted.
func (t Table) Names() []string {
	names := make([]string, 0, len(t.values))
	for k := range t.values {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Map returns a copy of the table contents.
func (t Table) Map() map[string]string {
	out := make(map[string]string, len(t.values))
	for k, v := range t.values {
		out[k] = v
	}
	return out
}
