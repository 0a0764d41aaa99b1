package palette

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tokyo-night-lod/tnl/internal/hexcolor"
)

func testInputs() Inputs {
	return Inputs{Type: TypeDark, Base: nightBase(), Intensity: DefaultIntensity()}
}

func TestGenerateIsDeterministic(t *testing.T) {
	first, err := DefaultRegistry().Generate(testInputs())
	require.NoError(t, err)
	second, err := DefaultRegistry().Generate(testInputs())
	require.NoError(t, err)

	if diff := cmp.Diff(first.Map(), second.Map()); diff != "" {
		t.Errorf("token tables differ (-first +second):\n%s", diff)
	}
	assert.Equal(t, DefaultRegistry().Len(), first.Len())
}

func TestGenerateProducesValidColors(t *testing.T) {
	table, err := DefaultRegistry().Generate(testInputs())
	require.NoError(t, err)

	for _, name := range table.Names() {
		v, _ := table.Get(name)
		assert.Truef(t, hexcolor.IsValid(v), "token %s = %q", name, v)
	}
}

func TestCyclicDependency(t *testing.T) {
	g := NewRegistry()
	g.Register("a", func(r *Resolver) string { return r.Token("b") })
	g.Register("b", func(r *Resolver) string { return r.Token("c") })
	g.Register("c", func(r *Resolver) string { return r.Token("a") })

	_, err := g.Generate(testInputs())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrCyclicTokenDependency))
	assert.Contains(t, err.Error(), "a -> b -> c -> a")
}

func TestSelfReference(t *testing.T) {
	g := NewRegistry()
	g.Register("loop", func(r *Resolver) string { return r.Mix(r.Token("loop"), "#000000", 0.5) })

	_, err := g.Generate(testInputs())
	assert.ErrorIs(t, err, ErrCyclicTokenDependency)
}

func TestUnknownTokenReference(t *testing.T) {
	g := NewRegistry()
	g.Register("a", func(r *Resolver) string { return r.Token("missing") })

	_, err := g.Generate(testInputs())
	assert.ErrorIs(t, err, ErrUnknownToken)
	assert.Contains(t, err.Error(), `"missing"`)
}

func TestUnknownBaseColor(t *testing.T) {
	g := NewRegistry()
	g.Register("a", func(r *Resolver) string { return r.BaseColor("chartreuse") })

	_, err := g.Generate(testInputs())
	assert.ErrorIs(t, err, ErrUnknownToken)
}

func TestAlgebraErrorsPropagate(t *testing.T) {
	tests := []struct {
		name    string
		formula Formula
	}{
		{
			name:    "mix with malformed color",
			formula: func(r *Resolver) string { return r.Mix("notahex", "#ffffff", 0.5) },
		},
		{
			name:    "alpha with malformed color",
			formula: func(r *Resolver) string { return r.Alpha("#ff00", 0.5) },
		},
		{
			name:    "formula returns a literal keyword",
			formula: func(r *Resolver) string { return "transparent" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewRegistry()
			g.Register("ok", base(func(b Base) string { return b.Blue }))
			g.Register("broken", tt.formula)

			_, err := g.Generate(testInputs())
			assert.ErrorIs(t, err, hexcolor.ErrInvalidColorFormat)
			assert.Contains(t, err.Error(), "broken")
		})
	}
}

func TestFormulasEvaluatedOnce(t *testing.T) {
	calls := map[string]int{}
	counted := func(name string, f Formula) Formula {
		return func(r *Resolver) string {
			calls[name]++
			return f(r)
		}
	}

	g := NewRegistry()
	g.Register("root", counted("root", base(func(b Base) string { return b.Blue })))
	g.Register("left", counted("left", func(r *Resolver) string { return r.Lighten(r.Token("root"), 0.1) }))
	g.Register("right", counted("right", func(r *Resolver) string { return r.Darken(r.Token("root"), 0.1) }))
	g.Register("both", counted("both", func(r *Resolver) string {
		return r.Mix(r.Token("left"), r.Token("right"), 0.5)
	}))

	table, err := g.Generate(testInputs())
	require.NoError(t, err)
	assert.Equal(t, 4, table.Len())
	assert.Equal(t, map[string]int{"root": 1, "left": 1, "right": 1, "both": 1}, calls)
}

func TestPinnedTokens(t *testing.T) {
	in := testInputs()
	in.Pinned = map[string]string{"bg.sunken": "#123456"}

	table, err := DefaultRegistry().Generate(in)
	require.NoError(t, err)

	v, _ := table.Get("bg.sunken")
	assert.Equal(t, "#123456", v)

	// Dependents see the pinned value.
	float, _ := table.Get("bg.float")
	want, _ := hexcolor.Mix(nightBase().BgDark, "#123456", 0.5)
	assert.Equal(t, want, float)
}

func TestPinnedTokenValidation(t *testing.T) {
	in := testInputs()
	in.Pinned = map[string]string{"no.such.token": "#123456"}
	_, err := DefaultRegistry().Generate(in)
	assert.ErrorIs(t, err, ErrUnknownToken)

	in.Pinned = map[string]string{"bg.sunken": "inherit"}
	_, err = DefaultRegistry().Generate(in)
	assert.ErrorIs(t, err, hexcolor.ErrInvalidColorFormat)
}

func TestGenerateRejectsBadInputs(t *testing.T) {
	in := testInputs()
	in.Base.Blue = "blue"
	_, err := DefaultRegistry().Generate(in)
	assert.ErrorIs(t, err, hexcolor.ErrInvalidColorFormat)

	in = testInputs()
	in.Intensity.Surface.Deep = 1.5
	_, err = DefaultRegistry().Generate(in)
	assert.ErrorIs(t, err, ErrInvalidIntensity)
}

func TestRegisterTwicePanics(t *testing.T) {
	g := NewRegistry()
	g.Register("a", base(func(b Base) string { return b.Blue }))
	assert.Panics(t, func() {
		g.Register("a", base(func(b Base) string { return b.Red }))
	})
}

func TestTableMapIsACopy(t *testing.T) {
	table, err := DefaultRegistry().Generate(testInputs())
	require.NoError(t, err)

	m := table.Map()
	m["bg.base"] = "#000000"

	v, _ := table.Get("bg.base")
	assert.Equal(t, nightBase().Bg, v)
}
