package validation

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tokyo-night-lod/tnl/internal/palette"
	"github.com/tokyo-night-lod/tnl/internal/theme"
)

func TestCheckPair(t *testing.T) {
	tests := []struct {
		name     string
		fg, bg   string
		severity Severity
		reported bool
	}{
		{"identical", "#1a1b26", "#1a1b26", SeverityError, true},
		{"near identical", "#1a1b26", "#1a1b27", SeverityError, true},
		{"poor", "#3b4261", "#1a1b26", SeverityWarning, true},
		{"aa only", "#8089b3", "#1a1b26", SeverityInfo, true},
		{"aaa", "#c0caf5", "#1a1b26", "", false},
		{"black on white", "#000000", "#ffffff", "", false},
		{"invalid is skipped", "nope", "#1a1b26", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			is, ok := checkPair("fg", tt.fg, "bg", tt.bg, "#1a1b26")
			assert.Equal(t, tt.reported, ok)
			assert.Equal(t, tt.severity, is.Severity)
		})
	}
}

func TestQualityCompositesAlpha(t *testing.T) {
	// A fully transparent foreground is the background itself.
	is, ok := checkPair("fg", "#c0caf500", "bg", "#1a1b26", "#1a1b26")
	require.True(t, ok)
	assert.Equal(t, SeverityError, is.Severity)

	// A translucent background over a dark editor stays dark.
	_, ok = checkPair("fg", "#c0caf5", "bg", "#ffffff10", "#1a1b26")
	assert.False(t, ok)
}

func TestQualityEditorBackgroundRequired(t *testing.T) {
	r := ValidateQuality(&theme.Document{Colors: map[string]string{}}, QualityOptions{})
	assert.False(t, r.Passed)
	require.Len(t, r.Issues, 1)
	assert.Equal(t, "editor.background", r.Issues[0].Property)

	r = ValidateQuality(&theme.Document{Colors: map[string]string{"editor.background": "#1a1b2680"}}, QualityOptions{})
	assert.False(t, r.Passed)
}

func TestQualitySkipInfo(t *testing.T) {
	doc := &theme.Document{Colors: map[string]string{
		"editor.background": "#1a1b26",
		"editor.foreground": "#8089b3",
	}}

	all := ValidateQuality(doc, QualityOptions{})
	assert.True(t, all.Passed)
	assert.NotZero(t, all.Count(SeverityInfo))

	quiet := ValidateQuality(doc, QualityOptions{SkipInfo: true})
	assert.Zero(t, quiet.Count(SeverityInfo))
	assert.Empty(t, quiet.Issues)
}

func TestQualityInvisiblePairFails(t *testing.T) {
	doc := &theme.Document{Colors: map[string]string{
		"editor.background":    "#1a1b26",
		"statusBar.foreground": "#16161e",
		"statusBar.background": "#16161e",
	}}
	r := ValidateQuality(doc, QualityOptions{SkipInfo: true})
	assert.False(t, r.Passed)
	is, ok := issueFor(r, "statusBar.foreground")
	require.True(t, ok)
	assert.Equal(t, SeverityError, is.Severity)
}

func TestQualitySyntaxContrast(t *testing.T) {
	doc := &theme.Document{
		Colors: map[string]string{"editor.background": "#1a1b26"},
		TokenColors: []theme.TokenColor{
			{Name: "Dim", Scope: theme.Scope{"comment"}, Settings: theme.TokenSettings{Foreground: "#24283b"}},
			{Name: "Bright", Scope: theme.Scope{"string"}, Settings: theme.TokenSettings{Foreground: "#9ece6a"}},
		},
	}
	r := ValidateQuality(doc, QualityOptions{SkipInfo: true})
	assert.True(t, r.Passed, "syntax contrast never fails a theme")
	require.Len(t, r.Issues, 1)
	assert.Equal(t, "tokenColors[0] (Dim)", r.Issues[0].Property)
	assert.Equal(t, SeverityWarning, r.Issues[0].Severity)
}

func TestBuiltThemesValidate(t *testing.T) {
	results, err := theme.BuildAll(context.Background(), palette.Variants(), theme.BuildOptions{})
	require.NoError(t, err)

	for _, res := range results {
		r := Validate(res.Document, QualityOptions{SkipInfo: true})
		for _, is := range r.Filter(SeverityError) {
			t.Errorf("%s: %s: %s", res.Context.Variant, is.Property, is.Message)
		}
		assert.True(t, r.Passed, res.Context.Variant)

		fixed, fixes := FixProperties(res.Document)
		assert.Empty(t, fixes, res.Context.Variant)
		assert.Equal(t, res.Document.Colors, fixed.Colors)
	}
}

func TestResultMerge(t *testing.T) {
	a := newResult([]Issue{{Property: "a", Severity: SeverityWarning}})
	b := newResult([]Issue{{Property: "b", Severity: SeverityError}})
	assert.True(t, a.Passed)
	assert.False(t, b.Passed)

	m := Merge(a, b)
	assert.False(t, m.Passed)
	assert.Equal(t, 1, m.Count(SeverityError))
	assert.Equal(t, 1, m.Count(SeverityWarning))
	assert.Len(t, m.Filter(SeverityWarning), 1)
}
