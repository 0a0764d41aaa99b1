package writer

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tokyo-night-lod/tnl/internal/theme"
)

func sample() *theme.Document {
	return &theme.Document{
		Schema:               theme.Schema,
		Name:                 "Tokyo Night Lod",
		Type:                 "dark",
		SemanticHighlighting: true,
		Colors:               map[string]string{"editor.background": "#1a1b26", "editor.foreground": "#a9b1d6"},
		TokenColors: []theme.TokenColor{
			{Name: "Comment", Scope: theme.Scope{"comment"}, Settings: theme.TokenSettings{Foreground: "#565f89", FontStyle: "italic"}},
			{Name: "Tag", Scope: theme.Scope{"entity.name.tag", "meta.tag.sgml"}, Settings: theme.TokenSettings{Foreground: "#f7768e"}},
		},
		SemanticTokenColors: map[string]theme.SemanticStyle{"parameter": {Foreground: "#e0af68", Italic: true}},
	}
}

func TestEncodeLayout(t *testing.T) {
	data, err := Encode(sample())
	require.NoError(t, err)
	out := string(data)

	assert.True(t, strings.HasPrefix(out, "{\n  \"$schema\": \"vscode://schemas/color-theme\",\n"))
	assert.True(t, strings.HasSuffix(out, "}\n"))
	assert.Contains(t, out, `"scope": "comment"`)
	assert.Contains(t, out, "\"scope\": [\n")
	assert.NotContains(t, out, `<`)
	assert.True(t, strings.Index(out, `"editor.background"`) < strings.Index(out, `"editor.foreground"`), "color keys are sorted")
}

func TestWriteAndRead(t *testing.T) {
	fs := afero.NewMemMapFs()
	w := NewWithFs(fs, "")

	path, err := w.Write("tokyo-night-lod", sample())
	require.NoError(t, err)
	assert.Equal(t, "themes/tokyo-night-lod-color-theme.json", path)

	got, err := w.Read(path)
	require.NoError(t, err)
	if diff := cmp.Diff(sample(), got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteFileCreatesDirectory(t *testing.T) {
	fs := afero.NewMemMapFs()
	w := NewWithFs(fs, "dist")

	require.NoError(t, w.WriteFile("out/nested/theme.json", sample()))
	ok, err := afero.Exists(fs, "out/nested/theme.json")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestReadErrors(t *testing.T) {
	fs := afero.NewMemMapFs()
	w := NewWithFs(fs, "themes")

	_, err := w.Read("missing.json")
	assert.Error(t, err)

	require.NoError(t, afero.WriteFile(fs, "bad.json", []byte("{not json"), 0o644))
	_, err = w.Read("bad.json")
	assert.Error(t, err)
}

func TestWriteReadOnlyFs(t *testing.T) {
	w := NewWithFs(afero.NewReadOnlyFs(afero.NewMemMapFs()), "themes")
	_, err := w.Write("x", sample())
	assert.Error(t, err)
}
