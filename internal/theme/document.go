package theme

import (
	"encoding/json"
	"fmt"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

const Schema = "vscode://schemas/color-theme"

// Document is a VS Code color theme file.
type Document struct {
	Schema               string                   `json:"$schema,omitempty"`
	Name                 string                   `json:"name"`
	Type                 string                   `json:"type"`
	SemanticHighlighting bool                     `json:"semanticHighlighting"`
	Colors               map[string]string        `json:"colors"`
	TokenColors          []TokenColor             `json:"tokenColors"`
	SemanticTokenColors  map[string]SemanticStyle `json:"semanticTokenColors,omitempty"`
}

type TokenColor struct {
	Name     string        `json:"name,omitempty"`
	Scope    Scope         `json:"scope"`
	Settings TokenSettings `json:"settings"`
}

type TokenSettings struct {
	Foreground string `json:"foreground,omitempty"`
	Background string `json:"background,omitempty"`
	FontStyle  string `json:"fontStyle,omitempty"`
}

// Scope is a list of TextMate scope selectors. A single selector is written
// as a plain string.
type Scope []string

func (s Scope) MarshalJSON() ([]byte, error) {
	if len(s) == 1 {
		return json.Marshal(s[0])
	}
	return json.Marshal([]string(s))
}

// UnmarshalJSON accepts a string, a comma separated string or an array.
func (s *Scope) UnmarshalJSON(data []byte) error {
	var one string
	if err := json.Unmarshal(data, &one); err == nil {
		var out Scope
		for _, part := range strings.Split(one, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
		*s = out
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return fmt.Errorf("scope must be a string or an array of strings: %w", err)
	}
	*s = many
	return nil
}

// SemanticStyle styles one semantic token selector.
type SemanticStyle struct {
	Foreground    string `json:"foreground,omitempty"`
	Bold          bool   `json:"bold,omitempty"`
	Italic        bool   `json:"italic,omitempty"`
	Underline     bool   `json:"underline,omitempty"`
	Strikethrough bool   `json:"strikethrough,omitempty"`
}

// UnmarshalJSON also accepts the shorthand form where the style is just a
// foreground color.
func (s *SemanticStyle) UnmarshalJSON(data []byte) error {
	var color string
	if err := json.Unmarshal(data, &color); err == nil {
		*s = SemanticStyle{Foreground: color}
		return nil
	}
	type plain SemanticStyle
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*s = SemanticStyle(p)
	return nil
}

// Decode parses a theme file.
func Decode(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode theme: %w", err)
	}
	if doc.Colors == nil {
		doc.Colors = map[string]string{}
	}
	return &doc, nil
}

// Clone returns a deep copy.
func (d *Document) Clone() *Document {
	out := *d
	out.Colors = maps.Clone(d.Colors)
	if d.Colors == nil {
		out.Colors = map[string]string{}
	}
	out.TokenColors = make([]TokenColor, len(d.TokenColors))
	for i, tc := range d.TokenColors {
		tc.Scope = slices.Clone(tc.Scope)
		out.TokenColors[i] = tc
	}
	out.SemanticTokenColors = maps.Clone(d.SemanticTokenColors)
	return &out
}

// ColorKeys returns the color keys sorted.
func (d *Document) ColorKeys() []string {
	return sortedKeys(d.Colors)
}

// SemanticSelectors returns the semantic token selectors sorted.
func (d *Document) SemanticSelectors() []string {
	return sortedKeys(d.SemanticTokenColors)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := maps.Keys(m)
	slices.Sort(keys)
	return keys
}
