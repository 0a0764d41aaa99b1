package theme

import (
	"errors"
	"fmt"

	"github.com/tokyo-night-lod/tnl/internal/palette"
)

var (
	ErrDuplicateScope    = errors.New("duplicate scope")
	ErrDuplicateSelector = errors.New("duplicate semantic selector")
)

// StyleGroup shares one TextMate style across several scopes.
type StyleGroup struct {
	Name     string
	Scopes   []string
	Settings TokenSettings
}

// SemanticGroup shares one semantic style across several selectors.
type SemanticGroup struct {
	Style     SemanticStyle
	Selectors []string
}

func fg(c string) TokenSettings            { return TokenSettings{Foreground: c} }
func styled(c, style string) TokenSettings { return TokenSettings{Foreground: c, FontStyle: style} }

// StyleGroups lists the TextMate rules of a palette.
func StyleGroups(p *palette.Palette) []StyleGroup {
	s := p.Syntax
	return []StyleGroup{
		{"Comment", []string{"comment", "punctuation.definition.comment"}, styled(s.Comment, "italic")},
		{"Doc Comment", []string{"comment.block.documentation", "comment.line.documentation", "comment.block.javadoc"}, fg(s.DocComment)},
		{"Keyword", []string{"keyword", "keyword.control", "keyword.other", "storage.type.function", "storage.type.class"}, styled(s.Keyword, "italic")},
		{"Storage", []string{"storage.type", "storage.modifier"}, fg(s.Storage)},
		{"Operator", []string{"keyword.operator", "punctuation.accessor", "keyword.operator.new"}, fg(s.Operator)},
		{"String", []string{"string", "string.quoted", "string.template", "punctuation.definition.string"}, fg(s.String)},
		{"Escape", []string{"constant.character.escape", "constant.other.placeholder", "constant.character.format.placeholder"}, fg(s.Escape)},
		{"Regex", []string{"string.regexp", "constant.other.character-class.regexp"}, fg(s.Regex)},
		{"Number", []string{"constant.numeric", "keyword.other.unit"}, fg(s.Number)},
		{"Constant", []string{"constant.language", "constant.other", "variable.other.constant", "support.constant", "variable.other.enummember"}, fg(s.Constant)},
		{"Function", []string{"entity.name.function", "support.function", "meta.function-call"}, fg(s.Function)},
		{"Method", []string{"entity.name.function.member", "meta.method-call entity.name.function"}, fg(s.Method)},
		{"Builtin", []string{"support.function.builtin", "variable.language", "support.variable"}, fg(s.Builtin)},
		{"Type", []string{"entity.name.type", "support.type", "storage.type.primitive", "storage.type.built-in"}, fg(s.Type)},
		{"Class", []string{"entity.name.type.class", "support.class", "entity.other.inherited-class", "entity.name.class"}, fg(s.Class)},
		{"Interface", []string{"entity.name.type.interface"}, fg(s.Interface)},
		{"Namespace", []string{"entity.name.namespace", "entity.name.type.module", "entity.name.package"}, fg(s.Namespace)},
		{"Variable", []string{"variable", "variable.other.readwrite", "meta.definition.variable"}, fg(s.Variable)},
		{"Parameter", []string{"variable.parameter", "meta.parameter"}, styled(s.Parameter, "italic")},
		{"Property", []string{"variable.other.property", "variable.other.object.property", "support.variable.property", "meta.object-literal.key", "support.type.property-name"}, fg(s.Property)},
		{"Tag", []string{"entity.name.tag", "meta.tag.sgml", "punctuation.definition.tag"}, fg(s.Tag)},
		{"Attribute", []string{"entity.other.attribute-name"}, styled(s.Property, "italic")},
		{"Decorator", []string{"meta.decorator", "entity.name.function.decorator", "punctuation.decorator", "meta.annotation"}, fg(s.Decorator)},
		{"Punctuation", []string{"punctuation", "meta.brace", "punctuation.separator", "punctuation.terminator"}, fg(s.Punctuation)},
		{"Invalid", []string{"invalid", "invalid.illegal"}, fg(s.Invalid)},
		{"Deprecated", []string{"invalid.deprecated"}, styled(s.Invalid, "strikethrough")},
		{"Markup Heading", []string{"markup.heading", "entity.name.section.markdown"}, styled(s.Heading, "bold")},
		{"Markup Bold", []string{"markup.bold"}, TokenSettings{FontStyle: "bold"}},
		{"Markup Italic", []string{"markup.italic"}, TokenSettings{FontStyle: "italic"}},
		{"Markup Link", []string{"markup.underline.link", "string.other.link"}, styled(s.Link, "underline")},
		{"Markup Code", []string{"markup.inline.raw", "markup.fenced_code.block"}, fg(s.InlineCode)},
		{"Markup Quote", []string{"markup.quote"}, styled(s.Quote, "italic")},
		{"Markup List", []string{"punctuation.definition.list.begin.markdown"}, fg(s.Keyword)},
		{"Markup Inserted", []string{"markup.inserted"}, fg(p.Git.Added)},
		{"Markup Deleted", []string{"markup.deleted"}, fg(p.Git.Deleted)},
		{"Markup Changed", []string{"markup.changed"}, fg(p.Git.Modified)},
	}
}

// SemanticGroups lists the semantic token rules of a palette.
func SemanticGroups(p *palette.Palette) []SemanticGroup {
	s := p.Syntax
	return []SemanticGroup{
		{SemanticStyle{Foreground: s.Namespace}, []string{"namespace"}},
		{SemanticStyle{Foreground: s.Class}, []string{"class", "struct"}},
		{SemanticStyle{Foreground: s.Type}, []string{"type", "typeParameter", "enum"}},
		{SemanticStyle{Foreground: s.Interface}, []string{"interface"}},
		{SemanticStyle{Foreground: s.Function}, []string{"function"}},
		{SemanticStyle{Foreground: s.Method}, []string{"method"}},
		{SemanticStyle{Foreground: s.Decorator}, []string{"decorator", "macro"}},
		{SemanticStyle{Foreground: s.Variable}, []string{"variable"}},
		{SemanticStyle{Foreground: s.Constant}, []string{"variable.readonly", "enumMember", "property.readonly"}},
		{SemanticStyle{Foreground: s.Parameter, Italic: true}, []string{"parameter"}},
		{SemanticStyle{Foreground: s.Property}, []string{"property"}},
		{SemanticStyle{Foreground: s.Keyword}, []string{"keyword", "modifier"}},
		{SemanticStyle{Foreground: s.String}, []string{"string"}},
		{SemanticStyle{Foreground: s.Number}, []string{"number"}},
		{SemanticStyle{Foreground: s.Regex}, []string{"regexp"}},
		{SemanticStyle{Foreground: s.Operator}, []string{"operator"}},
		{SemanticStyle{Foreground: s.Comment, Italic: true}, []string{"comment"}},
		{SemanticStyle{Foreground: s.Builtin}, []string{"variable.defaultLibrary", "function.defaultLibrary", "class.defaultLibrary"}},
		{SemanticStyle{Strikethrough: true}, []string{"*.deprecated"}},
	}
}

// TokenColors flattens style groups into tokenColors rules. A scope may
// appear in only one group.
func TokenColors(groups []StyleGroup) ([]TokenColor, error) {
	seen := make(map[string]string)
	out := make([]TokenColor, 0, len(groups))
	for _, g := range groups {
		for _, scope := range g.Scopes {
			if prev, ok := seen[scope]; ok {
				return nil, fmt.Errorf("scope %q in %q and %q: %w", scope, prev, g.Name, ErrDuplicateScope)
			}
			seen[scope] = g.Name
		}
		out = append(out, TokenColor{
			Name:     g.Name,
			Scope:    append(Scope(nil), g.Scopes...),
			Settings: g.Settings,
		})
	}
	return out, nil
}

// SemanticTokenColors reduces semantic groups to a selector map. A selector
// may appear in only one group.
func SemanticTokenColors(groups []SemanticGroup) (map[string]SemanticStyle, error) {
	out := make(map[string]SemanticStyle)
	for i, g := range groups {
		for _, sel := range g.Selectors {
			if _, ok := out[sel]; ok {
				return nil, fmt.Errorf("selector %q in group %d: %w", sel, i, ErrDuplicateSelector)
			}
			out[sel] = g.Style
		}
	}
	return out, nil
}
