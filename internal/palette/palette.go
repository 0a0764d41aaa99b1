package palette

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tokyo-night-lod/tnl/internal/hexcolor"
)

var ErrMissingToken = errors.New("missing token")

type Backgrounds struct {
	Base      string
	Dark      string
	Highlight string
	Sunken    string
	Deep      string
	Raised    string
	Hover     string
	Active    string
	Float     string
	Line      string
	Shadow    string
}

type TextColors struct {
	Primary          string
	Secondary        string
	Muted            string
	Subtle           string
	Faint            string
	Gutter           string
	LineNumberActive string
	Inverse          string
}

type Borders struct {
	Default   string
	Subtle    string
	Strong    string
	Separator string
	Focus     string
}

type Accents struct {
	Primary              string
	Secondary            string
	Tertiary             string
	Link                 string
	Hover                string
	Muted                string
	Subtle               string
	Button               string
	ButtonHover          string
	ButtonForeground     string
	Badge                string
	BadgeForeground      string
	SecondaryButton      string
	SecondaryButtonHover string
}

type Selections struct {
	Background    string
	Inactive      string
	Word          string
	WordStrong    string
	FindMatch     string
	FindHighlight string
	FindRange     string
	List          string
	ListInactive  string
}

type StatusColors struct {
	Error             string
	Warning           string
	Info              string
	Hint              string
	Success           string
	ErrorBackground   string
	WarningBackground string
	InfoBackground    string
	ErrorBorder       string
	WarningBorder     string
	InfoBorder        string
}

type GitColors struct {
	Added     string
	Modified  string
	Deleted   string
	Untracked string
	Renamed   string
	Staged    string
	Submodule string
	Ignored   string
	Conflict  string
}

type DiffColors struct {
	Inserted             string
	Removed              string
	InsertedLine         string
	RemovedLine          string
	InsertedGutter       string
	RemovedGutter        string
	Diagonal             string
	MergeCurrentHeader   string
	MergeCurrentContent  string
	MergeIncomingHeader  string
	MergeIncomingContent string
	MergeCommonHeader    string
	MergeCommonContent   string
}

type Guides struct {
	Indent          string
	IndentActive    string
	Whitespace      string
	Ruler           string
	BracketMatch    string
	Scrollbar       string
	ScrollbarHover  string
	ScrollbarActive string
}

type Brackets struct {
	Colors     [6]string
	Unexpected string
}

type SyntaxColors struct {
	Keyword     string
	Storage     string
	Function    string
	Method      string
	String      string
	Number      string
	Constant    string
	Type        string
	Class       string
	Interface   string
	Variable    string
	Parameter   string
	Property    string
	Operator    string
	Punctuation string
	Tag         string
	Builtin     string
	Escape      string
	Namespace   string
	Decorator   string
	Invalid     string
	Comment     string
	DocComment  string
	Regex       string
	Heading     string
	Link        string
	InlineCode  string
	Quote       string
}

// Palette is the assembled, read-only color set of one variant.
type Palette struct {
	Variant   Variant
	Type      ThemeType
	Name      string
	Base      Base
	Tokens    Table
	Bg        Backgrounds
	Text      TextColors
	Border    Borders
	Accent    Accents
	Selection Selections
	Status    StatusColors
	Git       GitColors
	Diff      DiffColors
	Guide     Guides
	Brackets  Brackets
	Terminal  [16]string
	Syntax    SyntaxColors
	Adaptive  map[Component]string
}

// Background returns the adaptive background of a component.
func (p *Palette) Background(c Component) string {
	return p.Adaptive[c]
}

type collector struct {
	table   Table
	missing []string
}

func (c *collector) get(name string) string {
	v, ok := c.table.Get(name)
	if !ok {
		c.missing = append(c.missing, name)
	}
	return v
}

// Assemble groups a generated token table into a Palette. Every token the
// palette reads must be present.
func Assemble(v Variant, t ThemeType, name string, b Base, table Table) (*Palette, error) {
	c := &collector{table: table}
	p := &Palette{
		Variant: v,
		Type:    t,
		Name:    name,
		Base:    b,
		Tokens:  table,
	}

	p.Bg = Backgrounds{
		Base:      c.get("bg.base"),
		Dark:      c.get("bg.dark"),
		Highlight: c.get("bg.highlight"),
		Sunken:    c.get("bg.sunken"),
		Deep:      c.get("bg.deep"),
		Raised:    c.get("bg.raised"),
		Hover:     c.get("bg.hover"),
		Active:    c.get("bg.active"),
		Float:     c.get("bg.float"),
		Line:      c.get("bg.line"),
		Shadow:    c.get("bg.shadow"),
	}
	p.Text = TextColors{
		Primary:          c.get("text.primary"),
		Secondary:        c.get("text.secondary"),
		Muted:            c.get("text.muted"),
		Subtle:           c.get("text.subtle"),
		Faint:            c.get("text.faint"),
		Gutter:           c.get("text.gutter"),
		LineNumberActive: c.get("text.line_number_active"),
		Inverse:          c.get("text.inverse"),
	}
	p.Border = Borders{
		Default:   c.get("border.default"),
		Subtle:    c.get("border.subtle"),
		Strong:    c.get("border.strong"),
		Separator: c.get("border.separator"),
		Focus:     c.get("border.focus"),
	}
	p.Accent = Accents{
		Primary:              c.get("accent.primary"),
		Secondary:            c.get("accent.secondary"),
		Tertiary:             c.get("accent.tertiary"),
		Link:                 c.get("accent.link"),
		Hover:                c.get("accent.hover"),
		Muted:                c.get("accent.muted"),
		Subtle:               c.get("accent.subtle"),
		Button:               c.get("accent.button"),
		ButtonHover:          c.get("accent.button_hover"),
		ButtonForeground:     c.get("accent.button_foreground"),
		Badge:                c.get("accent.badge"),
		BadgeForeground:      c.get("accent.badge_foreground"),
		SecondaryButton:      c.get("accent.secondary_button"),
		SecondaryButtonHover: c.get("accent.secondary_button_hover"),
	}
	p.Selection = Selections{
		Background:    c.get("selection.background"),
		Inactive:      c.get("selection.inactive"),
		Word:          c.get("selection.word"),
		WordStrong:    c.get("selection.word_strong"),
		FindMatch:     c.get("selection.find_match"),
		FindHighlight: c.get("selection.find_highlight"),
		FindRange:     c.get("selection.find_range"),
		List:          c.get("selection.list"),
		ListInactive:  c.get("selection.list_inactive"),
	}
	p.Status = StatusColors{
		Error:             c.get("status.error"),
		Warning:           c.get("status.warning"),
		Info:              c.get("status.info"),
		Hint:              c.get("status.hint"),
		Success:           c.get("status.success"),
		ErrorBackground:   c.get("status.error_background"),
		WarningBackground: c.get("status.warning_background"),
		InfoBackground:    c.get("status.info_background"),
		ErrorBorder:       c.get("status.error_border"),
		WarningBorder:     c.get("status.warning_border"),
		InfoBorder:        c.get("status.info_border"),
	}
	p.Git = GitColors{
		Added:     c.get("git.added"),
		Modified:  c.get("git.modified"),
		Deleted:   c.get("git.deleted"),
		Untracked: c.get("git.untracked"),
		Renamed:   c.get("git.renamed"),
		Staged:    c.get("git.staged"),
		Submodule: c.get("git.submodule"),
		Ignored:   c.get("git.ignored"),
		Conflict:  c.get("git.conflict"),
	}
	p.Diff = DiffColors{
		Inserted:             c.get("diff.inserted"),
		Removed:              c.get("diff.removed"),
		InsertedLine:         c.get("diff.inserted_line"),
		RemovedLine:          c.get("diff.removed_line"),
		InsertedGutter:       c.get("diff.inserted_gutter"),
		RemovedGutter:        c.get("diff.removed_gutter"),
		Diagonal:             c.get("diff.diagonal"),
		MergeCurrentHeader:   c.get("merge.current_header"),
		MergeCurrentContent:  c.get("merge.current_content"),
		MergeIncomingHeader:  c.get("merge.incoming_header"),
		MergeIncomingContent: c.get("merge.incoming_content"),
		MergeCommonHeader:    c.get("merge.common_header"),
		MergeCommonContent:   c.get("merge.common_content"),
	}
	p.Guide = Guides{
		Indent:          c.get("guide.indent"),
		IndentActive:    c.get("guide.indent_active"),
		Whitespace:      c.get("guide.whitespace"),
		Ruler:           c.get("guide.ruler"),
		BracketMatch:    c.get("guide.bracket_match"),
		Scrollbar:       c.get("guide.scrollbar"),
		ScrollbarHover:  c.get("guide.scrollbar_hover"),
		ScrollbarActive: c.get("guide.scrollbar_active"),
	}
	for i := range p.Brackets.Colors {
		p.Brackets.Colors[i] = c.get(bracketToken(i))
	}
	p.Brackets.Unexpected = c.get("bracket.unexpected")

	for i, n := range terminalNames {
		p.Terminal[i] = c.get("terminal." + n)
		p.Terminal[i+8] = c.get("terminal.bright_" + n)
	}

	p.Syntax = SyntaxColors{
		Keyword:     c.get("syntax.keyword"),
		Storage:     c.get("syntax.storage"),
		Function:    c.get("syntax.function"),
		Method:      c.get("syntax.method"),
		String:      c.get("syntax.string"),
		Number:      c.get("syntax.number"),
		Constant:    c.get("syntax.constant"),
		Type:        c.get("syntax.type"),
		Class:       c.get("syntax.class"),
		Interface:   c.get("syntax.interface"),
		Variable:    c.get("syntax.variable"),
		Parameter:   c.get("syntax.parameter"),
		Property:    c.get("syntax.property"),
		Operator:    c.get("syntax.operator"),
		Punctuation: c.get("syntax.punctuation"),
		Tag:         c.get("syntax.tag"),
		Builtin:     c.get("syntax.builtin"),
		Escape:      c.get("syntax.escape"),
		Namespace:   c.get("syntax.namespace"),
		Decorator:   c.get("syntax.decorator"),
		Invalid:     c.get("syntax.invalid"),
		Comment:     c.get("syntax.comment"),
		DocComment:  c.get("syntax.doc_comment"),
		Regex:       c.get("syntax.regex"),
		Heading:     c.get("syntax.heading"),
		Link:        c.get("syntax.link"),
		InlineCode:  c.get("syntax.inline_code"),
		Quote:       c.get("syntax.quote"),
	}

	p.Adaptive = make(map[Component]string, componentCount)
	for _, comp := range Components() {
		s, ok := ShadeFor(t, comp)
		if !ok {
			c.missing = append(c.missing, fmt.Sprintf("adaptive %s/%s", t, comp))
			continue
		}
		bg := c.get(s.Token)
		if bg == "" || s.Deepen == 0 {
			p.Adaptive[comp] = bg
			continue
		}
		var err error
		if t.IsLight() {
			bg, err = hexcolor.Lighten(bg, s.Deepen)
		} else {
			bg, err = hexcolor.Darken(bg, s.Deepen)
		}
		if err != nil {
			return nil, fmt.Errorf("adaptive %s/%s: %w", t, comp, err)
		}
		p.Adaptive[comp] = bg
	}

	if len(c.missing) > 0 {
		return nil, fmt.Errorf("assemble %s: %s: %w", v, strings.Join(c.missing, ", "), ErrMissingToken)
	}
	return p, nil
}
