package palette

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

var ErrInvalidIntensity = errors.New("invalid intensity")

// Intensity holds the blend ratios and alpha levels consumed by the token
// formulas. Every value is in [0,1]. The mapstructure tags match the
// `intensity` section of the config file.
type Intensity struct {
	Surface   SurfaceIntensity   `mapstructure:"surface"`
	Text      TextIntensity      `mapstructure:"text"`
	Border    BorderIntensity    `mapstructure:"border"`
	Accent    AccentIntensity    `mapstructure:"accent"`
	Selection SelectionIntensity `mapstructure:"selection"`
	Status    StatusIntensity    `mapstructure:"status"`
	Git       GitIntensity       `mapstructure:"git"`
	Diff      DiffIntensity      `mapstructure:"diff"`
	Guide     GuideIntensity     `mapstructure:"guide"`
	Terminal  TerminalIntensity  `mapstructure:"terminal"`
	Syntax    SyntaxIntensity    `mapstructure:"syntax"`
}

type SurfaceIntensity struct {
	Sunken    float64 `mapstructure:"sunken"`
	Deep      float64 `mapstructure:"deep"`
	Raised    float64 `mapstructure:"raised"`
	Highlight float64 `mapstructure:"highlight"`
	Hover     float64 `mapstructure:"hover"`
	Active    float64 `mapstructure:"active"`
	Shadow    float64 `mapstructure:"shadow"`
}

type TextIntensity struct {
	Muted  float64 `mapstructure:"muted"`
	Subtle float64 `mapstructure:"subtle"`
	Faint  float64 `mapstructure:"faint"`
}

type BorderIntensity struct {
	Subtle  float64 `mapstructure:"subtle"`
	Default float64 `mapstructure:"default"`
	Strong  float64 `mapstructure:"strong"`
}

type AccentIntensity struct {
	Hover  float64 `mapstructure:"hover"`
	Muted  float64 `mapstructure:"muted"`
	Subtle float64 `mapstructure:"subtle"`
	Focus  float64 `mapstructure:"focus"`
}

type SelectionIntensity struct {
	Background    float64 `mapstructure:"background"`
	Inactive      float64 `mapstructure:"inactive"`
	Word          float64 `mapstructure:"word"`
	WordStrong    float64 `mapstructure:"word_strong"`
	FindMatch     float64 `mapstructure:"find_match"`
	FindHighlight float64 `mapstructure:"find_highlight"`
	FindRange     float64 `mapstructure:"find_range"`
}

type StatusIntensity struct {
	Background float64 `mapstructure:"background"`
	Border     float64 `mapstructure:"border"`
}

type GitIntensity struct {
	Dim     float64 `mapstructure:"dim"`
	Deleted float64 `mapstructure:"deleted"`
}

type DiffIntensity struct {
	Inserted     float64 `mapstructure:"inserted"`
	Removed      float64 `mapstructure:"removed"`
	InsertedLine float64 `mapstructure:"inserted_line"`
	RemovedLine  float64 `mapstructure:"removed_line"`
	Merge        float64 `mapstructure:"merge"`
	MergeContent float64 `mapstructure:"merge_content"`
}

type GuideIntensity struct {
	Indent       float64 `mapstructure:"indent"`
	IndentActive float64 `mapstructure:"indent_active"`
	Whitespace   float64 `mapstructure:"whitespace"`
	Bracket      float64 `mapstructure:"bracket"`
	Scrollbar    float64 `mapstructure:"scrollbar"`
}

type TerminalIntensity struct {
	Bright float64 `mapstructure:"bright"`
}

type SyntaxIntensity struct {
	Punctuation float64 `mapstructure:"punctuation"`
	DocComment  float64 `mapstructure:"doc_comment"`
	Regex       float64 `mapstructure:"regex"`
}

// DefaultIntensity is the tuning used by the dark variants.
func DefaultIntensity() Intensity {
	return Intensity{
		Surface: SurfaceIntensity{
			Sunken:    0.85,
			Deep:      0.12,
			Raised:    0.35,
			Highlight: 0.55,
			Hover:     0.35,
			Active:    0.6,
			Shadow:    0.3,
		},
		Text: TextIntensity{
			Muted:  0.3,
			Subtle: 0.45,
			Faint:  0.6,
		},
		Border: BorderIntensity{
			Subtle:  0.5,
			Default: 0.25,
			Strong:  0.8,
		},
		Accent: AccentIntensity{
			Hover:  0.12,
			Muted:  0.2,
			Subtle: 0.35,
			Focus:  0.6,
		},
		Selection: SelectionIntensity{
			Background:    0.35,
			Inactive:      0.18,
			Word:          0.25,
			WordStrong:    0.4,
			FindMatch:     0.5,
			FindHighlight: 0.2,
			FindRange:     0.12,
		},
		Status: StatusIntensity{
			Background: 0.1,
			Border:     0.5,
		},
		Git: GitIntensity{
			Dim:     0.35,
			Deleted: 0.4,
		},
		Diff: DiffIntensity{
			Inserted:     0.15,
			Removed:      0.15,
			InsertedLine: 0.08,
			RemovedLine:  0.1,
			Merge:        0.25,
			MergeContent: 0.1,
		},
		Guide: GuideIntensity{
			Indent:       0.6,
			IndentActive: 0.7,
			Whitespace:   0.8,
			Bracket:      0.15,
			Scrollbar:    0.25,
		},
		Terminal: TerminalIntensity{
			Bright: 0.08,
		},
		Syntax: SyntaxIntensity{
			Punctuation: 0.3,
			DocComment:  0.25,
			Regex:       0.3,
		},
	}
}

// LightIntensity keeps translucent overlays readable on light backgrounds.
func LightIntensity() Intensity {
	i := DefaultIntensity()
	i.Selection.Background = 0.25
	i.Selection.Inactive = 0.12
	i.Selection.Word = 0.18
	i.Selection.FindMatch = 0.35
	i.Diff.Inserted = 0.2
	i.Diff.Removed = 0.2
	i.Terminal.Bright = 0
	return i
}

// ContrastIntensity deepens surface separation.
func ContrastIntensity() Intensity {
	i := DefaultIntensity()
	i.Surface.Deep = 0.3
	i.Border.Strong = 1
	i.Text.Muted = 0.2
	i.Text.Subtle = 0.3
	i.Text.Faint = 0.45
	i.Selection.Background = 0.5
	return i
}

// Values flattens the configuration to group.name keys.
func (i *Intensity) Values() map[string]*float64 {
	return map[string]*float64{
		"surface.sunken":           &i.Surface.Sunken,
		"surface.deep":             &i.Surface.Deep,
		"surface.raised":           &i.Surface.Raised,
		"surface.highlight":        &i.Surface.Highlight,
		"surface.hover":            &i.Surface.Hover,
		"surface.active":           &i.Surface.Active,
		"surface.shadow":           &i.Surface.Shadow,
		"text.muted":               &i.Text.Muted,
		"text.subtle":              &i.Text.Subtle,
		"text.faint":               &i.Text.Faint,
		"border.subtle":            &i.Border.Subtle,
		"border.default":           &i.Border.Default,
		"border.strong":            &i.Border.Strong,
		"accent.hover":             &i.Accent.Hover,
		"accent.muted":             &i.Accent.Muted,
		"accent.subtle":            &i.Accent.Subtle,
		"accent.focus":             &i.Accent.Focus,
		"selection.background":     &i.Selection.Background,
		"selection.inactive":       &i.Selection.Inactive,
		"selection.word":           &i.Selection.Word,
		"selection.word_strong":    &i.Selection.WordStrong,
		"selection.find_match":     &i.Selection.FindMatch,
		"selection.find_highlight": &i.Selection.FindHighlight,
		"selection.find_range":     &i.Selection.FindRange,
		"status.background":        &i.Status.Background,
		"status.border":            &i.Status.Border,
		"git.dim":                  &i.Git.Dim,
		"git.deleted":              &i.Git.Deleted,
		"diff.inserted":            &i.Diff.Inserted,
		"diff.removed":             &i.Diff.Removed,
		"diff.inserted_line":       &i.Diff.InsertedLine,
		"diff.removed_line":        &i.Diff.RemovedLine,
		"diff.merge":               &i.Diff.Merge,
		"diff.merge_content":       &i.Diff.MergeContent,
		"guide.indent":             &i.Guide.Indent,
		"guide.indent_active":      &i.Guide.IndentActive,
		"guide.whitespace":         &i.Guide.Whitespace,
		"guide.bracket":            &i.Guide.Bracket,
		"guide.scrollbar":          &i.Guide.Scrollbar,
		"terminal.bright":          &i.Terminal.Bright,
		"syntax.punctuation":       &i.Syntax.Punctuation,
		"syntax.doc_comment":       &i.Syntax.DocComment,
		"syntax.regex":             &i.Syntax.Regex,
	}
}

func (i Intensity) Validate() error {
	values := i.Values()
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		v := *values[k]
		if math.IsNaN(v) || v < 0 || v > 1 {
			return fmt.Errorf("%s = %v (want 0..1): %w", k, v, ErrInvalidIntensity)
		}
	}
	return nil
}

// Set assigns one group.name value, validating the key and range.
func (i *Intensity) Set(key string, v float64) error {
	ptr, ok := i.Values()[key]
	if !ok {
		return fmt.Errorf("unknown intensity key %q: %w", key, ErrInvalidIntensity)
	}
	if math.IsNaN(v) || v < 0 || v > 1 {
		return fmt.Errorf("%s = %v (want 0..1): %w", key, v, ErrInvalidIntensity)
	}
	*ptr = v
	return nil
}
