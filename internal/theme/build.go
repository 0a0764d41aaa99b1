package theme

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/tokyo-night-lod/tnl/internal/palette"
)

type BuildOptions struct {
	CheckOverlap bool
	// Palette returns the adapt options of a variant. Nil means defaults.
	Palette func(v palette.Variant) []palette.Option
}

// Result is one built theme together with the data it was built from.
type Result struct {
	Context  *Context
	Document *Document
	Overlaps []Overlap
}

// Slug is the file name stem of the theme.
func (r *Result) Slug() string {
	return r.Context.Variant.Slug()
}

// Build assembles the theme document of ctx. A nil ctx builds the default
// dark variant.
func Build(ctx *Context, opts BuildOptions) (*Result, error) {
	if ctx == nil {
		ctx = DefaultContext()
	}
	p := ctx.Palette

	tokenColors, err := TokenColors(StyleGroups(p))
	if err != nil {
		return nil, fmt.Errorf("build %s: %w", ctx.Variant, err)
	}
	semantic, err := SemanticTokenColors(SemanticGroups(p))
	if err != nil {
		return nil, fmt.Errorf("build %s: %w", ctx.Variant, err)
	}

	comp := Compose(Fragments(ctx), ComposeOptions{CheckOverlap: opts.CheckOverlap})
	doc := &Document{
		Schema:               Schema,
		Name:                 ctx.DisplayName,
		Type:                 ctx.DocumentType(),
		SemanticHighlighting: true,
		Colors:               comp.Colors,
		TokenColors:          tokenColors,
		SemanticTokenColors:  semantic,
	}
	return &Result{Context: ctx, Document: doc, Overlaps: comp.Overlaps}, nil
}

// BuildVariant adapts the palette of v and builds its theme.
func BuildVariant(v palette.Variant, opts BuildOptions) (*Result, error) {
	var popts []palette.Option
	if opts.Palette != nil {
		popts = opts.Palette(v)
	}
	p, err := palette.Adapt(v, popts...)
	if err != nil {
		return nil, err
	}
	return Build(NewContext(p), opts)
}

// BuildAll builds every variant concurrently. Results keep the order of
// variants; the first failure cancels the rest.
func BuildAll(ctx context.Context, variants []palette.Variant, opts BuildOptions) ([]*Result, error) {
	results := make([]*Result, len(variants))
	g, gctx := errgroup.WithContext(ctx)
	for i, v := range variants {
		i, v := i, v
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			r, err := BuildVariant(v, opts)
			if err != nil {
				return err
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
