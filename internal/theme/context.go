package theme

import (
	"fmt"
	"sync"

	"github.com/tokyo-night-lod/tnl/internal/palette"
)

// Context parameterizes the section builders for one variant. It is never
// modified after construction.
type Context struct {
	Variant     palette.Variant
	Type        palette.ThemeType
	DisplayName string
	Palette     *palette.Palette
}

func NewContext(p *palette.Palette) *Context {
	return &Context{
		Variant:     p.Variant,
		Type:        p.Type,
		DisplayName: p.Name,
		Palette:     p,
	}
}

// DocumentType is the VS Code theme type: light or dark.
func (c *Context) DocumentType() string {
	if c.Type.IsLight() {
		return "light"
	}
	return "dark"
}

var (
	defaultOnce sync.Once
	defaultCtx  *Context
)

// DefaultContext is the context of the primary dark variant. Builders called
// with a nil context use it.
func DefaultContext() *Context {
	defaultOnce.Do(func() {
		p, err := palette.Adapt(palette.VariantNight)
		if err != nil {
			panic(fmt.Sprintf("theme: default palette: %v", err))
		}
		defaultCtx = NewContext(p)
	})
	return defaultCtx
}

func resolve(ctx *Context) *palette.Palette {
	if ctx == nil {
		return DefaultContext().Palette
	}
	return ctx.Palette
}
