package palette

import "github.com/tokyo-night-lod/tnl/internal/hexcolor"

var defaultRegistry = newDefaultRegistry()

// DefaultRegistry returns the formulas every built-in variant is generated
// from. The registry must not be modified.
func DefaultRegistry() *Registry { return defaultRegistry }

func base(pick func(Base) string) Formula {
	return func(r *Resolver) string { return pick(r.Base()) }
}

func alias(name string) Formula {
	return func(r *Resolver) string { return r.Token(name) }
}

// readable keeps syntax colors at large-text contrast against the editor.
func readable(pick func(Base) string) Formula {
	return func(r *Resolver) string {
		return r.EnsureContrast(pick(r.Base()), r.Token("bg.base"), hexcolor.MinContrastLarge)
	}
}

func newDefaultRegistry() *Registry {
	g := NewRegistry()
	registerSurfaces(g)
	registerAccents(g)
	registerStatus(g)
	registerGit(g)
	registerGuides(g)
	registerTerminal(g)
	registerSyntax(g)
	return g
}

func registerSurfaces(g *Registry) {
	g.Register("bg.base", base(func(b Base) string { return b.Bg }))
	g.Register("bg.dark", base(func(b Base) string { return b.BgDark }))
	g.Register("bg.highlight", base(func(b Base) string { return b.BgHighlight }))
	g.Register("bg.sunken", func(r *Resolver) string {
		return r.Mix(r.Token("bg.base"), r.Token("bg.dark"), r.Intensity().Surface.Sunken)
	})
	g.Register("bg.deep", func(r *Resolver) string {
		return r.Deepen(r.Token("bg.dark"), r.Intensity().Surface.Deep)
	})
	g.Register("bg.raised", func(r *Resolver) string {
		return r.Mix(r.Token("bg.base"), r.Token("bg.highlight"), r.Intensity().Surface.Raised)
	})
	g.Register("bg.hover", func(r *Resolver) string {
		return r.Mix(r.Token("bg.dark"), r.Token("bg.highlight"), r.Intensity().Surface.Hover)
	})
	g.Register("bg.active", func(r *Resolver) string {
		return r.Mix(r.Token("bg.base"), r.Token("bg.highlight"), r.Intensity().Surface.Active)
	})
	g.Register("bg.float", func(r *Resolver) string {
		return r.Mix(r.Token("bg.dark"), r.Token("bg.sunken"), 0.5)
	})
	g.Register("bg.line", func(r *Resolver) string {
		return r.Mix(r.Token("bg.base"), r.Token("bg.highlight"), r.Intensity().Surface.Highlight)
	})
	g.Register("bg.shadow", func(r *Resolver) string {
		return r.Alpha(hexcolor.Black, r.Intensity().Surface.Shadow)
	})

	g.Register("text.primary", base(func(b Base) string { return b.Fg }))
	g.Register("text.secondary", base(func(b Base) string { return b.FgDark }))
	g.Register("text.muted", func(r *Resolver) string {
		return r.Mix(r.Token("text.secondary"), r.Token("bg.base"), r.Intensity().Text.Muted)
	})
	g.Register("text.subtle", func(r *Resolver) string {
		return r.Mix(r.Token("text.secondary"), r.Token("bg.base"), r.Intensity().Text.Subtle)
	})
	g.Register("text.faint", func(r *Resolver) string {
		return r.Mix(r.Base().Dark5, r.Token("bg.base"), r.Intensity().Text.Faint)
	})
	g.Register("text.gutter", base(func(b Base) string { return b.FgGutter }))
	g.Register("text.line_number_active", base(func(b Base) string { return b.Dark5 }))
	g.Register("text.inverse", func(r *Resolver) string {
		return r.Pick(r.Token("bg.dark"), hexcolor.White)
	})

	g.Register("border.default", func(r *Resolver) string {
		return r.Deepen(r.Token("bg.dark"), r.Intensity().Border.Default)
	})
	g.Register("border.subtle", func(r *Resolver) string {
		return r.Mix(r.Token("bg.base"), r.Token("bg.highlight"), r.Intensity().Border.Subtle)
	})
	g.Register("border.strong", func(r *Resolver) string {
		return r.Mix(r.Token("bg.highlight"), r.Token("text.gutter"), r.Intensity().Border.Strong)
	})
	g.Register("border.separator", func(r *Resolver) string {
		return r.Mix(r.Token("bg.dark"), r.Token("border.default"), 0.5)
	})
	g.Register("border.focus", func(r *Resolver) string {
		return r.Alpha(r.Base().Blue0, r.Intensity().Accent.Focus)
	})
}

func registerAccents(g *Registry) {
	g.Register("accent.primary", base(func(b Base) string { return b.Blue }))
	g.Register("accent.secondary", base(func(b Base) string { return b.Magenta }))
	g.Register("accent.tertiary", base(func(b Base) string { return b.Cyan }))
	g.Register("accent.link", base(func(b Base) string { return b.Blue1 }))
	g.Register("accent.hover", func(r *Resolver) string {
		return r.Alpha(r.Token("accent.primary"), r.Intensity().Accent.Hover)
	})
	g.Register("accent.muted", func(r *Resolver) string {
		return r.Alpha(r.Token("accent.primary"), r.Intensity().Accent.Muted)
	})
	g.Register("accent.subtle", func(r *Resolver) string {
		return r.Alpha(r.Base().Blue0, r.Intensity().Accent.Subtle)
	})
	g.Register("accent.button", func(r *Resolver) string {
		b := r.Base()
		return r.Pick(b.Blue0, r.Darken(b.Blue, 0.15))
	})
	g.Register("accent.button_hover", func(r *Resolver) string {
		btn := r.Token("accent.button")
		return r.Pick(r.Lighten(btn, 0.1), r.Darken(btn, 0.1))
	})
	g.Register("accent.button_foreground", func(r *Resolver) string {
		return r.EnsureContrast(hexcolor.White, r.Token("accent.button"), hexcolor.MinContrastAA)
	})
	g.Register("accent.badge", func(r *Resolver) string {
		return r.Pick(r.Base().Blue0, r.Token("accent.button"))
	})
	g.Register("accent.badge_foreground", func(r *Resolver) string {
		return r.EnsureContrast(r.Pick(r.Token("text.primary"), hexcolor.White), r.Token("accent.badge"), hexcolor.MinContrastAA)
	})
	g.Register("accent.secondary_button", func(r *Resolver) string {
		return r.Token("bg.highlight")
	})
	g.Register("accent.secondary_button_hover", func(r *Resolver) string {
		return r.Mix(r.Token("bg.highlight"), r.Token("text.gutter"), 0.3)
	})

	g.Register("selection.background", func(r *Resolver) string {
		return r.Alpha(r.Pick(r.Base().Blue0, r.Base().Blue), r.Intensity().Selection.Background)
	})
	g.Register("selection.inactive", func(r *Resolver) string {
		return r.Alpha(r.Pick(r.Base().Blue0, r.Base().Blue), r.Intensity().Selection.Inactive)
	})
	g.Register("selection.word", func(r *Resolver) string {
		return r.Alpha(r.Base().Comment, r.Intensity().Selection.Word)
	})
	g.Register("selection.word_strong", func(r *Resolver) string {
		return r.Alpha(r.Base().Comment, r.Intensity().Selection.WordStrong)
	})
	g.Register("selection.find_match", func(r *Resolver) string {
		return r.Alpha(r.Base().Blue0, r.Intensity().Selection.FindMatch)
	})
	g.Register("selection.find_highlight", func(r *Resolver) string {
		return r.Alpha(r.Base().Yellow, r.Intensity().Selection.FindHighlight)
	})
	g.Register("selection.find_range", func(r *Resolver) string {
		return r.Alpha(r.Token("accent.primary"), r.Intensity().Selection.FindRange)
	})
	g.Register("selection.list", func(r *Resolver) string {
		return r.Mix(r.Token("bg.highlight"), r.Base().Blue0, r.Intensity().Accent.Muted)
	})
	g.Register("selection.list_inactive", func(r *Resolver) string {
		return r.Mix(r.Token("bg.raised"), r.Base().Blue0, r.Intensity().Accent.Hover)
	})
}

func registerStatus(g *Registry) {
	g.Register("status.error", base(func(b Base) string { return b.Red1 }))
	g.Register("status.warning", base(func(b Base) string { return b.Yellow }))
	g.Register("status.info", base(func(b Base) string { return b.Blue1 }))
	g.Register("status.hint", base(func(b Base) string { return b.Teal }))
	g.Register("status.success", base(func(b Base) string { return b.Green }))

	for _, kind := range []string{"error", "warning", "info"} {
		src := "status." + kind
		g.Register(src+"_background", func(r *Resolver) string {
			return r.Alpha(r.Token(src), r.Intensity().Status.Background)
		})
		g.Register(src+"_border", func(r *Resolver) string {
			return r.Alpha(r.Token(src), r.Intensity().Status.Border)
		})
	}
}

func registerGit(g *Registry) {
	dim := func(pick func(Base) string) Formula {
		return func(r *Resolver) string {
			return r.Mix(pick(r.Base()), r.Token("bg.base"), r.Intensity().Git.Dim)
		}
	}
	g.Register("git.added", dim(func(b Base) string { return b.Teal }))
	g.Register("git.modified", dim(func(b Base) string { return b.Blue }))
	g.Register("git.untracked", dim(func(b Base) string { return b.Green1 }))
	g.Register("git.renamed", dim(func(b Base) string { return b.Cyan }))
	g.Register("git.staged", dim(func(b Base) string { return b.Green }))
	g.Register("git.submodule", dim(func(b Base) string { return b.Magenta }))
	g.Register("git.ignored", dim(func(b Base) string { return b.Comment }))
	g.Register("git.deleted", func(r *Resolver) string {
		return r.Mix(r.Base().Red1, r.Token("bg.base"), r.Intensity().Git.Deleted)
	})
	g.Register("git.conflict", func(r *Resolver) string {
		return r.Mix(r.Base().Yellow, r.Token("bg.base"), r.Intensity().Git.Dim/2)
	})

	g.Register("diff.inserted", func(r *Resolver) string {
		return r.Alpha(r.Base().Green1, r.Intensity().Diff.Inserted)
	})
	g.Register("diff.removed", func(r *Resolver) string {
		return r.Alpha(r.Base().Red1, r.Intensity().Diff.Removed)
	})
	g.Register("diff.inserted_line", func(r *Resolver) string {
		return r.Alpha(r.Base().Green1, r.Intensity().Diff.InsertedLine)
	})
	g.Register("diff.removed_line", func(r *Resolver) string {
		return r.Alpha(r.Base().Red1, r.Intensity().Diff.RemovedLine)
	})
	g.Register("diff.inserted_gutter", alias("git.added"))
	g.Register("diff.removed_gutter", alias("git.deleted"))
	g.Register("diff.diagonal", func(r *Resolver) string {
		return r.Alpha(r.Token("text.gutter"), r.Intensity().Diff.Merge)
	})

	merge := func(pick func(Base) string, content bool) Formula {
		return func(r *Resolver) string {
			a := r.Intensity().Diff.Merge
			if content {
				a = r.Intensity().Diff.MergeContent
			}
			return r.Alpha(pick(r.Base()), a)
		}
	}
	g.Register("merge.current_header", merge(func(b Base) string { return b.Green1 }, false))
	g.Register("merge.current_content", merge(func(b Base) string { return b.Green1 }, true))
	g.Register("merge.incoming_header", merge(func(b Base) string { return b.Blue }, false))
	g.Register("merge.incoming_content", merge(func(b Base) string { return b.Blue }, true))
	g.Register("merge.common_header", merge(func(b Base) string { return b.Comment }, false))
	g.Register("merge.common_content", merge(func(b Base) string { return b.Comment }, true))
}

func registerGuides(g *Registry) {
	g.Register("guide.indent", func(r *Resolver) string {
		return r.Mix(r.Token("bg.highlight"), r.Token("bg.base"), r.Intensity().Guide.Indent)
	})
	g.Register("guide.indent_active", func(r *Resolver) string {
		return r.Mix(r.Token("text.gutter"), r.Token("bg.base"), 1-r.Intensity().Guide.IndentActive)
	})
	g.Register("guide.whitespace", func(r *Resolver) string {
		return r.Mix(r.Token("text.gutter"), r.Token("bg.base"), r.Intensity().Guide.Whitespace/2)
	})
	g.Register("guide.ruler", func(r *Resolver) string {
		return r.Mix(r.Token("bg.highlight"), r.Token("bg.base"), 0.3)
	})
	g.Register("guide.bracket_match", func(r *Resolver) string {
		return r.Alpha(r.Token("accent.primary"), r.Intensity().Guide.Bracket)
	})
	g.Register("guide.scrollbar", func(r *Resolver) string {
		return r.Alpha(r.Base().Comment, r.Intensity().Guide.Scrollbar)
	})
	g.Register("guide.scrollbar_hover", func(r *Resolver) string {
		return r.Alpha(r.Base().Comment, r.Intensity().Guide.Scrollbar*1.5)
	})
	g.Register("guide.scrollbar_active", func(r *Resolver) string {
		return r.Alpha(r.Base().Comment, r.Intensity().Guide.Scrollbar*2)
	})

	brackets := []func(Base) string{
		func(b Base) string { return b.Blue },
		func(b Base) string { return b.Cyan },
		func(b Base) string { return b.Purple },
		func(b Base) string { return b.Blue1 },
		func(b Base) string { return b.Green },
		func(b Base) string { return b.Yellow },
	}
	for i, pick := range brackets {
		pick := pick
		g.Register(bracketToken(i), func(r *Resolver) string {
			return r.Mix(pick(r.Base()), r.Token("bg.base"), 0.15)
		})
	}
	g.Register("bracket.unexpected", alias("status.error"))
}

func bracketToken(i int) string {
	return "bracket." + string(rune('1'+i))
}

var terminalNames = [8]string{"black", "red", "green", "yellow", "blue", "magenta", "cyan", "white"}

func registerTerminal(g *Registry) {
	normal := [8]func(Base) string{
		func(b Base) string { return b.TerminalBlack },
		func(b Base) string { return b.Red },
		func(b Base) string { return b.Green },
		func(b Base) string { return b.Yellow },
		func(b Base) string { return b.Blue },
		func(b Base) string { return b.Magenta },
		func(b Base) string { return b.Cyan },
		func(b Base) string { return b.FgDark },
	}
	for i, pick := range normal {
		g.Register("terminal."+terminalNames[i], base(pick))
	}
	for i := range normal {
		src := "terminal." + terminalNames[i]
		if terminalNames[i] == "white" {
			g.Register("terminal.bright_white", alias("text.primary"))
			continue
		}
		g.Register("terminal.bright_"+terminalNames[i], func(r *Resolver) string {
			c, amount := r.Token(src), r.Intensity().Terminal.Bright
			return r.Pick(r.Lighten(c, amount), r.Darken(c, amount))
		})
	}
}

func registerSyntax(g *Registry) {
	g.Register("syntax.keyword", readable(func(b Base) string { return b.Magenta }))
	g.Register("syntax.storage", readable(func(b Base) string { return b.Purple }))
	g.Register("syntax.function", readable(func(b Base) string { return b.Blue }))
	g.Register("syntax.string", readable(func(b Base) string { return b.Green }))
	g.Register("syntax.number", readable(func(b Base) string { return b.Orange }))
	g.Register("syntax.constant", readable(func(b Base) string { return b.Orange }))
	g.Register("syntax.type", readable(func(b Base) string { return b.Blue1 }))
	g.Register("syntax.variable", readable(func(b Base) string { return b.Fg }))
	g.Register("syntax.parameter", readable(func(b Base) string { return b.Yellow }))
	g.Register("syntax.property", readable(func(b Base) string { return b.Green1 }))
	g.Register("syntax.operator", readable(func(b Base) string { return b.Blue5 }))
	g.Register("syntax.tag", readable(func(b Base) string { return b.Red }))
	g.Register("syntax.builtin", readable(func(b Base) string { return b.Red }))
	g.Register("syntax.escape", readable(func(b Base) string { return b.Magenta }))
	g.Register("syntax.namespace", readable(func(b Base) string { return b.Cyan }))
	g.Register("syntax.decorator", readable(func(b Base) string { return b.Blue1 }))
	g.Register("syntax.invalid", readable(func(b Base) string { return b.Magenta2 }))
	g.Register("syntax.comment", readable(func(b Base) string { return b.Comment }))
	g.Register("syntax.heading", readable(func(b Base) string { return b.Blue }))
	g.Register("syntax.link", readable(func(b Base) string { return b.Teal }))
	g.Register("syntax.inline_code", readable(func(b Base) string { return b.Green1 }))
	g.Register("syntax.class", alias("syntax.type"))
	g.Register("syntax.method", alias("syntax.function"))
	g.Register("syntax.interface", func(r *Resolver) string {
		return r.Mix(r.Token("syntax.type"), r.Token("text.primary"), 0.3)
	})
	g.Register("syntax.punctuation", func(r *Resolver) string {
		return r.Mix(r.Token("syntax.operator"), r.Token("text.secondary"), r.Intensity().Syntax.Punctuation)
	})
	g.Register("syntax.doc_comment", func(r *Resolver) string {
		return r.Mix(r.Token("syntax.comment"), r.Token("text.secondary"), r.Intensity().Syntax.DocComment)
	})
	g.Register("syntax.regex", func(r *Resolver) string {
		return r.Mix(r.Base().Cyan, r.Base().Blue5, r.Intensity().Syntax.Regex)
	})
	g.Register("syntax.quote", func(r *Resolver) string {
		return r.Mix(r.Token("syntax.comment"), r.Token("text.secondary"), 0.5)
	})
}
