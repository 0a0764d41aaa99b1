package theme

import (
	"fmt"

	"github.com/tokyo-night-lod/tnl/internal/palette"
)

func EditorColors(ctx *Context) map[string]string {
	p := resolve(ctx)
	colors := map[string]string{
		"editor.background":                                   p.Background(palette.ComponentEditor),
		"editor.foreground":                                   p.Text.Secondary,
		"editor.lineHighlightBackground":                      p.Bg.Line,
		"editor.selectionBackground":                          p.Selection.Background,
		"editor.inactiveSelectionBackground":                  p.Selection.Inactive,
		"editor.selectionHighlightBackground":                 p.Selection.Word,
		"editor.wordHighlightBackground":                      p.Selection.Word,
		"editor.wordHighlightStrongBackground":                p.Selection.WordStrong,
		"editor.findMatchBackground":                          p.Selection.FindMatch,
		"editor.findMatchHighlightBackground":                 p.Selection.FindHighlight,
		"editor.findRangeHighlightBackground":                 p.Selection.FindRange,
		"editor.rangeHighlightBackground":                     p.Accent.Hover,
		"editor.foldBackground":                               p.Selection.Inactive,
		"editorCursor.foreground":                             p.Text.Primary,
		"editorLink.activeForeground":                         p.Accent.Link,
		"editorWhitespace.foreground":                         p.Guide.Whitespace,
		"editorIndentGuide.background1":                       p.Guide.Indent,
		"editorIndentGuide.activeBackground1":                 p.Guide.IndentActive,
		"editorRuler.foreground":                              p.Guide.Ruler,
		"editorCodeLens.foreground":                           p.Text.Subtle,
		"editorLightBulb.foreground":                          p.Status.Warning,
		"editorLightBulbAutoFix.foreground":                   p.Status.Success,
		"editorInlayHint.foreground":                          p.Text.Subtle,
		"editorInlayHint.background":                          p.Bg.Raised,
		"editorBracketMatch.background":                       p.Guide.BracketMatch,
		"editorBracketMatch.border":                           p.Border.Strong,
		"editorBracketHighlight.unexpectedBracket.foreground": p.Brackets.Unexpected,
		"editorError.foreground":                              p.Status.Error,
		"editorWarning.foreground":                            p.Status.Warning,
		"editorInfo.foreground":                               p.Status.Info,
		"editorHint.foreground":                               p.Status.Hint,
		"editorOverviewRuler.border":                          p.Border.Default,
		"editorOverviewRuler.errorForeground":                 p.Status.Error,
		"editorOverviewRuler.warningForeground":               p.Status.Warning,
		"editorOverviewRuler.infoForeground":                  p.Status.Info,
		"editorOverviewRuler.findMatchForeground":             p.Selection.FindMatch,
		"editorOverviewRuler.selectionHighlightForeground":    p.Selection.Word,
		"editorOverviewRuler.bracketMatchForeground":          p.Border.Strong,
	}
	for i, c := range p.Brackets.Colors {
		colors[fmt.Sprintf("editorBracketHighlight.foreground%d", i+1)] = c
	}
	return colors
}

func GutterColors(ctx *Context) map[string]string {
	p := resolve(ctx)
	return map[string]string{
		"editorGutter.background":                p.Background(palette.ComponentEditor),
		"editorLineNumber.foreground":            p.Text.Gutter,
		"editorLineNumber.activeForeground":      p.Text.LineNumberActive,
		"editorGutter.addedBackground":           p.Git.Added,
		"editorGutter.modifiedBackground":        p.Git.Modified,
		"editorGutter.deletedBackground":         p.Git.Deleted,
		"editorGutter.foldingControlForeground":  p.Text.Subtle,
		"editorGutter.commentRangeForeground":    p.Text.Faint,
		"editorOverviewRuler.addedForeground":    p.Git.Added,
		"editorOverviewRuler.modifiedForeground": p.Git.Modified,
		"editorOverviewRuler.deletedForeground":  p.Git.Deleted,
	}
}

func WidgetColors(ctx *Context) map[string]string {
	p := resolve(ctx)
	widget := p.Background(palette.ComponentWidget)
	return map[string]string{
		"editorWidget.background":                      widget,
		"editorWidget.foreground":                      p.Text.Secondary,
		"editorWidget.border":                          p.Border.Default,
		"editorWidget.resizeBorder":                    p.Border.Strong,
		"editorSuggestWidget.background":               widget,
		"editorSuggestWidget.border":                   p.Border.Default,
		"editorSuggestWidget.foreground":               p.Text.Secondary,
		"editorSuggestWidget.selectedBackground":       p.Selection.List,
		"editorSuggestWidget.highlightForeground":      p.Accent.Primary,
		"editorSuggestWidget.focusHighlightForeground": p.Accent.Tertiary,
		"editorHoverWidget.background":                 widget,
		"editorHoverWidget.border":                     p.Border.Default,
		"editorHoverWidget.foreground":                 p.Text.Secondary,
		"editorHoverWidget.highlightForeground":        p.Accent.Primary,
		"editorHoverWidget.statusBarBackground":        p.Bg.Float,
		"editorStickyScroll.background":                p.Bg.Sunken,
		"editorStickyScrollHover.background":           p.Bg.Hover,
		"editorMarkerNavigation.background":            p.Bg.Float,
		"editorMarkerNavigationError.background":       p.Status.Error,
		"editorMarkerNavigationWarning.background":     p.Status.Warning,
		"editorMarkerNavigationInfo.background":        p.Status.Info,
		"quickInput.background":                        widget,
		"quickInput.foreground":                        p.Text.Secondary,
		"quickInputList.focusBackground":               p.Selection.List,
		"quickInputTitle.background":                   p.Bg.Float,
		"pickerGroup.foreground":                       p.Text.Primary,
		"pickerGroup.border":                           p.Border.Default,
		"widget.shadow":                                p.Bg.Shadow,
		"sash.hoverBorder":                             p.Border.Focus,
	}
}

func DiffColors(ctx *Context) map[string]string {
	p := resolve(ctx)
	return map[string]string{
		"diffEditor.insertedTextBackground":       p.Diff.Inserted,
		"diffEditor.removedTextBackground":        p.Diff.Removed,
		"diffEditor.insertedLineBackground":       p.Diff.InsertedLine,
		"diffEditor.removedLineBackground":        p.Diff.RemovedLine,
		"diffEditor.diagonalFill":                 p.Diff.Diagonal,
		"diffEditor.unchangedRegionBackground":    p.Bg.Sunken,
		"diffEditorGutter.insertedLineBackground": p.Diff.InsertedLine,
		"diffEditorGutter.removedLineBackground":  p.Diff.RemovedLine,
		"diffEditorOverview.insertedForeground":   p.Diff.InsertedGutter,
		"diffEditorOverview.removedForeground":    p.Diff.RemovedGutter,
		"multiDiffEditor.headerBackground":        p.Bg.Dark,
		"multiDiffEditor.border":                  p.Border.Default,
	}
}

func MergeColors(ctx *Context) map[string]string {
	p := resolve(ctx)
	return map[string]string{
		"merge.currentHeaderBackground":                 p.Diff.MergeCurrentHeader,
		"merge.currentContentBackground":                p.Diff.MergeCurrentContent,
		"merge.incomingHeaderBackground":                p.Diff.MergeIncomingHeader,
		"merge.incomingContentBackground":               p.Diff.MergeIncomingContent,
		"merge.commonHeaderBackground":                  p.Diff.MergeCommonHeader,
		"merge.commonContentBackground":                 p.Diff.MergeCommonContent,
		"merge.border":                                  p.Border.Default,
		"editorOverviewRuler.currentContentForeground":  p.Diff.MergeCurrentHeader,
		"editorOverviewRuler.incomingContentForeground": p.Diff.MergeIncomingHeader,
		"editorOverviewRuler.commonContentForeground":   p.Diff.MergeCommonHeader,
		"mergeEditor.change.background":                 p.Diff.Inserted,
		"mergeEditor.conflict.unhandledFocused.border":  p.Git.Conflict,
		"mergeEditor.conflict.handledFocused.border":    p.Git.Added,
	}
}

func GitColors(ctx *Context) map[string]string {
	p := resolve(ctx)
	return map[string]string{
		"gitDecoration.addedResourceForeground":         p.Git.Added,
		"gitDecoration.modifiedResourceForeground":      p.Git.Modified,
		"gitDecoration.deletedResourceForeground":       p.Git.Deleted,
		"gitDecoration.untrackedResourceForeground":     p.Git.Untracked,
		"gitDecoration.renamedResourceForeground":       p.Git.Renamed,
		"gitDecoration.ignoredResourceForeground":       p.Git.Ignored,
		"gitDecoration.conflictingResourceForeground":   p.Git.Conflict,
		"gitDecoration.stageModifiedResourceForeground": p.Git.Staged,
		"gitDecoration.stageDeletedResourceForeground":  p.Git.Deleted,
		"gitDecoration.submoduleResourceForeground":     p.Git.Submodule,
		"scm.providerBorder":                            p.Border.Default,
	}
}

func PeekViewColors(ctx *Context) map[string]string {
	p := resolve(ctx)
	peek := p.Background(palette.ComponentPeekView)
	return map[string]string{
		"peekView.border":                         p.Border.Strong,
		"peekViewEditor.background":               peek,
		"peekViewEditor.matchHighlightBackground": p.Selection.FindMatch,
		"peekViewEditorGutter.background":         peek,
		"peekViewResult.background":               peek,
		"peekViewResult.fileForeground":           p.Text.Primary,
		"peekViewResult.lineForeground":           p.Text.Secondary,
		"peekViewResult.matchHighlightBackground": p.Selection.FindMatch,
		"peekViewResult.selectionBackground":      p.Selection.List,
		"peekViewResult.selectionForeground":      p.Text.Primary,
		"peekViewTitle.background":                p.Bg.Float,
		"peekViewTitleLabel.foreground":           p.Text.Primary,
		"peekViewTitleDescription.foreground":     p.Text.Subtle,
	}
}

func DebugColors(ctx *Context) map[string]string {
	p := resolve(ctx)
	return map[string]string{
		"debugToolBar.background":                     p.Bg.Float,
		"debugToolBar.border":                         p.Border.Default,
		"debugExceptionWidget.background":             p.Status.ErrorBackground,
		"debugExceptionWidget.border":                 p.Status.ErrorBorder,
		"editor.stackFrameHighlightBackground":        p.Status.WarningBackground,
		"editor.focusedStackFrameHighlightBackground": p.Status.InfoBackground,
		"debugIcon.breakpointForeground":              p.Status.Error,
		"debugIcon.breakpointDisabledForeground":      p.Text.Faint,
		"debugIcon.breakpointUnverifiedForeground":    p.Text.Subtle,
		"debugIcon.startForeground":                   p.Status.Success,
		"debugIcon.pauseForeground":                   p.Status.Warning,
		"debugIcon.stopForeground":                    p.Status.Error,
		"debugIcon.restartForeground":                 p.Status.Success,
		"debugIcon.continueForeground":                p.Accent.Primary,
		"debugIcon.stepOverForeground":                p.Accent.Primary,
		"debugIcon.stepIntoForeground":                p.Accent.Primary,
		"debugIcon.stepOutForeground":                 p.Accent.Primary,
		"debugConsole.infoForeground":                 p.Status.Info,
		"debugConsole.warningForeground":              p.Status.Warning,
		"debugConsole.errorForeground":                p.Status.Error,
		"debugConsole.sourceForeground":               p.Text.Secondary,
		"debugTokenExpression.name":                   p.Syntax.Property,
		"debugTokenExpression.value":                  p.Text.Secondary,
		"debugTokenExpression.string":                 p.Syntax.String,
		"debugTokenExpression.boolean":                p.Syntax.Constant,
		"debugTokenExpression.number":                 p.Syntax.Number,
		"debugTokenExpression.error":                  p.Status.Error,
	}
}

func ScrollbarColors(ctx *Context) map[string]string {
	p := resolve(ctx)
	return map[string]string{
		"scrollbar.shadow":                 p.Bg.Shadow,
		"scrollbarSlider.background":       p.Guide.Scrollbar,
		"scrollbarSlider.hoverBackground":  p.Guide.ScrollbarHover,
		"scrollbarSlider.activeBackground": p.Guide.ScrollbarActive,
		"minimap.background":               p.Background(palette.ComponentMinimap),
		"minimap.selectionHighlight":       p.Selection.Background,
		"minimap.findMatchHighlight":       p.Selection.FindMatch,
		"minimap.errorHighlight":           p.Status.ErrorBorder,
		"minimap.warningHighlight":         p.Status.WarningBorder,
		"minimapGutter.addedBackground":    p.Git.Added,
		"minimapGutter.modifiedBackground": p.Git.Modified,
		"minimapGutter.deletedBackground":  p.Git.Deleted,
		"minimapSlider.background":         p.Guide.Scrollbar,
		"minimapSlider.hoverBackground":    p.Guide.ScrollbarHover,
		"minimapSlider.activeBackground":   p.Guide.ScrollbarActive,
	}
}
