package theme

import "github.com/tokyo-night-lod/tnl/internal/palette"

// BaseColors covers the workbench-wide defaults that individual components
// fall back to.
func BaseColors(ctx *Context) map[string]string {
	p := resolve(ctx)
	return map[string]string{
		"foreground":                p.Text.Secondary,
		"descriptionForeground":     p.Text.Muted,
		"errorForeground":           p.Status.Error,
		"icon.foreground":           p.Text.Secondary,
		"focusBorder":               p.Border.Focus,
		"selection.background":      p.Selection.Background,
		"textLink.foreground":       p.Accent.Link,
		"textLink.activeForeground": p.Accent.Tertiary,
		"textBlockQuote.background": p.Bg.Sunken,
		"textBlockQuote.border":     p.Border.Strong,
		"textCodeBlock.background":  p.Bg.Sunken,
		"textPreformat.foreground":  p.Syntax.InlineCode,
		"textSeparator.foreground":  p.Border.Strong,
	}
}

func TabColors(ctx *Context) map[string]string {
	p := resolve(ctx)
	tabBar := p.Background(palette.ComponentTabBar)
	return map[string]string{
		"editorGroupHeader.tabsBackground":   tabBar,
		"editorGroupHeader.tabsBorder":       p.Border.Default,
		"editorGroupHeader.noTabsBackground": tabBar,
		"editorGroupHeader.border":           p.Border.Default,
		"editorGroup.border":                 p.Border.Default,
		"editorGroup.emptyBackground":        p.Background(palette.ComponentEditor),
		"editorGroup.dropBackground":         p.Accent.Muted,
		"tab.activeBackground":               p.Background(palette.ComponentTabActive),
		"tab.inactiveBackground":             p.Background(palette.ComponentTabInactive),
		"tab.activeForeground":               p.Text.Primary,
		"tab.inactiveForeground":             p.Text.Muted,
		"tab.hoverBackground":                p.Bg.Hover,
		"tab.hoverForeground":                p.Text.Primary,
		"tab.border":                         p.Border.Default,
		"tab.activeBorder":                   p.Accent.Primary,
		"tab.unfocusedActiveBorder":          p.Border.Strong,
		"tab.unfocusedActiveForeground":      p.Text.Secondary,
		"tab.unfocusedInactiveForeground":    p.Text.Subtle,
		"tab.unfocusedHoverBackground":       p.Bg.Hover,
		"tab.activeModifiedBorder":           p.Accent.Secondary,
		"tab.inactiveModifiedBorder":         p.Git.Modified,
		"tab.lastPinnedBorder":               p.Border.Strong,
	}
}

func StatusBarColors(ctx *Context) map[string]string {
	p := resolve(ctx)
	bg := p.Background(palette.ComponentStatusBar)
	return map[string]string{
		"statusBar.background":                   bg,
		"statusBar.foreground":                   p.Text.Muted,
		"statusBar.border":                       p.Border.Default,
		"statusBar.noFolderBackground":           bg,
		"statusBar.noFolderForeground":           p.Text.Muted,
		"statusBar.debuggingBackground":          p.Status.WarningBackground,
		"statusBar.debuggingForeground":          p.Text.Primary,
		"statusBar.focusBorder":                  p.Border.Focus,
		"statusBarItem.activeBackground":         p.Bg.Active,
		"statusBarItem.hoverBackground":          p.Bg.Hover,
		"statusBarItem.hoverForeground":          p.Text.Primary,
		"statusBarItem.compactHoverBackground":   p.Bg.Hover,
		"statusBarItem.focusBorder":              p.Border.Focus,
		"statusBarItem.prominentBackground":      p.Bg.Highlight,
		"statusBarItem.prominentForeground":      p.Text.Primary,
		"statusBarItem.prominentHoverBackground": p.Bg.Active,
		"statusBarItem.remoteBackground":         p.Accent.Button,
		"statusBarItem.remoteForeground":         p.Accent.ButtonForeground,
		"statusBarItem.errorBackground":          p.Status.Error,
		"statusBarItem.errorForeground":          p.Text.Inverse,
		"statusBarItem.warningBackground":        p.Status.Warning,
		"statusBarItem.warningForeground":        p.Text.Inverse,
	}
}

func ActivityBarColors(ctx *Context) map[string]string {
	p := resolve(ctx)
	return map[string]string{
		"activityBar.background":            p.Background(palette.ComponentActivityBar),
		"activityBar.foreground":            p.Text.Secondary,
		"activityBar.inactiveForeground":    p.Text.Subtle,
		"activityBar.border":                p.Border.Default,
		"activityBar.activeBorder":          p.Accent.Primary,
		"activityBar.activeFocusBorder":     p.Accent.Primary,
		"activityBar.dropBorder":            p.Accent.Primary,
		"activityBarBadge.background":       p.Accent.Badge,
		"activityBarBadge.foreground":       p.Accent.BadgeForeground,
		"activityBarTop.foreground":         p.Text.Secondary,
		"activityBarTop.inactiveForeground": p.Text.Subtle,
		"activityBarTop.activeBorder":       p.Accent.Primary,
	}
}

func SideBarColors(ctx *Context) map[string]string {
	p := resolve(ctx)
	bg := p.Background(palette.ComponentSideBar)
	return map[string]string{
		"sideBar.background":              bg,
		"sideBar.foreground":              p.Text.Muted,
		"sideBar.border":                  p.Border.Default,
		"sideBar.dropBackground":          p.Accent.Muted,
		"sideBarTitle.foreground":         p.Text.Secondary,
		"sideBarSectionHeader.background": bg,
		"sideBarSectionHeader.foreground": p.Text.Secondary,
		"sideBarSectionHeader.border":     p.Border.Default,
		"sideBarStickyScroll.background":  bg,
	}
}

func ListColors(ctx *Context) map[string]string {
	p := resolve(ctx)
	return map[string]string{
		"list.activeSelectionBackground":   p.Selection.List,
		"list.activeSelectionForeground":   p.Text.Primary,
		"list.inactiveSelectionBackground": p.Selection.ListInactive,
		"list.inactiveSelectionForeground": p.Text.Secondary,
		"list.focusBackground":             p.Selection.ListInactive,
		"list.focusForeground":             p.Text.Primary,
		"list.focusOutline":                p.Border.Focus,
		"list.hoverBackground":             p.Bg.Hover,
		"list.hoverForeground":             p.Text.Secondary,
		"list.highlightForeground":         p.Accent.Primary,
		"list.focusHighlightForeground":    p.Accent.Tertiary,
		"list.invalidItemForeground":       p.Status.Warning,
		"list.errorForeground":             p.Status.Error,
		"list.warningForeground":           p.Status.Warning,
		"list.deemphasizedForeground":      p.Text.Subtle,
		"list.dropBackground":              p.Accent.Muted,
		"list.filterMatchBackground":       p.Selection.FindHighlight,
		"tree.indentGuidesStroke":          p.Guide.Indent,
		"tree.inactiveIndentGuidesStroke":  p.Guide.Indent,
	}
}

func TitleBarColors(ctx *Context) map[string]string {
	p := resolve(ctx)
	bg := p.Background(palette.ComponentTitleBar)
	return map[string]string{
		"titleBar.activeBackground":        bg,
		"titleBar.activeForeground":        p.Text.Muted,
		"titleBar.inactiveBackground":      bg,
		"titleBar.inactiveForeground":      p.Text.Subtle,
		"titleBar.border":                  p.Border.Default,
		"commandCenter.background":         p.Bg.Raised,
		"commandCenter.foreground":         p.Text.Secondary,
		"commandCenter.activeBackground":   p.Bg.Hover,
		"commandCenter.activeForeground":   p.Text.Primary,
		"commandCenter.border":             p.Border.Subtle,
		"commandCenter.inactiveForeground": p.Text.Subtle,
		"commandCenter.inactiveBorder":     p.Border.Default,
	}
}

func PanelColors(ctx *Context) map[string]string {
	p := resolve(ctx)
	bg := p.Background(palette.ComponentPanel)
	return map[string]string{
		"panel.background":              bg,
		"panel.border":                  p.Border.Default,
		"panel.dropBorder":              p.Accent.Primary,
		"panelTitle.activeForeground":   p.Text.Secondary,
		"panelTitle.inactiveForeground": p.Text.Subtle,
		"panelTitle.activeBorder":       p.Accent.Primary,
		"panelInput.border":             p.Border.Default,
		"panelSection.border":           p.Border.Default,
		"panelSectionHeader.background": bg,
	}
}

var ansiKeys = [16]string{
	"terminal.ansiBlack",
	"terminal.ansiRed",
	"terminal.ansiGreen",
	"terminal.ansiYellow",
	"terminal.ansiBlue",
	"terminal.ansiMagenta",
	"terminal.ansiCyan",
	"terminal.ansiWhite",
	"terminal.ansiBrightBlack",
	"terminal.ansiBrightRed",
	"terminal.ansiBrightGreen",
	"terminal.ansiBrightYellow",
	"terminal.ansiBrightBlue",
	"terminal.ansiBrightMagenta",
	"terminal.ansiBrightCyan",
	"terminal.ansiBrightWhite",
}

func TerminalColors(ctx *Context) map[string]string {
	p := resolve(ctx)
	colors := map[string]string{
		"terminal.background":                         p.Background(palette.ComponentTerminal),
		"terminal.foreground":                         p.Text.Secondary,
		"terminal.border":                             p.Border.Default,
		"terminal.selectionBackground":                p.Selection.Background,
		"terminal.inactiveSelectionBackground":        p.Selection.Inactive,
		"terminal.findMatchBackground":                p.Selection.FindMatch,
		"terminal.findMatchHighlightBackground":       p.Selection.FindHighlight,
		"terminalCursor.foreground":                   p.Text.Primary,
		"terminalCommandDecoration.defaultBackground": p.Text.Faint,
		"terminalCommandDecoration.successBackground": p.Status.Success,
		"terminalCommandDecoration.errorBackground":   p.Status.Error,
	}
	for i, key := range ansiKeys {
		colors[key] = p.Terminal[i]
	}
	return colors
}

func InputColors(ctx *Context) map[string]string {
	p := resolve(ctx)
	input := p.Background(palette.ComponentInput)
	dropdown := p.Background(palette.ComponentDropdown)
	return map[string]string{
		"input.background":                  input,
		"input.foreground":                  p.Text.Primary,
		"input.border":                      p.Border.Default,
		"input.placeholderForeground":       p.Text.Faint,
		"inputOption.activeBackground":      p.Accent.Subtle,
		"inputOption.activeBorder":          p.Accent.Primary,
		"inputOption.activeForeground":      p.Text.Primary,
		"inputValidation.errorBackground":   p.Status.ErrorBackground,
		"inputValidation.errorBorder":       p.Status.ErrorBorder,
		"inputValidation.errorForeground":   p.Text.Primary,
		"inputValidation.warningBackground": p.Status.WarningBackground,
		"inputValidation.warningBorder":     p.Status.WarningBorder,
		"inputValidation.warningForeground": p.Text.Primary,
		"inputValidation.infoBackground":    p.Status.InfoBackground,
		"inputValidation.infoBorder":        p.Status.InfoBorder,
		"inputValidation.infoForeground":    p.Text.Primary,
		"dropdown.background":               dropdown,
		"dropdown.foreground":               p.Text.Secondary,
		"dropdown.border":                   p.Border.Default,
		"dropdown.listBackground":           dropdown,
		"checkbox.background":               input,
		"checkbox.foreground":               p.Text.Primary,
		"checkbox.border":                   p.Border.Default,
	}
}

func ButtonColors(ctx *Context) map[string]string {
	p := resolve(ctx)
	return map[string]string{
		"button.background":                p.Accent.Button,
		"button.foreground":                p.Accent.ButtonForeground,
		"button.hoverBackground":           p.Accent.ButtonHover,
		"button.secondaryBackground":       p.Accent.SecondaryButton,
		"button.secondaryForeground":       p.Text.Primary,
		"button.secondaryHoverBackground":  p.Accent.SecondaryButtonHover,
		"badge.background":                 p.Accent.Badge,
		"badge.foreground":                 p.Accent.BadgeForeground,
		"progressBar.background":           p.Accent.Primary,
		"extensionButton.background":       p.Accent.Button,
		"extensionButton.foreground":       p.Accent.ButtonForeground,
		"extensionButton.hoverBackground":  p.Accent.ButtonHover,
		"extensionBadge.remoteBackground":  p.Accent.Badge,
		"extensionBadge.remoteForeground":  p.Accent.BadgeForeground,
		"extensionIcon.starForeground":     p.Status.Warning,
		"extensionIcon.verifiedForeground": p.Accent.Primary,
	}
}

func MenuColors(ctx *Context) map[string]string {
	p := resolve(ctx)
	return map[string]string{
		"menu.background":              p.Background(palette.ComponentMenu),
		"menu.foreground":              p.Text.Secondary,
		"menu.selectionBackground":     p.Selection.List,
		"menu.selectionForeground":     p.Text.Primary,
		"menu.separatorBackground":     p.Border.Default,
		"menu.border":                  p.Border.Default,
		"menubar.selectionBackground":  p.Bg.Hover,
		"menubar.selectionForeground":  p.Text.Primary,
		"keybindingLabel.background":   p.Bg.Raised,
		"keybindingLabel.foreground":   p.Text.Secondary,
		"keybindingLabel.border":       p.Border.Subtle,
		"keybindingLabel.bottomBorder": p.Border.Default,
	}
}

func NotificationColors(ctx *Context) map[string]string {
	p := resolve(ctx)
	return map[string]string{
		"notifications.background":            p.Background(palette.ComponentNotification),
		"notifications.foreground":            p.Text.Secondary,
		"notifications.border":                p.Border.Default,
		"notificationCenter.border":           p.Border.Default,
		"notificationCenterHeader.background": p.Bg.Float,
		"notificationCenterHeader.foreground": p.Text.Secondary,
		"notificationToast.border":            p.Border.Default,
		"notificationLink.foreground":         p.Accent.Link,
		"notificationsErrorIcon.foreground":   p.Status.Error,
		"notificationsWarningIcon.foreground": p.Status.Warning,
		"notificationsInfoIcon.foreground":    p.Status.Info,
		"banner.background":                   p.Bg.Raised,
		"banner.foreground":                   p.Text.Primary,
		"banner.iconForeground":               p.Accent.Primary,
	}
}

func BreadcrumbColors(ctx *Context) map[string]string {
	p := resolve(ctx)
	return map[string]string{
		"breadcrumb.background":                p.Background(palette.ComponentBreadcrumb),
		"breadcrumb.foreground":                p.Text.Subtle,
		"breadcrumb.focusForeground":           p.Text.Primary,
		"breadcrumb.activeSelectionForeground": p.Accent.Primary,
		"breadcrumbPicker.background":          p.Background(palette.ComponentWidget),
	}
}

func SettingsColors(ctx *Context) map[string]string {
	p := resolve(ctx)
	input := p.Background(palette.ComponentInput)
	return map[string]string{
		"settings.headerForeground":      p.Accent.Primary,
		"settings.modifiedItemIndicator": p.Git.Modified,
		"settings.dropdownBackground":    p.Background(palette.ComponentDropdown),
		"settings.dropdownForeground":    p.Text.Secondary,
		"settings.dropdownBorder":        p.Border.Default,
		"settings.checkboxBackground":    input,
		"settings.checkboxForeground":    p.Text.Secondary,
		"settings.checkboxBorder":        p.Border.Default,
		"settings.textInputBackground":   input,
		"settings.textInputForeground":   p.Text.Primary,
		"settings.textInputBorder":       p.Border.Default,
		"settings.numberInputBackground": input,
		"settings.numberInputForeground": p.Text.Primary,
		"settings.numberInputBorder":     p.Border.Default,
		"settings.focusedRowBackground":  p.Bg.Hover,
		"settings.rowHoverBackground":    p.Bg.Hover,
		"settings.headerBorder":          p.Border.Default,
		"settings.sashBorder":            p.Border.Default,
	}
}
