package theme

// knownKeys is the enumeration of VS Code color contribution keys this
// generator accepts. Deprecated keys are not part of it.
var knownKeys = []string{
	"activityBar.activeBackground",
	"activityBar.activeBorder",
	"activityBar.activeFocusBorder",
	"activityBar.background",
	"activityBar.border",
	"activityBar.dropBorder",
	"activityBar.foreground",
	"activityBar.inactiveForeground",
	"activityBarBadge.background",
	"activityBarBadge.foreground",
	"activityBarTop.activeBorder",
	"activityBarTop.foreground",
	"activityBarTop.inactiveForeground",
	"badge.background",
	"badge.foreground",
	"banner.background",
	"banner.foreground",
	"banner.iconForeground",
	"breadcrumb.activeSelectionForeground",
	"breadcrumb.background",
	"breadcrumb.focusForeground",
	"breadcrumb.foreground",
	"breadcrumbPicker.background",
	"button.background",
	"button.foreground",
	"button.hoverBackground",
	"button.secondaryBackground",
	"button.secondaryForeground",
	"button.secondaryHoverBackground",
	"charts.blue",
	"charts.foreground",
	"charts.green",
	"charts.lines",
	"charts.orange",
	"charts.purple",
	"charts.red",
	"charts.yellow",
	"chat.requestBackground",
	"chat.slashCommandForeground",
	"checkbox.background",
	"checkbox.border",
	"checkbox.foreground",
	"commandCenter.activeBackground",
	"commandCenter.activeForeground",
	"commandCenter.background",
	"commandCenter.border",
	"commandCenter.foreground",
	"commandCenter.inactiveBorder",
	"commandCenter.inactiveForeground",
	"contrastActiveBorder",
	"contrastBorder",
	"debugConsole.errorForeground",
	"debugConsole.infoForeground",
	"debugConsole.sourceForeground",
	"debugConsole.warningForeground",
	"debugExceptionWidget.background",
	"debugExceptionWidget.border",
	"debugIcon.breakpointDisabledForeground",
	"debugIcon.breakpointForeground",
	"debugIcon.breakpointUnverifiedForeground",
	"debugIcon.continueForeground",
	"debugIcon.pauseForeground",
	"debugIcon.restartForeground",
	"debugIcon.startForeground",
	"debugIcon.stepIntoForeground",
	"debugIcon.stepOutForeground",
	"debugIcon.stepOverForeground",
	"debugIcon.stopForeground",
	"debugTokenExpression.boolean",
	"debugTokenExpression.error",
	"debugTokenExpression.name",
	"debugTokenExpression.number",
	"debugTokenExpression.string",
	"debugTokenExpression.value",
	"debugToolBar.background",
	"debugToolBar.border",
	"descriptionForeground",
	"diffEditor.diagonalFill",
	"diffEditor.insertedLineBackground",
	"diffEditor.insertedTextBackground",
	"diffEditor.removedLineBackground",
	"diffEditor.removedTextBackground",
	"diffEditor.unchangedRegionBackground",
	"diffEditorGutter.insertedLineBackground",
	"diffEditorGutter.removedLineBackground",
	"diffEditorOverview.insertedForeground",
	"diffEditorOverview.removedForeground",
	"disabledForeground",
	"dropdown.background",
	"dropdown.border",
	"dropdown.foreground",
	"dropdown.listBackground",
	"editor.background",
	"editor.findMatchBackground",
	"editor.findMatchHighlightBackground",
	"editor.findRangeHighlightBackground",
	"editor.focusedStackFrameHighlightBackground",
	"editor.foldBackground",
	"editor.foreground",
	"editor.hoverHighlightBackground",
	"editor.inactiveSelectionBackground",
	"editor.lineHighlightBackground",
	"editor.linkedEditingBackground",
	"editor.rangeHighlightBackground",
	"editor.selectionBackground",
	"editor.selectionHighlightBackground",
	"editor.snippetFinalTabstopHighlightBackground",
	"editor.snippetTabstopHighlightBackground",
	"editor.stackFrameHighlightBackground",
	"editor.wordHighlightBackground",
	"editor.wordHighlightStrongBackground",
	"editor.wordHighlightTextBackground",
	"editorBracketHighlight.foreground1",
	"editorBracketHighlight.foreground2",
	"editorBracketHighlight.foreground3",
	"editorBracketHighlight.foreground4",
	"editorBracketHighlight.foreground5",
	"editorBracketHighlight.foreground6",
	"editorBracketHighlight.unexpectedBracket.foreground",
	"editorBracketMatch.background",
	"editorBracketMatch.border",
	"editorCodeLens.foreground",
	"editorCursor.background",
	"editorCursor.foreground",
	"editorError.background",
	"editorError.border",
	"editorError.foreground",
	"editorGhostText.foreground",
	"editorGroup.border",
	"editorGroup.dropBackground",
	"editorGroup.dropIntoPromptBackground",
	"editorGroup.emptyBackground",
	"editorGroup.focusedEmptyBorder",
	"editorGroupHeader.border",
	"editorGroupHeader.noTabsBackground",
	"editorGroupHeader.tabsBackground",
	"editorGroupHeader.tabsBorder",
	"editorGutter.addedBackground",
	"editorGutter.background",
	"editorGutter.commentRangeForeground",
	"editorGutter.deletedBackground",
	"editorGutter.foldingControlForeground",
	"editorGutter.modifiedBackground",
	"editorHint.border",
	"editorHint.foreground",
	"editorHoverWidget.background",
	"editorHoverWidget.border",
	"editorHoverWidget.foreground",
	"editorHoverWidget.highlightForeground",
	"editorHoverWidget.statusBarBackground",
	"editorIndentGuide.activeBackground1",
	"editorIndentGuide.background1",
	"editorInfo.background",
	"editorInfo.border",
	"editorInfo.foreground",
	"editorInlayHint.background",
	"editorInlayHint.foreground",
	"editorLightBulb.foreground",
	"editorLightBulbAutoFix.foreground",
	"editorLineNumber.activeForeground",
	"editorLineNumber.foreground",
	"editorLink.activeForeground",
	"editorMarkerNavigation.background",
	"editorMarkerNavigationError.background",
	"editorMarkerNavigationInfo.background",
	"editorMarkerNavigationWarning.background",
	"editorMultiCursor.primary.foreground",
	"editorMultiCursor.secondary.foreground",
	"editorOverviewRuler.addedForeground",
	"editorOverviewRuler.background",
	"editorOverviewRuler.border",
	"editorOverviewRuler.bracketMatchForeground",
	"editorOverviewRuler.commonContentForeground",
	"editorOverviewRuler.currentContentForeground",
	"editorOverviewRuler.deletedForeground",
	"editorOverviewRuler.errorForeground",
	"editorOverviewRuler.findMatchForeground",
	"editorOverviewRuler.incomingContentForeground",
	"editorOverviewRuler.infoForeground",
	"editorOverviewRuler.modifiedForeground",
	"editorOverviewRuler.selectionHighlightForeground",
	"editorOverviewRuler.warningForeground",
	"editorRuler.foreground",
	"editorStickyScroll.background",
	"editorStickyScrollHover.background",
	"editorSuggestWidget.background",
	"editorSuggestWidget.border",
	"editorSuggestWidget.focusHighlightForeground",
	"editorSuggestWidget.foreground",
	"editorSuggestWidget.highlightForeground",
	"editorSuggestWidget.selectedBackground",
	"editorUnicodeHighlight.background",
	"editorUnicodeHighlight.border",
	"editorUnnecessaryCode.border",
	"editorUnnecessaryCode.opacity",
	"editorWarning.background",
	"editorWarning.border",
	"editorWarning.foreground",
	"editorWhitespace.foreground",
	"editorWidget.background",
	"editorWidget.border",
	"editorWidget.foreground",
	"editorWidget.resizeBorder",
	"errorForeground",
	"extensionBadge.remoteBackground",
	"extensionBadge.remoteForeground",
	"extensionButton.background",
	"extensionButton.foreground",
	"extensionButton.hoverBackground",
	"extensionIcon.starForeground",
	"extensionIcon.verifiedForeground",
	"focusBorder",
	"foreground",
	"gitDecoration.addedResourceForeground",
	"gitDecoration.conflictingResourceForeground",
	"gitDecoration.deletedResourceForeground",
	"gitDecoration.ignoredResourceForeground",
	"gitDecoration.modifiedResourceForeground",
	"gitDecoration.renamedResourceForeground",
	"gitDecoration.stageDeletedResourceForeground",
	"gitDecoration.stageModifiedResourceForeground",
	"gitDecoration.submoduleResourceForeground",
	"gitDecoration.untrackedResourceForeground",
	"icon.foreground",
	"inlineChat.background",
	"inlineChat.border",
	"input.background",
	"input.border",
	"input.foreground",
	"input.placeholderForeground",
	"inputOption.activeBackground",
	"inputOption.activeBorder",
	"inputOption.activeForeground",
	"inputValidation.errorBackground",
	"inputValidation.errorBorder",
	"inputValidation.errorForeground",
	"inputValidation.infoBackground",
	"inputValidation.infoBorder",
	"inputValidation.infoForeground",
	"inputValidation.warningBackground",
	"inputValidation.warningBorder",
	"inputValidation.warningForeground",
	"keybindingLabel.background",
	"keybindingLabel.border",
	"keybindingLabel.bottomBorder",
	"keybindingLabel.foreground",
	"list.activeSelectionBackground",
	"list.activeSelectionForeground",
	"list.deemphasizedForeground",
	"list.dropBackground",
	"list.errorForeground",
	"list.filterMatchBackground",
	"list.focusBackground",
	"list.focusForeground",
	"list.focusHighlightForeground",
	"list.focusOutline",
	"list.highlightForeground",
	"list.hoverBackground",
	"list.hoverForeground",
	"list.inactiveFocusBackground",
	"list.inactiveFocusOutline",
	"list.inactiveSelectionBackground",
	"list.inactiveSelectionForeground",
	"list.invalidItemForeground",
	"list.warningForeground",
	"menu.background",
	"menu.border",
	"menu.foreground",
	"menu.selectionBackground",
	"menu.selectionForeground",
	"menu.separatorBackground",
	"menubar.selectionBackground",
	"menubar.selectionForeground",
	"merge.border",
	"merge.commonContentBackground",
	"merge.commonHeaderBackground",
	"merge.currentContentBackground",
	"merge.currentHeaderBackground",
	"merge.incomingContentBackground",
	"merge.incomingHeaderBackground",
	"mergeEditor.change.background",
	"mergeEditor.conflict.handledFocused.border",
	"mergeEditor.conflict.unhandledFocused.border",
	"minimap.background",
	"minimap.errorHighlight",
	"minimap.findMatchHighlight",
	"minimap.selectionHighlight",
	"minimap.selectionOccurrenceHighlight",
	"minimap.warningHighlight",
	"minimapGutter.addedBackground",
	"minimapGutter.deletedBackground",
	"minimapGutter.modifiedBackground",
	"minimapSlider.activeBackground",
	"minimapSlider.background",
	"minimapSlider.hoverBackground",
	"multiDiffEditor.border",
	"multiDiffEditor.headerBackground",
	"notebook.cellBorderColor",
	"notebook.cellEditorBackground",
	"notebook.cellHoverBackground",
	"notebook.editorBackground",
	"notebook.focusedCellBackground",
	"notebook.focusedCellBorder",
	"notebook.selectedCellBackground",
	"notificationCenter.border",
	"notificationCenterHeader.background",
	"notificationCenterHeader.foreground",
	"notificationLink.foreground",
	"notificationToast.border",
	"notifications.background",
	"notifications.border",
	"notifications.foreground",
	"notificationsErrorIcon.foreground",
	"notificationsInfoIcon.foreground",
	"notificationsWarningIcon.foreground",
	"panel.background",
	"panel.border",
	"panel.dropBorder",
	"panelInput.border",
	"panelSection.border",
	"panelSectionHeader.background",
	"panelTitle.activeBorder",
	"panelTitle.activeForeground",
	"panelTitle.inactiveForeground",
	"peekView.border",
	"peekViewEditor.background",
	"peekViewEditor.matchHighlightBackground",
	"peekViewEditorGutter.background",
	"peekViewResult.background",
	"peekViewResult.fileForeground",
	"peekViewResult.lineForeground",
	"peekViewResult.matchHighlightBackground",
	"peekViewResult.selectionBackground",
	"peekViewResult.selectionForeground",
	"peekViewTitle.background",
	"peekViewTitleDescription.foreground",
	"peekViewTitleLabel.foreground",
	"pickerGroup.border",
	"pickerGroup.foreground",
	"problemsErrorIcon.foreground",
	"problemsInfoIcon.foreground",
	"problemsWarningIcon.foreground",
	"progressBar.background",
	"quickInput.background",
	"quickInput.foreground",
	"quickInputList.focusBackground",
	"quickInputTitle.background",
	"sash.hoverBorder",
	"scm.providerBorder",
	"scrollbar.shadow",
	"scrollbarSlider.activeBackground",
	"scrollbarSlider.background",
	"scrollbarSlider.hoverBackground",
	"selection.background",
	"settings.checkboxBackground",
	"settings.checkboxBorder",
	"settings.checkboxForeground",
	"settings.dropdownBackground",
	"settings.dropdownBorder",
	"settings.dropdownForeground",
	"settings.focusedRowBackground",
	"settings.headerBorder",
	"settings.headerForeground",
	"settings.modifiedItemIndicator",
	"settings.numberInputBackground",
	"settings.numberInputBorder",
	"settings.numberInputForeground",
	"settings.rowHoverBackground",
	"settings.sashBorder",
	"settings.textInputBackground",
	"settings.textInputBorder",
	"settings.textInputForeground",
	"sideBar.background",
	"sideBar.border",
	"sideBar.dropBackground",
	"sideBar.foreground",
	"sideBarSectionHeader.background",
	"sideBarSectionHeader.border",
	"sideBarSectionHeader.foreground",
	"sideBarStickyScroll.background",
	"sideBarTitle.foreground",
	"statusBar.background",
	"statusBar.border",
	"statusBar.debuggingBackground",
	"statusBar.debuggingBorder",
	"statusBar.debuggingForeground",
	"statusBar.focusBorder",
	"statusBar.foreground",
	"statusBar.noFolderBackground",
	"statusBar.noFolderForeground",
	"statusBarItem.activeBackground",
	"statusBarItem.compactHoverBackground",
	"statusBarItem.errorBackground",
	"statusBarItem.errorForeground",
	"statusBarItem.focusBorder",
	"statusBarItem.hoverBackground",
	"statusBarItem.hoverForeground",
	"statusBarItem.prominentBackground",
	"statusBarItem.prominentForeground",
	"statusBarItem.prominentHoverBackground",
	"statusBarItem.remoteBackground",
	"statusBarItem.remoteForeground",
	"statusBarItem.warningBackground",
	"statusBarItem.warningForeground",
	"symbolIcon.classForeground",
	"symbolIcon.constantForeground",
	"symbolIcon.functionForeground",
	"symbolIcon.methodForeground",
	"symbolIcon.variableForeground",
	"tab.activeBackground",
	"tab.activeBorder",
	"tab.activeBorderTop",
	"tab.activeForeground",
	"tab.activeModifiedBorder",
	"tab.border",
	"tab.hoverBackground",
	"tab.hoverForeground",
	"tab.inactiveBackground",
	"tab.inactiveForeground",
	"tab.inactiveModifiedBorder",
	"tab.lastPinnedBorder",
	"tab.unfocusedActiveBackground",
	"tab.unfocusedActiveBorder",
	"tab.unfocusedActiveForeground",
	"tab.unfocusedHoverBackground",
	"tab.unfocusedInactiveForeground",
	"terminal.ansiBlack",
	"terminal.ansiBlue",
	"terminal.ansiBrightBlack",
	"terminal.ansiBrightBlue",
	"terminal.ansiBrightCyan",
	"terminal.ansiBrightGreen",
	"terminal.ansiBrightMagenta",
	"terminal.ansiBrightRed",
	"terminal.ansiBrightWhite",
	"terminal.ansiBrightYellow",
	"terminal.ansiCyan",
	"terminal.ansiGreen",
	"terminal.ansiMagenta",
	"terminal.ansiRed",
	"terminal.ansiWhite",
	"terminal.ansiYellow",
	"terminal.background",
	"terminal.border",
	"terminal.findMatchBackground",
	"terminal.findMatchHighlightBackground",
	"terminal.foreground",
	"terminal.inactiveSelectionBackground",
	"terminal.selectionBackground",
	"terminalCommandDecoration.defaultBackground",
	"terminalCommandDecoration.errorBackground",
	"terminalCommandDecoration.successBackground",
	"terminalCursor.foreground",
	"testing.iconFailed",
	"testing.iconPassed",
	"testing.iconQueued",
	"testing.iconSkipped",
	"textBlockQuote.background",
	"textBlockQuote.border",
	"textCodeBlock.background",
	"textLink.activeForeground",
	"textLink.foreground",
	"textPreformat.foreground",
	"textSeparator.foreground",
	"titleBar.activeBackground",
	"titleBar.activeForeground",
	"titleBar.border",
	"titleBar.inactiveBackground",
	"titleBar.inactiveForeground",
	"toolbar.activeBackground",
	"toolbar.hoverBackground",
	"tree.inactiveIndentGuidesStroke",
	"tree.indentGuidesStroke",
	"walkThrough.embeddedEditorBackground",
	"welcomePage.background",
	"welcomePage.tileBackground",
	"welcomePage.tileHoverBackground",
	"widget.shadow",
	"window.activeBorder",
	"window.inactiveBorder",
}

var allowedKeys = func() map[string]struct{} {
	m := make(map[string]struct{}, len(knownKeys))
	for _, k := range knownKeys {
		m[k] = struct{}{}
	}
	return m
}()

// IsAllowedKey reports whether key is a known, non-deprecated color key.
func IsAllowedKey(key string) bool {
	_, ok := allowedKeys[key]
	return ok
}

// AllowedKeys returns the known color keys sorted.
func AllowedKeys() []string {
	out := make([]string, len(knownKeys))
	copy(out, knownKeys)
	return out
}
