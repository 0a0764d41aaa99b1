package validation

import (
	"fmt"

	"github.com/tokyo-night-lod/tnl/internal/hexcolor"
	"github.com/tokyo-night-lod/tnl/internal/theme"
)

const (
	editorBackground = "editor.background"

	// Below this CIE76 distance two colors are indistinguishable.
	invisibleDeltaE = 1.0
)

type QualityOptions struct {
	SkipInfo bool
}

// Pair is a foreground/background combination that must stay readable.
type Pair struct {
	Foreground string
	Background string
}

// CriticalPairs are the color pairs checked for contrast.
var CriticalPairs = []Pair{
	{"editor.foreground", "editor.background"},
	{"editorLineNumber.activeForeground", "editor.background"},
	{"statusBar.foreground", "statusBar.background"},
	{"tab.activeForeground", "tab.activeBackground"},
	{"tab.inactiveForeground", "tab.inactiveBackground"},
	{"sideBar.foreground", "sideBar.background"},
	{"sideBarTitle.foreground", "sideBar.background"},
	{"activityBar.foreground", "activityBar.background"},
	{"titleBar.activeForeground", "titleBar.activeBackground"},
	{"panelTitle.activeForeground", "panel.background"},
	{"terminal.foreground", "terminal.background"},
	{"button.foreground", "button.background"},
	{"button.secondaryForeground", "button.secondaryBackground"},
	{"badge.foreground", "badge.background"},
	{"activityBarBadge.foreground", "activityBarBadge.background"},
	{"input.foreground", "input.background"},
	{"input.placeholderForeground", "input.background"},
	{"dropdown.foreground", "dropdown.background"},
	{"menu.foreground", "menu.background"},
	{"menu.selectionForeground", "menu.selectionBackground"},
	{"list.activeSelectionForeground", "list.activeSelectionBackground"},
	{"editorWidget.foreground", "editorWidget.background"},
	{"quickInput.foreground", "quickInput.background"},
	{"peekViewResult.fileForeground", "peekViewResult.background"},
	{"notifications.foreground", "notifications.background"},
	{"breadcrumb.foreground", "breadcrumb.background"},
	{"commandCenter.foreground", "commandCenter.background"},
	{"banner.foreground", "banner.background"},
	{"settings.headerForeground", "editor.background"},
	{"settings.textInputForeground", "settings.textInputBackground"},
}

// ValidateQuality checks the critical pairs and syntax foregrounds for
// contrast. Translucent colors are composited over editor.background first.
func ValidateQuality(doc *theme.Document, opts QualityOptions) Result {
	var issues []Issue
	add := func(is Issue) {
		if opts.SkipInfo && is.Severity == SeverityInfo {
			return
		}
		issues = append(issues, is)
	}

	editorBg := doc.Colors[editorBackground]
	if _, a, err := hexcolor.ParseAlpha(editorBg); err != nil || a < 1 || !hexcolor.IsHex(editorBg) {
		add(Issue{
			Property:   editorBackground,
			Message:    "missing, invalid or translucent; contrast not checked",
			Severity:   SeverityError,
			Suggestion: "set an opaque #rrggbb color",
		})
		return newResult(issues)
	}

	for _, pair := range CriticalPairs {
		fgValue, fgOK := doc.Colors[pair.Foreground]
		bgValue, bgOK := doc.Colors[pair.Background]
		if !fgOK || !bgOK {
			add(Issue{
				Property: pair.Foreground,
				Message:  fmt.Sprintf("pair with %s not checked: color not set", pair.Background),
				Severity: SeverityInfo,
			})
			continue
		}
		is, ok := checkPair(pair.Foreground, fgValue, pair.Background, bgValue, editorBg)
		if ok {
			add(is)
		}
	}

	for i, tc := range doc.TokenColors {
		if tc.Settings.Foreground == "" {
			continue
		}
		bg := editorBg
		if tc.Settings.Background != "" {
			bg = tc.Settings.Background
		}
		fg, bgFlat, err := flatten(tc.Settings.Foreground, bg, editorBg)
		if err != nil {
			continue
		}
		ratio, _ := hexcolor.ContrastRatio(fg, bgFlat)
		if ratio < hexcolor.MinContrastLarge {
			add(Issue{
				Property:   fmt.Sprintf("tokenColors[%d] (%s)", i, tc.Name),
				Message:    fmt.Sprintf("syntax contrast %.2f:1 against %s", ratio, editorBackground),
				Severity:   SeverityWarning,
				Suggestion: fmt.Sprintf("raise contrast to at least %.1f:1", hexcolor.MinContrastLarge),
			})
		}
	}

	return newResult(issues)
}

// checkPair grades one pair. ok is false when there is nothing to report.
func checkPair(fgKey, fgValue, bgKey, bgValue, editorBg string) (Issue, bool) {
	fg, bg, err := flatten(fgValue, bgValue, editorBg)
	if err != nil {
		// Grammar errors belong to the property validator.
		return Issue{}, false
	}

	ratio, _ := hexcolor.ContrastRatio(fg, bg)
	dE, _ := hexcolor.DeltaE(fg, bg)

	is := Issue{Property: fgKey}
	switch {
	case fg == bg || dE < invisibleDeltaE:
		is.Severity = SeverityError
		is.Message = fmt.Sprintf("invisible on %s (%s on %s)", bgKey, fgValue, bgValue)
		is.Suggestion = "pick a foreground that differs from the background"
	case ratio < hexcolor.MinContrastAA:
		is.Severity = SeverityWarning
		is.Message = fmt.Sprintf("contrast %.2f:1 on %s is %s, below AA", ratio, bgKey, hexcolor.Classify(ratio))
		is.Suggestion = fmt.Sprintf("raise contrast to at least %.1f:1", hexcolor.MinContrastAA)
	case ratio < hexcolor.MinContrastAAA:
		is.Severity = SeverityInfo
		is.Message = fmt.Sprintf("contrast %.2f:1 on %s meets AA but not AAA", ratio, bgKey)
	default:
		return Issue{}, false
	}
	return is, true
}

// flatten composites a background over the editor background and the
// foreground over the result, yielding two opaque colors.
func flatten(fg, bg, editorBg string) (string, string, error) {
	flatBg, err := hexcolor.Composite(bg, editorBg)
	if err != nil {
		return "", "", err
	}
	flatFg, err := hexcolor.Composite(fg, flatBg)
	if err != nil {
		return "", "", err
	}
	return flatFg, flatBg, nil
}
