package validation

import (
	"fmt"
	"strings"

	"github.com/tokyo-night-lod/tnl/internal/hexcolor"
	"github.com/tokyo-night-lod/tnl/internal/theme"
)

// deprecatedKeys maps retired color keys to their replacement. An empty
// replacement means the key has no successor.
var deprecatedKeys = map[string]string{
	"editorGroup.background":             "editorGroup.emptyBackground",
	"editorIndentGuide.background":       "editorIndentGuide.background1",
	"editorIndentGuide.activeBackground": "editorIndentGuide.activeBackground1",
	"editorActiveLineNumber.foreground":  "editorLineNumber.activeForeground",
	"quickInput.list.focusBackground":    "quickInputList.focusBackground",
	"activityBar.dropBackground":         "activityBar.dropBorder",
	"panel.dropBackground":               "panel.dropBorder",
	"settings.modifiedItemForeground":    "settings.modifiedItemIndicator",
	"notebook.rowHoverBackground":        "notebook.cellHoverBackground",
	"notebook.focusedRowBackground":      "notebook.focusedCellBackground",
	"welcomePage.buttonBackground":       "",
	"welcomePage.buttonHoverBackground":  "",
}

var disallowedValues = map[string]bool{
	"transparent": true,
	"inherit":     true,
	"initial":     true,
	"unset":       true,
}

var fontStyles = map[string]bool{
	"italic":        true,
	"bold":          true,
	"underline":     true,
	"strikethrough": true,
}

// Replacement returns the successor of a deprecated key. ok is false for keys
// that are not deprecated.
func Replacement(key string) (replacement string, ok bool) {
	replacement, ok = deprecatedKeys[key]
	return replacement, ok
}

func isDisallowed(value string) bool {
	return disallowedValues[strings.ToLower(strings.TrimSpace(value))]
}

// ValidateProperties checks color keys against the known key set and every
// color value against the accepted grammar.
func ValidateProperties(doc *theme.Document) Result {
	var issues []Issue

	for _, key := range doc.ColorKeys() {
		value := doc.Colors[key]

		if repl, ok := deprecatedKeys[key]; ok {
			is := Issue{Property: key, Message: "deprecated color key", Severity: SeverityWarning}
			if repl != "" {
				is.Suggestion = "rename to " + repl
			} else {
				is.Suggestion = "remove; it has no replacement"
			}
			issues = append(issues, is)
		} else if !theme.IsAllowedKey(key) {
			issues = append(issues, Issue{
				Property: key,
				Message:  "unknown color key",
				Severity: SeverityError,
			})
		}

		issues = append(issues, checkValue(key, value, true)...)
	}

	for i, tc := range doc.TokenColors {
		prop := fmt.Sprintf("tokenColors[%d]", i)
		if tc.Name != "" {
			prop = fmt.Sprintf("tokenColors[%d] (%s)", i, tc.Name)
		}
		if len(tc.Scope) == 0 {
			issues = append(issues, Issue{Property: prop, Message: "rule has no scope", Severity: SeverityWarning})
		}
		issues = append(issues, checkValue(prop+".foreground", tc.Settings.Foreground, false)...)
		issues = append(issues, checkValue(prop+".background", tc.Settings.Background, false)...)
		for _, style := range strings.Fields(tc.Settings.FontStyle) {
			if !fontStyles[style] {
				issues = append(issues, Issue{
					Property:   prop + ".fontStyle",
					Message:    fmt.Sprintf("unknown font style %q", style),
					Severity:   SeverityWarning,
					Suggestion: "use italic, bold, underline or strikethrough",
				})
			}
		}
	}

	for _, sel := range doc.SemanticSelectors() {
		issues = append(issues, checkValue("semanticTokenColors."+sel, doc.SemanticTokenColors[sel].Foreground, false)...)
	}

	return newResult(issues)
}

// checkValue validates one color value. Empty values are only an error where
// a color is required.
func checkValue(prop, value string, required bool) []Issue {
	switch {
	case value == "":
		if !required {
			return nil
		}
		return []Issue{{Property: prop, Message: "empty color value", Severity: SeverityError, Suggestion: "remove the key"}}
	case isDisallowed(value):
		return []Issue{{
			Property:   prop,
			Message:    fmt.Sprintf("disallowed value %q", value),
			Severity:   SeverityError,
			Suggestion: "remove the key or use a color with a zero alpha byte",
		}}
	case !hexcolor.IsValid(value):
		return []Issue{{
			Property:   prop,
			Message:    fmt.Sprintf("invalid color %q", value),
			Severity:   SeverityError,
			Suggestion: "use #rrggbb, #rrggbbaa or rgba(r, g, b, a)",
		}}
	}
	return nil
}

type FixAction string

const (
	FixRenamed FixAction = "renamed"
	FixRemoved FixAction = "removed"
)

// Fix describes one repair made by Fix.
type Fix struct {
	Property string
	Action   FixAction
	Target   string
	Reason   string
}

func (f Fix) String() string {
	if f.Action == FixRenamed {
		return fmt.Sprintf("%s: renamed to %s (%s)", f.Property, f.Target, f.Reason)
	}
	return fmt.Sprintf("%s: removed (%s)", f.Property, f.Reason)
}

// FixProperties returns a repaired copy of doc. Keys holding disallowed
// literals are deleted, then deprecated keys are renamed to their
// replacement or deleted when there is none or the replacement is already
// set. The input is not modified and a second run finds nothing to fix.
func FixProperties(doc *theme.Document) (*theme.Document, []Fix) {
	out := doc.Clone()
	var fixes []Fix

	for _, key := range out.ColorKeys() {
		if value := out.Colors[key]; isDisallowed(value) {
			delete(out.Colors, key)
			fixes = append(fixes, Fix{Property: key, Action: FixRemoved, Reason: fmt.Sprintf("disallowed value %q", value)})
		}
	}

	for _, key := range out.ColorKeys() {
		repl, ok := deprecatedKeys[key]
		if !ok {
			continue
		}
		value := out.Colors[key]
		delete(out.Colors, key)

		switch {
		case repl == "":
			fixes = append(fixes, Fix{Property: key, Action: FixRemoved, Reason: "deprecated without replacement"})
		case hasKey(out.Colors, repl):
			fixes = append(fixes, Fix{Property: key, Action: FixRemoved, Reason: repl + " is already set"})
		default:
			out.Colors[repl] = value
			fixes = append(fixes, Fix{Property: key, Action: FixRenamed, Target: repl, Reason: "deprecated"})
		}
	}

	return out, fixes
}

func hasKey(m map[string]string, key string) bool {
	_, ok := m[key]
	return ok
}
