// Package validation checks an assembled theme document. The property
// validator covers keys and the color grammar and can repair the mechanical
// cases; the quality validator reports contrast problems and never repairs.
package validation

import "github.com/tokyo-night-lod/tnl/internal/theme"

type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

type Issue struct {
	Property   string
	Message    string
	Severity   Severity
	Suggestion string
}

// Result is the outcome of a validator run. Passed is false iff at least one
// issue has error severity.
type Result struct {
	Passed bool
	Issues []Issue
}

func newResult(issues []Issue) Result {
	r := Result{Passed: true, Issues: issues}
	for _, is := range issues {
		if is.Severity == SeverityError {
			r.Passed = false
			break
		}
	}
	return r
}

// Count returns the number of issues with severity s.
func (r Result) Count(s Severity) int {
	n := 0
	for _, is := range r.Issues {
		if is.Severity == s {
			n++
		}
	}
	return n
}

// Filter returns the issues with severity s.
func (r Result) Filter(s Severity) []Issue {
	var out []Issue
	for _, is := range r.Issues {
		if is.Severity == s {
			out = append(out, is)
		}
	}
	return out
}

// Merge concatenates results in order.
func Merge(results ...Result) Result {
	var issues []Issue
	for _, r := range results {
		issues = append(issues, r.Issues...)
	}
	return newResult(issues)
}

// Validate runs both validators.
func Validate(doc *theme.Document, opts QualityOptions) Result {
	return Merge(ValidateProperties(doc), ValidateQuality(doc, opts))
}
