package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tokyo-night-lod/tnl/internal/hexcolor"
	"github.com/tokyo-night-lod/tnl/internal/validation"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#565f89"))
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#9ece6a")).Bold(true)
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#f7768e")).Bold(true)
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#e0af68")).Bold(true)
	infoStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#7dcfff"))
)

func severityStyle(s validation.Severity) lipgloss.Style {
	switch s {
	case validation.SeverityError:
		return errorStyle
	case validation.SeverityWarning:
		return warnStyle
	default:
		return infoStyle
	}
}

// printReport writes one validation result to stdout.
func printReport(name string, r validation.Result) {
	status := okStyle.Render("passed")
	if !r.Passed {
		status = errorStyle.Render("failed")
	}
	fmt.Printf("%s %s %s\n", titleStyle.Render(name), status, mutedStyle.Render(fmt.Sprintf(
		"(%d errors, %d warnings, %d info)",
		r.Count(validation.SeverityError),
		r.Count(validation.SeverityWarning),
		r.Count(validation.SeverityInfo),
	)))

	for _, is := range r.Issues {
		line := fmt.Sprintf("  %s %s: %s", severityStyle(is.Severity).Render(fmt.Sprintf("%-7s", is.Severity)), is.Property, is.Message)
		if is.Suggestion != "" {
			line += mutedStyle.Render(" (" + is.Suggestion + ")")
		}
		fmt.Println(line)
	}
}

// swatch renders a color sample. Translucent colors are shown flattened over
// bg.
func swatch(color, bg string) string {
	solid := color
	if !strings.HasPrefix(color, "#") || len(color) != 7 {
		flat, err := hexcolor.Composite(color, bg)
		if err == nil {
			solid = flat
		}
	}
	return lipgloss.NewStyle().Background(lipgloss.Color(solid)).Render("    ")
}
