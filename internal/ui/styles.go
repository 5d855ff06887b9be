// Package ui holds terminal styling for command output.
package ui

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

// Color scheme
const (
	ColorPrimary = "6" // Cyan
	ColorSuccess = "2" // Green
	ColorWarning = "3" // Yellow
	ColorError   = "1" // Red
	ColorMuted   = "8" // Dark gray
	ColorAccent  = "11"
)

// RuleWidth is the width of the separator around the resume commands
const RuleWidth = 60

var (
	BannerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(ColorPrimary))

	SuccessStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(ColorSuccess))

	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(ColorError))

	WarningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorWarning))

	KeyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorAccent)).
			Bold(true)

	MutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorMuted))
)

// Rule returns a separator line of the given character
func Rule(char string) string {
	return MutedStyle.Render(strings.Repeat(char, RuleWidth))
}

// RenderMarkdown renders markdown for the terminal. On renderer failure
// the source is returned unchanged along with the error.
func RenderMarkdown(md string, width int) (string, error) {
	if width <= 0 {
		width = 100
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return md, err
	}

	rendered, err := renderer.Render(md)
	if err != nil {
		return md, err
	}
	return rendered, nil
}
