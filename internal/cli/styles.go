// Package cli provides styled terminal output using lipgloss.
package cli

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	// PrimaryColor is the main theme color.
	PrimaryColor = lipgloss.Color("#7C9EF4") // Blue
	// SuccessColor indicates a resolved classification.
	SuccessColor = lipgloss.Color("#4ECDC4") // Teal
	// WarningColor indicates fallback outcomes.
	WarningColor = lipgloss.Color("#FFE66D") // Yellow
	// ErrorColor indicates failures.
	ErrorColor = lipgloss.Color("#FF6B6B") // Red
	// SubtleColor indicates less prominent text.
	SubtleColor = lipgloss.Color("#666666") // Gray

	// TitleStyle is used for the startup banner.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor)

	// SuccessStyle formats resolved category lines.
	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor)

	// WarningStyle formats fallback category lines.
	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor)

	// ErrorStyle formats error messages.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor)

	// SubtleStyle formats secondary detail.
	SubtleStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)
)

// Icons.
const (
	SuccessIcon = "✓"
	WarningIcon = "⚠"
	ErrorIcon   = "✗"
	FolderIcon  = "📁"
)

// FormatTitle formats the startup banner.
func FormatTitle(title string) string {
	return TitleStyle.Render(FolderIcon + " " + title)
}

// FormatSuccess formats a resolved classification line.
func FormatSuccess(message string) string {
	return SuccessStyle.Render(SuccessIcon + " " + message)
}

// FormatWarning formats a fallback classification line.
func FormatWarning(message string) string {
	return WarningStyle.Render(WarningIcon + " " + message)
}

// FormatError formats an error message.
func FormatError(message string) string {
	return ErrorStyle.Render(ErrorIcon + " " + message)
}

// FormatSubtle formats secondary detail text.
func FormatSubtle(message string) string {
	return SubtleStyle.Render(message)
}
