package dashboard

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	// Colors
	primaryColor = lipgloss.Color("99")  // Purple
	successColor = lipgloss.Color("42")  // Green
	warningColor = lipgloss.Color("226") // Yellow
	errorColor   = lipgloss.Color("196") // Red
	mutedColor   = lipgloss.Color("245") // Gray
	accentColor  = lipgloss.Color("212") // Pink

	// Title style
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			PaddingRight(2)

	// Header style
	headerStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(mutedColor).
			MarginBottom(1)

	// Control row styles
	labelStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Width(12)

	focusedLabelStyle = lipgloss.NewStyle().
				Foreground(accentColor).
				Bold(true).
				Width(12)

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	disabledStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Italic(true)

	buttonStyle = lipgloss.NewStyle().
			Padding(0, 2).
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(mutedColor)

	focusedButtonStyle = buttonStyle.
				Foreground(successColor).
				Bold(true).
				BorderForeground(successColor)

	// Locked banner style
	lockedBannerStyle = lipgloss.NewStyle().
				Foreground(warningColor).
				Padding(0, 2).
				MarginBottom(1).
				BorderStyle(lipgloss.NormalBorder()).
				BorderForeground(warningColor)

	// Created view style
	createdBoxStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(successColor).
			Padding(1, 2)

	// Activity list style
	activityStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			MarginTop(1)

	// Status line styles
	statusStyle = lipgloss.NewStyle().
			Foreground(successColor)

	statusErrorStyle = lipgloss.NewStyle().
				Foreground(errorColor).
				Bold(true)

	// Footer style
	footerStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(mutedColor).
			MarginTop(1)
)

// swatchStyle renders a block in the given hex color
func swatchStyle(hex string) lipgloss.Style {
	return lipgloss.NewStyle().Background(lipgloss.Color("#" + hex))
}
