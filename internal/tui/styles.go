// Copyright Inventory Capture Inc., 2026. All rights reserved.

package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorCyan    = lipgloss.Color("6")
	colorYellow  = lipgloss.Color("3")
	colorGreen   = lipgloss.Color("2")
	colorMagenta = lipgloss.Color("5")
	colorDim     = lipgloss.Color("8")
	colorWhite   = lipgloss.Color("15")
	colorRed     = lipgloss.Color("1")

	headerStyle = lipgloss.NewStyle().
			Foreground(colorCyan).
			Bold(true)

	partNumberStyle = lipgloss.NewStyle().
			Foreground(colorYellow).
			Bold(true)

	selectedStyle = lipgloss.NewStyle().
			Foreground(colorGreen)

	selectedLabelStyle = lipgloss.NewStyle().
				Foreground(colorYellow).
				Bold(true)

	normalLabelStyle = lipgloss.NewStyle().
				Foreground(colorWhite)

	dimStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	countStyle = lipgloss.NewStyle().
			Foreground(colorMagenta)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorRed)

	subscribedStyle = lipgloss.NewStyle().
			Foreground(colorGreen).
			Bold(true)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)
)
