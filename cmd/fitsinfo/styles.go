package main

import "github.com/charmbracelet/lipgloss"

// Color palette shared across all fitsinfo output.
const (
	colorPrimary = lipgloss.Color("#7C3AED")
	colorMuted   = lipgloss.Color("#6B7280")
	colorValue   = lipgloss.Color("#3B82F6")
	colorWarning = lipgloss.Color("#F59E0B")
)

var (
	// titleStyle is for section headers.
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	// keywordStyle is for header keywords.
	keywordStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorValue)

	// commentStyle is for card comments and secondary text.
	commentStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	// warnStyle is for lossy-encoding warnings.
	warnStyle = lipgloss.NewStyle().
			Foreground(colorWarning)

	// labelStyle is for stat labels.
	labelStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Width(10)
)
