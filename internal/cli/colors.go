package cli

import "github.com/charmbracelet/lipgloss"

// Calm colour palette 🌊
// Shared healing-theme colours for consistent branding across CLI and TUI
var (
	// Core calm colours (deep to light)
	CalmIndigo   = lipgloss.Color("#4B0082") // Third-eye indigo
	CalmViolet   = lipgloss.Color("#8A2BE2") // Blue violet
	CalmTeal     = lipgloss.Color("#40E0D0") // Turquoise
	CalmSeafoam  = lipgloss.Color("#90E0EF") // Light ocean blue
	CalmLavender = lipgloss.Color("#E6E6FA") // Lavender mist

	// Accent colours
	SoftGray = lipgloss.Color("#8394A8") // Muted slate for subtle text
)
