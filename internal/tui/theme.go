package tui

import "github.com/charmbracelet/lipgloss"

// ---------------------------------------------------------------------------
// Catppuccin Mocha palette, the subset the storefront uses
// https://catppuccin.com/palette
// ---------------------------------------------------------------------------

const (
	colorRosewater lipgloss.Color = "#f5e0dc"
	colorPeach     lipgloss.Color = "#fab387"
	colorRed       lipgloss.Color = "#f38ba8"
	colorYellow    lipgloss.Color = "#f9e2af"
	colorGreen     lipgloss.Color = "#a6e3a1"
	colorMauve     lipgloss.Color = "#cba6f7"
	colorLavender  lipgloss.Color = "#b4befe"

	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorOverlay0 lipgloss.Color = "#6c7086"
	colorSurface0 lipgloss.Color = "#313244"
	colorMantle   lipgloss.Color = "#181825"
)

// ---------------------------------------------------------------------------
// Semantic color aliases
// ---------------------------------------------------------------------------

const (
	colorAccent  = colorPeach
	colorBrand   = colorRosewater
	colorFocus   = colorLavender
	colorSuccess = colorGreen
	colorError   = colorRed
	colorWarning = colorYellow
	colorMuted   = colorOverlay0
	colorPrice   = colorMauve
)

var (
	brandStyle = lipgloss.NewStyle().Foreground(colorBrand).Bold(true)
	titleStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true).Underline(true)

	activeTabStyle = lipgloss.NewStyle().
			Background(colorSurface0).
			Foreground(colorAccent).
			Bold(true).
			Padding(0, 1)
	inactiveTabStyle = lipgloss.NewStyle().
				Background(colorMantle).
				Foreground(colorSubtext0).
				Padding(0, 1)
	badgeStyle = lipgloss.NewStyle().Foreground(colorWarning).Bold(true)

	chipStyle       = lipgloss.NewStyle().Foreground(colorSubtext0).Padding(0, 1)
	activeChipStyle = lipgloss.NewStyle().Foreground(colorMantle).Background(colorAccent).Bold(true).Padding(0, 1)

	cursorStyle   = lipgloss.NewStyle().Foreground(colorFocus).Bold(true)
	nameStyle     = lipgloss.NewStyle().Foreground(colorText).Bold(true)
	mutedStyle    = lipgloss.NewStyle().Foreground(colorMuted)
	priceStyle    = lipgloss.NewStyle().Foreground(colorPrice)
	totalStyle    = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	favoriteStyle = lipgloss.NewStyle().Foreground(colorRed)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSurface0).
			Padding(0, 1)

	statusStyle    = lipgloss.NewStyle().Foreground(colorSuccess)
	statusErrStyle = lipgloss.NewStyle().Foreground(colorError)
)
