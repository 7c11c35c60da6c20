package tui

import (
	"github.com/charmbracelet/lipgloss"

	"vicimap/internal/render"
)

// Styles
var (
	baseFg    = lipgloss.Color("#E6E6E6")
	baseDimFg = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#6B7280"}
	accentFg  = lipgloss.Color("#7C3AED")
	borderCol = lipgloss.Color("#243141")

	appStyle   = lipgloss.NewStyle().Foreground(baseFg)
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(borderCol).Padding(0, 1)
	titleStyle = lipgloss.NewStyle().Foreground(accentFg).Bold(true)
	dimStyle   = lipgloss.NewStyle().Foreground(baseDimFg)
	modeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#0B0F14")).Background(accentFg).Padding(0, 1)

	selectionRectStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFA500"))
	activeLabelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFA500")).Bold(true)
)

// groupStyle turns a stroke style into a terminal foreground style, so
// the preview uses the same palette the SVG export does.
func groupStyle(st render.Style) lipgloss.Style {
	if st.Stroke == "" {
		return appStyle
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(st.Stroke))
}
