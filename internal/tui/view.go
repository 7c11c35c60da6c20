package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	ly := m.screenLayout()
	if m.showSidebar {
		m.l.SetSize(ly.sidebarWidth-2, ly.contentHeight-2)
	}

	// Header
	title := titleStyle.Render(" vicimap ─ vicinity map editor ")
	mode := modeStyle.Render(m.mode.String())
	if m.mode == modeSelection && m.subMode != subModeNone {
		mode = modeStyle.Render(m.mode.String() + "/" + m.subMode.String())
	}
	header := lipgloss.NewStyle().Width(ly.contentWidth).Render(
		lipgloss.JoinHorizontal(lipgloss.Center, title, " ", mode))

	// Sidebar
	var sidebar string
	if m.showSidebar {
		sidebar = lipgloss.NewStyle().Width(ly.sidebarWidth).Render(m.l.View())
	}

	// Map viewport
	m.mapW = max(8, ly.mapW)
	m.mapH = max(4, ly.mapH)
	var mapView string
	switch {
	case m.showAttrs:
		colW := 0
		for _, c := range m.tbl.Columns() {
			colW += c.Width + 3
		}
		if colW == 0 {
			colW = min(60, ly.contentWidth-6)
		}
		maxW := min(ly.mapW, max(32, colW))
		m.tbl.SetWidth(maxW - 4)
		m.tbl.SetHeight(min(ly.mapH-2, 20))
		attrsBox := boxStyle.Width(maxW).Render(m.tbl.View())
		mapView = lipgloss.Place(ly.mapW, ly.mapH, lipgloss.Center, lipgloss.Center, attrsBox)
	case m.textEntry:
		m.ta.SetWidth(min(m.mapW-4, 48))
		box := boxStyle.Render(m.ta.View())
		mapView = lipgloss.Place(ly.mapW, ly.mapH, lipgloss.Center, lipgloss.Center, box)
	default:
		ascii := m.renderMap(m.mapW, m.mapH)
		mapView = lipgloss.NewStyle().Width(ly.mapW).Height(ly.mapH).Render(ascii)
	}

	var body string
	if m.showSidebar {
		body = lipgloss.JoinHorizontal(lipgloss.Top, sidebar, " ", mapView)
	} else {
		body = mapView
	}

	// Footer / help
	help := m.renderHelp()
	status := dimStyle.Render(" " + m.status + " ")
	coords := ""
	if m.hoverOK {
		coords = dimStyle.Render(fmt.Sprintf("  x=%.1f y=%.1f  ", m.hoverPt.X, m.hoverPt.Y))
	}
	left := lipgloss.JoinHorizontal(lipgloss.Bottom, status, help)
	spacerW := max(0, ly.contentWidth-lipgloss.Width(left)-lipgloss.Width(coords))
	right := lipgloss.Place(spacerW+lipgloss.Width(coords), 1, lipgloss.Right, lipgloss.Center, coords)
	footer := lipgloss.NewStyle().Width(ly.contentWidth).Render(lipgloss.JoinHorizontal(lipgloss.Bottom, left, right))

	ui := lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
	return appStyle.Width(ly.contentWidth).Height(m.height).Render(ui)
}

func (m Model) renderHelp() string {
	if !m.helpVisible {
		return ""
	}
	keys := []string{
		"m mode",
		"s/d select",
		"g grab",
		"t text",
		"drag move",
		"rdrag rotate",
		"v/n toggle",
		"u/U undo",
		"e/x export",
		"Tab features",
		"h help",
		"q quit",
	}
	return dimStyle.Render("  " + strings.Join(keys, "  "))
}
