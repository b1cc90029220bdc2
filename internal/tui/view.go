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

	lo := m.layout()

	// Update list size with accurate content height when sidebar visible
	if m.showSidebar {
		m.l.SetSize(sidebarWidth-2, lo.contentH-10)
	}

	// Header
	header := titleStyle.Render(" tilelapse ─ tile stitch & timelapse control panel ")
	header = lipgloss.NewStyle().Width(lo.contentW).Padding(0).Render(header)

	// Sidebar
	var sidebar string
	if m.showSidebar {
		sidebar = lipgloss.NewStyle().Width(lo.sidebarW).Render(m.renderSidebar())
	}

	// Map viewport
	mapW := max(8, lo.mapW)
	mapH := max(4, lo.mapH)
	var mapView string
	switch {
	case m.showSessions:
		maxW := min(lo.mapW, 84)
		m.tbl.SetWidth(maxW - 4)
		m.tbl.SetHeight(min(lo.mapH-2, 12))
		box := boxStyle.Width(maxW).Render(m.tbl.View())
		mapView = lipgloss.Place(lo.mapW, lo.mapH, lipgloss.Center, lipgloss.Center, box)
	case m.pasteMode:
		// size textarea to map area
		m.ta.SetWidth(mapW)
		m.ta.SetHeight(min(mapH, 8))
		mapView = lipgloss.NewStyle().Width(lo.mapW).Height(lo.mapH).Render(m.ta.View())
	default:
		ascii := m.renderAsciiMap(mapW, mapH)
		// plain map canvas: no border, no background highlight
		mapView = lipgloss.NewStyle().Width(lo.mapW).Height(lo.mapH).Render(ascii)
	}

	// Popups: a blocking alert wins over the inspect popup
	popup := ""
	switch {
	case m.alert != "":
		maxPopupW := min(56, lo.contentW/2)
		if maxPopupW < 24 {
			maxPopupW = 24
		}
		box := alertStyle.MaxWidth(maxPopupW).Render(m.alert + "\n\n" + dimStyle.Render("enter to dismiss"))
		popup = lipgloss.Place(lo.contentW, lo.contentH, lipgloss.Center, lipgloss.Center, box)
	case m.inspectPopup != "":
		maxPopupW := min(56, lo.contentW/2)
		if maxPopupW < 20 {
			maxPopupW = 20
		}
		box := boxStyle.MaxWidth(maxPopupW).Render(m.inspectPopup)
		popup = lipgloss.Place(lo.contentW, lo.contentH, lipgloss.Left, lipgloss.Center, box)
	}

	// Body row
	var body string
	if m.showSidebar {
		body = lipgloss.JoinHorizontal(lipgloss.Top, sidebar, " ", mapView)
	} else {
		body = mapView
	}

	// Footer / help
	help := m.renderHelp()
	statusText := m.status
	if m.inFlight > 0 {
		statusText = m.sp.View() + statusText
	}
	status := dimStyle.Render(" " + statusText + " ")
	// hover coords at bottom-right
	coords := ""
	if m.hoverHasGeo {
		coords = dimStyle.Render(fmt.Sprintf("  lon=%.5f lat=%.5f z=%d  ", m.hoverLon, m.hoverLat, m.zoom))
	}
	left := lipgloss.JoinHorizontal(lipgloss.Bottom, status, help)
	spacerW := max(0, lo.contentW-lipgloss.Width(left)-lipgloss.Width(coords))
	right := lipgloss.Place(spacerW+lipgloss.Width(coords), 1, lipgloss.Right, lipgloss.Center, coords)
	footer := lipgloss.NewStyle().Width(lo.contentW).Render(lipgloss.JoinHorizontal(lipgloss.Bottom, left, right))

	// Compose UI with popup overlay between header and body
	ui := lipgloss.JoinVertical(lipgloss.Left, header, popup, body, footer)
	return appStyle.Width(lo.contentW).Height(m.height).Render(ui)
}

// renderSidebar stacks the picker summary above the active list.
func (m Model) renderSidebar() string {
	var b strings.Builder
	if m.sidebarMode == sidebarPickers {
		values := [fieldCount]string{m.startDate, m.endDate, m.startTime, m.endTime}
		for i := 0; i < fieldCount; i++ {
			line := fmt.Sprintf("%-10s %s", fieldNames[i], values[i])
			if i == m.focusField {
				line = focusStyle.Render("> " + line)
			} else {
				line = "  " + line
			}
			b.WriteString(line + "\n")
		}
		_, bbox, ok := m.sel.Selection()
		if ok {
			b.WriteString(dimStyle.Render(fmt.Sprintf("  bbox [%.3f %.3f\n        %.3f %.3f]\n",
				bbox.MinLon, bbox.MinLat, bbox.MaxLon, bbox.MaxLat)))
		} else {
			b.WriteString(dimStyle.Render("  bbox: none (press b)\n"))
		}
		if m.sessionID != "" {
			b.WriteString(dimStyle.Render("  session " + m.sessionID + "\n"))
		}
		b.WriteString("\n")
	}
	b.WriteString(m.l.View())
	return b.String()
}

func (m Model) renderHelp() string {
	if !m.helpVisible {
		return ""
	}
	keys := []string{
		"↑↓←→ pan",
		"+/- zoom",
		"b draw",
		"f fetch",
		"v video",
		"Tab pickers",
		"o layers",
		"s sessions",
		"p paste",
		"i inspect",
		"h help",
		"q quit",
	}
	return dimStyle.Render("  " + strings.Join(keys, "  "))
}
