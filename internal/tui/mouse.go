package tui

import (
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"tilelapse/internal/geom"
)

// layout is the screen geometry shared by View and the mouse handler.
type layout struct {
	contentW, contentH int
	sidebarW           int
	mapW, mapH         int
	mapOriginX         int
	mapOriginY         int
}

func (m Model) layout() layout {
	var lo layout
	if m.showSidebar {
		lo.sidebarW = sidebarWidth
	}
	headerHeight := 1
	footerHeight := 2
	lo.contentH = m.height - headerHeight - footerHeight
	if lo.contentH < 4 {
		lo.contentH = 4
	}
	lo.contentW = max(10, m.width)
	lo.mapW = lo.contentW - lo.sidebarW - 1
	if lo.mapW < 10 {
		lo.mapW = 10
	}
	lo.mapH = lo.contentH
	lo.mapOriginX = lo.sidebarW
	if m.showSidebar {
		lo.mapOriginX++
	}
	lo.mapOriginY = headerHeight
	return lo
}

func (m Model) updateMouse(msg tea.MouseMsg) Model {
	lo := m.layout()
	if m.showSidebar {
		m.l.SetSize(sidebarWidth-2, lo.contentH-2)
	}

	cx, cy := msg.X, msg.Y
	inMap := cx >= lo.mapOriginX && cx < lo.mapOriginX+lo.mapW &&
		cy >= lo.mapOriginY && cy < lo.mapOriginY+lo.mapH
	if !inMap {
		m.hovering = false
		m.hoverHasGeo = false
		// a release outside the map still ends an active gesture
		if msg.Action == tea.MouseActionRelease && m.sel.Dragging() {
			m.finishDrag()
		}
		return m
	}

	m.hovering = true
	m.hoverCellX = cx - lo.mapOriginX
	m.hoverCellY = cy - lo.mapOriginY
	px, py := m.cellToMap(m.hoverCellX, m.hoverCellY, lo.mapW, lo.mapH)
	m.hoverLon, m.hoverLat = geom.Inverse(px, py)
	m.hoverHasGeo = true

	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		if m.zoom < maxZoom {
			m.setZoom(m.zoom + 1)
		}
		return m
	case msg.Button == tea.MouseButtonWheelDown:
		if m.zoom > 0 {
			m.setZoom(m.zoom - 1)
		}
		return m
	}

	if !m.sel.Armed() {
		return m
	}
	switch {
	case msg.Button == tea.MouseButtonLeft &&
		(msg.Action == tea.MouseActionPress || msg.Action == tea.MouseActionMotion):
		// first position of the gesture becomes the anchor
		m.sel.Drag(px, py)
	case msg.Action == tea.MouseActionRelease && m.sel.Dragging():
		m.finishDrag()
	}
	return m
}

func (m *Model) finishDrag() {
	ext, bbox, ok := m.sel.Finish()
	if !ok {
		return
	}
	m.status = fmt.Sprintf("selected [%.5f, %.5f, %.5f, %.5f]",
		bbox.MinLon, bbox.MinLat, bbox.MaxLon, bbox.MaxLat)
	slog.Debug("box selected",
		"extent", fmt.Sprintf("[%.1f,%.1f,%.1f,%.1f]", ext.MinX, ext.MinY, ext.MaxX, ext.MaxY),
		"zoom", m.zoom)
}
