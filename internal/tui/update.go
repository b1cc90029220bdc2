package tui

import (
	"fmt"
	"log/slog"
	"strings"

	list "github.com/charmbracelet/bubbles/list"
	spinner "github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/browser"

	"tilelapse/internal/geom"
	"tilelapse/internal/service"
)

const sidebarWidth = 30

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.showSidebar {
			m.l.SetSize(sidebarWidth-2, m.height-1-2) // provisional; refined in View
		}

	case spinner.TickMsg:
		if m.inFlight > 0 {
			var cmd tea.Cmd
			m.sp, cmd = m.sp.Update(msg)
			return m, cmd
		}
		return m, nil

	case fetchDoneMsg:
		m.inFlight--
		if msg.err != nil {
			slog.Error("fetch stitched frames failed", "error", msg.err)
			m.status = "Error fetching frames. See log."
			return m, nil
		}
		// last completion wins the session id and the status line
		m.sessionID = msg.res.SessionID
		m.sessions = append(m.sessions, session{
			id:    msg.res.SessionID,
			start: msg.req.Datetime,
			end:   msg.req.Endtime,
			bbox: geom.BBox{
				MinLon: msg.req.BBox[0], MinLat: msg.req.BBox[1],
				MaxLon: msg.req.BBox[2], MaxLat: msg.req.BBox[3],
			},
			zoom: msg.req.Zoom,
		})
		m.refreshSessions()
		m.status = "Frames saved. Ready to interpolate."
		slog.Info("frames fetched", "session", msg.res.SessionID, "directory", msg.res.Directory)
		return m, nil

	case videoDoneMsg:
		m.inFlight--
		if msg.err != nil {
			slog.Error("interpolate and generate video failed", "session", msg.sessionID, "error", msg.err)
			m.status = "Error generating video. See log."
			return m, nil
		}
		m.status = "Video ready: " + msg.res.VideoURL
		slog.Info("video generated", "session", msg.sessionID, "url", msg.res.VideoURL)
		if err := browser.OpenURL(msg.res.VideoURL); err != nil {
			slog.Warn("open browser failed", "url", msg.res.VideoURL, "error", err)
		}
		return m, nil

	case tea.KeyMsg:
		return m.updateKey(msg)

	case tea.MouseMsg:
		m = m.updateMouse(msg)
	}

	// Pass messages to list when visible
	if m.showSidebar {
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// An alert blocks everything until dismissed.
	if m.alert != "" {
		switch msg.String() {
		case "enter", "esc", " ":
			m.alert = ""
		}
		return m, nil
	}

	// If list is visible and filtering, send keys to list and ignore
	// global commands
	if m.showSidebar && m.l.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return m, cmd
	}

	if m.pasteMode {
		switch msg.String() {
		case "esc":
			m.pasteMode = false
			m.ta.Blur()
			return m, nil
		case "enter":
			return m.applyPaste()
		}
		var cmd tea.Cmd
		m.ta, cmd = m.ta.Update(msg)
		return m, cmd
	}

	if m.showSessions {
		switch msg.String() {
		case "esc", "s":
			m.showSessions = false
			m.status = "view mode"
			return m, nil
		case "v":
			return m.triggerInterpolate()
		case "q", "ctrl+c":
			return m, tea.Quit
		}
		var cmd tea.Cmd
		m.tbl, cmd = m.tbl.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "+", "=":
		if m.zoom < maxZoom {
			m.setZoom(m.zoom + 1)
		}
	case "-", "_":
		if m.zoom > 0 {
			m.setZoom(m.zoom - 1)
		}
	case "tab":
		m.showSidebar = !m.showSidebar
		if m.showSidebar {
			m.sidebarMode = sidebarPickers
			m.refreshPicker()
			m.l.SetSize(sidebarWidth-2, m.height-1-2)
		}
	case "o":
		if m.showSidebar && m.sidebarMode == sidebarLayers {
			m.showSidebar = false
			break
		}
		m.showSidebar = true
		m.sidebarMode = sidebarLayers
		m.refreshLayerDir()
		m.l.SetSize(sidebarWidth-2, m.height-1-2)
	case "left":
		if m.showSidebar && m.sidebarMode == sidebarPickers {
			m.focusField = (m.focusField + fieldCount - 1) % fieldCount
			m.refreshPicker()
		} else {
			m.pan(-panStep, 0)
		}
	case "right":
		if m.showSidebar && m.sidebarMode == sidebarPickers {
			m.focusField = (m.focusField + 1) % fieldCount
			m.refreshPicker()
		} else {
			m.pan(panStep, 0)
		}
	case "up":
		if !m.showSidebar {
			m.pan(0, panStep)
		}
	case "down":
		if !m.showSidebar {
			m.pan(0, -panStep)
		}
	case "enter":
		if m.showSidebar {
			switch m.sidebarMode {
			case sidebarPickers:
				m.applyPicker()
			case sidebarLayers:
				if it, ok := m.l.SelectedItem().(layerItem); ok {
					m.loadLayer(it.path)
				}
			}
		}
	case "b":
		if m.sel.Armed() {
			m.sel.Deactivate()
			m.status = "draw cancelled"
		} else {
			m.sel.Activate(geom.Resolution(m.zoom))
			m.status = "draw: drag a square on the map"
		}
	case "p":
		m.pasteMode = !m.pasteMode
		if m.pasteMode {
			m.ta.SetValue("")
			m.status = "paste a bbox"
			m.ta.Focus()
		} else {
			m.status = "view mode"
			m.ta.Blur()
		}
	case "s":
		m.showSessions = !m.showSessions
		if m.showSessions {
			m.refreshSessions()
		}
	case "f":
		return m.triggerFetch()
	case "v":
		return m.triggerInterpolate()
	case "i":
		if m.inspectPopup != "" {
			m.inspectPopup = ""
			break
		}
		m.inspectPopup = m.selectionInfo()
		m.status = "inspect selection"
	case "h":
		m.helpVisible = !m.helpVisible
	case "esc":
		m.inspectPopup = ""
		if m.sel.Armed() {
			m.sel.Deactivate()
			m.status = "draw cancelled"
		}
	}

	if m.showSidebar {
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return m, cmd
	}
	return m, nil
}

// triggerFetch validates the inputs and issues the fetch call. Missing
// input raises a blocking alert and sends nothing.
func (m Model) triggerFetch() (tea.Model, tea.Cmd) {
	_, bbox, ok := m.sel.Selection()
	if m.startDate == "" || m.endDate == "" || m.startTime == "" || m.endTime == "" || !ok {
		m.alert = "Select start/end date and time, and draw a bounding box first."
		return m, nil
	}
	start := m.startDate + " " + m.startTime
	end := m.endDate + " " + m.endTime
	// the fixed formats sort lexicographically
	if start > end {
		m.alert = "Start must not be after end."
		return m, nil
	}
	req := service.NewFrameRequest(m.startDate, m.startTime, m.endDate, m.endTime, bbox, m.zoom)
	m.inFlight++
	m.status = "Fetching stitched frames..."
	slog.Info("fetching stitched frames", "start", start, "end", end, "zoom", m.zoom,
		"bbox", fmt.Sprintf("[%.5f,%.5f,%.5f,%.5f]", bbox.MinLon, bbox.MinLat, bbox.MaxLon, bbox.MaxLat))
	return m, tea.Batch(fetchFramesCmd(m.svc, req), m.sp.Tick)
}

// triggerInterpolate issues the video call for the highlighted session
// (sessions table open) or the latest one. No session yet raises a
// blocking alert and sends nothing.
func (m Model) triggerInterpolate() (tea.Model, tea.Cmd) {
	id := m.selectedSessionID()
	if id == "" {
		m.alert = "Fetch frames before interpolating."
		return m, nil
	}
	m.inFlight++
	m.status = "Interpolating frames..."
	slog.Info("interpolating", "session", id)
	return m, tea.Batch(interpolateCmd(m.svc, id), m.sp.Tick)
}

// applyPaste parses the textarea as a bbox and publishes it as the
// selection, snapped like a drawn one.
func (m Model) applyPaste() (tea.Model, tea.Cmd) {
	s := strings.TrimSpace(m.ta.Value())
	if s == "" {
		m.status = "paste: empty"
		return m, nil
	}
	b, err := geom.ParseBBox(s)
	if err != nil {
		m.status = "paste error: " + err.Error()
		return m, nil
	}
	_, bbox := m.sel.SetSelection(geom.ProjectBBox(b), geom.Resolution(m.zoom))
	m.status = fmt.Sprintf("selected [%.5f, %.5f, %.5f, %.5f]",
		bbox.MinLon, bbox.MinLat, bbox.MaxLon, bbox.MaxLat)
	m.pasteMode = false
	m.ta.Blur()
	return m, nil
}

// selectionInfo builds the inspect popup content.
func (m Model) selectionInfo() string {
	ext, bbox, ok := m.sel.Selection()
	if !ok {
		return "no selection yet; press b and drag a box"
	}
	info := []string{
		fmt.Sprintf("bbox: [%.5f, %.5f, %.5f, %.5f]", bbox.MinLon, bbox.MinLat, bbox.MaxLon, bbox.MaxLat),
		fmt.Sprintf("extent: [%.1f, %.1f, %.1f, %.1f] m", ext.MinX, ext.MinY, ext.MaxX, ext.MaxY),
		fmt.Sprintf("side: %.0f m x %.0f m", ext.Width(), ext.Height()),
		fmt.Sprintf("snap pitch: %.1f m (zoom %d)", m.sel.Pitch(), m.zoom),
	}
	if m.sessionID != "" {
		info = append(info, "session: "+m.sessionID)
	}
	return strings.Join(info, "\n")
}

func (m *Model) setZoom(z int) {
	m.zoom = z
	m.status = fmt.Sprintf("zoom: %d", m.zoom)
	// the snap pitch follows the resolution, so an armed gesture re-arms
	if m.sel.Armed() && !m.sel.Dragging() {
		m.sel.Activate(geom.Resolution(m.zoom))
	}
}

// pan moves the viewport by whole cells (2x4 micro pixels per cell).
func (m *Model) pan(dxCells, dyCells int) {
	res := geom.Resolution(m.zoom)
	m.centerX += float64(dxCells*2) * res
	m.centerY += float64(dyCells*4) * res
}

const (
	maxZoom = 12
	panStep = 2
)
