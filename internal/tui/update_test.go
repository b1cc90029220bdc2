package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"tilelapse/internal/config"
	"tilelapse/internal/geom"
	"tilelapse/internal/service"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Service.URL = "http://localhost:8000"
	cfg.Panel.PastDays = 3
	cfg.Map.Zoom = 5
	cfg.Map.CenterLon = 78.9629
	cfg.Map.CenterLat = 20.5937
	return cfg
}

func keyRune(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestFetchWithoutSelectionAlerts(t *testing.T) {
	m := New(testConfig())
	next, cmd := m.Update(keyRune("f"))
	if cmd != nil {
		t.Error("fetch issued without a bounding box")
	}
	if next.(Model).alert == "" {
		t.Error("no alert raised for missing selection")
	}
}

func TestInterpolateWithoutSessionAlerts(t *testing.T) {
	m := New(testConfig())
	next, cmd := m.Update(keyRune("v"))
	if cmd != nil {
		t.Error("interpolate issued without a session")
	}
	if next.(Model).alert == "" {
		t.Error("no alert raised for missing session")
	}
}

func TestFetchStartAfterEndAlerts(t *testing.T) {
	m := New(testConfig())
	m.sel.SetSelection(
		geom.ProjectBBox(geom.BBox{MinLon: 70, MinLat: 5, MaxLon: 90, MaxLat: 25}),
		geom.Resolution(m.zoom))
	m.startDate, m.endDate = "2025-08-31", "2025-08-30"
	m.startTime, m.endTime = "10:15", "10:15"

	next, cmd := m.Update(keyRune("f"))
	if cmd != nil {
		t.Error("fetch issued with start after end")
	}
	if got := next.(Model).alert; !strings.Contains(got, "Start must not be after end") {
		t.Errorf("alert = %q", got)
	}
}

func TestFetchWithSelectionStarts(t *testing.T) {
	m := New(testConfig())
	m.sel.SetSelection(
		geom.ProjectBBox(geom.BBox{MinLon: 70, MinLat: 5, MaxLon: 90, MaxLat: 25}),
		geom.Resolution(m.zoom))
	m.startDate, m.endDate = "2025-08-30", "2025-08-31"
	m.startTime, m.endTime = "09:15", "10:45"

	next, cmd := m.Update(keyRune("f"))
	got := next.(Model)
	if cmd == nil {
		t.Fatal("no command issued for a valid fetch")
	}
	if got.alert != "" {
		t.Errorf("unexpected alert %q", got.alert)
	}
	if got.inFlight != 1 {
		t.Errorf("inFlight = %d, want 1", got.inFlight)
	}
	if got.status != "Fetching stitched frames..." {
		t.Errorf("status = %q", got.status)
	}
}

func TestAlertBlocksUntilDismissed(t *testing.T) {
	m := New(testConfig())
	next, _ := m.Update(keyRune("v"))
	m = next.(Model)
	if m.alert == "" {
		t.Fatal("expected an alert")
	}

	// any other key is swallowed
	next, cmd := m.Update(keyRune("q"))
	m = next.(Model)
	if cmd != nil || m.alert == "" {
		t.Error("alert did not block input")
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if next.(Model).alert != "" {
		t.Error("enter did not dismiss the alert")
	}
}

func TestFetchCompletionRecordsSession(t *testing.T) {
	m := New(testConfig())
	m.inFlight = 1
	req := service.NewFrameRequest("2025-08-30", "09:15", "2025-08-31", "10:45",
		geom.BBox{MinLon: 70, MinLat: 5, MaxLon: 90, MaxLat: 25}, 6)
	next, _ := m.Update(fetchDoneMsg{
		req: req,
		res: &service.FetchResult{
			Directory: "/data/runs/session_20250831_101500",
			SessionID: "session_20250831_101500",
		},
	})
	got := next.(Model)
	if got.inFlight != 0 {
		t.Errorf("inFlight = %d, want 0", got.inFlight)
	}
	if got.sessionID != "session_20250831_101500" {
		t.Errorf("sessionID = %q", got.sessionID)
	}
	if len(got.sessions) != 1 {
		t.Fatalf("got %d sessions, want 1", len(got.sessions))
	}
	if got.sessions[0].start != req.Datetime || got.sessions[0].zoom != req.Zoom {
		t.Errorf("session row = %+v", got.sessions[0])
	}
	if got.status != "Frames saved. Ready to interpolate." {
		t.Errorf("status = %q", got.status)
	}
}

func TestFetchFailureKeepsPreviousSession(t *testing.T) {
	m := New(testConfig())
	m.sessionID = "session_a"
	m.sessions = []session{{id: "session_a"}}
	m.sel.SetSelection(
		geom.ProjectBBox(geom.BBox{MinLon: 70, MinLat: 5, MaxLon: 90, MaxLat: 25}),
		geom.Resolution(m.zoom))
	m.inFlight = 1

	next, _ := m.Update(fetchDoneMsg{err: errors.New("connection refused")})
	got := next.(Model)
	if got.inFlight != 0 {
		t.Errorf("inFlight = %d, want 0", got.inFlight)
	}
	if got.sessionID != "session_a" {
		t.Errorf("failed fetch replaced the session id: %q", got.sessionID)
	}
	if len(got.sessions) != 1 {
		t.Errorf("failed fetch touched the history: %d rows", len(got.sessions))
	}
	if _, _, ok := got.sel.Selection(); !ok {
		t.Error("failed fetch dropped the selection")
	}
	if got.status != "Error fetching frames. See log." {
		t.Errorf("status = %q", got.status)
	}
}

func TestVideoFailureKeepsSession(t *testing.T) {
	m := New(testConfig())
	m.sessionID = "session_a"
	m.inFlight = 1

	next, _ := m.Update(videoDoneMsg{sessionID: "session_a", err: errors.New("render failed")})
	got := next.(Model)
	if got.inFlight != 0 {
		t.Errorf("inFlight = %d, want 0", got.inFlight)
	}
	if got.sessionID != "session_a" {
		t.Errorf("failed video call replaced the session id: %q", got.sessionID)
	}
	if got.status != "Error generating video. See log." {
		t.Errorf("status = %q", got.status)
	}
}

func TestOverlappingFetchesLastCompletionWins(t *testing.T) {
	m := New(testConfig())
	m.inFlight = 2
	req := service.NewFrameRequest("2025-08-30", "09:15", "2025-08-31", "10:45",
		geom.BBox{MinLon: 70, MinLat: 5, MaxLon: 90, MaxLat: 25}, 6)

	next, _ := m.Update(fetchDoneMsg{req: req,
		res: &service.FetchResult{Directory: "/data/runs/session_a", SessionID: "session_a"}})
	m = next.(Model)
	next, _ = m.Update(fetchDoneMsg{req: req,
		res: &service.FetchResult{Directory: "/data/runs/session_b", SessionID: "session_b"}})
	got := next.(Model)

	if got.sessionID != "session_b" {
		t.Errorf("sessionID = %q, want the later completion", got.sessionID)
	}
	if len(got.sessions) != 2 {
		t.Errorf("got %d history rows, want both completions", len(got.sessions))
	}
	if got.inFlight != 0 {
		t.Errorf("inFlight = %d, want 0", got.inFlight)
	}
}

func TestPasteSetsSelection(t *testing.T) {
	m := New(testConfig())
	m.pasteMode = true
	m.ta.SetValue("70,5,90,25")

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	got := next.(Model)
	if got.pasteMode {
		t.Error("paste mode still active")
	}
	if _, _, ok := got.sel.Selection(); !ok {
		t.Error("paste did not publish a selection")
	}
	if !strings.HasPrefix(got.status, "selected [") {
		t.Errorf("status = %q", got.status)
	}
}

func TestViewRendersAfterResize(t *testing.T) {
	m := New(testConfig())
	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	v := next.(Model).View()
	if v == "" {
		t.Fatal("empty view after resize")
	}
	if !strings.Contains(v, "tilelapse") {
		t.Error("header missing from view")
	}
}

func TestZoomReclampsArmedSelector(t *testing.T) {
	m := New(testConfig())
	m.sel.Activate(geom.Resolution(m.zoom))
	before := m.sel.Pitch()

	next, _ := m.Update(keyRune("+"))
	got := next.(Model)
	if got.zoom != 6 {
		t.Fatalf("zoom = %d, want 6", got.zoom)
	}
	if after := got.sel.Pitch(); after >= before {
		t.Errorf("pitch did not follow the zoom: %v -> %v", before, after)
	}
}
