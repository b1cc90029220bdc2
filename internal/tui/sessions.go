package tui

import (
	"fmt"

	table "github.com/charmbracelet/bubbles/table"
)

func sessionColumns() []table.Column {
	return []table.Column{
		{Title: "#", Width: 3},
		{Title: "session", Width: 18},
		{Title: "start", Width: 17},
		{Title: "end", Width: 17},
		{Title: "bbox", Width: 30},
		{Title: "z", Width: 3},
	}
}

// refreshSessions rebuilds the history table, one row per successful
// fetch, newest last.
func (m *Model) refreshSessions() {
	rows := make([]table.Row, 0, len(m.sessions))
	for i, s := range m.sessions {
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", i+1),
			s.id,
			s.start,
			s.end,
			fmt.Sprintf("[%.3f,%.3f,%.3f,%.3f]", s.bbox.MinLon, s.bbox.MinLat, s.bbox.MaxLon, s.bbox.MaxLat),
			fmt.Sprintf("%d", s.zoom),
		})
	}
	m.tbl.SetRows(rows)
	if len(rows) > 0 {
		m.tbl.SetCursor(len(rows) - 1)
	}
}

// selectedSessionID is the session the interpolate trigger acts on: the
// highlighted row when the table is open, otherwise the latest fetch.
func (m Model) selectedSessionID() string {
	if m.showSessions {
		if i := m.tbl.Cursor(); i >= 0 && i < len(m.sessions) {
			return m.sessions[i].id
		}
	}
	return m.sessionID
}
