package tui

import (
	"os"
	"time"

	list "github.com/charmbracelet/bubbles/list"
	spinner "github.com/charmbracelet/bubbles/spinner"
	table "github.com/charmbracelet/bubbles/table"
	textarea "github.com/charmbracelet/bubbles/textarea"

	"tilelapse/internal/config"
	"tilelapse/internal/geom"
	"tilelapse/internal/schedule"
	"tilelapse/internal/selector"
	"tilelapse/internal/service"
)

type sidebarMode int

const (
	sidebarPickers sidebarMode = iota
	sidebarLayers
)

// Picker fields, in sidebar order.
const (
	fieldStartDate = iota
	fieldEndDate
	fieldStartTime
	fieldEndTime
	fieldCount
)

// session is one successful fetch: the inputs it was made with and the
// identifier the service handed back.
type session struct {
	id         string
	start, end string
	bbox       geom.BBox
	zoom       int
}

type Model struct {
	cfg *config.Config
	svc *service.Client

	width  int
	height int

	showSidebar bool
	sidebarMode sidebarMode
	helpVisible bool

	// map viewport, Web-Mercator meters at an integer zoom
	centerX float64
	centerY float64
	zoom    int

	status string

	// reference overlay
	cwd      string
	l        list.Model
	layer    geom.Layer
	hasLayer bool

	// box selection
	sel        *selector.Selector
	focusField int

	// picker values (wire formats: YYYY-MM-DD and HH:MM)
	startDate string
	endDate   string
	startTime string
	endTime   string

	// fetch sessions
	sessionID    string
	sessions     []session
	showSessions bool
	tbl          table.Model

	// paste mode
	pasteMode bool
	ta        textarea.Model

	// in-flight remote calls; overlapping completions each overwrite
	// shared state, last one wins
	inFlight int
	sp       spinner.Model

	// popups
	alert        string // blocking until dismissed
	inspectPopup string

	// hover state
	hovering    bool
	hoverCellX  int
	hoverCellY  int
	hoverHasGeo bool
	hoverLon    float64
	hoverLat    float64
}

func New(cfg *config.Config) Model {
	now := time.Now()
	m := Model{
		cfg:         cfg,
		svc:         service.NewClient(cfg.Service.URL),
		helpVisible: true,
		zoom:        cfg.Map.Zoom,
		status:      "tilelapse ready",
		sel:         selector.New(geom.WebMercator{}),
	}
	m.centerX, m.centerY = geom.Forward(cfg.Map.CenterLon, cfg.Map.CenterLat)
	m.cwd, _ = os.Getwd()

	// default picker values: today, nearest upcoming frame slot
	m.startDate = now.Format("2006-01-02")
	m.endDate = m.startDate
	m.startTime = schedule.DefaultSlot(now)
	m.endTime = m.startTime

	// list setup (pickers and layer browser share it)
	d := list.NewDefaultDelegate()
	d.ShowDescription = false
	m.l = list.New(nil, d, 0, 0)
	m.l.SetShowHelp(false)
	m.l.SetShowStatusBar(false)
	m.l.SetFilteringEnabled(true)
	m.refreshPicker()

	// textarea setup
	m.ta = textarea.New()
	m.ta.Placeholder = "Paste minLon,minLat,maxLon,maxLat or a WKT POLYGON. Press Enter to select; Esc to cancel."
	m.ta.CharLimit = 0
	m.ta.SetWidth(50)
	m.ta.SetHeight(4)

	m.sp = spinner.New()
	m.sp.Spinner = spinner.Dot

	m.tbl = table.New(
		table.WithColumns(sessionColumns()),
		table.WithHeight(8),
		table.WithFocused(true),
	)
	return m
}

// NewWithLayer preloads a reference layer at launch.
func NewWithLayer(cfg *config.Config, path string) Model {
	m := New(cfg)
	m.loadLayer(path)
	return m
}
