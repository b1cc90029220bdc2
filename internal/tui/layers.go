package tui

import (
	"os"
	"path/filepath"
	"sort"

	list "github.com/charmbracelet/bubbles/list"

	"tilelapse/internal/geom"
)

// layerItem is one loadable reference-layer file in the sidebar browser.
type layerItem struct {
	title, desc string
	path        string
}

func (f layerItem) Title() string       { return f.title }
func (f layerItem) Description() string { return f.desc }
func (f layerItem) FilterValue() string { return f.title }

func (m *Model) refreshLayerDir() {
	entries, err := os.ReadDir(m.cwd)
	if err != nil {
		m.status = "read dir error: " + err.Error()
		return
	}
	var items []list.Item
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		ext := filepath.Ext(name)
		if geom.SupportedExt(ext) {
			items = append(items, layerItem{title: name, desc: ext, path: filepath.Join(m.cwd, name)})
		}
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].(layerItem).Title() < items[j].(layerItem).Title() })
	m.l.Title = "Layers"
	m.l.SetItems(items)
	if len(items) == 0 {
		m.status = "no layer files in current directory"
	}
}

// loadLayer loads a reference layer and recenters the map on it.
func (m *Model) loadLayer(p string) {
	l, err := geom.Load(p)
	if err != nil {
		m.status = "layer error: " + err.Error()
		return
	}
	m.layer = l
	m.hasLayer = true
	m.centerX, m.centerY = geom.Forward(
		(l.BBox.MinLon+l.BBox.MaxLon)/2,
		(l.BBox.MinLat+l.BBox.MaxLat)/2,
	)
	m.status = "layer: " + l.Name
}
