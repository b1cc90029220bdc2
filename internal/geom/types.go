package geom

// BBox is a geographic bounding box in lon/lat degrees (WGS84).
type BBox struct {
	MinLon float64
	MinLat float64
	MaxLon float64
	MaxLat float64
}

// Extent is an axis-aligned rectangle in projected (EPSG:3857) meters.
type Extent struct {
	MinX float64
	MinY float64
	MaxX float64
	MaxY float64
}

// Ring returns the closed 5-vertex outline of the extent:
// min/min, min/max, max/max, max/min, min/min.
func (e Extent) Ring() [][2]float64 {
	return [][2]float64{
		{e.MinX, e.MinY},
		{e.MinX, e.MaxY},
		{e.MaxX, e.MaxY},
		{e.MaxX, e.MinY},
		{e.MinX, e.MinY},
	}
}

// Width and Height are the extent's projected side lengths.
func (e Extent) Width() float64  { return e.MaxX - e.MinX }
func (e Extent) Height() float64 { return e.MaxY - e.MinY }

// Layer is a minimal geometry container for the map's reference overlays.
type Layer struct {
	Name     string
	Points   [][2]float64
	Lines    [][][2]float64
	Polygons [][][][2]float64 // rings, first outer, following holes
	BBox     BBox             // data bbox in lon/lat

	seeded bool // bbox initialised from the first vertex
}

// Empty reports whether the layer carries no geometry.
func (l *Layer) Empty() bool {
	return len(l.Points) == 0 && len(l.Lines) == 0 && len(l.Polygons) == 0
}

func (l *Layer) grow(lon, lat float64) {
	if !l.seeded {
		l.seeded = true
		l.BBox = BBox{MinLon: lon, MinLat: lat, MaxLon: lon, MaxLat: lat}
		return
	}
	if lon < l.BBox.MinLon {
		l.BBox.MinLon = lon
	}
	if lat < l.BBox.MinLat {
		l.BBox.MinLat = lat
	}
	if lon > l.BBox.MaxLon {
		l.BBox.MaxLon = lon
	}
	if lat > l.BBox.MaxLat {
		l.BBox.MaxLat = lat
	}
}

func (l *Layer) addPoint(lon, lat float64) {
	l.grow(lon, lat)
	l.Points = append(l.Points, [2]float64{lon, lat})
}

func (l *Layer) addLine(ls [][2]float64) {
	if len(ls) == 0 {
		return
	}
	for _, p := range ls {
		l.grow(p[0], p[1])
	}
	l.Lines = append(l.Lines, ls)
}

func (l *Layer) addPolygon(poly [][][2]float64) {
	if len(poly) == 0 {
		return
	}
	for _, ring := range poly {
		for _, p := range ring {
			l.grow(p[0], p[1])
		}
	}
	l.Polygons = append(l.Polygons, poly)
}
