package geom

import "math"

// Spherical Web-Mercator (EPSG:3857), the projection the tile service
// stitches in.
const (
	earthRadius = 6378137.0
	originShift = math.Pi * earthRadius

	// MaxLat is the latitude limit of the square Web-Mercator world.
	MaxLat = 85.05112878

	// TileEdge is the pixel edge of one service tile.
	TileEdge = 256
)

// baseResolution is meters per pixel at zoom 0 (156543.0339...).
const baseResolution = 2 * originShift / TileEdge

// Projection converts between a projected plane and WGS84 degrees.
type Projection interface {
	ToWGS84(x, y float64) (lon, lat float64)
	FromWGS84(lon, lat float64) (x, y float64)
}

// WebMercator implements Projection for EPSG:3857.
type WebMercator struct{}

func (WebMercator) ToWGS84(x, y float64) (lon, lat float64)   { return Inverse(x, y) }
func (WebMercator) FromWGS84(lon, lat float64) (x, y float64) { return Forward(lon, lat) }

// Forward projects lon/lat degrees to Web-Mercator meters. Latitudes
// beyond the mercator limit are clamped.
func Forward(lon, lat float64) (x, y float64) {
	if lat > MaxLat {
		lat = MaxLat
	}
	if lat < -MaxLat {
		lat = -MaxLat
	}
	x = lon / 180 * originShift
	y = math.Log(math.Tan((90+lat)*math.Pi/360)) * earthRadius
	return x, y
}

// Inverse converts Web-Mercator meters back to lon/lat degrees.
func Inverse(x, y float64) (lon, lat float64) {
	lon = x / originShift * 180
	lat = 2*math.Atan(math.Exp(y/earthRadius))*180/math.Pi - 90
	return lon, lat
}

// Resolution returns projected meters per screen pixel at a zoom level.
func Resolution(zoom int) float64 {
	return baseResolution / math.Pow(2, float64(zoom))
}

// TilePitch returns the projected edge length of one tile at a zoom
// level, the grid pitch drawn extents snap to.
func TilePitch(zoom int) float64 {
	return TileEdge * Resolution(zoom)
}

// Snap rounds v to the nearest multiple of pitch.
func Snap(v, pitch float64) float64 {
	if pitch == 0 {
		return v
	}
	return math.Round(v/pitch) * pitch
}

// SnapExtent snaps each bound independently to the pitch grid. Snapping
// an already-snapped extent is a no-op.
func SnapExtent(e Extent, pitch float64) Extent {
	return Extent{
		MinX: Snap(e.MinX, pitch),
		MinY: Snap(e.MinY, pitch),
		MaxX: Snap(e.MaxX, pitch),
		MaxY: Snap(e.MaxY, pitch),
	}
}

// ProjectBBox converts a geographic bbox to a projected extent by its
// lower-left and upper-right corners.
func ProjectBBox(b BBox) Extent {
	minX, minY := Forward(b.MinLon, b.MinLat)
	maxX, maxY := Forward(b.MaxLon, b.MaxLat)
	return Extent{MinX: minX, MinY: minY, MaxX: maxX, MaxY: maxY}
}

// Geographic converts a projected extent back to a geographic bbox by
// its lower-left and upper-right corners.
func (e Extent) Geographic() BBox {
	minLon, minLat := Inverse(e.MinX, e.MinY)
	maxLon, maxLat := Inverse(e.MaxX, e.MaxY)
	return BBox{MinLon: minLon, MinLat: minLat, MaxLon: maxLon, MaxLat: maxLat}
}
