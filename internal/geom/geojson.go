package geom

import (
	"encoding/json"
	"errors"
	"os"
)

// LoadGeoJSON reads a GeoJSON file into a Layer. Point, MultiPoint,
// LineString, MultiLineString, Polygon and MultiPolygon geometries are
// supported, bare or wrapped in Feature/FeatureCollection.
func LoadGeoJSON(path string) (Layer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Layer{}, err
	}
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return Layer{}, err
	}

	var l Layer
	t, _ := raw["type"].(string)
	switch t {
	case "Feature":
		if g, ok := raw["geometry"].(map[string]any); ok {
			addGeometry(&l, g)
		}
	case "FeatureCollection":
		fs, _ := raw["features"].([]any)
		for _, f := range fs {
			fm, ok := f.(map[string]any)
			if !ok {
				continue
			}
			if g, ok := fm["geometry"].(map[string]any); ok {
				addGeometry(&l, g)
			}
		}
	default:
		if len(raw) > 0 {
			addGeometry(&l, raw)
		}
	}
	if l.Empty() {
		return Layer{}, errors.New("geojson: no geometries found")
	}
	return l, nil
}

// addGeometry walks one GeoJSON geometry object into the layer.
func addGeometry(l *Layer, g map[string]any) {
	gt, _ := g["type"].(string)
	coords := g["coordinates"]
	switch gt {
	case "Point":
		if pt, ok := jsonPoint(coords); ok {
			l.addPoint(pt[0], pt[1])
		}
	case "MultiPoint":
		for _, pt := range jsonPoints(coords) {
			l.addPoint(pt[0], pt[1])
		}
	case "LineString":
		l.addLine(jsonPoints(coords))
	case "MultiLineString":
		arr, _ := coords.([]any)
		for _, el := range arr {
			l.addLine(jsonPoints(el))
		}
	case "Polygon":
		l.addPolygon(jsonRings(coords))
	case "MultiPolygon":
		arr, _ := coords.([]any)
		for _, el := range arr {
			l.addPolygon(jsonRings(el))
		}
	case "GeometryCollection":
		gs, _ := g["geometries"].([]any)
		for _, el := range gs {
			if gm, ok := el.(map[string]any); ok {
				addGeometry(l, gm)
			}
		}
	}
}

func jsonPoint(v any) (pt [2]float64, ok bool) {
	a, ok := v.([]any)
	if !ok || len(a) < 2 {
		return [2]float64{}, false
	}
	lon, lok := a[0].(float64)
	lat, aok := a[1].(float64)
	if !lok || !aok {
		return [2]float64{}, false
	}
	return [2]float64{lon, lat}, true
}

func jsonPoints(v any) [][2]float64 {
	arr, ok := v.([]any)
	if !ok {
		return nil
	}
	pts := make([][2]float64, 0, len(arr))
	for _, el := range arr {
		if pt, ok := jsonPoint(el); ok {
			pts = append(pts, pt)
		}
	}
	return pts
}

func jsonRings(v any) [][][2]float64 {
	arr, ok := v.([]any)
	if !ok {
		return nil
	}
	rings := make([][][2]float64, 0, len(arr))
	for _, el := range arr {
		if ring := jsonPoints(el); len(ring) >= 3 {
			rings = append(rings, ring)
		}
	}
	return rings
}
