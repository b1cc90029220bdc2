package geom

import (
	"errors"
	"strconv"
	"strings"
)

// ParseWKT parses a subset of WKT into a Layer.
// Supported: POINT(x y), MULTIPOINT(x y, ...), LINESTRING(x y, ...),
// POLYGON((x y, ...)).
func ParseWKT(wkt string) (Layer, error) {
	s := strings.TrimSpace(wkt)
	if s == "" {
		return Layer{}, errors.New("empty wkt")
	}
	up := strings.ToUpper(s)
	var l Layer
	switch {
	case strings.HasPrefix(up, "MULTIPOINT"), strings.HasPrefix(up, "POINT"):
		body, err := wktBody(s, "(", ")")
		if err != nil {
			return Layer{}, err
		}
		for _, pt := range wktCoords(body) {
			l.addPoint(pt[0], pt[1])
		}
	case strings.HasPrefix(up, "LINESTRING"):
		body, err := wktBody(s, "(", ")")
		if err != nil {
			return Layer{}, err
		}
		l.addLine(wktCoords(body))
	case strings.HasPrefix(up, "POLYGON"):
		body, err := wktBody(s, "((", "))")
		if err != nil {
			return Layer{}, err
		}
		// outer ring only; holes are not drawn
		l.addPolygon([][][2]float64{wktCoords(body)})
	default:
		return Layer{}, errors.New("unsupported wkt type")
	}
	if l.Empty() {
		return Layer{}, errors.New("wkt: no coordinates parsed")
	}
	return l, nil
}

// ParseBBox reads a pasted selection: either four comma-separated numbers
// "minLon,minLat,maxLon,maxLat" or a WKT POLYGON whose bounds are taken.
func ParseBBox(s string) (BBox, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return BBox{}, errors.New("empty input")
	}
	if strings.HasPrefix(strings.ToUpper(s), "POLYGON") {
		l, err := ParseWKT(s)
		if err != nil {
			return BBox{}, err
		}
		return l.BBox, nil
	}
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return BBox{}, errors.New("expected minLon,minLat,maxLon,maxLat")
	}
	vals := make([]float64, 4)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return BBox{}, errors.New("bbox: bad number " + strings.TrimSpace(p))
		}
		vals[i] = v
	}
	return BBox{MinLon: vals[0], MinLat: vals[1], MaxLon: vals[2], MaxLat: vals[3]}, nil
}

func wktBody(s, open, shut string) (string, error) {
	i := strings.Index(s, open)
	j := strings.LastIndex(s, shut)
	if i < 0 || j <= i {
		return "", errors.New("wkt: invalid parentheses")
	}
	return s[i+len(open) : j], nil
}

// wktCoords splits "x y, x y, ..." into coordinate pairs, skipping
// malformed tuples.
func wktCoords(block string) [][2]float64 {
	var pts [][2]float64
	for _, tup := range strings.Split(block, ",") {
		parts := strings.Fields(strings.TrimSpace(tup))
		if len(parts) < 2 {
			continue
		}
		x, err1 := strconv.ParseFloat(parts[0], 64)
		y, err2 := strconv.ParseFloat(parts[1], 64)
		if err1 != nil || err2 != nil {
			continue
		}
		pts = append(pts, [2]float64{x, y})
	}
	return pts
}
