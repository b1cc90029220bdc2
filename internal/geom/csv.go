package geom

import (
	"encoding/csv"
	"errors"
	"os"
	"strconv"
	"strings"
)

// LoadCSV reads a CSV with latitude/longitude columns into a point layer.
// Column detection: lat|latitude|y and lon|lng|long|longitude|x
// (case-insensitive).
func LoadCSV(path string) (Layer, error) {
	f, err := os.Open(path)
	if err != nil {
		return Layer{}, err
	}
	defer f.Close()
	r := csv.NewReader(f)
	r.TrimLeadingSpace = true
	recs, err := r.ReadAll()
	if err != nil {
		return Layer{}, err
	}
	if len(recs) == 0 {
		return Layer{}, errors.New("empty csv")
	}
	idxLat, idxLon := -1, -1
	for i, h := range recs[0] {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "lat", "latitude", "y":
			if idxLat == -1 {
				idxLat = i
			}
		case "lon", "lng", "long", "longitude", "x":
			if idxLon == -1 {
				idxLon = i
			}
		}
	}
	if idxLat == -1 || idxLon == -1 {
		return Layer{}, errors.New("csv: latitude/longitude columns not found")
	}
	var l Layer
	for _, row := range recs[1:] {
		if idxLon >= len(row) || idxLat >= len(row) {
			continue
		}
		lon, err1 := strconv.ParseFloat(strings.TrimSpace(row[idxLon]), 64)
		lat, err2 := strconv.ParseFloat(strings.TrimSpace(row[idxLat]), 64)
		if err1 != nil || err2 != nil {
			continue
		}
		l.addPoint(lon, lat)
	}
	if l.Empty() {
		return Layer{}, errors.New("csv: no valid points parsed")
	}
	return l, nil
}
