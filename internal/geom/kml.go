package geom

import (
	"encoding/xml"
	"errors"
	"io"
	"os"
	"strconv"
	"strings"
)

// LoadKML extracts Placemark > Point coordinates into a point layer.
// Placemarks nest at arbitrary depth (Document, Folder), so the file is
// scanned token by token instead of decoded against a fixed shape.
// KML coordinates are "lon,lat[,alt]"; altitude is ignored.
func LoadKML(path string) (Layer, error) {
	f, err := os.Open(path)
	if err != nil {
		return Layer{}, err
	}
	defer f.Close()

	type kmlPoint struct {
		Coordinates string `xml:"coordinates"`
	}
	type kmlPlacemark struct {
		Point *kmlPoint `xml:"Point"`
	}

	var l Layer
	dec := xml.NewDecoder(f)
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Layer{}, err
		}
		se, ok := tok.(xml.StartElement)
		if !ok || se.Name.Local != "Placemark" {
			continue
		}
		var pm kmlPlacemark
		if err := dec.DecodeElement(&pm, &se); err != nil {
			return Layer{}, err
		}
		if pm.Point == nil {
			continue
		}
		// coordinates may contain multiple tuples separated by spaces
		for _, tuple := range strings.Fields(pm.Point.Coordinates) {
			vals := strings.Split(tuple, ",")
			if len(vals) < 2 {
				continue
			}
			lon, err1 := strconv.ParseFloat(strings.TrimSpace(vals[0]), 64)
			lat, err2 := strconv.ParseFloat(strings.TrimSpace(vals[1]), 64)
			if err1 != nil || err2 != nil {
				continue
			}
			l.addPoint(lon, lat)
		}
	}
	if l.Empty() {
		return Layer{}, errors.New("kml: no points found")
	}
	return l, nil
}
