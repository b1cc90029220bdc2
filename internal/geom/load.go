package geom

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// Load reads any supported reference-layer format, dispatching on the
// file extension. The returned layer is named after the file.
func Load(path string) (Layer, error) {
	var (
		l   Layer
		err error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".geojson", ".json":
		l, err = LoadGeoJSON(path)
	case ".csv":
		l, err = LoadCSV(path)
	case ".kml":
		l, err = LoadKML(path)
	case ".wkt":
		var data []byte
		data, err = os.ReadFile(path)
		if err == nil {
			l, err = ParseWKT(string(data))
		}
	default:
		err = errors.New("unsupported file: " + filepath.Ext(path))
	}
	if err != nil {
		return Layer{}, err
	}
	l.Name = filepath.Base(path)
	return l, nil
}

// SupportedExt reports whether ext (with leading dot) names a loadable
// layer format.
func SupportedExt(ext string) bool {
	switch strings.ToLower(ext) {
	case ".geojson", ".json", ".csv", ".kml", ".wkt":
		return true
	}
	return false
}
