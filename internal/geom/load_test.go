package geom

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestLoadGeoJSONFeatureCollection(t *testing.T) {
	p := writeFile(t, "cities.geojson", `{
		"type": "FeatureCollection",
		"features": [
			{"type": "Feature", "geometry": {"type": "Point", "coordinates": [77.59, 12.97]}},
			{"type": "Feature", "geometry": {"type": "LineString", "coordinates": [[70, 5], [90, 25]]}}
		]
	}`)
	l, err := Load(p)
	if err != nil {
		t.Fatal(err)
	}
	if l.Name != "cities.geojson" {
		t.Errorf("layer name = %q", l.Name)
	}
	if len(l.Points) != 1 || len(l.Lines) != 1 {
		t.Errorf("got %d points / %d lines", len(l.Points), len(l.Lines))
	}
	if l.BBox != (BBox{MinLon: 70, MinLat: 5, MaxLon: 90, MaxLat: 25}) {
		t.Errorf("bbox = %+v", l.BBox)
	}
}

func TestLoadCSV(t *testing.T) {
	p := writeFile(t, "stations.csv", "name,latitude,longitude\na,12.97,77.59\nb,20.59,78.96\nbad,x,y\n")
	l, err := Load(p)
	if err != nil {
		t.Fatal(err)
	}
	if len(l.Points) != 2 {
		t.Fatalf("got %d points, want 2", len(l.Points))
	}
	if l.Points[0] != [2]float64{77.59, 12.97} {
		t.Errorf("point order should be lon,lat: %v", l.Points[0])
	}
}

func TestLoadKMLNestedPlacemarks(t *testing.T) {
	p := writeFile(t, "sites.kml", `<?xml version="1.0" encoding="UTF-8"?>
<kml xmlns="http://www.opengis.net/kml/2.2">
  <Document>
    <Placemark><Point><coordinates>77.59,12.97,0</coordinates></Point></Placemark>
    <Folder>
      <Placemark><Point><coordinates>78.96,20.59</coordinates></Point></Placemark>
      <Placemark><name>no point</name></Placemark>
    </Folder>
  </Document>
</kml>`)
	l, err := Load(p)
	if err != nil {
		t.Fatal(err)
	}
	if len(l.Points) != 2 {
		t.Fatalf("got %d points, want 2", len(l.Points))
	}
	if l.Points[0] != [2]float64{77.59, 12.97} {
		t.Errorf("point order should be lon,lat: %v", l.Points[0])
	}
	if l.BBox != (BBox{MinLon: 77.59, MinLat: 12.97, MaxLon: 78.96, MaxLat: 20.59}) {
		t.Errorf("bbox = %+v", l.BBox)
	}
}

func TestLoadKMLNoPoints(t *testing.T) {
	p := writeFile(t, "empty.kml", `<kml><Document></Document></kml>`)
	if _, err := Load(p); err == nil {
		t.Error("kml without points accepted")
	}
}

func TestLoadCSVNoCoordinateColumns(t *testing.T) {
	p := writeFile(t, "plain.csv", "a,b\n1,2\n")
	if _, err := Load(p); err == nil {
		t.Error("csv without coordinate columns accepted")
	}
}

func TestLoadUnsupportedExtension(t *testing.T) {
	p := writeFile(t, "layer.txt", "whatever")
	if _, err := Load(p); err == nil {
		t.Error("unsupported extension accepted")
	}
}

func TestSupportedExt(t *testing.T) {
	for _, ext := range []string{".geojson", ".json", ".csv", ".kml", ".wkt", ".GeoJSON"} {
		if !SupportedExt(ext) {
			t.Errorf("SupportedExt(%q) = false", ext)
		}
	}
	if SupportedExt(".txt") {
		t.Error(`SupportedExt(".txt") = true`)
	}
}
