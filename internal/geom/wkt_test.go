package geom

import (
	"math"
	"testing"
)

func TestParseBBoxNumbers(t *testing.T) {
	b, err := ParseBBox(" 70.5, -10.25, 90.0, 25.75 ")
	if err != nil {
		t.Fatal(err)
	}
	want := BBox{MinLon: 70.5, MinLat: -10.25, MaxLon: 90.0, MaxLat: 25.75}
	if b != want {
		t.Errorf("got %+v, want %+v", b, want)
	}
}

func TestParseBBoxPolygon(t *testing.T) {
	b, err := ParseBBox("POLYGON((70 5, 70 25, 90 25, 90 5, 70 5))")
	if err != nil {
		t.Fatal(err)
	}
	want := BBox{MinLon: 70, MinLat: 5, MaxLon: 90, MaxLat: 25}
	if b != want {
		t.Errorf("got %+v, want %+v", b, want)
	}
}

func TestParseBBoxErrors(t *testing.T) {
	for _, in := range []string{"", "1,2,3", "1,2,3,4,5", "a,b,c,d", "POLYGON(())"} {
		if _, err := ParseBBox(in); err == nil {
			t.Errorf("ParseBBox(%q) accepted bad input", in)
		}
	}
}

func TestParseWKTPoint(t *testing.T) {
	l, err := ParseWKT("POINT(77.5946 12.9716)")
	if err != nil {
		t.Fatal(err)
	}
	if len(l.Points) != 1 {
		t.Fatalf("got %d points, want 1", len(l.Points))
	}
	if math.Abs(l.Points[0][0]-77.5946) > 1e-12 || math.Abs(l.Points[0][1]-12.9716) > 1e-12 {
		t.Errorf("point = %v", l.Points[0])
	}
}

func TestParseWKTLineString(t *testing.T) {
	l, err := ParseWKT("LINESTRING(0 0, 1 1, 2 0)")
	if err != nil {
		t.Fatal(err)
	}
	if len(l.Lines) != 1 || len(l.Lines[0]) != 3 {
		t.Fatalf("lines = %v", l.Lines)
	}
	if l.BBox != (BBox{MinLon: 0, MinLat: 0, MaxLon: 2, MaxLat: 1}) {
		t.Errorf("bbox = %+v", l.BBox)
	}
}

func TestParseWKTUnsupported(t *testing.T) {
	if _, err := ParseWKT("CIRCULARSTRING(0 0, 1 1, 2 0)"); err == nil {
		t.Error("unsupported geometry type accepted")
	}
}
