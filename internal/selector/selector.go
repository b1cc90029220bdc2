// Package selector converts a pointer drag on a map surface into a
// snapped, axis-aligned square, published in projected and geographic
// coordinates.
package selector

import (
	"math"

	"tilelapse/internal/geom"
)

// State of the drag gesture.
type State int

const (
	// Idle: no gesture in progress. A previously published selection
	// may still exist.
	Idle State = iota
	// Dragging: the anchor is fixed and the preview square follows the
	// pointer.
	Dragging
)

// Selector owns the draw anchor, the current drawn shape and the last
// published selection. It is driven by a single event loop; no locking.
type Selector struct {
	proj  geom.Projection
	pitch float64

	armed    bool // listening for drag input
	state    State
	anchor   [2]float64
	shape    geom.Extent
	hasShape bool

	extent geom.Extent
	bbox   geom.BBox
	hasSel bool
}

// New returns an idle selector for the given projection.
func New(proj geom.Projection) *Selector {
	return &Selector{proj: proj}
}

// Activate clears any prior drawn shape, fixes the snap pitch from the
// surface's current resolution (projected units per pixel) and arms the
// selector for one drag gesture.
func (s *Selector) Activate(resolution float64) {
	s.hasShape = false
	s.pitch = geom.TileEdge * resolution
	s.armed = true
	s.state = Idle
}

// Deactivate disarms the selector without publishing. The last published
// selection is kept.
func (s *Selector) Deactivate() {
	s.armed = false
	s.state = Idle
}

// Armed reports whether the selector is listening for drag input.
func (s *Selector) Armed() bool { return s.armed }

// Dragging reports whether a gesture is in progress.
func (s *Selector) Dragging() bool { return s.state == Dragging }

// Pitch is the snap pitch fixed at activation.
func (s *Selector) Pitch() float64 { return s.pitch }

// Drag feeds one pointer position in projected coordinates. The first
// call of a gesture fixes the anchor; every call updates and returns the
// live preview square.
func (s *Selector) Drag(x, y float64) (geom.Extent, bool) {
	if !s.armed {
		return geom.Extent{}, false
	}
	if s.state != Dragging {
		s.anchor = [2]float64{x, y}
		s.state = Dragging
	}
	s.shape = SquareFromDrag(s.anchor, [2]float64{x, y})
	s.hasShape = true
	return s.shape, true
}

// Finish ends the gesture: the preview square is snapped to the pitch
// grid, published as the selection in both coordinate systems, the anchor
// is cleared and the selector disarms. Zero-size gestures snap to the
// nearest grid corner; that is accepted, not an error.
func (s *Selector) Finish() (geom.Extent, geom.BBox, bool) {
	if s.state != Dragging {
		return geom.Extent{}, geom.BBox{}, false
	}
	s.publish(geom.SnapExtent(s.shape, s.pitch))
	s.state = Idle
	s.armed = false
	return s.extent, s.bbox, true
}

// SetSelection publishes an extent directly, bypassing the gesture (used
// for pasted coordinates). The extent is snapped like a drawn one.
func (s *Selector) SetSelection(e geom.Extent, resolution float64) (geom.Extent, geom.BBox) {
	s.pitch = geom.TileEdge * resolution
	s.publish(geom.SnapExtent(e, s.pitch))
	s.armed = false
	s.state = Idle
	return s.extent, s.bbox
}

// publish stores the extent and its geographic reprojection together,
// keeping the two views of the selection consistent.
func (s *Selector) publish(e geom.Extent) {
	minLon, minLat := s.proj.ToWGS84(e.MinX, e.MinY)
	maxLon, maxLat := s.proj.ToWGS84(e.MaxX, e.MaxY)
	s.extent = e
	s.bbox = geom.BBox{MinLon: minLon, MinLat: minLat, MaxLon: maxLon, MaxLat: maxLat}
	s.hasSel = true
	s.shape = e
	s.hasShape = true
}

// Shape returns the current drawn square: the live preview while
// dragging, the snapped selection after a finished gesture, nothing
// right after activation.
func (s *Selector) Shape() (geom.Extent, bool) {
	return s.shape, s.hasShape
}

// Selection returns the last published extent/bbox pair. Both are set
// together from the same gesture end; either both exist or neither does.
func (s *Selector) Selection() (geom.Extent, geom.BBox, bool) {
	return s.extent, s.bbox, s.hasSel
}

// SquareFromDrag returns the axis-aligned square with one corner at
// anchor, side max(|dx|,|dy|), growing toward the pointer along each
// axis. A zero offset counts as positive.
func SquareFromDrag(anchor, pointer [2]float64) geom.Extent {
	dx := pointer[0] - anchor[0]
	dy := pointer[1] - anchor[1]
	side := math.Max(math.Abs(dx), math.Abs(dy))
	fx := anchor[0] + side*signOf(dx)
	fy := anchor[1] + side*signOf(dy)
	e := geom.Extent{MinX: anchor[0], MinY: anchor[1], MaxX: fx, MaxY: fy}
	if e.MinX > e.MaxX {
		e.MinX, e.MaxX = e.MaxX, e.MinX
	}
	if e.MinY > e.MaxY {
		e.MinY, e.MaxY = e.MaxY, e.MinY
	}
	return e
}

func signOf(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}
