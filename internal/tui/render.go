package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"tilelapse/internal/geom"
)

// screenXYMicro maps projected meters into the 2x4 braille microgrid of
// a w x h cell viewport centered on (centerX, centerY).
func (m Model) screenXYMicro(x, y float64, w, h int) (int, int) {
	res := geom.Resolution(m.zoom)
	wMic := w * 2
	hMic := h * 4
	sx := wMic/2 + int(math.Round((x-m.centerX)/res))
	sy := hMic/2 - int(math.Round((y-m.centerY)/res))
	return sx, sy
}

// lonLatMicro projects geographic coordinates into the microgrid.
func (m Model) lonLatMicro(lon, lat float64, w, h int) (int, int) {
	x, y := geom.Forward(lon, lat)
	return m.screenXYMicro(x, y, w, h)
}

// cellToMap converts a terminal cell (its centre) back to projected
// meters; the inverse of screenXYMicro up to cell granularity.
func (m Model) cellToMap(cx, cy, w, h int) (float64, float64) {
	res := geom.Resolution(m.zoom)
	wMic := w * 2
	hMic := h * 4
	mx := cx*2 + 1
	my := cy*4 + 2
	x := m.centerX + float64(mx-wMic/2)*res
	y := m.centerY - float64(my-hMic/2)*res
	return x, y
}

func (m Model) renderAsciiMap(w, h int) string {
	// Plain background with a dim graticule
	lines := make([]string, h)
	for y := 0; y < h; y++ {
		row := make([]rune, w)
		for x := 0; x < w; x++ {
			row[x] = ' '
		}
		lines[y] = string(row)
	}
	m.drawGraticule(&lines, w, h)

	// High-resolution braille buffer for layers and the selection square
	br := newBrailleBuf(w, h)

	if m.hasLayer {
		m.drawLayer(br, w, h)
	}

	// selection square: live preview while dragging, snapped after
	if ext, ok := m.sel.Shape(); ok {
		ring := ext.Ring()
		var prev [2]int
		for i, p := range ring {
			sx, sy := m.screenXYMicro(p[0], p[1], w, h)
			if i > 0 {
				drawClippedMicro(br, prev[0], prev[1], sx, sy, w*2, h*4)
			}
			prev = [2]int{sx, sy}
		}
	}

	// Composite braille overlay onto base lines
	braLines := br.toLines()
	for y := 0; y < h && y < len(braLines); y++ {
		if len(braLines[y]) == 0 {
			continue
		}
		base := []rune(lines[y])
		over := []rune(braLines[y])
		for x := 0; x < len(base) && x < len(over); x++ {
			if over[x] != ' ' {
				base[x] = over[x]
			}
		}
		lines[y] = string(base)
	}

	// Crosshair at the hovered cell while the selector is armed
	if m.sel.Armed() && m.hovering {
		cx, cy := m.hoverCellX, m.hoverCellY
		if cy >= 0 && cy < len(lines) {
			r := []rune(lines[cy])
			if cx >= 0 && cx < len(r) {
				cross := crosshairStyle.Render("+")
				lines[cy] = string(r[:cx]) + cross + string(r[cx+1:])
			}
		}
	}
	return strings.Join(lines, "\n")
}

// drawGraticule draws 30-degree meridians and parallels with plain
// glyphs so they stay visually behind the braille layers. Mercator
// graticule lines are axis-aligned, so clipping is a clamp.
func (m Model) drawGraticule(lines *[]string, w, h int) {
	for lon := -180.0; lon <= 180.0; lon += 30 {
		x0, y0 := m.lonLatMicro(lon, -geom.MaxLat, w, h)
		_, y1 := m.lonLatMicro(lon, geom.MaxLat, w, h)
		cx := x0 / 2
		if cx < 0 || cx >= w {
			continue
		}
		top := clampInt(min(y0, y1)/4, 0, h-1)
		bot := clampInt(max(y0, y1)/4, 0, h-1)
		drawLine(lines, cx, top, cx, bot)
	}
	for lat := -60.0; lat <= 60.0; lat += 30 {
		x0, y0 := m.lonLatMicro(-180, lat, w, h)
		x1, _ := m.lonLatMicro(180, lat, w, h)
		cy := y0 / 4
		if cy < 0 || cy >= h {
			continue
		}
		left := clampInt(min(x0, x1)/2, 0, w-1)
		right := clampInt(max(x0, x1)/2, 0, w-1)
		drawLine(lines, left, cy, right, cy)
	}
}

// drawLayer rasterises the reference overlay: points as pixels, lines
// and polygon rings as braille segments.
func (m Model) drawLayer(br *brailleBuf, w, h int) {
	for _, p := range m.layer.Points {
		mx, my := m.lonLatMicro(p[0], p[1], w, h)
		br.setPixel(mx, my)
	}
	for _, ls := range m.layer.Lines {
		m.drawPath(br, ls, false, w, h)
	}
	for _, poly := range m.layer.Polygons {
		for _, ring := range poly {
			m.drawPath(br, ring, true, w, h)
		}
	}
}

func (m Model) drawPath(br *brailleBuf, pts [][2]float64, closed bool, w, h int) {
	if len(pts) == 0 {
		return
	}
	var prev [2]int
	var first [2]int
	for i, p := range pts {
		mx, my := m.lonLatMicro(p[0], p[1], w, h)
		if i == 0 {
			first = [2]int{mx, my}
		} else {
			drawClippedMicro(br, prev[0], prev[1], mx, my, w*2, h*4)
		}
		prev = [2]int{mx, my}
	}
	if closed && len(pts) > 2 {
		drawClippedMicro(br, prev[0], prev[1], first[0], first[1], w*2, h*4)
	}
}

// drawClippedMicro clips the segment to the microgrid before
// rasterising, so far off-screen vertices at high zoom stay cheap.
func drawClippedMicro(br *brailleBuf, x0, y0, x1, y1, wMic, hMic int) {
	fx0, fy0, fx1, fy1, ok := clipSegment(
		float64(x0), float64(y0), float64(x1), float64(y1),
		float64(wMic-1), float64(hMic-1))
	if !ok {
		return
	}
	br.drawLineMicro(int(fx0), int(fy0), int(fx1), int(fy1))
}

// clipSegment is Liang-Barsky against [0,xMax] x [0,yMax].
func clipSegment(x0, y0, x1, y1, xMax, yMax float64) (cx0, cy0, cx1, cy1 float64, ok bool) {
	dx := x1 - x0
	dy := y1 - y0
	t0, t1 := 0.0, 1.0
	clip := func(p, q float64) bool {
		if p == 0 {
			return q >= 0
		}
		r := q / p
		if p < 0 {
			if r > t1 {
				return false
			}
			if r > t0 {
				t0 = r
			}
		} else {
			if r < t0 {
				return false
			}
			if r < t1 {
				t1 = r
			}
		}
		return true
	}
	if !clip(-dx, x0) || !clip(dx, xMax-x0) || !clip(-dy, y0) || !clip(dy, yMax-y0) {
		return 0, 0, 0, 0, false
	}
	return x0 + t0*dx, y0 + t0*dy, x0 + t1*dx, y0 + t1*dy, true
}

var crosshairStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFA500"))
