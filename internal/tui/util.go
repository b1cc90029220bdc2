package tui

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// drawLine rasterises a segment onto the ASCII base layer (used for the
// graticule, which stays visually behind the braille overlay). Glyphs
// follow the step direction of each Bresenham move.
func drawLine(buf *[]string, x0, y0, x1, y1 int) {
	plot := func(x, y int, g rune) {
		if y < 0 || y >= len(*buf) {
			return
		}
		r := []rune((*buf)[y])
		if x < 0 || x >= len(r) {
			return
		}
		r[x] = g
		(*buf)[y] = string(r)
	}
	dx := abs(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -abs(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	plot(x0, y0, '·')
	for x0 != x1 || y0 != y1 {
		e2 := 2 * err
		movedX, movedY := false, false
		if e2 >= dy {
			err += dy
			x0 += sx
			movedX = true
		}
		if e2 <= dx {
			err += dx
			y0 += sy
			movedY = true
		}
		plot(x0, y0, stepGlyph(movedX, movedY, sx, sy))
	}
}

func stepGlyph(movedX, movedY bool, sx, sy int) rune {
	switch {
	case movedX && movedY:
		if sx == sy {
			return '╲'
		}
		return '╱'
	case movedX:
		return '─'
	case movedY:
		return '│'
	}
	return '·'
}
