package tui

// brailleDots maps a micro position inside a cell (column, row) to its
// bit in the cell's braille mask. Unicode braille orders the top three
// rows column-major and appends the bottom row, hence the split layout.
var brailleDots = [2][4]uint8{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

// brailleBuf is the 2x4-per-cell micro-pixel overlay composited over the
// map's ASCII base layer.
type brailleBuf struct {
	w, h  int // in cells
	cells []uint8
}

func newBrailleBuf(w, h int) *brailleBuf {
	return &brailleBuf{w: w, h: h, cells: make([]uint8, w*h)}
}

// setPixel sets a micro-pixel at micro coords (2x4 per cell).
func (b *brailleBuf) setPixel(mx, my int) {
	if mx < 0 || my < 0 {
		return
	}
	cx, cy := mx/2, my/4
	if cx >= b.w || cy >= b.h {
		return
	}
	b.cells[cy*b.w+cx] |= brailleDots[mx%2][my%4]
}

// drawLineMicro rasterises a segment on the microgrid (Bresenham).
func (b *brailleBuf) drawLineMicro(x0, y0, x1, y1 int) {
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
	for {
		b.setPixel(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// toLines renders the buffer as one string per cell row; empty cells
// stay plain spaces so the base layer shows through.
func (b *brailleBuf) toLines() []string {
	out := make([]string, b.h)
	row := make([]rune, b.w)
	for y := 0; y < b.h; y++ {
		for x := 0; x < b.w; x++ {
			if mask := b.cells[y*b.w+x]; mask != 0 {
				row[x] = rune(0x2800 + int(mask))
			} else {
				row[x] = ' '
			}
		}
		out[y] = string(row)
	}
	return out
}
