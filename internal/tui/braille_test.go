package tui

import "testing"

func TestBrailleDotLayout(t *testing.T) {
	cases := []struct {
		mx, my int
		want   rune
	}{
		{0, 0, 0x2801}, // top-left dot
		{1, 0, 0x2808}, // top-right dot
		{0, 3, 0x2840}, // bottom-left dot
		{1, 3, 0x2880}, // bottom-right dot
	}
	for _, c := range cases {
		b := newBrailleBuf(1, 1)
		b.setPixel(c.mx, c.my)
		if got := []rune(b.toLines()[0])[0]; got != c.want {
			t.Errorf("pixel (%d,%d) renders %U, want %U", c.mx, c.my, got, c.want)
		}
	}
}

func TestBrailleAccumulatesDots(t *testing.T) {
	b := newBrailleBuf(2, 1)
	b.setPixel(0, 0)
	b.setPixel(1, 3)
	b.setPixel(2, 0) // second cell
	line := []rune(b.toLines()[0])
	if line[0] != 0x2800+0x01+0x80 {
		t.Errorf("cell 0 = %U", line[0])
	}
	if line[1] != 0x2801 {
		t.Errorf("cell 1 = %U", line[1])
	}
}

func TestBrailleIgnoresOutOfRange(t *testing.T) {
	b := newBrailleBuf(1, 1)
	b.setPixel(-1, 0)
	b.setPixel(0, -2)
	b.setPixel(2, 0)
	b.setPixel(0, 4)
	if b.toLines()[0] != " " {
		t.Errorf("out-of-range pixels landed: %q", b.toLines()[0])
	}
}

func TestDrawLineMicroEndpoints(t *testing.T) {
	b := newBrailleBuf(4, 2)
	b.drawLineMicro(0, 0, 7, 7)
	line := b.toLines()
	if first := []rune(line[0])[0]; first&0x01 != 0x01 {
		t.Errorf("start of segment missing: %U", first)
	}
	if last := []rune(line[1])[3]; last&0x80 != 0x80 {
		t.Errorf("end of segment missing: %U", last)
	}
}

func TestDrawLineGlyphs(t *testing.T) {
	mk := func() []string { return []string{"    ", "    ", "    "} }

	horiz := mk()
	drawLine(&horiz, 0, 1, 3, 1)
	if horiz[1] != "·───" {
		t.Errorf("horizontal line = %q", horiz[1])
	}

	vert := mk()
	drawLine(&vert, 2, 0, 2, 2)
	for y := 1; y < 3; y++ {
		if []rune(vert[y])[2] != '│' {
			t.Errorf("vertical line row %d = %q", y, vert[y])
		}
	}

	// endpoints outside the buffer must not panic or write
	off := mk()
	drawLine(&off, -5, -5, 8, 8)
	drawLine(&off, 0, 10, 3, 10)
}
