package tui

// brailleBits maps a micro-pixel position within a cell (2 wide, 4 tall)
// to its bit in the braille codepoint mask.
var brailleBits = [2][4]uint8{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

// brailleBuf is a microgrid canvas with 2x4 micro-pixels per terminal cell.
type brailleBuf struct {
	w, h int // in cells
	mask [][]uint8
}

func newBrailleBuf(w, h int) *brailleBuf {
	mask := make([][]uint8, h)
	for i := range mask {
		mask[i] = make([]uint8, w)
	}
	return &brailleBuf{w: w, h: h, mask: mask}
}

func (b *brailleBuf) setPixel(mx, my int) {
	if mx < 0 || my < 0 {
		return
	}
	cx, rx := mx/2, mx%2
	cy, ry := my/4, my%4
	if cy >= b.h || cx >= b.w {
		return
	}
	b.mask[cy][cx] |= brailleBits[rx][ry]
}

// drawLineMicro draws a Bresenham line on the microgrid.
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

// cell returns the braille rune for a cell, or space when empty.
func (b *brailleBuf) cell(x, y int) rune {
	if y < 0 || y >= b.h || x < 0 || x >= b.w {
		return ' '
	}
	mask := b.mask[y][x]
	if mask == 0 {
		return ' '
	}
	return rune(0x2800 + int(mask))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
