package viz

import (
	"math"
	"strings"
)

// Braille cells hold 2x4 dots. Dot bits by (row, col):
//
//	0x01 0x08
//	0x02 0x10
//	0x04 0x20
//	0x40 0x80
var dotBits = [4][2]rune{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

const brailleBlank = 0x2800

// Canvas is a braille dot grid. A canvas of Width x Height cells has
// 2*Width x 4*Height dots with (0, 0) at the top left.
type Canvas struct {
	Width, Height int
	cells         [][]rune
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{Width: w, Height: h, cells: make([][]rune, h)}
	for i := range c.cells {
		c.cells[i] = []rune(strings.Repeat(string(rune(brailleBlank)), w))
	}
	return c
}

// Set turns on the dot at (x, y). Out of range dots are ignored.
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	col, row := x/2, y/4
	if col >= c.Width || row >= c.Height {
		return
	}
	c.cells[row][col] |= dotBits[y%4][x%2]
}

// DrawLine connects two dots (Bresenham).
func (c *Canvas) DrawLine(x0, y0, x1, y1 int) {
	dx, dy := abs(x1-x0), abs(y1-y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx - dy
	for {
		c.Set(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 > -dy {
			e -= dy
			x0 += sx
		}
		if e2 < dx {
			e += dx
			y0 += sy
		}
	}
}

func (c *Canvas) String() string {
	lines := make([]string, len(c.cells))
	for i, row := range c.cells {
		lines[i] = string(row)
	}
	return strings.Join(lines, "\n")
}

// CurveCanvas draws values on a linear scale with a dotted line at
// threshold. The y range runs from 0 to the larger of the peak and the
// threshold, so the exponential shape shows without log compression.
func CurveCanvas(values []float64, threshold float64, w, h int) *Canvas {
	c := NewCanvas(w, h)
	if len(values) == 0 || w <= 0 || h <= 0 {
		return c
	}

	top := threshold
	for _, v := range values {
		if v > top {
			top = v
		}
	}
	if top <= 0 || math.IsInf(top, 0) || math.IsNaN(top) {
		top = 1
	}

	dotsX, dotsY := 2*w-1, 4*h-1
	px := func(i int) int {
		if len(values) == 1 {
			return 0
		}
		return i * dotsX / (len(values) - 1)
	}
	py := func(v float64) int {
		v = math.Max(v, 0)
		return dotsY - int(math.Round(v/top*float64(dotsY)))
	}

	if threshold > 0 {
		ty := py(threshold)
		for x := 0; x <= dotsX; x += 2 {
			c.Set(x, ty)
		}
	}

	prevX, prevY := px(0), py(values[0])
	c.Set(prevX, prevY)
	for i := 1; i < len(values); i++ {
		x, y := px(i), py(values[i])
		c.DrawLine(prevX, prevY, x, y)
		prevX, prevY = x, y
	}
	return c
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
