package viz

import (
	"strings"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

// Canvas renders particle positions as braille sub-pixels, giving a
// (Width*2) x (Height*4) dot grid in a Width x Height character cell.
type Canvas struct {
	Width, Height int
	Grid          [][]rune
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
	}
	c.Clear()
	return c
}

func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = 0x2800 // empty braille cell
		}
	}
}

// Set lights a sub-pixel; x, y are dot coordinates with y growing upward.
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}

	// Flip so y=0 lands on the bottom row of the canvas.
	yFlip := c.Height*4 - 1 - y
	if yFlip < 0 {
		return
	}

	col := x / 2
	row := yFlip / 4
	if col >= c.Width || row >= c.Height {
		return
	}

	c.Grid[row][col] |= rune(pixelMap[yFlip%4][x%2])
}

// PlotParticles maps world coordinates into the dot grid and lights one
// sub-pixel per particle. The world window is fixed by the caller so the
// view does not jump as the fluid moves.
func (c *Canvas) PlotParticles(xs, ys []float64, xMin, xMax, yMin, yMax float64) {
	if xMax <= xMin || yMax <= yMin {
		return
	}
	sx := float64(c.Width*2-1) / (xMax - xMin)
	sy := float64(c.Height*4-1) / (yMax - yMin)

	for i := range xs {
		px := int((xs[i] - xMin) * sx)
		py := int((ys[i] - yMin) * sy)
		c.Set(px, py)
	}
}

func (c *Canvas) String() string {
	var sb strings.Builder
	sb.Grow((c.Width + 1) * c.Height)
	for _, row := range c.Grid {
		sb.WriteString(string(row))
		sb.WriteByte('\n')
	}
	return sb.String()
}
