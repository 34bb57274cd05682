package core

import (
	"math"
	"strings"
)

// Each terminal cell holds a 2x4 block of braille dots.
const (
	DotsPerCellX = 2
	DotsPerCellY = 4
)

// brailleBase is U+2800, the empty braille pattern.
const brailleBase = 0x2800

// dotBits maps a dot position inside a cell to its braille bit.
var dotBits = [DotsPerCellY][DotsPerCellX]uint8{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

// Cell is one rendered terminal cell.
type Cell struct {
	Rune    rune
	Color   Color
	Colored bool // false for cells nothing was drawn into
}

// Canvas is a dot-addressable drawing buffer backed by terminal cells.
// Lines are drawn in dot space (Width x Height); text is placed on whole
// cells. The most recent color drawn into a cell wins, since a terminal
// cell has a single foreground color.
type Canvas struct {
	cols, rows int
	dots       []uint8
	text       []rune
	colors     []Color
	colored    []bool
}

// NewCanvas creates a canvas with the given size in cells.
func NewCanvas(cols, rows int) *Canvas {
	c := &Canvas{}
	c.Resize(cols, rows)
	return c
}

// Cols returns the canvas width in cells.
func (c *Canvas) Cols() int {
	return c.cols
}

// Rows returns the canvas height in cells.
func (c *Canvas) Rows() int {
	return c.rows
}

// Width returns the canvas width in dots.
func (c *Canvas) Width() int {
	return c.cols * DotsPerCellX
}

// Height returns the canvas height in dots.
func (c *Canvas) Height() int {
	return c.rows * DotsPerCellY
}

// Resize changes the canvas dimensions and clears it.
func (c *Canvas) Resize(cols, rows int) {
	cols = max(cols, 0)
	rows = max(rows, 0)
	if cols == c.cols && rows == c.rows && c.dots != nil {
		c.Clear()
		return
	}
	c.cols, c.rows = cols, rows
	n := cols * rows
	c.dots = make([]uint8, n)
	c.text = make([]rune, n)
	c.colors = make([]Color, n)
	c.colored = make([]bool, n)
}

// Clear erases all dots and text.
func (c *Canvas) Clear() {
	clear(c.dots)
	clear(c.text)
	clear(c.colors)
	clear(c.colored)
}

// SetDot turns on the dot at (x, y) in dot coordinates.
// Out-of-bounds coordinates are silently ignored.
func (c *Canvas) SetDot(x, y int, col Color) {
	if x < 0 || y < 0 || x >= c.Width() || y >= c.Height() {
		return
	}
	i := (y/DotsPerCellY)*c.cols + x/DotsPerCellX
	c.dots[i] |= dotBits[y%DotsPerCellY][x%DotsPerCellX]
	c.colors[i] = col
	c.colored[i] = true
}

// Dot reports whether the dot at (x, y) is set.
func (c *Canvas) Dot(x, y int) bool {
	if x < 0 || y < 0 || x >= c.Width() || y >= c.Height() {
		return false
	}
	i := (y/DotsPerCellY)*c.cols + x/DotsPerCellX
	return c.dots[i]&dotBits[y%DotsPerCellY][x%DotsPerCellX] != 0
}

// Line draws a straight line between two dot positions (Bresenham).
// The segment is clipped to the canvas first, so far-away endpoints
// cost no more than visible ones.
func (c *Canvas) Line(x0, y0, x1, y1 float64, col Color) {
	if c.Width() == 0 || c.Height() == 0 {
		return
	}
	x0, y0, x1, y1, ok := ClipLine(x0, y0, x1, y1,
		0, 0, float64(c.Width()-1), float64(c.Height()-1))
	if !ok {
		return
	}

	ax, ay := int(math.Round(x0)), int(math.Round(y0))
	bx, by := int(math.Round(x1)), int(math.Round(y1))

	dx := Abs(bx - ax)
	dy := -Abs(by - ay)
	sx, sy := 1, 1
	if ax > bx {
		sx = -1
	}
	if ay > by {
		sy = -1
	}
	e := dx + dy
	for {
		c.SetDot(ax, ay, col)
		if ax == bx && ay == by {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			ax += sx
		}
		if e2 <= dx {
			e += dx
			ay += sy
		}
	}
}

// DrawText writes a string horizontally starting at cell (col, row).
// Characters that extend beyond the canvas are clipped.
func (c *Canvas) DrawText(col, row int, s string, clr Color) {
	if row < 0 || row >= c.rows {
		return
	}
	x := col
	for _, r := range s {
		if x >= 0 && x < c.cols {
			i := row*c.cols + x
			c.text[i] = r
			c.colors[i] = clr
			c.colored[i] = true
		}
		x++
	}
}

// GetCell returns the rendered cell at (col, row). Text takes precedence
// over dots. Out-of-bounds positions return a blank cell.
func (c *Canvas) GetCell(col, row int) Cell {
	if col < 0 || col >= c.cols || row < 0 || row >= c.rows {
		return Cell{Rune: ' '}
	}
	i := row*c.cols + col
	cell := Cell{Rune: ' ', Color: c.colors[i], Colored: c.colored[i]}
	switch {
	case c.text[i] != 0:
		cell.Rune = c.text[i]
	case c.dots[i] != 0:
		cell.Rune = rune(brailleBase + int(c.dots[i]))
	}
	return cell
}

// String converts the canvas to plain text without colors.
// Each row is joined with newlines.
func (c *Canvas) String() string {
	var sb strings.Builder
	sb.Grow(c.cols*c.rows*3 + c.rows)

	for row := 0; row < c.rows; row++ {
		if row > 0 {
			sb.WriteRune('\n')
		}
		for col := 0; col < c.cols; col++ {
			sb.WriteRune(c.GetCell(col, row).Rune)
		}
	}
	return sb.String()
}

// Row returns the specified row as plain text.
func (c *Canvas) Row(row int) string {
	if row < 0 || row >= c.rows {
		return strings.Repeat(" ", c.cols)
	}
	var sb strings.Builder
	for col := 0; col < c.cols; col++ {
		sb.WriteRune(c.GetCell(col, row).Rune)
	}
	return sb.String()
}
