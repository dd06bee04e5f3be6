package tty

import (
	"image/color"

	"github.com/gdamore/tcell/v2"
)

// HalfBlock is drawn in cells without text: the foreground paints the top
// pixel and the background the bottom one.
const HalfBlock = '▀'

// Canvas is a terminal framebuffer with two square-ish pixels per cell and
// an optional text layer on top.
type Canvas struct {
	cols, rows int
	pixels     []color.RGBA
	text       []rune
	textColor  []color.RGBA
}

// NewCanvas allocates a canvas of cols by rows cells.
func NewCanvas(cols, rows int) *Canvas {
	c := &Canvas{}
	c.Resize(cols, rows)
	return c
}

// Resize reallocates the canvas when the cell size changes.
func (c *Canvas) Resize(cols, rows int) {
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	if cols == c.cols && rows == c.rows {
		return
	}
	c.cols, c.rows = cols, rows
	c.pixels = make([]color.RGBA, cols*rows*2)
	c.text = make([]rune, cols*rows)
	c.textColor = make([]color.RGBA, cols*rows)
}

// Cells returns the size in cells.
func (c *Canvas) Cells() (cols, rows int) { return c.cols, c.rows }

// Pixels returns the size in pixels.
func (c *Canvas) Pixels() (w, h int) { return c.cols, c.rows * 2 }

// Clear fills every pixel with bg and drops all text.
func (c *Canvas) Clear(bg color.RGBA) {
	for i := range c.pixels {
		c.pixels[i] = bg
	}
	for i := range c.text {
		c.text[i] = 0
	}
}

func (c *Canvas) pixelIndex(x, y int) (int, bool) {
	if x < 0 || y < 0 || x >= c.cols || y >= c.rows*2 {
		return 0, false
	}
	return y*c.cols + x, true
}

// Set overwrites one pixel. Out-of-range pixels are ignored.
func (c *Canvas) Set(x, y int, col color.RGBA) {
	if i, ok := c.pixelIndex(x, y); ok {
		c.pixels[i] = col
	}
}

// Add blends col onto one pixel additively, saturating each channel.
func (c *Canvas) Add(x, y int, col color.RGBA) {
	i, ok := c.pixelIndex(x, y)
	if !ok {
		return
	}
	p := c.pixels[i]
	c.pixels[i] = color.RGBA{R: sat(p.R, col.R), G: sat(p.G, col.G), B: sat(p.B, col.B), A: 0xff}
}

func sat(a, b uint8) uint8 {
	if s := int(a) + int(b); s < 0xff {
		return uint8(s)
	}
	return 0xff
}

// Pixel returns one pixel, or zero when out of range.
func (c *Canvas) Pixel(x, y int) color.RGBA {
	if i, ok := c.pixelIndex(x, y); ok {
		return c.pixels[i]
	}
	return color.RGBA{}
}

// FillDisc paints a filled circle in pixel space.
func (c *Canvas) FillDisc(cx, cy, r float64, col color.RGBA) {
	if r <= 0 {
		return
	}
	x0, x1 := int(cx-r), int(cx+r)+1
	y0, y1 := int(cy-r), int(cy+r)+1
	if x0 < 0 {
		x0 = 0
	}
	if y0 < 0 {
		y0 = 0
	}
	if x1 > c.cols {
		x1 = c.cols
	}
	if y1 > c.rows*2 {
		y1 = c.rows * 2
	}
	r2 := r * r
	for y := y0; y < y1; y++ {
		dy := float64(y) + 0.5 - cy
		for x := x0; x < x1; x++ {
			dx := float64(x) + 0.5 - cx
			if dx*dx+dy*dy <= r2 {
				c.pixels[y*c.cols+x] = col
			}
		}
	}
}

// PutText writes s starting at the given cell. Runes past the right edge
// are dropped.
func (c *Canvas) PutText(col, row int, s string, fg color.RGBA) {
	if row < 0 || row >= c.rows {
		return
	}
	x := col
	for _, r := range s {
		if x >= c.cols {
			return
		}
		if x >= 0 {
			c.text[row*c.cols+x] = r
			c.textColor[row*c.cols+x] = fg
		}
		x++
	}
}

// PutCentered writes s centred horizontally on row.
func (c *Canvas) PutCentered(row int, s string, fg color.RGBA) {
	c.PutText((c.cols-len([]rune(s)))/2, row, s, fg)
}

// Cell resolves one cell into a rune and its colours.
func (c *Canvas) Cell(col, row int) (r rune, fg, bg color.RGBA) {
	if col < 0 || row < 0 || col >= c.cols || row >= c.rows {
		return ' ', color.RGBA{}, color.RGBA{}
	}
	top := c.pixels[(2*row)*c.cols+col]
	bottom := c.pixels[(2*row+1)*c.cols+col]
	if t := c.text[row*c.cols+col]; t != 0 {
		return t, c.textColor[row*c.cols+col], average(top, bottom)
	}
	return HalfBlock, top, bottom
}

func average(a, b color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8((int(a.R) + int(b.R)) / 2),
		G: uint8((int(a.G) + int(b.G)) / 2),
		B: uint8((int(a.B) + int(b.B)) / 2),
		A: 0xff,
	}
}

// Flush copies the canvas to screen and shows it.
func (c *Canvas) Flush(screen tcell.Screen) {
	for row := 0; row < c.rows; row++ {
		for col := 0; col < c.cols; col++ {
			r, fg, bg := c.Cell(col, row)
			style := tcell.StyleDefault.Foreground(rgb(fg)).Background(rgb(bg))
			screen.SetContent(col, row, r, nil, style)
		}
	}
	screen.Show()
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
