package surface

import (
	"image"
	"image/color"
	"strings"

	"github.com/fogleman/gg"
)

const brailleBlank = 0x2800

// Braille dot bits per sub-pixel, 2 columns by 4 rows per cell:
//
//	1 4
//	2 5
//	3 6
//	7 8
var brailleDots = [4][2]rune{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

// BrailleGrid is a monochrome raster of braille cells. Each cell holds
// 2x4 sub-pixels, so a Cols x Rows grid is (Cols*2) x (Rows*4) pixels.
type BrailleGrid struct {
	Cols, Rows int
	Cells      [][]rune
}

func NewBrailleGrid(cols, rows int) *BrailleGrid {
	g := &BrailleGrid{
		Cols:  cols,
		Rows:  rows,
		Cells: make([][]rune, rows),
	}
	for i := range g.Cells {
		g.Cells[i] = make([]rune, cols)
	}
	g.Clear()
	return g
}

func (g *BrailleGrid) Size() (int, int) { return g.Cols * 2, g.Rows * 4 }

func (g *BrailleGrid) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	col, row := x/2, y/4
	if col >= g.Cols || row >= g.Rows {
		return
	}
	g.Cells[row][col] |= brailleDots[y%4][x%2]
}

func (g *BrailleGrid) Unset(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	col, row := x/2, y/4
	if col >= g.Cols || row >= g.Rows {
		return
	}
	g.Cells[row][col] &^= brailleDots[y%4][x%2]
	g.Cells[row][col] |= brailleBlank
}

// IsSet reports whether the dot at (x, y) is lit.
func (g *BrailleGrid) IsSet(x, y int) bool {
	if x < 0 || y < 0 {
		return false
	}
	col, row := x/2, y/4
	if col >= g.Cols || row >= g.Rows {
		return false
	}
	return g.Cells[row][col]&brailleDots[y%4][x%2] != 0
}

// Clear unsets every dot.
func (g *BrailleGrid) Clear() {
	for i := range g.Cells {
		for j := range g.Cells[i] {
			g.Cells[i][j] = brailleBlank
		}
	}
}

func (g *BrailleGrid) String() string {
	var b strings.Builder
	for _, row := range g.Cells {
		b.WriteString(string(row))
		b.WriteByte('\n')
	}
	return b.String()
}

// Braille is a Context that draws a logical width x height surface onto a
// terminal braille grid. Shapes are rasterized at the grid's sub-pixel
// resolution and every pixel at least half way from the clear color
// lights its dot.
type Braille struct {
	canvas
	img  *image.RGBA
	grid *BrailleGrid
}

func NewBraille(width, height, cols, rows int) *Braille {
	grid := NewBrailleGrid(cols, rows)
	w, h := grid.Size()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	return &Braille{
		canvas: newCanvas(gg.NewContextForRGBA(img), width, height),
		img:    img,
		grid:   grid,
	}
}

func (b *Braille) Clear() {
	b.canvas.Clear()
	b.sync()
}

func (b *Braille) Fill() {
	b.canvas.Fill()
	b.sync()
}

func (b *Braille) Stroke() {
	b.canvas.Stroke()
	b.sync()
}

func (b *Braille) sync() {
	bg := color.RGBAModel.Convert(b.clearColor).(color.RGBA)
	bounds := b.img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if distinct(b.img.RGBAAt(x, y), bg) {
				b.grid.Set(x, y)
			} else {
				b.grid.Unset(x, y)
			}
		}
	}
}

// distinct reports whether any channel differs by more than half.
func distinct(a, b color.RGBA) bool {
	diff := func(x, y uint8) int {
		d := int(x) - int(y)
		if d < 0 {
			return -d
		}
		return d
	}
	return max(diff(a.R, b.R), diff(a.G, b.G), diff(a.B, b.B), diff(a.A, b.A)) > 127
}

func (b *Braille) Grid() *BrailleGrid { return b.grid }

func (b *Braille) String() string { return b.grid.String() }
