package surface

import (
	"image/color"
	"math"

	"github.com/fogleman/gg"
)

// canvas implements Context on a gg drawing context, mapping a width x
// height logical surface onto the context's device pixels.
type canvas struct {
	dc            *gg.Context
	width, height int
	clearColor    color.Color
	fillStyle     color.Color
	strokeStyle   color.Color
}

func newCanvas(dc *gg.Context, width, height int) canvas {
	dc.SetFillRule(gg.FillRuleEvenOdd)
	dc.SetLineWidth(1)
	dc.Scale(float64(dc.Width())/float64(width), float64(dc.Height())/float64(height))
	return canvas{
		dc:          dc,
		width:       width,
		height:      height,
		clearColor:  color.Transparent,
		fillStyle:   color.Black,
		strokeStyle: color.Black,
	}
}

func (c *canvas) Width() int  { return c.width }
func (c *canvas) Height() int { return c.height }

func (c *canvas) Clear() {
	c.dc.SetColor(c.clearColor)
	c.dc.Clear()
}

func (c *canvas) SetClearColor(col color.Color)  { c.clearColor = col }
func (c *canvas) SetFillStyle(col color.Color)   { c.fillStyle = col }
func (c *canvas) SetStrokeStyle(col color.Color) { c.strokeStyle = col }

func (c *canvas) BeginPath()          { c.dc.ClearPath() }
func (c *canvas) MoveTo(x, y float64) { c.dc.MoveTo(x, y) }
func (c *canvas) LineTo(x, y float64) { c.dc.LineTo(x, y) }
func (c *canvas) ClosePath()          { c.dc.ClosePath() }

func (c *canvas) Arc(x, y, radius, start, end float64, counterclockwise bool) {
	if radius <= 0 {
		return
	}
	c.dc.DrawArc(x, y, radius, start, start+ArcSweep(start, end, counterclockwise))
}

// Fill paints the current path with the even-odd rule. The path is kept,
// so a following Stroke outlines the same shape.
func (c *canvas) Fill() {
	c.dc.SetColor(c.fillStyle)
	c.dc.FillPreserve()
}

// Stroke outlines the current path one device pixel wide.
func (c *canvas) Stroke() {
	c.dc.SetColor(c.strokeStyle)
	c.dc.StrokePreserve()
}

// ArcSweep returns the signed angle an arc from start to end covers.
// Clockwise sweeps are positive. A difference of at least 2π selects the
// full circle in the requested direction.
func ArcSweep(start, end float64, counterclockwise bool) float64 {
	const turn = 2 * math.Pi
	switch {
	case math.Abs(end-start) >= turn:
		if counterclockwise {
			return -turn
		}
		return turn
	case counterclockwise:
		return -math.Mod(math.Mod(start-end, turn)+turn, turn)
	default:
		return math.Mod(math.Mod(end-start, turn)+turn, turn)
	}
}
