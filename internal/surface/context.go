package surface

import "image/color"

// Context is a canvas-style 2D drawing context. Coordinates are logical
// surface units with the origin at the top-left and y growing downwards.
type Context interface {
	Width() int
	Height() int

	// Clear erases the surface to its clear color.
	Clear()
	SetClearColor(c color.Color)
	SetFillStyle(c color.Color)
	SetStrokeStyle(c color.Color)

	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	// Arc adds a circular arc from start to end radians. A sweep of at
	// least 2π in either direction draws the full circle.
	Arc(x, y, radius, start, end float64, counterclockwise bool)
	ClosePath()
	Fill()
	Stroke()
}
