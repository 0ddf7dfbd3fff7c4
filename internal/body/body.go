package body

import (
	"image/color"
	"math"

	"github.com/This-Is-Prince/learning-physics/internal/surface"
)

const (
	DefaultRadius = 25.0
	DefaultX      = 10.0
	DefaultY      = 10.0
)

// DefaultColor is the ball's fill when none is given.
var DefaultColor = color.RGBA{R: 0, G: 0, B: 255, A: 255}

type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Ball is a filled circle in surface coordinates, y growing downwards.
type Ball struct {
	Position Vec2
	Radius   float64
	Color    color.Color
}

func NewBall(radius, x, y float64, c color.Color) *Ball {
	if radius <= 0 {
		radius = DefaultRadius
	}
	if c == nil {
		c = DefaultColor
	}
	return &Ball{Position: Vec2{x, y}, Radius: radius, Color: c}
}

// NewDefaultBall returns the radius 25 blue ball at (10, 10).
func NewDefaultBall() *Ball {
	return NewBall(DefaultRadius, DefaultX, DefaultY, DefaultColor)
}

func (b *Ball) Draw(ctx surface.Context) {
	ctx.SetFillStyle(b.Color)
	ctx.BeginPath()
	ctx.Arc(b.Position.X, b.Position.Y, b.Radius, 0, 2*math.Pi, true)
	ctx.ClosePath()
	ctx.Fill()
}
