package physics

import (
	"fmt"
	"math"

	"github.com/This-Is-Prince/learning-physics/internal/body"
)

const (
	DefaultGravity     = 0.1
	DefaultVX          = 1.0
	DefaultVY          = 1.0
	DefaultRestitution = 0.8
)

type Params struct {
	Gravity     float64
	VX, VY      float64
	Restitution float64
	TimeScaled  bool
}

func DefaultParams() Params {
	return Params{
		Gravity:     DefaultGravity,
		VX:          DefaultVX,
		VY:          DefaultVY,
		Restitution: DefaultRestitution,
	}
}

func (p Params) Validate() error {
	for name, v := range map[string]float64{
		"gravity":     p.Gravity,
		"vx":          p.VX,
		"vy":          p.VY,
		"restitution": p.Restitution,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %s=%v", ErrInvalidParam, name, v)
		}
	}
	if p.Restitution < 0 || p.Restitution > 1 {
		return fmt.Errorf("%w: %v", ErrRestitutionBounds, p.Restitution)
	}
	return nil
}

// Bounds are the surface dimensions the ball is confined to.
type Bounds struct {
	Width, Height float64
}

// Bounce is the velocity state of one ball. Once at rest it never changes
// again.
type Bounce struct {
	VX, VY      float64
	Gravity     float64
	Restitution float64
	TimeScaled  bool
	atRest      bool
}

func New(p Params) (*Bounce, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &Bounce{
		VX:          p.VX,
		VY:          p.VY,
		Gravity:     p.Gravity,
		Restitution: p.Restitution,
		TimeScaled:  p.TimeScaled,
	}, nil
}

func (b *Bounce) AtRest() bool { return b.atRest }

func (b *Bounce) Velocity() body.Vec2 { return body.Vec2{X: b.VX, Y: b.VY} }

// Step advances ball by one frame and reports whether it bounced off the
// floor. dt is only used when TimeScaled is set.
func (b *Bounce) Step(dt float64, ball *body.Ball, bounds Bounds) bool {
	if b.atRest {
		return false
	}

	scale := 1.0
	if b.TimeScaled {
		scale = dt
	}

	b.VY += b.Gravity * scale
	ball.Position.X += b.VX * scale
	ball.Position.Y += b.VY * scale

	bounced := false
	if floor := bounds.Height - ball.Radius; ball.Position.Y > floor {
		ball.Position.Y = floor
		b.VY = -b.VY * b.Restitution
		bounced = true
	}

	if ball.Position.X >= bounds.Width-ball.Radius {
		b.atRest = true
	}
	return bounced
}

// Energy returns the mechanical energy per unit mass, measuring potential
// energy from the floor.
func (b *Bounce) Energy(ball *body.Ball, bounds Bounds) float64 {
	height := bounds.Height - ball.Radius - ball.Position.Y
	return 0.5*(b.VX*b.VX+b.VY*b.VY) + b.Gravity*height
}
