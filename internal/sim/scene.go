package sim

import (
	"github.com/This-Is-Prince/learning-physics/internal/body"
	"github.com/This-Is-Prince/learning-physics/internal/physics"
	"github.com/This-Is-Prince/learning-physics/internal/surface"
)

// Scene is one ball bouncing on one surface. Frame is the per-frame
// callback: clear, step, draw.
type Scene struct {
	Ball    *body.Ball
	Physics *physics.Bounce
	Context surface.Context

	observers []Observer
	frame     int
	elapsed   float64
}

func NewScene(ball *body.Ball, bounce *physics.Bounce, ctx surface.Context) *Scene {
	return &Scene{
		Ball:      ball,
		Physics:   bounce,
		Context:   ctx,
		observers: make([]Observer, 0),
	}
}

func (s *Scene) AddObserver(o Observer) { s.observers = append(s.observers, o) }

// RemoveObserver detaches o and reports whether it was attached. Observers
// are matched by identity, so o should be a pointer.
func (s *Scene) RemoveObserver(o Observer) bool {
	for i, cur := range s.observers {
		if cur == o {
			s.observers = append(s.observers[:i], s.observers[i+1:]...)
			return true
		}
	}
	return false
}

func (s *Scene) Bounds() physics.Bounds {
	return physics.Bounds{
		Width:  float64(s.Context.Width()),
		Height: float64(s.Context.Height()),
	}
}

func (s *Scene) Frame(dt float64) {
	bounds := s.Bounds()

	s.Context.Clear()
	bounced := s.Physics.Step(dt, s.Ball, bounds)
	s.Ball.Draw(s.Context)

	s.frame++
	s.elapsed += dt

	sample := Sample{
		Frame:   s.frame,
		Time:    s.elapsed,
		DT:      dt,
		X:       s.Ball.Position.X,
		Y:       s.Ball.Position.Y,
		VX:      s.Physics.VX,
		VY:      s.Physics.VY,
		Floor:   bounds.Height - s.Ball.Radius,
		Energy:  s.Physics.Energy(s.Ball, bounds),
		Bounced: bounced,
		AtRest:  s.Physics.AtRest(),
	}
	for _, o := range s.observers {
		o.OnFrame(sample)
	}
}

// Frames returns how many frames the scene has drawn.
func (s *Scene) Frames() int { return s.frame }

// Elapsed returns the summed frame deltas in seconds.
func (s *Scene) Elapsed() float64 { return s.elapsed }
