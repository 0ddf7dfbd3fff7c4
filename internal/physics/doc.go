// Package physics implements the bounce step applied to a ball once per
// frame: constant gravity, explicit velocity integration, floor
// reflection with restitution and a terminal at-rest state entered when
// the ball reaches the right wall.
//
// The reference step adds gravity and velocity once per frame regardless
// of elapsed time. [Params.TimeScaled] selects the per-second variant:
//
//	b, _ := physics.New(physics.Params{Gravity: 600, VX: 60, Restitution: 0.8, TimeScaled: true})
//	b.Step(dt, ball, physics.Bounds{Width: 500, Height: 500})
package physics
