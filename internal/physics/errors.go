package physics

import "errors"

var (
	// ErrRestitutionBounds indicates a restitution outside [0, 1].
	ErrRestitutionBounds = errors.New("physics: restitution out of [0, 1]")

	// ErrInvalidParam indicates a NaN or infinite parameter.
	ErrInvalidParam = errors.New("physics: parameter must be finite")
)
