package surface

import "errors"

var (
	// ErrSurfaceNotFound indicates no surface is registered under an id.
	// Callers may recover by creating a substitute surface.
	ErrSurfaceNotFound = errors.New("surface: surface not found")

	// ErrContextUnavailable indicates a surface cannot provide a 2D context.
	ErrContextUnavailable = errors.New("surface: 2d context unavailable")

	// ErrInvalidSize indicates non-positive surface dimensions.
	ErrInvalidSize = errors.New("surface: invalid size")

	// ErrInvalidColor indicates an unparseable color string.
	ErrInvalidColor = errors.New("surface: invalid color")
)
