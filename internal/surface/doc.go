// Package surface provides canvas-style 2D drawing contexts.
//
// A [Context] accepts paths built from lines and arcs and fills or strokes
// them with gg. Two backends are provided:
//
//   - [Braille]: terminal output, 2x4 dots per character cell
//   - [Image]: RGBA images for GIF frames, windows and tests
//
// Surfaces are addressed by id through a [Document]. A missing surface is
// reported as [ErrSurfaceNotFound]; documents created with fallback enabled
// log a warning and create a substitute instead.
package surface
