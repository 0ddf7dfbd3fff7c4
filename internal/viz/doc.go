// Package viz renders a bouncing ball scene in the terminal.
//
// The package implements a Bubble Tea program that doubles as the frame
// host:
//
//   - [Model]: a [frame.Host] whose refreshes are Bubble Tea tick messages
//   - [Theme]: one of the built-in color schemes, chosen at start up
//
// The scene is drawn on a braille surface. The stats panel shows the ball
// state, a height chart and an energy sparkline.
//
// # Key Bindings
//
//	q, ctrl+c - Quit
package viz
