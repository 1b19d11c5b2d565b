// Package viz renders the solar system in the terminal.
//
// The [Model] is a Bubble Tea program that advances the simulation one
// tick per frame and draws it on a Braille [Canvas]: trails as connected
// lines, bodies as filled circles, and labels with each planet's name and
// distance to the Sun. A side panel lists the bodies and charts the
// focused body's distance with asciigraph.
//
// # Key Bindings
//
//	Arrows - Pan the view
//	+ / -  - Zoom in / out
//	C      - Recenter
//	Space  - Pause/Resume simulation
//	Tab    - Focus next body
//	T      - Cycle color themes
//	?      - Show help overlay
//	Q      - Quit
package viz
