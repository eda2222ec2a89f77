// Package viz renders the simulation in the terminal.
//
// A braille [Canvas] provides a 2x4-dots-per-cell drawing surface, [Camera]
// handles the 3D projection, and [Scene] composes the solar catalog with the
// particle buffers. [Model] wraps it all in a bubbletea program with live
// controls for time scale, camera and reset.
//
// The package sits strictly downstream of the simulation: it reads the flat
// position/color buffers and the statistics snapshot, and mutates the
// particle system only through Reset and SetTimeScale between frames.
package viz
