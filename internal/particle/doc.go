// Package particle implements the interstellar particle population and its
// per-frame integrator.
//
// A [System] owns a fixed-size arena of particle slots. Each frame,
// [System.Update] applies three forces to every active particle:
//
//   - sun gravity, inward, inverse-square
//   - radial solar-wind pressure, outward, inside the heliopause
//   - magnetic qv×B deflection from the toy Parker field ([MagneticFieldAt])
//
// followed by a single semi-implicit Euler step and the lifecycle checks
// (capture, escape, age expiry, planet collision). Deactivated slots keep
// their terminal state for one frame and are respawned in place on the next
// update; no allocation happens after construction.
//
// The renderer-facing surface is deliberately narrow: flat position/color
// triplet buffers in slot order plus a [Statistics] value snapshot.
//
// # Reproducibility
//
// All sampling flows through one seeded source injected at construction, so
// equal seeds give bitwise-identical runs.
//
// # Thread Safety
//
// A System assumes a single logical thread: call Update, Reset, SetTimeScale
// and the accessors from one goroutine, between frames.
package particle
