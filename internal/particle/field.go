package particle

import (
	"math"

	"github.com/helioslab/heliosim/internal/vec"
)

// MagneticFieldAt evaluates the simplified Parker-spiral field at a point.
// The field has a radial component falling off as 1/(r²+1) and an
// azimuthal component winding against the rotation direction as 1/(r+1).
// This is a deliberate toy approximation, not solar physics.
func MagneticFieldAt(p vec.Vec3) vec.Vec3 {
	r := p.Length()
	theta := math.Atan2(p.Z, math.Sqrt(p.X*p.X+p.Y*p.Y))
	phi := math.Atan2(p.Y, p.X)

	br := 0.1 / (r*r + 1)
	bphi := -0.05 * math.Sin(theta) / (r + 1)

	sinT, cosT := math.Sin(theta), math.Cos(theta)
	sinP, cosP := math.Sin(phi), math.Cos(phi)

	return vec.Vec3{
		X: br*sinT*cosP - bphi*sinP,
		Y: br*sinT*sinP + bphi*cosP,
		Z: br * cosT,
	}
}
