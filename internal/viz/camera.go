package viz

import (
	"math"

	"github.com/helioslab/heliosim/internal/vec"
)

// Camera projects simulation coordinates onto the canvas. It orbits the
// origin: three rotation angles plus a zoom factor, with a fixed-focal
// perspective divide.
type Camera struct {
	RotX, RotY, RotZ float64
	Zoom             float64
	viewDist         float64
}

// NewCamera starts tilted slightly above the ecliptic, zoomed so the
// heliopause shell fits the frame.
func NewCamera() *Camera {
	return &Camera{RotX: 0.4, Zoom: 1.0, viewDist: 1600}
}

func (c *Camera) RotateX(a float64) { c.RotX += a }
func (c *Camera) RotateY(a float64) { c.RotY += a }
func (c *Camera) RotateZ(a float64) { c.RotZ += a }
func (c *Camera) ZoomIn()           { c.Zoom = math.Min(10, c.Zoom*1.2) }
func (c *Camera) ZoomOut()          { c.Zoom = math.Max(0.1, c.Zoom/1.2) }

func (c *Camera) rotate(p vec.Vec3) vec.Vec3 {
	cx, sx := math.Cos(c.RotX), math.Sin(c.RotX)
	p.Y, p.Z = p.Y*cx-p.Z*sx, p.Y*sx+p.Z*cx
	cy, sy := math.Cos(c.RotY), math.Sin(c.RotY)
	p.X, p.Z = p.X*cy+p.Z*sy, -p.X*sy+p.Z*cy
	cz, sz := math.Cos(c.RotZ), math.Sin(c.RotZ)
	p.X, p.Y = p.X*cz-p.Y*sz, p.X*sz+p.Y*cz
	return p
}

// Project maps a world point to sub-pixel canvas coordinates. The last
// return value is false when the point lands behind the viewer or outside
// the canvas.
func (c *Camera) Project(p vec.Vec3, sw, sh int) (int, int, bool) {
	r := c.rotate(p).Scale(c.Zoom)

	depth := c.viewDist + r.Z
	if depth <= 1 {
		return 0, 0, false
	}

	// Focal length chosen so the spawn shell spans the canvas at zoom 1.
	f := float64(sw) * 1.4
	x := sw/2 + int(r.X*f/depth)
	// Terminal cells are taller than wide; compress y to keep circles round.
	y := sh/2 - int(r.Y*f/depth/2)

	if x < 0 || x >= sw || y < 0 || y >= sh {
		return x, y, false
	}
	return x, y, true
}
