package viz

import (
	"github.com/helioslab/heliosim/internal/solar"
	"github.com/helioslab/heliosim/internal/vec"
)

// Scene draws the solar catalog and the particle population onto a canvas.
// It consumes only the simulation's narrow read surface: the flat position
// and color buffers plus the planet table.
type Scene struct {
	Canvas *Canvas
	Camera *Camera
}

func NewScene(w, h int) *Scene {
	return &Scene{Canvas: NewCanvas(w, h), Camera: NewCamera()}
}

// Render redraws the frame. Inactive particles arrive with black color
// triplets and are skipped rather than drawn at their terminal positions.
func (s *Scene) Render(positions, colors []float64, planets []solar.Planet) {
	s.Canvas.Clear()
	sw, sh := s.Canvas.Width*2, s.Canvas.Height*4

	// Sun
	if x, y, ok := s.Camera.Project(vec.Vec3{}, sw, sh); ok {
		s.Canvas.DrawCircle(x, y, 2)
		s.Canvas.Set(x, y)
	}

	for _, p := range planets {
		x, y, ok := s.Camera.Project(p.Position, sw, sh)
		if !ok {
			continue
		}
		r := int(p.Radius * s.Camera.Zoom / 3)
		if r < 1 {
			r = 1
		}
		s.Canvas.DrawCircle(x, y, r)
	}

	for i := 0; i+2 < len(positions); i += 3 {
		if colors[i] == 0 && colors[i+1] == 0 && colors[i+2] == 0 {
			continue
		}
		p := vec.Vec3{X: positions[i], Y: positions[i+1], Z: positions[i+2]}
		if x, y, ok := s.Camera.Project(p, sw, sh); ok {
			s.Canvas.Set(x, y)
		}
	}
}
