// Package solar holds the static catalog of celestial bodies and a
// gravitational-field query over it.
//
// The catalog is fixed at construction: eight planets with hardcoded
// positions, radii, masses and display colors, plus the sun at the origin.
// Positions use simulation units (1 unit ≈ 10 AU) and do not evolve; the
// bodies act as fixed obstacles and field sources, not orbiting masses.
package solar

import "github.com/helioslab/heliosim/internal/vec"

const (
	// G is the gravitational constant in simulation units.
	G = 0.001
	// SunMass anchors the central field.
	SunMass = 1000.0
)

// Planet is one immutable catalog entry.
type Planet struct {
	Name     string
	Position vec.Vec3
	Radius   float64
	Mass     float64
	Color    [3]float64
}

// System is the fixed solar-system catalog.
type System struct {
	planets []Planet
}

// New builds the catalog. Values are cosmetic: distances are compressed so
// every body sits well inside the heliopause, masses are in Earth masses.
func New() *System {
	return &System{planets: []Planet{
		{Name: "Mercury", Position: vec.Vec3{X: 14.1, Y: 0, Z: 14.1}, Radius: 1.5, Mass: 0.055, Color: [3]float64{0.71, 0.71, 0.71}},
		{Name: "Venus", Position: vec.Vec3{X: -30.3, Y: 0, Z: 17.5}, Radius: 3.5, Mass: 0.815, Color: [3]float64{0.91, 0.80, 0.63}},
		{Name: "Earth", Position: vec.Vec3{X: 25.0, Y: 0, Z: -43.3}, Radius: 3.8, Mass: 1.0, Color: [3]float64{0.35, 0.55, 0.85}},
		{Name: "Mars", Position: vec.Vec3{X: -53.0, Y: 0, Z: -53.0}, Radius: 2.0, Mass: 0.107, Color: [3]float64{0.85, 0.44, 0.28}},
		{Name: "Jupiter", Position: vec.Vec3{X: 112.6, Y: 0, Z: 65.0}, Radius: 11.0, Mass: 317.8, Color: [3]float64{0.83, 0.70, 0.55}},
		{Name: "Saturn", Position: vec.Vec3{X: -90.0, Y: 0, Z: 155.9}, Radius: 9.5, Mass: 95.2, Color: [3]float64{0.89, 0.82, 0.64}},
		{Name: "Uranus", Position: vec.Vec3{X: -162.6, Y: 0, Z: -162.6}, Radius: 6.5, Mass: 14.5, Color: [3]float64{0.67, 0.85, 0.88}},
		{Name: "Neptune", Position: vec.Vec3{X: 145.0, Y: 0, Z: -251.1}, Radius: 6.3, Mass: 17.1, Color: [3]float64{0.31, 0.44, 0.84}},
	}}
}

// Planets returns a copy of the catalog.
func (s *System) Planets() []Planet {
	out := make([]Planet, len(s.planets))
	copy(out, s.planets)
	return out
}

// PlanetByName looks up a catalog entry. The boolean reports absence;
// unknown names are not an error.
func (s *System) PlanetByName(name string) (Planet, bool) {
	for _, p := range s.planets {
		if p.Name == name {
			return p, true
		}
	}
	return Planet{}, false
}

// GravitationalFieldAt sums the field of the sun and every planet at point p.
// Each term has magnitude G*mass/d² directed toward its source; sources at
// zero distance contribute nothing.
func (s *System) GravitationalFieldAt(p vec.Vec3) vec.Vec3 {
	var field vec.Vec3

	if d := p.Length(); d > 0 {
		field = field.Add(p.Scale(-1 / d).Scale(G * SunMass / (d * d)))
	}

	for _, pl := range s.planets {
		delta := pl.Position.Sub(p)
		d := delta.Length()
		if d == 0 {
			continue
		}
		field = field.Add(delta.Scale(1 / d).Scale(G * pl.Mass / (d * d)))
	}

	return field
}
