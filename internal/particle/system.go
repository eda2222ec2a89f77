package particle

import (
	"math"
	"math/rand"

	"github.com/helioslab/heliosim/internal/solar"
	"github.com/helioslab/heliosim/internal/vec"
)

// System owns a fixed-size population of interstellar particles and advances
// it one frame at a time. It is not safe for concurrent use: Update, Reset,
// SetTimeScale and the accessors assume a single logical thread of control,
// with mutations happening between frames.
type System struct {
	particles []Particle
	planets   []solar.Planet
	rng       *rand.Rand
	timeScale float64
	stats     Statistics
}

// spawnDirection is the base inflow direction of the interstellar wind.
var spawnDirection = vec.Vec3{X: 0.3, Y: -0.1, Z: -0.4}.Normalize()

// New allocates and spawns maxParticles particles immediately. A negative
// count is treated as zero; a zero population is legal and yields empty
// buffers. The seed drives every sampling decision, so runs with equal seeds
// are identical. Changing the population size requires constructing a new
// System.
func New(catalog *solar.System, maxParticles int, seed int64) *System {
	if maxParticles < 0 {
		maxParticles = 0
	}
	s := &System{
		particles: make([]Particle, maxParticles),
		planets:   catalog.Planets(),
		rng:       rand.New(rand.NewSource(seed)),
		timeScale: 1.0,
	}
	for i := range s.particles {
		s.spawn(&s.particles[i])
	}
	s.stats = s.computeStatistics()
	return s
}

// spawn overwrites a slot with a freshly sampled particle.
func (s *System) spawn(p *Particle) {
	draw := s.rng.Float64()
	switch {
	case draw < 0.90:
		p.Type = Hydrogen
		p.Mass = 1.0
		p.Charge = 1.0
	case draw < 0.99:
		p.Type = Helium
		p.Mass = 4.0
		p.Charge = 2.0
	case draw < 0.998:
		p.Type = HeavyIon
		p.Mass = 12.0 + 40.0*s.rng.Float64()
		p.Charge = 3.0 + 10.0*s.rng.Float64()
	default:
		p.Type = Dust
		p.Mass = 1000.0 + 10000.0*s.rng.Float64()
		p.Charge = 0
	}

	// Shell around the heliopause with uniform spherical angles. This
	// oversamples the poles relative to a uniform-on-sphere law; the visual
	// model wants exactly this distribution.
	radius := HeliopauseRadius * (0.95 + 0.1*s.rng.Float64())
	theta := 2 * math.Pi * s.rng.Float64()
	phi := math.Pi * s.rng.Float64()
	sinP, cosP := math.Sin(phi), math.Cos(phi)
	p.Position = vec.Vec3{
		X: radius * sinP * math.Cos(theta),
		Y: radius * sinP * math.Sin(theta),
		Z: radius * cosP,
	}

	speed := 2.0 + s.rng.Float64()
	p.Velocity = spawnDirection.Scale(speed).Add(vec.Vec3{
		X: s.rng.Float64()*0.5 - 0.25,
		Y: s.rng.Float64()*0.5 - 0.25,
		Z: s.rng.Float64()*0.5 - 0.25,
	})

	// Kinetic energy is sampled once at spawn and never recomputed.
	p.Energy = 0.5 * p.Mass * p.Velocity.LengthSq() * 100

	p.Active = true
	p.Deflected = false
	p.Age = 0
}

// Update advances every particle by deltaTime (seconds of wall clock) scaled
// by the current time scale, then recomputes the statistics snapshot.
// Inactive slots are respawned and sit out the rest of the frame.
func (s *System) Update(deltaTime float64) {
	dt := deltaTime * s.timeScale

	for i := range s.particles {
		p := &s.particles[i]
		if !p.Active {
			s.spawn(p)
			continue
		}
		s.advance(p, dt)
	}

	s.stats = s.computeStatistics()
}

// advance applies one semi-implicit Euler step to an active particle and runs
// the deactivation checks on the post-move position.
func (s *System) advance(p *Particle, dt float64) {
	p.Age += dt

	dist := p.Position.Length()
	var force vec.Vec3

	// Sun gravity, inward. A particle exactly at the origin feels nothing.
	if dist > 0 {
		inward := p.Position.Scale(-1 / dist)
		force = force.Add(inward.Scale(gravityConstant * sunMass * p.Mass / (dist * dist)))

		// Radial solar-wind pressure, outward, inside the heliopause only.
		if dist < HeliopauseRadius {
			force = force.Add(p.Position.Scale(1 / dist).Scale(solarWindStrength / (dist*dist + 1)))
		}
	}

	// Magnetic deflection: qv×B scaled by field strength, charged particles
	// inside the heliopause only. Crossing the threshold marks the particle
	// deflected for the rest of its life.
	if p.Charge != 0 && dist < HeliopauseRadius {
		b := MagneticFieldAt(p.Position)
		magnetic := p.Velocity.Cross(b).Scale(p.Charge * magneticFieldStrength / p.Mass)
		force = force.Add(magnetic)
		if magnetic.Length() > deflectionThreshold {
			p.Deflected = true
		}
	}

	accel := force.Scale(1 / p.Mass)
	p.Velocity = p.Velocity.Add(accel.Scale(dt))
	p.Position = p.Position.Add(p.Velocity.Scale(dt))

	// Deactivation, first match wins: captured by the sun, escaped past the
	// outer boundary, expired by age, or collided with a planet. The slot
	// keeps its terminal state until respawned next frame.
	dist = p.Position.Length()
	switch {
	case dist < captureRadius:
		p.Active = false
	case dist > escapeRadius:
		p.Active = false
	case p.Age > maxAge:
		p.Active = false
	default:
		for i := range s.planets {
			if p.Position.Distance(s.planets[i].Position) < s.planets[i].Radius {
				p.Active = false
				break
			}
		}
	}
}

// Reset respawns the whole population and recomputes statistics. The random
// stream continues from where it was; call New for a reproducible restart.
func (s *System) Reset() {
	for i := range s.particles {
		s.spawn(&s.particles[i])
	}
	s.stats = s.computeStatistics()
}

// SetTimeScale sets the multiplier applied to every subsequent deltaTime.
// Any value is accepted, including zero (freezes the simulation) and
// negatives.
func (s *System) SetTimeScale(scale float64) { s.timeScale = scale }

// TimeScale reports the current multiplier.
func (s *System) TimeScale() float64 { return s.timeScale }

// Len reports the fixed population size.
func (s *System) Len() int { return len(s.particles) }

// Positions returns a fresh flat xyz buffer, one triplet per particle in slot
// order, length 3*Len.
func (s *System) Positions() []float64 {
	out := make([]float64, 3*len(s.particles))
	s.PositionsInto(out)
	return out
}

// PositionsInto fills dst with the position triplets. dst must have length
// at least 3*Len.
func (s *System) PositionsInto(dst []float64) {
	for i := range s.particles {
		p := &s.particles[i]
		dst[3*i] = p.Position.X
		dst[3*i+1] = p.Position.Y
		dst[3*i+2] = p.Position.Z
	}
}

// Colors returns a fresh flat rgb buffer in slot order. Inactive slots render
// black; deflected particles have every channel boosted by 1.2, deliberately
// unclamped, so values range over [0, 1.2].
func (s *System) Colors() []float64 {
	out := make([]float64, 3*len(s.particles))
	s.ColorsInto(out)
	return out
}

// ColorsInto fills dst with the color triplets. dst must have length at
// least 3*Len.
func (s *System) ColorsInto(dst []float64) {
	for i := range s.particles {
		p := &s.particles[i]
		if !p.Active {
			dst[3*i], dst[3*i+1], dst[3*i+2] = 0, 0, 0
			continue
		}
		c := typeColors[p.Type]
		if p.Deflected {
			c[0] *= deflectedBoost
			c[1] *= deflectedBoost
			c[2] *= deflectedBoost
		}
		dst[3*i], dst[3*i+1], dst[3*i+2] = c[0], c[1], c[2]
	}
}

// Statistics returns the snapshot computed by the most recent Update (or by
// construction/Reset). The returned value is a copy; calling it repeatedly
// without an intervening Update yields identical values.
func (s *System) Statistics() Statistics { return s.stats }
