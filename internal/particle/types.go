package particle

import "github.com/helioslab/heliosim/internal/vec"

// Type classifies an interstellar particle. It is fixed at spawn and drives
// mass/charge sampling, render color and statistics bucketing.
type Type int

const (
	Hydrogen Type = iota
	Helium
	HeavyIon
	Dust
)

func (t Type) String() string {
	switch t {
	case Hydrogen:
		return "hydrogen"
	case Helium:
		return "helium"
	case HeavyIon:
		return "heavy ion"
	case Dust:
		return "dust"
	default:
		return "unknown"
	}
}

// Particle is one slot in the fixed-size population arena. Inactive slots keep
// their terminal state until the next update overwrites them in place.
type Particle struct {
	Position vec.Vec3
	Velocity vec.Vec3
	Mass     float64
	Charge   float64
	Type     Type

	Active    bool
	Deflected bool
	Age       float64
	Energy    float64
}

// Simulation constants. Units are cosmetic: 1 distance unit ≈ 10 AU.
const (
	// HeliopauseRadius bounds the solar-wind and magnetic force regions;
	// particles spawn on a shell around it.
	HeliopauseRadius = 500.0

	// DefaultMaxParticles is the population size used when none is given.
	DefaultMaxParticles = 5000

	gravityConstant       = 0.001
	sunMass               = 1000.0
	solarWindStrength     = 0.5
	magneticFieldStrength = 0.3
	deflectionThreshold   = 0.1

	captureRadius = 2.0
	escapeRadius  = HeliopauseRadius * 1.2
	maxAge        = 100.0
)

// typeColors maps each particle type to its render color. Channels are not
// clamped downstream; deflected particles are boosted past 1.0 on purpose.
var typeColors = [...][3]float64{
	Hydrogen: {0.45, 0.65, 1.0},
	Helium:   {1.0, 0.5, 0.8},
	HeavyIon: {0.3, 1.0, 0.5},
	Dust:     {1.0, 0.6, 0.2},
}

const deflectedBoost = 1.2
