package particle

// TypeCounts buckets the active population by particle type.
type TypeCounts struct {
	Hydrogen int
	Helium   int
	Ions     int
	Dust     int
}

// EnergyHistogram buckets active particles by spawn energy:
// low < 100, medium < 1000, high otherwise (arbitrary energy units).
type EnergyHistogram struct {
	Low    int
	Medium int
	High   int
}

// Statistics is the aggregate snapshot recomputed in full after every update.
// It is a pure function of the particle slots; Active+Captured always equals
// Total because an inactive slot this frame is, by definition, one removed
// from the flow and awaiting respawn.
type Statistics struct {
	Total     int
	Active    int
	Captured  int
	Deflected int
	Types     TypeCounts
	Energy    EnergyHistogram
	MeanSpeed float64
}

func (s *System) computeStatistics() Statistics {
	st := Statistics{Total: len(s.particles)}
	speedSum := 0.0

	for i := range s.particles {
		p := &s.particles[i]
		if p.Deflected {
			st.Deflected++
		}
		if !p.Active {
			st.Captured++
			continue
		}
		st.Active++
		speedSum += p.Velocity.Length()

		switch p.Type {
		case Hydrogen:
			st.Types.Hydrogen++
		case Helium:
			st.Types.Helium++
		case HeavyIon:
			st.Types.Ions++
		case Dust:
			st.Types.Dust++
		}

		switch {
		case p.Energy < 100:
			st.Energy.Low++
		case p.Energy < 1000:
			st.Energy.Medium++
		default:
			st.Energy.High++
		}
	}

	if st.Active > 0 {
		st.MeanSpeed = speedSum / float64(st.Active)
	}
	return st
}
