package frogger

import "math"

// Snapshot captures the complete game state for determinism testing.
// Uses primitive types only for stable comparison.
type Snapshot struct {
	Tick         uint64
	Phase        string
	Score        int
	Lives        int
	Paused       bool
	FrogCol      int
	FrogRow      int
	RidingOffset float64
	Riding       bool
	Goals        []bool

	// Each object is 3 values: X, Row, Width
	HazardData   []float64
	PlatformData []float64
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	s := g.sim
	frog := s.Frog()

	goals := make([]bool, 0, len(s.goals.slots))
	for _, slot := range s.goals.slots {
		goals = append(goals, slot.Occupied)
	}

	return Snapshot{
		Tick:         s.Ticks(),
		Phase:        s.Phase().String(),
		Score:        s.Score(),
		Lives:        s.Lives(),
		Paused:       g.paused,
		FrogCol:      frog.Col,
		FrogRow:      frog.Row,
		RidingOffset: frog.RidingOffset,
		Riding:       frog.Riding,
		Goals:        goals,
		HazardData:   flattenObjects(s.Hazards()),
		PlatformData: flattenObjects(s.Platforms()),
	}
}

func flattenObjects(objects []MovingObject) []float64 {
	data := make([]float64, 0, len(objects)*3)
	for _, o := range objects {
		data = append(data, o.X, float64(o.Row), float64(o.Width))
	}
	return data
}

// Hash returns a simple hash of the snapshot for quick comparison.
func (s Snapshot) Hash() uint64 {
	h := s.Tick
	h = h*31 + uint64(s.Score)   //#nosec G115 -- hash computation
	h = h*31 + uint64(s.Lives)   //#nosec G115 -- hash computation
	h = h*31 + uint64(s.FrogCol) //#nosec G115 -- hash computation
	h = h*31 + uint64(s.FrogRow) //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(s.RidingOffset)
	for _, c := range s.Phase {
		h = h*31 + uint64(c)
	}
	for _, occupied := range s.Goals {
		h *= 31
		if occupied {
			h++
		}
	}
	for _, v := range s.HazardData {
		h = h*31 + math.Float64bits(v)
	}
	for _, v := range s.PlatformData {
		h = h*31 + math.Float64bits(v)
	}
	return h
}
