package frogger

import "math"

// GoalSlot is a landing pad on the goal row. Once occupied it stays occupied
// for the rest of the game.
type GoalSlot struct {
	Col      int
	Occupied bool
}

// ClaimOutcome is the result of a frog arriving on the goal row.
type ClaimOutcome int

const (
	ClaimMissed    ClaimOutcome = iota // No free slot close enough
	ClaimScored                        // A slot was claimed, others remain
	ClaimCompleted                     // The last free slot was claimed
)

// GoalTrack owns the goal slots.
type GoalTrack struct {
	slots  []GoalSlot
	grid   Grid
	radius float64 // Claim distance in logical units
}

// NewGoalTrack creates count free slots evenly spaced across the grid.
// radius is the claim distance as a fraction of the cell size.
func NewGoalTrack(count int, g Grid, radius float64) *GoalTrack {
	spacing := g.Cols / (count + 1)
	slots := make([]GoalSlot, count)
	for i := range slots {
		slots[i] = GoalSlot{Col: spacing * (i + 1)}
	}
	return &GoalTrack{
		slots:  slots,
		grid:   g,
		radius: radius * g.CellSize,
	}
}

// SlotCenterX returns the horizontal center of a slot.
func (t *GoalTrack) SlotCenterX(i int) float64 {
	return float64(t.slots[i].Col)*t.grid.CellSize + t.grid.CellSize/2
}

// TryClaim occupies the first free slot, in index order, whose center lies
// within the claim radius of centerX. Lower indices win ties even if a later
// slot is closer.
func (t *GoalTrack) TryClaim(centerX float64) (int, ClaimOutcome) {
	for i := range t.slots {
		if t.slots[i].Occupied {
			continue
		}
		if math.Abs(centerX-t.SlotCenterX(i)) < t.radius {
			t.slots[i].Occupied = true
			if t.AllOccupied() {
				return i, ClaimCompleted
			}
			return i, ClaimScored
		}
	}
	return -1, ClaimMissed
}

// AllOccupied reports whether every slot has been claimed.
func (t *GoalTrack) AllOccupied() bool {
	for _, s := range t.slots {
		if !s.Occupied {
			return false
		}
	}
	return true
}

// Occupied returns the number of claimed slots.
func (t *GoalTrack) Occupied() int {
	n := 0
	for _, s := range t.slots {
		if s.Occupied {
			n++
		}
	}
	return n
}

// Slots returns a copy of the slots.
func (t *GoalTrack) Slots() []GoalSlot {
	out := make([]GoalSlot, len(t.slots))
	copy(out, t.slots)
	return out
}
