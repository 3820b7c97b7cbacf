package frogger

import (
	"fmt"

	"github.com/vovakirdan/tui-frogger/internal/config"
	"github.com/vovakirdan/tui-frogger/internal/core"
)

// LaneKind classifies a grid row.
type LaneKind int

const (
	LaneSafe LaneKind = iota
	LaneRoad
	LaneRiver
	LaneGoal
)

// String returns a human-readable name for the lane kind.
func (k LaneKind) String() string {
	switch k {
	case LaneSafe:
		return "safe"
	case LaneRoad:
		return "road"
	case LaneRiver:
		return "river"
	case LaneGoal:
		return "goal"
	default:
		return "unknown"
	}
}

// Zones maps rows to lane kinds.
type Zones config.ZoneConfig

// KindOf returns the lane kind of a row.
func (z Zones) KindOf(row int) LaneKind {
	switch {
	case row == z.GoalRow:
		return LaneGoal
	case z.IsRiver(row):
		return LaneRiver
	case z.IsRoad(row):
		return LaneRoad
	default:
		return LaneSafe
	}
}

// IsRiver reports whether the row is part of the river.
func (z Zones) IsRiver(row int) bool {
	return row >= z.RiverStart && row <= z.RiverEnd
}

// IsRoad reports whether the row is part of the road.
func (z Zones) IsRoad(row int) bool {
	return row >= z.RoadStart && row <= z.RoadEnd
}

// Rand is the random source used for lane placement.
// *rand.Rand satisfies it; tests may pass a fixed source.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// Lane is a compiled lane spec: the template for every object in one row.
type Lane struct {
	Row   int
	Width int
	Speed float64
	Dir   Direction
	Color core.Color
}

// CompileLanes converts config lane specs into typed lanes.
func CompileLanes(specs []config.LaneSpec) ([]Lane, error) {
	lanes := make([]Lane, 0, len(specs))
	for _, spec := range specs {
		dir, err := ParseDirection(spec.Direction)
		if err != nil {
			return nil, err
		}
		color, ok := core.ParseColor(spec.Color)
		if !ok {
			return nil, fmt.Errorf("frogger: unknown color %q in row %d", spec.Color, spec.Row)
		}
		lanes = append(lanes, Lane{
			Row:   spec.Row,
			Width: spec.Width,
			Speed: spec.Speed,
			Dir:   dir,
			Color: color,
		})
	}
	return lanes, nil
}

// LaneField holds every moving object: cars on the road and logs on the river.
type LaneField struct {
	Hazards   []MovingObject
	Platforms []MovingObject
	grid      Grid
}

// NewLaneField spawns the objects of every lane. Each lane gets between
// min_per_lane and max_per_lane objects spread evenly across the screen,
// each nudged by a random jitter.
func NewLaneField(road, river []Lane, spawn config.SpawnConfig, g Grid, rng Rand) *LaneField {
	return &LaneField{
		Hazards:   spawnLanes(road, spawn, spawn.RoadJitter, g, rng),
		Platforms: spawnLanes(river, spawn, spawn.RiverJitter, g, rng),
		grid:      g,
	}
}

func spawnLanes(lanes []Lane, spawn config.SpawnConfig, jitter float64, g Grid, rng Rand) []MovingObject {
	objects := make([]MovingObject, 0, len(lanes)*spawn.MaxPerLane)
	for _, lane := range lanes {
		count := spawn.MinPerLane + rng.Intn(spawn.MaxPerLane-spawn.MinPerLane+1)
		spacing := g.Width() / float64(count)
		for i := 0; i < count; i++ {
			offset := (rng.Float64()*2 - 1) * jitter
			objects = append(objects, MovingObject{
				X:     float64(i)*spacing + offset,
				Row:   lane.Row,
				Width: lane.Width,
				Speed: lane.Speed,
				Dir:   lane.Dir,
				Color: lane.Color,
			})
		}
	}
	return objects
}

// Tick advances every object by dt seconds.
func (f *LaneField) Tick(dt float64) {
	for i := range f.Hazards {
		f.Hazards[i].Advance(dt, f.grid)
	}
	for i := range f.Platforms {
		f.Platforms[i].Advance(dt, f.grid)
	}
}

// HazardAt returns the first car on the row overlapping r.
func (f *LaneField) HazardAt(row int, r core.Rect) (MovingObject, bool) {
	return firstOverlap(f.Hazards, row, r, f.grid)
}

// PlatformAt returns the first log on the row overlapping r.
func (f *LaneField) PlatformAt(row int, r core.Rect) (MovingObject, bool) {
	return firstOverlap(f.Platforms, row, r, f.grid)
}

func firstOverlap(objects []MovingObject, row int, r core.Rect, g Grid) (MovingObject, bool) {
	for _, o := range objects {
		if o.Row == row && r.Intersects(o.Rect(g)) {
			return o, true
		}
	}
	return MovingObject{}, false
}
