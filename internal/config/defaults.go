package config

import (
	_ "embed"
)

//go:embed defaults/frogger.yaml
var defaultFroggerYAML []byte

// DefaultFroggerConfig returns the default game configuration.
// It must stay identical to defaults/frogger.yaml.
func DefaultFroggerConfig() FroggerConfig {
	return FroggerConfig{
		Grid: GridConfig{
			Cols:     20,
			Rows:     15,
			CellSize: 32,
		},
		Zones: ZoneConfig{
			GoalRow:    0,
			RiverStart: 1,
			RiverEnd:   5,
			RoadStart:  7,
			RoadEnd:    12,
		},
		Rules: RulesConfig{
			Lives:      3,
			GoalCount:  5,
			GoalPoints: 100,
			GoalRadius: 0.8,
		},
		Spawn: SpawnConfig{
			MinPerLane:  2,
			MaxPerLane:  3,
			RoadJitter:  20,
			RiverJitter: 30,
		},
		Road: []LaneSpec{
			{Row: 7, Width: 2, Speed: 80, Direction: DirectionLeft, Color: "red"},
			{Row: 8, Width: 3, Speed: 100, Direction: DirectionRight, Color: "yellow"},
			{Row: 9, Width: 2, Speed: 70, Direction: DirectionLeft, Color: "blue"},
			{Row: 10, Width: 4, Speed: 120, Direction: DirectionRight, Color: "purple"},
			{Row: 11, Width: 2, Speed: 90, Direction: DirectionLeft, Color: "orange"},
			{Row: 12, Width: 3, Speed: 60, Direction: DirectionRight, Color: "maroon"},
		},
		River: []LaneSpec{
			{Row: 1, Width: 4, Speed: 50, Direction: DirectionRight, Color: "brown"},
			{Row: 2, Width: 3, Speed: 70, Direction: DirectionLeft, Color: "brown"},
			{Row: 3, Width: 5, Speed: 40, Direction: DirectionRight, Color: "brown"},
			{Row: 4, Width: 3, Speed: 60, Direction: DirectionLeft, Color: "brown"},
			{Row: 5, Width: 4, Speed: 55, Direction: DirectionRight, Color: "brown"},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultFroggerYAML
}
