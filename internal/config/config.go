// Package config provides the static game tables for frogger: grid
// geometry, lane zones, rules and the per-lane hazard and platform specs.
// Tables are embedded YAML decoded at startup.
package config

// FroggerConfig contains all static configuration for the game.
type FroggerConfig struct {
	Grid  GridConfig  `yaml:"grid"`
	Zones ZoneConfig  `yaml:"zones"`
	Rules RulesConfig `yaml:"rules"`
	Spawn SpawnConfig `yaml:"spawn"`
	Road  []LaneSpec  `yaml:"road"`
	River []LaneSpec  `yaml:"river"`
}

// GridConfig defines the world grid. The screen is exactly cols*cell_size
// by rows*cell_size logical units.
type GridConfig struct {
	Cols     int `yaml:"cols"`
	Rows     int `yaml:"rows"`
	CellSize int `yaml:"cell_size"`
}

// ZoneConfig defines which rows belong to which lane kind.
// Rows not covered by the goal row, river or road are safe.
type ZoneConfig struct {
	GoalRow    int `yaml:"goal_row"`
	RiverStart int `yaml:"river_start"`
	RiverEnd   int `yaml:"river_end"`
	RoadStart  int `yaml:"road_start"`
	RoadEnd    int `yaml:"road_end"`
}

// RulesConfig defines scoring and life rules.
type RulesConfig struct {
	Lives      int     `yaml:"lives"`
	GoalCount  int     `yaml:"goal_count"`
	GoalPoints int     `yaml:"goal_points"`
	GoalRadius float64 `yaml:"goal_radius"` // Claim distance as a fraction of cell size
}

// SpawnConfig defines how many objects are placed per lane and how much
// their initial placement is jittered.
type SpawnConfig struct {
	MinPerLane  int     `yaml:"min_per_lane"`
	MaxPerLane  int     `yaml:"max_per_lane"`
	RoadJitter  float64 `yaml:"road_jitter"`
	RiverJitter float64 `yaml:"river_jitter"`
}

// LaneSpec describes the objects of one lane.
type LaneSpec struct {
	Row       int     `yaml:"row"`
	Width     int     `yaml:"width"` // In cells
	Speed     float64 `yaml:"speed"` // Units per second
	Direction string  `yaml:"direction"`
	Color     string  `yaml:"color"`
}

// Direction names accepted in lane specs.
const (
	DirectionLeft  = "left"
	DirectionRight = "right"
)

// ScreenWidth returns the world width in logical units.
func (c FroggerConfig) ScreenWidth() float64 {
	return float64(c.Grid.Cols * c.Grid.CellSize)
}

// ScreenHeight returns the world height in logical units.
func (c FroggerConfig) ScreenHeight() float64 {
	return float64(c.Grid.Rows * c.Grid.CellSize)
}

// StartCol returns the column the frog starts each life in.
func (c FroggerConfig) StartCol() int {
	return c.Grid.Cols / 2
}

// StartRow returns the row the frog starts each life in.
func (c FroggerConfig) StartRow() int {
	return c.Grid.Rows - 1
}
