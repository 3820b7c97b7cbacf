package config

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-frogger/internal/core"
)

// ValidationError describes a config field that failed validation.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("config: %s: %s", e.Field, e.Message)
}

// Load decodes and validates the embedded game tables.
// Falls back to the hardcoded defaults if the embedded YAML is unusable.
func Load() (FroggerConfig, error) {
	cfg, err := Parse(defaultFroggerYAML)
	if err != nil {
		return DefaultFroggerConfig(), err
	}
	return cfg, nil
}

// Parse decodes YAML game tables and validates them.
func Parse(data []byte) (FroggerConfig, error) {
	var cfg FroggerConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: failed to parse tables: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks that the tables describe a playable field.
func (c FroggerConfig) Validate() error {
	if c.Grid.Cols <= 0 || c.Grid.Rows <= 0 || c.Grid.CellSize <= 0 {
		return ValidationError{"grid", "cols, rows and cell_size must be positive"}
	}

	z := c.Zones
	if z.GoalRow < 0 || z.GoalRow >= c.Grid.Rows {
		return ValidationError{"zones.goal_row", "outside the grid"}
	}
	if z.RiverStart > z.RiverEnd || z.RoadStart > z.RoadEnd {
		return ValidationError{"zones", "range start after end"}
	}
	if z.RiverStart < 0 || z.RoadEnd >= c.Grid.Rows || z.RiverEnd >= z.RoadStart {
		return ValidationError{"zones", "river must lie above road inside the grid"}
	}
	if z.GoalRow >= z.RiverStart && z.GoalRow <= z.RoadEnd {
		return ValidationError{"zones.goal_row", "overlaps river or road"}
	}
	if c.StartRow() <= z.RoadEnd {
		return ValidationError{"zones.road_end", "start row must be below the road"}
	}

	r := c.Rules
	if r.Lives <= 0 {
		return ValidationError{"rules.lives", "must be positive"}
	}
	if r.GoalCount <= 0 || r.GoalCount+1 > c.Grid.Cols {
		return ValidationError{"rules.goal_count", fmt.Sprintf("must be in [1, %d]", c.Grid.Cols-1)}
	}
	if r.GoalPoints < 0 {
		return ValidationError{"rules.goal_points", "must not be negative"}
	}
	if r.GoalRadius <= 0 {
		return ValidationError{"rules.goal_radius", "must be positive"}
	}

	s := c.Spawn
	if s.MinPerLane <= 0 || s.MaxPerLane < s.MinPerLane {
		return ValidationError{"spawn", "need 0 < min_per_lane <= max_per_lane"}
	}
	if s.RoadJitter < 0 || s.RiverJitter < 0 {
		return ValidationError{"spawn", "jitter must not be negative"}
	}

	seen := make(map[int]bool)
	if err := c.validateLanes("road", c.Road, z.RoadStart, z.RoadEnd, seen); err != nil {
		return err
	}
	return c.validateLanes("river", c.River, z.RiverStart, z.RiverEnd, seen)
}

func (c FroggerConfig) validateLanes(name string, lanes []LaneSpec, first, last int, seen map[int]bool) error {
	for i, l := range lanes {
		field := fmt.Sprintf("%s[%d]", name, i)
		if l.Row < first || l.Row > last {
			return ValidationError{field, fmt.Sprintf("row %d outside [%d, %d]", l.Row, first, last)}
		}
		if seen[l.Row] {
			return ValidationError{field, fmt.Sprintf("row %d defined twice", l.Row)}
		}
		seen[l.Row] = true
		if l.Width <= 0 || l.Width > c.Grid.Cols {
			return ValidationError{field, "width must be in [1, cols]"}
		}
		if l.Speed < 0 {
			return ValidationError{field, "speed must not be negative"}
		}
		if l.Direction != DirectionLeft && l.Direction != DirectionRight {
			return ValidationError{field, fmt.Sprintf("unknown direction %q", l.Direction)}
		}
		if _, ok := core.ParseColor(l.Color); !ok {
			return ValidationError{field, fmt.Sprintf("unknown color %q", l.Color)}
		}
	}
	return nil
}
