package config

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestEmbeddedYAMLMatchesDefaults(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}

	if !reflect.DeepEqual(cfg, DefaultFroggerConfig()) {
		t.Errorf("embedded YAML differs from DefaultFroggerConfig():\n got  %+v\n want %+v", cfg, DefaultFroggerConfig())
	}
}

func TestLoad(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.ScreenWidth() != 640 || cfg.ScreenHeight() != 480 {
		t.Errorf("screen = %vx%v, expected 640x480", cfg.ScreenWidth(), cfg.ScreenHeight())
	}
	if cfg.StartCol() != 10 || cfg.StartRow() != 14 {
		t.Errorf("start = (%d, %d), expected (10, 14)", cfg.StartCol(), cfg.StartRow())
	}
	if len(cfg.Road) != 6 {
		t.Errorf("expected 6 road lanes, got %d", len(cfg.Road))
	}
	if len(cfg.River) != 5 {
		t.Errorf("expected 5 river lanes, got %d", len(cfg.River))
	}
}

func TestDefaultsValidate(t *testing.T) {
	if err := DefaultFroggerConfig().Validate(); err != nil {
		t.Errorf("defaults should validate, got %v", err)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *FroggerConfig)
		field  string
	}{
		{"zero cell size", func(c *FroggerConfig) { c.Grid.CellSize = 0 }, "grid"},
		{"river below road", func(c *FroggerConfig) { c.Zones.RiverEnd = 8 }, "zones"},
		{"no lives", func(c *FroggerConfig) { c.Rules.Lives = 0 }, "rules.lives"},
		{"too many goals", func(c *FroggerConfig) { c.Rules.GoalCount = 20 }, "rules.goal_count"},
		{"min above max", func(c *FroggerConfig) { c.Spawn.MinPerLane = 4 }, "spawn"},
		{"road lane in river", func(c *FroggerConfig) { c.Road[0].Row = 3 }, "road[0]"},
		{"duplicate river row", func(c *FroggerConfig) { c.River[1].Row = 1 }, "river[1]"},
		{"bad direction", func(c *FroggerConfig) { c.Road[2].Direction = "up" }, "road[2]"},
		{"bad color", func(c *FroggerConfig) { c.River[0].Color = "plaid" }, "river[0]"},
		{"negative speed", func(c *FroggerConfig) { c.Road[1].Speed = -1 }, "road[1]"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultFroggerConfig()
			tc.mutate(&cfg)

			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}

			var verr ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %T", err)
			}
			if verr.Field != tc.field {
				t.Errorf("Field = %q, expected %q", verr.Field, tc.field)
			}
		})
	}
}

func TestParseInvalidYAML(t *testing.T) {
	_, err := Parse([]byte("grid: [unclosed"))
	if err == nil {
		t.Fatal("expected parse error")
	}
	if !strings.HasPrefix(err.Error(), "config:") {
		t.Errorf("error should carry package prefix, got %q", err)
	}
}
