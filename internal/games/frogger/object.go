package frogger

import (
	"fmt"

	"github.com/vovakirdan/tui-frogger/internal/config"
	"github.com/vovakirdan/tui-frogger/internal/core"
)

// Direction is the horizontal travel direction of a lane.
type Direction int

const (
	Left Direction = iota
	Right
)

// Sign returns -1 for Left and +1 for Right.
func (d Direction) Sign() float64 {
	if d == Left {
		return -1
	}
	return 1
}

// String returns the config name of the direction.
func (d Direction) String() string {
	if d == Left {
		return config.DirectionLeft
	}
	return config.DirectionRight
}

// ParseDirection converts a lane spec direction name.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case config.DirectionLeft:
		return Left, nil
	case config.DirectionRight:
		return Right, nil
	}
	return Left, fmt.Errorf("frogger: unknown direction %q", s)
}

// Grid holds the world geometry shared by every entity.
type Grid struct {
	Cols     int
	Rows     int
	CellSize float64
}

// NewGrid builds the grid from the static config.
func NewGrid(cfg config.GridConfig) Grid {
	return Grid{Cols: cfg.Cols, Rows: cfg.Rows, CellSize: float64(cfg.CellSize)}
}

// Width returns the world width in logical units.
func (g Grid) Width() float64 {
	return float64(g.Cols) * g.CellSize
}

// Height returns the world height in logical units.
func (g Grid) Height() float64 {
	return float64(g.Rows) * g.CellSize
}

// RowY returns the top edge of a row.
func (g Grid) RowY(row int) float64 {
	return float64(row) * g.CellSize
}

// MovingObject is a car on the road or a log on the river.
// Row never changes after creation; X wraps so the object cycles forever.
type MovingObject struct {
	X     float64 // Left edge in logical units
	Row   int
	Width int     // In cells
	Speed float64 // Units per second, never negative
	Dir   Direction
	Color core.Color
}

// Velocity returns the signed horizontal speed.
func (o MovingObject) Velocity() float64 {
	return o.Speed * o.Dir.Sign()
}

// WidthUnits returns the object width in logical units.
func (o MovingObject) WidthUnits(g Grid) float64 {
	return float64(o.Width) * g.CellSize
}

// Advance moves the object by dt seconds and wraps it around the screen.
// A right-mover that passes the right edge re-enters fully hidden on the
// left; a left-mover that fully leaves on the left re-enters at the right edge.
func (o *MovingObject) Advance(dt float64, g Grid) {
	o.X += o.Velocity() * dt

	w := o.WidthUnits(g)
	switch o.Dir {
	case Right:
		if o.X > g.Width() {
			o.X = -w
		}
	case Left:
		if o.X+w < 0 {
			o.X = g.Width()
		}
	}
}

// Rect returns the object's bounding box.
func (o MovingObject) Rect(g Grid) core.Rect {
	return core.NewRect(o.X, g.RowY(o.Row), o.WidthUnits(g), g.CellSize)
}
