package frogger

import "github.com/vovakirdan/tui-frogger/internal/core"

// Frog is the player actor. It lives on the grid; while carried by a log it
// also accumulates a sub-cell riding offset instead of changing column.
type Frog struct {
	Col          int
	Row          int
	RidingOffset float64
	Riding       bool

	grid     Grid
	startCol int
	startRow int
}

// NewFrog creates a frog standing on its start cell.
func NewFrog(g Grid, startCol, startRow int) Frog {
	f := Frog{grid: g, startCol: startCol, startRow: startRow}
	f.Reset()
	return f
}

// Reset puts the frog back on the start cell and clears riding state.
func (f *Frog) Reset() {
	f.Col = f.startCol
	f.Row = f.startRow
	f.RidingOffset = 0
	f.Riding = false
}

// PixelX returns the frog's left edge in logical units.
func (f Frog) PixelX() float64 {
	return float64(f.Col)*f.grid.CellSize + f.RidingOffset
}

// PixelY returns the frog's top edge in logical units.
func (f Frog) PixelY() float64 {
	return f.grid.RowY(f.Row)
}

// CenterX returns the horizontal center of the frog.
func (f Frog) CenterX() float64 {
	return f.Rect().CenterX()
}

// Rect returns the frog's one-cell bounding box.
func (f Frog) Rect() core.Rect {
	return core.NewRect(f.PixelX(), f.PixelY(), f.grid.CellSize, f.grid.CellSize)
}

// MoveUp hops one row towards the goal row.
func (f *Frog) MoveUp() {
	if f.Row > 0 {
		f.Row--
		f.RidingOffset = 0
	}
}

// MoveDown hops one row towards the start row.
func (f *Frog) MoveDown() {
	if f.Row < f.grid.Rows-1 {
		f.Row++
		f.RidingOffset = 0
	}
}

// MoveLeft hops one cell left unless that would leave the screen.
// While riding, the hop shifts the riding offset so the frog stays in
// the log's frame of reference.
func (f *Frog) MoveLeft() {
	if f.PixelX()-f.grid.CellSize < 0 {
		return
	}
	if f.Riding {
		f.RidingOffset -= f.grid.CellSize
	} else {
		f.Col--
	}
}

// MoveRight hops one cell right unless the new position would reach
// the last cell-width of the screen.
func (f *Frog) MoveRight() {
	if f.PixelX()+f.grid.CellSize >= f.grid.Width()-f.grid.CellSize {
		return
	}
	if f.Riding {
		f.RidingOffset += f.grid.CellSize
	} else {
		f.Col++
	}
}
