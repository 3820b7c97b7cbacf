package frogger

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/tui-frogger/internal/core"
)

// Each grid cell is drawn two characters wide so the field keeps a roughly
// square aspect ratio in a terminal.
const charsPerCell = 2

// Visual glyphs
const (
	GlyphWater     = '~'
	GlyphGrass     = '·'
	GlyphHedge     = '▓'
	GlyphMarking   = '-'
	GlyphCar       = '█'
	GlyphLog       = '='
	GlyphHeart     = '♥'
	FrogSprite     = "@@"
	LilyPadSprite  = "()"
	HomeFrogSprite = "@@"
)

// fieldW returns the playfield width in characters.
func (g *Game) fieldW() int {
	return g.cfg.Grid.Cols * charsPerCell
}

// fieldH returns the playfield height in characters.
func (g *Game) fieldH() int {
	return g.cfg.Grid.Rows
}

// minWidth is the playfield plus its border.
func (g *Game) minWidth() int {
	return g.fieldW() + 2
}

// minHeight is the HUD line plus the bordered playfield.
func (g *Game) minHeight() int {
	return g.fieldH() + 3
}

// Render draws the HUD, the playfield and any overlay.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.sim == nil {
		return
	}

	if g.tooSmall || dst.Width() < g.minWidth() || dst.Height() < g.minHeight() {
		dst.DrawTextCentered(dst.Height()/2, "Window too small", core.ColorYellow)
		dst.DrawTextCentered(dst.Height()/2+1,
			fmt.Sprintf("Need %dx%d", g.minWidth(), g.minHeight()), core.ColorGray)
		return
	}

	boxX := (dst.Width() - g.minWidth()) / 2
	boxY := 1
	ox, oy := boxX+1, boxY+1

	g.renderHUD(dst, boxX)
	dst.DrawBox(boxX, boxY, g.minWidth(), g.fieldH()+2, core.ColorGray)

	g.renderLanes(dst, ox, oy)
	g.renderGoals(dst, ox, oy)
	g.renderObjects(dst, ox, oy, g.sim.Platforms(), GlyphLog)
	g.renderObjects(dst, ox, oy, g.sim.Hazards(), GlyphCar)
	g.renderFrog(dst, ox, oy)

	switch {
	case g.sim.IsWon():
		g.renderOverlay(dst, "YOU WIN!", core.ColorBrightGreen,
			fmt.Sprintf("Final Score: %d", g.sim.Score()), "Press R to restart")
	case g.sim.IsOver():
		g.renderOverlay(dst, "GAME OVER", core.ColorBrightRed,
			fmt.Sprintf("Final Score: %d", g.sim.Score()), "Press R to restart")
	case g.paused:
		g.renderOverlay(dst, "PAUSED", core.ColorBrightYellow, "Press P to continue")
	}
}

// renderHUD draws the status line above the playfield.
func (g *Game) renderHUD(dst *core.Screen, x int) {
	left := fmt.Sprintf("Score: %d", g.sim.Score())
	dst.DrawTextColored(x, 0, left, core.ColorBrightWhite)

	goals := fmt.Sprintf("Goals: %d/%d", g.sim.goals.Occupied(), g.cfg.Rules.GoalCount)
	dst.DrawTextColored(x+(g.minWidth()-len(goals))/2, 0, goals, core.ColorGreen)

	lives := "Lives: " + strings.Repeat(string(GlyphHeart), g.sim.Lives())
	dst.DrawTextColored(x+g.minWidth()-len([]rune(lives)), 0, lives, core.ColorRed)
}

// renderLanes paints the background of every row.
func (g *Game) renderLanes(dst *core.Screen, ox, oy int) {
	zones := g.sim.Zones()
	w := g.fieldW()
	for row, n := 0, g.fieldH(); row < n; row++ {
		y := oy + row
		switch zones.KindOf(row) {
		case LaneGoal:
			dst.FillRect(ox, y, w, 1, GlyphHedge, core.ColorDarkGreen)
		case LaneRiver:
			dst.FillRect(ox, y, w, 1, GlyphWater, core.ColorBlue)
		case LaneRoad:
			if row == zones.RoadStart {
				continue
			}
			// Dashed marking on the boundary between two road lanes
			for x := 0; x < w; x++ {
				if x%4 < 2 {
					dst.SetColored(ox+x, y, GlyphMarking, core.ColorGray)
				}
			}
		default:
			dst.FillRect(ox, y, w, 1, GlyphGrass, core.ColorGreen)
		}
	}
}

// renderGoals draws a lily pad for each free slot and a frog for each
// occupied one.
func (g *Game) renderGoals(dst *core.Screen, ox, oy int) {
	y := oy + g.sim.Zones().GoalRow
	for _, slot := range g.sim.Goals() {
		x := ox + slot.Col*charsPerCell
		if slot.Occupied {
			dst.DrawTextColored(x, y, HomeFrogSprite, core.ColorGreen)
		} else {
			dst.DrawTextColored(x, y, LilyPadSprite, core.ColorBrightGreen)
		}
	}
}

// renderObjects draws cars or logs clipped to the playfield.
func (g *Game) renderObjects(dst *core.Screen, ox, oy int, objects []MovingObject, glyph rune) {
	grid := g.sim.Grid()
	for _, o := range objects {
		from, to := g.charSpan(o.X, o.WidthUnits(grid))
		for x := from; x < to; x++ {
			dst.SetColored(ox+x, oy+o.Row, glyph, o.Color)
		}
	}
}

// renderFrog draws the frog over everything else.
func (g *Game) renderFrog(dst *core.Screen, ox, oy int) {
	if g.sim.IsOver() {
		return
	}
	frog := g.sim.Frog()
	from, to := g.charSpan(frog.PixelX(), g.sim.Grid().CellSize)
	sprite := []rune(FrogSprite)
	for x := from; x < to && x-from < len(sprite); x++ {
		dst.SetColored(ox+x, oy+frog.Row, sprite[x-from], core.ColorBrightGreen)
	}
}

// charSpan converts a horizontal extent in logical units to a half-open
// character range clipped to the playfield.
func (g *Game) charSpan(x, w float64) (int, int) {
	scale := charsPerCell / g.sim.Grid().CellSize
	from := int(math.Floor(x * scale))
	to := int(math.Ceil((x + w) * scale))
	return max(from, 0), min(to, g.fieldW())
}

// renderOverlay draws a centered box with a title and message lines.
func (g *Game) renderOverlay(dst *core.Screen, title string, c core.Color, lines ...string) {
	width := len([]rune(title))
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	boxW := width + 6
	boxH := len(lines) + 4
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.FillRect(boxX, boxY, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH, c)
	dst.DrawTextCentered(boxY+1, title, c)
	for i, l := range lines {
		dst.DrawTextCentered(boxY+3+i, l, core.ColorWhite)
	}
}
