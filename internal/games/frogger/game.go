package frogger

import (
	"math/rand"

	"github.com/vovakirdan/tui-frogger/internal/config"
	"github.com/vovakirdan/tui-frogger/internal/core"
	"github.com/vovakirdan/tui-frogger/internal/registry"
)

// ID is the registry identifier of the game.
const ID = "frogger"

// Game adapts a Simulation to the registry.Game interface: it maps input
// actions to hops, owns the pause flag and restarts a finished game.
type Game struct {
	sim     *Simulation
	cfg     config.FroggerConfig
	runtime core.RuntimeConfig

	paused   bool
	tooSmall bool
}

// New creates a new Frogger game instance. Reset must be called before Step.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Frogger"
}

// Reset builds a fresh world from the embedded lane tables. Lane placement
// is driven by runtime.Seed, so equal seeds give equal games.
func (g *Game) Reset(runtime core.RuntimeConfig) error {
	cfg, err := config.Load()
	if err != nil {
		cfg = config.DefaultFroggerConfig()
	}

	sim, err := NewSimulation(cfg, rand.New(rand.NewSource(runtime.Seed)))
	if err != nil {
		return err
	}

	g.sim = sim
	g.cfg = cfg
	g.runtime = runtime
	g.paused = false
	g.Resize(runtime.ScreenW, runtime.ScreenH)
	return nil
}

// Resize records the host screen size. The simulation is frozen while the
// screen cannot fit the playfield.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
	g.tooSmall = w < g.minWidth() || h < g.minHeight()
}

// Step applies the actions pressed since the last step, in order, and then
// advances the world by dt seconds.
func (g *Game) Step(in core.InputFrame, dt float64) core.StepResult {
	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionRestart) && g.sim.IsOver() {
		g.sim.Reset()
		g.paused = false
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.sim.IsOver() {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	for _, a := range in.Actions() {
		switch a {
		case core.ActionUp:
			g.sim.MoveUp()
		case core.ActionDown:
			g.sim.MoveDown()
		case core.ActionLeft:
			g.sim.MoveLeft()
		case core.ActionRight:
			g.sim.MoveRight()
		}
	}

	g.sim.Tick(dt)

	return core.StepResult{
		State:  g.State(),
		Events: g.sim.DrainEvents(),
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.sim == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.sim.Score(),
		Lives:    g.sim.Lives(),
		GameOver: g.sim.IsOver(),
		Won:      g.sim.IsWon(),
		Paused:   g.paused,
	}
}

// Simulation exposes the underlying world for read-only inspection.
func (g *Game) Simulation() *Simulation {
	return g.sim
}

func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
}
