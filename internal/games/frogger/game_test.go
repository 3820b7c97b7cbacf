package frogger

import (
	"testing"

	"github.com/vovakirdan/tui-frogger/internal/core"
	"github.com/vovakirdan/tui-frogger/internal/registry"
)

func newTestGame(t *testing.T, seed int64) *Game {
	t.Helper()
	g := New()
	if err := g.Reset(core.RuntimeConfig{Seed: seed, ScreenW: 80, ScreenH: 24, TickRate: 60}); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	return g
}

func step(g *Game, actions ...core.Action) core.StepResult {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return g.Step(in, frame)
}

func TestDeterminism(t *testing.T) {
	// Two games with the same seed and inputs should produce identical snapshots
	g1 := newTestGame(t, 12345)
	g2 := newTestGame(t, 12345)

	input := core.NewInputFrame()
	for i := 0; i < 600; i++ {
		input.Clear()
		switch i % 45 {
		case 0:
			input.Set(core.ActionUp)
		case 20:
			input.Set(core.ActionLeft)
		case 30:
			input.Set(core.ActionRight)
		}
		g1.Step(input, frame)
		g2.Step(input, frame)
	}

	snap1 := g1.Snapshot()
	snap2 := g2.Snapshot()
	if snap1.Hash() != snap2.Hash() {
		t.Errorf("Hash mismatch: %d vs %d", snap1.Hash(), snap2.Hash())
	}
	if snap1.Tick != snap2.Tick || snap1.Lives != snap2.Lives || snap1.FrogRow != snap2.FrogRow {
		t.Errorf("Snapshot mismatch:\n%+v\n%+v", snap1, snap2)
	}
}

func TestSeedChangesPlacement(t *testing.T) {
	g1 := newTestGame(t, 1)
	g2 := newTestGame(t, 2)

	if g1.Snapshot().Hash() == g2.Snapshot().Hash() {
		t.Error("Different seeds should give different lane placements")
	}
}

func TestStepAppliesMovesInOrder(t *testing.T) {
	g := newTestGame(t, 1)
	emptyLanes(g.sim)

	step(g, core.ActionUp, core.ActionUp, core.ActionLeft)

	f := g.sim.Frog()
	if f.Row != 12 || f.Col != 9 {
		t.Errorf("Expected frog at (9,12), got (%d,%d)", f.Col, f.Row)
	}
}

func TestPauseFreezesWorld(t *testing.T) {
	g := newTestGame(t, 1)

	res := step(g, core.ActionPause)
	if !res.State.Paused {
		t.Fatal("Expected game to be paused")
	}
	ticks := g.sim.Ticks()

	for i := 0; i < 10; i++ {
		step(g, core.ActionUp)
	}
	if g.sim.Ticks() != ticks {
		t.Error("World advanced while paused")
	}
	if g.sim.Frog().Row != 14 {
		t.Error("Frog moved while paused")
	}

	res = step(g, core.ActionPause)
	if res.State.Paused {
		t.Error("Second pause should resume")
	}
	if g.sim.Ticks() != ticks+1 {
		t.Errorf("Expected one tick after resuming, got %d", g.sim.Ticks()-ticks)
	}
}

func TestRestartAfterGameOver(t *testing.T) {
	g := newTestGame(t, 1)
	emptyLanes(g.sim)

	var res core.StepResult
	for i := 0; i < 3; i++ {
		placeFrog(g.sim, 8, 3)
		res = step(g)
	}
	if !res.State.GameOver || res.State.Won {
		t.Fatalf("Expected lost game, got %+v", res.State)
	}

	events := res.Events
	if len(events) != 2 || events[1].Kind != core.EventGameLost {
		t.Errorf("Unexpected final events: %+v", events)
	}

	res = step(g, core.ActionRestart)
	if res.State.GameOver || res.State.Lives != 3 || res.State.Score != 0 {
		t.Errorf("Restart should start a fresh game, got %+v", res.State)
	}
	if len(g.sim.Hazards()) == 0 {
		t.Error("Restart should respawn the lanes")
	}
}

func TestRestartIgnoredWhilePlaying(t *testing.T) {
	g := newTestGame(t, 1)
	step(g)
	step(g, core.ActionRestart)

	if g.sim.Ticks() != 2 {
		t.Errorf("Restart while playing should be ignored, ticks=%d", g.sim.Ticks())
	}
}

func TestTooSmallScreenFreezes(t *testing.T) {
	g := newTestGame(t, 1)
	g.Resize(20, 10)

	step(g)
	if g.sim.Ticks() != 0 {
		t.Error("Game should not advance while the screen is too small")
	}

	g.Resize(80, 24)
	step(g)
	if g.sim.Ticks() != 1 {
		t.Error("Game should resume after the screen grows")
	}
}

func TestStateReflectsSimulation(t *testing.T) {
	g := newTestGame(t, 1)
	emptyLanes(g.sim)
	placeFrog(g.sim, 3, 0)

	res := step(g)
	if res.State.Score != 100 || res.State.Lives != 3 {
		t.Errorf("Unexpected state: %+v", res.State)
	}
	if len(res.Events) != 1 || res.Events[0].Kind != core.EventGoalClaimed {
		t.Errorf("Unexpected events: %+v", res.Events)
	}
}

func TestRegistered(t *testing.T) {
	g, err := registry.Create(ID)
	if err != nil {
		t.Fatalf("Create(%q): %v", ID, err)
	}
	if g.Title() != "Frogger" {
		t.Errorf("Title() = %q", g.Title())
	}
}
