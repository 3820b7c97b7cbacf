package frogger

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-frogger/internal/config"
	"github.com/vovakirdan/tui-frogger/internal/core"
)

const frame = 1.0 / 60.0

func newTestSim(t *testing.T) *Simulation {
	t.Helper()
	s, err := NewSimulation(config.DefaultFroggerConfig(), fixedRand{n: 0, f: 0.5})
	if err != nil {
		t.Fatalf("NewSimulation: %v", err)
	}
	return s
}

// emptyLanes removes every object so tests can place their own.
func emptyLanes(s *Simulation) {
	s.field.Hazards = nil
	s.field.Platforms = nil
}

func placeFrog(s *Simulation, col, row int) {
	s.frog.Col = col
	s.frog.Row = row
	s.frog.Riding = false
	s.frog.RidingOffset = 0
}

func TestNewSimulationInitialState(t *testing.T) {
	s := newTestSim(t)

	if s.Lives() != 3 || s.Score() != 0 || s.IsOver() || s.IsWon() {
		t.Errorf("Unexpected initial state: lives=%d score=%d over=%v won=%v",
			s.Lives(), s.Score(), s.IsOver(), s.IsWon())
	}
	if f := s.Frog(); f.Col != 10 || f.Row != 14 {
		t.Errorf("Frog should start at (10,14), got (%d,%d)", f.Col, f.Row)
	}
	if len(s.Goals()) != 5 {
		t.Errorf("Expected 5 goal slots, got %d", len(s.Goals()))
	}
}

func TestThreeHopsWithoutHazards(t *testing.T) {
	s := newTestSim(t)
	emptyLanes(s)

	for i := 0; i < 3; i++ {
		s.MoveUp()
		s.Tick(frame)
	}

	if s.Frog().Row != 11 {
		t.Errorf("Expected row 11, got %d", s.Frog().Row)
	}
	if s.Lives() != 3 {
		t.Errorf("Expected no life lost, lives=%d", s.Lives())
	}
}

func TestCarCollisionCostsLife(t *testing.T) {
	s := newTestSim(t)
	emptyLanes(s)
	s.field.Hazards = []MovingObject{
		{X: 5 * 32, Row: 9, Width: 2, Speed: 0, Dir: Left, Color: core.ColorBlue},
	}
	placeFrog(s, 5, 9)

	s.Tick(frame)

	if s.Lives() != 2 {
		t.Errorf("Expected lives=2, got %d", s.Lives())
	}
	if f := s.Frog(); f.Col != 10 || f.Row != 14 {
		t.Errorf("Frog should respawn at (10,14), got (%d,%d)", f.Col, f.Row)
	}

	events := s.DrainEvents()
	if len(events) != 1 || events[0].Kind != core.EventLifeLost || events[0].Cause != CauseHitByCar {
		t.Errorf("Unexpected events: %+v", events)
	}
}

func TestCollisionUsesPostMovePositions(t *testing.T) {
	s := newTestSim(t)
	emptyLanes(s)
	// Car starts touching the frog's right edge and drives into it
	s.field.Hazards = []MovingObject{
		{X: 6 * 32, Row: 10, Width: 4, Speed: 100, Dir: Left},
	}
	placeFrog(s, 5, 10)

	s.Tick(0.1)

	if s.Lives() != 2 {
		t.Errorf("Car moving into the frog this tick should hit it, lives=%d", s.Lives())
	}
}

func TestDrowningCostsLife(t *testing.T) {
	s := newTestSim(t)
	emptyLanes(s)
	placeFrog(s, 8, 3)

	s.Tick(frame)

	if s.Lives() != 2 {
		t.Errorf("Expected lives=2, got %d", s.Lives())
	}
	if s.Frog().Row != 14 {
		t.Errorf("Frog should respawn on row 14, got %d", s.Frog().Row)
	}
	events := s.DrainEvents()
	if len(events) != 1 || events[0].Cause != CauseDrowned {
		t.Errorf("Unexpected events: %+v", events)
	}
}

func TestRidingCarriesFrog(t *testing.T) {
	s := newTestSim(t)
	emptyLanes(s)
	s.field.Platforms = []MovingObject{
		{X: 0, Row: 3, Width: 5, Speed: 40, Dir: Right, Color: core.ColorBrown},
	}
	placeFrog(s, 1, 3)

	s.Tick(0.5)

	f := s.Frog()
	if !f.Riding {
		t.Fatal("Frog on a log should be riding")
	}
	if f.RidingOffset != 20 {
		t.Errorf("RidingOffset = %v, expected 20", f.RidingOffset)
	}
	if f.Col != 1 {
		t.Errorf("Riding should not change the column, got %d", f.Col)
	}
	if f.PixelX() != 52 {
		t.Errorf("PixelX = %v, expected 52", f.PixelX())
	}

	s.MoveUp()
	if s.Frog().RidingOffset != 0 {
		t.Errorf("Row change should clear riding offset, got %v", s.Frog().RidingOffset)
	}
}

func TestSweptOffScreenCostsLife(t *testing.T) {
	s := newTestSim(t)
	emptyLanes(s)
	s.field.Platforms = []MovingObject{
		{X: -10, Row: 2, Width: 3, Speed: 70, Dir: Left, Color: core.ColorBrown},
	}
	placeFrog(s, 0, 2)

	s.Tick(0.5)

	if s.Lives() != 2 {
		t.Errorf("Expected lives=2, got %d", s.Lives())
	}
	events := s.DrainEvents()
	if len(events) != 1 || events[0].Cause != CauseSweptAway {
		t.Errorf("Unexpected events: %+v", events)
	}
}

func TestLeavingRiverClearsRiding(t *testing.T) {
	s := newTestSim(t)
	emptyLanes(s)
	s.field.Platforms = []MovingObject{
		{X: 0, Row: 5, Width: 4, Speed: 55, Dir: Right},
	}
	placeFrog(s, 1, 5)
	s.Tick(0.1)
	if !s.Frog().Riding {
		t.Fatal("Expected frog to ride")
	}

	s.MoveDown()
	s.Tick(frame)

	f := s.Frog()
	if f.Riding || f.RidingOffset != 0 {
		t.Errorf("Frog on safe row should not ride: riding=%v offset=%v", f.Riding, f.RidingOffset)
	}
}

func TestGoalClaimScores(t *testing.T) {
	s := newTestSim(t)
	emptyLanes(s)
	placeFrog(s, 3, 0)

	s.Tick(frame)

	if s.Score() != 100 {
		t.Errorf("Expected score 100, got %d", s.Score())
	}
	if !s.Goals()[0].Occupied {
		t.Error("Slot 0 should be occupied")
	}
	if s.Frog().Row != 14 {
		t.Errorf("Frog should return to start after scoring, row=%d", s.Frog().Row)
	}
	if s.Lives() != 3 {
		t.Errorf("Scoring must not cost a life, lives=%d", s.Lives())
	}

	events := s.DrainEvents()
	if len(events) != 1 || events[0].Kind != core.EventGoalClaimed || events[0].Slot != 0 {
		t.Errorf("Unexpected events: %+v", events)
	}
}

func TestMissedGoalCostsLife(t *testing.T) {
	s := newTestSim(t)
	emptyLanes(s)
	placeFrog(s, 4, 0)

	s.Tick(frame)

	if s.Lives() != 2 || s.Score() != 0 {
		t.Errorf("Expected lives=2 score=0, got lives=%d score=%d", s.Lives(), s.Score())
	}
	events := s.DrainEvents()
	if len(events) != 1 || events[0].Cause != CauseMissedGoal {
		t.Errorf("Unexpected events: %+v", events)
	}
}

func TestClaimingLastSlotWins(t *testing.T) {
	s := newTestSim(t)
	emptyLanes(s)

	for _, col := range []int{3, 6, 9, 12} {
		placeFrog(s, col, 0)
		s.Tick(frame)
	}
	if s.IsOver() {
		t.Fatal("Game should not be over with one slot left")
	}
	before := s.Score()
	s.DrainEvents()

	placeFrog(s, 15, 0)
	s.Tick(frame)

	if !s.IsWon() || !s.IsOver() {
		t.Errorf("Expected won and over, got won=%v over=%v", s.IsWon(), s.IsOver())
	}
	if s.Score()-before != 100 {
		t.Errorf("Last claim should add exactly 100, added %d", s.Score()-before)
	}

	events := s.DrainEvents()
	if len(events) != 2 || events[0].Kind != core.EventGoalClaimed || events[1].Kind != core.EventGameWon {
		t.Errorf("Unexpected events: %+v", events)
	}
}

func TestThreeDeathsEndGame(t *testing.T) {
	s := newTestSim(t)
	emptyLanes(s)

	for i := 0; i < 3; i++ {
		placeFrog(s, 8, 3)
		s.Tick(frame)
	}

	if !s.IsOver() || s.IsWon() || s.Lives() != 0 {
		t.Errorf("Expected lost game, got over=%v won=%v lives=%d", s.IsOver(), s.IsWon(), s.Lives())
	}
	if s.Phase() != PhaseLost {
		t.Errorf("Phase = %v, expected lost", s.Phase())
	}
}

func TestTickIdleWhenOver(t *testing.T) {
	s := newTestSim(t)
	s.phase = PhaseLost
	ticks := s.Ticks()
	x := s.Hazards()[0].X

	s.Tick(frame)

	if s.Ticks() != ticks || s.Hazards()[0].X != x {
		t.Error("Tick should be a no-op once the game is over")
	}
}

func TestMovesIgnoredWhenOver(t *testing.T) {
	s := newTestSim(t)
	s.phase = PhaseWon

	s.MoveUp()
	s.MoveLeft()

	if f := s.Frog(); f.Col != 10 || f.Row != 14 {
		t.Errorf("Moves after game over should be ignored, frog at (%d,%d)", f.Col, f.Row)
	}
}

func TestResetTwice(t *testing.T) {
	s, err := NewSimulation(config.DefaultFroggerConfig(), rand.New(rand.NewSource(7)))
	if err != nil {
		t.Fatalf("NewSimulation: %v", err)
	}
	emptyLanes(s)
	placeFrog(s, 3, 0)
	s.Tick(frame)
	placeFrog(s, 8, 3)
	s.Tick(frame)

	for i := 0; i < 2; i++ {
		s.Reset()
		if s.Lives() != 3 || s.Score() != 0 || s.IsOver() || s.IsWon() {
			t.Errorf("Reset %d: lives=%d score=%d over=%v", i, s.Lives(), s.Score(), s.IsOver())
		}
		for j, slot := range s.Goals() {
			if slot.Occupied {
				t.Errorf("Reset %d: slot %d still occupied", i, j)
			}
		}
		if f := s.Frog(); f.Col != 10 || f.Row != 14 || f.RidingOffset != 0 {
			t.Errorf("Reset %d: frog at %+v", i, f)
		}
		if len(s.Hazards()) == 0 || len(s.Platforms()) == 0 {
			t.Errorf("Reset %d: lanes were not respawned", i)
		}
	}
}

func TestInvariantsUnderRandomPlay(t *testing.T) {
	s, err := NewSimulation(config.DefaultFroggerConfig(), rand.New(rand.NewSource(99)))
	if err != nil {
		t.Fatalf("NewSimulation: %v", err)
	}
	input := rand.New(rand.NewSource(1))
	moves := []func(){s.MoveUp, s.MoveUp, s.MoveDown, s.MoveLeft, s.MoveRight}

	occupied := make([]bool, len(s.Goals()))
	for i := 0; i < 20000; i++ {
		if input.Intn(10) == 0 {
			row := s.Frog().Row
			moves[input.Intn(len(moves))]()
			if s.Frog().Row != row && s.Frog().RidingOffset != 0 {
				t.Fatalf("tick %d: row change left offset %v", i, s.Frog().RidingOffset)
			}
		}
		s.Tick(frame)

		if s.IsWon() && !s.IsOver() {
			t.Fatalf("tick %d: won but not over", i)
		}
		if s.Lives() < 0 || s.Score() < 0 {
			t.Fatalf("tick %d: lives=%d score=%d", i, s.Lives(), s.Score())
		}
		if s.IsOver() && !s.IsWon() && s.Lives() != 0 {
			t.Fatalf("tick %d: lost with %d lives", i, s.Lives())
		}
		for j, slot := range s.Goals() {
			if occupied[j] && !slot.Occupied {
				t.Fatalf("tick %d: slot %d was freed", i, j)
			}
			occupied[j] = slot.Occupied
		}

		if s.IsOver() {
			s.Reset()
			occupied = make([]bool, len(s.Goals()))
		}
	}
}
