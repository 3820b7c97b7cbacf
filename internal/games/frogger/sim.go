package frogger

import (
	"github.com/vovakirdan/tui-frogger/internal/config"
	"github.com/vovakirdan/tui-frogger/internal/core"
)

// Phase is the top-level state of a game.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseLost
	PhaseWon
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseLost:
		return "lost"
	case PhaseWon:
		return "won"
	default:
		return "unknown"
	}
}

// Death causes reported with core.EventLifeLost.
const (
	CauseHitByCar   = "hit_by_car"
	CauseDrowned    = "drowned"
	CauseSweptAway  = "swept_away"
	CauseMissedGoal = "missed_goal"
)

// Simulation owns the frog, the lane field and the goal track and advances
// them one tick at a time. It is single-threaded and never blocks.
type Simulation struct {
	cfg   config.FroggerConfig
	grid  Grid
	zones Zones
	rng   Rand
	road  []Lane
	river []Lane

	frog  Frog
	field *LaneField
	goals *GoalTrack

	lives int
	score int
	phase Phase
	ticks uint64

	events []core.Event
}

// NewSimulation creates a game in the Playing phase with freshly spawned lanes.
// The cfg must already be validated.
func NewSimulation(cfg config.FroggerConfig, rng Rand) (*Simulation, error) {
	road, err := CompileLanes(cfg.Road)
	if err != nil {
		return nil, err
	}
	river, err := CompileLanes(cfg.River)
	if err != nil {
		return nil, err
	}

	s := &Simulation{
		cfg:   cfg,
		grid:  NewGrid(cfg.Grid),
		zones: Zones(cfg.Zones),
		rng:   rng,
		road:  road,
		river: river,
	}
	s.frog = NewFrog(s.grid, cfg.StartCol(), cfg.StartRow())
	s.Reset()
	return s, nil
}

// Reset starts a new game: full lives, zero score, fresh lane placements
// and empty goal slots.
func (s *Simulation) Reset() {
	s.field = NewLaneField(s.road, s.river, s.cfg.Spawn, s.grid, s.rng)
	s.goals = NewGoalTrack(s.cfg.Rules.GoalCount, s.grid, s.cfg.Rules.GoalRadius)
	s.frog.Reset()
	s.lives = s.cfg.Rules.Lives
	s.score = 0
	s.phase = PhasePlaying
	s.ticks = 0
	s.events = s.events[:0]
}

// MoveUp forwards a hop to the frog. Moves are ignored once the game is over.
func (s *Simulation) MoveUp() {
	if s.phase == PhasePlaying {
		s.frog.MoveUp()
	}
}

// MoveDown forwards a hop to the frog.
func (s *Simulation) MoveDown() {
	if s.phase == PhasePlaying {
		s.frog.MoveDown()
	}
}

// MoveLeft forwards a hop to the frog.
func (s *Simulation) MoveLeft() {
	if s.phase == PhasePlaying {
		s.frog.MoveLeft()
	}
}

// MoveRight forwards a hop to the frog.
func (s *Simulation) MoveRight() {
	if s.phase == PhasePlaying {
		s.frog.MoveRight()
	}
}

// Tick advances the world by dt seconds and resolves at most one outcome
// (death or goal) for the frog. Collisions use post-move object positions.
func (s *Simulation) Tick(dt float64) {
	if s.phase != PhasePlaying {
		return
	}
	s.ticks++

	s.field.Tick(dt)

	row := s.frog.Row
	box := s.frog.Rect()

	if s.zones.IsRoad(row) {
		if _, hit := s.field.HazardAt(row, box); hit {
			s.killFrog(CauseHitByCar)
			return
		}
	}

	if s.zones.IsRiver(row) {
		ride, onLog := s.field.PlatformAt(row, box)
		if !onLog {
			s.killFrog(CauseDrowned)
			return
		}
		s.frog.Riding = true
		s.frog.RidingOffset += ride.Velocity() * dt

		x := s.frog.PixelX()
		if x < 0 || x > s.grid.Width()-s.grid.CellSize {
			s.killFrog(CauseSweptAway)
			return
		}
	} else {
		s.frog.Riding = false
		s.frog.RidingOffset = 0
	}

	if row == s.zones.GoalRow {
		s.claimGoal()
	}
}

// claimGoal resolves a frog standing on the goal row.
func (s *Simulation) claimGoal() {
	slot, outcome := s.goals.TryClaim(s.frog.CenterX())
	if outcome == ClaimMissed {
		s.killFrog(CauseMissedGoal)
		return
	}

	s.score += s.cfg.Rules.GoalPoints
	s.frog.Reset()
	s.emit(core.Event{Kind: core.EventGoalClaimed, Slot: slot})

	if outcome == ClaimCompleted {
		s.phase = PhaseWon
		s.emit(core.Event{Kind: core.EventGameWon})
	}
}

// killFrog takes a life and either respawns the frog or ends the game.
// The lanes keep moving; only the frog is reset.
func (s *Simulation) killFrog(cause string) {
	s.lives--
	s.emit(core.Event{Kind: core.EventLifeLost, Cause: cause})
	if s.lives <= 0 {
		s.lives = 0
		s.phase = PhaseLost
		s.emit(core.Event{Kind: core.EventGameLost})
		return
	}
	s.frog.Reset()
}

func (s *Simulation) emit(e core.Event) {
	s.events = append(s.events, e)
}

// DrainEvents returns the events emitted since the last call and clears them.
func (s *Simulation) DrainEvents() []core.Event {
	if len(s.events) == 0 {
		return nil
	}
	out := make([]core.Event, len(s.events))
	copy(out, s.events)
	s.events = s.events[:0]
	return out
}

// Frog returns a copy of the frog.
func (s *Simulation) Frog() Frog { return s.frog }

// Hazards returns the cars. The slice must not be modified.
func (s *Simulation) Hazards() []MovingObject { return s.field.Hazards }

// Platforms returns the logs. The slice must not be modified.
func (s *Simulation) Platforms() []MovingObject { return s.field.Platforms }

// Goals returns a copy of the goal slots.
func (s *Simulation) Goals() []GoalSlot { return s.goals.Slots() }

// Lives returns the remaining lives.
func (s *Simulation) Lives() int { return s.lives }

// Score returns the current score.
func (s *Simulation) Score() int { return s.score }

// Phase returns the current phase.
func (s *Simulation) Phase() Phase { return s.phase }

// IsOver reports whether the game has ended, won or lost.
func (s *Simulation) IsOver() bool { return s.phase != PhasePlaying }

// IsWon reports whether every goal slot was claimed.
func (s *Simulation) IsWon() bool { return s.phase == PhaseWon }

// Ticks returns the number of ticks simulated since the last reset.
func (s *Simulation) Ticks() uint64 { return s.ticks }

// Grid returns the world geometry.
func (s *Simulation) Grid() Grid { return s.grid }

// Zones returns the lane zones.
func (s *Simulation) Zones() Zones { return s.zones }
