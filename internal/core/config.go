package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to the host and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frames per second the host aims for (default 60)
	Seed     int64 // RNG seed for lane placement
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// FrameSeconds returns the nominal duration of one frame.
func (c RuntimeConfig) FrameSeconds() float64 {
	if c.TickRate <= 0 {
		return 1.0 / 60.0
	}
	return 1.0 / float64(c.TickRate)
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	Lives    int  // Remaining lives
	GameOver bool // Whether the game has ended
	Won      bool // Whether the game ended in a win (implies GameOver)
	Paused   bool // Whether the game is paused
}

// EventKind classifies something notable that happened during a tick.
type EventKind int

const (
	EventLifeLost EventKind = iota
	EventGoalClaimed
	EventGameWon
	EventGameLost
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventLifeLost:
		return "life_lost"
	case EventGoalClaimed:
		return "goal_claimed"
	case EventGameWon:
		return "game_won"
	case EventGameLost:
		return "game_lost"
	default:
		return "unknown"
	}
}

// Event is a gameplay occurrence reported back to the host.
// Cause is set for EventLifeLost, Slot for EventGoalClaimed.
type Event struct {
	Kind  EventKind
	Cause string
	Slot  int
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}
