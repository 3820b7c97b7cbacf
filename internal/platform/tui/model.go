package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-frogger/internal/core"
	"github.com/vovakirdan/tui-frogger/internal/registry"
	"github.com/vovakirdan/tui-frogger/internal/storage"
)

// footerLines is the number of rows below the game screen (status + help).
const footerLines = 2

var (
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	bestStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// Model is the Bubble Tea model that hosts a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	keys       *KeyMapper
	help       help.Model
	inputFrame core.InputFrame
	gameState  core.GameState
	lastTick   time.Time
	ticks      uint64 // Ticks played in the current game
	best       int    // Best score seen this session
	quitting   bool
	scoreSaved bool // Whether score has been saved for current game over
}

// NewModel creates a Bubble Tea model for the given game and resets the game.
// store and logger may be nil.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) (Model, error) {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	gameH := max(cfg.ScreenH-footerLines, 1)
	if err := game.Reset(core.RuntimeConfig{
		ScreenW:  cfg.ScreenW,
		ScreenH:  gameH,
		TickRate: cfg.TickRate,
		Seed:     cfg.Seed,
	}); err != nil {
		return Model{}, fmt.Errorf("tui: cannot start %s: %w", game.ID(), err)
	}

	best := 0
	if store != nil {
		high, err := store.HighScore(game.ID())
		if err != nil {
			logger.Warn("could not read high score", "error", err)
		}
		best = high
	}

	h := help.New()
	h.Width = cfg.ScreenW

	logger.Info("game started", "game", game.ID(), "seed", cfg.Seed, "fps", cfg.TickRate)

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, gameH),
		store:      store,
		logger:     logger,
		config:     cfg,
		keys:       NewKeyMapper(),
		help:       h,
		inputFrame: core.NewInputFrame(),
		gameState:  game.State(),
		best:       best,
	}, nil
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey records key presses for the next tick. Every press counts, so
// two quick taps hop twice even if they land in the same frame.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		m.logger.Info("quit", "score", m.gameState.Score)
		return m, tea.Quit
	}

	return m, nil
}

// handleResize processes window resize events. The world keeps its logical
// size, so the game is resized rather than reset.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	gameH := max(msg.Height-footerLines, 1)
	m.screen.Resize(msg.Width, gameH)
	m.help.Width = msg.Width

	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(msg.Width, gameH)
	}
	m.logger.Debug("resize", "width", msg.Width, "height", msg.Height)

	return m, nil
}

// handleTick advances the game by the measured time since the last tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := frameSeconds(m.lastTick, now, m.config.FrameSeconds())
	m.lastTick = now

	wasOver := m.gameState.GameOver
	result := m.game.Step(m.inputFrame, dt)
	m.gameState = result.State
	m.inputFrame.Clear()

	if wasOver && !m.gameState.GameOver {
		m.ticks = 0
		m.scoreSaved = false
		m.logger.Info("game restarted")
	}
	if !m.gameState.GameOver && !m.gameState.Paused {
		m.ticks++
	}

	m.logEvents(result.Events)

	// Save score on game over (once)
	if m.gameState.GameOver && !m.scoreSaved {
		m.saveResult()
		m.scoreSaved = true
	}

	return m, tickCmd(m.config.TickRate)
}

// logEvents writes gameplay events to the log.
func (m *Model) logEvents(events []core.Event) {
	for _, e := range events {
		switch e.Kind {
		case core.EventLifeLost:
			m.logger.Info("life lost", "cause", e.Cause, "lives", m.gameState.Lives)
		case core.EventGoalClaimed:
			m.logger.Info("goal claimed", "slot", e.Slot, "score", m.gameState.Score)
		case core.EventGameWon:
			m.logger.Info("game won", "score", m.gameState.Score, "ticks", m.ticks)
		case core.EventGameLost:
			m.logger.Info("game lost", "score", m.gameState.Score, "ticks", m.ticks)
		}
	}
}

// saveResult records the finished game in the scoreboard.
func (m *Model) saveResult() {
	m.best = max(m.best, m.gameState.Score)
	if m.store == nil {
		return
	}

	id, err := m.store.SaveResult(storage.GameResult{
		GameID:    m.game.ID(),
		Score:     m.gameState.Score,
		Won:       m.gameState.Won,
		LivesLeft: m.gameState.Lives,
		Ticks:     m.ticks,
	})
	if err != nil {
		m.logger.Warn("could not save score", "error", err)
		return
	}
	m.logger.Debug("score saved", "id", id, "score", m.gameState.Score)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	dir := filepath.Join(home, ".frogger", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	status := statusStyle.Render("Best: ") + bestStyle.Render(fmt.Sprintf("%d", m.best))
	if m.gameState.Paused {
		status += statusStyle.Render("  (paused)")
	}

	return RenderScreen(m.screen) + "\n" + status + "\n" + helpStyle.Render(m.help.View(m.keys.Keys()))
}

// Best returns the best score seen this session.
func (m Model) Best() int {
	return m.best
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	model, err := NewModel(game, store, cfg, logger)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err = p.Run()
	return err
}
