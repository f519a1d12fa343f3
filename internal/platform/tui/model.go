package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/spider-run/internal/config"
	"github.com/vovakirdan/spider-run/internal/core"
	"github.com/vovakirdan/spider-run/internal/registry"
	"github.com/vovakirdan/spider-run/internal/runner"
	"github.com/vovakirdan/spider-run/internal/storage"
)

// GameModel is the Bubble Tea model that runs one variant: it collects input
// between ticks, steps the game once per tick, restarts after game over and
// records finished runs.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	best       int // Best recorded score for this variant
	quitting   bool
	backToMenu bool
	runSaved   bool // Whether the current run has been recorded
}

// NewGameModel creates a model for the given game. store and logger may be nil.
func NewGameModel(game registry.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) GameModel {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.Default()
	}

	m := GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		logger:     logger,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
	}
	if store != nil {
		if best, err := store.HighScore(game.ID()); err == nil {
			m.best = best
		} else {
			logger.Warn("could not read high score", "game", game.ID(), "error", err)
		}
	}
	return m
}

// Init starts the first run and the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.resetGame()
	return tickCmd(m.config.TickRate)
}

// resetGame starts a new run. Config problems are logged and the run falls
// back to the defaults.
func (m GameModel) resetGame() {
	m.game.Reset(m.config)
	if rg, ok := m.game.(*runner.Game); ok && rg.ConfigErr() != nil {
		m.logger.Warn("using default config", "error", rg.ConfigErr())
	}
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.keyMapper.MapMouseToFrame(msg, &m.inputFrame)
		return m, nil

	case tea.WindowSizeMsg:
		// The world is in logical units; only the cell buffer changes.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	// Back to menu is only offered while the run is stopped.
	if m.inputFrame.Has(core.ActionBack) && (m.gameState.GameOver || m.gameState.Paused) {
		m.backToMenu = true
		return m, nil
	}

	return m, nil
}

func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.backToMenu {
		return m, nil
	}

	if m.gameState.GameOver {
		if runner.ResolveIntent(m.inputFrame, true).Restart {
			m.config.Seed = time.Now().UnixNano()
			m.resetGame()
			m.gameState = m.game.State()
			m.runSaved = false
		}
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if m.gameState.GameOver && !m.runSaved {
		m.recordRun()
		m.runSaved = true
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// recordRun stores the finished run. Failures are logged; the game goes on.
func (m *GameModel) recordRun() {
	s := m.gameState
	if s.Score > m.best {
		m.best = s.Score
	}
	m.logger.Info("run finished", "game", m.game.ID(), "score", s.Score, "frames", s.Frames, "coins", s.Coins)

	if m.store == nil {
		return
	}
	_, err := m.store.SaveRun(storage.RunRecord{
		GameID:   m.game.ID(),
		Score:    s.Score,
		Frames:   s.Frames,
		MaxLives: s.MaxLives,
		Coins:    s.Coins,
	})
	if err != nil {
		m.logger.Error("could not save run", "game", m.game.ID(), "error", err)
	}
}

// saveScreenshot writes the current frame as plain text.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, config.ConfigDirName, "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "error", err)
		return
	}
	m.logger.Debug("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	m.game.Render(m.screen)
	m.drawFooter()
	return RenderScreen(m.screen)
}

// drawFooter writes the best score and controls on the bottom row.
func (m GameModel) drawFooter() {
	y := m.screen.Height() - 1
	if y < 1 {
		return
	}
	best := m.best
	if m.gameState.Score > best {
		best = m.gameState.Score
	}
	footer := fmt.Sprintf(" Best: %d  space jump  p pause  esc menu  q quit ", best)
	m.screen.DrawTextColored(1, y, footer, core.ColorGray)
}

// State returns the last state reported by the game.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays one variant in the local terminal until the player quits or
// goes back to the menu. It reports whether the player asked for the menu.
func Run(game registry.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) (backToMenu bool, err error) {
	model := NewGameModel(game, store, logger, cfg)

	p := tea.NewProgram(
		backOnQuit{model},
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	if b, ok := final.(backOnQuit); ok {
		return b.BackToMenu(), nil
	}
	return false, nil
}

// backOnQuit ends a standalone program when the player asks for the menu.
// Inside an SSH session the session model handles that transition instead.
type backOnQuit struct {
	GameModel
}

func (b backOnQuit) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := b.GameModel.Update(msg)
	if gm, ok := next.(GameModel); ok {
		b.GameModel = gm
	}
	if b.BackToMenu() {
		return b, tea.Quit
	}
	return b, cmd
}
