package gfx

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/spider-run/internal/core"
	"github.com/vovakirdan/spider-run/internal/runner"
	"github.com/vovakirdan/spider-run/internal/storage"
)

// Game adapts a runner variant to ebiten.Game. Update steps the simulation
// once per tick and Draw renders the world; both run on Ebitengine's single
// game goroutine.
type Game struct {
	runner  *runner.Game
	sprites *Sprites
	loadErr error
	store   *storage.Store
	logger  *log.Logger
	runtime core.RuntimeConfig

	width, height int // Logical surface
	runSaved      bool
}

// NewGame wires a variant to its sprites. When loadErr is set the game never
// simulates and only shows the load error.
func NewGame(g *runner.Game, sprites *Sprites, loadErr error, store *storage.Store, logger *log.Logger, rc core.RuntimeConfig) *Game {
	if logger == nil {
		logger = log.Default()
	}
	game := &Game{
		runner:  g,
		sprites: sprites,
		loadErr: loadErr,
		store:   store,
		logger:  logger,
		runtime: rc,
	}
	if loadErr == nil {
		game.restart()
		cfg := g.World().Config().World
		game.width, game.height = int(cfg.Width), int(cfg.Height)
	} else {
		cfg, _ := runner.LoadConfig(g.Policy())
		game.width, game.height = int(cfg.World.Width), int(cfg.World.Height)
	}
	return game
}

func (g *Game) restart() {
	if g.runtime.Seed == 0 {
		g.runtime.Seed = time.Now().UnixNano()
	}
	g.runner.Reset(g.runtime)
	if err := g.runner.ConfigErr(); err != nil {
		g.logger.Warn("using default config", "error", err)
	}
	g.runSaved = false
	// Later restarts get a fresh seed.
	g.runtime.Seed = 0
}

// Update advances the game by one tick.
func (g *Game) Update() error {
	in := pollInput()
	if in.Has(core.ActionQuit) {
		return ebiten.Termination
	}
	if g.loadErr != nil {
		return nil
	}

	g.step(in)
	return nil
}

// step applies one frame of input: restart after game over, otherwise
// advance the simulation and record the run on the game-over edge.
func (g *Game) step(in core.InputFrame) {
	if g.runner.World().GameOver {
		if runner.ResolveIntent(in, true).Restart {
			g.restart()
		}
		return
	}

	g.runner.Step(in)

	if g.runner.State().GameOver && !g.runSaved {
		g.recordRun()
		g.runSaved = true
	}
}

func (g *Game) recordRun() {
	s := g.runner.State()
	g.logger.Info("run finished", "game", g.runner.ID(), "score", s.Score, "frames", s.Frames, "coins", s.Coins)

	if g.store == nil {
		return
	}
	_, err := g.store.SaveRun(storage.RunRecord{
		GameID:   g.runner.ID(),
		Score:    s.Score,
		Frames:   s.Frames,
		MaxLives: s.MaxLives,
		Coins:    s.Coins,
	})
	if err != nil {
		g.logger.Error("could not save run", "game", g.runner.ID(), "error", err)
	}
}

// Draw renders the current frame.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.loadErr != nil {
		drawLoadError(screen, g.loadErr)
		return
	}

	w := g.runner.World()
	drawWorld(screen, w, g.sprites)

	if g.runner.State().Paused {
		cfg := w.Config().World
		drawPaused(screen, float32(cfg.Width), float32(cfg.Height))
	}
}

// Layout fixes the logical surface to the world size; Ebitengine scales it
// to the window.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}
