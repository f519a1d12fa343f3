package gfx

import (
	"context"
	"errors"
	"io/fs"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/spider-run/internal/assets"
	"github.com/vovakirdan/spider-run/internal/core"
	"github.com/vovakirdan/spider-run/internal/runner"
	"github.com/vovakirdan/spider-run/internal/storage"
)

// Options configure the window front-end.
type Options struct {
	Assets  fs.FS // Sprite files; nil uses the embedded placeholders
	Store   *storage.Store
	Logger  *log.Logger
	Runtime core.RuntimeConfig
	Scale   float64 // Window size multiplier over the logical surface
}

// Run loads the sprites, opens the window and blocks until it is closed.
// A sprite load failure is logged and shown in the window; the simulation
// never starts in that case.
func Run(ctx context.Context, g *runner.Game, opts Options) error {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	fsys := opts.Assets
	if fsys == nil {
		fsys = assets.Embedded()
	}

	sprites, loadErr := LoadSprites(ctx, fsys, assets.DefaultManifest())
	if loadErr != nil {
		var le *assets.LoadError
		if errors.As(loadErr, &le) {
			logger.Error("asset load failed", "asset", le.Name, "path", le.Path, "error", le.Err)
		} else {
			logger.Error("asset load failed", "error", loadErr)
		}
	}

	game := NewGame(g, sprites, loadErr, opts.Store, logger, opts.Runtime)

	w, h := game.Layout(0, 0)
	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}
	ebiten.SetWindowSize(int(float64(w)*scale), int(float64(h)*scale))
	ebiten.SetWindowTitle(g.Title())
	if opts.Runtime.TickRate > 0 {
		ebiten.SetTPS(opts.Runtime.TickRate)
	}

	err := ebiten.RunGame(game)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}
