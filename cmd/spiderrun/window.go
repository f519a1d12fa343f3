package main

import (
	"context"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/spider-run/internal/core"
	"github.com/vovakirdan/spider-run/internal/platform/gfx"
	"github.com/vovakirdan/spider-run/internal/registry"
	"github.com/vovakirdan/spider-run/internal/runner"
)

var (
	flagAssetsDir string
	flagScale     float64
)

var windowCmd = &cobra.Command{
	Use:   "window [variant]",
	Short: "Play in an 800x400 window",
	Long: `Open a graphical window and start a run.

Sprites are read from --assets (bg_day.png, bg_night.png, player.png,
coin.png, heart.png, spider.png). Without --assets the built-in
placeholder sprites are used.

Controls:
  Space/Up     - Jump (press again in the air for a double jump)
  Click/Touch  - Jump while playing, restart after game over
  Enter        - Restart after game over
  P            - Pause
  Esc          - Quit

Examples:
  spiderrun window
  spiderrun window runner_classic --assets ./assets --scale 1.5`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWindow,
}

func init() {
	windowCmd.Flags().StringVar(&flagAssetsDir, "assets", "", "Directory with sprite PNGs (default: built-in sprites)")
	windowCmd.Flags().Float64Var(&flagScale, "scale", 1, "Window size multiplier")
}

func runWindow(cmd *cobra.Command, args []string) error {
	id, err := variantArg(args)
	if err != nil {
		return err
	}

	created, err := registry.Create(id)
	if err != nil {
		return err
	}
	game, ok := created.(*runner.Game)
	if !ok {
		return fmt.Errorf("variant %q cannot be played in a window", id)
	}

	var assetsFS fs.FS
	if flagAssetsDir != "" {
		assetsFS = os.DirFS(flagAssetsDir)
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	return gfx.Run(ctx, game, gfx.Options{
		Assets: assetsFS,
		Store:  store,
		Logger: logger,
		Runtime: core.RuntimeConfig{
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		Scale: flagScale,
	})
}
