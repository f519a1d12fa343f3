package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/spider-run/internal/platform/tui"
	"github.com/vovakirdan/spider-run/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play in the terminal",
	Long: `Start a run in the terminal. The default variant is "runner".

Controls:
  Space/Up     - Jump (press again in the air for a double jump)
  Click        - Jump while playing, restart after game over
  Enter/R      - Restart after game over
  P            - Pause
  Ctrl+S       - Save a text screenshot
  Q/Ctrl+C     - Quit

Examples:
  spiderrun play
  spiderrun play runner_random --difficulty easy
  spiderrun play --seed 42 --config ./my-runner.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	id, err := variantArg(args)
	if err != nil {
		return err
	}

	game, err := registry.Create(id)
	if err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	_, err = tui.Run(game, store, logger, terminalConfig())
	return err
}
