package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/spider-run/internal/platform/tui"
	"github.com/vovakirdan/spider-run/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick variants from an interactive menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to play, Tab for the scoreboard.
After a run, press Esc on the game-over screen to return to the menu.

Examples:
  spiderrun menu
  spiderrun menu --fps 30
  spiderrun menu --db ./runs.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	store := openStore()
	if store != nil {
		defer store.Close()
	}

	cfg := terminalConfig()

	for {
		result, err := tui.RunMenu(store, cfg)
		if err != nil {
			return err
		}
		cfg = result.Config

		switch {
		case result.Quit:
			return nil

		case result.WantsScoreboard:
			goBack, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if !goBack {
				return nil
			}
			continue
		}

		game, err := registry.Create(result.GameID)
		if err != nil {
			logger.Error("cannot create game", "variant", result.GameID, "error", err)
			continue
		}

		backToMenu, err := tui.Run(game, store, logger, cfg)
		if err != nil {
			return err
		}
		if !backToMenu {
			return nil
		}
	}
}
