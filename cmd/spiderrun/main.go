// spiderrun is an endless runner: double-jump over swinging and dropping
// spiders, collect coins and hearts, survive as long as the speed ramps up.
//
// Usage:
//
//	spiderrun list                - List the game variants
//	spiderrun play [variant]      - Play in the terminal
//	spiderrun window [variant]    - Play in an 800x400 window
//	spiderrun menu                - Pick variants interactively
//	spiderrun serve               - Start SSH server for remote play
//	spiderrun scores [variant]    - Show the best runs
//	spiderrun config              - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible runs
//	--db <path>          - Set database path (default: ~/.spiderrun/runs.db)
//	--config <path>      - Use a custom runner YAML
//	--difficulty <name>  - Difficulty preset: easy, normal, hard, fixed
//	--log-level <level>  - debug, info, warn, error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/spider-run/internal/config"
	"github.com/vovakirdan/spider-run/internal/core"
	"github.com/vovakirdan/spider-run/internal/registry"
	"github.com/vovakirdan/spider-run/internal/runner"
	"github.com/vovakirdan/spider-run/internal/storage"
)

var (
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "spiderrun",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "spiderrun",
	Short: "Spider Run - an endless runner for your terminal and desktop",
	Long: `Spider Run is a side-scrolling endless runner. Double-jump over spiders
hanging from their threads, collect coins (10 coins restore a life) and
hearts (one more life slot and a full heal). The world speeds up every
five seconds.

Variants differ only in how hearts appear:
  runner          - hearts at growing score thresholds, with a safety net at one life
  runner_classic  - a heart every 20 seconds
  runner_random   - hearts appear by chance

Examples:
  spiderrun play
  spiderrun window runner_classic
  spiderrun menu --difficulty hard
  spiderrun serve --ssh :2222
  spiderrun scores runner`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/"+config.ConfigDirName+"/runs.db", "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom runner config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// setup applies the global flags before any command runs.
func setup(_ *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	logger.SetLevel(level)
	log.SetLevel(level)

	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}
	if flagDifficulty != "" && config.ParseDifficultyPreset(flagDifficulty) == "" {
		return fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
	}

	runner.SetConfigPath(flagConfig)
	runner.SetDifficultyPreset(flagDifficulty)

	// An explicit --config must be readable; fallbacks are only logged.
	if _, err := config.LoadRunner(flagConfig); err != nil {
		if flagConfig != "" {
			return err
		}
		logger.Warn("using default config", "error", err)
	}
	return nil
}

// variantArg returns the variant named on the command line, or the default.
func variantArg(args []string) (string, error) {
	id := runner.IDGated
	if len(args) > 0 {
		id = args[0]
	}
	if !registry.Exists(id) {
		return "", fmt.Errorf("unknown variant %q, run 'spiderrun list' to see available variants", id)
	}
	return id, nil
}

// terminalConfig builds the runtime config from the terminal size and flags.
func terminalConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW, cfg.ScreenH = w, h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// openStore opens the run history. Games still run without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open run database, runs will not be recorded", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}
