package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/spider-run/internal/config"
	"github.com/vovakirdan/spider-run/internal/runner"
)

var flagConfigDefaults bool

var configCmd = &cobra.Command{
	Use:   "config [variant]",
	Short: "Print the effective configuration",
	Long: `Print the runner configuration as YAML after the config file search,
the difficulty preset and the variant's heart policy are applied.

Use --defaults to print the built-in file, a good starting point for
~/.spiderrun/configs/runner.yaml.

Examples:
  spiderrun config
  spiderrun config runner_random --difficulty hard
  spiderrun config --defaults > ~/.spiderrun/configs/runner.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigDefaults, "defaults", false, "Print the built-in defaults file")
}

func runConfig(_ *cobra.Command, args []string) error {
	if flagConfigDefaults {
		_, err := os.Stdout.Write(config.DefaultYAML())
		return err
	}

	id, err := variantArg(args)
	if err != nil {
		return err
	}

	policy := config.HeartPolicyGated
	switch id {
	case runner.IDClassic:
		policy = config.HeartPolicyTimer
	case runner.IDRandom:
		policy = config.HeartPolicyRandom
	}

	cfg, err := runner.LoadConfig(policy)
	if err != nil {
		logger.Warn("using default config", "error", err)
	}

	out, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	_, err = os.Stdout.Write(out)
	return err
}
