package runner

import (
	"math/rand"

	"github.com/vovakirdan/spider-run/internal/config"
	"github.com/vovakirdan/spider-run/internal/core"
	"github.com/vovakirdan/spider-run/internal/registry"
)

// Variant identifiers. Each variant differs only in heart pacing.
const (
	IDGated   = "runner"
	IDClassic = "runner_classic"
	IDRandom  = "runner_random"
)

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParseDifficultyPreset(preset)
}

// LoadConfig resolves the configuration a variant runs with: the loaded file
// (or defaults), the difficulty preset and the variant's heart policy.
func LoadConfig(policy config.HeartPolicy) (config.RunnerConfig, error) {
	cfg, err := config.LoadRunner(configPath)
	if err != nil {
		return config.DefaultRunnerConfig(), err
	}
	if difficultyPreset != "" {
		config.ApplyRunnerPreset(&cfg, difficultyPreset)
	}
	cfg.Hearts.Policy = policy
	return cfg, nil
}

// Game adapts a World to the platform's registry.Game interface.
type Game struct {
	id     string
	title  string
	policy config.HeartPolicy
	world  *World
	paused bool

	configErr error
}

// New creates a runner variant with the given heart policy.
func New(id, title string, policy config.HeartPolicy) *Game {
	return &Game{id: id, title: title, policy: policy}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.title
}

// Policy returns the heart pacing policy of this variant.
func (g *Game) Policy() config.HeartPolicy {
	return g.policy
}

// Reset starts a fresh run seeded from the runtime config.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	cfg, err := LoadConfig(g.policy)
	if err != nil {
		cfg.Hearts.Policy = g.policy
	}
	g.configErr = err
	g.ResetWith(cfg, rand.New(rand.NewSource(runtime.Seed)))
}

// ConfigErr returns the config loading error of the last Reset, if any.
// The run then uses the built-in defaults.
func (g *Game) ConfigErr() error {
	return g.configErr
}

// ResetWith starts a fresh run with an explicit config and random source.
func (g *Game) ResetWith(cfg config.RunnerConfig, rng Rand) {
	g.world = NewWorld(cfg, rng)
	g.paused = false
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.world.GameOver {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.world.Step(ResolveIntent(in, false).Jump)
	return core.StepResult{State: g.State()}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	Render(dst, g.world)
	if g.paused {
		DrawMessage(dst, "PAUSED", "Press P to resume")
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	s := g.world.State()
	s.Paused = g.paused
	return s
}

// World exposes the run state to raster front-ends. Callers must treat it as read-only.
func (g *Game) World() *World {
	return g.world
}

func init() {
	registry.Register(IDGated, func() registry.Game {
		return New(IDGated, "Spider Run", config.HeartPolicyGated)
	})
	registry.Register(IDClassic, func() registry.Game {
		return New(IDClassic, "Spider Run (classic hearts)", config.HeartPolicyTimer)
	})
	registry.Register(IDRandom, func() registry.Game {
		return New(IDRandom, "Spider Run (random hearts)", config.HeartPolicyRandom)
	})
}
