// Package config provides YAML-based runner configuration loading and
// difficulty management.
package config

import (
	"errors"
	"fmt"
)

// HeartPolicy selects how heart pickups are paced.
type HeartPolicy string

const (
	HeartPolicyGated  HeartPolicy = "gated"  // score threshold gate plus pity rule
	HeartPolicyTimer  HeartPolicy = "timer"  // fixed long-period timer
	HeartPolicyRandom HeartPolicy = "random" // per-frame low-probability draw
)

// RunnerConfig contains all tuning for the spider runner.
type RunnerConfig struct {
	World      WorldConfig      `yaml:"world"`
	Player     PlayerConfig     `yaml:"player"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Obstacles  ObstacleConfig   `yaml:"obstacles"`
	Coins      CoinConfig       `yaml:"coins"`
	Hearts     HeartConfig      `yaml:"hearts"`
	Lives      LivesConfig      `yaml:"lives"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// WorldConfig defines the logical surface and background motion.
type WorldConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	GroundY      float64 `yaml:"ground_y"`      // Top of the ground strip
	ScrollFactor float64 `yaml:"scroll_factor"` // Background scroll per unit of speed
	DayPeriod    float64 `yaml:"day_period"`    // Ticks divisor of the day/night sine
}

// PlayerConfig defines the player sprite and its hitbox.
type PlayerConfig struct {
	X           float64 `yaml:"x"`
	StartY      float64 `yaml:"start_y"` // Resting y (top edge) on the ground line
	Size        float64 `yaml:"size"`
	HitboxScale float64 `yaml:"hitbox_scale"`
	Jumps       int     `yaml:"jumps"`
}

// PhysicsConfig defines the vertical physics.
type PhysicsConfig struct {
	Gravity     float64 `yaml:"gravity"`
	JumpImpulse float64 `yaml:"jump_impulse"`
}

// ObstacleConfig defines spider spawning and motion.
type ObstacleConfig struct {
	Interval    int     `yaml:"interval"` // Frames between spawns, 0 disables
	Size        float64 `yaml:"size"`
	SwingChance float64 `yaml:"swing_chance"`
	MinThread   float64 `yaml:"min_thread"`
	ThreadRange float64 `yaml:"thread_range"`
	MinAmp      float64 `yaml:"min_amp"`
	AmpRange    float64 `yaml:"amp_range"`
	MinFall     float64 `yaml:"min_fall"`
	FallRange   float64 `yaml:"fall_range"`
	PhaseStep   float64 `yaml:"phase_step"` // Swing phase advance per frame
	Drift       float64 `yaml:"drift"`      // Swing displacement factor per frame
	DriftFreq   float64 `yaml:"drift_freq"` // Horizontal swing frequency relative to vertical
}

// CoinConfig defines the currency pickup.
type CoinConfig struct {
	Interval int     `yaml:"interval"` // Frames between spawns, 0 disables
	Radius   float64 `yaml:"radius"`
	BaseY    float64 `yaml:"base_y"`
	YRange   float64 `yaml:"y_range"`
	Score    int     `yaml:"score"`    // Score bonus per coin
	PerLife  int     `yaml:"per_life"` // Coins needed for +1 life
}

// HeartConfig defines heart pickup pacing.
type HeartConfig struct {
	Policy         HeartPolicy `yaml:"policy"`
	Interval       int         `yaml:"interval"` // timer policy
	Chance         float64     `yaml:"chance"`   // random policy
	Radius         float64     `yaml:"radius"`
	BaseY          float64     `yaml:"base_y"`
	YRange         float64     `yaml:"y_range"`
	FirstThreshold int         `yaml:"first_threshold"` // gated policy
	Growth         float64     `yaml:"growth"`          // gated policy
	PityGap        int         `yaml:"pity_gap"`        // gated policy, 0 disables
}

// MaxLivesCap is the hard ceiling on life capacity, whatever the config says.
const MaxLivesCap = 10

// LivesConfig defines the life economy.
type LivesConfig struct {
	Start int `yaml:"start"`
	Cap   int `yaml:"cap"`
}

// DifficultyConfig defines the scroll speed ramp.
type DifficultyConfig struct {
	Enabled   bool    `yaml:"enabled"`
	BaseSpeed float64 `yaml:"base_speed"`
	SpeedStep float64 `yaml:"speed_step"`
	StepEvery int     `yaml:"step_every"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParseDifficultyPreset maps a CLI value to a preset.
// Unknown or empty values return "" which keeps the config as loaded.
func ParseDifficultyPreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// Validate checks the invariants the simulation relies on.
func (c RunnerConfig) Validate() error {
	var errs []error

	if c.World.Width <= 0 || c.World.Height <= 0 {
		errs = append(errs, fmt.Errorf("world size must be positive, got %vx%v", c.World.Width, c.World.Height))
	}
	if c.Player.Size <= 0 {
		errs = append(errs, fmt.Errorf("player.size must be positive, got %v", c.Player.Size))
	}
	if c.Player.HitboxScale <= 0 || c.Player.HitboxScale > 1 {
		errs = append(errs, fmt.Errorf("player.hitbox_scale must be in (0, 1], got %v", c.Player.HitboxScale))
	}
	if c.Player.Jumps < 1 {
		errs = append(errs, fmt.Errorf("player.jumps must be at least 1, got %d", c.Player.Jumps))
	}
	if c.Lives.Start < 1 {
		errs = append(errs, fmt.Errorf("lives.start must be at least 1, got %d", c.Lives.Start))
	}
	if c.Lives.Cap < c.Lives.Start {
		errs = append(errs, fmt.Errorf("lives.cap (%d) must not be below lives.start (%d)", c.Lives.Cap, c.Lives.Start))
	}
	if c.Lives.Cap > MaxLivesCap {
		errs = append(errs, fmt.Errorf("lives.cap must be at most %d, got %d", MaxLivesCap, c.Lives.Cap))
	}
	if c.Coins.PerLife < 1 {
		errs = append(errs, fmt.Errorf("coins.per_life must be at least 1, got %d", c.Coins.PerLife))
	}
	switch c.Hearts.Policy {
	case HeartPolicyGated:
		if c.Hearts.Growth < 1 {
			errs = append(errs, fmt.Errorf("hearts.growth must be at least 1, got %v", c.Hearts.Growth))
		}
	case HeartPolicyTimer, HeartPolicyRandom:
	default:
		errs = append(errs, fmt.Errorf("unknown hearts.policy %q", c.Hearts.Policy))
	}

	return errors.Join(errs...)
}
