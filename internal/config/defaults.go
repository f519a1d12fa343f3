package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the built-in runner configuration.
// It mirrors defaults/runner.yaml and is the last fallback of LoadRunner.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		World: WorldConfig{
			Width:        800,
			Height:       400,
			GroundY:      350,
			ScrollFactor: 0.4,
			DayPeriod:    300,
		},
		Player: PlayerConfig{
			X:           60,
			StartY:      300,
			Size:        64,
			HitboxScale: 0.82,
			Jumps:       2,
		},
		Physics: PhysicsConfig{
			Gravity:     0.65,
			JumpImpulse: -12.5,
		},
		Obstacles: ObstacleConfig{
			Interval:    70,
			Size:        48,
			SwingChance: 0.6,
			MinThread:   100,
			ThreadRange: 160,
			MinAmp:      22,
			AmpRange:    24,
			MinFall:     4,
			FallRange:   2,
			PhaseStep:   0.08,
			Drift:       0.6,
			DriftFreq:   0.8,
		},
		Coins: CoinConfig{
			Interval: 180,
			Radius:   16,
			BaseY:    260,
			YRange:   120,
			Score:    100,
			PerLife:  10,
		},
		Hearts: HeartConfig{
			Policy:         HeartPolicyGated,
			Interval:       1200,
			Chance:         0.0008,
			Radius:         16,
			BaseY:          240,
			YRange:         100,
			FirstThreshold: 2000,
			Growth:         1.6,
			PityGap:        6000,
		},
		Lives: LivesConfig{
			Start: 3,
			Cap:   10,
		},
		Difficulty: DifficultyConfig{
			Enabled:   true,
			BaseSpeed: 5,
			SpeedStep: 0.2,
			StepEvery: 300,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultRunnerYAML
}
