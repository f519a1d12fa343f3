package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to the display surface and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in cells (terminal) or pixels (window)
	ScreenH  int   // Screen height in cells (terminal) or pixels (window)
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState is the summary of a run reported to the platform after each tick.
type GameState struct {
	Score    int  // Current score
	Frames   int  // Simulated frames since the last reset
	Lives    int  // Current life count
	MaxLives int  // Current life capacity
	Coins    int  // Coins collected over the whole run
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
