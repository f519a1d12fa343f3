package config

// DifficultyManager drives the scroll speed ramp.
type DifficultyManager struct {
	cfg DifficultyConfig
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{cfg: cfg}
}

// IsEnabled returns whether the speed ramp is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.StepEvery > 0
}

// InitialSpeed returns the scroll speed of a fresh run.
func (d *DifficultyManager) InitialSpeed() float64 {
	return d.cfg.BaseSpeed
}

// Advance returns the speed for the given frame: one step is added on every
// frame that is a multiple of StepEvery. The ramp is unbounded.
func (d *DifficultyManager) Advance(speed float64, frame int) float64 {
	if !d.IsEnabled() || frame <= 0 || frame%d.cfg.StepEvery != 0 {
		return speed
	}
	return speed + d.cfg.SpeedStep
}

// Level returns the 1-based difficulty level reached at the given frame.
func (d *DifficultyManager) Level(frame int) int {
	if !d.IsEnabled() || frame <= 0 {
		return 1
	}
	return frame/d.cfg.StepEvery + 1
}
