// Package runner implements the spider runner: a side-scrolling endless
// runner where the player double-jumps over swinging and dropping spiders
// while collecting coins and hearts.
//
// All run state lives in World, which is advanced one frame at a time by
// World.Step and read by the renderers. Randomness is injected through Rand
// so runs are reproducible from a seed or a scripted sequence.
package runner

import (
	"github.com/vovakirdan/spider-run/internal/config"
	"github.com/vovakirdan/spider-run/internal/core"
)

// Rand is the source of randomness for spawns and motion parameters.
// *math/rand.Rand satisfies it.
type Rand interface {
	Float64() float64
}

// MotionMode tags how a spider moves.
type MotionMode int

const (
	MotionSwing MotionMode = iota // Oscillates on its thread
	MotionDrop                    // Falls to the ground line
)

func (m MotionMode) String() string {
	if m == MotionDrop {
		return "drop"
	}
	return "swing"
}

// ItemKind tags a pickup.
type ItemKind int

const (
	ItemCoin ItemKind = iota
	ItemHeart
)

func (k ItemKind) String() string {
	if k == ItemHeart {
		return "heart"
	}
	return "coin"
}

// Player is the runner sprite.
type Player struct {
	X, Y      float64
	W, H      float64
	DY        float64 // Vertical velocity, negative is up
	JumpsLeft int
}

// Rect returns the full sprite bounds.
func (p Player) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.W, p.H)
}

// Hitbox returns the sprite bounds shrunk by scale around the sprite center.
func (p Player) Hitbox(scale float64) core.Rect {
	return p.Rect().Scaled(scale)
}

// Obstacle is a spider hanging from a thread anchored at the top of the screen.
type Obstacle struct {
	X, Y      float64
	W, H      float64
	Mode      MotionMode
	Phase     float64 // Swing phase angle
	Amp       float64 // Swing amplitude
	FallSpeed float64 // Drop speed per frame
}

// Rect returns the obstacle bounds.
func (o Obstacle) Rect() core.Rect {
	return core.NewRect(o.X, o.Y, o.W, o.H)
}

// Item is a round pickup; X/Y is the top-left of its bounding square.
type Item struct {
	Kind ItemKind
	X, Y float64
	R    float64
}

// Rect returns the item's bounding square.
func (it Item) Rect() core.Rect {
	return core.NewRect(it.X, it.Y, it.R*2, it.R*2)
}

// World is the complete state of one run.
type World struct {
	Player    Player
	Obstacles []Obstacle
	Items     []Item

	Frame    int     // Frames simulated since reset
	Score    int     // +1 per frame plus pickup bonuses
	Coins    int     // Coin counter, wraps at Coins.PerLife
	Lives    int     // Current life
	MaxLives int     // Life capacity
	GameOver bool    // One-way until Reset
	Speed    float64 // Horizontal scroll speed
	BGScroll float64 // Background offset in [0, World.Width)
	Ticks    int     // Day/night accumulator

	// Heart pacing for the gated policy.
	NextHeartScore int
	LastHeartScore int

	// Run statistics.
	CoinsCollected  int
	HeartsCollected int
	Hits            int

	cfg        config.RunnerConfig
	difficulty *config.DifficultyManager
	rng        Rand
}

// NewWorld creates a world in its starting state.
func NewWorld(cfg config.RunnerConfig, rng Rand) *World {
	w := &World{
		cfg:        cfg,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		rng:        rng,
	}
	w.Reset()
	return w
}

// Reset reinitializes every field of the run to its starting value.
func (w *World) Reset() {
	size := w.cfg.Player.Size
	w.Player = Player{
		X:         w.cfg.Player.X,
		Y:         w.cfg.Player.StartY,
		W:         size,
		H:         size,
		JumpsLeft: w.cfg.Player.Jumps,
	}
	w.Obstacles = nil
	w.Items = nil

	w.Frame = 0
	w.Score = 0
	w.Coins = 0
	w.MaxLives = min(w.cfg.Lives.Start, config.MaxLivesCap)
	w.Lives = w.MaxLives
	w.GameOver = false
	w.Speed = w.difficulty.InitialSpeed()
	w.BGScroll = 0
	w.Ticks = 0

	w.NextHeartScore = w.cfg.Hearts.FirstThreshold
	w.LastHeartScore = 0

	w.CoinsCollected = 0
	w.HeartsCollected = 0
	w.Hits = 0
}

// Config returns the configuration the world runs with.
func (w *World) Config() config.RunnerConfig {
	return w.cfg
}

// Level returns the current difficulty level for display.
func (w *World) Level() int {
	return w.difficulty.Level(w.Frame)
}

// State summarizes the run for the platform.
func (w *World) State() core.GameState {
	return core.GameState{
		Score:    w.Score,
		Frames:   w.Frame,
		Lives:    w.Lives,
		MaxLives: w.MaxLives,
		Coins:    w.CoinsCollected,
		GameOver: w.GameOver,
	}
}

// groundLine is the resting y of the player's top edge.
func (w *World) groundLine() float64 {
	return w.cfg.Player.StartY + (w.cfg.Player.Size - w.Player.H)
}

func (w *World) heartOnScreen() bool {
	for _, it := range w.Items {
		if it.Kind == ItemHeart {
			return true
		}
	}
	return false
}
