package runner

import (
	"math"
	"testing"

	"github.com/vovakirdan/spider-run/internal/config"
)

// scriptedRand replays a fixed sequence of values, cycling when exhausted.
type scriptedRand struct {
	vals []float64
	i    int
}

func (s *scriptedRand) Float64() float64 {
	if len(s.vals) == 0 {
		return 0.5
	}
	v := s.vals[s.i%len(s.vals)]
	s.i++
	return v
}

// quietConfig disables every spawner so tests control the world contents.
func quietConfig() config.RunnerConfig {
	cfg := config.DefaultRunnerConfig()
	cfg.Obstacles.Interval = 0
	cfg.Coins.Interval = 0
	cfg.Hearts.Policy = config.HeartPolicyTimer
	cfg.Hearts.Interval = 0
	return cfg
}

func newQuietWorld() *World {
	return NewWorld(quietConfig(), &scriptedRand{})
}

// placeCoin puts a coin where the player will touch it after this frame's scroll.
func placeCoin(w *World) {
	w.Items = append(w.Items, Item{Kind: ItemCoin, X: w.Player.X + 10 + w.Speed, Y: w.Player.Y + 10, R: 16})
}

func placeHeart(w *World) {
	w.Items = append(w.Items, Item{Kind: ItemHeart, X: w.Player.X + 10 + w.Speed, Y: w.Player.Y + 10, R: 16})
}

func placeSpider(w *World) {
	w.Obstacles = append(w.Obstacles, Obstacle{
		X: w.Player.X + 10 + w.Speed, Y: w.Player.Y + 10, W: 48, H: 48,
		Mode: MotionDrop,
	})
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

// snapshot captures the exported run state for equality checks.
type snapshot struct {
	Player                          Player
	Obstacles, Items                int
	Frame, Score, Coins             int
	Lives, MaxLives                 int
	GameOver                        bool
	Speed, BGScroll                 float64
	Ticks                           int
	NextHeartScore, LastHeartScore  int
	CoinsCollected, HeartsCollected int
	Hits                            int
}

func snap(w *World) snapshot {
	return snapshot{
		Player:          w.Player,
		Obstacles:       len(w.Obstacles),
		Items:           len(w.Items),
		Frame:           w.Frame,
		Score:           w.Score,
		Coins:           w.Coins,
		Lives:           w.Lives,
		MaxLives:        w.MaxLives,
		GameOver:        w.GameOver,
		Speed:           w.Speed,
		BGScroll:        w.BGScroll,
		Ticks:           w.Ticks,
		NextHeartScore:  w.NextHeartScore,
		LastHeartScore:  w.LastHeartScore,
		CoinsCollected:  w.CoinsCollected,
		HeartsCollected: w.HeartsCollected,
		Hits:            w.Hits,
	}
}

func checkInvariants(t *testing.T, w *World) {
	t.Helper()
	if w.Lives < 0 || w.Lives > w.MaxLives || w.MaxLives > 10 || w.MaxLives < 1 {
		t.Fatalf("frame %d: life invariant broken: lives=%d maxLives=%d", w.Frame, w.Lives, w.MaxLives)
	}
	if w.Coins < 0 || w.Coins >= 10 {
		t.Fatalf("frame %d: coin counter out of range: %d", w.Frame, w.Coins)
	}
	if w.Player.JumpsLeft < 0 || w.Player.JumpsLeft > 2 {
		t.Fatalf("frame %d: jumpsLeft out of range: %d", w.Frame, w.Player.JumpsLeft)
	}
}
