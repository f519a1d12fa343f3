package runner

import (
	"math"
	"testing"

	"github.com/vovakirdan/spider-run/internal/config"
)

func TestSpiderSpawnSwing(t *testing.T) {
	cfg := quietConfig()
	cfg.Obstacles.Interval = 70
	// mode, thread, phase, amp, fall
	w := NewWorld(cfg, &scriptedRand{vals: []float64{0.5, 0.25, 0, 0.5, 0.5}})

	for i := 0; i < 69; i++ {
		w.Step(false)
	}
	if len(w.Obstacles) != 0 {
		t.Fatalf("no spider expected before frame 70, got %d", len(w.Obstacles))
	}

	w.Step(false)
	if len(w.Obstacles) != 1 {
		t.Fatalf("expected one spider at frame 70, got %d", len(w.Obstacles))
	}

	o := w.Obstacles[0]
	if o.Mode != MotionSwing {
		t.Errorf("mode = %v, expected swing", o.Mode)
	}
	if !approx(o.Amp, 34) || !approx(o.FallSpeed, 5) {
		t.Errorf("amp=%v fall=%v, expected 34 and 5", o.Amp, o.FallSpeed)
	}
	if o.W != 48 || o.H != 48 {
		t.Errorf("size = %vx%v, expected 48x48", o.W, o.H)
	}

	// Spawned spiders move on their first frame.
	if !approx(o.Phase, 0.08) {
		t.Errorf("phase = %v, expected 0.08", o.Phase)
	}
	if wantY := 140 + math.Sin(0.08)*0.6; !approx(o.Y, wantY) {
		t.Errorf("y = %v, expected %v", o.Y, wantY)
	}
	if wantX := 800 - 5 + math.Sin(0.08*0.8)*0.6; !approx(o.X, wantX) {
		t.Errorf("x = %v, expected %v", o.X, wantX)
	}
}

func TestSpiderSpawnDrop(t *testing.T) {
	cfg := quietConfig()
	cfg.Obstacles.Interval = 70
	w := NewWorld(cfg, &scriptedRand{vals: []float64{0.7, 0.25, 0, 0.5, 0.5}})

	for i := 0; i < 70; i++ {
		w.Step(false)
	}
	if len(w.Obstacles) != 1 {
		t.Fatalf("expected one spider, got %d", len(w.Obstacles))
	}

	o := w.Obstacles[0]
	if o.Mode != MotionDrop {
		t.Errorf("mode = %v, expected drop", o.Mode)
	}
	if !approx(o.Y, 145) || !approx(o.X, 795) {
		t.Errorf("position = (%v, %v), expected (795, 145)", o.X, o.Y)
	}
}

func TestDropClampsAtGround(t *testing.T) {
	w := newQuietWorld()
	w.Obstacles = append(w.Obstacles, Obstacle{X: 500, Y: 300, W: 48, H: 48, Mode: MotionDrop, FallSpeed: 5})

	w.Step(false)
	if got := w.Obstacles[0].Y; got != 302 {
		t.Errorf("y = %v, expected clamp at 302", got)
	}

	w.Step(false)
	if got := w.Obstacles[0].Y; got != 302 {
		t.Errorf("y = %v, expected to stay at 302", got)
	}
}

func TestCoinSpawn(t *testing.T) {
	cfg := quietConfig()
	cfg.Coins.Interval = 180
	w := NewWorld(cfg, &scriptedRand{vals: []float64{0.5}})

	for i := 0; i < 180; i++ {
		w.Step(false)
	}
	if len(w.Items) != 1 {
		t.Fatalf("expected one coin at frame 180, got %d", len(w.Items))
	}

	it := w.Items[0]
	if it.Kind != ItemCoin || it.R != 16 {
		t.Errorf("item = %+v, expected a coin of radius 16", it)
	}
	if !approx(it.Y, 200) || !approx(it.X, 795) {
		t.Errorf("position = (%v, %v), expected (795, 200)", it.X, it.Y)
	}
}

func TestHeartPolicyTimer(t *testing.T) {
	cfg := quietConfig()
	cfg.Hearts.Interval = 1200
	w := NewWorld(cfg, &scriptedRand{vals: []float64{0.5}})

	for i := 0; i < 1199; i++ {
		w.Step(false)
	}
	if len(w.Items) != 0 {
		t.Fatalf("no heart expected before frame 1200, got %d items", len(w.Items))
	}

	w.Step(false)
	if len(w.Items) != 1 || w.Items[0].Kind != ItemHeart {
		t.Fatalf("expected a heart at frame 1200, got %+v", w.Items)
	}
	if !approx(w.Items[0].Y, 190) {
		t.Errorf("heart y = %v, expected 190", w.Items[0].Y)
	}
}

func TestHeartPolicyRandom(t *testing.T) {
	cfg := quietConfig()
	cfg.Hearts.Policy = config.HeartPolicyRandom

	w := NewWorld(cfg, &scriptedRand{vals: []float64{0.9}})
	for i := 0; i < 100; i++ {
		w.Step(false)
	}
	if len(w.Items) != 0 {
		t.Errorf("draws above the chance should never spawn, got %d items", len(w.Items))
	}

	w = NewWorld(cfg, &scriptedRand{vals: []float64{0}})
	w.Step(false)
	if len(w.Items) != 1 || w.Items[0].Kind != ItemHeart {
		t.Errorf("a draw below the chance should spawn a heart, got %+v", w.Items)
	}
}

func gatedWorld() *World {
	cfg := quietConfig()
	cfg.Hearts.Policy = config.HeartPolicyGated
	return NewWorld(cfg, &scriptedRand{vals: []float64{0.5}})
}

func TestHeartPolicyGated(t *testing.T) {
	t.Run("spawns at threshold when hurt", func(t *testing.T) {
		w := gatedWorld()
		w.Lives = 2
		w.Score = 2000

		w.Step(false)
		if len(w.Items) != 1 || w.Items[0].Kind != ItemHeart {
			t.Fatalf("expected a heart, got %+v", w.Items)
		}
		if w.LastHeartScore != 2000 {
			t.Errorf("LastHeartScore = %d, expected 2000", w.LastHeartScore)
		}
		if w.NextHeartScore != 3200 {
			t.Errorf("NextHeartScore = %d, expected 3200", w.NextHeartScore)
		}

		// One heart on screen at a time.
		w.Score = 5000
		w.Step(false)
		if len(w.Items) != 1 {
			t.Errorf("expected no second heart while one is on screen, got %d items", len(w.Items))
		}
	})

	t.Run("below threshold", func(t *testing.T) {
		w := gatedWorld()
		w.Lives = 2
		w.Score = 1999

		w.Step(false)
		if len(w.Items) != 0 {
			t.Errorf("no heart expected below the threshold, got %d items", len(w.Items))
		}
	})

	t.Run("full life", func(t *testing.T) {
		w := gatedWorld()
		w.Score = 50000

		w.Step(false)
		if len(w.Items) != 0 {
			t.Errorf("no heart expected at full life, got %d items", len(w.Items))
		}
	})

	t.Run("pity", func(t *testing.T) {
		w := gatedWorld()
		w.Lives = 1
		w.NextHeartScore = 1_000_000
		w.Score = 5999

		w.Step(false)
		if len(w.Items) != 0 {
			t.Fatalf("pity should wait for the full gap, got %d items", len(w.Items))
		}

		w.Score = 6000
		w.Step(false)
		if len(w.Items) != 1 {
			t.Fatalf("expected a pity heart, got %d items", len(w.Items))
		}
		if w.LastHeartScore != 6000 {
			t.Errorf("LastHeartScore = %d, expected 6000", w.LastHeartScore)
		}
		if w.NextHeartScore != 1_000_000 {
			t.Errorf("NextHeartScore = %d, expected unchanged", w.NextHeartScore)
		}
	})

	t.Run("no pity above one life", func(t *testing.T) {
		w := gatedWorld()
		w.Lives = 2
		w.NextHeartScore = 1_000_000
		w.Score = 9000

		w.Step(false)
		if len(w.Items) != 0 {
			t.Errorf("pity only applies at one life, got %d items", len(w.Items))
		}
	})
}

func TestNextThreshold(t *testing.T) {
	tests := []struct {
		name    string
		current int
		score   int
		growth  float64
		want    int
	}{
		{"first step", 2000, 2000, 1.6, 3200},
		{"already above", 3200, 2000, 1.6, 3200},
		{"catches up", 2000, 10000, 1.6, 13108},
		{"unit growth", 5, 7, 1.0, 8},
		{"zero current", 0, 0, 1.6, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := nextThreshold(tt.current, tt.score, tt.growth); got != tt.want {
				t.Errorf("nextThreshold(%d, %d, %v) = %d, expected %d", tt.current, tt.score, tt.growth, got, tt.want)
			}
		})
	}
}
