package runner

import (
	"math"

	"github.com/vovakirdan/spider-run/internal/config"
)

// spawn emits the spiders and pickups due on the current frame.
func (w *World) spawn() {
	if every := w.cfg.Obstacles.Interval; every > 0 && w.Frame%every == 0 {
		w.spawnSpider()
	}
	if every := w.cfg.Coins.Interval; every > 0 && w.Frame%every == 0 {
		w.spawnCoin()
	}
	if w.heartDue() {
		w.spawnHeart()
	}
}

// spawnSpider draws, in order: motion mode, thread length, swing phase,
// swing amplitude and fall speed. All five are drawn for every spider so the
// random sequence does not depend on the chosen mode.
func (w *World) spawnSpider() {
	oc := w.cfg.Obstacles

	mode := MotionDrop
	if w.rng.Float64() < oc.SwingChance {
		mode = MotionSwing
	}
	thread := oc.MinThread + math.Floor(w.rng.Float64()*oc.ThreadRange)
	phase := w.rng.Float64() * math.Pi * 2
	amp := oc.MinAmp + w.rng.Float64()*oc.AmpRange
	fall := oc.MinFall + w.rng.Float64()*oc.FallRange

	w.Obstacles = append(w.Obstacles, Obstacle{
		X:         w.cfg.World.Width,
		Y:         thread,
		W:         oc.Size,
		H:         oc.Size,
		Mode:      mode,
		Phase:     phase,
		Amp:       amp,
		FallSpeed: fall,
	})
}

func (w *World) spawnCoin() {
	cc := w.cfg.Coins
	w.Items = append(w.Items, Item{
		Kind: ItemCoin,
		X:    w.cfg.World.Width,
		Y:    cc.BaseY - w.rng.Float64()*cc.YRange,
		R:    cc.Radius,
	})
}

func (w *World) spawnHeart() {
	hc := w.cfg.Hearts
	w.Items = append(w.Items, Item{
		Kind: ItemHeart,
		X:    w.cfg.World.Width,
		Y:    hc.BaseY - w.rng.Float64()*hc.YRange,
		R:    hc.Radius,
	})

	if hc.Policy == config.HeartPolicyGated {
		w.LastHeartScore = w.Score
		w.NextHeartScore = nextThreshold(w.NextHeartScore, w.Score, hc.Growth)
	}
}

// heartDue reports whether the configured heart policy emits a heart this frame.
func (w *World) heartDue() bool {
	hc := w.cfg.Hearts

	switch hc.Policy {
	case config.HeartPolicyTimer:
		return hc.Interval > 0 && w.Frame%hc.Interval == 0

	case config.HeartPolicyRandom:
		return w.rng.Float64() < hc.Chance

	case config.HeartPolicyGated:
		if w.heartOnScreen() {
			return false
		}
		if w.Lives < w.MaxLives && w.Score >= w.NextHeartScore {
			return true
		}
		// Pity: critically low and no heart for a long stretch.
		return hc.PityGap > 0 && w.Lives == 1 && w.Score-w.LastHeartScore >= hc.PityGap
	}

	return false
}

// nextThreshold grows the threshold geometrically until it lies above score,
// so a long stretch at full life cannot queue up back-to-back hearts.
func nextThreshold(current, score int, growth float64) int {
	next := current
	if next < 1 {
		next = 1
	}
	for next <= score {
		grown := int(math.Ceil(float64(next) * growth))
		if grown <= next {
			grown = next + 1
		}
		next = grown
	}
	return next
}
