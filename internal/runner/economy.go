package runner

import (
	"github.com/vovakirdan/spider-run/internal/config"
	"github.com/vovakirdan/spider-run/internal/core"
)

// hit applies a spider collision. Life never drops below zero; reaching zero
// ends the run.
func (w *World) hit() {
	w.Hits++
	if w.Lives > 0 {
		w.Lives--
	}
	if w.Lives <= 0 {
		w.GameOver = true
	}
}

func (w *World) collect(it Item) {
	switch it.Kind {
	case ItemCoin:
		w.collectCoin()
	case ItemHeart:
		w.collectHeart()
	}
}

// collectCoin adds the coin bonus; every PerLife coins the counter wraps to
// zero and restores one life, never above MaxLives.
func (w *World) collectCoin() {
	w.Score += w.cfg.Coins.Score
	w.Coins++
	w.CoinsCollected++

	if w.Coins >= w.cfg.Coins.PerLife {
		w.Coins = 0
		w.Lives = core.Clamp(w.Lives+1, 0, w.MaxLives)
	}
}

// collectHeart raises the life capacity by one (up to the cap) and fully heals.
func (w *World) collectHeart() {
	w.HeartsCollected++
	w.MaxLives = core.Clamp(w.MaxLives+1, 1, min(w.cfg.Lives.Cap, config.MaxLivesCap))
	w.Lives = w.MaxLives
}
