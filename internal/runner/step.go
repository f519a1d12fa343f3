package runner

import (
	"math"

	"github.com/vovakirdan/spider-run/internal/core"
)

// Step advances the world by one frame. jump is the pending jump intent
// collected since the previous frame. Step does nothing once the game is over.
func (w *World) Step(jump bool) {
	if w.GameOver {
		return
	}

	if jump {
		w.Jump()
	}

	w.applyPhysics()
	w.Frame++
	w.spawn()

	hitbox := w.Player.Hitbox(w.cfg.Player.HitboxScale)
	w.updateObstacles(hitbox)
	// Pickups still apply on the frame a hit ends the run.
	w.updateItems(hitbox)
	w.advanceWorld()
}

// Jump consumes one jump charge and launches the player upward.
// It reports whether the jump happened.
func (w *World) Jump() bool {
	if w.GameOver || w.Player.JumpsLeft <= 0 {
		return false
	}
	w.Player.DY = w.cfg.Physics.JumpImpulse
	w.Player.JumpsLeft--
	return true
}

func (w *World) applyPhysics() {
	p := &w.Player
	p.DY += w.cfg.Physics.Gravity
	p.Y += p.DY

	if ground := w.groundLine(); p.Y >= ground {
		p.Y = ground
		p.DY = 0
		p.JumpsLeft = w.cfg.Player.Jumps
	}
}

// updateObstacles moves every spider, resolves hits and drops spiders that
// were hit or have left the screen.
func (w *World) updateObstacles(hitbox core.Rect) {
	oc := w.cfg.Obstacles
	floor := w.cfg.World.GroundY

	kept := w.Obstacles[:0]
	for _, o := range w.Obstacles {
		o.X -= w.Speed

		switch o.Mode {
		case MotionSwing:
			o.Phase += oc.PhaseStep
			o.Y += math.Sin(o.Phase) * oc.Drift
			o.X += math.Sin(o.Phase*oc.DriftFreq) * oc.Drift
		case MotionDrop:
			o.Y += o.FallSpeed
			if o.Y > floor-o.H {
				o.Y = floor - o.H
			}
		}

		if hitbox.Intersects(o.Rect()) {
			w.hit()
			continue
		}
		if o.X+o.W > 0 {
			kept = append(kept, o)
		}
	}
	w.Obstacles = kept
}

// updateItems moves pickups, applies collected ones and drops off-screen ones.
func (w *World) updateItems(hitbox core.Rect) {
	kept := w.Items[:0]
	for _, it := range w.Items {
		it.X -= w.Speed

		if hitbox.Intersects(it.Rect()) {
			w.collect(it)
			continue
		}
		if it.X+it.R*2 > 0 {
			kept = append(kept, it)
		}
	}
	w.Items = kept
}

func (w *World) advanceWorld() {
	w.Score++
	w.Ticks++
	w.BGScroll = math.Mod(w.BGScroll+w.Speed*w.cfg.World.ScrollFactor, w.cfg.World.Width)
	w.Speed = w.difficulty.Advance(w.Speed, w.Frame)
}
