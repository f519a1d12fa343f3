package gfx

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/spider-run/internal/runner"
)

var (
	groundColor   = color.RGBA{0x2e, 0x6b, 0x2e, 0xff}
	threadColor   = color.RGBA{0x22, 0x22, 0x22, 0xff}
	uiTextColor   = color.Black
	pipColor      = color.RGBA{0xe6, 0x4b, 0x4b, 0xff}
	pipSlotColor  = color.NRGBA{230, 75, 75, 64}
	overlayColor  = color.NRGBA{0, 0, 0, 153}
	errorColor    = color.RGBA{0xff, 0, 0, 0xff}
	pausedOverlay = color.NRGBA{0, 0, 0, 90}
)

// HUD layout in logical pixels.
const (
	pipBaseX   = 200
	pipSpacing = 18
	pipY       = 20
	pipRadius  = 7
)

// drawWorld renders one frame: background blend, ground, player, spiders
// with their threads, pickups, HUD and the game-over panel. It only reads w.
func drawWorld(dst *ebiten.Image, w *runner.World, sp *Sprites) {
	cfg := w.Config()
	width, height := float32(cfg.World.Width), float32(cfg.World.Height)

	drawBackground(dst, w, sp)

	ground := float32(cfg.World.GroundY)
	vector.DrawFilledRect(dst, 0, ground, width, height-ground, groundColor, false)

	p := w.Player
	drawSprite(dst, sp.Player, p.X, p.Y, p.W, p.H)

	for _, o := range w.Obstacles {
		cx := float32(o.X + o.W/2)
		vector.StrokeLine(dst, cx, 0, cx, float32(o.Y), 1, threadColor, false)
		drawSprite(dst, sp.Spider, o.X, o.Y, o.W, o.H)
	}

	for _, it := range w.Items {
		img := sp.Coin
		if it.Kind == runner.ItemHeart {
			img = sp.Heart
		}
		drawSprite(dst, img, it.X, it.Y, it.R*2, it.R*2)
	}

	drawHUD(dst, w)

	if w.GameOver {
		vector.DrawFilledRect(dst, 0, 0, width, height, overlayColor, false)
		drawText(dst, "GAME OVER", int(width)/2-110, int(height)/2, 3, color.White)
		drawText(dst, "Enter/Tap to restart", int(width)/2-120, int(height)/2+34, 1.5, color.White)
	}
}

// drawBackground tiles two copies of each background horizontally and
// blends the night layer over the day layer with alpha 1-phase.
func drawBackground(dst *ebiten.Image, w *runner.World, sp *Sprites) {
	cfg := w.Config().World
	phase := runner.DayNightPhase(w.Ticks, cfg.DayPeriod)
	x1 := -w.BGScroll
	x2 := x1 + cfg.Width

	for _, x := range []float64{x1, x2} {
		drawSprite(dst, sp.BackgroundDay, x, 0, cfg.Width, cfg.Height)
	}
	for _, x := range []float64{x1, x2} {
		drawSpriteAlpha(dst, sp.BackgroundNight, x, 0, cfg.Width, cfg.Height, float32(1-phase))
	}
}

func drawHUD(dst *ebiten.Image, w *runner.World) {
	cfg := w.Config()
	drawText(dst, fmt.Sprintf("Score: %d", w.Score), 12, 26, 1.4, uiTextColor)
	drawText(dst, fmt.Sprintf("Coins: %d/%d", w.Coins, cfg.Coins.PerLife), 12, 48, 1.4, uiTextColor)

	for i := 0; i < w.MaxLives; i++ {
		x := float32(pipBaseX + i*pipSpacing)
		vector.DrawFilledCircle(dst, x, pipY, pipRadius, pipSlotColor, true)
		if i < w.Lives {
			vector.DrawFilledCircle(dst, x, pipY, pipRadius, pipColor, true)
		}
	}

	level := fmt.Sprintf("Lv %d", w.Level())
	drawText(dst, level, int(cfg.World.Width)-60, 26, 1.4, uiTextColor)
}

// drawPaused dims the frame and shows the pause hint.
func drawPaused(dst *ebiten.Image, width, height float32) {
	vector.DrawFilledRect(dst, 0, 0, width, height, pausedOverlay, false)
	drawText(dst, "PAUSED", int(width)/2-60, int(height)/2, 3, color.White)
	drawText(dst, "Press P to resume", int(width)/2-90, int(height)/2+34, 1.5, color.White)
}

// drawLoadError is the only frame shown when the sprites failed to load.
func drawLoadError(dst *ebiten.Image, err error) {
	drawText(dst, "Asset load error. Check file paths.", 10, 24, 1.2, errorColor)
	ebitenutil.DebugPrintAt(dst, err.Error(), 10, 40)
}

// drawSprite draws img stretched to the w x h box at (x, y).
func drawSprite(dst, img *ebiten.Image, x, y, w, h float64) {
	drawSpriteAlpha(dst, img, x, y, w, h, 1)
}

func drawSpriteAlpha(dst, img *ebiten.Image, x, y, w, h float64, alpha float32) {
	if img == nil || alpha <= 0 {
		return
	}
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w/float64(b.Dx()), h/float64(b.Dy()))
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleAlpha(alpha)
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(img, op)
}

// drawText draws s with its baseline at (x, y), scaled up from the 7x13 face.
func drawText(dst *ebiten.Image, s string, x, y int, scale float64, clr color.Color) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(clr)
	text.DrawWithOptions(dst, s, basicfont.Face7x13, op)
}
