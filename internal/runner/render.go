package runner

import (
	"fmt"
	"math"

	"github.com/vovakirdan/spider-run/internal/core"
)

// Terminal glyphs.
const (
	GroundChar = '▓'
	GrassChar  = '▀'
	PlayerChar = '█'
	SpiderChar = '▒'
	SpiderFace = 'ж'
	ThreadChar = '│'
	CoinChar   = '●'
	HeartChar  = '♥'
	PipFull    = '♥'
	PipEmpty   = '♡'
	StarChar   = '·'
	CloudChar  = '≈'
)

// DayNightPhase returns the day weight in [0, 1] for the given tick count:
// 1 is full day, 0 is full night. The night layer is drawn with alpha 1-phase.
func DayNightPhase(ticks int, period float64) float64 {
	if period <= 0 {
		return 1
	}
	return (math.Sin(float64(ticks)/period) + 1) / 2
}

// viewport maps world units onto screen cells. Row 0 is reserved for the HUD.
type viewport struct {
	sx, sy float64
	top    int
}

func newViewport(dst *core.Screen, w *World) viewport {
	wc := w.cfg.World
	rows := dst.Height() - 1
	if rows < 1 {
		rows = 1
	}
	return viewport{
		sx:  float64(dst.Width()) / wc.Width,
		sy:  float64(rows) / wc.Height,
		top: 1,
	}
}

func (v viewport) col(x float64) int { return int(math.Floor(x * v.sx)) }
func (v viewport) row(y float64) int { return v.top + int(math.Floor(y*v.sy)) }

// cells converts a world rectangle to a cell rectangle at least one cell in size.
func (v viewport) cells(r core.Rect) (x, y, w, h int) {
	x, y = v.col(r.X), v.row(r.Y)
	w = core.Max(1, v.col(r.Right())-x)
	h = core.Max(1, v.row(r.Bottom())-y)
	return x, y, w, h
}

// Render draws the world into a terminal cell buffer. It only reads w.
func Render(dst *core.Screen, w *World) {
	dst.Clear()
	v := newViewport(dst, w)

	drawSky(dst, w, v)
	drawGround(dst, w, v)
	drawPlayer(dst, w, v)
	drawSpiders(dst, w, v)
	drawItems(dst, w, v)
	drawHUD(dst, w)

	if w.GameOver {
		drawGameOver(dst, w)
	}
}

// drawSky scatters a scrolling pattern whose look follows the day/night
// phase: clouds by day, stars by night, with a mixed band at dusk.
func drawSky(dst *core.Screen, w *World, v viewport) {
	phase := DayNightPhase(w.Ticks, w.cfg.World.DayPeriod)
	groundRow := v.row(w.cfg.World.GroundY)
	width := dst.Width()
	if width == 0 {
		return
	}
	offset := v.col(w.BGScroll)

	for y := v.top; y < groundRow; y++ {
		for x := 0; x < width; x++ {
			h := cellHash((x+offset)%width, y)
			switch {
			case phase < 0.5 && h%13 == 0:
				c := core.ColorGray
				if phase < 0.2 {
					c = core.ColorBrightWhite
				}
				dst.SetColored(x, y, StarChar, c)
			case phase >= 0.5 && h%31 == 0 && y < groundRow/2+1:
				dst.SetColored(x, y, CloudChar, core.ColorSky)
			}
		}
	}
}

func cellHash(x, y int) uint32 {
	h := uint32(x)*374761393 + uint32(y)*668265263
	h = (h ^ (h >> 13)) * 1274126177
	return h ^ (h >> 16)
}

func drawGround(dst *core.Screen, w *World, v viewport) {
	top := v.row(w.cfg.World.GroundY)
	dst.DrawHLine(0, top, dst.Width(), GrassChar, core.ColorGreen)
	dst.FillRect(0, top+1, dst.Width(), dst.Height()-top-1, GroundChar, core.ColorGreen)
}

func drawPlayer(dst *core.Screen, w *World, v viewport) {
	x, y, cw, ch := v.cells(w.Player.Rect())
	dst.FillRect(x, y, cw, ch, PlayerChar, core.ColorBrightYellow)
}

func drawSpiders(dst *core.Screen, w *World, v viewport) {
	for _, o := range w.Obstacles {
		x, y, cw, ch := v.cells(o.Rect())
		threadX := v.col(o.X + o.W/2)
		dst.DrawVLine(threadX, v.top, y-v.top, ThreadChar, core.ColorDarkGray)
		dst.FillRect(x, y, cw, ch, SpiderChar, core.ColorRed)
		dst.SetColored(x+cw/2, y+ch/2, SpiderFace, core.ColorBrightRed)
	}
}

func drawItems(dst *core.Screen, w *World, v viewport) {
	for _, it := range w.Items {
		cx, cy := it.Rect().Center()
		switch it.Kind {
		case ItemCoin:
			dst.SetColored(v.col(cx), v.row(cy), CoinChar, core.ColorYellow)
		case ItemHeart:
			dst.SetColored(v.col(cx), v.row(cy), HeartChar, core.ColorBrightRed)
		}
	}
}

func drawHUD(dst *core.Screen, w *World) {
	text := fmt.Sprintf(" Score: %d  Coins: %d/%d ", w.Score, w.Coins, w.cfg.Coins.PerLife)
	dst.DrawText(1, 0, text)

	x := len(text) + 2
	for i := 0; i < w.MaxLives; i++ {
		if i < w.Lives {
			dst.SetColored(x+i, 0, PipFull, core.ColorBrightRed)
		} else {
			dst.SetColored(x+i, 0, PipEmpty, core.ColorRed)
		}
	}

	level := fmt.Sprintf(" Lv %d  Spd %.1f ", w.Level(), w.Speed)
	dst.DrawTextColored(dst.Width()-len(level)-1, 0, level, core.ColorGray)
}

// drawGameOver dims the whole screen and draws the centered panel.
func drawGameOver(dst *core.Screen, w *World) {
	for y := 0; y < dst.Height(); y++ {
		for x := 0; x < dst.Width(); x++ {
			dst.SetColored(x, y, dst.Get(x, y), core.ColorDarkGray)
		}
	}
	DrawMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Enter/Tap to restart", w.Score))
}

// DrawMessage draws a boxed two-line message in the center of the screen.
func DrawMessage(dst *core.Screen, title, subtitle string) {
	boxW := core.Max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.FillRect(boxX, boxY, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH, core.ColorBrightWhite)
	dst.DrawTextCentered(boxY+1, title, core.ColorBrightWhite)
	dst.DrawTextCentered(boxY+3, subtitle, core.ColorWhite)
}
