package runner

import (
	"math"
	"strings"
	"testing"

	"github.com/vovakirdan/spider-run/internal/core"
)

func TestDayNightPhase(t *testing.T) {
	if got := DayNightPhase(0, 300); !approx(got, 0.5) {
		t.Errorf("phase at 0 = %v, expected 0.5", got)
	}

	peak := int(math.Round(300 * math.Pi / 2))
	if got := DayNightPhase(peak, 300); got < 0.999 {
		t.Errorf("phase near the sine peak = %v, expected ~1", got)
	}

	trough := int(math.Round(300 * 3 * math.Pi / 2))
	if got := DayNightPhase(trough, 300); got > 0.001 {
		t.Errorf("phase near the sine trough = %v, expected ~0", got)
	}

	for ticks := 0; ticks < 5000; ticks += 7 {
		p := DayNightPhase(ticks, 300)
		if p < 0 || p > 1 {
			t.Fatalf("phase %v out of [0, 1] at %d", p, ticks)
		}
	}

	if got := DayNightPhase(123, 0); got != 1 {
		t.Errorf("zero period should pin to day, got %v", got)
	}
}

func TestRenderHUD(t *testing.T) {
	w := newQuietWorld()
	w.Lives = 1
	scr := core.NewScreen(80, 24)

	Render(scr, w)

	hud := scr.Row(0)
	if !strings.Contains(hud, "Score: 0") {
		t.Errorf("HUD missing score: %q", hud)
	}
	if !strings.Contains(hud, "♥♡♡") {
		t.Errorf("HUD should show 1 of 3 lives: %q", hud)
	}
	if strings.Contains(scr.String(), "GAME OVER") {
		t.Error("game over panel drawn while playing")
	}
}

func TestRenderDrawsEntities(t *testing.T) {
	w := newQuietWorld()
	w.Obstacles = append(w.Obstacles, Obstacle{X: 400, Y: 150, W: 48, H: 48, Mode: MotionDrop})
	w.Items = append(w.Items, Item{Kind: ItemCoin, X: 600, Y: 200, R: 16})
	scr := core.NewScreen(80, 24)

	Render(scr, w)

	out := scr.String()
	for _, r := range []rune{PlayerChar, SpiderChar, ThreadChar, CoinChar, GroundChar, GrassChar} {
		if !strings.ContainsRune(out, r) {
			t.Errorf("render output missing %q", r)
		}
	}
}

func TestRenderGameOver(t *testing.T) {
	w := newQuietWorld()
	w.Lives = 1
	placeSpider(w)
	w.Step(false)
	scr := core.NewScreen(80, 24)

	Render(scr, w)

	out := scr.String()
	if !strings.Contains(out, "GAME OVER") {
		t.Error("expected GAME OVER panel")
	}
	if !strings.Contains(out, "Enter/Tap to restart") {
		t.Error("expected restart hint")
	}
}

func TestRenderDoesNotMutate(t *testing.T) {
	w := newQuietWorld()
	placeCoin(w)
	w.Obstacles = append(w.Obstacles, Obstacle{X: 400, Y: 150, W: 48, H: 48})
	before := snap(w)

	Render(core.NewScreen(80, 24), w)
	Render(core.NewScreen(10, 3), w)

	if after := snap(w); after != before {
		t.Errorf("render changed the world:\n before: %+v\n after:  %+v", before, after)
	}
}
