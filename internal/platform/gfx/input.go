package gfx

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/spider-run/internal/core"
)

var keyBindings = map[ebiten.Key]core.Action{
	ebiten.KeySpace:   core.ActionJump,
	ebiten.KeyArrowUp: core.ActionJump,
	ebiten.KeyEnter:   core.ActionRestart,
	ebiten.KeyP:       core.ActionPause,
	ebiten.KeyEscape:  core.ActionQuit,
}

// pollInput collects the presses that happened since the previous tick.
// Mouse clicks and touches both count as taps.
func pollInput() core.InputFrame {
	in := core.NewInputFrame()

	for _, k := range inpututil.AppendJustPressedKeys(nil) {
		if a, ok := keyBindings[k]; ok {
			in.Set(a)
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		in.Set(core.ActionTap)
	}
	if len(inpututil.AppendJustPressedTouchIDs(nil)) > 0 {
		in.Set(core.ActionTap)
	}

	return in
}
