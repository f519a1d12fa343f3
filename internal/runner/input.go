package runner

import "github.com/vovakirdan/spider-run/internal/core"

// Intent is what one frame of input asks of the simulation.
type Intent struct {
	Jump    bool
	Restart bool
}

// ResolveIntent maps a frame's actions onto an intent. The jump key and taps
// jump while playing; the restart key and taps restart after game over.
func ResolveIntent(in core.InputFrame, gameOver bool) Intent {
	if gameOver {
		return Intent{Restart: in.Has(core.ActionRestart) || in.Has(core.ActionTap)}
	}
	return Intent{Jump: in.Has(core.ActionJump) || in.Has(core.ActionTap)}
}
