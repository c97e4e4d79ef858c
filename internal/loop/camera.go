package loop

import (
	"github.com/tomz197/gunrunner/internal/loop/config"
	"github.com/tomz197/gunrunner/internal/physics"
)

// ScrollBounds returns the valid scroll range for the tuning.
// The upper bound is never below zero, even when the viewport is wider than the level.
func ScrollBounds(t config.Tuning) (lo, hi float64) {
	return 0, max(0, t.LevelWidth-t.Width)
}

// ScrollTarget returns the clamped scroll position that places the player at
// the lead position of the viewport.
func ScrollTarget(playerX float64, t config.Tuning) float64 {
	lo, hi := ScrollBounds(t)
	return physics.Clamp(playerX-t.Width/config.ScrollLead, lo, hi)
}

// updateScroll eases the camera toward its target. The result is clamped again
// so a viewport change can never leave the camera out of range.
func updateScroll(w *WorldState) {
	target := ScrollTarget(w.Player.X, w.Tuning)
	next := w.ScrollX + (target-w.ScrollX)*config.ScrollSmoothing
	lo, hi := ScrollBounds(w.Tuning)
	w.ScrollX = physics.Clamp(next, lo, hi)
}
