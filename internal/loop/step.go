package loop

import (
	"github.com/tomz197/gunrunner/internal/input"
	"github.com/tomz197/gunrunner/internal/physics"
)

// Step advances the world by one tick. It is a no-op once the world has ended.
//
// Order: camera, player, each enemy followed by its contact check, player
// projectiles, hazards, effects, terminal evaluation.
func Step(w *WorldState, in *input.Intents) {
	if w.Player == nil || w.Ended() {
		return
	}
	w.Tick++

	updateScroll(w)

	ctx := w.updateContext(in)
	w.Player.Update(ctx)

	for _, e := range w.Enemies {
		e.Update(ctx)
		if !w.Player.Invulnerable && physics.Intersects(w.Player.Box, e.Box) {
			w.Player.TakeDamage()
		}
	}

	checkProjectileEnemyCollisions(w)
	checkHazardPlayerCollisions(w)
	updateEffects(w)
	w.FlushSpawned()

	if w.Player.Dead() {
		w.GameOver = true
	}
}

// updateEffects ages particles and releases expired ones to the pool.
func updateEffects(w *WorldState) {
	kept := w.Effects[:0]
	for _, p := range w.Effects {
		if p.Update() {
			p.Release()
			continue
		}
		kept = append(kept, p)
	}
	clear(w.Effects[len(kept):])
	w.Effects = kept
}
