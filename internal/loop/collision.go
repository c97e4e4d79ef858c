package loop

import (
	"github.com/tomz197/gunrunner/internal/object"
	"github.com/tomz197/gunrunner/internal/physics"
)

// Hit spark tuning, unscaled.
const (
	sparkCount    = 6
	sparkSpeed    = 3.0
	sparkSize     = 4.0
	sparkLifetime = 18
)

// checkProjectileEnemyCollisions moves player bullets and resolves hits.
// A bullet damages at most the first enemy it overlaps and is consumed by it.
// Bullets outside the scrolled viewport are dropped.
func checkProjectileEnemyCollisions(w *WorldState) {
	t := w.Tuning
	kept := w.Projectiles[:0]
	for _, p := range w.Projectiles {
		p.Update()

		if i := firstHit(p.Box, w.Enemies); i >= 0 {
			e := w.Enemies[i]
			e.TakeDamage(1)
			hitX := p.Right()
			if p.VX < 0 {
				hitX = p.Left()
			}
			object.SpawnSparks(hitX, p.CenterY(), sparkCount, t.Px(sparkSpeed), t.Px(sparkSize), sparkLifetime, w, w.rng)
			if e.Dead() {
				removeEnemy(w, i)
			}
			continue
		}

		if p.Visible(w.ScrollX, t.Width) {
			kept = append(kept, p)
		}
	}
	clear(w.Projectiles[len(kept):])
	w.Projectiles = kept
}

func firstHit(b physics.Box, enemies []*object.Enemy) int {
	for i, e := range enemies {
		if physics.Intersects(b, e.Box) {
			return i
		}
	}
	return -1
}

// removeEnemy deletes the enemy at i, preserving order. Removing the boss wins the game.
func removeEnemy(w *WorldState, i int) {
	e := w.Enemies[i]
	if e.Type == object.Boss {
		w.GameWon = true
	}
	w.Score++
	copy(w.Enemies[i:], w.Enemies[i+1:])
	w.Enemies[len(w.Enemies)-1] = nil
	w.Enemies = w.Enemies[:len(w.Enemies)-1]
}

// checkHazardPlayerCollisions moves enemy bullets and resolves player hits.
// A hazard is consumed only when it actually deals damage; while the player is
// invulnerable it passes through.
func checkHazardPlayerCollisions(w *WorldState) {
	t := w.Tuning
	kept := w.Hazards[:0]
	for _, h := range w.Hazards {
		h.Update()

		if !w.Player.Invulnerable && physics.Intersects(w.Player.Box, h.Box) && w.Player.TakeDamage() {
			continue
		}

		if h.Visible(w.ScrollX, t.Width, t.Height) {
			kept = append(kept, h)
		}
	}
	clear(w.Hazards[len(kept):])
	w.Hazards = kept
}
