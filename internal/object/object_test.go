package object

import (
	"math/rand"

	"github.com/tomz197/gunrunner/internal/input"
	"github.com/tomz197/gunrunner/internal/loop/config"
)

// collector records spawned objects.
type collector struct {
	projectiles []*Projectile
	hazards     []*Hazard
	effects     []*Particle
}

func (c *collector) SpawnProjectile(p *Projectile) { c.projectiles = append(c.projectiles, p) }
func (c *collector) SpawnHazard(h *Hazard)         { c.hazards = append(c.hazards, h) }
func (c *collector) SpawnEffect(p *Particle)       { c.effects = append(c.effects, p) }

func testTuning() config.Tuning {
	return config.Derive(config.Viewport{Width: 1280, Height: 720, Scale: 1})
}

func newContext(p *Player, in *input.Intents, sp Spawner) UpdateContext {
	return UpdateContext{
		Tuning:  testTuning(),
		Intents: in,
		Player:  p,
		Spawner: sp,
		Rand:    rand.New(rand.NewSource(1)),
	}
}

// groundedPlayer returns a player resting on the ground at x.
func groundedPlayer(x float64) *Player {
	t := testTuning()
	p := NewPlayer(x, 0, config.PlayerWidth, config.PlayerHeight)
	p.Y = t.GroundY(p.H)
	p.OnGround = true
	return p
}
