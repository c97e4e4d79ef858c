// Package object holds the world's entities and their per-tick behavior.
//
// Entities are plain structs tagged by Kind. Shared capability is expressed by
// the Entity interface; per-kind behavior is selected by explicit switches.
package object

import (
	"math/rand"

	"github.com/tomz197/gunrunner/internal/audio"
	"github.com/tomz197/gunrunner/internal/input"
	"github.com/tomz197/gunrunner/internal/loop/config"
	"github.com/tomz197/gunrunner/internal/physics"
)

// Kind tags an entity variant.
type Kind int

const (
	KindPlayer Kind = iota
	KindEnemy
	KindProjectile
	KindHazard
	KindObstacle
	KindParticle
)

func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindEnemy:
		return "enemy"
	case KindProjectile:
		return "projectile"
	case KindHazard:
		return "hazard"
	case KindObstacle:
		return "obstacle"
	case KindParticle:
		return "particle"
	default:
		return "unknown"
	}
}

// Entity is anything positioned and drawable in the world.
type Entity interface {
	Kind() Kind
	Bounds() physics.Box
}

// Spawner allows objects to spawn new objects during update.
type Spawner interface {
	SpawnProjectile(p *Projectile)
	SpawnHazard(h *Hazard)
	SpawnEffect(p *Particle)
}

// UpdateContext provides all the information an object needs during update.
type UpdateContext struct {
	Tuning    config.Tuning
	Intents   *input.Intents
	ScrollX   float64
	Player    *Player
	Obstacles []*Obstacle
	Spawner   Spawner
	Sounds    audio.Player
	Rand      *rand.Rand
}

func (ctx UpdateContext) play(s audio.Sound) {
	if ctx.Sounds != nil {
		ctx.Sounds.Play(s)
	}
}

func (ctx UpdateContext) random() float64 {
	if ctx.Rand == nil {
		return rand.Float64()
	}
	return ctx.Rand.Float64()
}

// Releasable is implemented by pooled objects that can be returned to a pool.
type Releasable interface {
	Release()
}

// ShouldRenderDimmed reports whether an invulnerable entity with the given
// remaining ticks is in the dimmed half of its blink cycle.
func ShouldRenderDimmed(remainingTicks int) bool {
	if remainingTicks <= 0 {
		return false
	}
	return (remainingTicks/config.BlinkTicks)%2 == 0
}
