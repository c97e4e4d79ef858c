// Package loop owns the world state, the per-tick simulation step and the
// session lifecycle that drives it.
package loop

import (
	"math/rand"

	"github.com/tomz197/gunrunner/internal/audio"
	"github.com/tomz197/gunrunner/internal/input"
	"github.com/tomz197/gunrunner/internal/loop/config"
	"github.com/tomz197/gunrunner/internal/object"
)

// Outcome is the terminal result of a play session.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeGameOver
	OutcomeGameWon
)

func (o Outcome) String() string {
	switch o {
	case OutcomeGameOver:
		return "game over"
	case OutcomeGameWon:
		return "victory"
	default:
		return "none"
	}
}

// WorldState holds every entity of one play session plus the camera and the
// terminal flags. Collections are replaced wholesale by Init.
type WorldState struct {
	Player      *object.Player
	Enemies     []*object.Enemy
	Projectiles []*object.Projectile
	Hazards     []*object.Hazard
	Obstacles   []*object.Obstacle
	Effects     []*object.Particle
	toSpawn     []*object.Particle // Effects to add after the current step

	ScrollX  float64
	Score    int
	GameOver bool
	GameWon  bool
	Tick     int

	Tuning config.Tuning

	rng    *rand.Rand
	sounds audio.Player
}

// NewWorldState creates an empty world for the viewport. A nil rng uses a
// time-independent default seed; a nil sounds player is silent.
func NewWorldState(v config.Viewport, rng *rand.Rand, sounds audio.Player) *WorldState {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	if sounds == nil {
		sounds = audio.Nop{}
	}
	return &WorldState{
		Tuning: config.Derive(v),
		rng:    rng,
		sounds: sounds,
	}
}

// SetViewport recomputes every size-dependent value. Existing entities keep
// their geometry until the next Init.
func (w *WorldState) SetViewport(v config.Viewport) {
	w.Tuning = config.Derive(v)
}

// SpawnProjectile adds a player bullet. It takes part in the current step.
// Implements object.Spawner.
func (w *WorldState) SpawnProjectile(p *object.Projectile) {
	w.Projectiles = append(w.Projectiles, p)
}

// SpawnHazard adds an enemy bullet. It takes part in the current step.
func (w *WorldState) SpawnHazard(h *object.Hazard) {
	w.Hazards = append(w.Hazards, h)
}

// SpawnEffect queues a particle to be added after the current step.
func (w *WorldState) SpawnEffect(p *object.Particle) {
	w.toSpawn = append(w.toSpawn, p)
}

// FlushSpawned adds all queued effects and clears the queue.
func (w *WorldState) FlushSpawned() {
	w.Effects = append(w.Effects, w.toSpawn...)
	clear(w.toSpawn)
	w.toSpawn = w.toSpawn[:0]
}

// Ended reports whether a terminal flag is set.
func (w *WorldState) Ended() bool {
	return w.GameOver || w.GameWon
}

// Outcome returns the terminal result. Victory wins over defeat when both
// flags were raised on the same tick.
func (w *WorldState) Outcome() Outcome {
	switch {
	case w.GameWon:
		return OutcomeGameWon
	case w.GameOver:
		return OutcomeGameOver
	default:
		return OutcomeNone
	}
}

// Boss returns the boss enemy, or nil once it has been removed.
func (w *WorldState) Boss() *object.Enemy {
	for _, e := range w.Enemies {
		if e.Type == object.Boss {
			return e
		}
	}
	return nil
}

func (w *WorldState) updateContext(in *input.Intents) object.UpdateContext {
	return object.UpdateContext{
		Tuning:    w.Tuning,
		Intents:   in,
		ScrollX:   w.ScrollX,
		Player:    w.Player,
		Obstacles: w.Obstacles,
		Spawner:   w,
		Sounds:    w.sounds,
		Rand:      w.rng,
	}
}

func (w *WorldState) releaseEffects() {
	for _, p := range w.Effects {
		p.Release()
	}
	for _, p := range w.toSpawn {
		p.Release()
	}
	w.Effects = nil
	w.toSpawn = nil
}
