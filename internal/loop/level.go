package loop

import (
	"github.com/tomz197/gunrunner/internal/loop/config"
	"github.com/tomz197/gunrunner/internal/object"
	"github.com/tomz197/gunrunner/internal/physics"
)

// Level layout in unscaled pixels. Y values are offsets up from the bottom of
// the viewport; enemies stand on the ground line.
var (
	playerSpawn = struct{ X, FromBottom float64 }{100, config.PlayerHeight + config.GroundMargin}

	obstacleLayout = []struct{ X, FromBottom, W, H float64 }{
		{350, 100, 80, 50},
		{650, 160, 120, 80},
		{1000, 80, 60, 60},
	}

	enemyLayout = []struct {
		Kind   object.EnemyKind
		X      float64
		Size   float64
		Health int
	}{
		{object.StationaryShooter, 550, 40, 2},
		{object.Patroller, 850, 45, 1},
		{object.StationaryShooter, 1150, 40, 2},
		{object.Boss, 1600, 80, 15},
	}
)

// Init resets the world and repopulates it from the fixed level layout.
// Every collection is replaced, never reused.
func (w *WorldState) Init() {
	t := w.Tuning
	scaled := t.Px

	w.releaseEffects()
	w.ScrollX = 0
	w.Score = 0
	w.GameOver = false
	w.GameWon = false
	w.Tick = 0
	w.Projectiles = []*object.Projectile{}
	w.Hazards = []*object.Hazard{}
	w.Effects = []*object.Particle{}

	w.Player = object.NewPlayer(
		scaled(playerSpawn.X), t.Height-scaled(playerSpawn.FromBottom),
		scaled(config.PlayerWidth), scaled(config.PlayerHeight),
	)

	w.Obstacles = make([]*object.Obstacle, 0, len(obstacleLayout))
	for _, o := range obstacleLayout {
		w.Obstacles = append(w.Obstacles, object.NewObstacle(physics.NewBox(
			scaled(o.X), t.Height-scaled(o.FromBottom), scaled(o.W), scaled(o.H),
		)))
	}

	w.Enemies = make([]*object.Enemy, 0, len(enemyLayout))
	for _, e := range enemyLayout {
		size := scaled(e.Size)
		box := physics.NewBox(scaled(e.X), t.Height-(t.GroundMargin+size), size, size)
		w.Enemies = append(w.Enemies, object.NewEnemy(e.Kind, box, e.Health, t.PatrolRange, w.rng.Float64))
	}
}
