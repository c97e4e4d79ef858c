package object

import (
	"math"

	"github.com/tomz197/gunrunner/internal/loop/config"
	"github.com/tomz197/gunrunner/internal/physics"
)

// EnemyKind is the closed set of enemy behaviors.
type EnemyKind int

const (
	StationaryShooter EnemyKind = iota // Type A
	Patroller                          // Type B
	Boss                               // Type C
)

func (k EnemyKind) String() string {
	switch k {
	case StationaryShooter:
		return "shooter"
	case Patroller:
		return "patroller"
	case Boss:
		return "boss"
	default:
		return "unknown"
	}
}

// Enemy is a hostile entity. Which fields are live depends on Type.
type Enemy struct {
	physics.Box
	Type EnemyKind

	Health        int
	InitialHealth int

	// Shooter and boss
	ShootTimer float64

	// Patroller
	VX             float64
	Direction      float64 // +1 or -1
	InitialX       float64
	MoveRange      float64
	AnimationFrame int

	// Attack pose
	Shooting    bool
	ActionTimer int
}

// NewEnemy creates an enemy. moveRange is the scaled patrol half-width.
func NewEnemy(kind EnemyKind, b physics.Box, health int, moveRange float64, random func() float64) *Enemy {
	return &Enemy{
		Box:           b,
		Type:          kind,
		Health:        health,
		InitialHealth: health,
		ShootTimer:    config.ShooterInitialTimerMin + random()*config.ShooterInitialTimerSpan,
		Direction:     1,
		InitialX:      b.X,
		MoveRange:     moveRange,
	}
}

func (e *Enemy) Kind() Kind { return KindEnemy }

// Update runs the shared attack-pose countdown and the behavior for Type.
func (e *Enemy) Update(ctx UpdateContext) {
	if e.ActionTimer > 0 {
		e.ActionTimer--
	}
	if e.ActionTimer <= 0 {
		e.Shooting = false
	}

	switch e.Type {
	case StationaryShooter:
		e.updateShooter(ctx)
	case Patroller:
		e.updatePatroller(ctx)
	case Boss:
		e.updateBoss(ctx)
	}
}

func (e *Enemy) updateShooter(ctx UpdateContext) {
	e.ShootTimer--
	p := ctx.Player
	if p == nil || e.ShootTimer > 0 {
		return
	}

	t := ctx.Tuning
	dx := math.Abs(e.CenterX() - p.CenterX())
	dy := math.Abs(e.CenterY() - p.CenterY())
	if dy >= t.Height*config.ShooterRangeY || dx >= t.Width*config.ShooterRangeX {
		return
	}

	angle := physics.AimAngle(e.Box, p.Box)
	e.fire(ctx, angle, t.HazardSpeed, t.Px(config.HazardSize))
	e.ShootTimer = config.ShooterTimerMin + ctx.random()*config.ShooterTimerSpan
	e.enterAttackPose()
}

func (e *Enemy) updatePatroller(ctx UpdateContext) {
	e.VX = ctx.Tuning.PatrolSpeed * e.Direction
	e.X += e.VX
	if math.Abs(e.X-e.InitialX) > e.MoveRange {
		e.Direction = -e.Direction
		e.VX = -e.VX
		e.X += e.VX
	}
	e.AnimationFrame++
}

func (e *Enemy) updateBoss(ctx UpdateContext) {
	e.ShootTimer--
	p := ctx.Player
	if p == nil || e.ShootTimer > 0 {
		return
	}

	t := ctx.Tuning
	if math.Abs(e.CenterX()-p.CenterX()) >= t.Width*config.BossRangeX {
		return
	}

	base := physics.AimAngle(e.Box, p.Box)
	start := base - config.BossSpreadAngle/2
	step := config.BossSpreadAngle / (config.BossSpreadCount - 1)
	speed := t.HazardSpeed * config.BossHazardSpeedMul
	for i := 0; i < config.BossSpreadCount; i++ {
		e.fire(ctx, start+step*float64(i), speed, t.Px(config.BossHazardSize))
	}
	e.ShootTimer = config.BossTimerMin + ctx.random()*config.BossTimerSpan
	e.enterAttackPose()
}

// fire spawns a hazard whose top-left corner sits at the enemy's center.
func (e *Enemy) fire(ctx UpdateContext, angle, speed, size float64) {
	if ctx.Spawner == nil {
		return
	}
	ctx.Spawner.SpawnHazard(NewHazard(e.CenterX(), e.CenterY(), size, size,
		math.Cos(angle)*speed, math.Sin(angle)*speed))
}

func (e *Enemy) enterAttackPose() {
	e.Shooting = true
	e.ActionTimer = config.EnemyAttackPoseTicks
}

// TakeDamage subtracts amount from health. Health may go negative.
func (e *Enemy) TakeDamage(amount int) {
	e.Health -= amount
}

// Dead reports whether the enemy should be removed.
func (e *Enemy) Dead() bool {
	return e.Health <= 0
}

// HealthRatio returns remaining health as a fraction of the initial health, floored at 0.
func (e *Enemy) HealthRatio() float64 {
	if e.InitialHealth <= 0 {
		return 0
	}
	return math.Max(0, float64(e.Health)/float64(e.InitialHealth))
}

// FacingLeft reports whether a patroller is walking left.
func (e *Enemy) FacingLeft() bool {
	return e.Type == Patroller && e.Direction < 0
}
