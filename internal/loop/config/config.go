// Package config centralizes all tunable game parameters.
//
// Values are expressed in unscaled pixels and ticks. Physics is tick based and
// tuned for a 60Hz cadence: nothing here is normalized by elapsed time.
package config

import "time"

// Physics (pixels per tick, before display scaling)
const (
	Gravity      = 0.6
	PlayerSpeed  = 6.0
	JumpStrength = -14.0
	BulletSpeed  = 9.0
	HazardSpeed  = 4.0
	PatrolSpeed  = 2.0
)

// Player
const (
	InitialHealth      = 3
	PlayerWidth        = 80
	PlayerHeight       = 80
	InvulnerableTicks  = 120
	ShootCooldownTicks = 18
	ShootPoseTicks     = 15
	BlinkTicks         = 5 // Invulnerability blink half-period
)

// Player projectile geometry, relative to the player box.
const (
	BulletWidth   = 12
	BulletHeight  = 6
	BulletOffsetX = 0.8
	BulletOffsetY = 0.4
)

// Enemies
const (
	EnemyAttackPoseTicks = 20
	PatrolRange          = 100

	ShooterInitialTimerMin  = 100
	ShooterInitialTimerSpan = 100
	ShooterTimerMin         = 120
	ShooterTimerSpan        = 60
	ShooterRangeX           = 0.9 // Fraction of viewport width
	ShooterRangeY           = 0.6 // Fraction of viewport height
	HazardSize              = 8

	BossTimerMin       = 150
	BossTimerSpan      = 80
	BossRangeX         = 1.1
	BossSpreadCount    = 5
	BossSpreadAngle    = 0.7853981633974483 // π/4
	BossHazardSpeedMul = 1.1
	BossHazardSize     = 10
)

// Level and camera
const (
	LevelWidth      = 2000
	GroundMargin    = 10
	ScrollLead      = 3.5 // Player sits at viewportWidth/ScrollLead
	ScrollSmoothing = 0.1
)

// Animation
const (
	RunFrameTicks    = 8
	PatrolFrameTicks = 12
)

// Tick rate
const (
	TickRate = 60
	TickTime = time.Second / TickRate
)

// Terminal frontend logical resolution (16:9, matches the canvas aspect).
const (
	TerminalViewWidth  = 1280
	TerminalViewHeight = 720
	MaxTermWidth       = 200
	MaxTermHeight      = 60
)

// Inactivity (SSH sessions)
const (
	InactivityWarnUser       = 90  // Seconds
	InactivityDisconnectUser = 120 // Seconds
	ShutdownDisplaySeconds   = 5
)

// Viewport is the current output size in device pixels and the display-scale
// factor (device pixel ratio) applied to every size-dependent constant.
type Viewport struct {
	Width  float64
	Height float64
	Scale  float64
}

// Tuning holds the scale-dependent values derived from a Viewport.
// It is recomputed whenever the viewport changes.
type Tuning struct {
	Viewport

	Gravity      float64
	PlayerSpeed  float64
	JumpStrength float64
	BulletSpeed  float64
	HazardSpeed  float64
	PatrolSpeed  float64
	PatrolRange  float64
	LevelWidth   float64
	GroundMargin float64
}

// Derive computes the tuning for a viewport. A non-positive scale is treated as 1.
func Derive(v Viewport) Tuning {
	if v.Scale <= 0 {
		v.Scale = 1
	}
	s := v.Scale
	return Tuning{
		Viewport:     v,
		Gravity:      Gravity * s,
		PlayerSpeed:  PlayerSpeed * s,
		JumpStrength: JumpStrength * s,
		BulletSpeed:  BulletSpeed * s,
		HazardSpeed:  HazardSpeed * s,
		PatrolSpeed:  PatrolSpeed * s,
		PatrolRange:  PatrolRange * s,
		LevelWidth:   LevelWidth * s,
		GroundMargin: GroundMargin * s,
	}
}

// Px scales an unscaled length into device pixels.
func (t Tuning) Px(v float64) float64 {
	return v * t.Scale
}

// GroundY returns the top edge at which a box of the given (scaled) height
// rests on the ground line.
func (t Tuning) GroundY(height float64) float64 {
	return t.Height - height - t.GroundMargin
}
