package object

import (
	"github.com/tomz197/gunrunner/internal/audio"
	"github.com/tomz197/gunrunner/internal/loop/config"
	"github.com/tomz197/gunrunner/internal/physics"
)

// Pose is the player's visual state.
type Pose int

// Poses in ascending display priority.
const (
	PoseIdle Pose = iota
	PoseRunning
	PoseJumping
	PoseShooting
)

func (p Pose) String() string {
	switch p {
	case PoseRunning:
		return "running"
	case PoseJumping:
		return "jumping"
	case PoseShooting:
		return "shooting"
	default:
		return "idle"
	}
}

// Player is the controlled character.
type Player struct {
	physics.Box
	VX, VY      float64
	OnGround    bool
	FacingRight bool

	Health            int
	Invulnerable      bool
	InvulnerableTimer int

	ShootCooldown  int
	Shooting       bool
	ShootPoseTimer int
}

// NewPlayer creates a player at (x, y) with the given scaled size.
func NewPlayer(x, y, w, h float64) *Player {
	return &Player{
		Box:         physics.NewBox(x, y, w, h),
		FacingRight: true,
		Health:      config.InitialHealth,
	}
}

func (p *Player) Kind() Kind { return KindPlayer }

// Update applies intents, integrates motion and resolves ground and obstacle
// contact, then handles jump, shooting and the countdown timers.
func (p *Player) Update(ctx UpdateContext) {
	t := ctx.Tuning
	in := ctx.Intents

	// Both directions cancel out and leave facing untouched.
	p.VX = 0
	if in != nil {
		switch {
		case in.MoveLeft && !in.MoveRight:
			p.VX = -t.PlayerSpeed
			p.FacingRight = false
		case in.MoveRight && !in.MoveLeft:
			p.VX = t.PlayerSpeed
			p.FacingRight = true
		}
	}

	p.X += p.VX
	p.VY += t.Gravity
	p.Y += p.VY
	p.OnGround = false

	if p.X < ctx.ScrollX {
		p.X = ctx.ScrollX
	}

	if groundY := t.GroundY(p.H); p.Y >= groundY && p.VY >= 0 {
		p.Y = groundY
		p.VY = 0
		p.OnGround = true
	}

	// Overlapping obstacles resolve in collection order.
	for _, o := range ctx.Obstacles {
		p.resolveObstacle(o.Box)
	}

	if in != nil && in.JumpPending() && p.OnGround {
		p.VY = t.JumpStrength
		p.OnGround = false
		ctx.play(audio.Jump)
		in.ConsumeJump()
	}

	if p.ShootCooldown > 0 {
		p.ShootCooldown--
	}
	if in != nil && in.ShootPending() && p.ShootCooldown <= 0 {
		p.Fire(ctx)
		p.Shooting = true
		p.ShootPoseTimer = config.ShootPoseTicks
		p.ShootCooldown = config.ShootCooldownTicks
		in.ConsumeShoot()
	}

	if p.ShootPoseTimer > 0 {
		p.ShootPoseTimer--
		if p.ShootPoseTimer <= 0 {
			p.Shooting = false
		}
	}

	if p.Invulnerable {
		p.InvulnerableTimer--
		if p.InvulnerableTimer <= 0 {
			p.Invulnerable = false
		}
	}
}

func (p *Player) resolveObstacle(o physics.Box) {
	hit := physics.ResolveVerticalLanding(p.Box, p.VY, o)
	if !hit.Colliding {
		return
	}

	if hit.FromAbove {
		p.Y = o.Top() - p.H
		p.VY = 0
		p.OnGround = true
		return
	}

	if p.VY < 0 {
		return
	}
	switch {
	case p.VX > 0 && p.Right() > o.Left() && p.Left() < o.Left():
		p.X = o.Left() - p.W
		p.VX = 0
	case p.VX < 0 && p.Left() < o.Right() && p.Right() > o.Right():
		p.X = o.Right()
		p.VX = 0
	}
}

// Fire spawns a bullet from the leading edge and requests the shot sound.
func (p *Player) Fire(ctx UpdateContext) {
	t := ctx.Tuning
	offsetX := p.W * config.BulletOffsetX
	x := p.X + (p.W - offsetX)
	vx := -t.BulletSpeed
	if p.FacingRight {
		x = p.X + offsetX
		vx = t.BulletSpeed
	}
	y := p.Y + p.H*config.BulletOffsetY

	if ctx.Spawner != nil {
		ctx.Spawner.SpawnProjectile(NewProjectile(x, y, t.Px(config.BulletWidth), t.Px(config.BulletHeight), vx))
	}
	ctx.play(audio.Shoot)
}

// TakeDamage removes one health point unless invulnerable, then starts the
// invulnerability window. It reports whether damage was applied.
func (p *Player) TakeDamage() bool {
	if p.Invulnerable {
		return false
	}
	p.Health--
	p.Invulnerable = true
	p.InvulnerableTimer = config.InvulnerableTicks
	return true
}

// Dead reports whether health is exhausted.
func (p *Player) Dead() bool {
	return p.Health <= 0
}

// Pose selects the visual state: Shooting, then Jumping, then Running, then Idle.
func (p *Player) Pose() Pose {
	switch {
	case p.Shooting:
		return PoseShooting
	case !p.OnGround:
		return PoseJumping
	case p.VX != 0:
		return PoseRunning
	default:
		return PoseIdle
	}
}
