package object

import (
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/tomz197/gunrunner/internal/audio"
	"github.com/tomz197/gunrunner/internal/audio/mocks"
	"github.com/tomz197/gunrunner/internal/input"
	"github.com/tomz197/gunrunner/internal/loop/config"
	"github.com/tomz197/gunrunner/internal/physics"
)

func TestPlayerLeftClampAtWorldEdge(t *testing.T) {
	p := groundedPlayer(0)
	in := &input.Intents{MoveLeft: true}

	p.Update(newContext(p, in, nil))

	if p.X != 0 {
		t.Errorf("expected x clamped to 0, got %v", p.X)
	}
	if p.FacingRight {
		t.Error("expected facingRight=false")
	}
}

func TestPlayerBothDirectionsCancel(t *testing.T) {
	p := groundedPlayer(200)
	in := &input.Intents{MoveLeft: true, MoveRight: true}

	p.Update(newContext(p, in, nil))

	if p.X != 200 || p.VX != 0 {
		t.Errorf("expected no horizontal motion, got x=%v vx=%v", p.X, p.VX)
	}
	if !p.FacingRight {
		t.Error("expected facing unchanged")
	}
}

func TestPlayerMovesRight(t *testing.T) {
	p := groundedPlayer(200)
	p.FacingRight = false
	in := &input.Intents{MoveRight: true}

	p.Update(newContext(p, in, nil))

	if p.X != 200+config.PlayerSpeed {
		t.Errorf("expected x=%v, got %v", 200+config.PlayerSpeed, p.X)
	}
	if !p.FacingRight {
		t.Error("expected facingRight=true")
	}
}

func TestPlayerSettlesOnGround(t *testing.T) {
	p := groundedPlayer(200)
	ground := p.Y

	for i := 0; i < 10; i++ {
		p.Update(newContext(p, &input.Intents{}, nil))
	}

	if p.Y != ground || !p.OnGround || p.VY != 0 {
		t.Errorf("expected resting on ground y=%v, got y=%v onGround=%v vy=%v", ground, p.Y, p.OnGround, p.VY)
	}
}

func TestPlayerJump(t *testing.T) {
	ctrl := gomock.NewController(t)
	sounds := mocks.NewMockPlayer(ctrl)
	sounds.EXPECT().Play(audio.Jump).Times(1)

	p := groundedPlayer(200)
	in := &input.Intents{}
	in.TriggerJump()
	ctx := newContext(p, in, nil)
	ctx.Sounds = sounds

	p.Update(ctx)

	if p.VY != config.JumpStrength {
		t.Errorf("expected vy=%v, got %v", config.JumpStrength, p.VY)
	}
	if p.OnGround {
		t.Error("expected airborne after jump")
	}
	if in.JumpPending() {
		t.Error("expected jump intent consumed")
	}
	if p.Pose() != PoseJumping {
		t.Errorf("expected jumping pose, got %v", p.Pose())
	}

	// Airborne: a new jump request stays latched.
	in.TriggerJump()
	p.Update(ctx)
	if !in.JumpPending() {
		t.Error("expected jump to stay pending while airborne")
	}
}

func TestPlayerShootCooldown(t *testing.T) {
	ctrl := gomock.NewController(t)
	sounds := mocks.NewMockPlayer(ctrl)
	sounds.EXPECT().Play(audio.Shoot).Times(2)

	p := groundedPlayer(200)
	in := &input.Intents{}
	spawned := &collector{}
	ctx := newContext(p, in, spawned)
	ctx.Sounds = sounds

	in.TriggerShoot()
	p.Update(ctx)
	if len(spawned.projectiles) != 1 {
		t.Fatalf("expected 1 projectile, got %d", len(spawned.projectiles))
	}
	if !p.Shooting || p.Pose() != PoseShooting {
		t.Error("expected shooting pose")
	}

	// Cooldown blocks the next shot until it drains.
	in.TriggerShoot()
	ticks := 0
	for len(spawned.projectiles) == 1 {
		p.Update(ctx)
		ticks++
		if ticks > 100 {
			t.Fatal("second shot never fired")
		}
	}
	if ticks != config.ShootCooldownTicks {
		t.Errorf("expected second shot after %d ticks, got %d", config.ShootCooldownTicks, ticks)
	}
}

func TestPlayerShootingPoseExpires(t *testing.T) {
	p := groundedPlayer(200)
	in := &input.Intents{}
	ctx := newContext(p, in, &collector{})

	in.TriggerShoot()
	p.Update(ctx)
	for i := 0; i < config.ShootPoseTicks; i++ {
		p.Update(ctx)
	}
	if p.Shooting {
		t.Error("expected shooting pose cleared")
	}
	if p.Pose() != PoseIdle {
		t.Errorf("expected idle pose, got %v", p.Pose())
	}
}

func TestPlayerFireGeometry(t *testing.T) {
	p := groundedPlayer(100)
	spawned := &collector{}
	ctx := newContext(p, &input.Intents{}, spawned)

	p.Fire(ctx)
	p.FacingRight = false
	p.Fire(ctx)

	right, left := spawned.projectiles[0], spawned.projectiles[1]
	if right.X != 100+80*0.8 || right.VX != config.BulletSpeed {
		t.Errorf("unexpected right shot %+v", right)
	}
	if left.X != 100+80*(1-0.8) || left.VX != -config.BulletSpeed {
		t.Errorf("unexpected left shot %+v", left)
	}
	if right.Y != p.Y+80*0.4 || right.W != config.BulletWidth || right.H != config.BulletHeight {
		t.Errorf("unexpected bullet box %+v", right.Box)
	}
}

func TestPlayerTakeDamage(t *testing.T) {
	p := groundedPlayer(0)

	if !p.TakeDamage() {
		t.Fatal("expected damage applied")
	}
	if p.Health != config.InitialHealth-1 || !p.Invulnerable || p.InvulnerableTimer != config.InvulnerableTicks {
		t.Errorf("unexpected state after hit: %+v", p)
	}
	for i := 0; i < 5; i++ {
		if p.TakeDamage() {
			t.Error("expected no damage while invulnerable")
		}
	}
	if p.Health != config.InitialHealth-1 {
		t.Errorf("expected health %d, got %d", config.InitialHealth-1, p.Health)
	}
}

func TestPlayerInvulnerabilityExpires(t *testing.T) {
	p := groundedPlayer(200)
	p.TakeDamage()
	ctx := newContext(p, &input.Intents{}, nil)
	for i := 0; i < config.InvulnerableTicks; i++ {
		p.Update(ctx)
	}
	if p.Invulnerable {
		t.Error("expected invulnerability to expire")
	}
	if !p.TakeDamage() {
		t.Error("expected damage after expiry")
	}
}

func TestPlayerObstacleCollision(t *testing.T) {
	tuning := testTuning()
	obstacle := NewObstacle(physics.NewBox(300, tuning.Height-100, 80, 50))

	t.Run("lands on top", func(t *testing.T) {
		p := NewPlayer(310, obstacle.Top()-config.PlayerHeight-2, config.PlayerWidth, config.PlayerHeight)
		p.VY = 3
		ctx := newContext(p, &input.Intents{}, nil)
		ctx.Obstacles = []*Obstacle{obstacle}

		p.Update(ctx)

		if p.Bottom() != obstacle.Top() || !p.OnGround || p.VY != 0 {
			t.Errorf("expected landing on obstacle, got y=%v onGround=%v vy=%v", p.Y, p.OnGround, p.VY)
		}
	})

	t.Run("blocked from the left", func(t *testing.T) {
		p := groundedPlayer(obstacle.Left() - config.PlayerWidth - 2)
		ctx := newContext(p, &input.Intents{MoveRight: true}, nil)
		ctx.Obstacles = []*Obstacle{obstacle}

		p.Update(ctx)

		if p.Right() != obstacle.Left() || p.VX != 0 {
			t.Errorf("expected stop at obstacle edge, got right=%v vx=%v", p.Right(), p.VX)
		}
	})

	t.Run("blocked from the right", func(t *testing.T) {
		p := groundedPlayer(obstacle.Right() + 2)
		ctx := newContext(p, &input.Intents{MoveLeft: true}, nil)
		ctx.Obstacles = []*Obstacle{obstacle}

		p.Update(ctx)

		if p.Left() != obstacle.Right() || p.VX != 0 {
			t.Errorf("expected stop at obstacle edge, got left=%v vx=%v", p.Left(), p.VX)
		}
	})
}

func TestShouldRenderDimmed(t *testing.T) {
	tests := []struct {
		ticks int
		want  bool
	}{
		{0, false},
		{1, true},
		{4, true},
		{5, false},
		{9, false},
		{10, true},
		{120, true},
	}
	for _, tt := range tests {
		if got := ShouldRenderDimmed(tt.ticks); got != tt.want {
			t.Errorf("ShouldRenderDimmed(%d): expected %v, got %v", tt.ticks, tt.want, got)
		}
	}
}
