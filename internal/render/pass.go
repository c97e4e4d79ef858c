package render

import (
	"fmt"
	"image/color"
	"math"

	"github.com/tomz197/gunrunner/internal/asset"
	"github.com/tomz197/gunrunner/internal/loop"
	"github.com/tomz197/gunrunner/internal/loop/config"
	"github.com/tomz197/gunrunner/internal/object"
	"github.com/tomz197/gunrunner/internal/physics"
)

// Health bar geometry, in unscaled pixels.
const (
	healthBarWidthRatio = 0.8
	healthBarHeight     = 6
	healthBarGap        = 6
)

// Pass draws one frame of the world onto s. Missing images are replaced by
// solid placeholder shapes; nothing here mutates the world.
func Pass(s Surface, w *loop.WorldState, a Assets) {
	t := w.Tuning
	viewW, viewH := s.Size()

	drawBackground(s, w.ScrollX, viewH, a)

	for _, o := range w.Obstacles {
		if !onScreen(o.Box, w.ScrollX, viewW) {
			continue
		}
		drawSprite(s, a, asset.Obstacle, o.Box, w.ScrollX, ImageOptions{}, ColorObstacle)
	}

	if p := w.Player; p != nil {
		drawPlayer(s, a, p, w.ScrollX, w.Tick)
	}

	for _, e := range w.Enemies {
		if !onScreen(e.Box, w.ScrollX, viewW) {
			continue
		}
		drawEnemy(s, a, e, w.ScrollX, t)
	}

	for _, p := range w.Projectiles {
		if !onScreen(p.Box, w.ScrollX, viewW) {
			continue
		}
		s.FillRect(p.X-w.ScrollX, p.Y, p.W, p.H, ColorBullet)
	}

	for _, h := range w.Hazards {
		if !h.Visible(w.ScrollX, viewW, viewH) {
			continue
		}
		s.FillRect(h.X-w.ScrollX, h.Y, h.W, h.H, ColorHazard)
	}

	for _, p := range w.Effects {
		b := p.Bounds()
		if !onScreen(b, w.ScrollX, viewW) {
			continue
		}
		s.FillRect(b.X-w.ScrollX, b.Y, b.W, b.H, sparkColor(p.Life()))
	}

	if p := w.Player; p != nil {
		drawHUD(s, p.Health, t, viewH)
	}

	if w.Ended() {
		drawEndOverlay(s, w, t)
	}
}

// onScreen reports whether a box overlaps the scrolled viewport horizontally.
func onScreen(b physics.Box, scrollX, viewW float64) bool {
	screenX := b.X - scrollX
	return screenX+b.W > 0 && screenX < viewW
}

func drawBackground(s Surface, scrollX, viewH float64, a Assets) {
	if img, ok := a.Image(asset.Background); ok {
		s.DrawTiled(img, scrollX, viewH)
		return
	}
	s.Fill(ColorBackground)
}

// drawSprite draws the named image over b, or a placeholder rectangle in c.
func drawSprite(s Surface, a Assets, name asset.Name, b physics.Box, scrollX float64, opts ImageOptions, c color.NRGBA) {
	if img, ok := a.Image(name); ok {
		s.DrawImage(img, b.X-scrollX, b.Y, b.W, b.H, opts)
		return
	}
	s.FillRect(b.X-scrollX, b.Y, b.W, b.H, withAlpha(c, opts.EffectiveAlpha()))
}

// PlayerSprite returns the image name for a pose at the given tick.
func PlayerSprite(pose object.Pose, tick int) asset.Name {
	switch pose {
	case object.PoseShooting:
		return asset.PlayerShoot
	case object.PoseJumping:
		return asset.PlayerJump
	case object.PoseRunning:
		if (tick/config.RunFrameTicks)%2 == 0 {
			return asset.PlayerRun1
		}
		return asset.PlayerRun2
	default:
		return asset.PlayerIdle
	}
}

// EnemySprite returns the preferred image name for an enemy and the base
// image to fall back to when the preferred one is absent.
func EnemySprite(e *object.Enemy) (preferred, base asset.Name) {
	switch e.Type {
	case object.Patroller:
		if (e.AnimationFrame/config.PatrolFrameTicks)%2 == 0 {
			return asset.EnemyB1, asset.EnemyB1
		}
		return asset.EnemyB2, asset.EnemyB1
	case object.Boss:
		if e.Shooting {
			return asset.EnemyCShoot, asset.EnemyC
		}
		return asset.EnemyC, asset.EnemyC
	default:
		if e.Shooting {
			return asset.EnemyAShoot, asset.EnemyA
		}
		return asset.EnemyA, asset.EnemyA
	}
}

// resolve returns the first of names present in a.
func resolve(a Assets, names ...asset.Name) (asset.Name, bool) {
	for _, n := range names {
		if _, ok := a.Image(n); ok {
			return n, true
		}
	}
	return "", false
}

func drawPlayer(s Surface, a Assets, p *object.Player, scrollX float64, tick int) {
	opts := ImageOptions{FlipX: !p.FacingRight, Alpha: 1}
	if p.Invulnerable && object.ShouldRenderDimmed(p.InvulnerableTimer) {
		opts.Alpha = 0.5
	}

	name, ok := resolve(a, PlayerSprite(p.Pose(), tick), asset.PlayerIdle)
	if !ok {
		name = asset.PlayerIdle
	}
	drawSprite(s, a, name, p.Box, scrollX, opts, ColorPlayer)
}

func drawEnemy(s Surface, a Assets, e *object.Enemy, scrollX float64, t config.Tuning) {
	preferred, base := EnemySprite(e)
	name, ok := resolve(a, preferred, base)
	if !ok {
		name = base
	}
	drawSprite(s, a, name, e.Box, scrollX, ImageOptions{FlipX: e.FacingLeft()}, ColorEnemy)
	drawHealthBar(s, e, scrollX, t)
}

func drawHealthBar(s Surface, e *object.Enemy, scrollX float64, t config.Tuning) {
	if e.InitialHealth <= 0 {
		return
	}
	barW := e.W * healthBarWidthRatio
	barH := t.Px(healthBarHeight)
	x := e.X - scrollX + (e.W-barW)/2
	y := e.Y - barH - t.Px(healthBarGap)
	ratio := e.HealthRatio()

	s.FillRect(x, y, barW, barH, ColorHealthTrack)
	if ratio > 0 {
		s.FillRect(x, y, barW*ratio, barH, HealthColor(ratio))
	}
	s.StrokeRect(x, y, barW, barH, ColorHealthBorder)
}

// fontSize scales a base size with the viewport height, never going below floor.
func fontSize(base, floor, viewH float64) float64 {
	return math.Max(floor, base*viewH/600)
}

func drawHUD(s Surface, health int, t config.Tuning, viewH float64) {
	s.Text(fmt.Sprintf("HP: %d", max(health, 0)), t.Px(15), t.Px(35), TextOptions{
		Size:  fontSize(22, 18, viewH),
		Color: ColorText,
	})
}

func drawEndOverlay(s Surface, w *loop.WorldState, t config.Tuning) {
	viewW, viewH := s.Size()
	s.FillRect(0, 0, viewW, viewH, ColorVeil)

	title := "GAME OVER"
	if w.Outcome() == loop.OutcomeGameWon {
		title = "VICTORY!"
	}
	cx, cy := viewW/2, viewH/2

	s.Text(title, cx, cy-t.Px(50), TextOptions{
		Size:  fontSize(48, 28, viewH),
		Color: ColorText,
		Align: AlignCenter,
	})
	health := 0
	if w.Player != nil {
		health = max(w.Player.Health, 0)
	}
	body := TextOptions{Size: fontSize(24, 16, viewH), Color: ColorText, Align: AlignCenter}
	s.Text(fmt.Sprintf("Health left: %d", health), cx, cy+t.Px(10), body)
	s.Text("Press ENTER or tap to restart", cx, cy+t.Px(60), body)
}
