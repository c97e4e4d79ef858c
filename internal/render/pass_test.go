package render

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/tomz197/gunrunner/internal/asset"
	"github.com/tomz197/gunrunner/internal/input"
	"github.com/tomz197/gunrunner/internal/loop"
	"github.com/tomz197/gunrunner/internal/loop/config"
	"github.com/tomz197/gunrunner/internal/object"
)

type fakeImage struct{ name asset.Name }

func (fakeImage) Size() (int, int) { return 32, 32 }

// fakeAssets serves a fakeImage for every listed name.
type fakeAssets map[asset.Name]bool

func (f fakeAssets) Image(name asset.Name) (asset.Image, bool) {
	if !f[name] {
		return nil, false
	}
	return fakeImage{name}, true
}

func allAssets() fakeAssets {
	f := fakeAssets{}
	for _, n := range asset.Images {
		f[n] = true
	}
	return f
}

func newWorld(t *testing.T) *loop.WorldState {
	t.Helper()
	w := loop.NewWorldState(config.Viewport{Width: 800, Height: 600, Scale: 1}, rand.New(rand.NewSource(7)), nil)
	w.Init()
	return w
}

func imageNames(ops []Op) []asset.Name {
	var out []asset.Name
	for _, op := range ops {
		if img, ok := op.Image.(fakeImage); ok {
			out = append(out, img.name)
		}
	}
	return out
}

func TestPassPlaceholdersWithoutAssets(t *testing.T) {
	w := newWorld(t)
	r := NewRecorder(800, 600)
	Pass(r, w, asset.Unavailable())

	if len(r.Ops) == 0 || r.Ops[0].Kind != OpFill || r.Ops[0].Color != ColorBackground {
		t.Fatalf("first op = %+v, want background fill", r.Ops[0])
	}
	if len(r.Filter(OpImage)) != 0 {
		t.Fatal("no images should be drawn without assets")
	}

	var player, obstacles int
	for _, op := range r.Filter(OpFillRect) {
		switch op.Color {
		case ColorPlayer:
			player++
		case ColorObstacle:
			obstacles++
		}
	}
	if player != 1 {
		t.Errorf("player placeholders = %d, want 1", player)
	}
	// Obstacles at x=350 and x=650 are on screen; x=1000 is past the 800px viewport.
	if obstacles != 2 {
		t.Errorf("obstacle placeholders = %d, want 2", obstacles)
	}
	if got := r.Texts(); !slices.Equal(got, []string{"HP: 3"}) {
		t.Errorf("texts = %v, want [HP: 3]", got)
	}
}

func TestPassTiledBackground(t *testing.T) {
	w := newWorld(t)
	w.ScrollX = 120
	r := NewRecorder(800, 600)
	Pass(r, w, allAssets())

	op := r.Ops[0]
	if op.Kind != OpTiled || op.X != 120 || op.H != 600 {
		t.Fatalf("first op = %+v, want tiled background at offset 120", op)
	}
}

func TestPassCullsOffscreenEnemies(t *testing.T) {
	w := newWorld(t)
	r := NewRecorder(800, 600)
	Pass(r, w, allAssets())

	names := imageNames(r.Filter(OpImage))
	// Only the first shooter (x=550) is within the first 800px.
	if slices.Contains(names, asset.EnemyC) || slices.Contains(names, asset.EnemyB1) {
		t.Fatalf("offscreen enemies were drawn: %v", names)
	}
	if !slices.Contains(names, asset.EnemyA) {
		t.Fatalf("visible shooter missing: %v", names)
	}
}

func TestPassPlayerSpriteFallback(t *testing.T) {
	w := newWorld(t)
	w.Player.Shooting = true

	r := NewRecorder(800, 600)
	Pass(r, w, fakeAssets{asset.PlayerIdle: true})

	names := imageNames(r.Filter(OpImage))
	if !slices.Equal(names, []asset.Name{asset.PlayerIdle}) {
		t.Fatalf("images = %v, want [playerIdle]", names)
	}
}

func TestPassPlayerBlinkAndFlip(t *testing.T) {
	w := newWorld(t)
	w.Player.OnGround = true // idle pose
	w.Player.FacingRight = false
	w.Player.Invulnerable = true
	w.Player.InvulnerableTimer = 2 * config.BlinkTicks // dimmed half

	r := NewRecorder(800, 600)
	Pass(r, w, allAssets())

	for _, op := range r.Filter(OpImage) {
		img := op.Image.(fakeImage)
		if img.name != asset.PlayerIdle {
			continue
		}
		if !op.Options.FlipX {
			t.Error("player facing left should be flipped")
		}
		if op.Options.Alpha != 0.5 {
			t.Errorf("alpha = %v, want 0.5", op.Options.Alpha)
		}
		return
	}
	t.Fatal("player sprite not drawn")
}

func TestPassEnemyHealthBar(t *testing.T) {
	w := newWorld(t)
	e := w.Enemies[0]
	e.Health = 1 // half of 2

	r := NewRecorder(800, 600)
	Pass(r, w, asset.Unavailable())

	var fill *Op
	for _, op := range r.Filter(OpFillRect) {
		if op.Color == ColorHealthMid {
			fill = &op
			break
		}
	}
	if fill == nil {
		t.Fatal("yellow health fill not drawn for ratio 0.5")
	}
	wantW := e.W * healthBarWidthRatio * 0.5
	if fill.W != wantW {
		t.Errorf("fill width = %v, want %v", fill.W, wantW)
	}
	if len(r.Filter(OpStrokeRect)) == 0 {
		t.Error("health bar border not drawn")
	}
}

func TestPassEndOverlay(t *testing.T) {
	w := newWorld(t)
	w.GameWon = true
	w.GameOver = true

	r := NewRecorder(800, 600)
	Pass(r, w, asset.Unavailable())

	texts := r.Texts()
	want := []string{"HP: 3", "VICTORY!", "Health left: 3", "Press ENTER or tap to restart"}
	if !slices.Equal(texts, want) {
		t.Fatalf("texts = %v, want %v", texts, want)
	}

	var veil bool
	for _, op := range r.Filter(OpFillRect) {
		if op.Color == ColorVeil && op.W == 800 && op.H == 600 {
			veil = true
		}
	}
	if !veil {
		t.Error("end veil not drawn")
	}
}

func TestPassHazardVerticalCulling(t *testing.T) {
	w := newWorld(t)
	w.Hazards = []*object.Hazard{
		object.NewHazard(100, 100, 8, 8, 0, 0),
		object.NewHazard(100, -50, 8, 8, 0, 0),
	}

	r := NewRecorder(800, 600)
	Pass(r, w, asset.Unavailable())

	var n int
	for _, op := range r.Filter(OpFillRect) {
		if op.Color == ColorHazard {
			n++
		}
	}
	if n != 1 {
		t.Fatalf("hazards drawn = %d, want 1", n)
	}
}

func TestPlayerSpriteRunFrames(t *testing.T) {
	if got := PlayerSprite(object.PoseRunning, 0); got != asset.PlayerRun1 {
		t.Errorf("tick 0 = %s, want playerRun1", got)
	}
	if got := PlayerSprite(object.PoseRunning, config.RunFrameTicks); got != asset.PlayerRun2 {
		t.Errorf("tick %d = %s, want playerRun2", config.RunFrameTicks, got)
	}
}

func TestEnemySpriteAttackPose(t *testing.T) {
	e := &object.Enemy{Type: object.Boss, Shooting: true}
	preferred, base := EnemySprite(e)
	if preferred != asset.EnemyCShoot || base != asset.EnemyC {
		t.Fatalf("EnemySprite(boss shooting) = %s, %s", preferred, base)
	}
}

func TestHealthColor(t *testing.T) {
	tests := []struct {
		ratio float64
		want  any
	}{
		{1, ColorHealthHigh},
		{0.51, ColorHealthHigh},
		{0.5, ColorHealthMid},
		{0.21, ColorHealthMid},
		{0.2, ColorHealthLow},
		{0, ColorHealthLow},
	}
	for _, tt := range tests {
		if got := HealthColor(tt.ratio); got != tt.want {
			t.Errorf("HealthColor(%v) = %v, want %v", tt.ratio, got, tt.want)
		}
	}
}

func TestControlsHighlightHeld(t *testing.T) {
	l := input.NewLayout(800, 450)
	pad := input.NewTouchPad(l)
	left := l.Buttons[0].Rect
	pad.Press(1, left.X+1, left.Y+1)

	r := NewRecorder(800, 450)
	Controls(r, pad)

	fills := r.Filter(OpFillRect)
	if len(fills) != 4 {
		t.Fatalf("button fills = %d, want 4", len(fills))
	}
	if fills[0].Color != colorButtonPressed || fills[1].Color != colorButton {
		t.Fatalf("fill colours = %v, %v", fills[0].Color, fills[1].Color)
	}
	if got := r.Texts(); !slices.Equal(got, []string{"◀", "▶", "●", "▲"}) {
		t.Fatalf("glyphs = %v", got)
	}
}

func TestFitAspect(t *testing.T) {
	tests := []struct {
		w, h         float64
		wantW, wantH float64
	}{
		{1920, 1080, 1920, 1080},
		{2000, 1080, 1920, 1080},
		{1600, 1200, 1600, 900},
		{0, 100, 1, 1},
	}
	for _, tt := range tests {
		gotW, gotH := FitAspect(tt.w, tt.h)
		if gotW != tt.wantW || gotH != tt.wantH {
			t.Errorf("FitAspect(%v, %v) = %v, %v, want %v, %v", tt.w, tt.h, gotW, gotH, tt.wantW, tt.wantH)
		}
	}
}
