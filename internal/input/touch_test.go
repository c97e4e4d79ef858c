package input

import (
	"math"
	"testing"
)

func TestLayoutPositions(t *testing.T) {
	l := NewLayout(1600, 900)

	size := 900 * 0.13
	margin := size * 0.15
	if math.Abs(l.Size-size) > 1e-9 || math.Abs(l.Margin-margin) > 1e-9 {
		t.Fatalf("size/margin = %v/%v, want %v/%v", l.Size, l.Margin, size, margin)
	}

	shoot := l.Buttons[2].Rect
	wantShootX := 1600 - margin - size*1.5
	wantShootY := 900 - 2*margin - size
	if math.Abs(shoot.X-wantShootX) > 1e-9 || math.Abs(shoot.Y-wantShootY) > 1e-9 {
		t.Fatalf("shoot at %v,%v, want %v,%v", shoot.X, shoot.Y, wantShootX, wantShootY)
	}

	jump := l.Buttons[3].Rect
	if jump.X != shoot.X || math.Abs(jump.Y-(shoot.Y-margin-size)) > 1e-9 {
		t.Fatalf("jump at %v,%v should sit above shoot", jump.X, jump.Y)
	}
	left, right := l.Buttons[0].Rect, l.Buttons[1].Rect
	if !(left.X < shoot.X && shoot.X < right.X) {
		t.Fatalf("expected left < shoot < right, got %v %v %v", left.X, shoot.X, right.X)
	}
}

func TestLayoutClampsToMargin(t *testing.T) {
	l := NewLayout(50, 400)
	for _, b := range l.Buttons {
		if b.Rect.X < l.Margin || b.Rect.Y < l.Margin {
			t.Fatalf("%v at %v,%v is outside the margin %v", b.Button, b.Rect.X, b.Rect.Y, l.Margin)
		}
	}
}

func TestTouchPadHoldAndLatch(t *testing.T) {
	l := NewLayout(1600, 900)
	pad := NewTouchPad(l)

	left := l.Buttons[0].Rect
	shoot := l.Buttons[2].Rect

	if b := pad.Press(1, left.X+1, left.Y+1); b != ButtonLeft {
		t.Fatalf("Press on left = %v", b)
	}
	if b := pad.Press(2, shoot.X+1, shoot.Y+1); b != ButtonShoot {
		t.Fatalf("Press on shoot = %v", b)
	}
	if b := pad.Press(3, 10, 10); b != ButtonNone {
		t.Fatalf("Press outside = %v", b)
	}

	var in Intents
	pad.Apply(&in)
	if !in.MoveLeft || !in.ShootPending() || in.JumpPending() {
		t.Fatalf("intents after press = %+v", in)
	}

	in.Reset()
	pad.Apply(&in)
	if !in.MoveLeft || in.ShootPending() {
		t.Fatal("left should stay held and shoot should latch only once")
	}

	pad.Release(1)
	in.Reset()
	pad.Apply(&in)
	if in.MoveLeft {
		t.Fatal("left released")
	}
	if len(pad.Active()) != 1 {
		t.Fatalf("active = %v, want only the shoot pointer", pad.Active())
	}
}

func TestTouchPadIgnoresRepeatPress(t *testing.T) {
	l := NewLayout(1600, 900)
	pad := NewTouchPad(l)
	jump := l.Buttons[3].Rect

	pad.Press(1, jump.X+1, jump.Y+1)
	var in Intents
	pad.Apply(&in)
	in.Reset()

	if b := pad.Press(1, jump.X+1, jump.Y+1); b != ButtonNone {
		t.Fatalf("repeat press = %v, want none", b)
	}
	pad.Apply(&in)
	if in.JumpPending() {
		t.Fatal("a held pointer must not re-trigger jump")
	}
}

func TestTouchPadConsumedButtonNotShownPressed(t *testing.T) {
	l := NewLayout(1600, 900)
	pad := NewTouchPad(l)
	left := l.Buttons[0].Rect
	jump := l.Buttons[3].Rect

	pad.Press(1, left.X+1, left.Y+1)
	pad.Press(2, jump.X+1, jump.Y+1)
	if !pad.Pressed(ButtonJump) {
		t.Fatal("jump should show pressed before the intent is consumed")
	}

	var in Intents
	pad.Apply(&in)
	if !in.JumpPending() {
		t.Fatal("jump not triggered")
	}
	if pad.Pressed(ButtonJump) {
		t.Error("jump should not show pressed after its intent is consumed")
	}
	if !pad.Pressed(ButtonLeft) {
		t.Error("left is held and should still show pressed")
	}
	if len(pad.Active()) != 2 {
		t.Errorf("active = %v, want both pointers still tracked", pad.Active())
	}

	pad.Release(2)
	if b := pad.Press(2, jump.X+1, jump.Y+1); b != ButtonJump {
		t.Fatalf("press after release = %v, want jump", b)
	}
}
