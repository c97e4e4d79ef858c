package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/tomz197/gunrunner/internal/input"
)

// mouseID tracks the left mouse button as a pointer next to touch IDs.
const mouseID = -1

// anyJustPressed reports whether any of the keys went down this tick.
func anyJustPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}

// anyPressed reports whether any of the keys is held.
func anyPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

// readKeyboard writes this tick's keyboard state into the intents.
func readKeyboard(in *input.Intents) {
	in.MoveLeft = anyPressed(ebiten.KeyArrowLeft, ebiten.KeyA)
	in.MoveRight = anyPressed(ebiten.KeyArrowRight, ebiten.KeyD)
	if anyJustPressed(ebiten.KeyArrowUp, ebiten.KeyW, ebiten.KeyK) {
		in.TriggerJump()
	}
	if anyJustPressed(ebiten.KeySpace, ebiten.KeyJ) {
		in.TriggerShoot()
	}
}

// pointers feeds touches and the mouse into the pad. It reports whether a
// pointer went down outside every button, which counts as a tap.
type pointers struct {
	pad      *input.TouchPad
	touchBuf []ebiten.TouchID
	used     bool // A touch was ever seen; controls are drawn from then on
}

func (p *pointers) update() (tapped bool) {
	p.touchBuf = inpututil.AppendJustPressedTouchIDs(p.touchBuf[:0])
	for _, id := range p.touchBuf {
		p.used = true
		x, y := ebiten.TouchPosition(id)
		if p.pad.Press(int(id), float64(x), float64(y)) == input.ButtonNone {
			tapped = true
		}
	}
	for _, id := range p.pad.Active() {
		if id == mouseID {
			continue
		}
		if inpututil.IsTouchJustReleased(ebiten.TouchID(id)) {
			p.pad.Release(id)
		}
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if p.pad.Press(mouseID, float64(x), float64(y)) == input.ButtonNone {
			tapped = true
		}
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		p.pad.Release(mouseID)
	}
	return tapped
}
