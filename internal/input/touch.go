package input

import "math"

// Button is an on-screen touch control.
type Button int

const (
	ButtonNone Button = iota
	ButtonLeft
	ButtonRight
	ButtonShoot
	ButtonJump
)

func (b Button) String() string {
	switch b {
	case ButtonLeft:
		return "left"
	case ButtonRight:
		return "right"
	case ButtonShoot:
		return "shoot"
	case ButtonJump:
		return "jump"
	default:
		return "none"
	}
}

// Glyph returns the label drawn on the button.
func (b Button) Glyph() string {
	switch b {
	case ButtonLeft:
		return "◀"
	case ButtonRight:
		return "▶"
	case ButtonShoot:
		return "●"
	case ButtonJump:
		return "▲"
	default:
		return ""
	}
}

// Rect is a button area in device pixels.
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether the point lies inside or on the edge of r.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}

// Layout positions the four buttons in the bottom-right corner: left, shoot
// and right in a row with jump above shoot.
type Layout struct {
	Size    float64
	Margin  float64
	Buttons [4]struct {
		Button Button
		Rect   Rect
	}
}

// Touch layout proportions.
const (
	buttonSizeRatio   = 0.13 // Of the smaller viewport side
	buttonMarginRatio = 0.15 // Of the button size
)

// NewLayout computes the button areas for a viewport.
func NewLayout(width, height float64) Layout {
	size := math.Min(width, height) * buttonSizeRatio
	margin := size * buttonMarginRatio
	bottomMargin := margin * 2

	shootX := width - margin - size*1.5
	shootY := height - bottomMargin - size
	leftX := shootX - margin - size
	rightX := shootX + margin + size
	jumpY := shootY - margin - size

	place := func(x, y float64) Rect {
		return Rect{X: math.Max(margin, x), Y: math.Max(margin, y), W: size, H: size}
	}

	l := Layout{Size: size, Margin: margin}
	l.Buttons[0].Button, l.Buttons[0].Rect = ButtonLeft, place(leftX, shootY)
	l.Buttons[1].Button, l.Buttons[1].Rect = ButtonRight, place(rightX, shootY)
	l.Buttons[2].Button, l.Buttons[2].Rect = ButtonShoot, place(shootX, shootY)
	l.Buttons[3].Button, l.Buttons[3].Rect = ButtonJump, place(shootX, jumpY)
	return l
}

// Hit returns the first button containing the point, checked in the order
// left, right, shoot, jump.
func (l Layout) Hit(x, y float64) Button {
	for _, b := range l.Buttons {
		if b.Rect.Contains(x, y) {
			return b.Button
		}
	}
	return ButtonNone
}

// TouchPad tracks which button each active pointer is holding.
type TouchPad struct {
	Layout Layout
	active map[int]Button
	jump   bool
	shoot  bool
}

// NewTouchPad creates a pad for the given layout.
func NewTouchPad(l Layout) *TouchPad {
	return &TouchPad{Layout: l, active: make(map[int]Button)}
}

// Press starts a pointer at (x, y). A pointer already down is ignored; a
// pointer outside every button is not tracked. It returns the button hit.
func (p *TouchPad) Press(id int, x, y float64) Button {
	if _, ok := p.active[id]; ok {
		return ButtonNone
	}
	b := p.Layout.Hit(x, y)
	switch b {
	case ButtonNone:
		return b
	case ButtonShoot:
		p.shoot = true
	case ButtonJump:
		p.jump = true
	}
	p.active[id] = b
	return b
}

// Release ends a pointer.
func (p *TouchPad) Release(id int) {
	delete(p.active, id)
}

// Pressed reports whether any pointer holds the button.
func (p *TouchPad) Pressed(b Button) bool {
	for _, held := range p.active {
		if held == b {
			return true
		}
	}
	return false
}

// Active returns the IDs of the pointers being tracked.
func (p *TouchPad) Active() []int {
	ids := make([]int, 0, len(p.active))
	for id := range p.active {
		ids = append(ids, id)
	}
	return ids
}

// Apply merges the pad into the intents: held buttons move, pressed buttons
// latch jump and shoot once and stop showing as pressed.
func (p *TouchPad) Apply(in *Intents) {
	in.MoveLeft = in.MoveLeft || p.Pressed(ButtonLeft)
	in.MoveRight = in.MoveRight || p.Pressed(ButtonRight)
	if p.jump {
		in.TriggerJump()
		p.jump = false
		p.spend(ButtonJump)
	}
	if p.shoot {
		in.TriggerShoot()
		p.shoot = false
		p.spend(ButtonShoot)
	}
}

// spend clears the held state of a one-shot button once its intent is
// consumed. The pointers stay tracked so they cannot re-trigger it.
func (p *TouchPad) spend(b Button) {
	for id, held := range p.active {
		if held == b {
			p.active[id] = ButtonNone
		}
	}
}

// Reset forgets all pointers, e.g. after a resize.
func (p *TouchPad) Reset() {
	clear(p.active)
	p.jump = false
	p.shoot = false
}
