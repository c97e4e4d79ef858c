package object

import "github.com/tomz197/gunrunner/internal/physics"

// Hazard is an enemy-fired projectile travelling along a fixed aimed vector.
type Hazard struct {
	physics.Box
	VX, VY float64
}

// NewHazard creates a hazard with a scaled box and velocity.
func NewHazard(x, y, w, h, vx, vy float64) *Hazard {
	return &Hazard{Box: physics.NewBox(x, y, w, h), VX: vx, VY: vy}
}

func (h *Hazard) Kind() Kind { return KindHazard }

// Update moves the hazard.
func (h *Hazard) Update() {
	h.X += h.VX
	h.Y += h.VY
}

// Visible reports whether the hazard overlaps the scrolled viewport on both axes.
func (h *Hazard) Visible(scrollX, viewWidth, viewHeight float64) bool {
	screenX := h.X - scrollX
	return screenX < viewWidth && screenX+h.W > 0 &&
		h.Y < viewHeight && h.Bottom() > 0
}
