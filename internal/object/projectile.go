package object

import "github.com/tomz197/gunrunner/internal/physics"

// Projectile is a bullet fired by the player. It moves horizontally only.
type Projectile struct {
	physics.Box
	VX float64
}

// NewProjectile creates a projectile with a scaled box and velocity.
func NewProjectile(x, y, w, h, vx float64) *Projectile {
	return &Projectile{Box: physics.NewBox(x, y, w, h), VX: vx}
}

func (p *Projectile) Kind() Kind { return KindProjectile }

// Update moves the projectile.
func (p *Projectile) Update() {
	p.X += p.VX
}

// Visible reports whether any part of the projectile is inside the scrolled viewport horizontally.
func (p *Projectile) Visible(scrollX, viewWidth float64) bool {
	screenX := p.X - scrollX
	return screenX < viewWidth && screenX+p.W > 0
}
