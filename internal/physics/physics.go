// Package physics provides axis-aligned boxes and collision tests.
package physics

import "math"

// Box is an axis-aligned bounding box in device pixels.
// X, Y is the top-left corner; W and H are never negative.
type Box struct {
	X, Y float64
	W, H float64
}

// NewBox creates a box, clamping negative dimensions to zero.
func NewBox(x, y, w, h float64) Box {
	return Box{X: x, Y: y, W: math.Max(0, w), H: math.Max(0, h)}
}

// Left returns the left edge.
func (b Box) Left() float64 { return b.X }

// Right returns the right edge.
func (b Box) Right() float64 { return b.X + b.W }

// Top returns the top edge.
func (b Box) Top() float64 { return b.Y }

// Bottom returns the bottom edge.
func (b Box) Bottom() float64 { return b.Y + b.H }

// CenterX returns the horizontal center.
func (b Box) CenterX() float64 { return b.X + b.W/2 }

// CenterY returns the vertical center.
func (b Box) CenterY() float64 { return b.Y + b.H/2 }

// Bounds returns the box itself. Entities embedding Box satisfy Bounds() through it.
func (b Box) Bounds() Box { return b }

// Intersects reports whether two boxes overlap. The test is open:
// boxes that only touch along an edge do not collide.
func Intersects(a, b Box) bool {
	return a.Right() > b.Left() && a.Left() < b.Right() &&
		a.Bottom() > b.Top() && a.Top() < b.Bottom()
}

// LandingSlack widens the one-tick lookback so fast falls still register as landings.
const LandingSlack = 1.1

// Landing is the result of ResolveVerticalLanding.
type Landing struct {
	Colliding bool
	FromAbove bool
}

// ResolveVerticalLanding tests a mover with vertical velocity vy against an
// obstacle. FromAbove is set only while falling (vy > 0) when the mover's bottom,
// projected back one tick (with LandingSlack), was at or above the obstacle top.
//
// This is a single-step swept approximation, not continuous collision: a mover
// falling faster than the obstacle is tall can still tunnel through, and corner
// contacts may resolve as side hits. Gameplay is tuned around this behavior.
func ResolveVerticalLanding(mover Box, vy float64, obstacle Box) Landing {
	colliding := Intersects(mover, obstacle)
	fromAbove := colliding && vy > 0 && mover.Bottom()-vy*LandingSlack <= obstacle.Top()
	return Landing{Colliding: colliding, FromAbove: fromAbove}
}

// AimAngle returns the angle in radians from the center of one box to the center of another.
func AimAngle(from, to Box) float64 {
	return math.Atan2(to.CenterY()-from.CenterY(), to.CenterX()-from.CenterX())
}

// Clamp limits v to [lo, hi]. If hi < lo, lo wins.
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}
