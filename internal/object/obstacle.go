package object

import "github.com/tomz197/gunrunner/internal/physics"

// Obstacle is static level geometry. It never moves after creation.
type Obstacle struct {
	physics.Box
}

// NewObstacle creates an obstacle from a scaled box.
func NewObstacle(b physics.Box) *Obstacle {
	return &Obstacle{Box: b}
}

func (o *Obstacle) Kind() Kind { return KindObstacle }
