package object

import (
	"math"
	"math/rand"
	"sync"

	"github.com/tomz197/gunrunner/internal/physics"
)

// particlePool is a sync.Pool for reusing Particle objects to reduce allocations.
var particlePool = sync.Pool{
	New: func() any {
		return &Particle{}
	},
}

// Particle is a short-lived visual effect. It never affects the simulation.
type Particle struct {
	X, Y        float64 // Position
	VX, VY      float64 // Velocity, pixels per tick
	Size        float64
	Lifetime    int     // Ticks remaining
	MaxLifetime int     // Initial lifetime (for fade calculation)
	Drag        float64 // Velocity decay per tick (1.0 = no drag)
}

// NewParticle creates a single particle from the pool.
func NewParticle(x, y, vx, vy, size float64, lifetime int) *Particle {
	p := particlePool.Get().(*Particle)
	p.X = x
	p.Y = y
	p.VX = vx
	p.VY = vy
	p.Size = size
	p.Lifetime = lifetime
	p.MaxLifetime = lifetime
	p.Drag = 0.9
	return p
}

// Release returns the particle to the pool for reuse.
// Should be called when the particle is removed from the world.
func (p *Particle) Release() {
	particlePool.Put(p)
}

func (p *Particle) Kind() Kind { return KindParticle }

// Bounds returns the particle's square.
func (p *Particle) Bounds() physics.Box {
	return physics.Box{X: p.X - p.Size/2, Y: p.Y - p.Size/2, W: p.Size, H: p.Size}
}

// Life returns the remaining lifetime fraction in [0, 1].
func (p *Particle) Life() float64 {
	if p.MaxLifetime <= 0 {
		return 0
	}
	return float64(p.Lifetime) / float64(p.MaxLifetime)
}

// SpawnSparks creates particles in a burst around (x, y).
func SpawnSparks(x, y float64, count int, speed, size float64, lifetime int, spawner Spawner, rng *rand.Rand) {
	if spawner == nil {
		return
	}
	random := rand.Float64
	if rng != nil {
		random = rng.Float64
	}

	for i := 0; i < count; i++ {
		angle := random() * 2 * math.Pi
		// Speed and lifetime vary 50% to 150% and 50% to 100%
		spd := speed * (0.5 + random())
		life := max(1, int(float64(lifetime)*(0.5+random()*0.5)))
		spawner.SpawnEffect(NewParticle(x, y, math.Cos(angle)*spd, math.Sin(angle)*spd, size, life))
	}
}

// Update moves the particle. It reports true once the particle has expired.
func (p *Particle) Update() bool {
	p.Lifetime--
	if p.Lifetime <= 0 {
		return true
	}
	p.VX *= p.Drag
	p.VY *= p.Drag
	p.X += p.VX
	p.Y += p.VY
	return false
}
