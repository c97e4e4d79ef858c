package physics

import (
	"math"
	"testing"
)

func TestIntersects(t *testing.T) {
	base := Box{X: 0, Y: 0, W: 10, H: 10}

	tests := []struct {
		name  string
		other Box
		want  bool
	}{
		{"overlapping", Box{X: 5, Y: 5, W: 10, H: 10}, true},
		{"contained", Box{X: 2, Y: 2, W: 2, H: 2}, true},
		{"touching right edge", Box{X: 10, Y: 0, W: 5, H: 5}, false},
		{"touching bottom edge", Box{X: 0, Y: 10, W: 5, H: 5}, false},
		{"touching corner", Box{X: 10, Y: 10, W: 5, H: 5}, false},
		{"left of", Box{X: -6, Y: 0, W: 5, H: 5}, false},
		{"sliver overlap", Box{X: 9.99, Y: 9.99, W: 1, H: 1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Intersects(base, tt.other); got != tt.want {
				t.Errorf("Intersects(base, %+v) = %v, want %v", tt.other, got, tt.want)
			}
			if got := Intersects(tt.other, base); got != tt.want {
				t.Errorf("Intersects is not symmetric for %+v", tt.other)
			}
		})
	}
}

func TestResolveVerticalLanding(t *testing.T) {
	obstacle := Box{X: 100, Y: 200, W: 80, H: 50}

	tests := []struct {
		name          string
		mover         Box
		vy            float64
		wantColliding bool
		wantFromAbove bool
	}{
		{
			name:          "landing while falling",
			mover:         Box{X: 110, Y: 125, W: 80, H: 80}, // bottom 205, was 205-5.5 < 200
			vy:            5,
			wantColliding: true,
			wantFromAbove: true,
		},
		{
			name:          "slack catches fast fall",
			mover:         Box{X: 110, Y: 130, W: 80, H: 80}, // bottom 210, 210-10*1.1 = 199
			vy:            10,
			wantColliding: true,
			wantFromAbove: true,
		},
		{
			name:          "deep penetration is a side hit",
			mover:         Box{X: 110, Y: 160, W: 80, H: 80},
			vy:            5,
			wantColliding: true,
			wantFromAbove: false,
		},
		{
			name:          "rising never lands",
			mover:         Box{X: 110, Y: 125, W: 80, H: 80},
			vy:            -5,
			wantColliding: true,
			wantFromAbove: false,
		},
		{
			name:          "no contact",
			mover:         Box{X: 0, Y: 0, W: 10, H: 10},
			vy:            5,
			wantColliding: false,
			wantFromAbove: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveVerticalLanding(tt.mover, tt.vy, obstacle)
			if got.Colliding != tt.wantColliding || got.FromAbove != tt.wantFromAbove {
				t.Errorf("expected colliding=%v fromAbove=%v, got %+v", tt.wantColliding, tt.wantFromAbove, got)
			}
		})
	}
}

func TestNewBoxClampsNegativeSize(t *testing.T) {
	b := NewBox(1, 2, -3, -4)
	if b.W != 0 || b.H != 0 {
		t.Errorf("expected zero size, got %vx%v", b.W, b.H)
	}
}

func TestAimAngle(t *testing.T) {
	from := Box{X: 0, Y: 0, W: 10, H: 10}
	to := Box{X: 100, Y: 0, W: 10, H: 10}
	if got := AimAngle(from, to); got != 0 {
		t.Errorf("expected 0, got %v", got)
	}
	below := Box{X: 0, Y: 100, W: 10, H: 10}
	if got := AimAngle(from, below); math.Abs(got-math.Pi/2) > 1e-9 {
		t.Errorf("expected π/2, got %v", got)
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(5, 0, 10); got != 5 {
		t.Errorf("expected 5, got %v", got)
	}
	if got := Clamp(-1, 0, 10); got != 0 {
		t.Errorf("expected 0, got %v", got)
	}
	if got := Clamp(11, 0, 10); got != 10 {
		t.Errorf("expected 10, got %v", got)
	}
	if got := Clamp(3, 0, -5); got != 0 {
		t.Errorf("expected lower bound to win on inverted range, got %v", got)
	}
}
