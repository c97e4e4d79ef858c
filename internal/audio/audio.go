// Package audio defines the sound sink the simulation talks to.
//
// Requests are fire-and-forget: implementations must never block the caller
// and must swallow playback failures.
package audio

import "errors"

//go:generate go tool mockgen -destination=./mocks/player_mock.go -package=mocks . Player

// ErrUnavailable is returned by backends when no output device can be opened.
var ErrUnavailable = errors.New("audio: output unavailable")

// Sound names a one-shot effect.
type Sound int

const (
	Jump Sound = iota
	Shoot
)

func (s Sound) String() string {
	switch s {
	case Jump:
		return "jump"
	case Shoot:
		return "shoot"
	default:
		return "unknown"
	}
}

// Player plays effects from the start and controls the background loop.
type Player interface {
	Play(s Sound)
	StartMusic()
	StopMusic()
}

// Nop is a silent Player.
type Nop struct{}

func (Nop) Play(Sound)  {}
func (Nop) StartMusic() {}
func (Nop) StopMusic()  {}

var _ Player = Nop{}
