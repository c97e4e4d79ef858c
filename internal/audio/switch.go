package audio

import "sync"

// Switch is a Player whose backend can be replaced while in use, e.g. once
// sound files finish loading. Music that is playing moves to the new backend.
type Switch struct {
	mu      sync.Mutex
	target  Player
	playing bool
}

var _ Player = (*Switch)(nil)

// NewSwitch creates a switch forwarding to p. A nil p is silent.
func NewSwitch(p Player) *Switch {
	if p == nil {
		p = Nop{}
	}
	return &Switch{target: p}
}

// Set replaces the backend.
func (s *Switch) Set(p Player) {
	if p == nil {
		p = Nop{}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.playing {
		s.target.StopMusic()
		p.StartMusic()
	}
	s.target = p
}

func (s *Switch) Play(sound Sound) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.target.Play(sound)
}

func (s *Switch) StartMusic() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.playing = true
	s.target.StartMusic()
}

func (s *Switch) StopMusic() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.playing = false
	s.target.StopMusic()
}
