package loop

import (
	"errors"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/tomz197/gunrunner/internal/audio"
	"github.com/tomz197/gunrunner/internal/input"
	"github.com/tomz197/gunrunner/internal/loop/config"
)

// ErrAssetsNotReady is returned by Start while assets are still loading.
var ErrAssetsNotReady = errors.New("loop: assets not ready")

// Phase is the session lifecycle state.
type Phase int

const (
	PhaseLoading Phase = iota
	PhaseReady
	PhaseRunning
	PhaseEnded
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseReady:
		return "ready"
	case PhaseRunning:
		return "running"
	case PhaseEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// SessionOptions configures a Session.
type SessionOptions struct {
	ID       string
	Viewport config.Viewport
	Sounds   audio.Player
	Logger   *log.Logger
	Rand     *rand.Rand
}

// Session owns one player's world and intents and moves it through
// Loading → Ready → Running ⇄ Ended. It is not safe for concurrent use;
// a single frame driver calls into it.
type Session struct {
	ID      string
	World   *WorldState
	Intents input.Intents

	phase  Phase
	sounds audio.Player
	logger *log.Logger
}

// NewSession creates a session in the Loading phase.
func NewSession(opts SessionOptions) *Session {
	sounds := opts.Sounds
	if sounds == nil {
		sounds = audio.Nop{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	if opts.ID != "" {
		logger = logger.With("session", opts.ID)
	}
	return &Session{
		ID:     opts.ID,
		World:  NewWorldState(opts.Viewport, opts.Rand, sounds),
		phase:  PhaseLoading,
		sounds: sounds,
		logger: logger,
	}
}

// Phase returns the current lifecycle phase.
func (s *Session) Phase() Phase {
	return s.phase
}

// AssetsReady moves a loading session to Ready. Later calls are ignored.
func (s *Session) AssetsReady() {
	if s.phase != PhaseLoading {
		return
	}
	s.phase = PhaseReady
	s.logger.Info("session ready")
}

// Start begins play from Ready, or restarts from Ended. The world is fully
// re-initialized and the music restarted. Starting a running session is a no-op.
func (s *Session) Start() error {
	switch s.phase {
	case PhaseLoading:
		return ErrAssetsNotReady
	case PhaseRunning:
		return nil
	}

	restart := s.phase == PhaseEnded
	s.World.Init()
	s.Intents.Reset()
	s.sounds.StartMusic()
	s.phase = PhaseRunning
	s.logger.Info("session running", "restart", restart)
	return nil
}

// Update advances a running session by one tick and handles the transition
// to Ended. Other phases are left untouched.
func (s *Session) Update() Phase {
	if s.phase != PhaseRunning {
		return s.phase
	}

	Step(s.World, &s.Intents)

	if s.World.Ended() {
		s.phase = PhaseEnded
		s.sounds.StopMusic()
		s.logger.Info("session ended",
			"outcome", s.World.Outcome(),
			"health", max(0, s.World.Player.Health),
			"score", s.World.Score,
			"ticks", s.World.Tick,
		)
	}
	return s.phase
}

// Outcome returns the result of the last play session.
func (s *Session) Outcome() Outcome {
	return s.World.Outcome()
}

// SetViewport forwards a viewport change to the world.
func (s *Session) SetViewport(v config.Viewport) {
	if v == s.World.Tuning.Viewport {
		return
	}
	s.World.SetViewport(v)
	s.logger.Debug("viewport changed", "width", v.Width, "height", v.Height, "scale", v.Scale)
}

// Close stops any music still playing.
func (s *Session) Close() {
	if s.phase == PhaseRunning {
		s.sounds.StopMusic()
	}
}
