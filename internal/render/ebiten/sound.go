package ebiten

import (
	"bytes"
	"fmt"

	"github.com/charmbracelet/log"
	eaudio "github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"

	"github.com/tomz197/gunrunner/internal/asset"
	"github.com/tomz197/gunrunner/internal/audio"
)

const sampleRate = 44100

// Sounds plays the catalog's WAV files through Ebitengine audio.
// Sounds that failed to load stay silent.
type Sounds struct {
	effects map[audio.Sound]*eaudio.Player
	music   *eaudio.Player
	volume  float64
}

var _ audio.Player = (*Sounds)(nil)

// NewSounds decodes the loaded sounds. The audio context is created on
// first use and shared by the process.
func NewSounds(catalog *asset.Catalog, volume float64, logger *log.Logger) *Sounds {
	ctx := eaudio.CurrentContext()
	if ctx == nil {
		ctx = eaudio.NewContext(sampleRate)
	}

	s := &Sounds{effects: make(map[audio.Sound]*eaudio.Player), volume: volume}
	for sound, name := range map[audio.Sound]asset.Name{
		audio.Jump:  asset.JumpSound,
		audio.Shoot: asset.ShootSound,
	} {
		p, err := newPlayer(ctx, catalog, name, false)
		if err != nil {
			logger.Debug("sound disabled", "name", name, "err", err)
			continue
		}
		p.SetVolume(volume)
		s.effects[sound] = p
	}

	music, err := newPlayer(ctx, catalog, asset.BackgroundMusic, true)
	if err != nil {
		logger.Debug("music disabled", "err", err)
	} else {
		music.SetVolume(volume * 0.5)
		s.music = music
	}
	return s
}

func newPlayer(ctx *eaudio.Context, catalog *asset.Catalog, name asset.Name, loop bool) (*eaudio.Player, error) {
	data, ok := catalog.Sound(name)
	if !ok {
		return nil, asset.ErrMissing
	}
	stream, err := wav.DecodeWithSampleRate(sampleRate, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	if loop {
		return ctx.NewPlayer(eaudio.NewInfiniteLoop(stream, stream.Length()))
	}
	return ctx.NewPlayer(stream)
}

// Play restarts the effect from the beginning.
func (s *Sounds) Play(sound audio.Sound) {
	p, ok := s.effects[sound]
	if !ok {
		return
	}
	_ = p.Rewind()
	p.Play()
}

func (s *Sounds) StartMusic() {
	if s.music == nil {
		return
	}
	_ = s.music.Rewind()
	s.music.Play()
}

func (s *Sounds) StopMusic() {
	if s.music == nil {
		return
	}
	s.music.Pause()
}
