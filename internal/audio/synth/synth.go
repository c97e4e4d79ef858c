// Package synth plays procedurally generated effects through the system speaker.
// It backs the terminal frontends, which have no sample files to load.
package synth

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/tomz197/gunrunner/internal/audio"
)

const sampleRate = beep.SampleRate(44100)

// Durations of the one-shot effects.
const (
	jumpDuration  = 150 * time.Millisecond
	shootDuration = 80 * time.Millisecond
)

// SoundManager mixes effects and the background loop into a single speaker stream.
// Every method is safe to call before Initialize or after a failed Initialize;
// such calls are silently dropped.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	music       *beep.Ctrl
	initialized bool
}

var _ audio.Player = (*SoundManager)(nil)

// NewSoundManager creates an uninitialized sound manager.
func NewSoundManager() *SoundManager {
	return &SoundManager{mixer: &beep.Mixer{}}
}

// Initialize opens the speaker. Failure wraps audio.ErrUnavailable.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("%w: %v", audio.ErrUnavailable, err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Play starts a fresh instance of the effect.
func (sm *SoundManager) Play(s audio.Sound) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	var streamer beep.Streamer
	switch s {
	case audio.Jump:
		streamer = beep.Take(sampleRate.N(jumpDuration), NewSweepGenerator(sampleRate, 220, 660, jumpDuration))
	case audio.Shoot:
		streamer = beep.Take(sampleRate.N(shootDuration), NewBlipGenerator(sampleRate, 880, shootDuration))
	default:
		return
	}

	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
}

// StartMusic restarts the background loop from the beginning.
func (sm *SoundManager) StartMusic() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	ctrl := &beep.Ctrl{Streamer: NewArpeggioGenerator(sampleRate)}
	speaker.Lock()
	if sm.music != nil {
		sm.music.Paused = true
		sm.music.Streamer = nil
	}
	sm.mixer.Add(ctrl)
	speaker.Unlock()
	sm.music = ctrl
}

// StopMusic stops the background loop.
func (sm *SoundManager) StopMusic() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.music == nil {
		return
	}
	speaker.Lock()
	sm.music.Paused = true
	sm.music.Streamer = nil
	speaker.Unlock()
	sm.music = nil
}

// Close silences everything. The manager can be initialized again afterwards.
func (sm *SoundManager) Close() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Clear()
	sm.mixer.Clear()
	sm.music = nil
	sm.initialized = false
}

// SweepGenerator produces a sine whose pitch glides linearly between two frequencies.
type SweepGenerator struct {
	sr       beep.SampleRate
	from, to float64
	total    int
	pos      int
	phase    float64
}

// NewSweepGenerator creates a sweep lasting d.
func NewSweepGenerator(sr beep.SampleRate, from, to float64, d time.Duration) *SweepGenerator {
	return &SweepGenerator{sr: sr, from: from, to: to, total: max(1, sr.N(d))}
}

func (g *SweepGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		progress := math.Min(float64(g.pos)/float64(g.total), 1)
		freq := g.from + (g.to-g.from)*progress
		g.phase += 2 * math.Pi * freq / float64(g.sr)
		sample := 0.2 * (1 - progress) * math.Sin(g.phase)
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *SweepGenerator) Err() error { return nil }

// BlipGenerator produces a short decaying square wave.
type BlipGenerator struct {
	sr    beep.SampleRate
	freq  float64
	total int
	pos   int
}

// NewBlipGenerator creates a blip lasting d.
func NewBlipGenerator(sr beep.SampleRate, freq float64, d time.Duration) *BlipGenerator {
	return &BlipGenerator{sr: sr, freq: freq, total: max(1, sr.N(d))}
}

func (g *BlipGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		envelope := math.Max(0, 1-float64(g.pos)/float64(g.total))
		sample := 0.1 * envelope
		if math.Sin(2*math.Pi*g.freq*t) < 0 {
			sample = -sample
		}
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *BlipGenerator) Err() error { return nil }

// arpeggio notes in Hz (A minor).
var arpeggio = []float64{220.00, 261.63, 329.63, 261.63, 196.00, 246.94, 293.66, 246.94}

// ArpeggioGenerator loops a soft triangle-wave arpeggio forever.
type ArpeggioGenerator struct {
	sr      beep.SampleRate
	noteLen int
	pos     int
	phase   float64
}

// NewArpeggioGenerator creates the background loop.
func NewArpeggioGenerator(sr beep.SampleRate) *ArpeggioGenerator {
	return &ArpeggioGenerator{sr: sr, noteLen: sr.N(200 * time.Millisecond)}
}

func (g *ArpeggioGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		note := (g.pos / g.noteLen) % len(arpeggio)
		within := float64(g.pos%g.noteLen) / float64(g.noteLen)
		g.phase = math.Mod(g.phase+arpeggio[note]/float64(g.sr), 1)
		tri := 4*math.Abs(g.phase-0.5) - 1
		sample := 0.05 * (1 - within*0.7) * tri
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ArpeggioGenerator) Err() error { return nil }
