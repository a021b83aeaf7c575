// Package audio plays short synthesized cues for editor and search events.
// Every operation is a no-op until Initialize succeeds, so the visualizer
// runs unchanged on machines without an audio device.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/pathviz/constants"
)

const sampleRate = beep.SampleRate(constants.AudioSampleRate)

// SoundManager mixes cue sounds into a single speaker stream
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewSoundManager creates an uninitialized sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker; safe to call more than once
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(constants.AudioBufferDuration)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Initialized reports whether cues are audible
func (sm *SoundManager) Initialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// Cleanup silences pending cues and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sm.initialized = false
}

// PlayPlace plays a click when a cell is designated
func (sm *SoundManager) PlayPlace() {
	sm.playTone(constants.PlaceSoundFreq, constants.PlaceSoundDuration)
}

// PlayReveal plays a short blip for each revealed route cell
func (sm *SoundManager) PlayReveal() {
	sm.playTone(constants.RevealSoundFreq, constants.RevealSoundDuration)
}

// PlayFound plays a rising chime when a route is discovered
func (sm *SoundManager) PlayFound() {
	sm.play(beep.Take(sampleRate.N(constants.FoundSoundDuration), NewChimeGenerator(sampleRate, constants.FoundSoundFreq)))
}

// PlayNoPath plays a low buzz when the frontier is exhausted
func (sm *SoundManager) PlayNoPath() {
	sm.play(beep.Take(sampleRate.N(constants.NoPathSoundDuration), NewBuzzGenerator(sampleRate, constants.NoPathSoundFreq)))
}

func (sm *SoundManager) playTone(freq float64, d time.Duration) {
	sm.mu.Lock()
	ok := sm.initialized
	sm.mu.Unlock()
	if !ok {
		return
	}

	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return
	}
	sm.play(beep.Take(sampleRate.N(d), sine))
}

func (sm *SoundManager) play(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// BuzzGenerator generates a low harmonic buzz with a short fade-in
type BuzzGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

// NewBuzzGenerator creates a buzz sound generator
func NewBuzzGenerator(sr beep.SampleRate, freq float64) *BuzzGenerator {
	return &BuzzGenerator{sr: sr, freq: freq}
}

func (g *BuzzGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		sample := 0.3*math.Sin(2*math.Pi*g.freq*t) +
			0.15*math.Sin(2*math.Pi*g.freq*2*t) +
			0.075*math.Sin(2*math.Pi*g.freq*3*t)

		envelope := math.Min(t/0.02, 1.0)
		sample *= envelope * 0.2

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *BuzzGenerator) Err() error {
	return nil
}

// ChimeGenerator generates a decaying two-partial chime that glides up an octave
type ChimeGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

// NewChimeGenerator creates a chime sound generator
func NewChimeGenerator(sr beep.SampleRate, freq float64) *ChimeGenerator {
	return &ChimeGenerator{sr: sr, freq: freq}
}

func (g *ChimeGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		glide := g.freq * (1 + math.Min(t/0.1, 1.0))
		envelope := math.Exp(-t * 10)
		sample := envelope * (0.25*math.Sin(2*math.Pi*glide*t) + 0.1*math.Sin(2*math.Pi*glide*1.5*t))

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ChimeGenerator) Err() error {
	return nil
}
