package constants

import "time"

// Audio Constants
const (
	// AudioSampleRate is the beep speaker sample rate in Hz
	AudioSampleRate = 48000

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond
)

// Cue Sound Timing
const (
	PlaceSoundDuration  = 40 * time.Millisecond
	RevealSoundDuration = 25 * time.Millisecond
	FoundSoundDuration  = 250 * time.Millisecond
	NoPathSoundDuration = 150 * time.Millisecond
)

// Cue Sound Frequencies (Hz)
const (
	PlaceSoundFreq  = 660
	RevealSoundFreq = 880
	FoundSoundFreq  = 1320
	NoPathSoundFreq = 120
)
