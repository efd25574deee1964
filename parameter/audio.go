package parameter

import "time"

// Audio hardware settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 100 * time.Millisecond

	// AudioDefaultVolume is the master gain in [0,1]
	AudioDefaultVolume = 0.6
)

// Contact cue: a short cloth brush (filtered noise) over a low sine body
const (
	ContactCueDuration = 120 * time.Millisecond
	ContactCueAttack   = 8 * time.Millisecond
	ContactCueRelease  = 90 * time.Millisecond

	ContactCueToneFreq  = 180.0 // Hz
	ContactCueToneGain  = 0.35
	ContactCueNoiseGain = 0.65

	// ContactCueMinGap between consecutive cues
	ContactCueMinGap = 150 * time.Millisecond

	// ContactCueMinIntensity floors the gain of a cue from a single touching particle
	ContactCueMinIntensity = 0.2
)
