package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/drape/parameter"
)

// noise generates white noise for a fixed number of samples
type noise struct {
	remaining int
}

// NewNoise creates a bounded white noise streamer
func NewNoise(duration time.Duration, rate beep.SampleRate) beep.Streamer {
	return &noise{remaining: rate.N(duration)}
}

func (n *noise) Stream(samples [][2]float64) (int, bool) {
	if n.remaining <= 0 {
		return 0, false
	}
	count := min(len(samples), n.remaining)
	for i := range count {
		val := rand.Float64()*2 - 1
		samples[i][0] = val
		samples[i][1] = val
	}
	n.remaining -= count
	return count, true
}

func (n *noise) Err() error { return nil }

// lowPass is a one-pole smoothing filter, alpha in (0,1], lower is darker
type lowPass struct {
	streamer beep.Streamer
	alpha    float64
	last     [2]float64
}

// NewLowPass wraps a streamer with a one-pole low-pass filter
func NewLowPass(s beep.Streamer, alpha float64) beep.Streamer {
	return &lowPass{streamer: s, alpha: alpha}
}

func (l *lowPass) Stream(samples [][2]float64) (int, bool) {
	n, ok := l.streamer.Stream(samples)
	for i := range n {
		for ch := range 2 {
			l.last[ch] += l.alpha * (samples[i][ch] - l.last[ch])
			samples[i][ch] = l.last[ch]
		}
	}
	return n, ok
}

func (l *lowPass) Err() error { return l.streamer.Err() }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope creates an attack/release envelope, the stream ends after duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	if e.position >= e.totalSamples {
		return 0, false
	}
	if room := e.totalSamples - e.position; len(samples) > room {
		samples = samples[:room]
	}

	n, ok = e.streamer.Stream(samples)

	releaseStart := e.totalSamples - e.releaseSamples
	for i := range n {
		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = math.Min(vol, float64(e.totalSamples-e.position)/float64(e.releaseSamples))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps a streamer with linear gain
// math.Log2(0) is -Inf, so zero gain is expressed as silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// ContactIntensity maps a contact count to cue gain in [ContactCueMinIntensity, 1]
// Zero contacts or an empty cloth yield zero
func ContactIntensity(contacts, particles int) float64 {
	if contacts <= 0 || particles <= 0 {
		return 0
	}
	ratio := float64(contacts) / float64(particles)
	return math.Max(parameter.ContactCueMinIntensity, math.Min(1, math.Sqrt(ratio)))
}

// ContactCue builds the cloth-on-collider brush sound
// The result terminates after parameter.ContactCueDuration
func ContactCue(cfg *Config, intensity float64) (beep.Streamer, error) {
	rate := beep.SampleRate(cfg.SampleRate)
	duration := parameter.ContactCueDuration

	tone, err := generators.SineTone(rate, parameter.ContactCueToneFreq)
	if err != nil {
		return nil, err
	}
	body := NewEnvelope(beep.Take(rate.N(duration), tone), duration,
		parameter.ContactCueAttack, parameter.ContactCueRelease, rate)

	brush := NewEnvelope(NewLowPass(NewNoise(duration, rate), 0.2), duration,
		parameter.ContactCueAttack, parameter.ContactCueRelease, rate)

	mixed := beep.Mix(
		newVolume(body, parameter.ContactCueToneGain),
		newVolume(brush, parameter.ContactCueNoiseGain),
	)

	return newVolume(mixed, intensity*cfg.Volume), nil
}
