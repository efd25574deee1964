package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/drape/parameter"
)

// Player routes contact cues to the speaker
// Every method is a no-op until Initialize succeeds, so callers may ignore init errors
type Player struct {
	mu          sync.Mutex
	cfg         *Config
	mixer       *beep.Mixer
	initialized bool

	lastCue      time.Time
	lastContacts int
}

// NewPlayer creates a player, nil cfg uses DefaultConfig
func NewPlayer(cfg *Config) *Player {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &Player{
		cfg:   cfg,
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker and starts the mixer
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized || !p.cfg.Enabled {
		return nil
	}

	rate := beep.SampleRate(p.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(parameter.AudioBufferDuration)); err != nil {
		return err
	}

	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Initialized reports whether the speaker is open
func (p *Player) Initialized() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.initialized
}

// ShouldCue reports whether a frame's contacts warrant a new cue
// A cue fires on contact onset or when the touching set grows, rate limited by ContactCueMinGap
func (p *Player) ShouldCue(contacts int, now time.Time) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.shouldCueLocked(contacts, now)
}

func (p *Player) shouldCueLocked(contacts int, now time.Time) bool {
	prev := p.lastContacts
	p.lastContacts = contacts

	if contacts <= prev {
		return false
	}
	if !p.lastCue.IsZero() && now.Sub(p.lastCue) < parameter.ContactCueMinGap {
		return false
	}
	p.lastCue = now
	return true
}

// OnContacts feeds the last frame's contact count, playing a cue when warranted
// particles scales the cue intensity
func (p *Player) OnContacts(contacts, particles int, now time.Time) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.shouldCueLocked(contacts, now) || !p.initialized {
		return nil
	}

	cue, err := ContactCue(p.cfg, ContactIntensity(contacts, particles))
	if err != nil {
		return err
	}

	speaker.Lock()
	p.mixer.Add(cue)
	speaker.Unlock()
	return nil
}

// Close stops playback and releases the speaker
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()

	speaker.Close()
	p.initialized = false
}
