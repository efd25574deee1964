package audio

import (
	"testing"
	"time"

	"github.com/lixenwraith/drape/parameter"
)

func TestPlayer_ShouldCue(t *testing.T) {
	p := NewPlayer(nil)
	t0 := time.Unix(1000, 0)

	if p.ShouldCue(0, t0) {
		t.Error("No contacts should not cue")
	}
	if !p.ShouldCue(3, t0) {
		t.Error("Contact onset should cue")
	}
	if p.ShouldCue(3, t0.Add(time.Second)) {
		t.Error("Steady contacts should not cue")
	}
	if p.ShouldCue(5, t0.Add(time.Second+parameter.ContactCueMinGap/2)) {
		t.Error("Growth inside min gap should not cue")
	}
	if !p.ShouldCue(8, t0.Add(2*time.Second)) {
		t.Error("Growth after min gap should cue")
	}
	if p.ShouldCue(2, t0.Add(3*time.Second)) {
		t.Error("Shrinking contacts should not cue")
	}
}

func TestPlayer_DisabledIsNoop(t *testing.T) {
	p := NewPlayer(DefaultConfig())

	if err := p.Initialize(); err != nil {
		t.Fatalf("Initialize disabled: %v", err)
	}
	if p.Initialized() {
		t.Error("Disabled player must not open the speaker")
	}
	if err := p.OnContacts(10, 100, time.Now()); err != nil {
		t.Errorf("OnContacts on uninitialized player: %v", err)
	}
	p.Close()
}
