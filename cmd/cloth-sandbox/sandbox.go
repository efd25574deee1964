package main

import (
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/drape/audio"
	"github.com/lixenwraith/drape/cloth"
	"github.com/lixenwraith/drape/parameter"
	"github.com/lixenwraith/drape/preset"
	"github.com/lixenwraith/drape/vmath"
)

// sandbox owns one cloth inside a manager plus the interactive state around it
type sandbox struct {
	preset  preset.Preset
	manager *cloth.Manager
	id      cloth.ID
	rig     *sphereRig
	camera  vmath.Camera
	player  *audio.Player

	wind   mgl32.Vec3
	windOn bool
	paused bool
	frames int
}

func newSandbox(p preset.Preset, player *audio.Player) (*sandbox, error) {
	s := &sandbox{
		preset:  p,
		manager: cloth.NewManager(),
		player:  player,
	}
	if err := s.reset(); err != nil {
		return nil, err
	}
	return s, nil
}

// reset rebuilds the cloth from the preset
func (s *sandbox) reset() error {
	if s.id != 0 {
		s.manager.Remove(s.id)
	}

	cfg := s.preset.Config()
	s.wind = cfg.Wind
	if s.wind.LenSqr() <= parameter.WindMinLengthSq {
		s.wind = mgl32.Vec3(parameter.SandboxWind)
	}
	s.windOn = cfg.Wind.LenSqr() > parameter.WindMinLengthSq

	s.id = s.manager.Create(cfg, s.preset.Origin())
	c := s.cloth()
	if err := s.preset.Apply(c); err != nil {
		return fmt.Errorf("apply preset: %w", err)
	}
	s.applyWind()

	s.rig = attachRig(c)
	s.camera = framingCamera(c)
	s.paused = false
	s.frames = 0

	log.Printf("cloth %d: %dx%d, %d particles, %d constraints, %d colliders",
		s.id, cfg.Width, cfg.Height, c.ParticleCount(), c.ConstraintCount(), len(c.Colliders))
	return nil
}

func (s *sandbox) cloth() *cloth.Cloth {
	c, _ := s.manager.Get(s.id)
	return c
}

func (s *sandbox) applyWind() {
	if s.windOn {
		s.cloth().Config.Wind = s.wind
	} else {
		s.cloth().Config.Wind = mgl32.Vec3{}
	}
}

// framingCamera places the eye in front of the cloth, looking slightly down
func framingCamera(c *cloth.Cloth) vmath.Camera {
	center := clothCenter(c)
	dist := clothExtent(c) * parameter.SandboxCamDistMul
	return vmath.Camera{
		Eye:      mgl32.Vec3{center.X(), center.Y() - clothExtent(c)*0.2 + dist*0.25, center.Z() + dist},
		Pitch:    -parameter.SandboxCamPitch,
		FocalLen: parameter.SandboxFocalLen,
	}
}

// step advances one frame unless paused
func (s *sandbox) step(dt float32, now time.Time) {
	if s.paused {
		return
	}
	c := s.cloth()
	s.rig.step(c)
	s.manager.Update(dt)
	s.frames++

	if !clothFinite(c) {
		log.Printf("cloth %d diverged at frame %d, resetting", s.id, s.frames)
		if err := s.reset(); err != nil {
			log.Printf("reset: %v", err)
		}
		return
	}

	if s.player != nil {
		if err := s.player.OnContacts(c.LastStats().Contacts, c.ParticleCount(), now); err != nil {
			log.Printf("contact cue: %v", err)
		}
	}
}

func clothFinite(c *cloth.Cloth) bool {
	for i := range c.Particles {
		if !vmath.V3FIsFinite(c.Particles[i].Position) {
			return false
		}
	}
	return true
}

// handleKey applies one key event, returning false to quit
func (s *sandbox) handleKey(ev *tcell.EventKey) bool {
	c := s.cloth()

	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyLeft:
		s.rig.nudge(-1, 0)
	case tcell.KeyRight:
		s.rig.nudge(1, 0)
	case tcell.KeyUp:
		s.rig.nudge(0, -1)
	case tcell.KeyDown:
		s.rig.nudge(0, 1)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return false
		case ' ':
			s.paused = !s.paused
		case 'w':
			s.windOn = !s.windOn
			s.applyWind()
		case 'p':
			c.PinTopEdge()
		case 'c':
			c.PinCorners()
		case 'u':
			for i := range c.Particles {
				c.UnpinParticle(i)
			}
		case 'r':
			if err := s.reset(); err != nil {
				log.Printf("reset: %v", err)
			}
		}
	}
	return true
}
