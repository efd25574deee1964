package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/drape/cloth"
	"github.com/lixenwraith/drape/parameter"
)

var (
	styleFree   = tcell.StyleDefault.Foreground(tcell.NewRGBColor(120, 200, 255))
	styleFar    = tcell.StyleDefault.Foreground(tcell.NewRGBColor(60, 100, 140))
	stylePinned = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleRig    = tcell.StyleDefault.Foreground(tcell.NewRGBColor(255, 90, 120))
	styleHUD    = tcell.StyleDefault.Foreground(tcell.NewRGBColor(100, 100, 110))
	stylePaused = tcell.StyleDefault.Foreground(tcell.NewRGBColor(255, 200, 50))
)

// toCell maps normalized camera coordinates to a terminal cell
// Cells are twice as tall as wide, so x is doubled
func toCell(x, y float32, screenW, viewH int) (int, int) {
	scale := float32(viewH) * 0.5
	cx := float32(screenW)/2 + x*scale*2
	cy := float32(viewH)/2 - y*scale
	return int(cx), int(cy)
}

func (s *sandbox) draw(screen tcell.Screen) {
	screen.Clear()
	w, h := screen.Size()
	viewH := h - parameter.SandboxHUDRows
	if viewH <= 0 {
		screen.Show()
		return
	}

	c := s.cloth()
	view := s.camera.ViewTransform()
	camDist := clothExtent(c) * parameter.SandboxCamDistMul

	// Rig first so cloth particles in front overwrite it
	if x, y, _, ok := s.camera.Project(view, s.rig.center(), parameter.SandboxNearZ); ok {
		cx, cy := toCell(x, y, w, viewH)
		if cx >= 0 && cx < w && cy >= 0 && cy < viewH {
			screen.SetContent(cx, cy, '@', nil, styleRig)
		}
	}

	for i := range c.Particles {
		p := &c.Particles[i]
		x, y, depth, ok := s.camera.Project(view, p.Position, parameter.SandboxNearZ)
		if !ok {
			continue
		}
		cx, cy := toCell(x, y, w, viewH)
		if cx < 0 || cx >= w || cy < 0 || cy >= viewH {
			continue
		}

		ch, style := '•', styleFree
		switch {
		case p.Pinned:
			ch, style = 'o', stylePinned
		case depth > camDist:
			ch, style = '·', styleFar
		}
		screen.SetContent(cx, cy, ch, nil, style)
	}

	s.drawHUD(screen, c, w, h)
	screen.Show()
}

func (s *sandbox) drawHUD(screen tcell.Screen, c *cloth.Cloth, w, h int) {
	wind := "off"
	if s.windOn {
		wind = "on"
	}
	status := fmt.Sprintf("frame %d  particles %d  constraints %d  contacts %d  wind %s  KE %.4f",
		s.frames, c.ParticleCount(), c.ConstraintCount(), c.LastStats().Contacts, wind, c.KineticEnergy())
	writeStr(screen, 1, h-2, status, styleHUD)

	if s.paused {
		writeStr(screen, w-9, h-2, "[PAUSED]", stylePaused)
	}

	writeStr(screen, 1, h-1, "arrows:sphere  w:wind  p:pin top  c:corners  u:unpin  space:pause  r:reset  q:quit", styleHUD)
}

func writeStr(screen tcell.Screen, x, y int, s string, style tcell.Style) {
	for _, r := range s {
		screen.SetContent(x, y, r, nil, style)
		x++
	}
}
