package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/drape/audio"
	"github.com/lixenwraith/drape/parameter"
	"github.com/lixenwraith/drape/preset"
)

func main() {
	presetName := flag.String("preset", "", "preset name to load from the presets directory")
	presetDir := flag.String("presets", "presets", "presets directory")
	debug := flag.Bool("debug", false, "write logs to "+logDir+"/"+logFileName)
	sound := flag.Bool("sound", false, "play contact cues")
	flag.Parse()

	if logFile := setupLogging(*debug); logFile != nil {
		defer logFile.Close()
	}

	p, err := loadPreset(preset.NewManager(*presetDir), *presetName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "preset: %v\n", err)
		os.Exit(1)
	}

	audioCfg := audio.LoadConfig()
	if *sound {
		audioCfg.Enabled = true
	}
	player := audio.NewPlayer(audioCfg)
	if err := player.Initialize(); err != nil {
		// Non-fatal, sandbox runs silent
		log.Printf("Audio initialization failed: %v", err)
	}
	defer player.Close()

	sb, err := newSandbox(p, player)
	if err != nil {
		fmt.Fprintf(os.Stderr, "sandbox: %v\n", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "screen init: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	run(screen, sb)
}

// loadPreset returns the named preset, or the default when name is empty
func loadPreset(m *preset.Manager, name string) (preset.Preset, error) {
	if name == "" {
		return preset.Default(), nil
	}
	if !m.Exists(name) {
		return preset.Preset{}, fmt.Errorf("%s not found", m.FilePath(name))
	}
	return m.Load(name)
}

func run(screen tcell.Screen, sb *sandbox) {
	ticker := time.NewTicker(parameter.SandboxFramePeriod)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	}()

	lastTick := time.Now()
	for {
		select {
		case ev, ok := <-eventChan:
			if !ok {
				return
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if !sb.handleKey(ev) {
					return
				}
			case *tcell.EventResize:
				screen.Sync()
			}

		case now := <-ticker.C:
			dt := min(float32(now.Sub(lastTick).Seconds()), parameter.SandboxMaxDt)
			lastTick = now

			sb.step(dt, now)
			sb.draw(screen)
		}
	}
}
