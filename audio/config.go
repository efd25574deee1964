package audio

import (
	"os"
	"strconv"

	"github.com/lixenwraith/drape/parameter"
)

// Config holds playback settings
type Config struct {
	Enabled    bool
	Volume     float64 // master gain in [0,1]
	SampleRate int
}

// DefaultConfig returns audio disabled at default volume
func DefaultConfig() *Config {
	return &Config{
		Enabled:    false,
		Volume:     parameter.AudioDefaultVolume,
		SampleRate: parameter.AudioSampleRate,
	}
}

// LoadConfig applies DRAPE_AUDIO_* environment overrides to the defaults
func LoadConfig() *Config {
	cfg := DefaultConfig()

	if enabled := os.Getenv("DRAPE_AUDIO_ENABLED"); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	// Volume is 0-100 in the environment
	if volume := os.Getenv("DRAPE_AUDIO_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.Volume = min(max(float64(val)/100.0, 0), 1)
		}
	}

	if sampleRate := os.Getenv("DRAPE_AUDIO_SAMPLE_RATE"); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			cfg.SampleRate = val
		}
	}

	return cfg
}
