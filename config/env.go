package config

import (
	"os"
	"strconv"
)

// Environment overrides, applied after file load
const (
	EnvAudioEnabled = "CART_CHASE_AUDIO_ENABLED"
	EnvMasterVolume = "CART_CHASE_MASTER_VOLUME" // 0-100
	EnvSampleRate   = "CART_CHASE_SAMPLE_RATE"
	EnvSeed         = "CART_CHASE_SEED"
)

// ApplyEnv overlays environment variables; malformed values are ignored
func (c *Config) ApplyEnv() {
	if enabled := os.Getenv(EnvAudioEnabled); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			c.Audio.Enabled = val
		}
	}

	// Master volume (0-100 converted to 0.0-1.0)
	if volume := os.Getenv(EnvMasterVolume); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			c.Audio.MasterVolume = float64(val) / 100.0
			if c.Audio.MasterVolume < 0 {
				c.Audio.MasterVolume = 0
			}
			if c.Audio.MasterVolume > 1 {
				c.Audio.MasterVolume = 1
			}
		}
	}

	if sampleRate := os.Getenv(EnvSampleRate); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			c.Audio.SampleRate = val
		}
	}

	if seed := os.Getenv(EnvSeed); seed != "" {
		if val, err := strconv.ParseUint(seed, 10, 64); err == nil {
			c.Seed = val
		}
	}
}
