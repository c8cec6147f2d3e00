package config

import "time"

// Options are the command-line overrides shared by the frontends
type Options struct {
	Path string // optional TOML file
	Seed uint64 // 0 keeps the file/env seed
	Mute bool
}

// Resolve layers defaults, file, environment and flags, then validates
// A zero seed after all layers is replaced by the clock
func Resolve(opts Options) (*Config, error) {
	cfg := Default()
	if opts.Path != "" {
		loaded, err := Load(opts.Path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	cfg.ApplyEnv()

	if opts.Mute {
		cfg.Audio.Enabled = false
	}
	if opts.Seed != 0 {
		cfg.Seed = opts.Seed
	}
	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
