package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Expected default config to validate, got %v", err)
	}
	if cfg.Agents.Count != 5 {
		t.Errorf("Expected 5 agents, got %d", cfg.Agents.Count)
	}
	if cfg.Agents.ChaseSpeed != 8.0 || cfg.Agents.WanderSpeed != 2.0 {
		t.Errorf("Unexpected agent speeds %v/%v", cfg.Agents.WanderSpeed, cfg.Agents.ChaseSpeed)
	}
	if cfg.Rules.CatchRadius != 5.0 || cfg.Rules.AttackRadius != 1.0 || cfg.Rules.SurvivalTime != 5.0 {
		t.Errorf("Unexpected rules %+v", cfg.Rules)
	}
}

func TestParseOverridesKeepDefaults(t *testing.T) {
	cfg, err := Parse(`
seed = 1234

[arena]
radius = 30.0

[rules]
survival_time = 7.5

[keys]
h = "left"
`)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if cfg.Seed != 1234 {
		t.Errorf("Expected seed 1234, got %d", cfg.Seed)
	}
	if cfg.Arena.Radius != 30 {
		t.Errorf("Expected arena radius 30, got %v", cfg.Arena.Radius)
	}
	if cfg.Rules.SurvivalTime != 7.5 {
		t.Errorf("Expected survival 7.5, got %v", cfg.Rules.SurvivalTime)
	}
	if cfg.Rules.CatchRadius != 5.0 {
		t.Errorf("Expected untouched catch radius 5, got %v", cfg.Rules.CatchRadius)
	}
	if cfg.Keys["h"] != "left" {
		t.Errorf("Expected key binding h=left, got %q", cfg.Keys["h"])
	}
}

func TestParseUnknownKey(t *testing.T) {
	_, err := Parse("[arena]\nradius = 10.0\nwidth = 3\n")
	if !errors.Is(err, ErrInvalid) {
		t.Errorf("Expected ErrInvalid for unknown key, got %v", err)
	}
}

func TestParseSyntaxError(t *testing.T) {
	if _, err := Parse("[arena\nradius = "); err == nil {
		t.Error("Expected syntax error")
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cart-chase.toml")
	if err := os.WriteFile(path, []byte("[cart]\nspeed = 12.0\n"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Cart.Speed != 12 {
		t.Errorf("Expected cart speed 12, got %v", cfg.Cart.Speed)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero arena", func(c *Config) { c.Arena.Radius = 0 }},
		{"cart larger than arena", func(c *Config) { c.Cart.Radius = 25 }},
		{"no agents", func(c *Config) { c.Agents.Count = 0 }},
		{"negative chase speed", func(c *Config) { c.Agents.ChaseSpeed = -1 }},
		{"zero attack radius", func(c *Config) { c.Rules.AttackRadius = 0 }},
		{"zero survival", func(c *Config) { c.Rules.SurvivalTime = 0 }},
		{"loud master", func(c *Config) { c.Audio.MasterVolume = 1.5 }},
		{"zero falloff", func(c *Config) { c.Audio.EnemyFalloff = 0 }},
		{"nan arena", func(c *Config) { c.Arena.Radius = math.NaN() }},
		{"infinite arena", func(c *Config) { c.Arena.Radius = math.Inf(1) }},
		{"nan catch radius", func(c *Config) { c.Rules.CatchRadius = math.NaN() }},
		{"nan survival", func(c *Config) { c.Rules.SurvivalTime = math.NaN() }},
		{"nan cart speed", func(c *Config) { c.Cart.Speed = math.NaN() }},
		{"nan volume", func(c *Config) { c.Audio.ChaseVolume = math.NaN() }},
		{"nan falloff", func(c *Config) { c.Audio.EnemyFalloff = math.NaN() }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
				t.Errorf("Expected ErrInvalid, got %v", err)
			}
		})
	}
}

func TestValidateRejectsParsedNaN(t *testing.T) {
	inputs := []string{
		"[arena]\nradius = nan\n",
		"[rules]\ncatch_radius = nan\nattack_radius = nan\n",
		"[agents]\nwander_speed = inf\n",
	}

	for _, in := range inputs {
		cfg, err := Parse(in)
		if err != nil {
			t.Fatalf("Parse(%q) failed: %v", in, err)
		}
		if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
			t.Errorf("Parse(%q): expected ErrInvalid, got %v", in, err)
		}
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv(EnvAudioEnabled, "false")
	t.Setenv(EnvMasterVolume, "150")
	t.Setenv(EnvSampleRate, "48000")
	t.Setenv(EnvSeed, "77")

	cfg := Default()
	cfg.ApplyEnv()

	if cfg.Audio.Enabled {
		t.Error("Expected audio disabled by env")
	}
	if cfg.Audio.MasterVolume != 1 {
		t.Errorf("Expected master volume clamped to 1, got %v", cfg.Audio.MasterVolume)
	}
	if cfg.Audio.SampleRate != 48000 {
		t.Errorf("Expected sample rate 48000, got %d", cfg.Audio.SampleRate)
	}
	if cfg.Seed != 77 {
		t.Errorf("Expected seed 77, got %d", cfg.Seed)
	}
}

func TestApplyEnvIgnoresMalformed(t *testing.T) {
	t.Setenv(EnvAudioEnabled, "maybe")
	t.Setenv(EnvSampleRate, "-1")

	cfg := Default()
	cfg.ApplyEnv()

	if !cfg.Audio.Enabled {
		t.Error("Expected malformed bool to be ignored")
	}
	if cfg.Audio.SampleRate != 44100 {
		t.Errorf("Expected default sample rate, got %d", cfg.Audio.SampleRate)
	}
}

func TestResolveLayers(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cart-chase.toml")
	data := "seed = 11\n[cart]\nspeed = 12.0\n[audio]\nenabled = true\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	t.Setenv(EnvSeed, "22")

	cfg, err := Resolve(Options{Path: path, Mute: true})
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if cfg.Cart.Speed != 12 {
		t.Errorf("Expected file cart speed 12, got %v", cfg.Cart.Speed)
	}
	if cfg.Seed != 22 {
		t.Errorf("Expected env seed 22 over file, got %d", cfg.Seed)
	}
	if cfg.Audio.Enabled {
		t.Error("Expected mute flag to disable audio")
	}

	cfg, err = Resolve(Options{Path: path, Seed: 33})
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if cfg.Seed != 33 {
		t.Errorf("Expected flag seed 33, got %d", cfg.Seed)
	}
}

func TestResolveClockSeed(t *testing.T) {
	t.Setenv(EnvSeed, "")
	cfg, err := Resolve(Options{})
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if cfg.Seed == 0 {
		t.Error("Expected clock seed when none configured")
	}
}

func TestResolveMissingFile(t *testing.T) {
	if _, err := Resolve(Options{Path: filepath.Join(t.TempDir(), "missing.toml")}); err == nil {
		t.Error("Expected error for missing file")
	}
}
