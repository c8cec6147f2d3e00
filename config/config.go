// Package config holds the tunables of a chase session and loads overrides from TOML and environment
package config

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/cart-chase/parameter"
)

// ErrInvalid wraps every validation failure
var ErrInvalid = errors.New("invalid config")

type Config struct {
	// Seed for the simulation PRNG, 0 lets the frontend pick one
	Seed uint64 `toml:"seed"`

	Arena  Arena             `toml:"arena"`
	Cart   Cart              `toml:"cart"`
	Agents Agents            `toml:"agents"`
	Rules  Rules             `toml:"rules"`
	Audio  Audio             `toml:"audio"`
	Keys   map[string]string `toml:"keys"`
}

type Arena struct {
	Radius float64 `toml:"radius"`
}

type Cart struct {
	Speed  float64 `toml:"speed"`
	Radius float64 `toml:"radius"`
}

type Agents struct {
	Count        int     `toml:"count"`
	WanderSpeed  float64 `toml:"wander_speed"`
	ChaseSpeed   float64 `toml:"chase_speed"`
	Radius       float64 `toml:"radius"`
	HeadingNoise float64 `toml:"heading_noise"`
}

type Rules struct {
	CatchRadius  float64 `toml:"catch_radius"`
	AttackRadius float64 `toml:"attack_radius"`
	SurvivalTime float64 `toml:"survival_time"` // seconds
}

type Audio struct {
	Enabled       bool    `toml:"enabled"`
	SampleRate    int     `toml:"sample_rate"`
	BufferMs      int     `toml:"buffer_ms"`
	MasterVolume  float64 `toml:"master_volume"`
	AmbientVolume float64 `toml:"ambient_volume"`
	ChaseVolume   float64 `toml:"chase_volume"`
	EnemyVolume   float64 `toml:"enemy_volume"`
	EnemyFalloff  float64 `toml:"enemy_falloff"`
	SmoothingMs   float64 `toml:"smoothing_ms"`
}

// BufferDuration returns the speaker buffer as a duration
func (a Audio) BufferDuration() time.Duration {
	return time.Duration(a.BufferMs) * time.Millisecond
}

// Smoothing returns the position ramp in seconds
func (a Audio) Smoothing() float64 {
	return a.SmoothingMs / 1000
}

// Default returns the stock tuning
func Default() *Config {
	return &Config{
		Arena: Arena{Radius: parameter.ArenaRadius},
		Cart: Cart{
			Speed:  parameter.CartSpeed,
			Radius: parameter.CartRadius,
		},
		Agents: Agents{
			Count:        parameter.AgentCount,
			WanderSpeed:  parameter.AgentWanderSpeed,
			ChaseSpeed:   parameter.AgentChaseSpeed,
			Radius:       parameter.AgentRadius,
			HeadingNoise: parameter.AgentHeadingNoise,
		},
		Rules: Rules{
			CatchRadius:  parameter.CatchRadius,
			AttackRadius: parameter.AttackRadius,
			SurvivalTime: parameter.SurvivalTime,
		},
		Audio: Audio{
			Enabled:       true,
			SampleRate:    parameter.AudioSampleRate,
			BufferMs:      int(parameter.AudioBufferDuration / time.Millisecond),
			MasterVolume:  parameter.AudioMasterVolume,
			AmbientVolume: parameter.AudioAmbientVolume,
			ChaseVolume:   parameter.AudioChaseVolume,
			EnemyVolume:   parameter.AudioEnemyVolume,
			EnemyFalloff:  parameter.AudioEnemyFalloff,
			SmoothingMs:   float64(parameter.AudioPositionSmoothing) / float64(time.Millisecond),
		},
	}
}

// Load decodes a TOML file over the defaults
// Keys absent from the file keep their default; unknown keys are an error
func Load(path string) (*Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("config %s: unknown key %q: %w", path, undecoded[0].String(), ErrInvalid)
	}
	return cfg, nil
}

// Parse decodes TOML text over the defaults
func Parse(data string) (*Config, error) {
	cfg := Default()
	md, err := toml.Decode(data, cfg)
	if err != nil {
		return nil, fmt.Errorf("config parse: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("config: unknown key %q: %w", undecoded[0].String(), ErrInvalid)
	}
	return cfg, nil
}

// Validate rejects tunings the simulation cannot run with
// Comparisons are written so NaN fails them
func (c *Config) Validate() error {
	for name, v := range map[string]float64{
		"arena.radius":         c.Arena.Radius,
		"cart.speed":           c.Cart.Speed,
		"cart.radius":          c.Cart.Radius,
		"agents.wander_speed":  c.Agents.WanderSpeed,
		"agents.chase_speed":   c.Agents.ChaseSpeed,
		"agents.radius":        c.Agents.Radius,
		"agents.heading_noise": c.Agents.HeadingNoise,
		"rules.catch_radius":   c.Rules.CatchRadius,
		"rules.attack_radius":  c.Rules.AttackRadius,
		"rules.survival_time":  c.Rules.SurvivalTime,
		"audio.enemy_falloff":  c.Audio.EnemyFalloff,
		"audio.smoothing_ms":   c.Audio.SmoothingMs,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%s %v must be finite: %w", name, v, ErrInvalid)
		}
	}

	switch {
	case !(c.Arena.Radius > 0):
		return fmt.Errorf("arena.radius %v must be positive: %w", c.Arena.Radius, ErrInvalid)
	case !(c.Cart.Radius >= 0 && c.Cart.Radius < c.Arena.Radius):
		return fmt.Errorf("cart.radius %v must be in [0, arena.radius): %w", c.Cart.Radius, ErrInvalid)
	case !(c.Cart.Speed >= 0):
		return fmt.Errorf("cart.speed %v must not be negative: %w", c.Cart.Speed, ErrInvalid)
	case c.Agents.Count < 1:
		return fmt.Errorf("agents.count %d must be at least 1: %w", c.Agents.Count, ErrInvalid)
	case !(c.Agents.Radius >= 0 && c.Agents.Radius < c.Arena.Radius):
		return fmt.Errorf("agents.radius %v must be in [0, arena.radius): %w", c.Agents.Radius, ErrInvalid)
	case !(c.Agents.WanderSpeed >= 0 && c.Agents.ChaseSpeed >= 0):
		return fmt.Errorf("agent speeds must not be negative: %w", ErrInvalid)
	case !(c.Rules.CatchRadius > 0 && c.Rules.AttackRadius > 0):
		return fmt.Errorf("rules radii must be positive: %w", ErrInvalid)
	case !(c.Rules.SurvivalTime > 0):
		return fmt.Errorf("rules.survival_time %v must be positive: %w", c.Rules.SurvivalTime, ErrInvalid)
	}

	for name, v := range map[string]float64{
		"master_volume":  c.Audio.MasterVolume,
		"ambient_volume": c.Audio.AmbientVolume,
		"chase_volume":   c.Audio.ChaseVolume,
		"enemy_volume":   c.Audio.EnemyVolume,
	} {
		if !(v >= 0 && v <= 1) {
			return fmt.Errorf("audio.%s %v must be in [0, 1]: %w", name, v, ErrInvalid)
		}
	}
	if !(c.Audio.EnemyFalloff > 0) {
		return fmt.Errorf("audio.enemy_falloff must be positive: %w", ErrInvalid)
	}
	if !(c.Audio.SmoothingMs >= 0) {
		return fmt.Errorf("audio.smoothing_ms must not be negative: %w", ErrInvalid)
	}
	if c.Audio.SampleRate <= 0 || c.Audio.BufferMs <= 0 {
		return fmt.Errorf("audio sample_rate and buffer_ms must be positive: %w", ErrInvalid)
	}
	return nil
}
