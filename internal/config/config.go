package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/collide/internal/collision"
	"github.com/san-kum/collide/internal/trajectory"
)

const (
	DefaultMass1        = 5.0
	DefaultVelocity1    = 5.0
	DefaultMass2        = 5.0
	DefaultVelocity2    = -3.0
	MinMass             = 0.1
	MassStep            = 0.1
	VelocityStep        = 0.1
	DefaultFrameDelayMs = 100
	DefaultLogPath      = "hypotheses.csv"
	DefaultTheme        = "cyberpunk"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid")

var validate = validator.New()

type Config struct {
	Particles ParticlesConfig `yaml:"particles"`
	Animation AnimationConfig `yaml:"animation"`
	LogPath   string          `yaml:"log_path" validate:"required"`
	Theme     string          `yaml:"theme"`
}

type ParticlesConfig struct {
	Mass1     float64 `yaml:"mass1" validate:"gte=0.1"`
	Velocity1 float64 `yaml:"velocity1"`
	Mass2     float64 `yaml:"mass2" validate:"gte=0.1"`
	Velocity2 float64 `yaml:"velocity2"`
}

type AnimationConfig struct {
	Samples      int     `yaml:"samples" validate:"gte=2"`
	Duration     float64 `yaml:"duration" validate:"gt=0"`
	Offset       float64 `yaml:"offset"`
	FrameDelayMs int     `yaml:"frame_delay_ms" validate:"gt=0"`
}

func DefaultConfig() *Config {
	return &Config{
		Particles: ParticlesConfig{
			Mass1:     DefaultMass1,
			Velocity1: DefaultVelocity1,
			Mass2:     DefaultMass2,
			Velocity2: DefaultVelocity2,
		},
		Animation: AnimationConfig{
			Samples:      trajectory.DefaultSamples,
			Duration:     trajectory.DefaultDuration,
			Offset:       trajectory.DefaultOffset,
			FrameDelayMs: DefaultFrameDelayMs,
		},
		LogPath: DefaultLogPath,
		Theme:   DefaultTheme,
	}
}

// Load reads a YAML file over DefaultConfig and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks struct constraints: both masses at least MinMass, at
// least two samples, positive duration and frame delay.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

// ParticlePair returns the configured initial particle pair.
func (c *Config) ParticlePair() (collision.Particle, collision.Particle) {
	return collision.Particle{Mass: c.Particles.Mass1, Velocity: c.Particles.Velocity1},
		collision.Particle{Mass: c.Particles.Mass2, Velocity: c.Particles.Velocity2}
}

func (c *Config) TrajectorySpec() trajectory.Spec {
	return trajectory.Spec{Duration: c.Animation.Duration, Offset: c.Animation.Offset}
}

func (c *Config) FrameDelay() time.Duration {
	return time.Duration(c.Animation.FrameDelayMs) * time.Millisecond
}

// ValidateParticles applies the form constraints to a single pair.
func ValidateParticles(p1, p2 collision.Particle) error {
	pc := ParticlesConfig{Mass1: p1.Mass, Velocity1: p1.Velocity, Mass2: p2.Mass, Velocity2: p2.Velocity}
	if err := validate.Struct(pc); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}
