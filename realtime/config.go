package realtime

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

const (
	DefaultTickRate         = 16667 * time.Microsecond // 60 FPS
	DefaultFixedStep        = 20 * time.Millisecond
	DefaultMaxFixedSteps    = 5
	DefaultMaxPostsPerFrame = 1000
)

// Config configures a Loop. Zero fields take their defaults.
type Config struct {
	TickRate         time.Duration `env:"ACTIONKIT_TICK_RATE" envDefault:"16.667ms"`
	FixedStep        time.Duration `env:"ACTIONKIT_FIXED_STEP" envDefault:"20ms"`
	MaxFixedSteps    int           `env:"ACTIONKIT_MAX_FIXED_STEPS" envDefault:"5"`
	MaxPostsPerFrame int           `env:"ACTIONKIT_MAX_POSTS" envDefault:"1000"`
}

// ConfigFromEnv loads a Config from ACTIONKIT_* environment variables.
func ConfigFromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg.withDefaults(), nil
}

// Validate rejects negative settings.
func (c Config) Validate() error {
	switch {
	case c.TickRate < 0:
		return fmt.Errorf("tick rate %v is negative", c.TickRate)
	case c.FixedStep < 0:
		return fmt.Errorf("fixed step %v is negative", c.FixedStep)
	case c.MaxFixedSteps < 0:
		return fmt.Errorf("max fixed steps %d is negative", c.MaxFixedSteps)
	case c.MaxPostsPerFrame < 0:
		return fmt.Errorf("max posts per frame %d is negative", c.MaxPostsPerFrame)
	}
	return nil
}

func (c Config) withDefaults() Config {
	if c.TickRate <= 0 {
		c.TickRate = DefaultTickRate
	}
	if c.FixedStep <= 0 {
		c.FixedStep = DefaultFixedStep
	}
	if c.MaxFixedSteps <= 0 {
		c.MaxFixedSteps = DefaultMaxFixedSteps
	}
	if c.MaxPostsPerFrame <= 0 {
		c.MaxPostsPerFrame = DefaultMaxPostsPerFrame
	}
	return c
}
