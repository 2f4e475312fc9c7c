package actionkit

import "log/slog"

// Option configures a Kit or a Driver.
type Option func(*config)

type config struct {
	pool      *Pool
	logger    *slog.Logger
	publisher Publisher
}

func newConfig(opts []Option) config {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.logger == nil {
		cfg.logger = slog.New(slog.DiscardHandler)
	}
	return cfg
}

// WithPool makes a Kit draw from an existing pool instead of a new one.
func WithPool(p *Pool) Option {
	return func(c *config) {
		c.pool = p
	}
}

// WithLogger sets the logger used for lifecycle records.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		c.logger = l
	}
}

// WithPublisher forwards driver lifecycle records to p.
func WithPublisher(p Publisher) Option {
	return func(c *config) {
		c.publisher = p
	}
}

// RunOption configures how an action is scheduled on a Driver.
type RunOption func(*runConfig)

type runConfig struct {
	phase      Phase
	onComplete func()
}

// OnComplete registers fn to run once when the action finishes on its own.
// It does not run when the action is stopped or its owner is torn down.
func OnComplete(fn func()) RunOption {
	return func(c *runConfig) {
		c.onComplete = fn
	}
}

// InPhase schedules the action on phase instead of PhaseUpdate.
func InPhase(p Phase) RunOption {
	return func(c *runConfig) {
		c.phase = p
	}
}
