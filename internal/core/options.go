package core

import (
	"log/slog"

	"github.com/comalice/actionkit/internal/primitives"
)

// Option configures Compile.
type Option func(*compiler)

// WithCallbackRunner sets the runner scripted callbacks go through.
func WithCallbackRunner(r CallbackRunner) Option {
	return func(c *compiler) {
		c.runner = r
	}
}

// WithConditionEvaluator sets the evaluator scripted conditions go through.
func WithConditionEvaluator(e ConditionEvaluator) Option {
	return func(c *compiler) {
		c.eval = e
	}
}

// WithBlackboard shares bb with the compiled program instead of a fresh one.
func WithBlackboard(bb *primitives.Blackboard) Option {
	return func(c *compiler) {
		c.bb = bb
	}
}

// WithErrorHandler sets what happens when a callback or condition returns an
// error while ticking. The default panics with the error, which propagates
// out of the driver pass like any other callback panic. A handler that
// returns normally lets the tick continue: the callback counts as done and
// the condition as unsatisfied.
func WithErrorHandler(fn func(error)) Option {
	return func(c *compiler) {
		c.onError = fn
	}
}

// WithLogger sets the logger for compile records.
func WithLogger(l *slog.Logger) Option {
	return func(c *compiler) {
		c.logger = l
	}
}
