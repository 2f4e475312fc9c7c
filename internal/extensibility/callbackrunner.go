// Package extensibility provides the stock CallbackRunner, ConditionEvaluator
// and frame source implementations.
package extensibility

import (
	"log/slog"
	"time"

	"github.com/comalice/actionkit/internal/core"
	"github.com/comalice/actionkit/internal/primitives"
)

// DefaultCallbackRunner runs callbacks registered in a core.Registry.
type DefaultCallbackRunner struct {
	Registry *core.Registry
}

func NewDefaultCallbackRunner(reg *core.Registry) *DefaultCallbackRunner {
	return &DefaultCallbackRunner{Registry: reg}
}

// Run looks up name and calls it with bb.
func (r *DefaultCallbackRunner) Run(bb *primitives.Blackboard, name string) error {
	fn, err := r.Registry.Callback(name)
	if err != nil {
		return err
	}
	return fn(bb)
}

// Check implements core.Checker.
func (r *DefaultCallbackRunner) Check(name string) error {
	_, err := r.Registry.Callback(name)
	return err
}

// LoggingCallbackRunner wraps a CallbackRunner and logs every call with its
// duration and outcome.
type LoggingCallbackRunner struct {
	inner  core.CallbackRunner
	logger *slog.Logger
}

// NewLoggingCallbackRunner wraps inner. A nil logger uses slog.Default.
func NewLoggingCallbackRunner(inner core.CallbackRunner, logger *slog.Logger) *LoggingCallbackRunner {
	if logger == nil {
		logger = slog.Default()
	}
	return &LoggingCallbackRunner{inner: inner, logger: logger}
}

func (r *LoggingCallbackRunner) Run(bb *primitives.Blackboard, name string) error {
	start := time.Now()
	err := r.inner.Run(bb, name)
	if err != nil {
		r.logger.Warn("callback failed", "callback", name, "duration", time.Since(start), "error", err)
		return err
	}
	r.logger.Debug("callback ran", "callback", name, "duration", time.Since(start))
	return nil
}

// Check delegates to the wrapped runner when it is a core.Checker.
func (r *LoggingCallbackRunner) Check(name string) error {
	if chk, ok := r.inner.(core.Checker); ok {
		return chk.Check(name)
	}
	return nil
}
