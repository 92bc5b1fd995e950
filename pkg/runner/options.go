package runner

import (
	"time"

	"digital.vasic.fluent/pkg/logging"
)

// Option configures a Runner.
type Option func(*Runner)

// WithLogger sets the logger used by the runner.
func WithLogger(logger logging.Logger) Option {
	return func(r *Runner) {
		r.logger = logger
	}
}

// WithTimeout bounds each suite. Zero disables the bound.
func WithTimeout(timeout time.Duration) Option {
	return func(r *Runner) {
		r.timeout = timeout
	}
}

// WithPreHook adds a hook run before each suite.
func WithPreHook(h Hook) Option {
	return func(r *Runner) {
		r.preHooks = append(r.preHooks, h)
	}
}

// WithPostHook adds a hook run after each suite.
func WithPostHook(h Hook) Option {
	return func(r *Runner) {
		r.postHooks = append(r.postHooks, h)
	}
}
