// Package runner executes declarative check suites against values
// collected at run time. Suites run one at a time or concurrently
// with a concurrency limit, under a per-suite timeout.
package runner

import (
	"context"
	"fmt"
	"time"

	"digital.vasic.fluent/pkg/assertion"
	"digital.vasic.fluent/pkg/logging"
	"digital.vasic.fluent/pkg/report"
)

// ValuesFunc collects the named values a suite checks.
type ValuesFunc func(ctx context.Context) (map[string]any, error)

// Suite is a named set of definitions and the source of the values
// they target.
type Suite struct {
	Name        string
	Definitions []assertion.Definition
	Values      ValuesFunc
}

// StaticValues returns a ValuesFunc yielding values.
func StaticValues(values map[string]any) ValuesFunc {
	return func(context.Context) (map[string]any, error) {
		return values, nil
	}
}

// Hook is invoked before or after a suite runs.
type Hook func(ctx context.Context, s *Suite) error

// Runner evaluates suites with an assertion engine.
type Runner struct {
	engine    assertion.Engine
	logger    logging.Logger
	timeout   time.Duration
	preHooks  []Hook
	postHooks []Hook
}

// NewRunner creates a Runner. A nil engine means a fresh
// assertion.NewEngine.
func NewRunner(engine assertion.Engine, opts ...Option) *Runner {
	if engine == nil {
		engine = assertion.NewEngine()
	}
	r := &Runner{
		engine:  engine,
		logger:  logging.NullLogger{},
		timeout: time.Minute,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run evaluates a single suite. Failed checks are part of the
// returned report; an error means the suite could not run, or a
// post-hook failed after it ran.
func (r *Runner) Run(ctx context.Context, s *Suite) (*report.Suite, error) {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	start := time.Now()

	for _, h := range r.preHooks {
		if err := h(ctx, s); err != nil {
			return nil, fmt.Errorf(
				"pre-hook failed for suite %s: %w", s.Name, err,
			)
		}
	}

	values := map[string]any{}
	if s.Values != nil {
		v, err := s.Values(ctx)
		if err != nil {
			return nil, fmt.Errorf(
				"collect values for suite %s: %w", s.Name, err,
			)
		}
		values = v
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("suite %s: %w", s.Name, err)
	}

	result := &report.Suite{
		Name:      s.Name,
		StartTime: start,
		Results:   r.engine.EvaluateAll(s.Definitions, values),
	}
	result.EndTime = time.Now()

	r.logger.Info("suite finished",
		logging.StringField("suite", s.Name),
		logging.StringField("status", result.Status()),
		logging.IntField("passed", result.PassedCount()),
		logging.IntField("total", len(result.Results)),
	)

	for _, h := range r.postHooks {
		if err := h(ctx, s); err != nil {
			r.logger.Warn("post-hook failed",
				logging.StringField("suite", s.Name),
				logging.ErrorField(err),
			)
			return result, fmt.Errorf(
				"post-hook failed for suite %s: %w", s.Name, err,
			)
		}
	}

	return result, nil
}

// RunSequence evaluates suites in order. It stops at the first
// suite that cannot run and returns the reports gathered so far.
func (r *Runner) RunSequence(ctx context.Context, suites []*Suite) ([]*report.Suite, error) {
	results := make([]*report.Suite, 0, len(suites))
	for _, s := range suites {
		res, err := r.Run(ctx, s)
		if res != nil {
			results = append(results, res)
		}
		if err != nil {
			return results, err
		}
	}
	return results, nil
}
