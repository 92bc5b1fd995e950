package assertion

import (
	"fmt"
	"sort"
	"sync"

	"digital.vasic.fluent/pkg/check"
	"digital.vasic.fluent/pkg/logging"
)

// Engine defines the interface for definition evaluation engines.
type Engine interface {
	// Evaluate checks a single definition against the given
	// value.
	Evaluate(def Definition, value any) Result

	// EvaluateAll checks multiple definitions against a map of
	// named values. Each definition's Target field is used as
	// the key into the values map.
	EvaluateAll(defs []Definition, values map[string]any) []Result

	// Register adds a custom evaluator for the given type.
	// Returns an error if the type is already registered.
	Register(assertionType string, evaluator Evaluator) error
}

// DefaultEngine is the standard Engine implementation. It is
// safe for concurrent use.
type DefaultEngine struct {
	mu         sync.RWMutex
	evaluators map[string]Evaluator
	logger     logging.Logger
}

// Option configures a DefaultEngine.
type Option func(*DefaultEngine)

// WithLogger sets the logger receiving evaluation errors.
func WithLogger(l logging.Logger) Option {
	return func(e *DefaultEngine) {
		e.logger = l
	}
}

// NewEngine creates a DefaultEngine with all built-in evaluators
// pre-registered.
func NewEngine(opts ...Option) *DefaultEngine {
	e := &DefaultEngine{
		evaluators: make(map[string]Evaluator),
		logger:     logging.NullLogger{},
	}
	for _, opt := range opts {
		opt(e)
	}
	e.registerDefaults()
	return e
}

// registerDefaults registers all built-in evaluators.
func (e *DefaultEngine) registerDefaults() {
	e.evaluators["equal"] = evaluateEqual
	e.evaluators["nil"] = evaluateNil
	e.evaluators["not_nil"] = evaluateNotNil
	e.evaluators["less_than"] = evaluateLessThan
	e.evaluators["greater_than"] = evaluateGreaterThan
	e.evaluators["close_to"] = evaluateCloseTo
	e.evaluators["contains"] = evaluateContains
	e.evaluators["starts_with"] = evaluateStartsWith
	e.evaluators["ends_with"] = evaluateEndsWith
	e.evaluators["matches"] = evaluateMatches
	e.evaluators["one_of"] = evaluateOneOf
	e.evaluators["type"] = evaluateType
	e.evaluators["size"] = evaluateSize
	e.evaluators["empty"] = evaluateEmpty
	e.evaluators["ascending"] = evaluateAscending
}

// Register adds a custom evaluator for the given type. Returns an
// error if the type is already registered.
func (e *DefaultEngine) Register(
	assertionType string,
	evaluator Evaluator,
) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, exists := e.evaluators[assertionType]; exists {
		return fmt.Errorf(
			"assertion type already registered: %s",
			assertionType,
		)
	}

	e.evaluators[assertionType] = evaluator
	return nil
}

// Evaluate runs a single definition against the provided value.
func (e *DefaultEngine) Evaluate(def Definition, value any) Result {
	e.mu.RLock()
	evaluator, exists := e.evaluators[def.Type]
	e.mu.RUnlock()

	result := Result{
		Type:     def.Type,
		Target:   def.Target,
		Expected: def.expected(),
		Actual:   value,
		Negated:  def.Not,
	}

	if !exists {
		result.Message = fmt.Sprintf("unknown assertion type: %s", def.Type)
		return result
	}

	rec := check.NewRecorder()
	v := check.With[any](rec, value).Because(def.Message)
	if def.Target != "" {
		v = v.Named(def.Target)
	}
	if def.Not {
		v = v.Not()
	}

	if err := run(evaluator, def, v); err != nil {
		e.logger.Warn("assertion not evaluated",
			logging.StringField("type", def.Type),
			logging.StringField("target", def.Target),
			logging.ErrorField(err),
		)
		result.Message = err.Error()
		return result
	}

	if f := rec.Last(); f != nil {
		result.Message = f.Message
		return result
	}

	result.Passed = true
	result.Message = fmt.Sprintf("%s passed", def.Type)
	return result
}

// run calls evaluator and turns a contract violation into an
// error. Other panics propagate.
func run(evaluator Evaluator, def Definition, v check.Value[any]) (err error) {
	defer func() {
		if r := recover(); r != nil {
			ce, ok := r.(*check.ContractError)
			if !ok {
				panic(r)
			}
			err = ce
		}
	}()
	return evaluator(def, v)
}

// EvaluateAll runs multiple definitions against a map of named
// values. Each definition's Target field is used as the key into
// the values map. If a target is missing, the definition fails.
func (e *DefaultEngine) EvaluateAll(
	defs []Definition,
	values map[string]any,
) []Result {
	results := make([]Result, 0, len(defs))

	for _, d := range defs {
		value, exists := values[d.Target]
		if !exists {
			results = append(results, Result{
				Type:    d.Type,
				Target:  d.Target,
				Negated: d.Not,
				Passed:  false,
				Message: fmt.Sprintf(
					"target not found: %s", d.Target,
				),
			})
			continue
		}

		results = append(results, e.Evaluate(d, value))
	}

	return results
}

// HasEvaluator returns true if the given type has a registered
// evaluator.
func (e *DefaultEngine) HasEvaluator(assertionType string) bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	_, exists := e.evaluators[assertionType]
	return exists
}

// Types returns the registered types in alphabetical order.
func (e *DefaultEngine) Types() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()

	types := make([]string, 0, len(e.evaluators))
	for t := range e.evaluators {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}
