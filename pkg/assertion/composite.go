package assertion

import (
	"errors"
	"fmt"

	"digital.vasic.fluent/pkg/check"
	"digital.vasic.fluent/pkg/message"
)

// AllPassComposite evaluates assertions against values and passes
// when every one of them passes. The message of a failure joins
// the failure messages with check.BatchDelimiter.
func AllPassComposite(
	engine Engine,
	assertions []Definition,
	values map[string]any,
) Result {
	results := engine.EvaluateAll(assertions, values)

	b := check.OpenBatch(check.NewRecorder(), "")
	for _, r := range results {
		if !r.Passed {
			b.Report(&check.Failure{Check: r.Type, Message: r.Message})
		}
	}

	var f *check.Failure
	if errors.As(b.Close(), &f) {
		return Result{
			Type:    "all_pass",
			Passed:  false,
			Message: f.Message,
		}
	}

	return Result{
		Type:   "all_pass",
		Passed: true,
		Message: fmt.Sprintf(
			"all %d assertions passed", len(results),
		),
	}
}

// AnyPassComposite evaluates assertions against values and passes
// when at least one of them passes.
func AnyPassComposite(
	engine Engine,
	assertions []Definition,
	values map[string]any,
) Result {
	results := engine.EvaluateAll(assertions, values)

	for _, r := range results {
		if r.Passed {
			return Result{
				Type:   "any_pass",
				Passed: true,
				Message: fmt.Sprintf(
					"assertion '%s' on target '%s' passed",
					r.Type, r.Target,
				),
			}
		}
	}

	return Result{
		Type:   "any_pass",
		Passed: false,
		Message: fmt.Sprintf(
			"none of %d assertions passed",
			len(results),
		),
	}
}

// CompositeAllPass returns an Evaluator that runs subAssertions
// on the checked value and requires all of them to pass. The
// targets of subAssertions are ignored.
func CompositeAllPass(
	engine Engine,
	subAssertions []Definition,
) Evaluator {
	return composite(engine, subAssertions, "all_pass", AllPassComposite,
		"The {checked} does not pass all of its checks.",
		"The {checked} passes all of its checks whereas it must not.")
}

// CompositeAnyPass returns an Evaluator that runs subAssertions
// on the checked value and requires at least one of them to pass.
func CompositeAnyPass(
	engine Engine,
	subAssertions []Definition,
) Evaluator {
	return composite(engine, subAssertions, "any_pass", AnyPassComposite,
		"The {checked} passes none of its checks.",
		"The {checked} passes one of its checks whereas it must not.")
}

type combinator func(Engine, []Definition, map[string]any) Result

func composite(
	engine Engine,
	subAssertions []Definition,
	name string,
	combine combinator,
	template, negated string,
) Evaluator {
	return func(_ Definition, v check.Value[any]) error {
		defs := make([]Definition, len(subAssertions))
		for i, d := range subAssertions {
			d.Target = v.Name()
			defs[i] = d
		}

		check.For(v).CheckName(name).
			Analyze(func(sut any, t *check.Test) {
				r := combine(engine, defs, map[string]any{v.Name(): sut})
				if !r.Passed {
					t.FailWith(template, func(b *message.Builder) {
						b.Append(r.Message)
					}, message.NoExpectedBlock)
				}
			}).
			OnNegate(negated, message.NoExpectedBlock).
			EndCheck()
		return nil
	}
}
