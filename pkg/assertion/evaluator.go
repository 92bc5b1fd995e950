package assertion

import "digital.vasic.fluent/pkg/check"

// Evaluator runs the check described by def against v. Check
// failures go to v's reporter; the returned error reports a
// definition that cannot be evaluated, such as a non-numeric
// operand.
type Evaluator func(def Definition, v check.Value[any]) error
