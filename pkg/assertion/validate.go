package assertion

import (
	"fmt"
	"regexp"
)

// ValidationError is a problem found in a definition before it
// runs.
type ValidationError struct {
	Field   string
	Message string
	Index   int // -1 if not applicable
}

func (e ValidationError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("definitions[%d].%s: %s", e.Index, e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Catalog tells which definition types can be evaluated.
// *DefaultEngine is a Catalog.
type Catalog interface {
	HasEvaluator(assertionType string) bool
}

// Validate returns every problem that would keep defs from being
// evaluated: unknown types and operands the built-in evaluators
// cannot use.
func Validate(c Catalog, defs []Definition) []ValidationError {
	var errs []ValidationError
	add := func(i int, field, format string, args ...any) {
		errs = append(errs, ValidationError{
			Field: field, Message: fmt.Sprintf(format, args...), Index: i,
		})
	}

	for i, d := range defs {
		if d.Type == "" {
			add(i, "type", "type is required")
			continue
		}
		if !c.HasEvaluator(d.Type) {
			add(i, "type", "unknown assertion type: %s", d.Type)
			continue
		}

		switch d.Type {
		case "one_of", "contains":
			if len(operands(d)) == 0 {
				add(i, "values", "at least one value is required")
			}
		case "close_to":
			if _, ok := operandFloat(d.Value); !ok {
				add(i, "value", "not a number: %v", d.Value)
			}
			if _, ok := operandFloat(d.Tolerance); !ok {
				add(i, "tolerance", "not a number: %v", d.Tolerance)
			}
		case "size":
			if n, ok := operandFloat(d.Value); !ok || n != float64(int(n)) {
				add(i, "value", "not an integer: %v", d.Value)
			}
		case "matches":
			if _, err := regexp.Compile(asString(d.Value)); err != nil {
				add(i, "value", "invalid pattern: %v", err)
			}
		case "type", "starts_with", "ends_with", "equal", "less_than", "greater_than":
			if d.Value == nil {
				add(i, "value", "value is required")
			}
		}
	}

	return errs
}
