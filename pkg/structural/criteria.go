package structural

import (
	"errors"
	"fmt"
	"strings"
)

// DefaultMaxDepth is the traversal depth used by DefaultCriteria.
const DefaultMaxDepth = 32

// ErrInvalidCriteria is the sentinel wrapped by CriteriaError.
var ErrInvalidCriteria = errors.New("invalid comparison criteria")

// CriteriaError reports an internally inconsistent Criteria.
type CriteriaError struct {
	Reason string
}

// Error returns the formatted criteria error.
func (e *CriteriaError) Error() string {
	return ErrInvalidCriteria.Error() + ": " + e.Reason
}

// Unwrap returns ErrInvalidCriteria for errors.Is.
func (e *CriteriaError) Unwrap() error {
	return ErrInvalidCriteria
}

// Visibility selects which struct fields participate.
type Visibility int

const (
	// AllFields compares exported and unexported fields.
	AllFields Visibility = iota
	// ExportedFields compares exported fields only.
	ExportedFields
	// UnexportedFields compares unexported fields only.
	UnexportedFields
)

// Criteria selects the members taking part in a comparison.
type Criteria struct {
	// MaxDepth bounds how many member levels are descended.
	// Composite values found at the limit are compared as a
	// whole.
	MaxDepth int

	// Visibility filters struct fields.
	Visibility Visibility

	// Excluded lists member paths ignored with everything below
	// them, e.g. "Address.City" or "Items[2]".
	Excluded []string

	// Only, when not empty, restricts the results to these paths
	// and everything below them.
	Only []string

	// SkipIndexers compares slices, arrays and maps as whole
	// values instead of element by element.
	SkipIndexers bool

	// StrictTypes reports members whose Go types differ as type
	// mismatches even when their values are comparable.
	StrictTypes bool
}

// DefaultCriteria compares every field down to DefaultMaxDepth.
func DefaultCriteria() Criteria {
	return Criteria{MaxDepth: DefaultMaxDepth}
}

// Excluding returns a copy of c ignoring the given paths.
func (c Criteria) Excluding(paths ...string) Criteria {
	c.Excluded = append(append([]string(nil), c.Excluded...), paths...)
	return c
}

// Including returns a copy of c restricted to the given paths.
func (c Criteria) Including(paths ...string) Criteria {
	c.Only = append(append([]string(nil), c.Only...), paths...)
	return c
}

// WithMaxDepth returns a copy of c with another depth limit.
func (c Criteria) WithMaxDepth(depth int) Criteria {
	c.MaxDepth = depth
	return c
}

// Exported returns a copy of c comparing exported fields only.
func (c Criteria) Exported() Criteria {
	c.Visibility = ExportedFields
	return c
}

// Validate reports inconsistent settings.
func (c Criteria) Validate() error {
	if c.MaxDepth < 0 {
		return &CriteriaError{
			Reason: fmt.Sprintf("negative max depth %d", c.MaxDepth),
		}
	}
	if c.Visibility < AllFields || c.Visibility > UnexportedFields {
		return &CriteriaError{
			Reason: fmt.Sprintf("unknown visibility %d", c.Visibility),
		}
	}
	for _, p := range append(append([]string(nil), c.Excluded...), c.Only...) {
		if strings.TrimSpace(p) == "" {
			return &CriteriaError{Reason: "empty member path"}
		}
	}
	for _, only := range c.Only {
		for _, excluded := range c.Excluded {
			if only == excluded {
				return &CriteriaError{
					Reason: fmt.Sprintf(
						"member %q is both included and excluded", only,
					),
				}
			}
		}
	}
	return nil
}

// within reports whether path is root or lies below root.
func within(path, root string) bool {
	if path == root {
		return true
	}
	if !strings.HasPrefix(path, root) {
		return false
	}
	next := path[len(root)]
	return next == '.' || next == '['
}

func (c Criteria) excluded(path string) bool {
	for _, e := range c.Excluded {
		if within(path, e) {
			return true
		}
	}
	return false
}

// selected reports whether results at path are reported.
func (c Criteria) selected(path string) bool {
	if len(c.Only) == 0 {
		return true
	}
	for _, o := range c.Only {
		if within(path, o) {
			return true
		}
	}
	return false
}

// traversable reports whether the walker must descend into path,
// either because it is selected or because a selected member
// lies below it.
func (c Criteria) traversable(path string) bool {
	if c.selected(path) || path == "" {
		return true
	}
	for _, o := range c.Only {
		if within(o, path) {
			return true
		}
	}
	return false
}
