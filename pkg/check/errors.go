package check

import (
	"errors"
	"strings"
)

// ErrCheckFailed is the sentinel wrapped by every *Failure.
var ErrCheckFailed = errors.New("check failed")

// ErrContractViolation is the sentinel wrapped by every
// *ContractError.
var ErrContractViolation = errors.New("check contract violation")

// Failure is an assertion failure carrying the composed message.
type Failure struct {
	// Check names the check that failed, e.g. "IsLessThan". An
	// aggregated batch failure uses "batch".
	Check string

	// Message is the complete human-readable description.
	Message string

	// Failures holds the collected failures of a batch, in
	// report order. It is empty for a single check.
	Failures []*Failure
}

// Error returns the failure message.
func (f *Failure) Error() string {
	return f.Message
}

// Unwrap returns ErrCheckFailed for errors.Is.
func (f *Failure) Unwrap() error {
	return ErrCheckFailed
}

// ContractError reports a check used in a way the engine cannot
// support. It is a programming error: it always panics directly
// and is never collected by a batch.
type ContractError struct {
	Check  string
	Reason string
}

// Error returns the formatted contract error.
func (e *ContractError) Error() string {
	var sb strings.Builder
	sb.WriteString(ErrContractViolation.Error())
	if e.Check != "" {
		sb.WriteString(" in ")
		sb.WriteString(e.Check)
	}
	sb.WriteString(": ")
	sb.WriteString(e.Reason)
	return sb.String()
}

// Unwrap returns ErrContractViolation for errors.Is.
func (e *ContractError) Unwrap() error {
	return ErrContractViolation
}

func violation(check, reason string) *ContractError {
	return &ContractError{Check: check, Reason: reason}
}
