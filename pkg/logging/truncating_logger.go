package logging

import (
	"fmt"
	"strconv"
)

// DefaultMaxFieldLength is the field length used by
// NewTruncatingLogger when max is not positive.
const DefaultMaxFieldLength = 200

// TruncatingLogger is a decorator that shortens long field
// values before passing them to the inner logger. Checked values
// can be arbitrarily large; the full text always remains in the
// failure message itself.
type TruncatingLogger struct {
	inner Logger
	max   int
}

// NewTruncatingLogger wraps inner so that no field value is
// rendered longer than max characters.
func NewTruncatingLogger(inner Logger, max int) *TruncatingLogger {
	if max <= 0 {
		max = DefaultMaxFieldLength
	}
	return &TruncatingLogger{inner: inner, max: max}
}

func (t *TruncatingLogger) truncate(fields []Field) []Field {
	result := make([]Field, len(fields))
	for i, f := range fields {
		s, ok := f.Value.(string)
		if !ok {
			if _, isErr := f.Value.(error); !isErr {
				if _, isStringer := f.Value.(fmt.Stringer); !isStringer {
					result[i] = f
					continue
				}
			}
			s = fmt.Sprintf("%v", f.Value)
		}
		result[i] = Field{Key: f.Key, Value: TruncateString(s, t.max)}
	}
	return result
}

// TruncateString shortens s to max characters, appending a note
// about how many characters were dropped.
func TruncateString(s string, max int) string {
	if max <= 0 || len(s) <= max {
		return s
	}
	return s[:max] + "... (truncated " +
		strconv.Itoa(len(s)-max) + " chars)"
}

// Info logs an informational message.
func (t *TruncatingLogger) Info(msg string, fields ...Field) {
	t.inner.Info(msg, t.truncate(fields)...)
}

// Warn logs a warning message.
func (t *TruncatingLogger) Warn(msg string, fields ...Field) {
	t.inner.Warn(msg, t.truncate(fields)...)
}

// Error logs an error message.
func (t *TruncatingLogger) Error(msg string, fields ...Field) {
	t.inner.Error(msg, t.truncate(fields)...)
}

// Debug logs a debug message.
func (t *TruncatingLogger) Debug(msg string, fields ...Field) {
	t.inner.Debug(msg, t.truncate(fields)...)
}

// WithFields returns a TruncatingLogger wrapping a new inner
// logger with the given fields applied.
func (t *TruncatingLogger) WithFields(fields ...Field) Logger {
	return &TruncatingLogger{
		inner: t.inner.WithFields(t.truncate(fields)...),
		max:   t.max,
	}
}

// Close closes the inner logger.
func (t *TruncatingLogger) Close() error {
	return t.inner.Close()
}
