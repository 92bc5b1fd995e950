package logging

import "errors"

// MultiLogger sends every entry to each of its loggers in order.
// The "both" format of New pairs a console and a JSON logger.
type MultiLogger []Logger

// NewMultiLogger fans out to loggers. Nil loggers are skipped.
func NewMultiLogger(loggers ...Logger) MultiLogger {
	m := make(MultiLogger, 0, len(loggers))
	for _, l := range loggers {
		if l != nil {
			m = append(m, l)
		}
	}
	return m
}

func (m MultiLogger) Info(msg string, fields ...Field) {
	for _, l := range m {
		l.Info(msg, fields...)
	}
}

func (m MultiLogger) Warn(msg string, fields ...Field) {
	for _, l := range m {
		l.Warn(msg, fields...)
	}
}

func (m MultiLogger) Error(msg string, fields ...Field) {
	for _, l := range m {
		l.Error(msg, fields...)
	}
}

func (m MultiLogger) Debug(msg string, fields ...Field) {
	for _, l := range m {
		l.Debug(msg, fields...)
	}
}

// WithFields derives every logger with fields.
func (m MultiLogger) WithFields(fields ...Field) Logger {
	derived := make(MultiLogger, len(m))
	for i, l := range m {
		derived[i] = l.WithFields(fields...)
	}
	return derived
}

// Close closes every logger and joins their errors.
func (m MultiLogger) Close() error {
	var errs []error
	for _, l := range m {
		errs = append(errs, l.Close())
	}
	return errors.Join(errs...)
}
