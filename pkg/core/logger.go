package core

import "log"

// DefaultLogger implements Logger by writing to the standard library's log
// package, so messages carry a timestamp by default.
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	log.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger.
func NewDefaultLogger() Logger {
	return &DefaultLogger{}
}
