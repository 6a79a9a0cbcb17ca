package logger

import (
	"strings"
	"sync"
)

// Log levels accepted in configuration.
const (
	DebugLevel = "debug"
	InfoLevel  = "info"
	WarnLevel  = "warn"
	ErrorLevel = "error"
)

var (
	globalLogger *Logger
	once         sync.Once
)

// Get returns the process logger. The first call fixes the level; later
// calls return the same instance.
func Get(level string) *Logger {
	once.Do(func() {
		globalLogger = newZapLogger(normalizeLevel(level))
	})
	return globalLogger
}

// Nop returns a logger that discards everything. Used in tests.
func Nop() *Logger {
	return newNopLogger()
}

func normalizeLevel(level string) string {
	return strings.ToLower(strings.TrimSpace(level))
}
