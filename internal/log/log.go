// Package log wraps zerolog into the small operational logger the
// privacy layer uses. It never receives witness data (scalars,
// blindings, amounts): only cache hit/miss and batch dispatch/timing
// events pass through it.
package log

import (
	"os"
	"sync"

	"github.com/rs/zerolog"
)

var (
	mu     sync.RWMutex
	logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger().Level(zerolog.InfoLevel)
)

// Init reconfigures the package logger's level. Safe to call
// concurrently with Logger().
func Init(level zerolog.Level) {
	mu.Lock()
	defer mu.Unlock()
	logger = logger.Level(level)
}

// Logger returns the current package-level logger.
func Logger() zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}
