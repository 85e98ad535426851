// Package debug provides conditional debug logging for quickie.
//
// Debug logging is enabled by setting the QUICKIE_DEBUG environment variable:
//
//	QUICKIE_DEBUG=1 quickie
//
// When enabled, debug messages are written to stderr with timestamps.
// When disabled (default), all debug functions are no-ops.
package debug

import (
	"log"
	"os"
	"time"
)

var (
	// enabled is true when QUICKIE_DEBUG env var is set
	enabled bool
	// logger writes to stderr with [quickie] prefix
	logger *log.Logger
)

func init() {
	if os.Getenv("QUICKIE_DEBUG") != "" {
		enabled = true
		logger = log.New(os.Stderr, "[quickie] ", log.Ltime|log.Lmicroseconds)
	}
}

// Enabled returns whether debug logging is enabled.
func Enabled() bool {
	return enabled
}

// Log writes a debug message if debug logging is enabled.
// Uses printf-style formatting.
func Log(format string, args ...any) {
	if !enabled {
		return
	}
	logger.Printf(format, args...)
}

// LogTiming writes a timing message if debug logging is enabled.
func LogTiming(name string, d time.Duration) {
	if !enabled {
		return
	}
	logger.Printf("%s took %v", name, d)
}
