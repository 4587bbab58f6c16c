// Package logger provides the process-wide zerolog logger. Structured
// logging, not OTEL tracing, is this module's ambient observability layer
// (spec's Non-goals exclude a metrics/tracing SDK, not logging itself).
package logger

import (
	"os"

	"github.com/rs/zerolog"
)

// Log is the global logger. It starts disabled so any code path that runs
// before Init (tests, package init order) logs nothing rather than
// panicking on a nil writer.
var Log zerolog.Logger = zerolog.New(nil).Level(zerolog.Disabled)

// Init configures the global logger at the given level (one of zerolog's
// level strings: debug, info, warn, error). Unrecognized levels fall back
// to info. Called once from main.
func Init(level string) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnixMicro

	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)

	Log = zerolog.New(os.Stdout).
		With().
		Timestamp().
		Logger()
}

// Get returns the global logger, for passing into components built before
// Init has necessarily run (e.g. during flag parsing).
func Get() *zerolog.Logger {
	return &Log
}
