package minicore

import (
	"log/slog"
	"os"
)

// logLevel controls the log level for engine debug logging.
// Default is LevelInfo, which suppresses Debug messages.
// SetVerbose(true) sets it to LevelDebug.
var logLevel = new(slog.LevelVar)

// SetVerbose enables or disables verbose/debug logging for the engine.
// Call this from main() after parsing flags.
func SetVerbose(v bool) {
	if v {
		logLevel.Set(slog.LevelDebug)
	} else {
		logLevel.Set(slog.LevelInfo)
	}
}

// Verbose returns true if debug logging is enabled.
func Verbose() bool {
	return logLevel.Level() <= slog.LevelDebug
}

// logger is shared by surfaces, buffers and the surface manager.
var logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
