package texture

import (
	"log/slog"
	"os"
)

// LogLevel controls texture debug logging. Defaults to Info.
var LogLevel = new(slog.LevelVar)

var logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: LogLevel}))
