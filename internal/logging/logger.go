package logging

import (
	"log/slog"
	"os"
	"strings"
)

// Setup installs the process-wide slog logger, writing JSON lines to
// stdout. LOG_LEVEL (debug, warn, error) moves the threshold off the
// info default. The system_logs sink is attached in main once the
// database connection exists.
func Setup() {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: levelFromEnv(),
	})
	slog.SetDefault(slog.New(handler))
}

func levelFromEnv() slog.Level {
	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
