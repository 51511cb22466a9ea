package config

import (
	"log/slog"
	"os"
)

// SetLogLevel sets the log level for the application from
// REVERSI_LOG_LEVEL. The default is info.
func SetLogLevel() {
	var level slog.Level

	if envLevel := os.Getenv("REVERSI_LOG_LEVEL"); envLevel != "" {
		if err := level.UnmarshalText([]byte(envLevel)); err != nil {
			slog.Error("Invalid log level", "level", envLevel)
			os.Exit(1)
		}
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}
