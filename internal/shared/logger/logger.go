package logger

import (
	"log/slog"
	"os"
)

// Setup configures the global slog logger for the given environment.
// Production emits JSON for log collectors; everything else stays
// human-readable text.
func Setup(env string) {
	opts := &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}

	var handler slog.Handler
	switch env {
	case "production", "prod":
		handler = slog.NewJSONHandler(os.Stdout, opts)
	case "local", "dev", "development":
		opts.Level = slog.LevelDebug
		handler = slog.NewTextHandler(os.Stdout, opts)
	default:
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	slog.SetDefault(slog.New(handler))

	slog.Info("Logger 초기화", "env", env, "level", opts.Level.Level().String())
}
