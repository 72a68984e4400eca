package helper

import (
	"io"
	"log/slog"
	"os"
)

type logConfig struct {
	json   bool
	writer io.Writer
}

type LogOption = Option[logConfig]

// WithJSON switches the default handler to JSON lines.
func WithJSON() LogOption {
	return func(configure *logConfig) {
		configure.json = true
	}
}

func WithWriter(w io.Writer) LogOption {
	return func(configure *logConfig) {
		configure.writer = w
	}
}

func NewLogger(w io.Writer, level slog.Level, json bool) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: level,
	}
	if json {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func SetLog(level slog.Level, opt ...LogOption) {
	cfg := Configure(logConfig{writer: os.Stderr}, opt...)
	slog.SetDefault(NewLogger(cfg.writer, level, cfg.json))
}
