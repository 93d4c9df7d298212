// Package logger wires the process-wide slog default for the journal:
// JSON records to stdout, optionally mirrored to a size-rotated file.
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"eodly/internal/config"

	"gopkg.in/lumberjack.v2"
)

const defaultMaxSizeMB = 50

func Init(cfg config.LogConfig) {
	var out io.Writer = os.Stdout
	if cfg.File != "" {
		size := cfg.MaxSizeMB
		if size <= 0 {
			size = defaultMaxSizeMB
		}
		rotated := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    size,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
			LocalTime:  true,
		}
		if cfg.Console {
			out = io.MultiWriter(os.Stdout, rotated)
		} else {
			out = rotated
		}
	}

	h := slog.NewJSONHandler(out, &slog.HandlerOptions{Level: parseLevel(cfg.Level)})
	slog.SetDefault(slog.New(h))
	Info("logger initialized", "level", cfg.Level, "file", cfg.File)
}

func Info(msg string, args ...any)  { slog.Info(msg, args...) }
func Warn(msg string, args ...any)  { slog.Warn(msg, args...) }
func Error(msg string, args ...any) { slog.Error(msg, args...) }
func Debug(msg string, args ...any) { slog.Debug(msg, args...) }

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
