package logger

import (
	"os"
	"strings"

	"golang.org/x/exp/slog"

	"todolist/internal/config"
)

// New собирает логгер под окружение: local - цветной вывод,
// dev - JSON с debug, prod - JSON с info.
func New(env string) *slog.Logger {
	return NewWithLevel(env, "")
}

// NewWithLevel как New, но level (debug/info/warn/error) переопределяет
// уровень окружения. Пустой level оставляет значение по умолчанию.
func NewWithLevel(env, level string) *slog.Logger {
	lvl := defaultLevel(env)
	if level != "" {
		lvl = parseLevel(level, lvl)
	}

	switch env {
	case config.EnvLocal:
		return newPrettySlog(lvl)
	default:
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
	}
}

func setupPrettySlog() *slog.Logger {
	return newPrettySlog(slog.LevelDebug)
}

func newPrettySlog(level slog.Level) *slog.Logger {
	opts := PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{Level: level},
	}
	return slog.New(opts.NewPrettyHandler(os.Stdout))
}

func defaultLevel(env string) slog.Level {
	if env == config.EnvProd {
		return slog.LevelInfo
	}
	return slog.LevelDebug
}

func parseLevel(s string, fallback slog.Level) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return fallback
	}
}
