// Package logs builds the process wide slog logger from the env section.
package logs

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"hive/config"
	"hive/internal/errors"

	"go.uber.org/fx"
)

type Params struct {
	fx.In

	Config *config.Config
}

// New writes JSON to stdout, or text when env.log.pretty is set, and makes
// the result the slog default. Debug mode adds source locations.
func New(params Params) (*slog.Logger, error) {
	logger, err := newLogger(os.Stdout, params.Config)
	if err != nil {
		return nil, err
	}
	slog.SetDefault(logger)

	return logger, nil
}

func newLogger(w io.Writer, cfg *config.Config) (*slog.Logger, error) {
	level, err := parseLogLevel(cfg.Env.Log.Level)
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{Level: level, AddSource: cfg.Env.Debug}
	var handler slog.Handler = slog.NewJSONHandler(w, opts)
	if cfg.Env.Log.Pretty {
		handler = slog.NewTextHandler(w, opts)
	}

	var attrs []any
	if cfg.Env.ServiceName != "" {
		attrs = append(attrs, slog.String("service", cfg.Env.ServiceName))
	}
	if cfg.Env.Env != "" {
		attrs = append(attrs, slog.String("env", cfg.Env.Env))
	}

	return slog.New(handler).With(attrs...), nil
}

// parseLogLevel accepts slog's level names in any case, with offsets such as
// "warn+2". An empty level is info.
func parseLogLevel(level string) (slog.Level, error) {
	var l slog.Level
	if strings.TrimSpace(level) == "" {
		return slog.LevelInfo, nil
	}
	if err := l.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
		return slog.LevelInfo, errors.Wrapf(err, "unknown log level %q", level)
	}

	return l, nil
}
