package cmd

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/bnema/shower/internal/infrastructure/config"
	"github.com/bnema/shower/internal/logging"
)

// newLogger builds the process logger from the logging config section.
// levelOverride wins over logging.level when set.
func newLogger(cfg *config.Config, levelOverride string) (zerolog.Logger, func(), error) {
	level := cfg.Logging.Level
	if levelOverride != "" {
		level = levelOverride
	}
	logCfg := logging.Config{
		Level:      logging.ParseLevel(level),
		Format:     cfg.Logging.Format,
		TimeFormat: time.TimeOnly,
	}

	closeLog := func() {}
	if cfg.Logging.EnableFileLog {
		dir := cfg.Logging.LogDir
		if dir == "" {
			var err error
			if dir, err = config.GetLogDir(); err != nil {
				return zerolog.Nop(), closeLog, fmt.Errorf("resolve log directory: %w", err)
			}
		}
		sink, err := logging.OpenFileSink(dir, cfg.Logging.MaxAge)
		if err != nil {
			return zerolog.Nop(), closeLog, err
		}
		logCfg.File = sink
		closeLog = func() { _ = sink.Close() }
	}

	return logging.New(logCfg), closeLog, nil
}
