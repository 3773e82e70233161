package logging

import (
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// NewLogger builds the console logger for cfg.
func NewLogger(cfg Config) zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        cfg.Out,
		NoColor:    cfg.NoColor,
		TimeFormat: time.RFC3339,
	}
	if !cfg.Timestamp {
		output.PartsExclude = []string{zerolog.TimestampFieldName}
	}
	return zerolog.New(output).Level(cfg.Level).With().Timestamp().Str("app", "spinclean").Logger()
}

func install(cfg Config) {
	zerolog.SetGlobalLevel(cfg.Level)
	log.Logger = NewLogger(cfg)
}
