package util

import (
	"os"
	"time"

	"github.com/mxcd/go-config/config"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// InitLogger configures the global zerolog logger from LOG_LEVEL and DEV.
// Dev mode switches to the human-readable console writer.
func InitLogger() error {
	level, err := zerolog.ParseLevel(config.Get().String("LOG_LEVEL"))
	if err != nil {
		return err
	}
	zerolog.SetGlobalLevel(level)
	zerolog.TimeFieldFormat = time.RFC3339

	if config.Get().Bool("DEV") {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	}
	return nil
}
