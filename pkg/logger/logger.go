package logger

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Init configures the global zerolog logger.
// Development gets a human-readable console writer, everything else
// stays on the default JSON output.
func Init(env string) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	if env == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		return
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
}

func Info(msg string, fields map[string]interface{}) {
	log.Info().Fields(fields).Msg(msg)
}

func Debug(msg string) {
	log.Debug().Msg(msg)
}

func Warn(msg string, fields map[string]interface{}) {
	log.Warn().Fields(fields).Msg(msg)
}

func Error(msg string, err error) {
	log.Error().Err(err).Msg(msg)
}
