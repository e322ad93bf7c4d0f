package logger

import (
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"todoapi/config"
	"todoapi/shared/constant"
)

// InitLogger installs the global zerolog logger. Development gets a
// human-readable console writer, every other environment gets JSON lines.
func InitLogger(cfg *config.Config) {
	zerolog.TimeFieldFormat = time.RFC3339Nano
	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	log.Logger = zerolog.New(writer(cfg.Server.Env)).
		With().
		Timestamp().
		Str("app", cfg.App.Name).
		Logger()

	log.Trace().Msg("Zerolog initialized.")
}

func writer(env string) io.Writer {
	if env == constant.ServerEnvDevelopment {
		return zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	}

	return os.Stdout
}

func ErrorWithStack(err error) {
	log.Error().Msgf("%+v", errors.WithStack(err))
}

func SetLogLevel(cfg *config.Config) {
	level, err := zerolog.ParseLevel(cfg.Server.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
		log.Warn().Str("loglevel", cfg.Server.LogLevel).Msg("Unknown log level, using info.")
	} else {
		log.Trace().Str("loglevel", level.String()).Msg("Desired log level detected.")
	}

	zerolog.SetGlobalLevel(level)
}
