package logger

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/pkgerrors"
)

const serviceName = "sheetboard"

// Log is the process-wide logger. It starts at info level so early startup
// messages are visible; Init rebuilds it once the configured mode is known.
var Log = build(zerolog.InfoLevel)

// Init derives the log level from the server mode ("debug" gets debug
// logging, unrecognized modes run at info) and rebuilds the process logger.
func Init(mode string) zerolog.Logger {
	level, err := zerolog.ParseLevel(mode)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	Log = build(level)
	return Log
}

func build(level zerolog.Level) zerolog.Logger {
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack
	zerolog.TimeFieldFormat = time.RFC3339Nano

	output := zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: time.DateTime,
	}

	return zerolog.New(output).
		Level(level).
		With().
		Timestamp().
		Str("service", serviceName).
		Logger()
}
