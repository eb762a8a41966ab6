package logger

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger is the application-wide zerolog instance. It defaults to zerolog's
// global logger until Init replaces it.
var Logger = log.Logger

// Config controls the behaviour of the log system.
type Config struct {
	Level        string `json:"level" yaml:"level"`                 // debug, info, warn, error
	Format       string `json:"format" yaml:"format"`               // json or pretty
	TimeFormat   string `json:"time_format" yaml:"time_format"`     // timestamp layout
	ReportCaller bool   `json:"report_caller" yaml:"report_caller"` // include file:line
}

// Init configures the global logger. Unknown levels fall back to info.
func Init(config Config) {
	level, err := zerolog.ParseLevel(config.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	var output io.Writer = os.Stdout
	if config.Format == "pretty" {
		output = zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: config.TimeFormat,
		}
	}

	if config.TimeFormat == "" {
		zerolog.TimeFieldFormat = time.RFC3339
	} else {
		zerolog.TimeFieldFormat = config.TimeFormat
	}

	contextLogger := zerolog.New(output).
		Level(level).
		With().
		Timestamp()
	if config.ReportCaller {
		contextLogger = contextLogger.Caller()
	}

	Logger = contextLogger.Logger()
	log.Logger = Logger
}

// Debug starts a debug-level event on the global logger.
func Debug() *zerolog.Event {
	return Logger.Debug()
}

// Info starts an info-level event on the global logger.
func Info() *zerolog.Event {
	return Logger.Info()
}

// Warn starts a warn-level event on the global logger.
func Warn() *zerolog.Event {
	return Logger.Warn()
}

// Error starts an error-level event on the global logger.
func Error() *zerolog.Event {
	return Logger.Error()
}

// Fatal starts a fatal-level event; the process exits after logging.
func Fatal() *zerolog.Event {
	return Logger.Fatal()
}

// Ctx returns the logger stored in ctx, if any.
func Ctx(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

// WithContext attaches the global logger to ctx.
func WithContext(ctx context.Context) context.Context {
	return Logger.WithContext(ctx)
}
