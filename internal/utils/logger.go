package utils

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/homenest/HomeNest_Backend/internal/config"
	"github.com/homenest/HomeNest_Backend/internal/constants"
)

// InitLogger configures the global zerolog logger from the application
// configuration: level, output format, and caller information in development.
func InitLogger(cfg *config.AppConfig) {
	level := parseLevel(cfg.Logging.Level)
	zerolog.SetGlobalLevel(level)

	if strings.EqualFold(cfg.Logging.Format, "console") {
		log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}).
			With().Timestamp().Logger()
	} else {
		log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
	}

	if cfg.App.IsDevelopment() {
		log.Logger = log.Logger.With().Caller().Logger()
	}

	log.Info().
		Str("level", level.String()).
		Str("format", cfg.Logging.Format).
		Msg("Logger initialized")
}

// parseLevel maps a configured level name onto a zerolog level, defaulting
// to info for unknown values.
func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// LogDBQuery logs an executed database query with its duration. String
// arguments are redacted whenever the query touches credential columns so
// password material never reaches the logs.
func LogDBQuery(query string, args []interface{}, duration time.Duration, err error) {
	sensitive := strings.Contains(strings.ToLower(query), constants.ColumnPasswordHash) ||
		strings.Contains(strings.ToLower(query), "salt")

	safeArgs := make([]interface{}, len(args))
	for i, arg := range args {
		if _, ok := arg.(string); ok && sensitive {
			safeArgs[i] = constants.LogRedactedValue
		} else {
			safeArgs[i] = arg
		}
	}

	event := log.Debug()
	if err != nil {
		event = log.Error().Err(err)
	}

	event.
		Str("query", strings.Join(strings.Fields(query), " ")).
		Interface("args", safeArgs).
		Dur("duration", duration).
		Msg("Database query executed")
}
