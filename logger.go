package hpack

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Logger is the package-wide structured logger. It is a pure side
// channel: only the log helpers below check whether logging is
// enabled, and no log call can affect a Packer's return values.
var Logger zerolog.Logger

func init() {
	setupLogger()
}

// setupLogger configures Logger from HPACK_LOG_LEVEL. An unset or
// unrecognized value disables logging entirely.
func setupLogger() {
	logLevel := strings.ToLower(os.Getenv("HPACK_LOG_LEVEL"))

	var level zerolog.Level
	switch logLevel {
	case "debug":
		level = zerolog.DebugLevel
	case "info":
		level = zerolog.InfoLevel
	case "warn", "warning":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	case "fatal":
		level = zerolog.FatalLevel
	case "panic":
		level = zerolog.PanicLevel
	default:
		level = zerolog.Disabled
	}

	output := zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: time.RFC3339,
	}

	if logLevel == "debug" {
		output.FormatLevel = func(i interface{}) string {
			return strings.ToUpper(fmt.Sprintf("| %-6s|", i))
		}
		output.FormatMessage = func(i interface{}) string {
			return fmt.Sprintf("*** %s ***", i)
		}
		output.FormatFieldName = func(i interface{}) string {
			return fmt.Sprintf("%s:", i)
		}
	}

	Logger = zerolog.New(output).
		Level(level).
		With().
		Timestamp().
		Str("component", "hpack").
		Logger()

	if level != zerolog.Disabled {
		Logger.Info().Str("level", level.String()).Msg("HPACK logger initialized")
	}
}

// logInit emits the one-time packer construction event.
func logInit(maxTableSize int) {
	if Logger.GetLevel() == zerolog.Disabled {
		return
	}
	Logger.Debug().
		Str("event", "init").
		Int("max_table_size", maxTableSize).
		Msg("HPACK packer initialized")
}

// logEviction emits a dynamic table eviction event.
func logEviction(side string, evicted Header, resultingSize int) {
	if Logger.GetLevel() == zerolog.Disabled {
		return
	}
	Logger.Debug().
		Str("event", "eviction").
		Str("side", side).
		Str("name", evicted.Name).
		Int("resulting_size", resultingSize).
		Msg("HPACK dynamic table eviction")
}

// logRepresentation emits which of the five wire representations an
// Encode call chose.
func logRepresentation(kind string, index int, h Header) {
	if Logger.GetLevel() == zerolog.Disabled {
		return
	}
	Logger.Debug().
		Str("event", "representation").
		Str("kind", kind).
		Int("index", index).
		Str("name", h.Name).
		Msg("HPACK representation selected")
}

// logDecodeError emits a decode failure with its taxonomy category.
func logDecodeError(err error) {
	if Logger.GetLevel() == zerolog.Disabled {
		return
	}
	Logger.Error().
		Str("event", "decode_error").
		Err(err).
		Msg("HPACK decode error")
}
