// logging sets up the log/slog logger used by the qcalc command.
// Library packages never log.
package logging

import "io"
import "log/slog"
import "strings"
import "time"

import "github.com/pkg/errors"

type Level int
const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

type Format int
const (
	FormatText Format = iota
	FormatJSON
)

// Parses "debug", "info", "warn" or "error", case insensitive.
func ParseLevel(name string) (Level, error) {
	switch strings.ToLower(name) {
	case "debug": return LevelDebug, nil
	case "info", "": return LevelInfo, nil
	case "warn", "warning": return LevelWarn, nil
	case "error": return LevelError, nil
	default:
		return LevelInfo, errors.Errorf("unknown log level %q", name)
	}
}

// Parses "text" or "json", case insensitive.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "text", "": return FormatText, nil
	case "json": return FormatJSON, nil
	default:
		return FormatText, errors.Errorf("unknown log format %q", name)
	}
}

func (self Level) slog() slog.Level {
	switch self {
	case LevelDebug: return slog.LevelDebug
	case LevelWarn: return slog.LevelWarn
	case LevelError: return slog.LevelError
	default: return slog.LevelInfo
	}
}

// Creates a logger writing to w. Timestamps use RFC 3339.
func New(w io.Writer, level Level, format Format) *slog.Logger {
	options := &slog.HandlerOptions{
		Level: level.slog(),
		ReplaceAttr: func(groups []string, attr slog.Attr) slog.Attr {
			if attr.Key == slog.TimeKey && len(groups) == 0 {
				return slog.String(slog.TimeKey, attr.Value.Time().Format(time.RFC3339))
			}
			return attr
		},
	}

	var handler slog.Handler
	if format == FormatJSON {
		handler = slog.NewJSONHandler(w, options)
	} else {
		handler = slog.NewTextHandler(w, options)
	}
	return slog.New(handler)
}

// Like [New], but also sets the logger as the slog default and
// returns it.
func Init(w io.Writer, level Level, format Format) *slog.Logger {
	logger := New(w, level, format)
	slog.SetDefault(logger)
	return logger
}
