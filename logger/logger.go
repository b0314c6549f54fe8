package logger

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
)

// FormatPretty is an alias for the console format.
const FormatPretty = "pretty"

// Logger wraps zerolog.Logger with the name of the tool it logs for.
type Logger struct {
	logger zerolog.Logger
	tool   string
}

// NewWithWriter creates a new logger writing to w.
func NewWithWriter(cfg *Config, tool string, w io.Writer) *Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}

	var zl zerolog.Logger
	if isConsole(cfg.Format) {
		zl = newConsoleLogger(cfg, tool, w)
	} else {
		zl = zerolog.New(w)
	}
	zl = zl.Level(level)

	if cfg.Timestamp {
		zl = zl.With().Timestamp().Logger()
	}
	if cfg.Caller {
		zl = zl.With().Caller().Logger()
	}

	return &Logger{
		logger: zl,
		tool:   tool,
	}
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{logger: zerolog.Nop()}
}

type contextKey string

const runIDKey contextKey = "run_id"

// ContextWithRunID returns a context carrying the conversion run ID.
func ContextWithRunID(ctx context.Context, runID string) context.Context {
	return context.WithValue(ctx, runIDKey, runID)
}

// RunIDFromContext returns the run ID stored in ctx, if any.
func RunIDFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(runIDKey).(string); ok {
		return v
	}
	return ""
}

// WithContext returns a logger enriched with the run ID from context.
func (l *Logger) WithContext(ctx context.Context) *Logger {
	runID := RunIDFromContext(ctx)
	if runID == "" {
		return l
	}
	return &Logger{
		logger: l.logger.With().Str(FieldRunID, runID).Logger(),
		tool:   l.tool,
	}
}

// WithComponent returns a logger tagged with a component name.
func (l *Logger) WithComponent(name string) *Logger {
	return &Logger{
		logger: l.logger.With().Str(FieldComponent, name).Logger(),
		tool:   l.tool,
	}
}

// WithError returns a logger with an error field.
func (l *Logger) WithError(err error) *Logger {
	return &Logger{
		logger: l.logger.With().Err(err).Logger(),
		tool:   l.tool,
	}
}

// Debug logs a debug message.
func (l *Logger) Debug(msg string, fields ...map[string]interface{}) {
	event := l.logger.Debug()
	addFields(event, fields...)
	event.Msg(msg)
}

// Info logs an info message.
func (l *Logger) Info(msg string, fields ...map[string]interface{}) {
	event := l.logger.Info()
	addFields(event, fields...)
	event.Msg(msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string, fields ...map[string]interface{}) {
	event := l.logger.Warn()
	addFields(event, fields...)
	event.Msg(msg)
}

// Error logs an error message.
func (l *Logger) Error(msg string, fields ...map[string]interface{}) {
	event := l.logger.Error()
	addFields(event, fields...)
	event.Msg(msg)
}

// --- internal helpers ---

func addFields(event *zerolog.Event, fields ...map[string]interface{}) {
	for _, fm := range fields {
		for k, v := range fm {
			event.Interface(k, v)
		}
	}
}

func isConsole(format string) bool {
	f := strings.ToLower(format)
	return f == "" || f == "console" || f == FormatPretty
}

func newConsoleLogger(cfg *Config, tool string, w io.Writer) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: "15:04:05",
		NoColor:    cfg.NoColor,
		FormatLevel: func(i interface{}) string {
			lvl := strings.ToUpper(fmt.Sprintf("%s", i))
			tag := levelTag(lvl)
			if cfg.NoColor {
				return tag
			}
			switch lvl {
			case "DEBUG":
				return "\033[36m" + tag + "\033[0m"
			case "INFO":
				return "\033[32m" + tag + "\033[0m"
			case "WARN":
				return "\033[33m" + tag + "\033[0m"
			case "ERROR":
				return "\033[31m" + tag + "\033[0m"
			case "FATAL":
				return "\033[35m" + tag + "\033[0m"
			default:
				return tag
			}
		},
		FormatMessage: func(i interface{}) string {
			if i == nil {
				return ""
			}
			return fmt.Sprintf("%s", i)
		},
		FormatFieldName: func(i interface{}) string {
			return fmt.Sprintf("%s:", i)
		},
		FormatFieldValue: func(i interface{}) string {
			if i == nil {
				return ""
			}
			return fmt.Sprintf("%s", i)
		},
	})
}

func levelTag(lvl string) string {
	switch lvl {
	case "DEBUG":
		return "[DBG]"
	case "INFO":
		return "[INF]"
	case "WARN":
		return "[WRN]"
	case "ERROR":
		return "[ERR]"
	case "FATAL":
		return "[FTL]"
	default:
		return fmt.Sprintf("[%s]", lvl)
	}
}
