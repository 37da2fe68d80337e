package logger

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Options select how log lines are rendered.
type Options struct {
	// Level is a zerolog level name ("debug", "info", ...). Empty keeps the
	// current level.
	Level string
	// Console renders human readable lines instead of JSON.
	Console bool
	// Out defaults to stderr so command output on stdout stays parseable.
	Out io.Writer
}

var (
	optsMu  sync.RWMutex
	current = defaultOptions()
)

func defaultOptions() Options {
	return Options{
		Level:   os.Getenv("HAULPLAN_LOG_LEVEL"),
		Console: strings.ToLower(os.Getenv("APP_ENV")) == "dev",
	}
}

// Configure changes the output of loggers created afterwards. The level is
// applied globally right away.
func Configure(o Options) error {
	if o.Level != "" {
		lvl, err := zerolog.ParseLevel(strings.ToLower(o.Level))
		if err != nil {
			return err
		}
		zerolog.SetGlobalLevel(lvl)
	}
	optsMu.Lock()
	current = o
	optsMu.Unlock()
	return nil
}

// ZerologLogger implements Logger using rs/zerolog.
type ZerologLogger struct {
	log zerolog.Logger
}

// NewZerologLogger creates a ZerologLogger tagged with the provided component.
func NewZerologLogger(component string) Logger {
	optsMu.RLock()
	o := current
	optsMu.RUnlock()

	out := o.Out
	if out == nil {
		out = os.Stderr
	}
	if o.Console {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}
	z := zerolog.New(out).With().Timestamp().Str("component", component).Logger()
	if o.Level != "" {
		if lvl, err := zerolog.ParseLevel(strings.ToLower(o.Level)); err == nil {
			z = z.Level(lvl)
		}
	}
	return &ZerologLogger{log: z}
}

func (l *ZerologLogger) Debugf(format string, args ...any) {
	l.log.Debug().Msgf(format, args...)
}

func (l *ZerologLogger) Debugw(msg string, fields map[string]any) {
	ev := l.log.Debug()
	for k, v := range fields {
		ev = ev.Interface(k, v)
	}
	ev.Msg(msg)
}

func (l *ZerologLogger) Infof(format string, args ...any) {
	l.log.Info().Msgf(format, args...)
}

func (l *ZerologLogger) Warnf(format string, args ...any) {
	l.log.Warn().Msgf(format, args...)
}

func (l *ZerologLogger) Errorf(format string, args ...any) {
	l.log.Error().Msgf(format, args...)
}
