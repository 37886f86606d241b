// Package log provides the slog loggers used across the module.
//
// Library code never logs to the process default [slog.Logger]. Instead it takes
// a logger from options or falls back to [Default], which discards everything
// until replaced with [SetDefault].
package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync/atomic"
	"time"

	"braces.dev/errtrace"
	"github.com/golang-cz/devslog"
	"github.com/phsym/console-slog"
	slogformatter "github.com/samber/slog-formatter"
)

var newHandler = slogformatter.NewFormatterHandler(
	slogformatter.ErrorFormatter("error"),
	slogformatter.FormatByType(func(f *os.File) slog.Value {
		if f == nil {
			return slog.StringValue("<nil>")
		}
		return slog.GroupValue(
			slog.String("type", fmt.Sprintf("%T", f)),
			slog.String("ptr", fmt.Sprintf("%p", f)),
			slog.String("name", f.Name()),
		)
	}),
)

// NewConsole returns a logger that writes human-readable records to w.
func NewConsole(w io.Writer, lvl slog.Leveler) *slog.Logger {
	return slog.New(newHandler(
		console.NewHandler(w, &console.HandlerOptions{
			AddSource:  true,
			Level:      lvl,
			TimeFormat: time.RFC3339Nano,
		}),
	))
}

// NewDev returns a developer logger with sorted keys and expanded groups.
func NewDev(w io.Writer, lvl slog.Leveler) *slog.Logger {
	return slog.New(newHandler(
		devslog.NewHandler(w, &devslog.Options{
			HandlerOptions: &slog.HandlerOptions{
				AddSource: true,
				Level:     lvl,
			},
			SortKeys:   true,
			TimeFormat: time.RFC3339Nano,
		}),
	))
}

// Def is a console logger writing debug records to stdout.
var Def = NewConsole(os.Stdout, slog.LevelDebug)

// Dev is a developer logger writing debug records to stdout.
var Dev = NewDev(os.Stdout, slog.LevelDebug)

type noopHandler struct{}

func (noopHandler) Enabled(context.Context, slog.Level) bool { return false }

func (noopHandler) Handle(context.Context, slog.Record) error { return nil }

func (h noopHandler) WithAttrs([]slog.Attr) slog.Handler { return h }

func (h noopHandler) WithGroup(string) slog.Handler { return h }

// Noop is a noop logger.
var Noop = slog.New(noopHandler{})

var defLogger atomic.Pointer[slog.Logger]

func init() {
	defLogger.Store(Noop)
}

// Default returns the package default logger, [Noop] unless replaced with [SetDefault].
func Default() *slog.Logger { return defLogger.Load() }

// SetDefault replaces the package default logger.
// Nil resets it to [Noop].
func SetDefault(l *slog.Logger) {
	if l == nil {
		l = Noop
	}
	defLogger.Store(l)
}

type stringValue[T ~string | ~[]byte] struct {
	v T
}

func (v stringValue[T]) LogValue() slog.Value {
	return slog.StringValue(string(v.v))
}

// StringValue returns a value logger that formats v as string.
func StringValue[T ~string | ~[]byte](v T) slog.LogValuer { return stringValue[T]{v} }

// ParseLevel parses a level name ("debug", "info", "warn", "error")
// or a signed offset like "debug-2".
func ParseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return 0, errtrace.Wrap(fmt.Errorf("parse log level %q: %w", s, err))
	}
	return lvl, nil
}
