// Package log sets up the structured loggers used by the command line tools.
package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/golang-cz/devslog"
	"github.com/phsym/console-slog"
	slogformatter "github.com/samber/slog-formatter"

	"github.com/zostay/go-email-header/header/part"
)

// Format names an output style for New.
type Format string

const (
	Console Format = "console" // compact colored lines
	Dev     Format = "dev"     // multi-line developer output
)

// ParseFormat returns the format named by s.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case Console, Dev:
		return f, nil
	}
	return "", fmt.Errorf("unknown log format %q", s)
}

var newHandler = slogformatter.NewFormatterHandler(
	slogformatter.ErrorFormatter("error"),
	slogformatter.FormatByType(func(p part.Part) slog.Value {
		return slog.GroupValue(
			slog.String("kind", p.Kind().String()),
			slog.String("value", p.Value()),
		)
	}),
)

// New returns a logger writing to w in the given format at the given level.
func New(w io.Writer, f Format, level slog.Level) *slog.Logger {
	if f == Dev {
		return slog.New(newHandler(
			devslog.NewHandler(w, &devslog.Options{
				HandlerOptions: &slog.HandlerOptions{Level: level},
				SortKeys:       true,
				TimeFormat:     time.RFC3339,
			}),
		))
	}

	return slog.New(newHandler(
		console.NewHandler(w, &console.HandlerOptions{
			Level:      level,
			TimeFormat: time.RFC3339,
		}),
	))
}

type noopHandler struct{}

func (noopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (noopHandler) Handle(context.Context, slog.Record) error { return nil }
func (h noopHandler) WithAttrs([]slog.Attr) slog.Handler      { return h }
func (h noopHandler) WithGroup(string) slog.Handler           { return h }

// Noop discards everything.
var Noop = slog.New(noopHandler{})
