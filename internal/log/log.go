// Package log builds the slog loggers used by the typevault command.
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

	"github.com/authcorp/typevault/errors"
)

// Format names a log output style.
type Format string

const (
	// FormatConsole is a compact colored single-line output.
	FormatConsole Format = "console"
	// FormatDev is a multi-line output with sorted keys.
	FormatDev Format = "dev"
)

// Formats lists the accepted formats.
var Formats = []Format{FormatConsole, FormatDev}

// newHandler renders a ValidationError anywhere in an error chain as a group,
// so errors wrapped on the way up still log their code and bounds. Other
// errors fall through to ErrorFormatter.
var newHandler = slogformatter.NewFormatterHandler(
	slogformatter.FormatByKind(slog.KindAny, func(v slog.Value) slog.Value {
		err, ok := v.Any().(error)
		if !ok {
			return v
		}
		ve, ok := errors.AsType[*errors.ValidationError](err)
		if !ok {
			return v
		}
		return validationValue(ve)
	}),
	slogformatter.ErrorFormatter("error"),
)

func validationValue(e *errors.ValidationError) slog.Value {
	attrs := []slog.Attr{
		slog.String("code", string(e.Code)),
		slog.String("message", e.Message),
	}
	if e.Field != "" {
		attrs = append(attrs, slog.String("field", e.Field))
	}
	if min, max, ok := e.Bounds(); ok {
		attrs = append(attrs, slog.Float64("min", min), slog.Float64("max", max))
	}
	return slog.GroupValue(attrs...)
}

// New returns a logger writing to w. Debug records are kept only when
// verbose is set.
func New(w io.Writer, format Format, verbose bool) (*slog.Logger, error) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	switch format {
	case FormatConsole, "":
		return slog.New(newHandler(
			console.NewHandler(w, &console.HandlerOptions{
				AddSource:  verbose,
				Level:      level,
				TimeFormat: time.RFC3339Nano,
			}),
		)), nil
	case FormatDev:
		return slog.New(newHandler(
			devslog.NewHandler(w, &devslog.Options{
				HandlerOptions: &slog.HandlerOptions{
					AddSource: verbose,
					Level:     level,
				},
				SortKeys:   true,
				TimeFormat: time.RFC3339Nano,
			}),
		)), nil
	default:
		return nil, fmt.Errorf("unknown log format %q, expected one of %v", format, Formats)
	}
}

type noopHandler struct{}

func (noopHandler) Enabled(context.Context, slog.Level) bool { return false }

func (noopHandler) Handle(context.Context, slog.Record) error { return nil }

func (h noopHandler) WithAttrs([]slog.Attr) slog.Handler { return h }

func (h noopHandler) WithGroup(string) slog.Handler { return h }

// Noop is a noop logger.
var Noop = slog.New(noopHandler{})
