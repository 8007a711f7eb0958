// Package logging builds the service logger and carries the request-scoped
// logger through context.
//
// The HTTP logging middleware stores a child logger tagged with request_id
// and correlation_id; everything below the handler logs through it:
//
//	logging.FromContext(ctx).ErrorContext(ctx, "committing category",
//	    slog.String("operation", "CreateCategory"),
//	    slog.String("category_id", id.String()),
//	    slog.Any("error", err),
//	)
//
// Every record passes through a masq filter before it is encoded, so
// credentials that slip into attributes or error strings are masked.
package logging

import (
	"context"
	"io"
	"log/slog"
	"strings"
)

// Formats accepted by log.format.
const (
	FormatJSON = "json"
	FormatText = "text"
)

type loggerKey struct{}

// New returns a logger writing to w. level is parsed case-insensitively and
// falls back to info; any format other than "text" means JSON. Source
// locations are attached at debug. base attributes are added to every
// record.
func New(level, format string, w io.Writer, base ...slog.Attr) *slog.Logger {
	lvl := parseLevel(level)
	opts := &slog.HandlerOptions{
		Level:       lvl,
		AddSource:   lvl <= slog.LevelDebug,
		ReplaceAttr: newRedactAttr(),
	}

	var h slog.Handler
	if strings.EqualFold(format, FormatText) {
		h = slog.NewTextHandler(w, opts)
	} else {
		h = slog.NewJSONHandler(w, opts)
	}
	if len(base) > 0 {
		h = h.WithAttrs(base)
	}
	return slog.New(h)
}

// WithLogger returns a copy of ctx carrying logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// FromContext returns the logger stored in ctx, or slog.Default.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

// OrDiscard returns logger, or a logger that drops everything when logger
// is nil. Constructors use it so callers and tests may pass nil.
func OrDiscard(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return logger
}

func parseLevel(level string) slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}
