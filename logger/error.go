// Package logger carries structured context on errors so it shows up when
// the error is eventually logged with log/slog.
package logger

import (
	"context"
	"errors"
	"log/slog"
	"time"
)

// AnnotateError wraps an error with structured logging attributes (slog key-value pairs).
// When the returned error is logged through a handler built with NewErrorHandler,
// the attributes are automatically extracted and included in the log output.
//
// The wrapped error keeps its message and stays matchable with errors.Is and errors.As.
//
// Example:
//
//	if index >= n {
//	    return AnnotateError(fmt.Errorf("%w: %d", ErrIndexOutOfRange, index), "index", index, "length", n)
//	}
//
// Returns nil if err is nil.
func AnnotateError(err error, args ...any) error {
	if err == nil {
		return nil
	}

	r := slog.NewRecord(time.Now(), slog.LevelDebug, "", 0)
	r.Add(args...)

	var errAttrs []slog.Attr

	r.Attrs(func(attr slog.Attr) bool {
		errAttrs = append(errAttrs, attr)

		return true
	})

	return &slogError{
		err:   err,
		attrs: errAttrs,
	}
}

// ErrorAttrs returns the attributes attached by AnnotateError anywhere in
// err's chain, outermost first.
func ErrorAttrs(err error) []slog.Attr {
	var out []slog.Attr

	for err != nil {
		var se *slogError
		if !errors.As(err, &se) {
			break
		}

		out = append(out, se.attrs...)
		err = se.err
	}

	return out
}

// slogError wraps an error with structured logging attributes.
type slogError struct {
	err   error       // The underlying error
	attrs []slog.Attr // Structured logging attributes attached to this error
}

// Error returns the error message from the underlying error.
func (s *slogError) Error() string {
	return s.err.Error()
}

// Unwrap returns the underlying error, supporting error chain traversal.
func (s *slogError) Unwrap() error {
	return s.err
}

var _ error = (*slogError)(nil)

// NewErrorHandler decorates inner so that annotated errors logged as
// attributes have their embedded attributes added to the record.
//
//	log := slog.New(logger.NewErrorHandler(slog.NewJSONHandler(os.Stderr, nil)))
//	log.Error("lookup failed", "error", err)
func NewErrorHandler(inner slog.Handler) slog.Handler {
	if h, ok := inner.(*slogErrorLogger); ok {
		return h
	}

	return &slogErrorLogger{inner: inner}
}

// slogErrorLogger is a slog.Handler decorator that extracts structured attributes
// from annotated errors (created via AnnotateError) and includes them in log output.
type slogErrorLogger struct {
	inner slog.Handler // The wrapped handler that performs actual logging
}

var _ slog.Handler = (*slogErrorLogger)(nil)

// Enabled reports whether the handler handles records at the given level.
// Delegates to the inner handler.
func (s *slogErrorLogger) Enabled(ctx context.Context, level slog.Level) bool {
	return s.inner.Enabled(ctx, level)
}

// Handle processes a log record. Every error attribute keeps its full
// message, outer wrapping included; the annotations found anywhere in its
// chain are appended to the record.
func (s *slogErrorLogger) Handle(ctx context.Context, record slog.Record) error {
	var errAttrs []slog.Attr

	record.Attrs(func(attr slog.Attr) bool {
		if err, ok := attr.Value.Any().(error); ok {
			errAttrs = append(errAttrs, ErrorAttrs(err)...)
		}

		return true
	})

	if len(errAttrs) == 0 {
		return s.inner.Handle(ctx, record)
	}

	r := record.Clone()
	r.AddAttrs(errAttrs...)

	return s.inner.Handle(ctx, r)
}

// WithAttrs returns a new handler with the given attributes added.
func (s *slogErrorLogger) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &slogErrorLogger{inner: s.inner.WithAttrs(attrs)}
}

// WithGroup returns a new handler with the given group name.
func (s *slogErrorLogger) WithGroup(name string) slog.Handler {
	return &slogErrorLogger{inner: s.inner.WithGroup(name)}
}
