package logging

import (
	"context"
	"log/slog"

	"github.com/thoreinstein/ocmigrate/internal/errors"
)

// Tee returns a handler that writes every record to each of sinks that
// accepts its level. The CLIs tee the console stream with the --log-file
// JSON stream. A single sink is returned unwrapped.
func Tee(sinks ...slog.Handler) slog.Handler {
	if len(sinks) == 1 {
		return sinks[0]
	}
	return tee(sinks)
}

type tee []slog.Handler

func (t tee) Enabled(ctx context.Context, level slog.Level) bool {
	for _, s := range t {
		if s.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

// Handle keeps writing after a sink fails so a broken log file does not
// silence the console. All sink errors are returned together.
func (t tee) Handle(ctx context.Context, r slog.Record) error {
	var err error
	for _, s := range t {
		if s.Enabled(ctx, r.Level) {
			err = errors.Combine(err, s.Handle(ctx, r.Clone()))
		}
	}
	return err
}

func (t tee) WithAttrs(attrs []slog.Attr) slog.Handler {
	return t.each(func(s slog.Handler) slog.Handler { return s.WithAttrs(attrs) })
}

func (t tee) WithGroup(name string) slog.Handler {
	return t.each(func(s slog.Handler) slog.Handler { return s.WithGroup(name) })
}

func (t tee) each(derive func(slog.Handler) slog.Handler) tee {
	out := make(tee, len(t))
	for i, s := range t {
		out[i] = derive(s)
	}
	return out
}
