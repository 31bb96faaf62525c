package shadows

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler discards every record. Enabled returns false so callers skip
// formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(slog.New(nopHandler{}))
}

// SetLogger configures the logger used by the shadow packages.
// By default nothing is logged. Pass nil to restore the silent logger.
//
// Log levels used:
//   - [slog.LevelDebug]: frames that produced no polygons
//   - [slog.LevelWarn]: coerced obstacle input, failed polygon draws
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger. The lighting package shares it so a
// single SetLogger call covers the whole shadow pipeline.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
