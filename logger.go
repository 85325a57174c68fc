package surfman

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/gogpu/surfman/backend/hardware"
	"github.com/gogpu/surfman/backend/software"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so callers skip message formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can be called concurrently with logging from any goroutine.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for surfman and both backends.
// By default, surfman produces no log output. Pass nil to restore the
// silent default.
//
// Log levels used by surfman:
//   - [slog.LevelDebug]: resource lifecycle (contexts, surfaces, textures)
//   - [slog.LevelInfo]: adapter selection and hardware-to-software fallback
//   - [slog.LevelWarn]: non-fatal issues (blit shader compile failure,
//     releasing a device with live surfaces)
//
// Example:
//
//	surfman.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
	hardware.SetLogger(l)
	software.SetLogger(l)
}

// Logger returns the current logger used by surfman.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}

func slogger() *slog.Logger { return loggerPtr.Load() }
