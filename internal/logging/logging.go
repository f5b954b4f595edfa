// Package logging constructs the process-wide structured logger. Grounded
// on joeycumines-MacosUseSDK/internal/server/audit.go, which builds an
// slog.JSONHandler over an output file; here the sink is always stderr,
// since stdout is reserved for the single-line bootstrap record and
// nothing else may share it.
package logging

import (
	"log/slog"
	"os"
)

// New builds the server's structured logger. debug raises the level to
// slog.LevelDebug, which is where the request-log middleware emits its
// per-request line (method/path/status/duration).
func New(debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	return slog.New(handler)
}
