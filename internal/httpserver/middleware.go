package httpserver

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/coreframe/macui-agent/internal/apierror"
	"github.com/google/uuid"
)

// statusWriter captures the status code written so the request-log
// middleware can report it, mirroring the prior layered-handler style
// adapted from an MCP tool wrapper to a plain http.ResponseWriter
// decorator.
type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

// errorTrap recovers from a panicking handler and converts it into a
// generic HTTP 500 body, logged server-side with the real cause.
func errorTrap(logger *slog.Logger, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.Error("handler panic", "path", r.URL.Path, "recover", rec)
				apierror.WriteInternal(w)
			}
		}()
		next(w, r)
	}
}

// requestLog logs method/path/status/duration at debug level, tagged
// with a per-request correlation id minted the way agtmux mints
// one per inbound stream/event (uuid.NewString()), so a request's log
// line can be grepped out of a busy server's output.
func requestLog(logger *slog.Logger, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		reqID := uuid.NewString()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next(sw, r)
		logger.Debug("request",
			"request_id", reqID,
			"method", r.Method,
			"path", r.URL.Path,
			"status", sw.status,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	}
}

// wrap applies both middleware layers to a handler, innermost first:
// errorTrap must see the panic before requestLog finalizes its log line.
func wrap(logger *slog.Logger, next http.HandlerFunc) http.HandlerFunc {
	return requestLog(logger, errorTrap(logger, next))
}
