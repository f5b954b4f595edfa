// Package httpserver implements binding (including ephemeral port
// selection), path-and-method routing, the error-trap and request-log
// middleware, and graceful shutdown, following
// joeycumines-MacosUseSDK/internal/transport/http.go's
// bind-then-Serve/Shutdown shape.
package httpserver

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
)

// Server binds one HTTP listener and dispatches through Router, with every
// handler wrapped in the error-trap and request-log middleware.
type Server struct {
	router   *Router
	listener net.Listener
	http     *http.Server
	logger   *slog.Logger
}

// New binds host:port (port 0 picks a free ephemeral port, read back via
// Port()) and constructs a Server ready to register routes on.
func New(host string, port int, logger *slog.Logger) (*Server, error) {
	listener, err := net.Listen("tcp", fmt.Sprintf("%s:%d", host, port))
	if err != nil {
		return nil, fmt.Errorf("bind %s:%d: %w", host, port, err)
	}
	router := NewRouter()
	return &Server{
		router:   router,
		listener: listener,
		logger:   logger,
		http: &http.Server{
			Handler: router,
		},
	}, nil
}

// Handle registers a middleware-wrapped handler for method and path.
func (s *Server) Handle(method, path string, handler http.HandlerFunc) {
	s.router.Handle(method, path, wrap(s.logger, handler))
}

// Port returns the bound listener's actual port — the resolved value when
// the server was constructed with port 0.
func (s *Server) Port() int {
	return s.listener.Addr().(*net.TCPAddr).Port
}

// Host returns the bound listener's address, without port.
func (s *Server) Host() string {
	return s.listener.Addr().(*net.TCPAddr).IP.String()
}

// Serve blocks, accepting connections until Shutdown is called. On a clean
// shutdown it returns http.ErrServerClosed.
func (s *Server) Serve() error {
	return s.http.Serve(s.listener)
}

// Shutdown gracefully stops the server, waiting for in-flight requests to
// complete within ctx's deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
