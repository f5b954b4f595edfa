// Package lifecycle implements the run flow: resolve an app
// specifier to a running process (attaching to it, or launching it and
// waiting for it to come up), bind the HTTP server, emit the bootstrap
// record, spawn the liveness watchdog, and block until the server stops.
//
// Grounded on the prior cmd/serve.go / cmd/mcp_server.go split: a
// flag-parsed config struct feeding a constructor, then one blocking serve
// call. This adapts that "start an MCP server" shape to "resolve app ->
// launch-or-attach -> bind HTTP -> watchdog -> block", since the prior
// implementation never launches applications or binds a long-lived HTTP
// listener.
package lifecycle

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/coreframe/macui-agent/internal/dispatch"
	"github.com/coreframe/macui-agent/internal/httpserver"
	"github.com/coreframe/macui-agent/internal/mainthread"
	"github.com/coreframe/macui-agent/internal/model"
	"github.com/coreframe/macui-agent/internal/platform"
)

// Options configures one run of the lifecycle coordinator.
type Options struct {
	// AppSpec is a display name, bundle path, or bundle identifier.
	AppSpec string
	Host    string
	Port    int

	LaunchReadyTimeout time.Duration
	WatchdogInterval   time.Duration

	BodyLimit     int64
	TypeBodyLimit int64

	Provider *platform.Provider
	Exec     *mainthread.Executor
	Logger   *slog.Logger

	// Stdout receives the bootstrap record; defaults to os.Stdout.
	Stdout io.Writer
}

// bootstrapRecord is the single-line JSON record emitted on standard
// output once the server is bound: exactly app, host, pid, and port, in
// that field order.
type bootstrapRecord struct {
	App  string `json:"app"`
	Host string `json:"host"`
	PID  int32  `json:"pid"`
	Port int    `json:"port"`
}

// Run resolves opts.AppSpec to a process, binds the HTTP server, emits the
// bootstrap record, and blocks until the server stops — on /quit, on a
// caller-cancelled ctx, or on the target application's own termination.
func Run(ctx context.Context, opts Options) error {
	target, err := resolveTarget(opts)
	if err != nil {
		return err
	}

	srv, err := httpserver.New(opts.Host, opts.Port, opts.Logger)
	if err != nil {
		return fmt.Errorf("bind server: %w", err)
	}

	var stopOnce sync.Once
	stopCh := make(chan struct{})
	requestStop := func() {
		stopOnce.Do(func() { close(stopCh) })
	}

	d := dispatch.New(opts.Provider, opts.Exec, &target, opts.Logger, opts.BodyLimit, opts.TypeBodyLimit, requestStop)
	d.Register(srv)

	if err := emitBootstrapRecord(opts.Stdout, target, srv); err != nil {
		return err
	}

	wd := newWatchdog(opts.Provider.ProcessManager, target.PID, opts.WatchdogInterval, requestStop)
	go wd.run()
	defer wd.Stop()

	serveErrCh := make(chan error, 1)
	go func() { serveErrCh <- srv.Serve() }()

	select {
	case <-stopCh:
	case <-ctx.Done():
	case err := <-serveErrCh:
		if err != nil && err != http.ErrServerClosed {
			return err
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// resolveTarget attaches to a matching
// running process, or launch one and wait up to LaunchReadyTimeout for it
// to come alive.
func resolveTarget(opts Options) (model.TargetApp, error) {
	pm := opts.Provider.ProcessManager

	if pid, name, bundleID, ok, err := pm.FindRunning(opts.AppSpec); err != nil {
		return model.TargetApp{}, fmt.Errorf("locate %q: %w", opts.AppSpec, err)
	} else if ok {
		return model.TargetApp{PID: pid, Name: name, BundleID: bundleID}, nil
	}

	pid, err := pm.Launch(opts.AppSpec)
	if err != nil {
		return model.TargetApp{}, fmt.Errorf("launch %q: %w", opts.AppSpec, err)
	}

	readyTimeout := opts.LaunchReadyTimeout
	if readyTimeout <= 0 {
		readyTimeout = 5 * time.Second
	}
	deadline := time.Now().Add(readyTimeout)
	for !pm.IsAlive(pid) {
		if time.Now().After(deadline) {
			return model.TargetApp{}, fmt.Errorf("%q did not become ready within %s", opts.AppSpec, readyTimeout)
		}
		time.Sleep(50 * time.Millisecond)
	}

	target := model.TargetApp{PID: pid, Name: opts.AppSpec}
	if _, name, bundleID, ok, err := pm.FindRunning(opts.AppSpec); err == nil && ok {
		target.Name, target.BundleID = name, bundleID
	}
	return target, nil
}

// emitBootstrapRecord writes the single-line bootstrap record to out (or
// os.Stdout when out is nil) and flushes it: this
// is the machine-readable contract callers parse to learn the bound port.
func emitBootstrapRecord(out io.Writer, target model.TargetApp, srv *httpserver.Server) error {
	if out == nil {
		out = os.Stdout
	}
	rec := bootstrapRecord{App: target.Name, Host: srv.Host(), PID: target.PID, Port: srv.Port()}
	if err := json.NewEncoder(out).Encode(rec); err != nil {
		return fmt.Errorf("emit bootstrap record: %w", err)
	}
	if f, ok := out.(*os.File); ok {
		_ = f.Sync()
	}
	return nil
}
