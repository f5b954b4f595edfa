// Package dispatch implements one handler per route: each decodes a
// request, validates it, picks an execution mode, delegates to the bound
// platform.Provider, and encodes a response. Every accessibility/input/
// capture call is funneled through the shared mainthread.Executor;
// handlers themselves never touch the adapters directly off the request
// goroutine.
//
// Grounded on the prior internal/server/handlers.go writeActionHandler
// wrapper — that function already centralizes "run the adapter call,
// shape the response" for MCP tool calls; this package generalizes the
// same shape to plain HTTP JSON handlers against a six-kind error
// taxonomy.
package dispatch

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/coreframe/macui-agent/internal/apierror"
	"github.com/coreframe/macui-agent/internal/mainthread"
	"github.com/coreframe/macui-agent/internal/model"
	"github.com/coreframe/macui-agent/internal/platform"
)

// Dispatcher holds everything a handler needs: the platform adapters, the
// main-thread executor serializing calls into them, the optionally-bound
// TargetApp (read-only after server start), and a quit hook the /quit
// handler invokes after responding.
type Dispatcher struct {
	Provider *platform.Provider
	Exec     *mainthread.Executor
	Target   *model.TargetApp
	Logger   *slog.Logger

	BodyLimit     int64
	TypeBodyLimit int64

	StartedAt time.Time

	// QuitHook is invoked after /quit has written its response; nil is a no-op
	// (useful in tests that never actually want to exit).
	QuitHook func()
}

// New constructs a Dispatcher. target may be nil — a server bound to no
// particular app falls back to the frontmost app at every scoping point.
func New(provider *platform.Provider, exec *mainthread.Executor, target *model.TargetApp, logger *slog.Logger, bodyLimit, typeBodyLimit int64, quit func()) *Dispatcher {
	return &Dispatcher{
		Provider:      provider,
		Exec:          exec,
		Target:        target,
		Logger:        logger,
		BodyLimit:     bodyLimit,
		TypeBodyLimit: typeBodyLimit,
		StartedAt:     time.Now(),
		QuitHook:      quit,
	}
}

// resolvePID implements the scoping policy: an explicit pid wins; else
// the bound TargetApp; else the frontmost application.
func (d *Dispatcher) resolvePID(explicit int32) (int32, error) {
	if explicit != 0 {
		return explicit, nil
	}
	if d.Target != nil {
		return d.Target.PID, nil
	}
	var pid int32
	err := d.Exec.Do(func() error {
		p, _, err := d.Provider.WindowManager.GetFrontmostApp()
		pid = p
		return err
	})
	if err != nil {
		return 0, err
	}
	return pid, nil
}

// decodeBody decodes a JSON request body, capped at limit bytes.
func decodeBody(w http.ResponseWriter, r *http.Request, limit int64, v interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, limit)
	dec := json.NewDecoder(r.Body)
	return dec.Decode(v)
}

// readTree fetches the accessibility tree for pid on the main thread.
func (d *Dispatcher) readTree(pid int32, maxDepth int) ([]model.UIElementInfo, error) {
	var tree []model.UIElementInfo
	err := d.Exec.Do(func() error {
		t, err := d.Provider.Reader.ReadTree(pid, maxDepth)
		tree = t
		return err
	})
	return tree, err
}

// writeSuccess encodes v (which must itself carry success:true) as the
// response body with HTTP 200.
func writeSuccess(w http.ResponseWriter, v interface{}) {
	apierror.WriteJSON(w, http.StatusOK, v)
}

// buildQuery assembles an ElementQuery from the common set of targeting
// params several endpoints accept.
func buildQuery(role, title, titleContains, labelContains, valueContains string) model.ElementQuery {
	return model.ElementQuery{
		Role:          role,
		Title:         title,
		TitleContains: titleContains,
		LabelContains: labelContains,
		ValueContains: valueContains,
	}
}
