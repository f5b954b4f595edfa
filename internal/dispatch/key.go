package dispatch

import (
	"fmt"
	"net/http"

	"github.com/coreframe/macui-agent/internal/apierror"
	"github.com/coreframe/macui-agent/internal/model"
	"github.com/coreframe/macui-agent/internal/platform"
)

type keyRequest struct {
	Key       string             `json:"key"`
	Modifiers []string           `json:"modifiers,omitempty"`
	PID       int32              `json:"pid,omitempty"`
	Path      *model.ElementPath `json:"path,omitempty"`
}

type keyResponse struct {
	Success bool   `json:"success"`
	Action  string `json:"action,omitempty"`
}

// pathKeyActions maps the small set of keys allowed against a path
// target to the accessibility action they invoke.
var pathKeyActions = map[string]model.ActionKind{
	"return": model.ActionConfirm,
	"enter":  model.ActionConfirm,
	"escape": model.ActionCancel,
	"space":  model.ActionPress,
}

// Key implements POST /key, dispatching on the presence of path vs. pid
// per the mode-resolution decision table.
func (d *Dispatcher) Key(w http.ResponseWriter, r *http.Request) {
	var req keyRequest
	if err := decodeBody(w, r, d.BodyLimit, &req); err != nil {
		apierror.WriteValidation(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if req.Key == "" {
		apierror.WriteValidation(w, http.StatusBadRequest, "key must be non-empty")
		return
	}
	mods, err := model.ParseModifiers(req.Modifiers)
	if err != nil {
		apierror.WriteValidation(w, http.StatusBadRequest, err.Error())
		return
	}

	if req.Path != nil {
		action, ok := pathKeyActions[req.Key]
		if !ok {
			apierror.WriteFailure(w, http.StatusBadRequest, fmt.Sprintf(
				"key %q is not supported against an accessibility path (supported: return, enter, escape, space) — use pid to synthesize arbitrary keys instead", req.Key))
			return
		}
		if err := d.Exec.Do(func() error {
			return d.Provider.ActionPerformer.PerformAction(*req.Path, action, "")
		}); err != nil {
			apierror.WriteFailure(w, http.StatusInternalServerError, "action failed: "+err.Error())
			return
		}
		writeSuccess(w, keyResponse{Success: true, Action: string(action)})
		return
	}

	target := platform.Target{PID: req.PID}
	if err := d.Exec.Do(func() error {
		return d.Provider.Inputter.KeyEvent(target, req.Key, mods)
	}); err != nil {
		apierror.WriteFailure(w, http.StatusInternalServerError, "key event failed: "+err.Error())
		return
	}
	writeSuccess(w, keyResponse{Success: true})
}
