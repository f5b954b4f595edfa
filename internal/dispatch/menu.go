package dispatch

import (
	"net/http"

	"github.com/coreframe/macui-agent/internal/apierror"
	"github.com/coreframe/macui-agent/internal/model"
)

type menuTreeResponse struct {
	Success bool                 `json:"success"`
	Menu    []model.MenuItemInfo `json:"menu"`
}

// MenuGet implements GET /menu: the application's menu-bar tree, bounded
// depth, with display-shortcut strings.
func (d *Dispatcher) MenuGet(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	pid, err := d.resolvePID(parseInt32(q.Get("pid")))
	if err != nil {
		apierror.WriteFailure(w, http.StatusBadRequest, "could not resolve target pid: "+err.Error())
		return
	}

	maxDepth := 4
	var menu []model.MenuItemInfo
	err = d.Exec.Do(func() error {
		m, err := d.Provider.Reader.MenuTree(pid, maxDepth)
		menu = m
		return err
	})
	if err != nil {
		apierror.WriteFailure(w, http.StatusInternalServerError, "failed to read menu: "+err.Error())
		return
	}
	writeSuccess(w, menuTreeResponse{Success: true, Menu: menu})
}

type menuPostRequest struct {
	Titles     []string `json:"titles"`
	PID        int32    `json:"pid,omitempty"`
	Background bool     `json:"background,omitempty"`
}

type menuPostResponse struct {
	Success bool `json:"success"`
}

// MenuPost implements POST /menu: trigger a menu item by an ordered list
// of titles, optionally in background mode (skips app activation).
func (d *Dispatcher) MenuPost(w http.ResponseWriter, r *http.Request) {
	var req menuPostRequest
	if err := decodeBody(w, r, d.BodyLimit, &req); err != nil {
		apierror.WriteValidation(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if len(req.Titles) == 0 {
		apierror.WriteValidation(w, http.StatusBadRequest, "titles must be a non-empty list")
		return
	}

	pid, err := d.resolvePID(req.PID)
	if err != nil {
		apierror.WriteFailure(w, http.StatusBadRequest, "could not resolve target pid: "+err.Error())
		return
	}

	// Resolve against a snapshot first so an unresolvable path is reported
	// as a resolution failure without ever reaching the live press.
	var tree []model.MenuItemInfo
	err = d.Exec.Do(func() error {
		t, err := d.Provider.Reader.MenuTree(pid, 8)
		tree = t
		return err
	})
	if err != nil {
		apierror.WriteFailure(w, http.StatusInternalServerError, "failed to read menu: "+err.Error())
		return
	}
	if _, ok := model.FindMenuPath(tree, req.Titles); !ok {
		apierror.WriteFailure(w, http.StatusBadRequest, "menu path did not resolve")
		return
	}

	err = d.Exec.Do(func() error {
		return d.Provider.ActionPerformer.PressMenuItem(pid, req.Titles, req.Background)
	})
	if err != nil {
		apierror.WriteFailure(w, http.StatusInternalServerError, "failed to press menu item: "+err.Error())
		return
	}
	writeSuccess(w, menuPostResponse{Success: true})
}
