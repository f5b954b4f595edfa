package dispatch

import (
	"net/http"

	"github.com/coreframe/macui-agent/internal/addressing"
	"github.com/coreframe/macui-agent/internal/apierror"
	"github.com/coreframe/macui-agent/internal/model"
	"github.com/coreframe/macui-agent/internal/platform"
)

type clickRequest struct {
	X          float64             `json:"x"`
	Y          float64             `json:"y"`
	Button     string              `json:"button,omitempty"`
	ClickCount int                 `json:"click_count,omitempty"`
	Modifiers  []string            `json:"modifiers,omitempty"`
}

type clickedAt struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type clickResponse struct {
	Success   bool      `json:"success"`
	ClickedAt clickedAt `json:"clicked_at"`
}

// Click implements POST /click: a global mouse-down/up at (x, y).
func (d *Dispatcher) Click(w http.ResponseWriter, r *http.Request) {
	var req clickRequest
	if err := decodeBody(w, r, d.BodyLimit, &req); err != nil {
		apierror.WriteValidation(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if req.X < 0 || req.Y < 0 {
		apierror.WriteValidation(w, http.StatusBadRequest, "x and y must be non-negative")
		return
	}
	button, err := model.ParseMouseButton(req.Button)
	if err != nil {
		apierror.WriteValidation(w, http.StatusBadRequest, err.Error())
		return
	}
	mods, err := model.ParseModifiers(req.Modifiers)
	if err != nil {
		apierror.WriteValidation(w, http.StatusBadRequest, err.Error())
		return
	}
	clickCount := req.ClickCount
	if clickCount <= 0 {
		clickCount = 1
	}

	err = d.Exec.Do(func() error {
		return d.Provider.Inputter.Click(platform.Point{X: req.X, Y: req.Y}, button, clickCount, mods)
	})
	if err != nil {
		apierror.WriteFailure(w, http.StatusInternalServerError, "click failed: "+err.Error())
		return
	}

	writeSuccess(w, clickResponse{Success: true, ClickedAt: clickedAt{X: req.X, Y: req.Y}})
}

type clickElementRequest struct {
	Title                  string `json:"title,omitempty"`
	TitleContains          string `json:"title_contains,omitempty"`
	Role                   string `json:"role,omitempty"`
	Label                  string `json:"label,omitempty"`
	PID                    int32  `json:"pid,omitempty"`
	UseAccessibilityAction bool   `json:"use_accessibility_action,omitempty"`
	Button                 string `json:"button,omitempty"`
}

type clickElementResponse struct {
	Success   bool               `json:"success"`
	Element   model.UIElementInfo `json:"element"`
	ClickedAt *clickedAt          `json:"clicked_at,omitempty"`
}

// ClickElement implements POST /click/element: resolve an ElementQuery to
// its first match, then either invoke the press action on it or click its
// frame's geometric center, depending on the request's
// use_accessibility_action flag.
func (d *Dispatcher) ClickElement(w http.ResponseWriter, r *http.Request) {
	var req clickElementRequest
	if err := decodeBody(w, r, d.BodyLimit, &req); err != nil {
		apierror.WriteValidation(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	query := model.ElementQuery{
		Role:          req.Role,
		Title:         req.Title,
		TitleContains: req.TitleContains,
		LabelContains: req.Label,
	}
	if query.IsEmpty() {
		apierror.WriteValidation(w, http.StatusBadRequest, "at least one of title, title_contains, role, or label is required")
		return
	}
	button, err := model.ParseMouseButton(req.Button)
	if err != nil {
		apierror.WriteValidation(w, http.StatusBadRequest, err.Error())
		return
	}

	pid, err := d.resolvePID(req.PID)
	if err != nil {
		apierror.WriteFailure(w, http.StatusBadRequest, "could not resolve target pid: "+err.Error())
		return
	}

	tree, err := d.readTree(pid, 0)
	if err != nil {
		apierror.WriteFailure(w, http.StatusInternalServerError, "failed to read accessibility tree: "+err.Error())
		return
	}
	el, ok := addressing.FindFirst(tree, query)
	if !ok {
		apierror.WriteFailure(w, http.StatusBadRequest, "no element matched the given query")
		return
	}

	if req.UseAccessibilityAction {
		err = d.Exec.Do(func() error {
			return d.Provider.ActionPerformer.PerformAction(el.Path, model.ActionPress, "")
		})
		if err != nil {
			apierror.WriteFailure(w, http.StatusInternalServerError, "press action failed: "+err.Error())
			return
		}
		writeSuccess(w, clickElementResponse{Success: true, Element: el})
		return
	}

	cx, cy := el.Frame.Center()
	err = d.Exec.Do(func() error {
		return d.Provider.Inputter.Click(platform.Point{X: cx, Y: cy}, button, 1, nil)
	})
	if err != nil {
		apierror.WriteFailure(w, http.StatusInternalServerError, "click failed: "+err.Error())
		return
	}
	writeSuccess(w, clickElementResponse{Success: true, Element: el, ClickedAt: &clickedAt{X: cx, Y: cy}})
}
