package dispatch

import (
	"net/http"

	"github.com/coreframe/macui-agent/internal/apierror"
	"github.com/coreframe/macui-agent/internal/model"
	"github.com/coreframe/macui-agent/internal/platform"
)

type scrollRequest struct {
	DeltaX float64            `json:"delta_x"`
	DeltaY float64            `json:"delta_y"`
	X      *float64           `json:"x,omitempty"`
	Y      *float64           `json:"y,omitempty"`
	PID    int32              `json:"pid,omitempty"`
	Path   *model.ElementPath `json:"path,omitempty"`
}

type scrollResponse struct {
	Success bool      `json:"success"`
	At      clickedAt `json:"at"`
}

// Scroll implements POST /scroll's targeting table: a
// path resolves to its frame's center and scrolls process-targeted; a
// bare pid scrolls process-targeted at the given coordinates; neither
// scrolls globally.
func (d *Dispatcher) Scroll(w http.ResponseWriter, r *http.Request) {
	var req scrollRequest
	if err := decodeBody(w, r, d.BodyLimit, &req); err != nil {
		apierror.WriteValidation(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if req.DeltaX == 0 && req.DeltaY == 0 {
		apierror.WriteValidation(w, http.StatusBadRequest, "delta_x or delta_y must be non-zero")
		return
	}

	if req.Path == nil && (req.X == nil || req.Y == nil) {
		apierror.WriteValidation(w, http.StatusBadRequest, "x and y are required when path is not given")
		return
	}

	var target platform.Target
	var pt platform.Point

	if req.Path != nil {
		var el model.UIElementInfo
		err := d.Exec.Do(func() error {
			e, err := d.Provider.Reader.Describe(req.Path.PID, req.Path.Path)
			el = e
			return err
		})
		if err != nil {
			apierror.WriteFailure(w, http.StatusBadRequest, "failed to resolve path: "+err.Error())
			return
		}
		cx, cy := el.Frame.Center()
		pt = platform.Point{X: cx, Y: cy}
		target = platform.Target{PID: req.Path.PID}
	} else {
		pt = platform.Point{X: *req.X, Y: *req.Y}
		target = platform.Target{PID: req.PID}
	}

	err := d.Exec.Do(func() error {
		return d.Provider.Inputter.Scroll(target, pt, req.DeltaX, req.DeltaY)
	})
	if err != nil {
		apierror.WriteFailure(w, http.StatusInternalServerError, "scroll failed: "+err.Error())
		return
	}
	writeSuccess(w, scrollResponse{Success: true, At: clickedAt{X: pt.X, Y: pt.Y}})
}
