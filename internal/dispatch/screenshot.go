package dispatch

import (
	"encoding/base64"
	"net/http"
	"strconv"

	"github.com/coreframe/macui-agent/internal/apierror"
	"github.com/coreframe/macui-agent/internal/model"
	"github.com/coreframe/macui-agent/internal/platform"
)

type screenshotResponse struct {
	Success bool              `json:"success"`
	Format  string            `json:"format"`
	Width   int               `json:"width"`
	Height  int               `json:"height"`
	Data    string            `json:"data"`
	Window  *model.WindowInfo `json:"window,omitempty"`
}

// Screenshot implements GET /screenshot's selection order
// (app -> windowId -> full display) plus the supplemental highlightPath
// overlay. png/jpeg formats return raw bytes with the matching
// content-type; base64 returns a JSON envelope.
func (d *Dispatcher) Screenshot(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	format := q.Get("format")
	if format == "" {
		format = "png"
	}
	switch format {
	case "png", "jpeg", "base64":
	default:
		apierror.WriteValidation(w, http.StatusBadRequest, "format must be one of png, jpeg, or base64")
		return
	}

	app := q.Get("app")
	if app == "" && q.Get("windowId") == "" && d.Target != nil {
		app = d.Target.Name
	}

	opts := platform.ScreenshotOptions{
		App:      app,
		WindowID: int(parseInt32(q.Get("windowId"))),
		DisplayID: int(parseInt32(q.Get("display"))),
		Format:   format,
	}
	if format == "base64" {
		opts.Format = "png"
	}

	if hp := q.Get("highlightPath"); hp != "" {
		path, err := model.ParseIndexList(hp)
		if err != nil {
			apierror.WriteValidation(w, http.StatusBadRequest, err.Error())
			return
		}
		pid := parseInt32(q.Get("pid"))
		if pid == 0 {
			apierror.WriteValidation(w, http.StatusBadRequest, "pid is required when highlightPath is given")
			return
		}
		opts.HighlightPath = &model.ElementPath{PID: pid, Path: path}
	}

	var data []byte
	var width, height int
	var win *model.WindowInfo
	err := d.Exec.Do(func() error {
		b, wd, ht, wn, err := d.Provider.Screenshotter.Capture(opts)
		data, width, height, win = b, wd, ht, wn
		return err
	})
	if err != nil {
		apierror.WriteFailure(w, http.StatusInternalServerError, "capture failed: "+err.Error())
		return
	}

	if format == "base64" {
		writeSuccess(w, screenshotResponse{
			Success: true,
			Format:  "png",
			Width:   width,
			Height:  height,
			Data:    base64.StdEncoding.EncodeToString(data),
			Window:  win,
		})
		return
	}

	contentType := "image/png"
	if format == "jpeg" {
		contentType = "image/jpeg"
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
