package dispatch

import (
	"net/http"

	"github.com/coreframe/macui-agent/internal/model"
	"github.com/coreframe/macui-agent/internal/version"
)

type permissionsInfo struct {
	Accessibility   bool `json:"accessibility"`
	ScreenRecording bool `json:"screen_recording"`
}

type frontmostAppInfo struct {
	PID  int32  `json:"pid"`
	Name string `json:"name"`
}

type screenSizeInfo struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

type statusResponse struct {
	Success      bool              `json:"success"`
	Version      string            `json:"version"`
	Running      bool              `json:"running"`
	Permissions  permissionsInfo   `json:"permissions"`
	FrontmostApp *frontmostAppInfo `json:"frontmost_app,omitempty"`
	ScreenSize   screenSizeInfo    `json:"screen_size"`
	TargetApp    *model.TargetApp  `json:"target_app,omitempty"`
}

// Status implements GET /status: version, liveness, permission probe
// results, a frontmost-app snapshot, the main display's pixel size, and
// the bound TargetApp if any. No parameters.
func (d *Dispatcher) Status(w http.ResponseWriter, r *http.Request) {
	resp := statusResponse{
		Success:   true,
		Version:   version.Version,
		Running:   true,
		TargetApp: d.Target,
	}

	err := d.Exec.Do(func() error {
		resp.Permissions = permissionsInfo{
			Accessibility:   d.Provider.Permissions.AccessibilityGranted(),
			ScreenRecording: d.Provider.Permissions.ScreenRecordingGranted(),
		}
		if pid, name, ferr := d.Provider.WindowManager.GetFrontmostApp(); ferr == nil {
			resp.FrontmostApp = &frontmostAppInfo{PID: pid, Name: name}
		}
		w, h, serr := d.Provider.Screenshotter.DisplaySize()
		if serr != nil {
			return serr
		}
		resp.ScreenSize = screenSizeInfo{Width: w, Height: h}
		return nil
	})
	if err != nil {
		d.Logger.Error("status probe failed", "error", err)
	}

	writeSuccess(w, resp)
}

// Health implements GET /health: a bare liveness probe.
func (d *Dispatcher) Health(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, map[string]string{"status": "ok"})
}

// Index implements GET /: a static API descriptor.
func (d *Dispatcher) Index(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, map[string]interface{}{
		"success": true,
		"name":    "macui-agent",
		"version": version.Version,
		"routes": []string{
			"GET /status", "GET /screenshot", "POST /click", "POST /click/element",
			"POST /type", "POST /key", "POST /scroll", "POST /wait",
			"GET /accessibility/tree", "GET /accessibility/element",
			"GET /accessibility/elements", "GET /accessibility/focused",
			"POST /accessibility/action", "GET /menu", "POST /menu",
			"POST /quit", "GET /", "GET /health",
		},
	})
}
