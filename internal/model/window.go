package model

// WindowInfo is an enumerated window snapshot. It replaces the prior
// Window (which used a bare PID/ID pair and no bundle id) with the fuller
// shape this service calls for, including on-screen status.
type WindowInfo struct {
	WindowID    int          `json:"window_id"`
	Title       string       `json:"title"`
	AppName     string       `json:"app_name"`
	BundleID    string       `json:"bundle_id,omitempty"`
	PID         int32        `json:"pid"`
	Frame       ElementFrame `json:"frame"`
	IsOnScreen  bool         `json:"is_on_screen"`
	IsFocused   bool         `json:"is_focused,omitempty"`
}
