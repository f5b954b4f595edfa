// Package platform declares the adapter interfaces the dispatch engine and
// lifecycle coordinator depend on. Concrete implementations live in
// per-OS subpackages (internal/platform/darwin); this package only knows
// about the shapes, never the mechanism.
package platform

import "github.com/coreframe/macui-agent/internal/model"

// Reader reads the accessibility tree and window list from the OS.
type Reader interface {
	// ReadTree returns the accessibility tree rooted at the application
	// element for pid, descending at most maxDepth levels (0 = unlimited).
	ReadTree(pid int32, maxDepth int) ([]model.UIElementInfo, error)

	// Describe resolves path as a live index-chase from pid's application
	// root and snapshots the node it lands on, with no further descent.
	Describe(pid int32, path []int) (model.UIElementInfo, error)

	// ListWindows enumerates on-screen windows, optionally filtered by pid
	// or app name. The darwin implementation lists on-screen windows only;
	// off-screen windows are not returned even when IncludeOffscreen is set.
	ListWindows(opts ListWindowsOptions) ([]model.WindowInfo, error)

	// MenuTree returns the application's menu-bar tree, bounded by depth.
	MenuTree(pid int32, maxDepth int) ([]model.MenuItemInfo, error)
}

// Target identifies where an input event should be delivered. A zero PID
// means the global input stream (foreground-focused delivery); a non-zero
// PID means process-targeted delivery, bypassing focus.
type Target struct {
	PID int32
}

// Global is the Target value for global (focus-following) input.
var Global = Target{}

// Point is a screen coordinate, top-left origin.
type Point struct {
	X, Y float64
}

// Inputter synthesizes mouse and keyboard input, either globally or
// targeted at a specific process. One adapter method covers both modes —
// the targeting decision lives in the dispatch engine's policy tables,
// not in the adapter.
type Inputter interface {
	// Click always synthesizes a global mouse-down/up pair; coordinate
	// clicks never require a process-targeted variant.
	Click(pt Point, button model.MouseButton, clickCount int, mods []model.KeyModifier) error

	// KeyEvent synthesizes a key-down/up for a single named key.
	// target.PID == 0 means global, where modifiers are carried as flags on
	// the key events; for a process target, modifiers are pressed before
	// and released after the key.
	KeyEvent(target Target, key string, mods []model.KeyModifier) error

	// TypeText synthesizes one key event per character of text, sleeping
	// delayMs between characters when delayMs > 0. target.PID == 0 means
	// global.
	TypeText(target Target, text string, delayMs int) error

	// Scroll synthesizes a scroll-wheel event at pt with the given deltas.
	// target.PID == 0 means global.
	Scroll(target Target, pt Point, deltaX, deltaY float64) error
}

// WindowManager manages window/app focus.
type WindowManager interface {
	FocusWindow(pid int32, windowID int) error
	GetFrontmostApp() (pid int32, name string, err error)
}

// ScreenshotOptions configures a screen/window capture.
type ScreenshotOptions struct {
	DisplayID     int
	App           string
	WindowID      int
	Format        string // "png" or "jpeg"
	Scale         float64
	HighlightPath *model.ElementPath // optional overlay, see Screenshotter
}

// Screenshotter captures the screen or a window to an encoded image.
type Screenshotter interface {
	// Capture returns the encoded image bytes, the pixel dimensions, and —
	// when the capture was of a specific window — that window's info.
	Capture(opts ScreenshotOptions) (data []byte, width, height int, win *model.WindowInfo, err error)

	// DisplaySize returns the main display's pixel dimensions, for
	// GET /status.
	DisplaySize() (width, height int, err error)
}

// ActionPerformer dispatches a semantic ActionKind to an accessibility
// node. setValue and focus are expressed as attribute writes under the
// hood; every other ActionKind is an AX action invocation. This merges
// what used to be separate ActionPerformer/ValueSetter interfaces, since
// ActionKind treats them as one closed vocabulary.
type ActionPerformer interface {
	PerformAction(path model.ElementPath, action model.ActionKind, value string) error

	// PressMenuItem resolves titles as an ordered path through pid's menu
	// bar (case-insensitive substring match at each level, first
	// depth-first match wins) and invokes the press action on the final
	// item. background, when true, skips activating the app first.
	PressMenuItem(pid int32, titles []string, background bool) error
}

// ProcessManager resolves, launches, and observes the target application.
// It has no equivalent in the earlier one-shot CLI, which never launched
// apps — it is new, required by the lifecycle coordinator's
// attach-or-launch flow.
type ProcessManager interface {
	// FindRunning locates a running process by display name (case
	// insensitive) or bundle id. ok is false if nothing matched.
	FindRunning(spec string) (pid int32, name, bundleID string, ok bool, err error)

	// Launch opens an app by bundle path, or otherwise through the by-name
	// "open" facility.
	Launch(spec string) (pid int32, err error)

	// IsAlive reports whether pid still refers to a live process.
	IsAlive(pid int32) bool
}

// PermissionProbe reports entitlement status for the two OS permissions
// this system depends on.
type PermissionProbe interface {
	AccessibilityGranted() bool
	ScreenRecordingGranted() bool
}

// ClipboardManager reads and writes the system clipboard
// (internal/platform/darwin/clipboard.go). No endpoint exposes it
// directly; /type uses it to paste large text insertions. See DESIGN.md.
type ClipboardManager interface {
	GetText() (string, error)
	SetText(string) error
	Clear() error
}

// ListWindowsOptions filters ListWindows.
type ListWindowsOptions struct {
	PID            int32
	App            string
	IncludeOffscreen bool
}
