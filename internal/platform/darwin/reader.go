//go:build darwin

package darwin

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework CoreGraphics -framework CoreFoundation -framework ApplicationServices -framework Foundation
#include <ApplicationServices/ApplicationServices.h>
#include <stdlib.h>
#include <string.h>

typedef struct {
    int windowID;
    int pid;
    int layer;
    int x, y, width, height;
    char title[512];
    char appName[256];
} cgWindowInfo;

// cg_list_windows enumerates on-screen windows via CGWindowListCopyWindowInfo
// into a caller-allocated buffer, returning the number written (capped at
// cap). This mirrors the prior window enumeration but inlines the CF
// dictionary walk instead of relying on a separate header.
static int cg_list_windows(cgWindowInfo *out, int cap) {
    CFArrayRef list = CGWindowListCopyWindowInfo(
        kCGWindowListOptionOnScreenOnly | kCGWindowListExcludeDesktopElements,
        kCGNullWindowID);
    if (!list) {
        return 0;
    }
    CFIndex n = CFArrayGetCount(list);
    int written = 0;
    for (CFIndex i = 0; i < n && written < cap; i++) {
        CFDictionaryRef entry = (CFDictionaryRef)CFArrayGetValueAtIndex(list, i);
        cgWindowInfo *w = &out[written];
        memset(w, 0, sizeof(*w));

        CFNumberRef num;
        num = (CFNumberRef)CFDictionaryGetValue(entry, kCGWindowNumber);
        if (num) CFNumberGetValue(num, kCFNumberIntType, &w->windowID);
        num = (CFNumberRef)CFDictionaryGetValue(entry, kCGWindowOwnerPID);
        if (num) CFNumberGetValue(num, kCFNumberIntType, &w->pid);
        num = (CFNumberRef)CFDictionaryGetValue(entry, kCGWindowLayer);
        if (num) CFNumberGetValue(num, kCFNumberIntType, &w->layer);

        CFDictionaryRef bounds = (CFDictionaryRef)CFDictionaryGetValue(entry, kCGWindowBounds);
        if (bounds) {
            CGRect rect;
            CGRectMakeWithDictionaryRepresentation(bounds, &rect);
            w->x = (int)rect.origin.x;
            w->y = (int)rect.origin.y;
            w->width = (int)rect.size.width;
            w->height = (int)rect.size.height;
        }

        CFStringRef title = (CFStringRef)CFDictionaryGetValue(entry, kCGWindowName);
        if (title) {
            CFStringGetCString(title, w->title, sizeof(w->title), kCFStringEncodingUTF8);
        }
        CFStringRef owner = (CFStringRef)CFDictionaryGetValue(entry, kCGWindowOwnerName);
        if (owner) {
            CFStringGetCString(owner, w->appName, sizeof(w->appName), kCFStringEncodingUTF8);
        }
        written++;
    }
    CFRelease(list);
    return written;
}

static pid_t cg_frontmost_pid(void) {
    ProcessSerialNumber psn;
    GetFrontProcess(&psn);
    pid_t pid = 0;
    GetProcessPID(&psn, &pid);
    return pid;
}
*/
import "C"

import (
	"sort"
	"strings"
	"unsafe"

	"github.com/coreframe/macui-agent/internal/model"
	"github.com/coreframe/macui-agent/internal/platform"
)

// maxEnumeratedWindows bounds the CGWindowListCopyWindowInfo scan buffer.
// No real desktop approaches this many on-screen windows; it exists only
// so the cgo call can use a fixed-size caller-allocated array.
const maxEnumeratedWindows = 512

// DarwinReader implements platform.Reader for macOS.
type DarwinReader struct{}

// NewReader constructs a macOS accessibility/window reader.
func NewReader() *DarwinReader {
	return &DarwinReader{}
}

// Describe resolves path against pid's accessibility tree and snapshots
// the node it lands on, with no further descent. It is the single-element
// counterpart of ReadTree, shared by the /accessibility/element endpoint,
// the /scroll frame-resolution path, and the screenshot highlight overlay — all live index-chases against the
// current tree, never a cached one.
func (r *DarwinReader) Describe(pid int32, path []int) (model.UIElementInfo, error) {
	ref, err := resolvePath(pid, path)
	if err != nil {
		return model.UIElementInfo{}, err
	}
	defer ref.release()
	return describe(ref, pid, path, 0), nil
}

// ReadTree reads the accessibility tree rooted at pid's application
// element. maxDepth <= 0 means unlimited.
func (r *DarwinReader) ReadTree(pid int32, maxDepth int) ([]model.UIElementInfo, error) {
	root := axApplicationElement(pid)
	if !root.valid() {
		return nil, &elementNotFoundError{pid: pid}
	}
	defer root.release()

	depth := maxDepth
	if depth <= 0 {
		depth = 64
	}

	n := root.childCount()
	out := make([]model.UIElementInfo, 0, n)
	for i := 0; i < n; i++ {
		child := root.childAt(i)
		if !child.valid() {
			continue
		}
		out = append(out, describe(child, pid, []int{i}, depth-1))
		child.release()
	}
	return out, nil
}

// MenuTree returns the application's menu bar tree, bounded by maxDepth.
func (r *DarwinReader) MenuTree(pid int32, maxDepth int) ([]model.MenuItemInfo, error) {
	app := axApplicationElement(pid)
	if !app.valid() {
		return nil, &elementNotFoundError{pid: pid}
	}
	defer app.release()

	menuBar := app.refAttr("AXMenuBar")
	if !menuBar.valid() {
		return nil, nil
	}
	defer menuBar.release()

	depth := maxDepth
	if depth <= 0 {
		depth = 8
	}
	return describeMenu(menuBar, depth), nil
}

func describeMenu(ref axRef, depth int) []model.MenuItemInfo {
	n := ref.childCount()
	out := make([]model.MenuItemInfo, 0, n)
	for i := 0; i < n; i++ {
		child := ref.childAt(i)
		if !child.valid() {
			continue
		}
		item := model.MenuItemInfo{
			Title:     child.stringAttr("AXTitle"),
			Shortcut:  child.stringAttr("AXMenuItemCmdChar"),
		}
		if enabled, ok := child.boolAttr("AXEnabled"); ok {
			item.IsEnabled = enabled
		} else {
			item.IsEnabled = true
		}
		if depth > 1 {
			// A menu item's submenu, if any, is itself a single AXMenu
			// child holding the actual item list.
			submenuCount := child.childCount()
			if submenuCount > 0 {
				submenu := child.childAt(0)
				if submenu.valid() {
					item.Children = describeMenu(submenu, depth-1)
					item.HasSubmenu = len(item.Children) > 0
					submenu.release()
				}
			}
		}
		out = append(out, item)
		child.release()
	}
	return out
}

// ListWindows enumerates windows via CGWindowListCopyWindowInfo, filtered
// to ordinary application windows (layer 0) and by opts.
func (r *DarwinReader) ListWindows(opts platform.ListWindowsOptions) ([]model.WindowInfo, error) {
	buf := make([]C.cgWindowInfo, maxEnumeratedWindows)
	n := int(C.cg_list_windows((*C.cgWindowInfo)(unsafe.Pointer(&buf[0])), C.int(maxEnumeratedWindows)))
	frontPID := int32(C.cg_frontmost_pid())

	out := make([]model.WindowInfo, 0, n)
	frontAssigned := false
	for i := 0; i < n; i++ {
		w := buf[i]
		if int(w.layer) != 0 {
			continue
		}
		pid := int32(w.pid)
		appName := C.GoString(&w.appName[0])
		title := C.GoString(&w.title[0])

		if opts.PID != 0 && pid != opts.PID {
			continue
		}
		if opts.App != "" && !strings.Contains(strings.ToLower(appName), strings.ToLower(opts.App)) {
			continue
		}

		focused := false
		if pid == frontPID && !frontAssigned {
			focused = true
			frontAssigned = true
		}

		out = append(out, model.WindowInfo{
			WindowID:   int(w.windowID),
			Title:      title,
			AppName:    appName,
			PID:        pid,
			Frame:      model.ElementFrame{X: float64(w.x), Y: float64(w.y), Width: float64(w.width), Height: float64(w.height)},
			IsOnScreen: true,
			IsFocused:  focused,
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].IsFocused != out[j].IsFocused {
			return out[i].IsFocused
		}
		return strings.ToLower(out[i].AppName) < strings.ToLower(out[j].AppName)
	})

	// opts.IncludeOffscreen is accepted but has no effect: CGWindowListCopyWindowInfo
	// with kCGWindowListOptionOnScreenOnly is the only enumeration source available
	// without a private API, so off-screen windows never appear in out regardless.
	return out, nil
}

type elementNotFoundError struct {
	pid int32
}

func (e *elementNotFoundError) Error() string {
	return "no accessibility element for pid"
}
