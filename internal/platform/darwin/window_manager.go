//go:build darwin

package darwin

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework AppKit -framework ApplicationServices -framework CoreFoundation -framework Foundation
#include <ApplicationServices/ApplicationServices.h>
#import <AppKit/AppKit.h>
#include <stdlib.h>
#include <string.h>

// ax_raise_window raises the windowID'th-matching AXWindow of pid's
// application element to the front. windowID <= 0 raises the first
// window found. Returns 0 on success.
static int ax_raise_window(pid_t pid, int windowID) {
    AXUIElementRef app = AXUIElementCreateApplication(pid);
    if (!app) {
        return -1;
    }
    CFArrayRef windows = NULL;
    AXError err = AXUIElementCopyAttributeValue(app, kAXWindowsAttribute, (CFTypeRef *)&windows);
    if (err != kAXErrorSuccess || !windows) {
        CFRelease(app);
        return -1;
    }
    CFIndex n = CFArrayGetCount(windows);
    int rc = -1;
    for (CFIndex i = 0; i < n; i++) {
        AXUIElementRef win = (AXUIElementRef)CFArrayGetValueAtIndex(windows, i);
        if (windowID > 0) {
            CFNumberRef num = NULL;
            AXUIElementCopyAttributeValue(win, CFSTR("AXWindowNumber"), (CFTypeRef *)&num);
            int n2 = 0;
            if (num) {
                CFNumberGetValue(num, kCFNumberIntType, &n2);
                CFRelease(num);
            }
            if (n2 != windowID) {
                continue;
            }
        }
        AXUIElementPerformAction(win, kAXRaiseAction);
        AXUIElementSetAttributeValue(app, kAXFrontmostAttribute, kCFBooleanTrue);
        rc = 0;
        break;
    }
    CFRelease(windows);
    CFRelease(app);
    return rc;
}

static int ns_activate_app(pid_t pid) {
    NSRunningApplication *app = [NSRunningApplication runningApplicationWithProcessIdentifier:pid];
    if (!app) {
        return -1;
    }
    BOOL ok = [app activateWithOptions:NSApplicationActivateIgnoringOtherApps];
    return ok ? 0 : -1;
}

static pid_t ns_frontmost_pid(void) {
    NSRunningApplication *app = [[NSWorkspace sharedWorkspace] frontmostApplication];
    return app ? [app processIdentifier] : 0;
}

static const char *ns_frontmost_name(void) {
    NSRunningApplication *app = [[NSWorkspace sharedWorkspace] frontmostApplication];
    if (!app || !app.localizedName) {
        return NULL;
    }
    return [app.localizedName UTF8String];
}
*/
import "C"

import "fmt"

// DarwinWindowManager implements platform.WindowManager for macOS.
type DarwinWindowManager struct {
	reader *DarwinReader
}

// NewWindowManager constructs a macOS window/app focus manager.
func NewWindowManager(reader *DarwinReader) *DarwinWindowManager {
	return &DarwinWindowManager{reader: reader}
}

// FocusWindow raises windowID (or the pid's first window, if windowID is 0)
// and activates the owning application.
func (wm *DarwinWindowManager) FocusWindow(pid int32, windowID int) error {
	if pid == 0 {
		return fmt.Errorf("FocusWindow requires a non-zero pid")
	}
	if err := activateApp(pid); err != nil {
		return err
	}
	if C.ax_raise_window(C.pid_t(pid), C.int(windowID)) != 0 {
		return fmt.Errorf("failed to raise window for pid %d", pid)
	}
	return nil
}

// activateApp brings pid's application to the front, used by FocusWindow
// and the menu-press action performer's non-background mode.
func activateApp(pid int32) error {
	if C.ns_activate_app(C.pid_t(pid)) != 0 {
		return fmt.Errorf("failed to activate app with pid %d", pid)
	}
	return nil
}

// GetFrontmostApp returns the pid and display name of the frontmost app.
func (wm *DarwinWindowManager) GetFrontmostApp() (int32, string, error) {
	pid := int32(C.ns_frontmost_pid())
	if pid == 0 {
		return 0, "", fmt.Errorf("no frontmost application")
	}
	cName := C.ns_frontmost_name()
	name := ""
	if cName != nil {
		name = C.GoString(cName)
	}
	return pid, name, nil
}
