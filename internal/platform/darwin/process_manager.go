//go:build darwin

package darwin

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework AppKit -framework Foundation
#import <AppKit/AppKit.h>
#include <stdlib.h>
#include <string.h>

typedef struct {
    pid_t pid;
    char name[256];
    char bundleID[256];
} nsRunningAppMatch;

// ns_find_running scans NSWorkspace's runningApplications for the first
// entry whose localizedName matches spec (case-insensitive) or whose
// bundleIdentifier equals spec exactly. Ties resolve to "first by name
// match" in enumeration order; this does not attempt to make that
// deterministic beyond enumeration order.
static int ns_find_running(const char *spec, nsRunningAppMatch *out) {
    NSString *needle = [NSString stringWithUTF8String:spec];
    NSArray<NSRunningApplication *> *apps = [[NSWorkspace sharedWorkspace] runningApplications];
    for (NSRunningApplication *app in apps) {
        if (app.terminated) {
            continue;
        }
        BOOL nameMatch = app.localizedName && [app.localizedName caseInsensitiveCompare:needle] == NSOrderedSame;
        BOOL bundleMatch = app.bundleIdentifier && [app.bundleIdentifier isEqualToString:needle];
        if (nameMatch || bundleMatch) {
            out->pid = app.processIdentifier;
            memset(out->name, 0, sizeof(out->name));
            memset(out->bundleID, 0, sizeof(out->bundleID));
            if (app.localizedName) {
                strlcpy(out->name, [app.localizedName UTF8String], sizeof(out->name));
            }
            if (app.bundleIdentifier) {
                strlcpy(out->bundleID, [app.bundleIdentifier UTF8String], sizeof(out->bundleID));
            }
            return 0;
        }
    }
    return -1;
}

// ns_launch_path opens a .app bundle (or any file path) via NSWorkspace and
// returns the launched process's pid, or -1 on failure.
static pid_t ns_launch_path(const char *path) {
    NSString *nsPath = [NSString stringWithUTF8String:path];
    NSURL *url = [NSURL fileURLWithPath:nsPath];
    NSError *error = nil;
    NSRunningApplication *app = [[NSWorkspace sharedWorkspace]
        launchApplicationAtURL:url
                        options:NSWorkspaceLaunchDefault
                  configuration:@{}
                          error:&error];
    if (!app) {
        return -1;
    }
    return app.processIdentifier;
}

// ns_launch_by_name invokes NSWorkspace's by-name open facility (the same
// resolution /usr/bin/open -a performs: Spotlight metadata lookup of an
// installed .app by display name) and returns the resulting pid.
static pid_t ns_launch_by_name(const char *name) {
    NSString *nsName = [NSString stringWithUTF8String:name];
    BOOL ok = [[NSWorkspace sharedWorkspace] launchApplication:nsName];
    if (!ok) {
        return -1;
    }
    nsRunningAppMatch match;
    if (ns_find_running(name, &match) != 0) {
        return -1;
    }
    return match.pid;
}
*/
import "C"

import (
	"fmt"
	"strings"
	"syscall"
	"unsafe"
)

// DarwinProcessManager implements platform.ProcessManager for macOS,
// resolving, launching, and probing processes through NSWorkspace. It is
// new to this repo's lifecycle coordinator, which must attach to an
// already-running process or launch one.
type DarwinProcessManager struct{}

// NewProcessManager constructs a macOS process resolver/launcher.
func NewProcessManager() *DarwinProcessManager {
	return &DarwinProcessManager{}
}

// FindRunning locates a running process by display name or bundle id.
func (DarwinProcessManager) FindRunning(spec string) (pid int32, name, bundleID string, ok bool, err error) {
	cSpec := C.CString(spec)
	defer C.free(unsafe.Pointer(cSpec))

	var match C.nsRunningAppMatch
	if C.ns_find_running(cSpec, &match) != 0 {
		return 0, "", "", false, nil
	}
	return int32(match.pid), C.GoString(&match.name[0]), C.GoString(&match.bundleID[0]), true, nil
}

// Launch opens an app by bundle path or by the by-name "open" facility.
func (DarwinProcessManager) Launch(spec string) (int32, error) {
	cSpec := C.CString(spec)
	defer C.free(unsafe.Pointer(cSpec))

	var pid C.pid_t
	if strings.HasSuffix(spec, ".app") || strings.HasPrefix(spec, "/") {
		pid = C.ns_launch_path(cSpec)
	} else {
		pid = C.ns_launch_by_name(cSpec)
	}
	if pid <= 0 {
		return 0, fmt.Errorf("failed to launch %q", spec)
	}
	return int32(pid), nil
}

// IsAlive reports whether pid still refers to a live process, using a
// signal-zero liveness probe — the standard Unix idiom, with no ecosystem
// library anywhere in the pack wrapping it (see DESIGN.md).
func (DarwinProcessManager) IsAlive(pid int32) bool {
	if pid <= 0 {
		return false
	}
	return syscall.Kill(int(pid), 0) == nil
}
