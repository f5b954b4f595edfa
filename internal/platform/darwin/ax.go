//go:build darwin

package darwin

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework ApplicationServices -framework CoreFoundation -framework Foundation
#include <ApplicationServices/ApplicationServices.h>
#include <stdlib.h>
#include <string.h>

// ax_app_element returns a retained AXUIElementRef for the application
// element of pid, as an opaque uintptr. Callers must ax_release it.
static uintptr_t ax_app_element(pid_t pid) {
    AXUIElementRef app = AXUIElementCreateApplication(pid);
    return (uintptr_t)app;
}

static void ax_release(uintptr_t ref) {
    if (ref != 0) {
        CFRelease((CFTypeRef)ref);
    }
}

// ax_child_count returns the number of AXChildren of ref, or -1 on error.
static int ax_child_count(uintptr_t ref) {
    CFArrayRef children = NULL;
    AXError err = AXUIElementCopyAttributeValue((AXUIElementRef)ref, kAXChildrenAttribute, (CFTypeRef *)&children);
    if (err != kAXErrorSuccess || !children) {
        return -1;
    }
    int n = (int)CFArrayGetCount(children);
    CFRelease(children);
    return n;
}

// ax_child_at_index returns a retained ref to child idx of ref's
// AXChildren, or 0 if out of range. This is the index-chase primitive the
// element-addressing model relies on: the tree is re-walked from the
// parent's current children on every call, never cached.
static uintptr_t ax_child_at_index(uintptr_t ref, int idx) {
    CFArrayRef children = NULL;
    AXError err = AXUIElementCopyAttributeValue((AXUIElementRef)ref, kAXChildrenAttribute, (CFTypeRef *)&children);
    if (err != kAXErrorSuccess || !children) {
        return 0;
    }
    if (idx < 0 || idx >= CFArrayGetCount(children)) {
        CFRelease(children);
        return 0;
    }
    AXUIElementRef child = (AXUIElementRef)CFArrayGetValueAtIndex(children, idx);
    CFRetain(child);
    CFRelease(children);
    return (uintptr_t)child;
}

// ax_get_string_attr copies a string-valued attribute. Caller frees the
// returned buffer. Returns NULL if unset or not a string.
static char *ax_get_string_attr(uintptr_t ref, const char *attrName) {
    CFStringRef attr = CFStringCreateWithCString(NULL, attrName, kCFStringEncodingUTF8);
    CFTypeRef value = NULL;
    AXError err = AXUIElementCopyAttributeValue((AXUIElementRef)ref, attr, &value);
    CFRelease(attr);
    if (err != kAXErrorSuccess || !value) {
        return NULL;
    }
    if (CFGetTypeID(value) != CFStringGetTypeID()) {
        CFRelease(value);
        return NULL;
    }
    CFIndex len = CFStringGetMaximumSizeForEncoding(CFStringGetLength((CFStringRef)value), kCFStringEncodingUTF8) + 1;
    char *buf = (char *)malloc(len);
    if (!CFStringGetCString((CFStringRef)value, buf, len, kCFStringEncodingUTF8)) {
        free(buf);
        buf = NULL;
    }
    CFRelease(value);
    return buf;
}

// ax_get_bool_attr reads a boolean attribute: 1 true, 0 false, -1 unset.
static int ax_get_bool_attr(uintptr_t ref, const char *attrName) {
    CFStringRef attr = CFStringCreateWithCString(NULL, attrName, kCFStringEncodingUTF8);
    CFTypeRef value = NULL;
    AXError err = AXUIElementCopyAttributeValue((AXUIElementRef)ref, attr, &value);
    CFRelease(attr);
    if (err != kAXErrorSuccess || !value) {
        return -1;
    }
    int result = -1;
    if (CFGetTypeID(value) == CFBooleanGetTypeID()) {
        result = CFBooleanGetValue((CFBooleanRef)value) ? 1 : 0;
    }
    CFRelease(value);
    return result;
}

// ax_get_frame reads AXPosition and AXSize into the given floats. Returns
// 0 on success, -1 if either attribute is missing.
static int ax_get_frame(uintptr_t ref, float *x, float *y, float *w, float *h) {
    CFTypeRef posValue = NULL, sizeValue = NULL;
    AXError posErr = AXUIElementCopyAttributeValue((AXUIElementRef)ref, kAXPositionAttribute, &posValue);
    AXError sizeErr = AXUIElementCopyAttributeValue((AXUIElementRef)ref, kAXSizeAttribute, &sizeValue);
    if (posErr != kAXErrorSuccess || sizeErr != kAXErrorSuccess || !posValue || !sizeValue) {
        if (posValue) CFRelease(posValue);
        if (sizeValue) CFRelease(sizeValue);
        return -1;
    }
    CGPoint point;
    CGSize size;
    AXValueGetValue((AXValueRef)posValue, kAXValueCGPointType, &point);
    AXValueGetValue((AXValueRef)sizeValue, kAXValueCGSizeType, &size);
    *x = point.x;
    *y = point.y;
    *w = size.width;
    *h = size.height;
    CFRelease(posValue);
    CFRelease(sizeValue);
    return 0;
}

// ax_action_count / ax_action_name_at expose AXActionNames without handing
// a whole array across the cgo boundary in one call.
static int ax_action_count(uintptr_t ref) {
    CFArrayRef names = NULL;
    AXError err = AXUIElementCopyActionNames((AXUIElementRef)ref, &names);
    if (err != kAXErrorSuccess || !names) {
        return 0;
    }
    int n = (int)CFArrayGetCount(names);
    CFRelease(names);
    return n;
}

static char *ax_action_name_at(uintptr_t ref, int idx) {
    CFArrayRef names = NULL;
    AXError err = AXUIElementCopyActionNames((AXUIElementRef)ref, &names);
    if (err != kAXErrorSuccess || !names || idx < 0 || idx >= CFArrayGetCount(names)) {
        if (names) CFRelease(names);
        return NULL;
    }
    CFStringRef name = (CFStringRef)CFArrayGetValueAtIndex(names, idx);
    CFIndex len = CFStringGetMaximumSizeForEncoding(CFStringGetLength(name), kCFStringEncodingUTF8) + 1;
    char *buf = (char *)malloc(len);
    if (!CFStringGetCString(name, buf, len, kCFStringEncodingUTF8)) {
        free(buf);
        buf = NULL;
    }
    CFRelease(names);
    return buf;
}

static int ax_perform_action(uintptr_t ref, const char *actionName) {
    CFStringRef action = CFStringCreateWithCString(NULL, actionName, kCFStringEncodingUTF8);
    AXError err = AXUIElementPerformAction((AXUIElementRef)ref, action);
    CFRelease(action);
    return err == kAXErrorSuccess ? 0 : -1;
}

static int ax_set_string_attr(uintptr_t ref, const char *attrName, const char *value) {
    CFStringRef attr = CFStringCreateWithCString(NULL, attrName, kCFStringEncodingUTF8);
    CFStringRef cfValue = CFStringCreateWithCString(NULL, value, kCFStringEncodingUTF8);
    AXError err = AXUIElementSetAttributeValue((AXUIElementRef)ref, attr, cfValue);
    CFRelease(attr);
    CFRelease(cfValue);
    return err == kAXErrorSuccess ? 0 : -1;
}

static int ax_set_bool_attr(uintptr_t ref, const char *attrName, int value) {
    CFStringRef attr = CFStringCreateWithCString(NULL, attrName, kCFStringEncodingUTF8);
    AXError err = AXUIElementSetAttributeValue((AXUIElementRef)ref, attr, value ? kCFBooleanTrue : kCFBooleanFalse);
    CFRelease(attr);
    return err == kAXErrorSuccess ? 0 : -1;
}

// ax_attr_ref copies a ref-valued attribute (e.g. AXFocusedUIElement,
// AXMenuBar) as an opaque retained ref. Returns 0 if unset.
static uintptr_t ax_attr_ref(uintptr_t ref, const char *attrName) {
    CFStringRef attr = CFStringCreateWithCString(NULL, attrName, kCFStringEncodingUTF8);
    CFTypeRef value = NULL;
    AXError err = AXUIElementCopyAttributeValue((AXUIElementRef)ref, attr, &value);
    CFRelease(attr);
    if (err != kAXErrorSuccess || !value) {
        return 0;
    }
    return (uintptr_t)value;
}

static int ax_is_trusted(void) {
    return AXIsProcessTrusted() ? 1 : 0;
}
*/
import "C"

import (
	"fmt"
	"strconv"
	"unsafe"

	"github.com/coreframe/macui-agent/internal/model"
)

// axRef is a retained AXUIElementRef handle. Callers must call release()
// when done; it is a thin Go wrapper so ax.go's C helpers stay free of Go
// runtime concerns.
type axRef uintptr

func (r axRef) release() {
	if r != 0 {
		C.ax_release(C.uintptr_t(r))
	}
}

func (r axRef) valid() bool { return r != 0 }

func axApplicationElement(pid int32) axRef {
	return axRef(C.ax_app_element(C.pid_t(pid)))
}

func (r axRef) childAt(idx int) axRef {
	return axRef(C.ax_child_at_index(C.uintptr_t(r), C.int(idx)))
}

func (r axRef) childCount() int {
	return int(C.ax_child_count(C.uintptr_t(r)))
}

func (r axRef) stringAttr(name string) string {
	cName := C.CString(name)
	defer C.free(unsafe.Pointer(cName))
	cVal := C.ax_get_string_attr(C.uintptr_t(r), cName)
	if cVal == nil {
		return ""
	}
	defer C.free(unsafe.Pointer(cVal))
	return C.GoString(cVal)
}

func (r axRef) boolAttr(name string) (val bool, ok bool) {
	cName := C.CString(name)
	defer C.free(unsafe.Pointer(cName))
	res := int(C.ax_get_bool_attr(C.uintptr_t(r), cName))
	if res < 0 {
		return false, false
	}
	return res == 1, true
}

func (r axRef) frame() model.ElementFrame {
	var x, y, w, h C.float
	if C.ax_get_frame(C.uintptr_t(r), &x, &y, &w, &h) != 0 {
		return model.ElementFrame{}
	}
	return model.ElementFrame{X: float64(x), Y: float64(y), Width: float64(w), Height: float64(h)}
}

func (r axRef) actions() []string {
	n := int(C.ax_action_count(C.uintptr_t(r)))
	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		cName := C.ax_action_name_at(C.uintptr_t(r), C.int(i))
		if cName == nil {
			continue
		}
		out = append(out, model.MapActionName(C.GoString(cName)))
		C.free(unsafe.Pointer(cName))
	}
	return out
}

func (r axRef) performAction(name string) error {
	cName := C.CString(name)
	defer C.free(unsafe.Pointer(cName))
	if C.ax_perform_action(C.uintptr_t(r), cName) != 0 {
		return fmt.Errorf("accessibility action %q failed", name)
	}
	return nil
}

func (r axRef) setStringAttr(name, value string) error {
	cName := C.CString(name)
	defer C.free(unsafe.Pointer(cName))
	cValue := C.CString(value)
	defer C.free(unsafe.Pointer(cValue))
	if C.ax_set_string_attr(C.uintptr_t(r), cName, cValue) != 0 {
		return fmt.Errorf("setting attribute %q failed", name)
	}
	return nil
}

func (r axRef) setBoolAttr(name string, value bool) error {
	cName := C.CString(name)
	defer C.free(unsafe.Pointer(cName))
	v := C.int(0)
	if value {
		v = 1
	}
	if C.ax_set_bool_attr(C.uintptr_t(r), cName, v) != 0 {
		return fmt.Errorf("setting attribute %q failed", name)
	}
	return nil
}

func (r axRef) refAttr(name string) axRef {
	cName := C.CString(name)
	defer C.free(unsafe.Pointer(cName))
	return axRef(C.ax_attr_ref(C.uintptr_t(r), cName))
}

// axIsTrusted wraps AXIsProcessTrusted.
func axIsTrusted() bool {
	return C.ax_is_trusted() != 0
}

// resolvePath walks pid's application element down the given child-index
// path: each step consumes one index against the *current* children of
// the node reached so far. Any
// out-of-range index yields a not-found error, never a panic. The
// returned ref is owned by the caller (release it).
func resolvePath(pid int32, path []int) (axRef, error) {
	cur := axApplicationElement(pid)
	if !cur.valid() {
		return 0, fmt.Errorf("no accessibility element for pid %d", pid)
	}
	for _, idx := range path {
		next := cur.childAt(idx)
		cur.release()
		if !next.valid() {
			return 0, fmt.Errorf("element path not found: index %d out of range", idx)
		}
		cur = next
	}
	return cur, nil
}

// describe snapshots ref into a UIElementInfo, recursing up to maxDepth
// additional levels (0 = node only, no children).
func describe(ref axRef, pid int32, path []int, maxDepth int) model.UIElementInfo {
	enabled, hasEnabled := ref.boolAttr("AXEnabled")
	if !hasEnabled {
		enabled = true
	}
	focused, _ := ref.boolAttr("AXFocused")

	info := model.UIElementInfo{
		Path:        model.ElementPath{PID: pid, Path: append([]int{}, path...)},
		Role:        ref.stringAttr("AXRole"),
		Title:       ref.stringAttr("AXTitle"),
		Label:       ref.stringAttr("AXDescription"),
		Value:       ref.stringAttr("AXValue"),
		Description: ref.stringAttr("AXHelp"),
		Frame:       ref.frame(),
		IsEnabled:   enabled,
		IsFocused:   focused,
		Actions:     ref.actions(),
	}

	if maxDepth > 0 {
		n := ref.childCount()
		for i := 0; i < n; i++ {
			child := ref.childAt(i)
			if !child.valid() {
				continue
			}
			childPath := append(append([]int{}, path...), i)
			info.Children = append(info.Children, describe(child, pid, childPath, maxDepth-1))
			child.release()
		}
	}
	return info
}

// pathString renders a []int path as the comma-separated form used on the
// wire for rootPath/path query parameters.
func pathString(path []int) string {
	out := ""
	for i, p := range path {
		if i > 0 {
			out += ","
		}
		out += strconv.Itoa(p)
	}
	return out
}
