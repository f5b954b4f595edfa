//go:build darwin

package darwin

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework CoreGraphics -framework CoreFoundation -framework ApplicationServices
#include <ApplicationServices/ApplicationServices.h>
#include <stdlib.h>
#include <string.h>

typedef struct {
    unsigned char *pixels;
    int width;
    int height;
} cgCapture;

// cg_render copies a CGImageRef into a caller-owned RGBA8 pixel buffer via
// an offscreen bitmap context, then releases the image. This is the
// smallest path from either capture source (display or window) to a
// buffer cgo can hand back to Go without leaking a CGImageRef.
static int cg_render(CGImageRef image, cgCapture *out) {
    if (!image) {
        return -1;
    }
    size_t width = CGImageGetWidth(image);
    size_t height = CGImageGetHeight(image);
    if (width == 0 || height == 0) {
        CFRelease(image);
        return -1;
    }
    unsigned char *pixels = (unsigned char *)calloc(width * height * 4, 1);
    CGColorSpaceRef colorSpace = CGColorSpaceCreateDeviceRGB();
    CGContextRef ctx = CGBitmapContextCreate(pixels, width, height, 8, width * 4,
        colorSpace, kCGImageAlphaPremultipliedLast | kCGBitmapByteOrder32Big);
    CGColorSpaceRelease(colorSpace);
    if (!ctx) {
        free(pixels);
        CFRelease(image);
        return -1;
    }
    CGContextDrawImage(ctx, CGRectMake(0, 0, width, height), image);
    CGContextRelease(ctx);
    CFRelease(image);

    out->pixels = pixels;
    out->width = (int)width;
    out->height = (int)height;
    return 0;
}

static int cg_capture_display(CGDirectDisplayID displayID, cgCapture *out) {
    CGImageRef image = CGDisplayCreateImage(displayID);
    return cg_render(image, out);
}

static int cg_capture_window(CGWindowID windowID, cgCapture *out) {
    CGImageRef image = CGWindowListCreateImage(
        CGRectNull, kCGWindowListOptionIncludingWindow, windowID,
        kCGWindowImageBoundsIgnoreFraming | kCGWindowImageBestResolution);
    return cg_render(image, out);
}

static void cg_free_capture(cgCapture *c) {
    if (c->pixels) {
        free(c->pixels);
        c->pixels = NULL;
    }
}

static int cg_screen_recording_granted(void) {
    return CGPreflightScreenCaptureAccess() ? 1 : 0;
}

static CGDirectDisplayID cg_main_display(void) {
    return CGMainDisplayID();
}

static void cg_main_display_size(size_t *width, size_t *height) {
    CGDirectDisplayID d = CGMainDisplayID();
    *width = CGDisplayPixelsWide(d);
    *height = CGDisplayPixelsHigh(d);
}
*/
import "C"

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"unsafe"

	"github.com/coreframe/macui-agent/internal/model"
	"github.com/coreframe/macui-agent/internal/platform"
)

// DarwinScreenshotter implements platform.Screenshotter for macOS, capturing
// through CoreGraphics and encoding with the standard library's image
// codecs — image/png and image/jpeg are what the prior overlay code
// (cmd/screenshot_coords_draw.go) assumed as its image.Image substrate.
type DarwinScreenshotter struct {
	reader *DarwinReader
}

// NewScreenshotter constructs a macOS screen/window capturer.
func NewScreenshotter(reader *DarwinReader) *DarwinScreenshotter {
	return &DarwinScreenshotter{reader: reader}
}

// Capture implements platform.Screenshotter's selection order: app name
// -> windowId -> full display.
func (s *DarwinScreenshotter) Capture(opts platform.ScreenshotOptions) ([]byte, int, int, *model.WindowInfo, error) {
	var win *model.WindowInfo
	var cap C.cgCapture

	switch {
	case opts.App != "":
		w, err := s.firstWindowForApp(opts.App)
		if err != nil {
			return nil, 0, 0, nil, err
		}
		win = w
		if C.cg_capture_window(C.CGWindowID(w.WindowID), &cap) != 0 {
			return nil, 0, 0, nil, fmt.Errorf("failed to capture window %d for app %q", w.WindowID, opts.App)
		}

	case opts.WindowID != 0:
		windows, err := s.reader.ListWindows(platform.ListWindowsOptions{})
		if err != nil {
			return nil, 0, 0, nil, err
		}
		var found *model.WindowInfo
		for i := range windows {
			if windows[i].WindowID == opts.WindowID {
				found = &windows[i]
				break
			}
		}
		if found == nil {
			return nil, 0, 0, nil, fmt.Errorf("no window with id %d", opts.WindowID)
		}
		win = found
		if C.cg_capture_window(C.CGWindowID(opts.WindowID), &cap) != 0 {
			return nil, 0, 0, nil, fmt.Errorf("failed to capture window %d", opts.WindowID)
		}

	default:
		displayID := C.CGDirectDisplayID(opts.DisplayID)
		if opts.DisplayID == 0 {
			displayID = C.cg_main_display()
		}
		if C.cg_capture_display(displayID, &cap) != 0 {
			return nil, 0, 0, nil, fmt.Errorf("failed to capture display %d", opts.DisplayID)
		}
	}
	defer C.cg_free_capture(&cap)

	width, height := int(cap.width), int(cap.height)
	img := rgbaFromPixels(cap.pixels, width, height)

	var originX, originY, scale float64 = 0, 0, 1
	if win != nil {
		originX, originY = win.Frame.X, win.Frame.Y
		if win.Frame.Width > 0 {
			scale = float64(width) / win.Frame.Width
		}
	}

	var encoded image.Image = img
	if opts.HighlightPath != nil {
		if info, err := s.reader.Describe(opts.HighlightPath.PID, opts.HighlightPath.Path); err == nil {
			encoded = drawHighlight(img, info.Frame, originX, originY, scale)
		}
	}

	data, err := encodeImage(encoded, opts.Format)
	if err != nil {
		return nil, 0, 0, nil, err
	}
	return data, width, height, win, nil
}

// DisplaySize implements platform.Screenshotter.
func (s *DarwinScreenshotter) DisplaySize() (int, int, error) {
	var w, h C.size_t
	C.cg_main_display_size(&w, &h)
	return int(w), int(h), nil
}

func (s *DarwinScreenshotter) firstWindowForApp(app string) (*model.WindowInfo, error) {
	windows, err := s.reader.ListWindows(platform.ListWindowsOptions{App: app})
	if err != nil {
		return nil, err
	}
	if len(windows) == 0 {
		return nil, fmt.Errorf("no window found for app %q", app)
	}
	for i := range windows {
		if windows[i].IsOnScreen {
			return &windows[i], nil
		}
	}
	return &windows[0], nil
}

func rgbaFromPixels(pixels *C.uchar, width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	src := C.GoBytes(unsafe.Pointer(pixels), C.int(width*height*4))
	copy(img.Pix, src)
	return img
}

func encodeImage(img image.Image, format string) ([]byte, error) {
	var buf bytes.Buffer
	switch format {
	case "jpeg", "jpg":
		if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 85}); err != nil {
			return nil, fmt.Errorf("jpeg encode: %w", err)
		}
	default:
		if err := png.Encode(&buf, img); err != nil {
			return nil, fmt.Errorf("png encode: %w", err)
		}
	}
	return buf.Bytes(), nil
}

// screenRecordingGranted wraps CGPreflightScreenCaptureAccess for the
// PermissionProbe adapter.
func screenRecordingGranted() bool {
	return C.cg_screen_recording_granted() != 0
}
