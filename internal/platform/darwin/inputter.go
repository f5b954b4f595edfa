//go:build darwin

package darwin

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework CoreGraphics -framework ApplicationServices -framework Foundation -framework Carbon
#include <CoreGraphics/CoreGraphics.h>
#include <Carbon/Carbon.h>
#include <unistd.h>

// Click at screen coordinates with specified button and click count.
// button: 0=left, 1=right, 2=middle (maps to kCGMouseButton*). Clicks are
// always delivered through the global HID event tap; a coordinate click
// never targets a specific process.
static int cg_click(float x, float y, int button, int count) {
    CGPoint point = CGPointMake(x, y);

    CGEventType downType, upType;
    CGMouseButton cgButton;

    switch (button) {
        case 1:  // right
            cgButton = kCGMouseButtonRight;
            downType = kCGEventRightMouseDown;
            upType = kCGEventRightMouseUp;
            break;
        case 2:  // middle
            cgButton = kCGMouseButtonCenter;
            downType = kCGEventOtherMouseDown;
            upType = kCGEventOtherMouseUp;
            break;
        default:  // left (0)
            cgButton = kCGMouseButtonLeft;
            downType = kCGEventLeftMouseDown;
            upType = kCGEventLeftMouseUp;
            break;
    }

    for (int i = 0; i < count; i++) {
        CGEventRef down = CGEventCreateMouseEvent(NULL, downType, point, cgButton);
        CGEventRef up = CGEventCreateMouseEvent(NULL, upType, point, cgButton);
        if (!down || !up) {
            if (down) CFRelease(down);
            if (up) CFRelease(up);
            return -1;
        }
        CGEventSetIntegerValueField(down, kCGMouseEventClickState, i + 1);
        CGEventSetIntegerValueField(up, kCGMouseEventClickState, i + 1);
        CGEventPost(kCGHIDEventTap, down);
        CGEventPost(kCGHIDEventTap, up);
        CFRelease(down);
        CFRelease(up);
    }
    return 0;
}

// Type one Unicode character globally.
static void cg_type_char_global(UniChar ch) {
    CGEventRef keyDown = CGEventCreateKeyboardEvent(NULL, 0, true);
    CGEventRef keyUp = CGEventCreateKeyboardEvent(NULL, 0, false);
    CGEventKeyboardSetUnicodeString(keyDown, 1, &ch);
    CGEventKeyboardSetUnicodeString(keyUp, 1, &ch);
    CGEventPost(kCGHIDEventTap, keyDown);
    CGEventPost(kCGHIDEventTap, keyUp);
    CFRelease(keyDown);
    CFRelease(keyUp);
}

// Type one Unicode character targeted at pid, bypassing focus.
static void cg_type_char_process(pid_t pid, UniChar ch) {
    CGEventRef keyDown = CGEventCreateKeyboardEvent(NULL, 0, true);
    CGEventRef keyUp = CGEventCreateKeyboardEvent(NULL, 0, false);
    CGEventKeyboardSetUnicodeString(keyDown, 1, &ch);
    CGEventKeyboardSetUnicodeString(keyUp, 1, &ch);
    CGEventPostToPid(pid, keyDown);
    CGEventPostToPid(pid, keyUp);
    CFRelease(keyDown);
    CFRelease(keyUp);
}

// Press a key combo with modifier flags set on the same down/up pair,
// globally. This is the standard macOS idiom for a global shortcut.
static void cg_key_global(CGKeyCode keyCode, CGEventFlags modifiers) {
    CGEventRef keyDown = CGEventCreateKeyboardEvent(NULL, keyCode, true);
    CGEventRef keyUp = CGEventCreateKeyboardEvent(NULL, keyCode, false);
    CGEventSetFlags(keyDown, modifiers);
    CGEventSetFlags(keyUp, modifiers);
    CGEventPost(kCGHIDEventTap, keyDown);
    CGEventPost(kCGHIDEventTap, keyUp);
    CFRelease(keyDown);
    CFRelease(keyUp);
}

// Press a key combo targeted at pid. Modifiers are pressed down as their
// own key events before the key and released after, since a flags-only
// key event is not reliably honored by CGEventPostToPid the way it is by
// the global HID tap.
static void cg_key_process(pid_t pid, CGKeyCode keyCode, CGKeyCode *modCodes, int modCount) {
    for (int i = 0; i < modCount; i++) {
        CGEventRef modDown = CGEventCreateKeyboardEvent(NULL, modCodes[i], true);
        CGEventPostToPid(pid, modDown);
        CFRelease(modDown);
    }

    CGEventRef keyDown = CGEventCreateKeyboardEvent(NULL, keyCode, true);
    CGEventRef keyUp = CGEventCreateKeyboardEvent(NULL, keyCode, false);
    CGEventPostToPid(pid, keyDown);
    CGEventPostToPid(pid, keyUp);
    CFRelease(keyDown);
    CFRelease(keyUp);

    for (int i = modCount - 1; i >= 0; i--) {
        CGEventRef modUp = CGEventCreateKeyboardEvent(NULL, modCodes[i], false);
        CGEventPostToPid(pid, modUp);
        CFRelease(modUp);
    }
}

// Scroll globally using CGEventCreateScrollWheelEvent.
static int cg_scroll_global(float x, float y, int dy, int dx) {
    if (x != 0 || y != 0) {
        CGPoint point = CGPointMake(x, y);
        CGEventRef move = CGEventCreateMouseEvent(NULL, kCGEventMouseMoved, point, kCGMouseButtonLeft);
        if (move) {
            CGEventPost(kCGHIDEventTap, move);
            CFRelease(move);
        }
    }
    CGEventRef scroll = CGEventCreateScrollWheelEvent(NULL, kCGScrollEventUnitLine, 2, dy, dx);
    if (!scroll) return -1;
    CGEventPost(kCGHIDEventTap, scroll);
    CFRelease(scroll);
    return 0;
}

// Scroll targeted at pid, at the given point.
static int cg_scroll_process(pid_t pid, float x, float y, int dy, int dx) {
    CGPoint point = CGPointMake(x, y);
    CGEventRef move = CGEventCreateMouseEvent(NULL, kCGEventMouseMoved, point, kCGMouseButtonLeft);
    if (move) {
        CGEventPostToPid(pid, move);
        CFRelease(move);
    }
    CGEventRef scroll = CGEventCreateScrollWheelEvent(NULL, kCGScrollEventUnitLine, 2, dy, dx);
    if (!scroll) return -1;
    CGEventPostToPid(pid, scroll);
    CFRelease(scroll);
    return 0;
}
*/
import "C"

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/coreframe/macui-agent/internal/model"
	"github.com/coreframe/macui-agent/internal/platform"
)

// DarwinInputter implements the platform.Inputter interface for macOS.
type DarwinInputter struct{}

// NewInputter creates a new macOS inputter.
func NewInputter() *DarwinInputter {
	return &DarwinInputter{}
}

func (inp *DarwinInputter) Click(pt platform.Point, button model.MouseButton, clickCount int, mods []model.KeyModifier) error {
	if clickCount < 1 {
		clickCount = 1
	}
	cButton := C.int(0)
	switch button {
	case model.ButtonRight:
		cButton = 1
	case model.ButtonCenter:
		cButton = 2
	}
	if C.cg_click(C.float(pt.X), C.float(pt.Y), cButton, C.int(clickCount)) != 0 {
		return fmt.Errorf("failed to click at (%.0f, %.0f)", pt.X, pt.Y)
	}
	return nil
}

func (inp *DarwinInputter) KeyEvent(target platform.Target, key string, mods []model.KeyModifier) error {
	keyCode, ok := keyCodeMap[strings.ToLower(strings.TrimSpace(key))]
	if !ok {
		return fmt.Errorf("unknown key: %q", key)
	}
	if target.PID == 0 {
		var flags uint64
		for _, m := range mods {
			flags |= modifierFlagMap[m]
		}
		C.cg_key_global(C.CGKeyCode(keyCode), C.CGEventFlags(flags))
		return nil
	}

	modCodes := make([]C.CGKeyCode, 0, len(mods))
	for _, m := range mods {
		if code, ok := modifierKeyCodeMap[m]; ok {
			modCodes = append(modCodes, C.CGKeyCode(code))
		}
	}
	var modPtr *C.CGKeyCode
	if len(modCodes) > 0 {
		modPtr = &modCodes[0]
	}
	C.cg_key_process(C.pid_t(target.PID), C.CGKeyCode(keyCode), modPtr, C.int(len(modCodes)))
	return nil
}

// TypeText synthesizes one key event per character. Characters with a
// known US-keyboard virtual keycode go through cg_key_global/cg_key_process
// with shift pressed for the upper/shifted case, the same mechanism a real
// keyboard driver produces; only characters with no ASCII keycode (accents,
// CJK, emoji, ...) fall back to CGEventKeyboardSetUnicodeString. Games and
// custom input fields that ignore synthesized Unicode-string events but
// honor real keycode events depend on the keycode path being the default,
// not the exception.
func (inp *DarwinInputter) TypeText(target platform.Target, text string, delayMs int) error {
	for _, ch := range text {
		if key, ok := asciiKeyTable[ch]; ok {
			inp.typeASCIIKey(target, key)
		} else {
			inp.typeUnicodeChar(target, ch)
		}
		if delayMs > 0 {
			time.Sleep(time.Duration(delayMs) * time.Millisecond)
		}
	}
	return nil
}

func (inp *DarwinInputter) typeASCIIKey(target platform.Target, key asciiKey) {
	if target.PID == 0 {
		var flags uint64
		if key.shift {
			flags = uint64(C.kCGEventFlagMaskShift)
		}
		C.cg_key_global(C.CGKeyCode(key.code), C.CGEventFlags(flags))
		return
	}

	var modCodes []C.CGKeyCode
	if key.shift {
		modCodes = []C.CGKeyCode{C.CGKeyCode(modifierKeyCodeMap[model.ModShift])}
	}
	var modPtr *C.CGKeyCode
	if len(modCodes) > 0 {
		modPtr = &modCodes[0]
	}
	C.cg_key_process(C.pid_t(target.PID), C.CGKeyCode(key.code), modPtr, C.int(len(modCodes)))
}

func (inp *DarwinInputter) typeUnicodeChar(target platform.Target, ch rune) {
	if target.PID == 0 {
		C.cg_type_char_global(C.UniChar(ch))
	} else {
		C.cg_type_char_process(C.pid_t(target.PID), C.UniChar(ch))
	}
}

func (inp *DarwinInputter) Scroll(target platform.Target, pt platform.Point, deltaX, deltaY float64) error {
	if target.PID == 0 {
		if C.cg_scroll_global(C.float(pt.X), C.float(pt.Y), C.int(deltaY), C.int(deltaX)) != 0 {
			return fmt.Errorf("failed to scroll at (%.0f, %.0f)", pt.X, pt.Y)
		}
		return nil
	}
	if C.cg_scroll_process(C.pid_t(target.PID), C.float(pt.X), C.float(pt.Y), C.int(deltaY), C.int(deltaX)) != 0 {
		return fmt.Errorf("failed to scroll at (%.0f, %.0f) for pid %d", pt.X, pt.Y, target.PID)
	}
	return nil
}

// keyCodeMap maps US-keyboard key names to macOS virtual key codes, from
// Carbon's Events.h. This is inherently locale-flavoured; see DESIGN.md's
// note on the character-typing map.
var keyCodeMap = map[string]uint16{
	"a": 0x00, "b": 0x0B, "c": 0x08, "d": 0x02, "e": 0x0E, "f": 0x03,
	"g": 0x05, "h": 0x04, "i": 0x22, "j": 0x26, "k": 0x28, "l": 0x25,
	"m": 0x2E, "n": 0x2D, "o": 0x1F, "p": 0x23, "q": 0x0C, "r": 0x0F,
	"s": 0x01, "t": 0x11, "u": 0x20, "v": 0x09, "w": 0x0D, "x": 0x07,
	"y": 0x10, "z": 0x06,
	"0": 0x1D, "1": 0x12, "2": 0x13, "3": 0x14, "4": 0x15,
	"5": 0x17, "6": 0x16, "7": 0x1A, "8": 0x1C, "9": 0x19,
	"return": 0x24, "enter": 0x24, "tab": 0x30, "space": 0x31,
	"delete": 0x33, "backspace": 0x33, "escape": 0x35, "esc": 0x35,
	"up": 0x7E, "down": 0x7D, "left": 0x7B, "right": 0x7C,
	"home": 0x73, "end": 0x77, "pageup": 0x74, "pagedown": 0x79,
	"f1": 0x7A, "f2": 0x78, "f3": 0x63, "f4": 0x76, "f5": 0x60,
	"f6": 0x61, "f7": 0x62, "f8": 0x64, "f9": 0x65, "f10": 0x6D,
	"f11": 0x67, "f12": 0x6F,
}

// asciiKey is a character's US-keyboard virtual keycode plus whether it
// requires shift to produce (the shifted digit-row symbols, uppercase
// letters, and the shifted form of each punctuation key).
type asciiKey struct {
	code  uint16
	shift bool
}

// asciiKeyTable maps the printable ASCII range to asciiKey, reusing
// keyCodeMap's letter/digit entries and adding the digit-row symbols and
// punctuation keys keyCodeMap has no name for. Characters not present here
// fall back to Unicode-string synthesis in TypeText.
var asciiKeyTable = buildASCIIKeyTable()

func buildASCIIKeyTable() map[rune]asciiKey {
	t := make(map[rune]asciiKey, 96)

	for name, code := range keyCodeMap {
		if len(name) != 1 {
			continue
		}
		r := rune(name[0])
		switch {
		case r >= 'a' && r <= 'z':
			t[r] = asciiKey{code: code}
			t[unicode.ToUpper(r)] = asciiKey{code: code, shift: true}
		case r >= '0' && r <= '9':
			t[r] = asciiKey{code: code}
		}
	}

	shiftedDigits := map[rune]rune{
		'!': '1', '@': '2', '#': '3', '$': '4', '%': '5',
		'^': '6', '&': '7', '*': '8', '(': '9', ')': '0',
	}
	for sym, digit := range shiftedDigits {
		if code, ok := keyCodeMap[string(digit)]; ok {
			t[sym] = asciiKey{code: code, shift: true}
		}
	}

	// Virtual keycodes for the punctuation keys keyCodeMap has no name
	// for, from Carbon's Events.h kVK_ANSI_* constants.
	punctuation := []struct {
		plain, shifted rune
		code           uint16
	}{
		{'-', '_', 0x1B},
		{'=', '+', 0x18},
		{'[', '{', 0x21},
		{']', '}', 0x1E},
		{'\\', '|', 0x2A},
		{';', ':', 0x29},
		{'\'', '"', 0x27},
		{',', '<', 0x2B},
		{'.', '>', 0x2F},
		{'/', '?', 0x2C},
		{'`', '~', 0x32},
	}
	for _, p := range punctuation {
		t[p.plain] = asciiKey{code: p.code}
		t[p.shifted] = asciiKey{code: p.code, shift: true}
	}

	t[' '] = asciiKey{code: 0x31}
	t['\t'] = asciiKey{code: 0x30}
	t['\n'] = asciiKey{code: 0x24}
	t['\r'] = asciiKey{code: 0x24}

	return t
}

// modifierFlagMap maps modifiers to CGEventFlags masks, used for global
// key events.
var modifierFlagMap = map[model.KeyModifier]uint64{
	model.ModCmd:   uint64(C.kCGEventFlagMaskCommand),
	model.ModShift: uint64(C.kCGEventFlagMaskShift),
	model.ModCtrl:  uint64(C.kCGEventFlagMaskControl),
	model.ModAlt:   uint64(C.kCGEventFlagMaskAlternate),
	model.ModFn:    uint64(C.kCGEventFlagMaskSecondaryFn),
}

// modifierKeyCodeMap maps modifiers to their own virtual key codes, used
// for process-targeted key events, which press/release modifiers as
// distinct key events rather than relying on flags.
var modifierKeyCodeMap = map[model.KeyModifier]uint16{
	model.ModCmd:   0x37,
	model.ModShift: 0x38,
	model.ModCtrl:  0x3B,
	model.ModAlt:   0x3A,
	model.ModFn:    0x3F,
}
