package dispatch

import (
	"strings"
	"testing"

	"github.com/coreframe/macui-agent/internal/platform"
)

// TestTypeText_ShortText_UsesKeySynthesis confirms text at or under the
// paste threshold goes through character-by-character synthesis, never
// touching the clipboard.
func TestTypeText_ShortText_UsesKeySynthesis(t *testing.T) {
	d, inputter, _ := newTestDispatcher(nil)
	clip := d.Provider.ClipboardManager.(*fakeClipboard)

	if err := d.typeText(platform.Target{PID: 1234}, "hello", 0); err != nil {
		t.Fatalf("typeText: %v", err)
	}
	if len(inputter.typed) != 1 {
		t.Fatalf("expected one TypeText call, got %d", len(inputter.typed))
	}
	if len(clip.sets) != 0 {
		t.Errorf("expected no clipboard writes for short text, got %d", len(clip.sets))
	}
}

// TestTypeText_LongText_PastesViaClipboard confirms text past the paste
// threshold sets the clipboard, synthesizes Cmd+V, and restores whatever
// was on the clipboard beforehand, without ever calling TypeText.
func TestTypeText_LongText_PastesViaClipboard(t *testing.T) {
	d, inputter, _ := newTestDispatcher(nil)
	clip := d.Provider.ClipboardManager.(*fakeClipboard)
	clip.previous = "what was there before"

	longText := strings.Repeat("a", 200)
	if err := d.typeText(platform.Target{PID: 1234}, longText, 0); err != nil {
		t.Fatalf("typeText: %v", err)
	}

	if len(inputter.typed) != 0 {
		t.Errorf("expected zero TypeText calls for pasted text, got %d", len(inputter.typed))
	}
	if len(clip.sets) != 2 {
		t.Fatalf("expected two clipboard writes (paste then restore), got %d", len(clip.sets))
	}
	if clip.sets[0] != longText {
		t.Errorf("first clipboard write = %q, want the pasted text", clip.sets[0])
	}
	if clip.sets[1] != clip.previous {
		t.Errorf("second clipboard write = %q, want restored previous content %q", clip.sets[1], clip.previous)
	}
	if len(inputter.keyEvents) != 1 {
		t.Fatalf("expected one synthesized key event, got %d", len(inputter.keyEvents))
	}
	if inputter.keyEvents[0].key != "v" {
		t.Errorf("key = %q, want %q", inputter.keyEvents[0].key, "v")
	}
}

// TestTypeText_NoClipboardManager_FallsBackToKeySynthesis confirms a
// platform with no clipboard wired still types long text, just without
// the paste shortcut.
func TestTypeText_NoClipboardManager_FallsBackToKeySynthesis(t *testing.T) {
	d, inputter, _ := newTestDispatcher(nil)
	d.Provider.ClipboardManager = nil

	if err := d.typeText(platform.Target{PID: 1234}, strings.Repeat("b", 200), 0); err != nil {
		t.Fatalf("typeText: %v", err)
	}
	if len(inputter.typed) != 1 {
		t.Errorf("expected one TypeText call, got %d", len(inputter.typed))
	}
}
