package model

import "testing"

func TestElementQuery_IsEmpty(t *testing.T) {
	if !(ElementQuery{}).IsEmpty() {
		t.Error("zero-value query should be empty")
	}
	if (ElementQuery{Role: "AXButton"}).IsEmpty() {
		t.Error("query with a role predicate should not be empty")
	}
}

func TestElementQuery_Matches_Ands(t *testing.T) {
	el := UIElementInfo{Role: "AXButton", Title: "Save", Label: "Save document"}
	q := ElementQuery{Role: "AXButton", TitleContains: "sav"}
	if !q.Matches(el) {
		t.Error("expected match: role exact + title_contains case-insensitive")
	}
	q2 := ElementQuery{Role: "AXTextField", TitleContains: "sav"}
	if q2.Matches(el) {
		t.Error("mismatched role should fail the AND even if title matches")
	}
}

func TestElementQuery_TitleIsExactNotSubstring(t *testing.T) {
	el := UIElementInfo{Title: "Save As"}
	q := ElementQuery{Title: "Save"}
	if q.Matches(el) {
		t.Error("Title predicate should require an exact match, not substring")
	}
}

func TestParseTypeMode(t *testing.T) {
	if m, err := ParseTypeMode(""); err != nil || m != TypeReplace {
		t.Errorf("ParseTypeMode(\"\") = %q, %v, want replace, nil", m, err)
	}
	if m, err := ParseTypeMode("keys"); err != nil || m != TypeKeys {
		t.Errorf("ParseTypeMode(keys) = %q, %v, want keys, nil", m, err)
	}
	if _, err := ParseTypeMode("bogus"); err == nil {
		t.Error("expected an error for an unknown mode")
	}
}

func TestParseActionKind(t *testing.T) {
	if _, err := ParseActionKind("press"); err != nil {
		t.Errorf("press should be valid: %v", err)
	}
	if _, err := ParseActionKind("explode"); err == nil {
		t.Error("expected an error for an unknown action")
	}
}

func TestParseModifiers_Aliases(t *testing.T) {
	mods, err := ParseModifiers([]string{"command", "option", "Shift"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []KeyModifier{ModCmd, ModAlt, ModShift}
	if len(mods) != len(want) {
		t.Fatalf("mods = %v, want %v", mods, want)
	}
	for i := range want {
		if mods[i] != want[i] {
			t.Errorf("mods[%d] = %q, want %q", i, mods[i], want[i])
		}
	}
}

func TestValidateWaitBounds(t *testing.T) {
	if err := ValidateWaitBounds(5000, 100); err != nil {
		t.Errorf("valid bounds rejected: %v", err)
	}
	if err := ValidateWaitBounds(0, 100); err == nil {
		t.Error("timeout_ms below minimum should be rejected")
	}
	if err := ValidateWaitBounds(70000, 100); err == nil {
		t.Error("timeout_ms above maximum should be rejected")
	}
	if err := ValidateWaitBounds(5000, 0); err == nil {
		t.Error("poll_interval_ms below minimum should be rejected")
	}
}
