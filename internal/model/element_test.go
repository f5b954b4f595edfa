package model

import (
	"encoding/json"
	"testing"
)

func TestUIElementInfo_JSONKeys(t *testing.T) {
	el := UIElementInfo{
		Path:  ElementPath{PID: 1234, Path: []int{0, 1}},
		Role:  "AXButton",
		Title: "OK",
		Frame: ElementFrame{X: 10, Y: 20, Width: 100, Height: 30},
	}
	data, err := json.Marshal(el)
	if err != nil {
		t.Fatal(err)
	}
	var m map[string]interface{}
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{"path", "role", "title", "frame", "is_enabled", "is_focused"} {
		if _, ok := m[key]; !ok {
			t.Errorf("expected lower-snake-case key %q in JSON output", key)
		}
	}
	for _, key := range []string{"i", "r", "t", "b"} {
		if _, ok := m[key]; ok {
			t.Errorf("unexpected abbreviated key %q in JSON output", key)
		}
	}
}

func TestUIElementInfo_OmitEmpty(t *testing.T) {
	el := UIElementInfo{
		Path: ElementPath{PID: 1, Path: []int{0}},
		Role: "AXButton",
	}
	data, err := json.Marshal(el)
	if err != nil {
		t.Fatal(err)
	}
	var m map[string]interface{}
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{"title", "label", "value", "description", "actions", "children"} {
		if _, ok := m[key]; ok {
			t.Errorf("empty %q should be omitted", key)
		}
	}
	// is_enabled and is_focused are plain bools with no omitempty: they are
	// part of the compatibility contract's fixed shape and always present.
	if _, ok := m["is_enabled"]; !ok {
		t.Error("is_enabled should always be present")
	}
}

func TestUIElementInfo_RoundTrip(t *testing.T) {
	original := UIElementInfo{
		Path:        ElementPath{PID: 1234, Path: []int{0, 2, 1}},
		Role:        "AXTextField",
		Title:       "Search",
		Value:       "hello",
		Description: "Search field",
		Frame:       ElementFrame{X: 100, Y: 200, Width: 300, Height: 40},
		IsEnabled:   true,
		IsFocused:   true,
		Actions:     []string{"confirm", "cancel"},
		Children: []UIElementInfo{
			{Path: ElementPath{PID: 1234, Path: []int{0, 2, 1, 0}}, Role: "AXStaticText", Title: "Placeholder"},
		},
	}
	data, err := json.Marshal(original)
	if err != nil {
		t.Fatal(err)
	}
	var decoded UIElementInfo
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatal(err)
	}
	if decoded.Path.PID != original.Path.PID || len(decoded.Path.Path) != len(original.Path.Path) {
		t.Errorf("Path: got %+v, want %+v", decoded.Path, original.Path)
	}
	if decoded.Role != original.Role {
		t.Errorf("Role: got %q, want %q", decoded.Role, original.Role)
	}
	if decoded.Value != original.Value {
		t.Errorf("Value: got %q, want %q", decoded.Value, original.Value)
	}
	if decoded.Frame != original.Frame {
		t.Errorf("Frame: got %v, want %v", decoded.Frame, original.Frame)
	}
	if len(decoded.Children) != 1 {
		t.Errorf("Children: got %d, want 1", len(decoded.Children))
	}
	if len(decoded.Actions) != 2 {
		t.Errorf("Actions: got %d, want 2", len(decoded.Actions))
	}
}

func TestUIElementInfo_IsMeaningful(t *testing.T) {
	cases := []struct {
		name string
		el   UIElementInfo
		want bool
	}{
		{"titled", UIElementInfo{Role: "AXGroup", Title: "Nav"}, true},
		{"labeled", UIElementInfo{Role: "AXGroup", Label: "Nav"}, true},
		{"meaningful role", UIElementInfo{Role: "AXButton"}, true},
		{"anonymous group", UIElementInfo{Role: "AXGroup"}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.el.IsMeaningful(); got != c.want {
				t.Errorf("IsMeaningful() = %v, want %v", got, c.want)
			}
		})
	}
}
