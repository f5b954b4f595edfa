package dispatch

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/coreframe/macui-agent/internal/model"
)

func fileMenuFixture() []model.MenuItemInfo {
	return []model.MenuItemInfo{
		{
			Title:      "File",
			IsEnabled:  true,
			HasSubmenu: true,
			Children: []model.MenuItemInfo{
				{Title: "New Window", IsEnabled: true, Shortcut: "Cmd+N"},
				{Title: "Close", IsEnabled: true, Shortcut: "Cmd+W"},
			},
		},
	}
}

func TestMenuGet_ReturnsBoundPIDTree(t *testing.T) {
	d, _ := newTestDispatcherWithMenu(fileMenuFixture())

	req := httptest.NewRequest("GET", "/menu", nil)
	rec := httptest.NewRecorder()

	d.MenuGet(rec, req)

	if rec.Code != 200 {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var resp menuTreeResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Success || len(resp.Menu) != 1 || resp.Menu[0].Title != "File" {
		t.Errorf("resp = %+v, want one top-level item titled File", resp)
	}
}

func TestMenuPost_PressesResolvedPath(t *testing.T) {
	d, actions := newTestDispatcherWithMenu(fileMenuFixture())

	body, _ := json.Marshal(map[string]interface{}{"titles": []string{"File", "New Window"}})
	req := httptest.NewRequest("POST", "/menu", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	d.MenuPost(rec, req)

	if rec.Code != 200 {
		t.Fatalf("status = %d, want 200, body=%s", rec.Code, rec.Body.String())
	}
	if len(actions.menuPresses) != 1 || len(actions.menuPresses[0]) != 2 || actions.menuPresses[0][1] != "New Window" {
		t.Errorf("menuPresses = %+v, want one press of [File New Window]", actions.menuPresses)
	}
}

func TestMenuPost_UnresolvedPath_ReturnsFailureEnvelope(t *testing.T) {
	d, _ := newTestDispatcherWithMenu(fileMenuFixture())

	body, _ := json.Marshal(map[string]interface{}{"titles": []string{"File", "Nonexistent"}})
	req := httptest.NewRequest("POST", "/menu", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	d.MenuPost(rec, req)

	if rec.Code != 400 {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	var env map[string]interface{}
	_ = json.Unmarshal(rec.Body.Bytes(), &env)
	if success, ok := env["success"].(bool); !ok || success {
		t.Errorf("env = %+v, want success:false resolution-failure envelope", env)
	}
}

func TestMenuPost_EmptyTitles_Returns400(t *testing.T) {
	d, _ := newTestDispatcherWithMenu(fileMenuFixture())

	body, _ := json.Marshal(map[string]interface{}{"titles": []string{}})
	req := httptest.NewRequest("POST", "/menu", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	d.MenuPost(rec, req)

	if rec.Code != 400 {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}
