package dispatch

import (
	"encoding/json"
	"net/http/httptest"
	"testing"
)

func TestScreenshot_Base64Envelope(t *testing.T) {
	d, _, _ := newTestDispatcher(nil)

	req := httptest.NewRequest("GET", "/screenshot?format=base64", nil)
	rec := httptest.NewRecorder()

	d.Screenshot(rec, req)

	if rec.Code != 200 {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", ct)
	}
	var resp screenshotResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Success || resp.Format != "png" || resp.Data == "" {
		t.Errorf("resp = %+v, want success with non-empty base64 png data", resp)
	}
}

func TestScreenshot_PNGReturnsRawBytesWithContentType(t *testing.T) {
	d, _, _ := newTestDispatcher(nil)

	req := httptest.NewRequest("GET", "/screenshot?format=png", nil)
	rec := httptest.NewRecorder()

	d.Screenshot(rec, req)

	if rec.Code != 200 {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/png" {
		t.Errorf("Content-Type = %q, want image/png", ct)
	}
	if rec.Body.Len() == 0 {
		t.Error("expected non-empty image bytes")
	}
}

func TestScreenshot_InvalidFormat_Returns400(t *testing.T) {
	d, _, _ := newTestDispatcher(nil)

	req := httptest.NewRequest("GET", "/screenshot?format=bmp", nil)
	rec := httptest.NewRecorder()

	d.Screenshot(rec, req)

	if rec.Code != 400 {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestStatus_ReadOnlyAndRepeatable(t *testing.T) {
	d, _, _ := newTestDispatcher(nil)

	req1 := httptest.NewRequest("GET", "/status", nil)
	rec1 := httptest.NewRecorder()
	d.Status(rec1, req1)

	req2 := httptest.NewRequest("GET", "/status", nil)
	rec2 := httptest.NewRecorder()
	d.Status(rec2, req2)

	var s1, s2 statusResponse
	_ = json.Unmarshal(rec1.Body.Bytes(), &s1)
	_ = json.Unmarshal(rec2.Body.Bytes(), &s2)

	if s1.Permissions != s2.Permissions {
		t.Errorf("permissions differ across calls: %+v vs %+v", s1.Permissions, s2.Permissions)
	}
	if s1.ScreenSize != s2.ScreenSize {
		t.Errorf("screen_size differs across calls: %+v vs %+v", s1.ScreenSize, s2.ScreenSize)
	}
	if s1.TargetApp == nil || s1.TargetApp.PID != 1234 {
		t.Errorf("target_app = %+v, want bound PID 1234", s1.TargetApp)
	}
}

func TestHealth_ReturnsOK(t *testing.T) {
	d, _, _ := newTestDispatcher(nil)
	req := httptest.NewRequest("GET", "/health", nil)
	rec := httptest.NewRecorder()

	d.Health(rec, req)

	var body map[string]string
	_ = json.Unmarshal(rec.Body.Bytes(), &body)
	if body["status"] != "ok" {
		t.Errorf("body = %+v, want status:ok", body)
	}
}
