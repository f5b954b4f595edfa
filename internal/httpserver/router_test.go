package httpserver

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRouter_DispatchesByMethodAndPath(t *testing.T) {
	r := NewRouter()
	called := false
	r.Handle(http.MethodGet, "/status", func(w http.ResponseWriter, req *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/status", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if !called {
		t.Fatal("expected the registered handler to run")
	}
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}

func TestRouter_UnknownPathReturns404(t *testing.T) {
	r := NewRouter()
	r.Handle(http.MethodGet, "/status", func(w http.ResponseWriter, req *http.Request) {})

	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestRouter_KnownPathWrongMethodReturns404(t *testing.T) {
	r := NewRouter()
	r.Handle(http.MethodGet, "/status", func(w http.ResponseWriter, req *http.Request) {})

	req := httptest.NewRequest(http.MethodPost, "/status", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}
