package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNewRouter(t *testing.T) {
	router := newTestRouter(NewMockAuditor(false, 0))

	if router == nil {
		t.Fatal("Expected router to be created")
	}
}

func TestPingEndpoint(t *testing.T) {
	handler := newTestRouter(NewMockAuditor(false, 0))

	req := httptest.NewRequest("GET", "/ping", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200 for ping endpoint, got %d", w.Code)
	}

	if w.Body.String() != "." {
		t.Errorf("Expected ping response '.', got %s", w.Body.String())
	}
}

func TestUnknownRoute(t *testing.T) {
	handler := newTestRouter(NewMockAuditor(false, 0))

	req := httptest.NewRequest("GET", "/api/unknown", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("Expected status 404 for unknown route, got %d", w.Code)
	}
}
