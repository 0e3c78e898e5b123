package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/campanini-sabores/storefront/pkg/logger"
)

func TestHealthHandler(t *testing.T) {
	h := NewHealthHandler(logger.NewWithWriter(io.Discard, "error"), "1.2.3")

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected application/json, got %s", ct)
	}

	var response HealthResponse
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if response.Status != "ok" {
		t.Errorf("expected status ok, got %s", response.Status)
	}
	if response.Version != "1.2.3" {
		t.Errorf("expected version 1.2.3, got %s", response.Version)
	}
	if response.Timestamp.IsZero() {
		t.Error("expected a timestamp")
	}
}
