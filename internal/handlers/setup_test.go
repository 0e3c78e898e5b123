package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/campanini-sabores/storefront/internal/messaging"
	"github.com/campanini-sabores/storefront/internal/ratings"
	"github.com/campanini-sabores/storefront/internal/repository"
	"github.com/campanini-sabores/storefront/internal/storefront"
	"github.com/campanini-sabores/storefront/pkg/logger"
	"github.com/go-chi/chi/v5"
)

// newTestRouter wires a fresh controller over the default catalog
func newTestRouter(t *testing.T) (http.Handler, *storefront.Controller) {
	t.Helper()

	log := logger.NewWithWriter(io.Discard, "error")
	store := ratings.NewStore(ratings.NewMemoryBackend(), log)
	ctrl, err := storefront.NewController(
		context.Background(),
		repository.NewInMemoryProductRepository(),
		store,
		messaging.NewWhatsApp("+5511991938761"),
		log,
	)
	if err != nil {
		t.Fatalf("failed to create controller: %v", err)
	}

	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		RegisterAPI(r, ctrl, log)
	})
	return r, ctrl
}

// do sends a request with an optional JSON body and returns the recorder
func do(t *testing.T, h http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		data, err := json.Marshal(b)
		if err != nil {
			t.Fatalf("failed to marshal request: %v", err)
		}
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
}
