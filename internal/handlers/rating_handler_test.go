package handlers

import (
	"net/http"
	"testing"

	"github.com/campanini-sabores/storefront/internal/models"
	"github.com/campanini-sabores/storefront/internal/storefront"
)

func TestRatingHandler(t *testing.T) {
	r, _ := newTestRouter(t)

	// Dialog is only available on the menu
	if w := do(t, r, http.MethodPost, "/api/rating/1", nil); w.Code != http.StatusConflict {
		t.Errorf("open on welcome: status = %d, want 409", w.Code)
	}

	do(t, r, http.MethodPost, "/api/session/start", nil)

	if w := do(t, r, http.MethodPost, "/api/rating", RatingRequest{Score: 5}); w.Code != http.StatusConflict {
		t.Errorf("submit without dialog: status = %d, want 409", w.Code)
	}

	if w := do(t, r, http.MethodPost, "/api/rating/42", nil); w.Code != http.StatusNotFound {
		t.Errorf("open unknown product: status = %d, want 404", w.Code)
	}

	w := do(t, r, http.MethodPost, "/api/rating/1", nil)
	var state storefront.State
	decode(t, w, &state)
	if state.RatingProduct == nil || state.RatingProduct.ID != "1" {
		t.Fatalf("expected rating dialog for product 1, got %+v", state.RatingProduct)
	}

	tests := []struct {
		name           string
		body           interface{}
		expectedStatus int
	}{
		{"invalid JSON", "not json", http.StatusBadRequest},
		{"score too low", RatingRequest{Score: 0}, http.StatusBadRequest},
		{"score too high", RatingRequest{Score: 6}, http.StatusBadRequest},
		{"valid score", RatingRequest{Score: 4, Comment: "Muito bom!"}, http.StatusCreated},
	}

	for _, tt := range tests {
		w := do(t, r, http.MethodPost, "/api/rating", tt.body)
		if w.Code != tt.expectedStatus {
			t.Fatalf("%s: status = %d, want %d", tt.name, w.Code, tt.expectedStatus)
		}
		if tt.expectedStatus == http.StatusCreated {
			var rating models.Rating
			decode(t, w, &rating)
			if rating.ID == "" || rating.ProductID != "1" || rating.Score != 4 || rating.Comment != "Muito bom!" {
				t.Errorf("unexpected rating %+v", rating)
			}
		}
	}

	decode(t, do(t, r, http.MethodGet, "/api/session", nil), &state)
	if state.RatingProduct != nil {
		t.Error("dialog should close after a saved rating")
	}
}

func TestRatingHandler_Close(t *testing.T) {
	r, _ := newTestRouter(t)
	do(t, r, http.MethodPost, "/api/session/start", nil)
	do(t, r, http.MethodPost, "/api/rating/3", nil)

	var state storefront.State
	decode(t, do(t, r, http.MethodDelete, "/api/rating", nil), &state)
	if state.RatingProduct != nil {
		t.Error("expected dialog to be closed")
	}

	if w := do(t, r, http.MethodPost, "/api/rating", RatingRequest{Score: 5}); w.Code != http.StatusConflict {
		t.Errorf("submit after close: status = %d, want 409", w.Code)
	}
}
