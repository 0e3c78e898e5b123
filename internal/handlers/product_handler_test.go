package handlers

import (
	"net/http"
	"testing"

	"github.com/campanini-sabores/storefront/internal/models"
	"github.com/shopspring/decimal"
)

func TestListProducts(t *testing.T) {
	r, _ := newTestRouter(t)

	w := do(t, r, http.MethodGet, "/api/product", nil)

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}

	var products []models.ProductView
	decode(t, w, &products)

	if len(products) != 8 {
		t.Fatalf("expected 8 products, got %d", len(products))
	}

	if products[0].ID != "1" || products[7].ID != "8" {
		t.Errorf("products not in catalog order: first=%s last=%s", products[0].ID, products[7].ID)
	}

	for _, p := range products {
		if p.AverageRating != 0 {
			t.Errorf("expected no ratings for %s, got %f", p.ID, p.AverageRating)
		}
	}
}

func TestGetProduct_Success(t *testing.T) {
	r, _ := newTestRouter(t)

	w := do(t, r, http.MethodGet, "/api/product/6", nil)

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}

	var product models.ProductView
	decode(t, w, &product)

	if product.ID != "6" {
		t.Errorf("expected product ID 6, got %s", product.ID)
	}

	if product.Name != "Esfiha de Carne" {
		t.Errorf("expected product name 'Esfiha de Carne', got %s", product.Name)
	}

	if !product.Price.Equal(decimal.NewFromInt(30)) {
		t.Errorf("expected product price 30, got %s", product.Price)
	}
}

func TestGetProduct_NotFound(t *testing.T) {
	r, _ := newTestRouter(t)

	for _, id := range []string{"999", "invalid", "0"} {
		t.Run(id, func(t *testing.T) {
			w := do(t, r, http.MethodGet, "/api/product/"+id, nil)

			if w.Code != http.StatusNotFound {
				t.Errorf("expected status 404, got %d", w.Code)
			}

			var response map[string]string
			decode(t, w, &response)

			if response["error"] != "Product not found" {
				t.Errorf("expected error message 'Product not found', got %s", response["error"])
			}
		})
	}
}

func TestListProducts_IncludesAverageRating(t *testing.T) {
	r, _ := newTestRouter(t)

	do(t, r, http.MethodPost, "/api/session/start", nil)
	for _, score := range []int{5, 3, 4} {
		if w := do(t, r, http.MethodPost, "/api/rating/2", nil); w.Code != http.StatusOK {
			t.Fatalf("open rating: status %d", w.Code)
		}
		if w := do(t, r, http.MethodPost, "/api/rating", RatingRequest{Score: score}); w.Code != http.StatusCreated {
			t.Fatalf("submit rating: status %d", w.Code)
		}
	}

	w := do(t, r, http.MethodGet, "/api/product/2", nil)
	var product models.ProductView
	decode(t, w, &product)

	if product.AverageRating != 4.0 {
		t.Errorf("expected average 4.0, got %f", product.AverageRating)
	}
}
