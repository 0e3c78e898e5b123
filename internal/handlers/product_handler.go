package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/campanini-sabores/storefront/internal/repository"
	"github.com/go-chi/chi/v5"
)

// ProductHandler serves the catalog with average ratings
type ProductHandler struct {
	ctrl   controller
	logger *slog.Logger
}

// NewProductHandler creates a new product handler
func NewProductHandler(ctrl controller, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		ctrl:   ctrl,
		logger: logger,
	}
}

// ListProducts handles GET /api/product
// Products are returned in menu order
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, h.ctrl.Catalog(), h.logger)
}

// GetProduct handles GET /api/product/{productId}
func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productId")

	if productID == "" {
		h.logger.Warn("product ID is required")
		WriteError(w, http.StatusBadRequest, "Invalid ID supplied", h.logger)
		return
	}

	product, err := h.ctrl.Product(productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			h.logger.Info("product not found", "productId", productID)
			WriteError(w, http.StatusNotFound, "Product not found", h.logger)
			return
		}

		h.logger.Error("failed to get product", "productId", productID, "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.logger)
		return
	}

	WriteJSON(w, http.StatusOK, product, h.logger)
}
