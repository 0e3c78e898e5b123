package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/campanini-sabores/storefront/internal/order"
	"github.com/campanini-sabores/storefront/internal/ratings"
	"github.com/campanini-sabores/storefront/internal/repository"
	"github.com/campanini-sabores/storefront/internal/storefront"
)

// WriteJSON writes a JSON response
func WriteJSON(w http.ResponseWriter, status int, data interface{}, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("failed to encode JSON response", "error", err)
	}
}

// WriteError writes an error response in JSON format
func WriteError(w http.ResponseWriter, status int, message string, logger *slog.Logger) {
	WriteJSON(w, status, map[string]string{"error": message}, logger)
}

// writeActionError maps storefront errors to HTTP status codes
func writeActionError(w http.ResponseWriter, err error, logger *slog.Logger) {
	var (
		verr *order.ValidationError
		terr *storefront.TransitionError
	)

	switch {
	case errors.As(err, &verr):
		WriteJSON(w, http.StatusUnprocessableEntity, map[string]string{
			"error": verr.Message,
			"field": verr.Field,
		}, logger)
	case errors.As(err, &terr):
		WriteError(w, http.StatusConflict, terr.Error(), logger)
	case errors.Is(err, repository.ErrProductNotFound):
		WriteError(w, http.StatusNotFound, "Product not found", logger)
	case errors.Is(err, ratings.ErrInvalidScore):
		WriteError(w, http.StatusBadRequest, "Score must be between 1 and 5", logger)
	case errors.Is(err, storefront.ErrNoRatingDialog), errors.Is(err, storefront.ErrNoOrder):
		WriteError(w, http.StatusConflict, err.Error(), logger)
	default:
		logger.Error("storefront action failed", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", logger)
	}
}
