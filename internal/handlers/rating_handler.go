package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// RatingRequest is the body of POST /api/rating
type RatingRequest struct {
	Score   int    `json:"score"`
	Comment string `json:"comment"`
}

// RatingHandler drives the rating dialog
type RatingHandler struct {
	ctrl controller
	log  *slog.Logger
}

// NewRatingHandler creates a new rating handler
func NewRatingHandler(ctrl controller, log *slog.Logger) *RatingHandler {
	return &RatingHandler{
		ctrl: ctrl,
		log:  log,
	}
}

// OpenRating handles POST /api/rating/{productId}
func (h *RatingHandler) OpenRating(w http.ResponseWriter, r *http.Request) {
	state, err := h.ctrl.OpenRating(chi.URLParam(r, "productId"))
	if err != nil {
		writeActionError(w, err, h.log)
		return
	}
	WriteJSON(w, http.StatusOK, state, h.log)
}

// CloseRating handles DELETE /api/rating
func (h *RatingHandler) CloseRating(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, h.ctrl.CloseRating(), h.log)
}

// SubmitRating handles POST /api/rating
func (h *RatingHandler) SubmitRating(w http.ResponseWriter, r *http.Request) {
	var req RatingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Warn("failed to decode rating request", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	rating, err := h.ctrl.SubmitRating(r.Context(), req.Score, req.Comment)
	if err != nil {
		writeActionError(w, err, h.log)
		return
	}

	WriteJSON(w, http.StatusCreated, rating, h.log)
	h.log.Info("rating saved", "rating_id", rating.ID, "product_id", rating.ProductID, "score", rating.Score)
}
