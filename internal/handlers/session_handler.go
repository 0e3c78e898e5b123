package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/campanini-sabores/storefront/internal/models"
	"github.com/campanini-sabores/storefront/internal/storefront"
	"github.com/go-chi/chi/v5"
)

// SessionHandler drives screen transitions, the bag and customer details
type SessionHandler struct {
	ctrl controller
	log  *slog.Logger
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(ctrl controller, log *slog.Logger) *SessionHandler {
	return &SessionHandler{
		ctrl: ctrl,
		log:  log,
	}
}

// GetSession handles GET /api/session
func (h *SessionHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, h.ctrl.Snapshot(), h.log)
}

// Start handles POST /api/session/start
func (h *SessionHandler) Start(w http.ResponseWriter, r *http.Request) {
	h.respond(w, h.ctrl.Start)
}

// OpenBag handles POST /api/session/bag
func (h *SessionHandler) OpenBag(w http.ResponseWriter, r *http.Request) {
	h.respond(w, h.ctrl.OpenBag)
}

// BackToMenu handles POST /api/session/menu
func (h *SessionHandler) BackToMenu(w http.ResponseWriter, r *http.Request) {
	h.respond(w, h.ctrl.BackToMenu)
}

// Reset handles POST /api/session/reset
func (h *SessionHandler) Reset(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, h.ctrl.Reset(), h.log)
}

// AddToBag handles POST /api/bag/{productId}
func (h *SessionHandler) AddToBag(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productId")
	h.respond(w, func() (storefront.State, error) { return h.ctrl.Add(productID) })
}

// RemoveFromBag handles DELETE /api/bag/{productId}
func (h *SessionHandler) RemoveFromBag(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productId")
	h.respond(w, func() (storefront.State, error) { return h.ctrl.Remove(productID) })
}

// SetCustomer handles PUT /api/session/customer
func (h *SessionHandler) SetCustomer(w http.ResponseWriter, r *http.Request) {
	var info models.CustomerInfo
	if err := json.NewDecoder(r.Body).Decode(&info); err != nil {
		h.log.Warn("failed to decode customer info", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	h.respond(w, func() (storefront.State, error) { return h.ctrl.SetCustomerInfo(info) })
}

func (h *SessionHandler) respond(w http.ResponseWriter, action func() (storefront.State, error)) {
	state, err := action()
	if err != nil {
		writeActionError(w, err, h.log)
		return
	}
	WriteJSON(w, http.StatusOK, state, h.log)
}
