package handlers

import (
	"log/slog"
	"net/http"

	"github.com/campanini-sabores/storefront/internal/models"
)

// OrderHandler handles order registration and the messaging link
type OrderHandler struct {
	ctrl controller
	log  *slog.Logger
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(ctrl controller, log *slog.Logger) *OrderHandler {
	return &OrderHandler{
		ctrl: ctrl,
		log:  log,
	}
}

// RegisterOrder handles POST /api/order
func (h *OrderHandler) RegisterOrder(w http.ResponseWriter, r *http.Request) {
	state, err := h.ctrl.RegisterOrder()
	if err != nil {
		writeActionError(w, err, h.log)
		return
	}

	confirmation := models.OrderConfirmation{
		Message:    state.OrderMessage,
		TotalItems: state.TotalItems,
		TotalPrice: state.TotalPrice,
	}

	// The order stays registered even without a link; GET /api/order/link can retry
	link, err := h.ctrl.SendLink()
	if err != nil {
		h.log.Error("failed to build messaging link", "error", err)
	}
	confirmation.Link = link

	WriteJSON(w, http.StatusOK, confirmation, h.log)
	h.log.Info("order registered successfully", "items_count", state.TotalItems)
}

// GetLink handles GET /api/order/link
func (h *OrderHandler) GetLink(w http.ResponseWriter, r *http.Request) {
	link, err := h.ctrl.SendLink()
	if err != nil {
		writeActionError(w, err, h.log)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"link": link}, h.log)
}
