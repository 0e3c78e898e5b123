package handlers

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
)

// RegisterAPI mounts the storefront endpoints on r
func RegisterAPI(r chi.Router, ctrl controller, log *slog.Logger) {
	productHandler := NewProductHandler(ctrl, log)
	sessionHandler := NewSessionHandler(ctrl, log)
	orderHandler := NewOrderHandler(ctrl, log)
	ratingHandler := NewRatingHandler(ctrl, log)

	// Catalog
	r.Get("/product", productHandler.ListProducts)
	r.Get("/product/{productId}", productHandler.GetProduct)

	// Screens
	r.Get("/session", sessionHandler.GetSession)
	r.Post("/session/start", sessionHandler.Start)
	r.Post("/session/bag", sessionHandler.OpenBag)
	r.Post("/session/menu", sessionHandler.BackToMenu)
	r.Post("/session/reset", sessionHandler.Reset)
	r.Put("/session/customer", sessionHandler.SetCustomer)

	// Bag
	r.Post("/bag/{productId}", sessionHandler.AddToBag)
	r.Delete("/bag/{productId}", sessionHandler.RemoveFromBag)

	// Order
	r.Post("/order", orderHandler.RegisterOrder)
	r.Get("/order/link", orderHandler.GetLink)

	// Rating dialog
	r.Post("/rating/{productId}", ratingHandler.OpenRating)
	r.Delete("/rating", ratingHandler.CloseRating)
	r.Post("/rating", ratingHandler.SubmitRating)
}
