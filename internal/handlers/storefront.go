package handlers

import (
	"context"

	"github.com/campanini-sabores/storefront/internal/models"
	"github.com/campanini-sabores/storefront/internal/storefront"
)

// controller is the session state machine driven by the HTTP handlers
type controller interface {
	Catalog() []models.ProductView
	Product(id string) (models.ProductView, error)
	Snapshot() storefront.State

	Start() (storefront.State, error)
	OpenBag() (storefront.State, error)
	BackToMenu() (storefront.State, error)
	Reset() storefront.State

	Add(productID string) (storefront.State, error)
	Remove(productID string) (storefront.State, error)
	SetCustomerInfo(info models.CustomerInfo) (storefront.State, error)

	RegisterOrder() (storefront.State, error)
	SendLink() (string, error)

	OpenRating(productID string) (storefront.State, error)
	CloseRating() storefront.State
	SubmitRating(ctx context.Context, score int, comment string) (models.Rating, error)
}

var _ controller = (*storefront.Controller)(nil)
