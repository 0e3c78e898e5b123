package models

import "github.com/shopspring/decimal"

// BagEntry is the quantity of one product held in the bag
// Quantity is always at least 1; emptied entries are removed
type BagEntry struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// CustomerInfo holds the delivery details typed on the bag screen
type CustomerInfo struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Obs     string `json:"obs"`
}

// OrderConfirmation is returned once an order has been registered
type OrderConfirmation struct {
	Message    string          `json:"message"`
	Link       string          `json:"link"`
	TotalItems int             `json:"totalItems"`
	TotalPrice decimal.Decimal `json:"totalPrice"`
}
