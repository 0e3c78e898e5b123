package models

import "github.com/shopspring/decimal"

// Product represents a frozen esfiha pack available in the catalog
type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
}

// ProductView is a catalog entry as shown on the menu screen
type ProductView struct {
	Product
	AverageRating float64 `json:"averageRating"`
}
