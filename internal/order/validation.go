package order

import (
	"strings"

	"github.com/campanini-sabores/storefront/internal/bag"
	"github.com/campanini-sabores/storefront/internal/models"
)

const (
	FieldBag      = "bag"
	FieldCustomer = "customer"

	msgEmptyBag        = "Sua sacola está vazia!"
	msgMissingCustomer = "Por favor, preencha seu nome e endereço."
)

// ValidationError rejects an order registration. Message is shown to the customer.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return "order validation failed: " + e.Field + ": " + e.Message
}

// Validate checks that an order can be registered: the bag holds at least one
// entry and both name and address are filled in.
func Validate(b *bag.Bag, customer models.CustomerInfo) error {
	if b.IsEmpty() {
		return &ValidationError{Field: FieldBag, Message: msgEmptyBag}
	}
	if strings.TrimSpace(customer.Name) == "" || strings.TrimSpace(customer.Address) == "" {
		return &ValidationError{Field: FieldCustomer, Message: msgMissingCustomer}
	}
	return nil
}
