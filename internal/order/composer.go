package order

import (
	"fmt"
	"strings"

	"github.com/campanini-sabores/storefront/internal/bag"
	"github.com/campanini-sabores/storefront/internal/models"
	"github.com/shopspring/decimal"
)

// Line is one priced bag entry resolved against the catalog
type Line struct {
	Product  models.Product
	Quantity int
}

// Subtotal returns quantity × unit price
func (l Line) Subtotal() decimal.Decimal {
	return l.Product.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Lines resolves bag entries against the catalog in catalog order.
// Entries whose product is not in the catalog are skipped.
func Lines(b *bag.Bag, catalog []models.Product) []Line {
	order := make([]string, len(catalog))
	byID := make(map[string]models.Product, len(catalog))
	for i, p := range catalog {
		order[i] = p.ID
		if _, ok := byID[p.ID]; !ok {
			byID[p.ID] = p
		}
	}

	entries := b.Entries(order)
	lines := make([]Line, 0, len(entries))
	for _, e := range entries {
		p, ok := byID[e.ProductID]
		if !ok {
			continue
		}
		lines = append(lines, Line{Product: p, Quantity: e.Quantity})
	}
	return lines
}

// TotalPrice sums quantity × price over the bag, excluding delivery
func TotalPrice(b *bag.Bag, catalog []models.Product) decimal.Decimal {
	total := decimal.Zero
	for _, l := range Lines(b, catalog) {
		total = total.Add(l.Subtotal())
	}
	return total
}

// Compose renders the order summary sent to the shop over the messaging channel
func Compose(b *bag.Bag, catalog []models.Product, customer models.CustomerInfo) string {
	var sb strings.Builder

	sb.WriteString("Olá! Gostaria de fazer um pedido:\n\n")
	fmt.Fprintf(&sb, "*Cliente:* %s\n", customer.Name)
	fmt.Fprintf(&sb, "*Endereço:* %s\n", customer.Address)
	if customer.Obs != "" {
		fmt.Fprintf(&sb, "*Observações:* %s\n", customer.Obs)
	}

	sb.WriteString("\n*Itens do Pedido:*\n")
	total := decimal.Zero
	for _, l := range Lines(b, catalog) {
		fmt.Fprintf(&sb, "– %dx %s (R$ %s cada)\n", l.Quantity, l.Product.Name, l.Product.Price.StringFixed(2))
		total = total.Add(l.Subtotal())
	}

	fmt.Fprintf(&sb, "\n*Total (sem frete): R$ %s*\n", total.StringFixed(2))
	sb.WriteString("\nO valor do frete será combinado em seguida.")

	return sb.String()
}
