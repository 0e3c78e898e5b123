package repository

import (
	"context"
	"errors"
	"strconv"

	"github.com/campanini-sabores/storefront/internal/models"
	"github.com/shopspring/decimal"
)

var (
	ErrProductNotFound = errors.New("product not found")
)

// ProductRepository defines the interface for catalog access
type ProductRepository interface {
	GetAll(ctx context.Context) ([]models.Product, error)
	GetByID(ctx context.Context, id string) (*models.Product, error)
}

const packDescription = "Pacote com 10 unidades | 40 g cada unidade | Pré-assadas e congeladas, é só aquecer em casa"

// DefaultCatalog returns the fixed esfiha catalog in menu order
func DefaultCatalog() []models.Product {
	price := decimal.NewFromInt(30)
	names := []string{
		"Esfiha de Espinafre com Ricota e Tomate Seco",
		"Esfiha de Escarola com Queijo",
		"Esfiha de Calabresa com Queijo",
		"Esfiha de Calabresa com Catupiry",
		"Esfiha de Frango com Catupiry",
		"Esfiha de Carne",
		"Esfiha de Palmito com Catupiry",
		"Esfiha de Queijo",
	}

	products := make([]models.Product, len(names))
	for i, name := range names {
		products[i] = models.Product{
			ID:          strconv.Itoa(i + 1),
			Name:        name,
			Description: packDescription,
			Price:       price,
		}
	}
	return products
}

// InMemoryProductRepository implements ProductRepository over an immutable slice
type InMemoryProductRepository struct {
	products []models.Product
	byID     map[string]int
}

// NewInMemoryProductRepository creates a repository seeded with DefaultCatalog
func NewInMemoryProductRepository() *InMemoryProductRepository {
	return NewInMemoryProductRepositoryWith(DefaultCatalog())
}

// NewInMemoryProductRepositoryWith creates a repository over the given products.
// Later duplicates of an ID are ignored.
func NewInMemoryProductRepositoryWith(products []models.Product) *InMemoryProductRepository {
	r := &InMemoryProductRepository{
		products: make([]models.Product, 0, len(products)),
		byID:     make(map[string]int, len(products)),
	}
	for _, p := range products {
		if _, exists := r.byID[p.ID]; exists {
			continue
		}
		r.byID[p.ID] = len(r.products)
		r.products = append(r.products, p)
	}
	return r
}

// GetAll returns all products in catalog order
func (r *InMemoryProductRepository) GetAll(ctx context.Context) ([]models.Product, error) {
	products := make([]models.Product, len(r.products))
	copy(products, r.products)
	return products, nil
}

// GetByID returns a product by its ID
func (r *InMemoryProductRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	idx, exists := r.byID[id]
	if !exists {
		return nil, ErrProductNotFound
	}
	product := r.products[idx]
	return &product, nil
}
