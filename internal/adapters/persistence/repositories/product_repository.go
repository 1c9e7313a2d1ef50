package repositories

import (
	"context"
	"strconv"
	"sync"

	"minipos/internal/core/domain"
)

// productRepository implements ProductRepository over an in-memory store.
// Records are held by value; callers always get copies so nothing
// outside the repository aliases internal storage.
type productRepository struct {
	mu       sync.Mutex
	products []domain.Product
}

// NewProductRepository creates a new in-memory product repository
func NewProductRepository() ProductRepository {
	return &productRepository{}
}

// Create appends a new product. Product IDs are unique: a colliding
// ID is rejected instead of shadowing the existing record.
func (r *productRepository) Create(ctx context.Context, product *domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.products {
		if r.products[i].ID == product.ID {
			return domain.ErrProductExists
		}
	}
	r.products = append(r.products, *product)
	return nil
}

// GetByID gets a product by ID
func (r *productRepository) GetByID(ctx context.Context, id int) (*domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.products {
		if r.products[i].ID == id {
			product := r.products[i]
			return &product, nil
		}
	}
	return nil, domain.ErrProductNotFound
}

// Update overwrites the stored record with the same ID
func (r *productRepository) Update(ctx context.Context, product *domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.products {
		if r.products[i].ID == product.ID {
			r.products[i] = *product
			return nil
		}
	}
	return domain.ErrProductNotFound
}

// Search returns every product whose name equals the query or whose
// ID rendered as decimal text equals the query. Both predicates are
// exact matches OR'd per product, evaluated once in insertion order.
func (r *productRepository) Search(ctx context.Context, query string) ([]*domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []*domain.Product
	for i := range r.products {
		if r.products[i].Name == query || strconv.Itoa(r.products[i].ID) == query {
			product := r.products[i]
			out = append(out, &product)
		}
	}
	return out, nil
}

// List returns all products in insertion order
func (r *productRepository) List(ctx context.Context) ([]*domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*domain.Product, len(r.products))
	for i := range r.products {
		product := r.products[i]
		out[i] = &product
	}
	return out, nil
}

// Count returns the catalog size
func (r *productRepository) Count(ctx context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.products), nil
}
