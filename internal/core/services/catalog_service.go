package services

import (
	"context"
	"log"

	"minipos/internal/adapters/persistence/repositories"
	"minipos/internal/core/domain"
)

// CatalogService handles product catalog business logic
type CatalogService struct {
	productRepo repositories.ProductRepository
}

// NewCatalogService creates a new catalog service
func NewCatalogService(productRepo repositories.ProductRepository) *CatalogService {
	return &CatalogService{productRepo: productRepo}
}

// AddProductInput represents add product input
type AddProductInput struct {
	ID            int
	Name          string
	PurchasePrice float64
	SellingPrice  float64
	Stock         int
}

// AddProduct adds a product to the catalog. ADMIN only.
// Product IDs are unique; a duplicate is rejected outright rather
// than appended as an unreachable shadow entry.
func (s *CatalogService) AddProduct(ctx context.Context, session *domain.Session, input AddProductInput) (*domain.Product, error) {
	// 1. Only administrators can add products
	if !authorized(session, CanAddProduct...) {
		return nil, domain.ErrPermissionDenied
	}

	// 2. Validate input
	if input.Name == "" || input.PurchasePrice < 0 || input.SellingPrice < 0 || input.Stock < 0 {
		return nil, domain.ErrInvalidInput
	}

	// 3. Create product
	product := &domain.Product{
		ID:            input.ID,
		Name:          input.Name,
		PurchasePrice: input.PurchasePrice,
		SellingPrice:  input.SellingPrice,
		Stock:         input.Stock,
		Sold:          0,
	}
	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	log.Printf("✅ Product added: %s (ID: %d) by %s", product.Name, product.ID, session.Username)
	return product, nil
}

// UpdatePrice overwrites both prices of a product in place. ADMIN or
// MANAGER only.
func (s *CatalogService) UpdatePrice(ctx context.Context, session *domain.Session, id int, purchasePrice, sellingPrice float64) (*domain.Product, error) {
	// 1. Only managers or administrators can update prices
	if !authorized(session, CanUpdatePrice...) {
		return nil, domain.ErrPermissionDenied
	}

	// 2. Validate input
	if purchasePrice < 0 || sellingPrice < 0 {
		return nil, domain.ErrInvalidInput
	}

	// 3. Find and update
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	product.PurchasePrice = purchasePrice
	product.SellingPrice = sellingPrice
	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	log.Printf("✅ Prices updated for %s (ID: %d) by %s", product.Name, product.ID, session.Username)
	return product, nil
}

// Restock adds quantity to a product's on-hand stock. Open to any
// authenticated session; quantity must be positive so restock can
// only ever raise the stock level.
func (s *CatalogService) Restock(ctx context.Context, session *domain.Session, id, quantity int) (*domain.Product, error) {
	if session == nil {
		return nil, domain.ErrPermissionDenied
	}
	if quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}

	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	product.Stock += quantity
	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	log.Printf("✅ Restocked %s (ID: %d): +%d, now %d", product.Name, product.ID, quantity, product.Stock)
	return product, nil
}

// Search returns every product whose name or decimal ID equals the
// query exactly. An empty result is not an error.
func (s *CatalogService) Search(ctx context.Context, query string) ([]*domain.Product, error) {
	return s.productRepo.Search(ctx, query)
}

// ListAll returns the catalog snapshot in insertion order
func (s *CatalogService) ListAll(ctx context.Context) ([]*domain.Product, error) {
	return s.productRepo.List(ctx)
}

// Count returns the catalog size
func (s *CatalogService) Count(ctx context.Context) (int, error) {
	return s.productRepo.Count(ctx)
}
