package services

import (
	"context"
	"log"
	"sort"
	"time"

	"minipos/internal/adapters/persistence/repositories"
	"minipos/internal/core/domain"
	"minipos/internal/pkg/calendar"
)

// SalesService handles the sales ledger: recording sales, receipts
// and revenue aggregation. Selling spans the catalog and the ledger;
// this is the only place the two meet.
type SalesService struct {
	productRepo repositories.ProductRepository
	txRepo      repositories.TransactionRepository
	cal         *calendar.Calendar
	now         func() time.Time
}

// NewSalesService creates a new sales service
func NewSalesService(productRepo repositories.ProductRepository, txRepo repositories.TransactionRepository, cal *calendar.Calendar) *SalesService {
	return &SalesService{
		productRepo: productRepo,
		txRepo:      txRepo,
		cal:         cal,
		now:         time.Now,
	}
}

// PeriodRevenue represents one aggregation bucket. Key orders buckets
// chronologically within a run; it is not a wire format.
type PeriodRevenue struct {
	Key     int
	Revenue float64
}

// Sell records a sale: debits stock, credits the sold counter and
// appends the transaction. Either everything applies or nothing does.
func (s *SalesService) Sell(ctx context.Context, session *domain.Session, productID, quantity int) (*domain.SalesTransaction, error) {
	if session == nil {
		return nil, domain.ErrPermissionDenied
	}

	// 1. Validate quantity; selling the exact remaining stock is fine
	if quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}

	// 2. Find product
	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if quantity > product.Stock {
		return nil, domain.ErrInsufficientStock
	}

	// 3. Debit stock, credit sold
	product.Stock -= quantity
	product.Sold += quantity
	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	// 4. Append the transaction with the selling price snapshotted now
	tx := &domain.SalesTransaction{
		ProductID:    product.ID,
		ProductName:  product.Name,
		Quantity:     quantity,
		PricePerUnit: product.SellingPrice,
		TotalAmount:  float64(quantity) * product.SellingPrice,
		Timestamp:    s.now(),
	}
	if err := s.txRepo.Append(ctx, tx); err != nil {
		return nil, err
	}

	log.Printf("✅ Sold %d of %s (ID: %d), remaining stock: %d", quantity, product.Name, product.ID, product.Stock)
	return tx, nil
}

// Receipt gets a transaction by its 1-based ledger position
func (s *SalesService) Receipt(ctx context.Context, seq int) (*domain.SalesTransaction, error) {
	return s.txRepo.GetBySeq(ctx, seq)
}

// List returns the full transaction history in append order
func (s *SalesService) List(ctx context.Context) ([]*domain.SalesTransaction, error) {
	return s.txRepo.List(ctx)
}

// Count returns the ledger length
func (s *SalesService) Count(ctx context.Context) (int, error) {
	return s.txRepo.Count(ctx)
}

// RevenueByPeriod sums transaction totals into calendar buckets and
// returns them in chronological order. An unrecognized period is an
// input error and produces no partial output.
func (s *SalesService) RevenueByPeriod(ctx context.Context, period calendar.Period) ([]PeriodRevenue, error) {
	// 1. Validate the period selector up front
	if _, err := calendar.ParsePeriod(string(period)); err != nil {
		return nil, err
	}

	// 2. Bucket every transaction by its local-calendar period key
	transactions, err := s.txRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	buckets := make(map[int]float64)
	for _, tx := range transactions {
		key, err := s.cal.Key(period, tx.Timestamp)
		if err != nil {
			return nil, err
		}
		buckets[key] += tx.TotalAmount
	}

	// 3. Sort keys so buckets come out chronologically
	keys := make([]int, 0, len(buckets))
	for key := range buckets {
		keys = append(keys, key)
	}
	sort.Ints(keys)

	out := make([]PeriodRevenue, 0, len(keys))
	for _, key := range keys {
		out = append(out, PeriodRevenue{Key: key, Revenue: buckets[key]})
	}
	return out, nil
}
