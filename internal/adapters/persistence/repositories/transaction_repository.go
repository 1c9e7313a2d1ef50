package repositories

import (
	"context"
	"sync"

	"minipos/internal/core/domain"
)

// transactionRepository implements TransactionRepository over an
// in-memory append-only log. Sequence numbers are 1-based positions
// assigned at append time and never reused.
type transactionRepository struct {
	mu           sync.Mutex
	transactions []domain.SalesTransaction
}

// NewTransactionRepository creates a new in-memory transaction repository
func NewTransactionRepository() TransactionRepository {
	return &transactionRepository{}
}

// Append records a transaction and assigns its ledger sequence number
func (r *transactionRepository) Append(ctx context.Context, tx *domain.SalesTransaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	tx.Seq = len(r.transactions) + 1
	r.transactions = append(r.transactions, *tx)
	return nil
}

// GetBySeq gets a transaction by its 1-based ledger position
func (r *transactionRepository) GetBySeq(ctx context.Context, seq int) (*domain.SalesTransaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if seq < 1 || seq > len(r.transactions) {
		return nil, domain.ErrReceiptNotFound
	}
	tx := r.transactions[seq-1]
	return &tx, nil
}

// List returns the full history in append order
func (r *transactionRepository) List(ctx context.Context) ([]*domain.SalesTransaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*domain.SalesTransaction, len(r.transactions))
	for i := range r.transactions {
		tx := r.transactions[i]
		out[i] = &tx
	}
	return out, nil
}

// Count returns the ledger length
func (r *transactionRepository) Count(ctx context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.transactions), nil
}
