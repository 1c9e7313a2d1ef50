package repositories

import (
	"context"

	"minipos/internal/core/domain"
)

// UserRepository defines user repository interface
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByCredentials(ctx context.Context, username, password string) (*domain.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	List(ctx context.Context) ([]*domain.User, error)
	Count(ctx context.Context) (int, error)
}

// ProductRepository defines product repository interface
type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) error
	GetByID(ctx context.Context, id int) (*domain.Product, error)
	Update(ctx context.Context, product *domain.Product) error
	Search(ctx context.Context, query string) ([]*domain.Product, error)
	List(ctx context.Context) ([]*domain.Product, error)
	Count(ctx context.Context) (int, error)
}

// TransactionRepository defines the append-only sales ledger interface
type TransactionRepository interface {
	Append(ctx context.Context, tx *domain.SalesTransaction) error
	GetBySeq(ctx context.Context, seq int) (*domain.SalesTransaction, error)
	List(ctx context.Context) ([]*domain.SalesTransaction, error)
	Count(ctx context.Context) (int, error)
}
