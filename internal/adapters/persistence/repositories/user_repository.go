package repositories

import (
	"context"
	"sync"

	"minipos/internal/core/domain"
)

// userRepository implements UserRepository over an in-memory store.
// State lives only for the lifetime of the process.
type userRepository struct {
	mu    sync.Mutex
	users []domain.User
}

// NewUserRepository creates a new in-memory user repository
func NewUserRepository() UserRepository {
	return &userRepository{}
}

// Create appends a new user record
func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.users {
		if r.users[i].Username == user.Username {
			return domain.ErrUserExists
		}
	}
	r.users = append(r.users, *user)
	return nil
}

// GetByCredentials finds the first user matching both username and
// password exactly. Registration order decides ties.
func (r *userRepository) GetByCredentials(ctx context.Context, username, password string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.users {
		if r.users[i].Username == username && r.users[i].Password == password {
			user := r.users[i]
			return &user, nil
		}
	}
	return nil, domain.ErrInvalidCredentials
}

// ExistsByUsername reports whether a username is already registered
func (r *userRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.users {
		if r.users[i].Username == username {
			return true, nil
		}
	}
	return false, nil
}

// List returns all users in registration order
func (r *userRepository) List(ctx context.Context) ([]*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*domain.User, len(r.users))
	for i := range r.users {
		user := r.users[i]
		out[i] = &user
	}
	return out, nil
}

// Count returns the number of registered users
func (r *userRepository) Count(ctx context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.users), nil
}
