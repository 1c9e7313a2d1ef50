package services

import (
	"context"
	"log"
	"time"

	"minipos/internal/adapters/persistence/repositories"
	"minipos/internal/core/domain"

	"github.com/google/uuid"
)

// Permission policy by operation. Everything not listed here is open
// to any authenticated session.
var (
	CanAddProduct  = []domain.Role{domain.RoleAdmin}
	CanAddUser     = []domain.Role{domain.RoleAdmin}
	CanUpdatePrice = []domain.Role{domain.RoleAdmin, domain.RoleManager}
)

// AuthService handles authentication and user management
type AuthService struct {
	userRepo repositories.UserRepository
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repositories.UserRepository) *AuthService {
	return &AuthService{userRepo: userRepo}
}

// Login authenticates an operator
func (s *AuthService) Login(ctx context.Context, username, password string) (*domain.Session, error) {
	// 1. Find user by exact credential match
	user, err := s.userRepo.GetByCredentials(ctx, username, password)
	if err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	// 2. Build session bound to the user's role
	session := &domain.Session{
		ID:       uuid.New().String(),
		Username: user.Username,
		Role:     user.Role,
		LoginAt:  time.Now(),
	}

	log.Printf("✅ User logged in: %s [%s]", user.Username, user.Role)
	return session, nil
}

// Logout ends a session. Sessions are plain values held by the
// driver, so there is nothing to tear down beyond the audit line.
func (s *AuthService) Logout(session *domain.Session) {
	if session == nil {
		return
	}
	log.Printf("✅ User logged out: %s", session.Username)
}

// Authorize reports whether the session's role is one of the allowed
// roles. A nil session never passes.
func (s *AuthService) Authorize(session *domain.Session, allowed ...domain.Role) bool {
	return authorized(session, allowed...)
}

// AddUser registers a new operator account. ADMIN only.
func (s *AuthService) AddUser(ctx context.Context, session *domain.Session, username, password, role string) (*domain.User, error) {
	// 1. Only administrators can add users
	if !authorized(session, CanAddUser...) {
		return nil, domain.ErrPermissionDenied
	}

	// 2. Validate role against the closed set
	parsed, err := domain.ParseRole(role)
	if err != nil {
		return nil, err
	}

	// 3. Check if username already exists
	exists, err := s.userRepo.ExistsByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrUserExists
	}

	// 4. Create user
	user := &domain.User{
		Username:  username,
		Password:  password,
		Role:      parsed,
		CreatedAt: time.Now(),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	log.Printf("✅ User added: %s [%s] by %s", user.Username, user.Role, session.Username)
	return user, nil
}

// authorized is the shared role check consumed by every gated
// operation across the services.
func authorized(session *domain.Session, allowed ...domain.Role) bool {
	if session == nil {
		return false
	}
	for _, role := range allowed {
		if session.Role == role {
			return true
		}
	}
	return false
}
