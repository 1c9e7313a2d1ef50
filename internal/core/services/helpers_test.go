package services

import (
	"time"

	"minipos/internal/core/domain"
)

// sessionFor builds an authenticated session for a role without
// going through the login flow.
func sessionFor(role domain.Role) *domain.Session {
	return &domain.Session{
		ID:       "test-session",
		Username: "tester",
		Role:     role,
		LoginAt:  time.Now(),
	}
}
