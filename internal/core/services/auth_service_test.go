package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"minipos/internal/adapters/persistence/repositories"
	"minipos/internal/core/domain"
)

func newAuthFixture(t *testing.T) (*AuthService, repositories.UserRepository) {
	t.Helper()
	userRepo := repositories.NewUserRepository()
	require.NoError(t, userRepo.Create(context.Background(), &domain.User{
		Username: "admin", Password: "adminpass", Role: domain.RoleAdmin,
	}))
	require.NoError(t, userRepo.Create(context.Background(), &domain.User{
		Username: "staff", Password: "staffpass", Role: domain.RoleStaff,
	}))
	return NewAuthService(userRepo), userRepo
}

// TestLogin verifies credential matching and session construction
func TestLogin(t *testing.T) {
	ctx := context.Background()
	auth, _ := newAuthFixture(t)

	t.Run("valid credentials yield a session bound to the role", func(t *testing.T) {
		session, err := auth.Login(ctx, "admin", "adminpass")
		require.NoError(t, err)
		assert.Equal(t, "admin", session.Username)
		assert.Equal(t, domain.RoleAdmin, session.Role)
		assert.NotEmpty(t, session.ID)
	})

	t.Run("two logins get distinct session ids", func(t *testing.T) {
		a, err := auth.Login(ctx, "admin", "adminpass")
		require.NoError(t, err)
		b, err := auth.Login(ctx, "admin", "adminpass")
		require.NoError(t, err)
		assert.NotEqual(t, a.ID, b.ID)
	})

	t.Run("wrong password is rejected", func(t *testing.T) {
		_, err := auth.Login(ctx, "admin", "nope")
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("unknown user is rejected", func(t *testing.T) {
		_, err := auth.Login(ctx, "ghost", "adminpass")
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})
}

// TestAuthorize verifies the role membership check
func TestAuthorize(t *testing.T) {
	auth, _ := newAuthFixture(t)

	admin := sessionFor(domain.RoleAdmin)
	manager := sessionFor(domain.RoleManager)
	staff := sessionFor(domain.RoleStaff)

	assert.True(t, auth.Authorize(admin, CanAddProduct...))
	assert.False(t, auth.Authorize(manager, CanAddProduct...))
	assert.False(t, auth.Authorize(staff, CanAddProduct...))

	assert.True(t, auth.Authorize(admin, CanUpdatePrice...))
	assert.True(t, auth.Authorize(manager, CanUpdatePrice...))
	assert.False(t, auth.Authorize(staff, CanUpdatePrice...))

	assert.False(t, auth.Authorize(nil, CanAddProduct...), "nil session never passes")
}

// TestAddUser verifies admin gating, role validation and uniqueness
func TestAddUser(t *testing.T) {
	ctx := context.Background()

	t.Run("admin can add a user who can then log in", func(t *testing.T) {
		auth, _ := newAuthFixture(t)
		user, err := auth.AddUser(ctx, sessionFor(domain.RoleAdmin), "cashier", "till123", "STAFF")
		require.NoError(t, err)
		assert.Equal(t, domain.RoleStaff, user.Role)

		session, err := auth.Login(ctx, "cashier", "till123")
		require.NoError(t, err)
		assert.Equal(t, domain.RoleStaff, session.Role)
	})

	t.Run("non-admin roles are denied", func(t *testing.T) {
		auth, userRepo := newAuthFixture(t)
		before, err := userRepo.Count(ctx)
		require.NoError(t, err)

		for _, role := range []domain.Role{domain.RoleManager, domain.RoleStaff} {
			_, err := auth.AddUser(ctx, sessionFor(role), "intruder", "x", "STAFF")
			assert.ErrorIs(t, err, domain.ErrPermissionDenied)
		}

		after, err := userRepo.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, before, after, "denied attempts must not mutate state")
	})

	t.Run("unrecognized role strings are rejected at creation", func(t *testing.T) {
		auth, userRepo := newAuthFixture(t)
		before, _ := userRepo.Count(ctx)

		for _, role := range []string{"SUPERADMIN", "admin", "", "Staff"} {
			_, err := auth.AddUser(ctx, sessionFor(domain.RoleAdmin), "odd", "x", role)
			assert.ErrorIs(t, err, domain.ErrInvalidRole, "role %q", role)
		}

		after, _ := userRepo.Count(ctx)
		assert.Equal(t, before, after)
	})

	t.Run("duplicate username is rejected", func(t *testing.T) {
		auth, _ := newAuthFixture(t)
		_, err := auth.AddUser(ctx, sessionFor(domain.RoleAdmin), "staff", "again", "STAFF")
		assert.ErrorIs(t, err, domain.ErrUserExists)
	})
}
