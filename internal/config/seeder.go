package config

import (
	"context"
	"log"
	"time"

	"minipos/internal/adapters/persistence/repositories"
	"minipos/internal/core/domain"
)

// Seeder creates the default operator accounts
type Seeder struct {
	userRepo repositories.UserRepository
	cfg      *Config
}

// NewSeeder creates a new seeder instance
func NewSeeder(userRepo repositories.UserRepository, cfg *Config) *Seeder {
	return &Seeder{userRepo: userRepo, cfg: cfg}
}

// Run seeds the three default accounts, one per role. Accounts that
// already exist are left alone.
func (s *Seeder) Run(ctx context.Context) error {
	log.Println("🌱 Seeding default users...")

	seeds := []domain.User{
		{Username: "admin", Password: s.cfg.Seed.AdminPassword, Role: domain.RoleAdmin},
		{Username: "manager", Password: s.cfg.Seed.ManagerPassword, Role: domain.RoleManager},
		{Username: "staff", Password: s.cfg.Seed.StaffPassword, Role: domain.RoleStaff},
	}

	for _, seed := range seeds {
		exists, err := s.userRepo.ExistsByUsername(ctx, seed.Username)
		if err != nil {
			return err
		}
		if exists {
			continue
		}

		seed.CreatedAt = time.Now()
		user := seed
		if err := s.userRepo.Create(ctx, &user); err != nil {
			return err
		}
		log.Printf("✅ Seeded user: %s [%s]", user.Username, user.Role)
	}

	log.Println("✅ User seeding completed")
	return nil
}
