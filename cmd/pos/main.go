package main

import (
	"context"
	"log"
	"os"

	"minipos/internal/adapters/persistence/repositories"
	"minipos/internal/adapters/terminal"
	"minipos/internal/config"
	"minipos/internal/core/services"
	"minipos/internal/pkg/calendar"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load configuration: %v", err)
	}

	cal := calendar.New(cfg.Timezone)

	// In-memory stores; all state is void on process exit
	userRepo := repositories.NewUserRepository()
	productRepo := repositories.NewProductRepository()
	txRepo := repositories.NewTransactionRepository()

	// Seed default operator accounts
	seeder := config.NewSeeder(userRepo, cfg)
	if err := seeder.Run(context.Background()); err != nil {
		log.Fatalf("❌ Failed to seed users: %v", err)
	}

	// Wire services
	authService := services.NewAuthService(userRepo)
	catalogService := services.NewCatalogService(productRepo)
	salesService := services.NewSalesService(productRepo, txRepo, cal)

	// Scheduled revenue summary (optional)
	if cfg.Report.Enabled {
		reportService := services.NewReportService(salesService, cal, cfg.Report.Schedule)
		if err := reportService.Start(); err != nil {
			log.Fatalf("❌ Failed to start report service: %v", err)
		}
		defer reportService.Stop()
	}

	// Run the interactive terminal until the operator exits
	term := terminal.New(cfg.AppName, authService, catalogService, salesService, cal, os.Stdin, os.Stdout)
	log.Printf("🚀 %s started", cfg.AppName)
	if err := term.Run(context.Background()); err != nil {
		log.Fatalf("❌ Terminal error: %v", err)
	}
	log.Println("✅ Bye")
}
