package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/saradorri/pokerbankroll/internal/app"
	"github.com/saradorri/pokerbankroll/internal/config"
	"github.com/saradorri/pokerbankroll/internal/domain"
	"github.com/saradorri/pokerbankroll/internal/infrastructure/auth"
	"github.com/saradorri/pokerbankroll/internal/infrastructure/database"
	"github.com/saradorri/pokerbankroll/internal/infrastructure/logger"
	"github.com/saradorri/pokerbankroll/internal/infrastructure/repository"
	"github.com/saradorri/pokerbankroll/internal/infrastructure/seeder"
	"github.com/saradorri/pokerbankroll/internal/usecase/bankroll"
)

func main() {
	configPath := flag.String("config", "./config", "Path to config directory")
	flag.Parse()

	cfg, err := app.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := database.NewDatabase(app.NewDatabaseConfig(&cfg.Database))
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	policy, err := domain.ParseNegativeBalancePolicy(cfg.Bankroll.NegativeBalance)
	if err != nil {
		log.Fatalf("Invalid bankroll config: %v", err)
	}

	l := logger.NewLogger(config.GetEnvironment(), cfg.Log.Level)
	defer l.Sync()

	ledger := bankroll.NewLedger(repository.NewTransactor(db.GetDB()), policy, time.Now, l)
	newSeeder := seeder.NewSeeder(repository.NewUserRepository(db.GetDB()), ledger, auth.NewBcryptHasher(0), l)

	log.Println("Starting database seeding...")
	if err := newSeeder.SeedUsers(context.Background()); err != nil {
		log.Fatalf("Failed to seed users: %v", err)
	}
	log.Println("Database seeding completed successfully")
}
