package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"strconv"

	"github.com/golang-migrate/migrate/v4"
	"github.com/saradorri/pokerbankroll/internal/app"
	"github.com/saradorri/pokerbankroll/internal/infrastructure/database"
)

func main() {
	var (
		configPath = flag.String("config", "./config", "Path to config directory")
		action     = flag.String("action", "up", "Migration action: up, down, steps, version")
		steps      = flag.String("n", "1", "Number of steps for the steps action, negative rolls back")
	)
	flag.Parse()

	cfg, err := app.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	m, err := database.NewMigrate(cfg.Database.MigrateURL())
	if err != nil {
		log.Fatalf("Failed to create migration instance: %v", err)
	}
	defer m.Close()

	switch *action {
	case "up":
		if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			log.Fatalf("Failed to migrate up: %v", err)
		}
		fmt.Println("Successfully migrated up")
	case "down":
		if err := m.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			log.Fatalf("Failed to migrate down: %v", err)
		}
		fmt.Println("Successfully migrated down")
	case "steps":
		n, err := strconv.Atoi(*steps)
		if err != nil || n == 0 {
			log.Fatalf("Invalid step count: %s", *steps)
		}
		if err := m.Steps(n); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			log.Fatalf("Failed to migrate %d steps: %v", n, err)
		}
		fmt.Printf("Successfully migrated %d steps\n", n)
	case "version":
		version, dirty, err := m.Version()
		if errors.Is(err, migrate.ErrNilVersion) {
			fmt.Println("No migrations applied")
			return
		}
		if err != nil {
			log.Fatalf("Failed to read version: %v", err)
		}
		fmt.Printf("Version %d (dirty: %t)\n", version, dirty)
	default:
		log.Fatalf("Unknown action: %s. Valid actions: up, down, steps, version", *action)
	}
}
