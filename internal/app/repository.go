package app

import (
	"context"

	"github.com/saradorri/pokerbankroll/internal/config"
	"github.com/saradorri/pokerbankroll/internal/domain"
	"github.com/saradorri/pokerbankroll/internal/infrastructure/database"
	"github.com/saradorri/pokerbankroll/internal/infrastructure/repository"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// NewDatabaseConfig maps the database section onto connection settings
func NewDatabaseConfig(c *config.DatabaseConfig) *database.Config {
	return &database.Config{
		Host:            c.Host,
		Port:            c.Port,
		User:            c.User,
		Password:        c.Password,
		Name:            c.Name,
		SSLMode:         c.SSLMode,
		MaxIdleConns:    c.MaxIdleConns,
		MaxOpenConns:    c.MaxOpenConns,
		ConnMaxLifetime: c.ConnMaxLifetime,
	}
}

func (a *application) InitDatabase(lc fx.Lifecycle) (*gorm.DB, error) {
	db, err := database.NewDatabase(NewDatabaseConfig(&a.config.Database))
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return db.Close()
		},
	})
	return db.GetDB(), nil
}

func (a *application) InitRepository(db *gorm.DB) (
	domain.UserRepository,
	domain.TournamentRepository,
	domain.AdjustmentRepository,
	domain.BankrollEventRepository,
) {
	repos := repository.NewRepositories(db)
	return repos.Users, repos.Tournaments, repos.Adjustments, repos.Events
}

func (a *application) InitTransactor(db *gorm.DB) domain.Transactor {
	return repository.NewTransactor(db)
}
