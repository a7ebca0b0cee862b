package repository

import (
	"context"

	"github.com/saradorri/pokerbankroll/internal/domain"
	"gorm.io/gorm"
)

// NewRepositories binds every repository to db, which may be a transaction
func NewRepositories(db *gorm.DB) domain.Repositories {
	return domain.Repositories{
		Users:       NewUserRepository(db),
		Tournaments: NewTournamentRepository(db),
		Adjustments: NewAdjustmentRepository(db),
		Events:      NewBankrollEventRepository(db),
	}
}

// Transactor implements domain.Transactor on gorm transactions
type Transactor struct {
	db *gorm.DB
}

// NewTransactor creates a new transactor
func NewTransactor(db *gorm.DB) domain.Transactor {
	return &Transactor{db: db}
}

// WithinTransaction runs fn with repositories bound to one transaction
func (t *Transactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context, repos domain.Repositories) error) error {
	return t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(ctx, NewRepositories(tx))
	})
}
