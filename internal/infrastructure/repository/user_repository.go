package repository

import (
	"context"
	"errors"

	"github.com/saradorri/pokerbankroll/internal/domain"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UserRepository implements domain.UserRepository
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) domain.UserRepository {
	return &UserRepository{db: db}
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	var user domain.User
	found, err := first(r.db.WithContext(ctx).Where("id = ?", id), &user)
	if err != nil || !found {
		return nil, err
	}
	return &user, nil
}

// GetByUsername retrieves a user by username
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	var user domain.User
	found, err := first(r.db.WithContext(ctx).Where("username = ?", username), &user)
	if err != nil || !found {
		return nil, err
	}
	return &user, nil
}

// Create creates a new user; a taken username is reported as a validation error
func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	user.CreatedAt = now()
	user.UpdatedAt = user.CreatedAt
	err := r.db.WithContext(ctx).Create(user).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.NewValidationError("username", domain.UsernameTakenMessage)
	}
	return err
}

// AdjustBankroll adds delta in a single UPDATE ... RETURNING statement
func (r *UserRepository) AdjustBankroll(ctx context.Context, id int64, delta decimal.Decimal) (*domain.User, error) {
	var user domain.User
	result := r.db.WithContext(ctx).
		Model(&user).
		Clauses(clause.Returning{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"bankroll":   gorm.Expr("bankroll + ?", delta),
			"version":    gorm.Expr("version + 1"),
			"updated_at": now(),
		})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return &user, nil
}

// SetBankroll overwrites the balance when the stored version matches
func (r *UserRepository) SetBankroll(ctx context.Context, id int64, amount decimal.Decimal, version int64) (*domain.User, error) {
	var user domain.User
	result := r.db.WithContext(ctx).
		Model(&user).
		Clauses(clause.Returning{}).
		Where("id = ? AND version = ?", id, version).
		Updates(map[string]interface{}{
			"bankroll":   amount,
			"version":    gorm.Expr("version + 1"),
			"updated_at": now(),
		})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return &user, nil
}
