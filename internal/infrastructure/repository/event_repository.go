package repository

import (
	"context"
	"time"

	"github.com/saradorri/pokerbankroll/internal/domain"
	"gorm.io/gorm"
)

// BankrollEventRepository implements domain.BankrollEventRepository
type BankrollEventRepository struct {
	db *gorm.DB
}

// NewBankrollEventRepository creates a new bankroll event repository
func NewBankrollEventRepository(db *gorm.DB) domain.BankrollEventRepository {
	return &BankrollEventRepository{db: db}
}

// Create appends an event
func (r *BankrollEventRepository) Create(ctx context.Context, e *domain.BankrollEvent) error {
	if e.CreatedAt.IsZero() {
		e.CreatedAt = now()
	}
	return r.db.WithContext(ctx).Create(e).Error
}

// ListBetween retrieves the actor's events in [from, to), oldest first
func (r *BankrollEventRepository) ListBetween(ctx context.Context, actor domain.Actor, from, to time.Time) ([]*domain.BankrollEvent, error) {
	var events []*domain.BankrollEvent
	err := r.db.WithContext(ctx).
		Scopes(OwnedBy(actor)).
		Where("created_at >= ? AND created_at < ?", from, to).
		Order("created_at ASC, id ASC").
		Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}

// LastBefore retrieves the actor's newest event strictly before t
func (r *BankrollEventRepository) LastBefore(ctx context.Context, actor domain.Actor, t time.Time) (*domain.BankrollEvent, error) {
	var e domain.BankrollEvent
	query := r.db.WithContext(ctx).
		Scopes(OwnedBy(actor)).
		Where("created_at < ?", t).
		Order("created_at DESC, id DESC")
	found, err := first(query, &e)
	if err != nil || !found {
		return nil, err
	}
	return &e, nil
}
