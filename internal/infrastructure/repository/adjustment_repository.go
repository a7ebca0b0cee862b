package repository

import (
	"context"

	"github.com/saradorri/pokerbankroll/internal/domain"
	"gorm.io/gorm"
)

// AdjustmentRepository implements domain.AdjustmentRepository
type AdjustmentRepository struct {
	db *gorm.DB
}

// NewAdjustmentRepository creates a new adjustment repository
func NewAdjustmentRepository(db *gorm.DB) domain.AdjustmentRepository {
	return &AdjustmentRepository{db: db}
}

// Create creates a new adjustment
func (r *AdjustmentRepository) Create(ctx context.Context, a *domain.Adjustment) error {
	a.CreatedAt = now()
	return r.db.WithContext(ctx).Create(a).Error
}

// GetByID retrieves one of the actor's adjustments
func (r *AdjustmentRepository) GetByID(ctx context.Context, actor domain.Actor, id int64) (*domain.Adjustment, error) {
	var a domain.Adjustment
	found, err := first(r.db.WithContext(ctx).Scopes(OwnedBy(actor)).Where("id = ?", id), &a)
	if err != nil || !found {
		return nil, err
	}
	return &a, nil
}

// List retrieves the actor's adjustments, newest first
func (r *AdjustmentRepository) List(ctx context.Context, actor domain.Actor, q domain.ListQuery) ([]*domain.Adjustment, error) {
	var adjustments []*domain.Adjustment
	err := r.db.WithContext(ctx).
		Scopes(OwnedBy(actor), since("created_at", q), limit(q)).
		Order("created_at DESC, id DESC").
		Find(&adjustments).Error
	if err != nil {
		return nil, err
	}
	return adjustments, nil
}
