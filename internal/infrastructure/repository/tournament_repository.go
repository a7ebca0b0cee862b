package repository

import (
	"context"

	"github.com/saradorri/pokerbankroll/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TournamentRepository implements domain.TournamentRepository
type TournamentRepository struct {
	db *gorm.DB
}

// NewTournamentRepository creates a new tournament repository
func NewTournamentRepository(db *gorm.DB) domain.TournamentRepository {
	return &TournamentRepository{db: db}
}

// Create creates a new tournament result
func (r *TournamentRepository) Create(ctx context.Context, t *domain.Tournament) error {
	t.CreatedAt = now()
	t.UpdatedAt = t.CreatedAt
	return r.db.WithContext(ctx).Create(t).Error
}

// GetByID retrieves one of the actor's results
func (r *TournamentRepository) GetByID(ctx context.Context, actor domain.Actor, id int64) (*domain.Tournament, error) {
	var t domain.Tournament
	found, err := first(r.db.WithContext(ctx).Scopes(OwnedBy(actor)).Where("id = ?", id), &t)
	if err != nil || !found {
		return nil, err
	}
	return &t, nil
}

// GetByIDForUpdate retrieves one of the actor's results and locks the row
func (r *TournamentRepository) GetByIDForUpdate(ctx context.Context, actor domain.Actor, id int64) (*domain.Tournament, error) {
	var t domain.Tournament
	query := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Scopes(OwnedBy(actor)).
		Where("id = ?", id)
	found, err := first(query, &t)
	if err != nil || !found {
		return nil, err
	}
	return &t, nil
}

// List retrieves the actor's results, newest date first
func (r *TournamentRepository) List(ctx context.Context, actor domain.Actor, q domain.ListQuery) ([]*domain.Tournament, error) {
	var results []*domain.Tournament
	err := r.db.WithContext(ctx).
		Scopes(OwnedBy(actor), since("date", q), limit(q)).
		Order("date DESC, created_at DESC, id DESC").
		Find(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

// Update writes the editable columns of t, zero values included
func (r *TournamentRepository) Update(ctx context.Context, t *domain.Tournament) error {
	t.UpdatedAt = now()
	return r.db.WithContext(ctx).
		Model(t).
		Where("user_id = ?", t.UserID).
		Select("date", "buy_in", "cashed_for", "place_finished", "updated_at").
		Updates(t).Error
}

// Delete removes one of the actor's results
func (r *TournamentRepository) Delete(ctx context.Context, actor domain.Actor, id int64) error {
	result := r.db.WithContext(ctx).Scopes(OwnedBy(actor)).Where("id = ?", id).Delete(&domain.Tournament{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.NewNotFoundError("Tournament")
	}
	return nil
}
