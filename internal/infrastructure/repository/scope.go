package repository

import (
	"errors"
	"time"

	"github.com/saradorri/pokerbankroll/internal/domain"
	"gorm.io/gorm"
)

// OwnedBy restricts a query to the actor's rows. Every owner scoped read goes through it,
// so another owner's row is indistinguishable from a missing one.
func OwnedBy(actor domain.Actor) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("user_id = ?", actor.UserID)
	}
}

// since applies the lower bound of q to column
func since(column string, q domain.ListQuery) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if q.Since == nil {
			return db
		}
		return db.Where(column+" >= ?", *q.Since)
	}
}

func limit(q domain.ListQuery) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if q.Limit <= 0 {
			return db
		}
		return db.Limit(q.Limit)
	}
}

// first runs query into dest and maps a missing row to found=false
func first(query *gorm.DB, dest interface{}) (bool, error) {
	result := query.First(dest)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, result.Error
	}
	return true, nil
}

func now() time.Time {
	return time.Now().UTC()
}
