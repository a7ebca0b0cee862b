package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// EventSource names the lifecycle event that moved a bankroll
type EventSource string

const (
	EventSourceOpening           EventSource = "opening"
	EventSourceTournamentCreated EventSource = "tournament_created"
	EventSourceTournamentUpdated EventSource = "tournament_updated"
	EventSourceTournamentDeleted EventSource = "tournament_deleted"
	EventSourceDeposit           EventSource = "deposit"
	EventSourceWithdrawal        EventSource = "withdrawal"
	EventSourceCorrection        EventSource = "correction"
)

// BankrollEvent is the append-only audit row written with every balance change
type BankrollEvent struct {
	ID            int64           `json:"id" gorm:"primaryKey;column:id;type:bigint;autoIncrement"`
	UserID        int64           `json:"user" gorm:"index;not null;type:bigint"`
	Source        EventSource     `json:"source" gorm:"type:varchar(32);not null"`
	ReferenceID   *int64          `json:"reference_id,omitempty" gorm:"type:bigint"`
	Delta         decimal.Decimal `json:"delta" gorm:"type:numeric(14,2);not null"`
	BalanceBefore decimal.Decimal `json:"balance_before" gorm:"type:numeric(14,2);not null"`
	BalanceAfter  decimal.Decimal `json:"balance_after" gorm:"type:numeric(14,2);not null"`
	CreatedAt     time.Time       `json:"created_at" gorm:"not null"`
}

// TableName specifies the table name for BankrollEvent
func (e BankrollEvent) TableName() string {
	return "bankroll_events"
}

// BankrollEventRepository defines the interface for the bankroll audit trail
type BankrollEventRepository interface {
	Create(ctx context.Context, e *BankrollEvent) error
	// ListBetween returns events with from <= created_at < to, oldest first
	ListBetween(ctx context.Context, actor Actor, from, to time.Time) ([]*BankrollEvent, error)
	// LastBefore returns the newest event strictly before t, nil if none
	LastBefore(ctx context.Context, actor Actor, t time.Time) (*BankrollEvent, error)
}

// Repositories groups the repositories bound to one unit of work
type Repositories struct {
	Users       UserRepository
	Tournaments TournamentRepository
	Adjustments AdjustmentRepository
	Events      BankrollEventRepository
}

// Transactor runs fn inside a single datastore transaction.
// The transaction commits when fn returns nil and rolls back otherwise.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context, repos Repositories) error) error
}

// BankrollLedger is the only component allowed to change a bankroll.
// Each method persists the record, the balance and the audit event atomically.
type BankrollLedger interface {
	OpenAccount(ctx context.Context, user *User) error
	RecordTournament(ctx context.Context, actor Actor, in TournamentInput) (*Tournament, error)
	ReviseTournament(ctx context.Context, actor Actor, id int64, in TournamentInput, partial bool) (*Tournament, error)
	RemoveTournament(ctx context.Context, actor Actor, id int64) error
	ApplyAdjustment(ctx context.Context, actor Actor, in AdjustmentInput) (*Adjustment, error)
}
