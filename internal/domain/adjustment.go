package domain

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// TransactionType is the kind of a manual bankroll adjustment
type TransactionType string

const (
	TransactionTypeDeposit    TransactionType = "deposit"
	TransactionTypeWithdrawal TransactionType = "withdrawal"
	TransactionTypeCorrection TransactionType = "correction"
)

// TransactionTypes lists the accepted kinds in display order
var TransactionTypes = []TransactionType{
	TransactionTypeDeposit,
	TransactionTypeWithdrawal,
	TransactionTypeCorrection,
}

// Label returns the human readable name of the kind
func (t TransactionType) Label() string {
	switch t {
	case TransactionTypeDeposit:
		return "Deposit"
	case TransactionTypeWithdrawal:
		return "Withdrawal"
	case TransactionTypeCorrection:
		return "Correction"
	}
	return string(t)
}

// Valid reports whether t is one of the accepted kinds
func (t TransactionType) Valid() bool {
	for _, known := range TransactionTypes {
		if t == known {
			return true
		}
	}
	return false
}

// MaxAdjustmentAmount bounds a single adjustment
var MaxAdjustmentAmount = decimal.RequireFromString("4000000")

// MaxDescriptionLength bounds the free text description
const MaxDescriptionLength = 200

// Adjustment is a manual deposit, withdrawal or correction of the bankroll.
// It is immutable once stored.
type Adjustment struct {
	ID              int64           `json:"id" gorm:"primaryKey;column:id;type:bigint;autoIncrement"`
	UserID          int64           `json:"user" gorm:"index;not null;type:bigint"`
	Amount          decimal.Decimal `json:"amount" gorm:"type:numeric(10,2);not null"`
	TransactionType TransactionType `json:"transaction_type" gorm:"type:varchar(20);not null"`
	Description     string          `json:"description" gorm:"type:varchar(200);not null;default:''"`
	CreatedAt       time.Time       `json:"date" gorm:"not null"`
}

// TableName specifies the table name for Adjustment
func (a Adjustment) TableName() string {
	return "bankroll_adjustments"
}

func (a Adjustment) String() string {
	return fmt.Sprintf("%s %s", a.TransactionType, FormatMoney(a.Amount))
}

// AdjustmentInput carries client supplied attributes
type AdjustmentInput struct {
	Amount          *decimal.Decimal
	TransactionType TransactionType
	Description     string
}

// Validate checks the amount, kind and description
func (in AdjustmentInput) Validate() error {
	errs := FieldErrors{}

	if in.Amount == nil {
		errs.Add("amount", "Amount is required")
	} else if !in.Amount.IsPositive() {
		errs.Add("amount", "Amount must be greater than 0")
	} else {
		errs.checkRange("amount", *in.Amount, decimal.Zero, MaxAdjustmentAmount,
			"Amount must be greater than 0", "Maximum single transaction is $4,000,000")
	}

	if in.TransactionType == "" {
		errs.Add("transaction_type", "Transaction type is required")
	} else if !in.TransactionType.Valid() {
		names := make([]string, len(TransactionTypes))
		for i, t := range TransactionTypes {
			names[i] = string(t)
		}
		errs.Add("transaction_type", "Invalid transaction type. Must be one of: "+strings.Join(names, ", "))
	}

	if utf8.RuneCountInString(in.Description) > MaxDescriptionLength {
		errs.Add("description", fmt.Sprintf("Ensure this field has no more than %d characters.", MaxDescriptionLength))
	}

	return errs.Err()
}

// AdjustmentList is a period filtered listing of adjustments
type AdjustmentList struct {
	Period      Period
	Adjustments []*Adjustment
}

// AdjustmentRepository defines the interface for adjustment data, scoped to the actor
type AdjustmentRepository interface {
	Create(ctx context.Context, a *Adjustment) error
	GetByID(ctx context.Context, actor Actor, id int64) (*Adjustment, error)
	List(ctx context.Context, actor Actor, q ListQuery) ([]*Adjustment, error)
}

// AdjustmentUseCase defines the interface for adjustment business logic
type AdjustmentUseCase interface {
	Create(ctx context.Context, actor Actor, in AdjustmentInput) (*Adjustment, error)
	Get(ctx context.Context, actor Actor, id int64) (*Adjustment, error)
	List(ctx context.Context, actor Actor, period string) (*AdjustmentList, error)
	Summary(ctx context.Context, actor Actor, period string) (*AdjustmentTotals, error)
}
