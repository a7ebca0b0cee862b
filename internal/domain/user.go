package domain

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// DefaultBankroll is the balance a new account starts with
var DefaultBankroll = decimal.RequireFromString("100.00")

// Signup field rules
const (
	MaxUsernameLength = 150
	MinPasswordLength = 8
	// MaxPasswordBytes is the longest input bcrypt accepts
	MaxPasswordBytes = 72

	UsernameTakenMessage = "A user with that username already exists."
)

// Actor is the authenticated identity every scoped operation runs as
type Actor struct {
	UserID   int64
	Username string
}

// User represents a poker player and their bankroll
type User struct {
	ID        int64           `json:"id" gorm:"primaryKey;column:id;type:bigint;autoIncrement"`
	Username  string          `json:"username" gorm:"uniqueIndex;not null;type:varchar(150)"`
	Password  string          `json:"-" gorm:"not null;type:varchar(128)"`
	Bankroll  decimal.Decimal `json:"bankroll" gorm:"type:numeric(12,2);not null;default:100.00"`
	Version   int64           `json:"-" gorm:"not null;default:0"`
	CreatedAt time.Time       `json:"created_at" gorm:"not null"`
	UpdatedAt time.Time       `json:"updated_at" gorm:"not null"`
}

// TableName specifies the table name for User
func (u User) TableName() string {
	return "users"
}

// DisplayBankroll renders the balance for humans
func (u User) DisplayBankroll() string {
	return FormatMoney(u.Bankroll)
}

func (u User) String() string {
	return fmt.Sprintf("%s (%s)", u.Username, u.DisplayBankroll())
}

// NegativeBalancePolicy decides whether a mutation may leave a bankroll below zero
type NegativeBalancePolicy string

const (
	NegativeBalanceAllow  NegativeBalancePolicy = "allow"
	NegativeBalanceReject NegativeBalancePolicy = "reject"
)

// ParseNegativeBalancePolicy maps a configuration value to a policy, "" meaning allow
func ParseNegativeBalancePolicy(s string) (NegativeBalancePolicy, error) {
	switch NegativeBalancePolicy(s) {
	case "", NegativeBalanceAllow:
		return NegativeBalanceAllow, nil
	case NegativeBalanceReject:
		return NegativeBalanceReject, nil
	}
	return "", fmt.Errorf("unknown negative balance policy %q (want allow or reject)", s)
}

// UserRepository defines the interface for user data.
// Bankroll writes are only issued by the bankroll ledger.
type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	Create(ctx context.Context, user *User) error
	// AdjustBankroll atomically adds delta to the balance and returns the updated user,
	// nil if the user does not exist
	AdjustBankroll(ctx context.Context, id int64, delta decimal.Decimal) (*User, error)
	// SetBankroll overwrites the balance if the stored version still equals version.
	// It returns nil when no row matched.
	SetBankroll(ctx context.Context, id int64, amount decimal.Decimal, version int64) (*User, error)
}

// UserUseCase defines the interface for user business logic
type UserUseCase interface {
	SignUp(ctx context.Context, username, password string) (*User, error)
	Authenticate(ctx context.Context, username, password string) (string, *User, error)
	GetMe(ctx context.Context, actor Actor) (*User, error)
	GetByID(ctx context.Context, actor Actor, id int64) (*User, error)
	List(ctx context.Context, actor Actor) ([]*User, error)
}
