package domain

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Bounds on tournament attributes
var (
	MinBuyIn     = decimal.RequireFromString("0.10")
	MaxBuyIn     = decimal.RequireFromString("10000")
	MaxCashedFor = decimal.RequireFromString("4000000")
)

const (
	MinPlaceFinished = 1
	MaxPlaceFinished = 20000
)

// Tournament is a single tournament result logged by its owner
type Tournament struct {
	ID            int64           `json:"id" gorm:"primaryKey;column:id;type:bigint;autoIncrement"`
	UserID        int64           `json:"player" gorm:"index;not null;type:bigint"`
	Date          time.Time       `json:"date" gorm:"type:date;not null"`
	BuyIn         decimal.Decimal `json:"buy_in" gorm:"type:numeric(10,2);not null"`
	CashedFor     decimal.Decimal `json:"cashed_for" gorm:"type:numeric(10,2);not null;default:0"`
	PlaceFinished int             `json:"place_finished" gorm:"not null"`
	CreatedAt     time.Time       `json:"created_at" gorm:"not null"`
	UpdatedAt     time.Time       `json:"updated_at" gorm:"not null"`
}

// TableName specifies the table name for Tournament
func (t Tournament) TableName() string {
	return "tournament_results"
}

// NetAmount is what the result contributed to the bankroll
func (t Tournament) NetAmount() decimal.Decimal {
	return t.CashedFor.Sub(t.BuyIn)
}

// IsITM reports whether the player finished in the money
func (t Tournament) IsITM() bool {
	return t.CashedFor.IsPositive()
}

// DisplayNet renders the net amount with its sign
func (t Tournament) DisplayNet() string {
	return FormatSigned(t.NetAmount())
}

func (t Tournament) String() string {
	return fmt.Sprintf("%s: %s (%s)", t.Date.Format(time.DateOnly), FormatMoney(t.BuyIn), t.DisplayNet())
}

// TournamentInput carries client supplied attributes; nil means absent
type TournamentInput struct {
	Date          *time.Time
	BuyIn         *decimal.Decimal
	CashedFor     *decimal.Decimal
	PlaceFinished *int
}

// TournamentInputOf returns the input that would recreate t
func TournamentInputOf(t Tournament) TournamentInput {
	date, buyIn, cashed, place := t.Date, t.BuyIn, t.CashedFor, t.PlaceFinished
	return TournamentInput{Date: &date, BuyIn: &buyIn, CashedFor: &cashed, PlaceFinished: &place}
}

// Merge fills absent attributes from the stored record
func (in TournamentInput) Merge(t Tournament) TournamentInput {
	base := TournamentInputOf(t)
	if in.Date != nil {
		base.Date = in.Date
	}
	if in.BuyIn != nil {
		base.BuyIn = in.BuyIn
	}
	if in.CashedFor != nil {
		base.CashedFor = in.CashedFor
	}
	if in.PlaceFinished != nil {
		base.PlaceFinished = in.PlaceFinished
	}
	return base
}

// Validate checks every attribute against its bounds; today is the current calendar day
func (in TournamentInput) Validate(today time.Time) error {
	errs := FieldErrors{}

	if in.Date == nil {
		errs.Add("date", "Date is required")
	} else if DateOf(*in.Date).After(DateOf(today)) {
		errs.Add("date", "Tournament date cannot be in the future")
	}

	if in.BuyIn == nil {
		errs.Add("buy_in", "Buy-in amount is required")
	} else {
		errs.checkRange("buy_in", *in.BuyIn, MinBuyIn, MaxBuyIn,
			"Minimum buy-in is $0.10", "Maximum buy-in is $10,000")
	}

	if in.CashedFor != nil {
		errs.checkRange("cashed_for", *in.CashedFor, decimal.Zero, MaxCashedFor,
			"Cash amount cannot be negative", "Maximum cash amount is $4,000,000")
	}

	if in.PlaceFinished == nil {
		errs.Add("place_finished", "Finish position is required")
	} else if *in.PlaceFinished < MinPlaceFinished {
		errs.Add("place_finished", "Finish position must be at least 1")
	} else if *in.PlaceFinished > MaxPlaceFinished {
		errs.Add("place_finished", "Finish position seems unusually high")
	}

	return errs.Err()
}

// Apply copies validated attributes onto t; an absent cashed_for becomes zero
func (in TournamentInput) Apply(t *Tournament) {
	t.Date = DateOf(*in.Date)
	t.BuyIn = in.BuyIn.Round(MoneyPlaces)
	t.CashedFor = decimal.Zero
	if in.CashedFor != nil {
		t.CashedFor = in.CashedFor.Round(MoneyPlaces)
	}
	t.PlaceFinished = *in.PlaceFinished
}

// ListQuery narrows an owner scoped listing; zero values mean no bound
type ListQuery struct {
	Since *time.Time
	Limit int
}

// TournamentList is a period filtered listing with its totals
type TournamentList struct {
	Period      Period
	Tournaments []*Tournament
	TotalCount  int
	TotalProfit decimal.Decimal
}

// TournamentRepository defines the interface for tournament data.
// Every read is scoped to the actor; other owners' rows are reported as absent.
type TournamentRepository interface {
	Create(ctx context.Context, t *Tournament) error
	GetByID(ctx context.Context, actor Actor, id int64) (*Tournament, error)
	GetByIDForUpdate(ctx context.Context, actor Actor, id int64) (*Tournament, error)
	List(ctx context.Context, actor Actor, q ListQuery) ([]*Tournament, error)
	Update(ctx context.Context, t *Tournament) error
	Delete(ctx context.Context, actor Actor, id int64) error
}

// TournamentUseCase defines the interface for tournament business logic
type TournamentUseCase interface {
	Create(ctx context.Context, actor Actor, in TournamentInput) (*Tournament, error)
	Get(ctx context.Context, actor Actor, id int64) (*Tournament, error)
	List(ctx context.Context, actor Actor, period string) (*TournamentList, error)
	Update(ctx context.Context, actor Actor, id int64, in TournamentInput, partial bool) (*Tournament, error)
	Delete(ctx context.Context, actor Actor, id int64) error
	Stats(ctx context.Context, actor Actor, period string) (*TournamentStats, error)
}
