package web

import (
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/saradorri/pokerbankroll/internal/domain"
	"github.com/shopspring/decimal"
)

// form holds submitted values and their errors for re-rendering
type form struct {
	Values   map[string]string
	Errors   domain.FieldErrors
	NonField []string
}

func newForm(c *gin.Context, fields ...string) *form {
	f := &form{Values: map[string]string{}, Errors: domain.FieldErrors{}}
	for _, name := range fields {
		f.Values[name] = strings.TrimSpace(c.PostForm(name))
	}
	return f
}

// Value returns the submitted value of field
func (f *form) Value(field string) string {
	return f.Values[field]
}

// FieldErrors returns the messages recorded for field
func (f *form) FieldErrors(field string) []string {
	return f.Errors[field]
}

// absorb copies field errors carried by err; it reports false for other errors
func (f *form) absorb(err error) bool {
	appErr, ok := domain.IsAppError(err)
	if !ok || appErr.Code != domain.ErrCodeValidation {
		return false
	}
	for field, messages := range appErr.Fields {
		for _, m := range messages {
			f.Errors.Add(field, m)
		}
	}
	return true
}

// merge adds errors from err for fields that have none yet
func (f *form) merge(err error) {
	appErr, ok := domain.IsAppError(err)
	if !ok {
		return
	}
	for field, messages := range appErr.Fields {
		if f.Errors.Has(field) {
			continue
		}
		for _, m := range messages {
			f.Errors.Add(field, m)
		}
	}
}

func (f *form) valid() bool {
	return len(f.Errors) == 0 && len(f.NonField) == 0
}

func (f *form) decimal(field string) *decimal.Decimal {
	raw := f.Values[field]
	if raw == "" {
		return nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		f.Errors.Add(field, "Enter a number.")
		return nil
	}
	return &d
}

func (f *form) integer(field string) *int {
	raw := f.Values[field]
	if raw == "" {
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		f.Errors.Add(field, "Enter a whole number.")
		return nil
	}
	return &n
}

func (f *form) date(field string) *time.Time {
	raw := f.Values[field]
	if raw == "" {
		return nil
	}
	d, err := time.Parse(time.DateOnly, raw)
	if err != nil {
		f.Errors.Add(field, "Enter a valid date.")
		return nil
	}
	return &d
}

func tournamentForm(c *gin.Context, today time.Time) (*form, domain.TournamentInput) {
	f := newForm(c, "date", "buy_in", "cashed_for", "place_finished")
	in := domain.TournamentInput{
		Date:          f.date("date"),
		BuyIn:         f.decimal("buy_in"),
		CashedFor:     f.decimal("cashed_for"),
		PlaceFinished: f.integer("place_finished"),
	}
	if !f.valid() {
		f.merge(in.Validate(today))
	}
	return f, in
}

func tournamentFormOf(t *domain.Tournament) *form {
	return &form{
		Values: map[string]string{
			"date":           t.Date.Format(time.DateOnly),
			"buy_in":         t.BuyIn.StringFixed(domain.MoneyPlaces),
			"cashed_for":     t.CashedFor.StringFixed(domain.MoneyPlaces),
			"place_finished": strconv.Itoa(t.PlaceFinished),
		},
		Errors: domain.FieldErrors{},
	}
}

func adjustmentForm(c *gin.Context) (*form, domain.AdjustmentInput) {
	f := newForm(c, "amount", "transaction_type", "description")
	in := domain.AdjustmentInput{
		Amount:          f.decimal("amount"),
		TransactionType: domain.TransactionType(f.Values["transaction_type"]),
		Description:     f.Values["description"],
	}
	if !f.valid() {
		f.merge(in.Validate())
	}
	return f, in
}
