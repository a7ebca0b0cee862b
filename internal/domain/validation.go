package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// FieldErrors collects validation messages keyed by field name
type FieldErrors map[string][]string

// Add records a message for field
func (f FieldErrors) Add(field, message string) {
	f[field] = append(f[field], message)
}

// Has reports whether field already failed
func (f FieldErrors) Has(field string) bool {
	return len(f[field]) > 0
}

// Err returns nil when no field failed, a VALIDATION_ERROR otherwise
func (f FieldErrors) Err() error {
	if len(f) == 0 {
		return nil
	}
	return NewFieldValidationError(f)
}

// Structural limits checked before any arithmetic. Rescaling a decimal with an
// extreme exponent allocates a power of ten of that many digits.
const (
	maxIntegerDigits  = 10
	maxFractionDigits = 20
)

// checkRange validates precision and inclusive bounds of a monetary value
func (f FieldErrors) checkRange(field string, v decimal.Decimal, min, max decimal.Decimal, minMsg, maxMsg string) {
	if v.IsZero() {
		v = decimal.Zero
	}
	if int64(v.Exponent()) < -maxFractionDigits {
		f.Add(field, fmt.Sprintf("Ensure that there are no more than %d decimal places.", MoneyPlaces))
		return
	}
	if int64(v.Exponent())+int64(v.NumDigits()) > maxIntegerDigits {
		if v.IsNegative() {
			f.Add(field, minMsg)
		} else {
			f.Add(field, maxMsg)
		}
		return
	}
	if !v.Equal(v.Round(MoneyPlaces)) {
		f.Add(field, fmt.Sprintf("Ensure that there are no more than %d decimal places.", MoneyPlaces))
		return
	}
	if v.LessThan(min) {
		f.Add(field, minMsg)
	}
	if v.GreaterThan(max) {
		f.Add(field, maxMsg)
	}
}
