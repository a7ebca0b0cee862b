package domain

import (
	"time"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// MoneyPlaces is the number of fractional digits stored for every amount
const MoneyPlaces = 2

// DisplayCurrency is the currency used to render amounts
const DisplayCurrency = money.USD

var plainFormatter = money.NewFormatter(MoneyPlaces, ".", "", "$", "$1")

func cents(v decimal.Decimal) int64 {
	return v.Round(MoneyPlaces).Shift(MoneyPlaces).IntPart()
}

// FormatMoney renders an amount like "$1234.56" or "-$100.00"
func FormatMoney(v decimal.Decimal) string {
	return plainFormatter.Format(cents(v))
}

// FormatGrouped renders an amount with thousands separators, "$1,234.56", for the HTML pages
func FormatGrouped(v decimal.Decimal) string {
	return money.New(cents(v), DisplayCurrency).Display()
}

// FormatSigned renders an amount with an explicit sign, "$0.00" for zero
func FormatSigned(v decimal.Decimal) string {
	if v.IsPositive() {
		return "+" + FormatMoney(v)
	}
	return FormatMoney(v)
}

// DateOf truncates t to its UTC calendar day
func DateOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Clock returns the current time; overridden in tests
type Clock func() time.Time
