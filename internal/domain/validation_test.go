package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jsonDecimal(t *testing.T, raw string) *decimal.Decimal {
	t.Helper()
	var d decimal.Decimal
	require.NoError(t, json.Unmarshal([]byte(raw), &d))
	return &d
}

func TestCheckRange_ExtremeExponents(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		message string
	}{
		{name: "Huge_Exponent", raw: "1e20000000", message: "Maximum buy-in is $10,000"},
		{name: "Huge_Negative_Value", raw: "-1e20000000", message: "Minimum buy-in is $0.10"},
		{name: "Tiny_Exponent", raw: "1e-20000000", message: "Ensure that there are no more than 2 decimal places."},
	}

	for _, tt := range tests {
		t.Run("BuyIn_"+tt.name, func(t *testing.T) {
			in := validTournamentInput()
			in.BuyIn = jsonDecimal(t, tt.raw)

			start := time.Now()
			err := in.Validate(testToday)
			assert.Less(t, time.Since(start), time.Second)

			assert.Equal(t, []string{tt.message}, fieldsOf(t, err)["buy_in"])
		})
	}

	t.Run("Amount_Huge_Exponent", func(t *testing.T) {
		in := AdjustmentInput{Amount: jsonDecimal(t, "1e20000000"), TransactionType: TransactionTypeDeposit}

		start := time.Now()
		err := in.Validate()
		assert.Less(t, time.Since(start), time.Second)

		assert.Equal(t, []string{"Maximum single transaction is $4,000,000"}, fieldsOf(t, err)["amount"])
	})

	t.Run("Amount_Tiny_Exponent", func(t *testing.T) {
		in := AdjustmentInput{Amount: jsonDecimal(t, "1e-20000000"), TransactionType: TransactionTypeDeposit}

		start := time.Now()
		err := in.Validate()
		assert.Less(t, time.Since(start), time.Second)

		assert.Equal(t, []string{"Ensure that there are no more than 2 decimal places."}, fieldsOf(t, err)["amount"])
	})
}

func TestCheckRange_ScaledZeroAndBoundary(t *testing.T) {
	in := validTournamentInput()
	in.CashedFor = jsonDecimal(t, "0e-30")
	in.BuyIn = jsonDecimal(t, "10000.000")

	assert.NoError(t, in.Validate(testToday))
}

func TestDateOf_UsesUTCDay(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*60*60)
	at := time.Date(2024, 3, 16, 2, 0, 0, 0, tokyo)

	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), DateOf(at))
}
