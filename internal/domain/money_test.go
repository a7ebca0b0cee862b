package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "0", want: "$0.00"},
		{in: "1000.00", want: "$1000.00"},
		{in: "1234.56", want: "$1234.56"},
		{in: "-100", want: "-$100.00"},
		{in: "-1234.5", want: "-$1234.50"},
		{in: "999999.99", want: "$999999.99"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatMoney(decimal.RequireFromString(tt.in)))
		})
	}
}

func TestFormatSigned(t *testing.T) {
	assert.Equal(t, "+$100.00", FormatSigned(decimal.RequireFromString("100")))
	assert.Equal(t, "+$1234.56", FormatSigned(decimal.RequireFromString("1234.56")))
	assert.Equal(t, "-$100.00", FormatSigned(decimal.RequireFromString("-100")))
	assert.Equal(t, "$0.00", FormatSigned(decimal.Zero))
}

func TestUser_Display(t *testing.T) {
	user := User{Username: "testplayer", Bankroll: decimal.RequireFromString("1000.00")}

	assert.Equal(t, "$1000.00", user.DisplayBankroll())
	assert.Equal(t, "testplayer ($1000.00)", user.String())
}

func TestFormatGrouped(t *testing.T) {
	assert.Equal(t, "$1,234.56", FormatGrouped(decimal.RequireFromString("1234.56")))
	assert.Equal(t, "-$1,000.00", FormatGrouped(decimal.RequireFromString("-1000")))
}

func TestParseNegativeBalancePolicy(t *testing.T) {
	p, err := ParseNegativeBalancePolicy("")
	require.NoError(t, err)
	assert.Equal(t, NegativeBalanceAllow, p)

	p, err = ParseNegativeBalancePolicy("reject")
	require.NoError(t, err)
	assert.Equal(t, NegativeBalanceReject, p)

	_, err = ParseNegativeBalancePolicy("clamp")
	assert.Error(t, err)
}
