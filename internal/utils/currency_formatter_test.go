package utils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		amount string
		want   string
	}{
		{"0", "$0.00"},
		{"50", "$50.00"},
		{"-50", "-$50.00"},
		{"1234.5", "$1,234.50"},
		{"-1234567.89", "-$1,234,567.89"},
		{"0.999", "$1.00"},
	}

	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatCurrency(decimal.RequireFromString(tt.amount), "$"))
		})
	}
}

func TestParseAmount(t *testing.T) {
	amount, err := ParseAmount("150")
	require.NoError(t, err)
	assert.True(t, amount.Equal(decimal.NewFromInt(150)))

	amount, err = ParseAmount(" -30.5 ")
	require.NoError(t, err)
	assert.Equal(t, "-30.50", amount.StringFixed(2))

	amount, err = ParseAmount("1,234.56")
	require.NoError(t, err)
	assert.Equal(t, "1234.56", amount.StringFixed(2))

	amount, err = ParseAmount("12.500")
	require.NoError(t, err)
	assert.Equal(t, "12.50", amount.StringFixed(2))

	for _, bad := range []string{"", "abc", "1.2.3", "10.123"} {
		_, err := ParseAmount(bad)
		assert.Error(t, err, "input %q", bad)
	}
}
