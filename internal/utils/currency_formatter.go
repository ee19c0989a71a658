package utils

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/hance08/coin/internal/constants"
	"github.com/shopspring/decimal"
)

// FormatCurrency renders an amount with thousands separators and two
// decimals, e.g. "$1,234.50" and "-$30.00".
func FormatCurrency(amount decimal.Decimal, symbol string) string {
	rounded := amount.Round(constants.AmountPlaces)
	sign := ""
	if rounded.IsNegative() {
		sign = "-"
	}
	return sign + symbol + humanize.FormatFloat("#,###.##", rounded.Abs().InexactFloat64())
}

// ParseAmount parses a signed decimal amount such as "150", "-30.5" or
// "1,234.56". More than two fraction digits is an error.
func ParseAmount(amountStr string) (decimal.Decimal, error) {
	cleaned := strings.ReplaceAll(strings.TrimSpace(amountStr), ",", "")
	if cleaned == "" {
		return decimal.Zero, fmt.Errorf("amount is required")
	}

	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount: %s", amountStr)
	}

	if !amount.Equal(amount.Round(constants.AmountPlaces)) {
		return decimal.Zero, fmt.Errorf("invalid amount: %s (at most %d decimal places)", amountStr, constants.AmountPlaces)
	}

	return amount, nil
}
