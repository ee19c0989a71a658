package ui

import (
	"fmt"

	"github.com/hance08/coin/internal/utils"
	"github.com/pterm/pterm"
	"github.com/shopspring/decimal"
)

func PrintL1Title(format string, a ...interface{}) {
	style := pterm.NewStyle(pterm.BgCyan, pterm.FgBlack, pterm.Bold)

	text := fmt.Sprintf(format, a...)

	paddedText := fmt.Sprintf(" %s   ", text)

	style.Println(paddedText)
}

func PrintL2Title(format string, a ...interface{}) {
	style := pterm.NewStyle(pterm.FgCyan, pterm.Bold)

	text := fmt.Sprintf(format, a...)

	paddedText := fmt.Sprintf("# %s   ", text)

	style.Println(paddedText)
}

// Separator prints a green separator line to the console.
func Separator() {
	pterm.Println(pterm.Green("----------------------------------------"))
}

// Money formats an amount in red when negative and green otherwise.
func Money(amount decimal.Decimal, symbol string) string {
	text := utils.FormatCurrency(amount, symbol)
	if amount.IsNegative() {
		return pterm.Red(text)
	}
	return pterm.Green(text)
}

// ReconciledMark is the short reconciled column value used in tables.
func ReconciledMark(reconciled bool) string {
	if reconciled {
		return pterm.Green("R")
	}
	return pterm.Gray("-")
}
