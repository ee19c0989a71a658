package views

import (
	"github.com/hance08/coin/internal/constants"
	"github.com/hance08/coin/internal/store"
	"github.com/hance08/coin/internal/utils"
	"github.com/pterm/pterm"
	"github.com/shopspring/decimal"
)

// RenderTransactionSummary shows the rows written by one add, which is one
// row for a plain transaction and both sides for a transfer.
func RenderTransactionSummary(entries []*store.Entry, accountNames map[int64]string, symbol string) error {
	if len(entries) == 0 {
		return nil
	}

	pterm.DefaultSection.Println("Transaction Summary")

	first := entries[0]
	tableData := pterm.TableData{
		{"Field", "Value"},
		{"Date", first.Date.Format(constants.DateFormat)},
		{"Comment", first.Comment},
	}
	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}

	sides := pterm.TableData{{"ID", "Account", "Type", "Amount", "Balance"}}
	sum := decimal.Zero
	for _, e := range entries {
		sides = append(sides, []string{
			formatID(e.ID),
			accountLabel(accountNames, e.AccountID),
			SideLabel(e),
			utils.FormatCurrency(e.Amount, symbol),
			utils.FormatCurrency(e.Total, symbol),
		})
		sum = sum.Add(e.Amount)
	}
	if err := pterm.DefaultTable.WithHasHeader().WithData(sides).Render(); err != nil {
		return err
	}

	if len(entries) > 1 {
		if sum.IsZero() {
			pterm.Success.Println("Transfer sides balance (total = 0)")
		} else {
			pterm.Warning.Printf("Transfer sides do not balance (total = %s)\n", sum.StringFixed(constants.AmountPlaces))
		}
	}
	return nil
}
