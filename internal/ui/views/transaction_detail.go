package views

import (
	"github.com/hance08/coin/internal/constants"
	"github.com/hance08/coin/internal/store"
	"github.com/hance08/coin/internal/ui"
	"github.com/hance08/coin/internal/utils"
	"github.com/pterm/pterm"
)

// DetailRows lists the fields shown for a single transaction.
func DetailRows(e *store.Entry, accountName, symbol string) pterm.TableData {
	reconciled := "No"
	if e.Reconciled {
		reconciled = "Yes"
	}

	rows := pterm.TableData{
		{"Field", "Value"},
		{"ID", formatID(e.ID)},
		{"Account", accountName},
		{"Date", e.Date.Format(constants.DateFormat)},
		{"Comment", e.DisplayComment()},
		{"Type", SideLabel(e)},
		{"Amount", utils.FormatCurrency(e.Amount, symbol)},
		{"Running Total", utils.FormatCurrency(e.Total, symbol)},
		{"Reconciled", reconciled},
	}

	if e.IsTransfer() {
		rows = append(rows,
			[]string{"Other Side", "#" + formatID(*e.RelatedID)},
			[]string{"Other Account", e.RelatedAccount},
		)
	}
	return rows
}

func RenderTransactionDetail(e *store.Entry, accountName, symbol string) error {
	pterm.Println()
	ui.PrintL2Title("Transaction Info")

	return pterm.DefaultTable.
		WithHasHeader().
		WithHeaderStyle(pterm.NewStyle(pterm.FgGray)).
		WithData(DetailRows(e, accountName, symbol)).
		Render()
}
