package views

import (
	"iter"
	"strconv"

	"github.com/hance08/coin/internal/constants"
	"github.com/hance08/coin/internal/store"
	"github.com/hance08/coin/internal/ui"
	"github.com/hance08/coin/internal/utils"
	"github.com/pterm/pterm"
)

type TransactionListView struct {
	symbol string
	// names is set when rows from several accounts are listed together
	names map[int64]string
}

func NewTransactionListView(symbol string, accountNames map[int64]string) *TransactionListView {
	return &TransactionListView{symbol: symbol, names: accountNames}
}

func (v *TransactionListView) Header() []string {
	header := []string{"ID", "Date"}
	if v.names != nil {
		header = append(header, "Account")
	}
	return append(header, "Comment", "Amount", "Total", "R")
}

// Row renders one entry without colors.
func (v *TransactionListView) Row(e *store.Entry) []string {
	row := []string{formatID(e.ID), e.Date.Format(constants.DateFormat)}
	if v.names != nil {
		row = append(row, accountLabel(v.names, e.AccountID))
	}
	reconciled := ""
	if e.Reconciled {
		reconciled = "R"
	}
	return append(row,
		e.DisplayComment(),
		utils.FormatCurrency(e.Amount, v.symbol),
		utils.FormatCurrency(e.Total, v.symbol),
		reconciled,
	)
}

func (v *TransactionListView) Render(title string, entries iter.Seq2[*store.Entry, error]) error {
	tableData := pterm.TableData{v.Header()}

	for e, err := range entries {
		if err != nil {
			return err
		}

		row := v.Row(e)
		n := len(row)
		row[n-3] = ui.Money(e.Amount, v.symbol)
		row[n-1] = ui.ReconciledMark(e.Reconciled)
		if e.IsTransfer() {
			row[n-4] = pterm.Blue(row[n-4])
		}
		tableData = append(tableData, row)
	}

	count := len(tableData) - 1
	if count == 0 {
		pterm.Warning.Println("No transactions found")
		return nil
	}

	pterm.DefaultSection.Println(title)
	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}
	pterm.Info.Printf("Total: %d transactions\n", count)
	return nil
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}
