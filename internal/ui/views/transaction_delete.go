package views

import (
	"github.com/hance08/coin/internal/constants"
	"github.com/hance08/coin/internal/store"
	"github.com/hance08/coin/internal/ui"
	"github.com/hance08/coin/internal/utils"
	"github.com/pterm/pterm"
)

func RenderTransactionDeletePreview(e *store.Entry, symbol string) error {
	pterm.Warning.Printf("About to delete transaction #%d:\n", e.ID)

	deletionInfo := pterm.TableData{
		{"Date", e.Date.Format(constants.DateFormat)},
		{"Comment", e.DisplayComment()},
		{"Amount", utils.FormatCurrency(e.Amount, symbol)},
	}
	if e.IsTransfer() {
		deletionInfo = append(deletionInfo, []string{
			"Also Deletes",
			"#" + formatID(*e.RelatedID) + " in " + e.RelatedAccount,
		})
	}

	if err := pterm.DefaultTable.WithData(deletionInfo).Render(); err != nil {
		return err
	}
	pterm.Warning.Println("This action cannot be undone!")
	return nil
}

func RenderTransactionDeleteSuccess(id int64) {
	pterm.Success.Printf("Transaction #%d deleted successfully\n", id)
	ui.Separator()
}
