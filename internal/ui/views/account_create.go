package views

import (
	"fmt"

	"github.com/hance08/coin/internal/store"
	"github.com/hance08/coin/internal/ui"
	"github.com/pterm/pterm"
)

func RenderAccountSuccess(acc *store.Account, parentName string) error {
	ui.Separator()

	if parentName == "" {
		parentName = "None"
	}

	tableData := pterm.TableData{
		{pterm.Blue("Account ID"), fmt.Sprintf("%d", acc.ID)},
		{pterm.Blue("Name"), acc.Name},
		{pterm.Blue("Parent"), parentName},
	}

	if err := pterm.DefaultTable.WithData(tableData).Render(); err != nil {
		return err
	}

	pterm.Success.Print("Account created successfully!\n")

	return nil
}
