package transaction

import (
	"fmt"
	"strconv"

	"github.com/hance08/coin/internal/constants"
	"github.com/hance08/coin/internal/service"
	"github.com/spf13/cobra"
)

func NewTransactionCmd(svc *service.Service) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "transaction",
		Aliases: []string{"tx"},
		Short:   "Manage transactions",
		Long:    "Manage transactions: list, view details, edit, reconcile, move or delete.",
	}

	cmd.AddCommand(NewListCmd(svc))
	cmd.AddCommand(NewShowCmd(svc))
	cmd.AddCommand(NewEditCmd(svc))
	cmd.AddCommand(NewReconcileCmd(svc))
	cmd.AddCommand(NewMoveCmd(svc))
	cmd.AddCommand(NewDeleteCmd(svc))

	return cmd
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid transaction ID: %s", arg)
	}
	return id, nil
}

func currencySymbol(svc *service.Service) string {
	if svc.Config == nil {
		return constants.DefaultCurrencySymbol
	}
	return svc.Config.Display.CurrencySymbol
}
