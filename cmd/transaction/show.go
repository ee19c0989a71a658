package transaction

import (
	"github.com/hance08/coin/internal/service"
	"github.com/hance08/coin/internal/ui/views"
	"github.com/spf13/cobra"
)

type ShowCommandRunner struct {
	svc *service.Service
}

func NewShowCmd(svc *service.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "show <transaction-id>",
		Short: "Show transaction details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &ShowCommandRunner{
				svc: svc,
			}
			return runner.Run(args)
		},
	}
}

func (r *ShowCommandRunner) Run(args []string) error {
	txID, err := parseID(args[0])
	if err != nil {
		return err
	}

	e, err := r.svc.Transaction.GetTransaction(txID)
	if err != nil {
		return err
	}

	acc, err := r.svc.Account.GetAccountByID(e.AccountID)
	if err != nil {
		return err
	}

	return views.RenderTransactionDetail(e, acc.Name, currencySymbol(r.svc))
}
