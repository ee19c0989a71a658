package transaction

import (
	"fmt"

	"github.com/hance08/coin/internal/service"
	"github.com/hance08/coin/internal/store"
	"github.com/hance08/coin/internal/ui/views"
	"github.com/spf13/cobra"
)

type listFlags struct {
	Account      string
	Comment      string
	Unreconciled bool
}

type listRunner struct {
	svc   *service.Service
	flags *listFlags
}

func NewListCmd(svc *service.Service) *cobra.Command {
	flags := &listFlags{}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls", "l"},
		Short:   "List transactions with running totals",
		Long: `List transactions ordered by date with the running total of their
account. Filters only hide rows; the totals always include every
transaction of the account.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &listRunner{
				svc:   svc,
				flags: flags,
			}
			return runner.Run()
		},
	}

	cmd.Flags().StringVarP(&flags.Account, "account", "a", "", "Only show transactions of this account")
	cmd.Flags().StringVarP(&flags.Comment, "comment", "m", "", "Only show transactions whose comment contains this text")
	cmd.Flags().BoolVarP(&flags.Unreconciled, "unreconciled", "u", false, "Only show unreconciled transactions")

	return cmd
}

func (r *listRunner) Run() error {
	filter := store.EntryFilter{Comment: r.flags.Comment}
	if r.flags.Unreconciled {
		reconciled := false
		filter.Reconciled = &reconciled
	}

	var view *views.TransactionListView
	title := "All transactions"

	if r.flags.Account != "" {
		acc, err := r.svc.Account.GetAccountByName(r.flags.Account)
		if err != nil {
			return err
		}
		filter.AccountID = &acc.ID
		view = views.NewTransactionListView(currencySymbol(r.svc), nil)
		title = fmt.Sprintf("Transactions of %s", acc.Name)
	} else {
		names, err := r.svc.Account.NameMap()
		if err != nil {
			return err
		}
		view = views.NewTransactionListView(currencySymbol(r.svc), names)
	}

	return view.Render(title, r.svc.Transaction.ListForAccount(filter))
}
