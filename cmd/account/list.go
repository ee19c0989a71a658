package account

import (
	"fmt"

	"github.com/hance08/coin/internal/service"
	"github.com/hance08/coin/internal/store"
	"github.com/hance08/coin/internal/ui/views"
	"github.com/hance08/coin/internal/utils"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type listFlags struct {
	Balance bool
}

type ListCommandRunner struct {
	svc   *service.Service
	flags *listFlags
}

func NewListCmd(svc *service.Service) *cobra.Command {
	flags := &listFlags{}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "Show the account tree",
		Long: `Show all accounts as a tree of top-level accounts and their children,
both ordered by name. Use --balance to show each account's balance.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &ListCommandRunner{
				svc:   svc,
				flags: flags,
			}
			return runner.Run()
		},
	}

	cmd.Flags().BoolVarP(&flags.Balance, "balance", "b", false, "Show account balances")

	return cmd
}

func (r *ListCommandRunner) Run() error {
	tree, err := r.svc.Account.BuildTree()
	if err != nil {
		return fmt.Errorf("failed to get accounts: %w", err)
	}

	var label func(*store.Account) string
	if r.flags.Balance {
		label = r.balanceLabel
	}

	return views.NewAccountListView().Render(tree, label)
}

func (r *ListCommandRunner) balanceLabel(acc *store.Account) string {
	balance, err := r.svc.Account.Balance(acc.ID)
	if err != nil {
		return fmt.Sprintf("%s | %s", acc.Name, pterm.Red("?"))
	}

	text := utils.FormatCurrency(balance, currencySymbol(r.svc))
	if balance.IsNegative() {
		return fmt.Sprintf("%s | %s", acc.Name, pterm.Red(text))
	}
	return fmt.Sprintf("%s | %s", acc.Name, pterm.Green(text))
}
