package transaction

import (
	"github.com/hance08/coin/internal/service"
	"github.com/hance08/coin/internal/store"
	"github.com/hance08/coin/internal/ui"
	"github.com/hance08/coin/internal/ui/prompts"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type moveFlags struct {
	To string
}

type MoveCommandRunner struct {
	svc   *service.Service
	flags *moveFlags
}

func NewMoveCmd(svc *service.Service) *cobra.Command {
	flags := &moveFlags{}

	cmd := &cobra.Command{
		Use:   "move <transaction-id>",
		Short: "Move a transaction to another account",
		Long: `Move a transaction to another account. For a transfer only the given
side moves; the other side stays in its account.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &MoveCommandRunner{
				svc:   svc,
				flags: flags,
			}
			return runner.Run(args)
		},
	}

	cmd.Flags().StringVar(&flags.To, "to", "", "Name of the target account")

	return cmd
}

func (r *MoveCommandRunner) Run(args []string) error {
	txID, err := parseID(args[0])
	if err != nil {
		return err
	}

	e, err := r.svc.Transaction.GetTransaction(txID)
	if err != nil {
		return err
	}

	var target *store.Account
	if r.flags.To != "" {
		if target, err = r.svc.Account.GetAccountByName(r.flags.To); err != nil {
			return err
		}
	} else {
		others, err := r.svc.Account.OtherAccounts(e.AccountID)
		if err != nil {
			return err
		}
		if target, err = prompts.PromptAccount("Move to:", others, nil); err != nil {
			return err
		}
	}

	if target.ID == e.AccountID {
		pterm.Info.Printf("Transaction #%d is already in '%s'\n", txID, target.Name)
		return nil
	}

	if err := r.svc.Transaction.MoveTransaction(txID, target.ID); err != nil {
		return err
	}

	pterm.Success.Printf("Transaction #%d moved to '%s'\n", txID, target.Name)
	ui.Separator()
	return nil
}
