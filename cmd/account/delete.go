package account

import (
	"fmt"

	"github.com/hance08/coin/internal/service"
	"github.com/hance08/coin/internal/ui"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type deleteFlags struct {
	Yes bool
}

type DeleteCommandRunner struct {
	svc   *service.Service
	flags *deleteFlags
}

func NewDeleteCmd(svc *service.Service) *cobra.Command {
	flags := &deleteFlags{}

	cmd := &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete an account and its transactions",
		Long: `Delete an account together with all of its transactions. For every
transfer, the other side in the other account is deleted as well.
Accounts that still have child accounts cannot be deleted. This action
cannot be undone.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &DeleteCommandRunner{
				svc:   svc,
				flags: flags,
			}
			return runner.Run(args)
		},
	}

	cmd.Flags().BoolVarP(&flags.Yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}

func (r *DeleteCommandRunner) Run(args []string) error {
	acc, err := r.svc.Account.GetAccountByName(args[0])
	if err != nil {
		return err
	}

	if !r.flags.Yes {
		pterm.Warning.Printf("About to delete account '%s' with all of its transactions\n", acc.Name)
		pterm.Warning.Println("This action cannot be undone!")

		confirmed, err := ui.ConfirmDestructive(fmt.Sprintf("Do you want to delete '%s'?", acc.Name))
		if err != nil {
			return err
		}
		if !confirmed {
			pterm.Info.Println("Deletion cancelled")
			return nil
		}
	}

	removed, err := r.svc.Account.DeleteAccount(acc.ID)
	if err != nil {
		return err
	}

	pterm.Success.Printf("Account '%s' deleted (%d transactions removed)\n", acc.Name, removed)
	ui.Separator()
	return nil
}
