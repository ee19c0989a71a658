package transaction

import (
	"github.com/hance08/coin/internal/service"
	"github.com/hance08/coin/internal/ui"
	"github.com/hance08/coin/internal/ui/views"
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
		Use:   "delete <transaction-id>",
		Short: "Delete a transaction",
		Long: `Delete a transaction. Deleting one side of a transfer deletes the other
side too. This action cannot be undone.`,
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
	txID, err := parseID(args[0])
	if err != nil {
		return err
	}

	// Get transaction details first to show what will be deleted
	e, err := r.svc.Transaction.GetTransaction(txID)
	if err != nil {
		return err
	}

	if !r.flags.Yes {
		if err := views.RenderTransactionDeletePreview(e, currencySymbol(r.svc)); err != nil {
			return err
		}

		confirmed, err := ui.ConfirmDestructive("Do you want to delete this transaction?")
		if err != nil {
			return err
		}
		if !confirmed {
			pterm.Info.Println("Deletion cancelled")
			return nil
		}
	}

	if err := r.svc.Transaction.DeleteTransaction(txID); err != nil {
		return err
	}

	views.RenderTransactionDeleteSuccess(txID)
	return nil
}
