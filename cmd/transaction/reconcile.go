package transaction

import (
	"github.com/hance08/coin/internal/service"
	"github.com/hance08/coin/internal/ui"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func NewReconcileCmd(svc *service.Service) *cobra.Command {
	var undo bool

	cmd := &cobra.Command{
		Use:     "reconcile <transaction-id>",
		Aliases: []string{"clear"},
		Short:   "Mark transaction as reconciled",
		Long: `Mark a transaction as reconciled against your statement. Only the
given side of a transfer is marked. Use --undo to clear the mark.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			txID, err := parseID(args[0])
			if err != nil {
				return err
			}

			if err := svc.Transaction.SetReconciled(txID, !undo); err != nil {
				return err
			}

			if undo {
				pterm.Success.Printf("Transaction #%d marked as unreconciled\n", txID)
			} else {
				pterm.Success.Printf("Transaction #%d marked as reconciled\n", txID)
			}
			ui.Separator()
			return nil
		},
	}

	cmd.Flags().BoolVar(&undo, "undo", false, "Clear the reconciled mark instead")

	return cmd
}
