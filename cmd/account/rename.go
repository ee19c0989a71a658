package account

import (
	"github.com/hance08/coin/internal/service"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func NewRenameCmd(svc *service.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "rename <name> <new-name>",
		Short: "Rename an account",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			acc, err := svc.Account.GetAccountByName(args[0])
			if err != nil {
				return err
			}

			if err := svc.Account.RenameAccount(acc.ID, args[1]); err != nil {
				return err
			}

			pterm.Success.Printf("Account '%s' renamed to '%s'\n", acc.Name, args[1])
			return nil
		},
	}
}
