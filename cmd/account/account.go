package account

import (
	"github.com/hance08/coin/internal/constants"
	"github.com/hance08/coin/internal/service"
	"github.com/spf13/cobra"
)

func NewAccountCmd(svc *service.Service) *cobra.Command {
	accountCmd := &cobra.Command{
		Use:     "account",
		Aliases: []string{"acc"},
		Short:   "Create, rename, delete accounts and show the account tree.",
		Long:    `Create, rename, delete accounts and show the account tree.`,
	}

	accountCmd.AddCommand(NewCreateCmd(svc))
	accountCmd.AddCommand(NewListCmd(svc))
	accountCmd.AddCommand(NewRenameCmd(svc))
	accountCmd.AddCommand(NewDeleteCmd(svc))

	return accountCmd
}

func currencySymbol(svc *service.Service) string {
	if svc.Config == nil {
		return constants.DefaultCurrencySymbol
	}
	return svc.Config.Display.CurrencySymbol
}
