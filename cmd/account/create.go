package account

import (
	"github.com/hance08/coin/internal/service"
	"github.com/hance08/coin/internal/store"
	"github.com/hance08/coin/internal/ui/prompts"
	"github.com/hance08/coin/internal/ui/views"
	"github.com/spf13/cobra"
)

type createFlags struct {
	Parent string
}

// CreateCommandRunner creates one account from arguments or prompts
type CreateCommandRunner struct {
	svc   *service.Service
	flags *createFlags
}

func NewCreateCmd(svc *service.Service) *cobra.Command {
	flags := &createFlags{}

	cmd := &cobra.Command{
		Use:   "create [name]",
		Short: "Create a new account.",
		Long: `Create a new account. Accounts can be grouped under one top-level
parent account, e.g. Checking and Savings under Assets.

Without a name the command asks for the name and the parent interactively.

Example: coin account create Checking --parent Assets`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &CreateCommandRunner{
				svc:   svc,
				flags: flags,
			}
			return runner.Run(args)
		},
	}

	cmd.Flags().StringVarP(&flags.Parent, "parent", "p", "", "Name of the top-level parent account")

	return cmd
}

func (r *CreateCommandRunner) Run(args []string) error {
	var name string
	var parentID *int64
	var err error

	if len(args) == 1 {
		name = args[0]
		if r.flags.Parent != "" {
			parent, err := r.svc.Account.GetAccountByName(r.flags.Parent)
			if err != nil {
				return err
			}
			parentID = &parent.ID
		}
	} else {
		if name, parentID, err = r.interactiveMode(); err != nil {
			return err
		}
	}

	acc, err := r.svc.Account.CreateAccount(name, parentID)
	if err != nil {
		return err
	}

	parentName := ""
	if parentID != nil {
		parent, err := r.svc.Account.GetAccountByID(*parentID)
		if err != nil {
			return err
		}
		parentName = parent.Name
	}

	return views.RenderAccountSuccess(acc, parentName)
}

func (r *CreateCommandRunner) interactiveMode() (string, *int64, error) {
	// Step 1: Enter account name
	name, err := prompts.PromptAccountName("Account Name:")
	if err != nil {
		return "", nil, err
	}

	// Step 2: Select parent account
	accounts, err := r.svc.Account.GetAllAccounts()
	if err != nil {
		return "", nil, err
	}
	if !hasTopLevel(accounts) {
		return name, nil, nil
	}

	parentID, err := prompts.PromptParentAccount(accounts)
	if err != nil {
		return "", nil, err
	}
	return name, parentID, nil
}

func hasTopLevel(accounts []*store.Account) bool {
	for _, acc := range accounts {
		if acc.IsTopLevel() {
			return true
		}
	}
	return false
}
