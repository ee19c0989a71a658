package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/hance08/coin/internal/constants"
	"github.com/hance08/coin/internal/service"
	"github.com/hance08/coin/internal/store"
	"github.com/hance08/coin/internal/ui/prompts"
	"github.com/hance08/coin/internal/ui/views"
	"github.com/hance08/coin/internal/utils"
	"github.com/pterm/pterm"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

type addFlags struct {
	Account    string
	TransferTo string
	Date       string
	Comment    string
	Amount     string
}

type addRunner struct {
	svc   *service.Service
	flags *addFlags
	cmd   *cobra.Command
}

func NewAddCmd(svc *service.Service) *cobra.Command {
	flags := &addFlags{}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a new transaction",
		Long: `Add a deposit, a withdrawal or a transfer between two accounts.

Positive amounts are money in, negative amounts are money out. A transfer
records the amount on --account and the opposite amount on --transfer-to.
Without --account the command asks for the missing details interactively.

	Examples:
	# Interactive mode
	coin add

	# Withdrawal
	coin add --account Checking --comment "Coffee" --amount -4.50

	# Move 50 from Checking to Savings
	coin add --account Checking --transfer-to Savings --amount -50 --comment "Save"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &addRunner{
				svc:   svc,
				flags: flags,
				cmd:   cmd,
			}
			return runner.Run()
		},
	}
	cmd.Flags().StringVarP(&flags.Account, "account", "a", "", "Account the transaction belongs to")
	cmd.Flags().StringVarP(&flags.TransferTo, "transfer-to", "t", "", "Other account of a transfer")
	cmd.Flags().StringVarP(&flags.Date, "date", "d", "", "Transaction date (YYYY-MM-DD), default is today")
	cmd.Flags().StringVarP(&flags.Comment, "comment", "m", "", "Transaction comment")
	cmd.Flags().StringVar(&flags.Amount, "amount", "", "Signed amount (e.g. 150 or -30.50)")

	return cmd
}

func (r *addRunner) Run() error {
	var ids []int64
	var err error

	if r.cmd.Flags().Changed("account") {
		ids, err = r.flagsMode()
	} else {
		ids, err = r.interactiveMode()
	}
	if err != nil {
		return err
	}

	pterm.Success.Printf("Transaction created successfully! (ID: %d)\n", ids[0])

	return r.renderSummary(ids)
}

func (r *addRunner) flagsMode() ([]int64, error) {
	if r.flags.Amount == "" {
		return nil, fmt.Errorf("when using flags, --amount is required")
	}

	from, err := r.svc.Account.GetAccountByName(r.flags.Account)
	if err != nil {
		return nil, err
	}

	var to *store.Account
	if r.flags.TransferTo != "" {
		if to, err = r.svc.Account.GetAccountByName(r.flags.TransferTo); err != nil {
			return nil, err
		}
	}

	date := time.Now()
	if r.flags.Date != "" {
		if date, err = time.Parse(constants.DateFormat, r.flags.Date); err != nil {
			return nil, fmt.Errorf("invalid date format, use YYYY-MM-DD: %w", err)
		}
	}

	amount, err := utils.ParseAmount(r.flags.Amount)
	if err != nil {
		return nil, err
	}

	return r.record(from, to, date, r.flags.Comment, amount)
}

func (r *addRunner) interactiveMode() ([]int64, error) {
	accounts, err := r.svc.Account.GetAllAccounts()
	if err != nil {
		return nil, fmt.Errorf("failed to load accounts: %w", err)
	}

	// Step 1: Pick the account, creating the first one if needed
	var from *store.Account
	if len(accounts) == 0 {
		name, err := prompts.PromptFirstAccount()
		if err != nil {
			return nil, err
		}
		if from, err = r.svc.Account.CreateAccount(name, nil); err != nil {
			return nil, err
		}
		pterm.Success.Printf("Account '%s' created\n", from.Name)
	} else {
		from, err = prompts.PromptAccount("Account:", accounts, r.balanceLabel)
		if err != nil {
			return nil, err
		}
	}

	// Step 2: Transfer target
	var to *store.Account
	if r.flags.TransferTo != "" {
		if to, err = r.svc.Account.GetAccountByName(r.flags.TransferTo); err != nil {
			return nil, err
		}
	} else if len(accounts) > 1 {
		kind, err := prompts.PromptTransactionKind()
		if err != nil {
			return nil, err
		}
		if kind == prompts.KindTransfer {
			others, err := r.svc.Account.OtherAccounts(from.ID)
			if err != nil {
				return nil, err
			}
			if to, err = prompts.PromptAccount("Transfer to:", others, r.balanceLabel); err != nil {
				return nil, err
			}
		}
	}

	// Step 3: Date
	dateStr := r.flags.Date
	if dateStr == "" {
		if dateStr, err = prompts.PromptTransactionDate(); err != nil {
			return nil, err
		}
	}
	date, err := time.Parse(constants.DateFormat, dateStr)
	if err != nil {
		return nil, fmt.Errorf("invalid date format: %w", err)
	}

	// Step 4: Comment
	comment := r.flags.Comment
	if comment == "" {
		if comment, err = prompts.PromptComment(""); err != nil {
			return nil, err
		}
	}

	// Step 5: Amount
	amountStr := r.flags.Amount
	if amountStr == "" {
		if amountStr, err = prompts.PromptTransactionAmount(); err != nil {
			return nil, err
		}
	}
	amount, err := utils.ParseAmount(amountStr)
	if err != nil {
		return nil, err
	}

	return r.record(from, to, date, strings.TrimSpace(comment), amount)
}

func (r *addRunner) record(from, to *store.Account, date time.Time, comment string, amount decimal.Decimal) ([]int64, error) {
	if to == nil {
		id, err := r.svc.Transaction.AddTransaction(from.ID, date, comment, amount)
		if err != nil {
			return nil, err
		}
		return []int64{id}, nil
	}

	idA, idB, err := r.svc.Transaction.AddTransfer(from.ID, to.ID, date, comment, amount)
	if err != nil {
		return nil, err
	}
	return []int64{idA, idB}, nil
}

func (r *addRunner) renderSummary(ids []int64) error {
	names, err := r.svc.Account.NameMap()
	if err != nil {
		return err
	}

	entries := make([]*store.Entry, 0, len(ids))
	for _, id := range ids {
		e, err := r.svc.Transaction.GetTransaction(id)
		if err != nil {
			return err
		}
		entries = append(entries, e)
	}

	return views.RenderTransactionSummary(entries, names, currencySymbol(r.svc))
}

func (r *addRunner) balanceLabel(acc *store.Account) string {
	balance, err := r.svc.Account.Balance(acc.ID)
	if err != nil {
		return "balance unavailable"
	}
	return "Balance: " + utils.FormatCurrency(balance, currencySymbol(r.svc))
}

func currencySymbol(svc *service.Service) string {
	if svc.Config == nil {
		return constants.DefaultCurrencySymbol
	}
	return svc.Config.Display.CurrencySymbol
}
