package transaction

import (
	"strconv"

	"github.com/hance08/coin/internal/constants"
	"github.com/hance08/coin/internal/service"
	"github.com/hance08/coin/internal/store"
	"github.com/hance08/coin/internal/ui"
	"github.com/hance08/coin/internal/ui/prompts"
	"github.com/hance08/coin/internal/ui/views"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type editFlags struct {
	Field string
	Value string
}

type EditCommandRunner struct {
	svc   *service.Service
	flags *editFlags
	cmd   *cobra.Command
}

func NewEditCmd(svc *service.Service) *cobra.Command {
	flags := &editFlags{}

	cmd := &cobra.Command{
		Use:   "edit <transaction-id>",
		Short: "Edit a transaction",
		Long: `Edit one field of a transaction: date, comment, amount or reconciled.

Date, comment and amount changes of a transfer are applied to both sides,
the other side getting the opposite amount. The reconciled flag only
changes the given side. Missing --field or --value are asked for.

Example: coin transaction edit 12 --field amount --value -42.10`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &EditCommandRunner{
				svc:   svc,
				flags: flags,
				cmd:   cmd,
			}
			return runner.Run(args)
		},
	}

	cmd.Flags().StringVarP(&flags.Field, "field", "f", "", "Field to edit: date, comment, amount or reconciled")
	cmd.Flags().StringVarP(&flags.Value, "value", "v", "", "New value of the field")

	return cmd
}

func (r *EditCommandRunner) Run(args []string) error {
	txID, err := parseID(args[0])
	if err != nil {
		return err
	}

	e, err := r.svc.Transaction.GetTransaction(txID)
	if err != nil {
		return err
	}

	field, err := r.selectField()
	if err != nil {
		return err
	}

	value := r.flags.Value
	if !r.cmd.Flags().Changed("value") {
		if value, err = prompts.PromptInput(
			"New "+field.String()+":", currentValue(e, field), nil,
		); err != nil {
			return err
		}
	}

	if err := r.svc.Transaction.EditField(txID, field, value); err != nil {
		return err
	}

	pterm.Success.Printf("Transaction #%d updated successfully\n", txID)
	if e.IsTransfer() && field.Mirrored() {
		pterm.Info.Printf("The other side #%d was updated as well\n", *e.RelatedID)
	}

	updated, err := r.svc.Transaction.GetTransaction(txID)
	if err != nil {
		return err
	}
	acc, err := r.svc.Account.GetAccountByID(updated.AccountID)
	if err != nil {
		return err
	}
	if err := views.RenderTransactionDetail(updated, acc.Name, currencySymbol(r.svc)); err != nil {
		return err
	}
	ui.Separator()
	return nil
}

func (r *EditCommandRunner) selectField() (service.Field, error) {
	if r.flags.Field != "" {
		return service.ParseField(r.flags.Field)
	}

	var names []string
	for _, f := range service.Fields() {
		names = append(names, f.String())
	}

	choice, err := prompts.PromptSelect("What would you like to edit?", names, names[0])
	if err != nil {
		return 0, err
	}
	return service.ParseField(choice)
}

func currentValue(e *store.Entry, field service.Field) string {
	switch field {
	case service.FieldDate:
		return e.Date.Format(constants.DateFormat)
	case service.FieldComment:
		return e.Comment
	case service.FieldAmount:
		return e.Amount.StringFixed(constants.AmountPlaces)
	case service.FieldReconciled:
		return strconv.FormatBool(e.Reconciled)
	default:
		return ""
	}
}
