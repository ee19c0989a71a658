package prompts

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/hance08/coin/internal/store"
	"github.com/hance08/coin/internal/validation"
)

// PromptAccount asks the user to pick one of accounts. When balanceLabel is
// set, each option shows the label it returns next to the account name.
func PromptAccount(message string, accounts []*store.Account, balanceLabel func(*store.Account) string) (*store.Account, error) {
	if len(accounts) == 0 {
		return nil, fmt.Errorf("no accounts to choose from, create one with 'coin account create'")
	}

	var options []huh.Option[int64]
	byID := make(map[int64]*store.Account, len(accounts))

	for _, acc := range accounts {
		display := acc.Name
		if balanceLabel != nil {
			display = fmt.Sprintf("%s (%s)", acc.Name, balanceLabel(acc))
		}
		byID[acc.ID] = acc
		options = append(options, huh.NewOption(display, acc.ID))
	}

	selected := accounts[0].ID

	err := huh.NewSelect[int64]().
		Title(message).
		Options(options...).
		Value(&selected).
		Height(15).
		Run()
	if err != nil {
		return nil, err
	}

	return byID[selected], nil
}

// PromptParentAccount offers the top-level accounts plus a "no parent" choice.
func PromptParentAccount(accounts []*store.Account) (*int64, error) {
	const none int64 = 0

	options := []huh.Option[int64]{huh.NewOption("(none, top-level account)", none)}
	for _, acc := range accounts {
		if acc.IsTopLevel() {
			options = append(options, huh.NewOption(acc.Name, acc.ID))
		}
	}

	selected := none

	err := huh.NewSelect[int64]().
		Title("Parent account:").
		Options(options...).
		Value(&selected).
		Height(10).
		Run()
	if err != nil {
		return nil, err
	}

	if selected == none {
		return nil, nil
	}
	return &selected, nil
}

// PromptAccountName prompts for account name with validation
func PromptAccountName(message string) (string, error) {
	return PromptInput(message, "", validation.ValidateAccountName)
}
