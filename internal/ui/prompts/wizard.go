package prompts

import (
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/hance08/coin/internal/validation"
)

// PromptFirstAccount runs when the ledger has no accounts yet and asks for
// the name of the first one.
func PromptFirstAccount() (string, error) {
	name := "Checking"

	err := huh.NewInput().
		Title("Welcome to coin! There are no accounts yet, name your first one:").
		Description("You can add more later with 'coin account create'").
		Value(&name).
		Validate(validation.ValidateAccountName).
		Run()
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(name), nil
}
