package prompts

import (
	"time"

	"github.com/hance08/coin/internal/constants"
	"github.com/hance08/coin/internal/validation"
)

const (
	KindSingle   = "Deposit / Withdrawal"
	KindTransfer = "Transfer to another account"
)

// PromptTransactionKind asks whether to record a single entry or a transfer
func PromptTransactionKind() (string, error) {
	return PromptSelect("Choose the transaction type:", []string{KindSingle, KindTransfer}, KindSingle)
}

// PromptTransactionDate prompts for transaction date, defaulting to today
func PromptTransactionDate() (string, error) {
	return PromptDate(
		"Transaction Date (YYYY-MM-DD):",
		time.Now().Format(constants.DateFormat),
		"Press Enter for today",
		validation.ValidateDate,
	)
}

// PromptTransactionAmount prompts for a signed amount
func PromptTransactionAmount() (string, error) {
	return PromptAmount(
		"Amount:",
		"Positive for money in, negative for money out (e.g. 150 or -30.50)",
		validation.ValidateAmount,
	)
}

// PromptComment prompts for an optional comment
func PromptComment(defaultValue string) (string, error) {
	return PromptInput("Comment (optional):", defaultValue, nil)
}
