package errhandler

import (
	"errors"
	"unicode"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/charmbracelet/huh"
	"github.com/hance08/coin/internal/service"
	"github.com/hance08/coin/internal/store"
	"github.com/pterm/pterm"
)

// IsCancelled reports whether err comes from the user leaving a prompt.
func IsCancelled(err error) bool {
	return errors.Is(err, terminal.InterruptErr) || errors.Is(err, huh.ErrUserAborted)
}

// HandleError prints err and returns the process exit code.
func HandleError(err error) int {
	if err == nil {
		return 0
	}

	if IsCancelled(err) {
		pterm.Warning.Println("Operation Cancelled")
		return 0
	}

	pterm.Error.Println(Capitalize(err.Error()))
	if hint := Hint(err); hint != "" {
		pterm.Info.Println(hint)
	}
	return 1
}

// Hint suggests a next step for the errors a user can fix.
func Hint(err error) string {
	switch {
	case errors.Is(err, store.ErrRecordNotFound):
		return "Run 'coin account list' or 'coin transaction list' to see what exists"
	case errors.Is(err, store.ErrAccountExists):
		return "Account names are unique, pick another name"
	case errors.Is(err, service.ErrAccountHasChildren):
		return "Delete the child accounts first"
	default:
		return ""
	}
}

func Capitalize(s string) string {
	if len(s) == 0 {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
