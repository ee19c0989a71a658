package validation

import (
	"fmt"
	"strings"

	"github.com/hance08/coin/internal/constants"
)

// ValidateAccountName validates an account display name (without checking
// existence)
func ValidateAccountName(name string) error {
	name = strings.TrimSpace(name)

	if name == "" {
		return fmt.Errorf("account name can't be empty")
	}

	if len(name) > constants.MaxNameLen {
		return fmt.Errorf("account name too long (max %d characters)", constants.MaxNameLen)
	}

	for _, r := range name {
		if r < ' ' {
			return fmt.Errorf("account name cannot contain control characters")
		}
	}

	return nil
}
