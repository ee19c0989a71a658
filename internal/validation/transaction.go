package validation

import (
	"fmt"
	"strings"
	"time"

	"github.com/hance08/coin/internal/constants"
	"github.com/hance08/coin/internal/utils"
)

// ValidateDate accepts dates in YYYY-MM-DD form
func ValidateDate(s string) error {
	if _, err := time.Parse(constants.DateFormat, strings.TrimSpace(s)); err != nil {
		return fmt.Errorf("invalid date %q (use YYYY-MM-DD)", s)
	}
	return nil
}

// ValidateAmount accepts signed amounts with up to two decimals
func ValidateAmount(s string) error {
	_, err := utils.ParseAmount(s)
	return err
}
