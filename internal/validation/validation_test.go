package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateAccountName(t *testing.T) {
	assert.NoError(t, ValidateAccountName("Checking"))
	assert.NoError(t, ValidateAccountName("  Savings  "))

	assert.Error(t, ValidateAccountName(""))
	assert.Error(t, ValidateAccountName("   "))
	assert.Error(t, ValidateAccountName("bad\tname"))
	assert.Error(t, ValidateAccountName(strings.Repeat("x", 101)))
}

func TestValidateDate(t *testing.T) {
	assert.NoError(t, ValidateDate("2023-05-01"))
	assert.Error(t, ValidateDate("2023-13-01"))
	assert.Error(t, ValidateDate("05/01/2023"))
	assert.Error(t, ValidateDate(""))
}

func TestValidateAmount(t *testing.T) {
	assert.NoError(t, ValidateAmount("-12.34"))
	assert.Error(t, ValidateAmount("12.345"))
}
