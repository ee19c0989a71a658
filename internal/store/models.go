package store

import (
	"fmt"
	"time"

	"github.com/hance08/coin/internal/constants"
	"github.com/shopspring/decimal"
)

type Account struct {
	ID       int64
	Name     string
	ParentID *int64
}

// IsTopLevel reports whether the account has no parent.
func (a *Account) IsTopLevel() bool {
	return a.ParentID == nil
}

type Transaction struct {
	ID         int64
	AccountID  int64
	Date       time.Time
	Comment    string
	Amount     decimal.Decimal
	RelatedID  *int64
	Reconciled bool
}

// IsTransfer reports whether the transaction is one side of a transfer pair.
func (t *Transaction) IsTransfer() bool {
	return t.RelatedID != nil
}

// Entry is a row of the trans_total view: a transaction with the running
// balance of its account and the name of the account on the other side of a
// transfer.
type Entry struct {
	Transaction
	RelatedAccount string
	Total          decimal.Decimal
}

// DisplayComment returns the comment annotated with the transfer counterpart.
func (e *Entry) DisplayComment() string {
	if !e.IsTransfer() {
		return e.Comment
	}
	return fmt.Sprintf(constants.TransferCommentFormat, e.RelatedAccount, e.Comment)
}

// EntryFilter narrows a listing. Zero value lists every transaction.
type EntryFilter struct {
	AccountID  *int64
	Comment    string
	Reconciled *bool
}
