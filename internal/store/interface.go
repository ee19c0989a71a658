package store

import (
	"iter"
	"time"

	"github.com/shopspring/decimal"
)

type AccountRepository interface {
	CreateAccount(name string, parentID *int64) (int64, error)
	GetAllAccounts() ([]*Account, error)
	GetAccountByName(name string) (*Account, error)
	GetAccountByID(id int64) (*Account, error)
	GetChildAccounts(parentID int64) ([]*Account, error)
	GetAccountsExcept(id int64) ([]*Account, error)
	GetAccountBalance(accountID int64) (decimal.Decimal, error)
	RenameAccount(id int64, name string) error
	DeleteAccount(id int64) error
}

type TransactionRepository interface {
	CreateTransaction(tx Transaction) (int64, error)
	GetTransactionByID(id int64) (*Transaction, error)
	GetEntryByID(id int64) (*Entry, error)
	Entries(filter EntryFilter) iter.Seq2[*Entry, error]

	SetRelated(id, relatedID int64) error
	UpdateTransactionDate(id int64, date time.Time) error
	UpdateTransactionComment(id int64, comment string) error
	UpdateTransactionAmount(id int64, amount decimal.Decimal) error
	UpdateTransactionReconciled(id int64, reconciled bool) error
	UpdateTransactionAccount(id, accountID int64) error

	DeleteTransaction(id int64) error
	DeleteTransactionsByAccount(accountID int64) (int64, error)
}

type Repository interface {
	AccountRepository
	TransactionRepository

	// ExecTx runs fn against a transaction-scoped Repository. The unit of
	// work commits when fn returns nil and rolls back otherwise.
	ExecTx(fn func(Repository) error) error
	Close() error
}
