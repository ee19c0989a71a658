package service

import (
	"fmt"
	"iter"
	"time"

	"github.com/hance08/coin/internal/constants"
	"github.com/hance08/coin/internal/store"
	"github.com/pterm/pterm"
	"github.com/shopspring/decimal"
)

type TransactionService struct {
	repo   store.Repository
	logger *pterm.Logger
}

func NewTransactionService(repo store.Repository, logger *pterm.Logger) *TransactionService {
	if logger == nil {
		logger = pterm.DefaultLogger.WithLevel(pterm.LogLevelDisabled)
	}
	return &TransactionService{repo: repo, logger: logger}
}

// AddTransaction inserts a standalone, unreconciled transaction
func (ts *TransactionService) AddTransaction(accountID int64, date time.Time, comment string, amount decimal.Decimal) (int64, error) {
	if err := checkAmount(amount); err != nil {
		return 0, err
	}

	id, err := ts.repo.CreateTransaction(store.Transaction{
		AccountID: accountID,
		Date:      date,
		Comment:   comment,
		Amount:    amount,
	})
	if err != nil {
		return 0, persistErr("add transaction", err)
	}

	ts.logger.Debug("transaction added", ts.logger.Args("id", id, "account", accountID, "amount", amount.String()))
	return id, nil
}

// AddTransfer records amount on fromID and -amount on toID and links the two
// rows to each other. Either all four writes are kept or none.
func (ts *TransactionService) AddTransfer(fromID, toID int64, date time.Time, comment string, amount decimal.Decimal) (int64, int64, error) {
	if fromID == toID {
		return 0, 0, ErrSameAccount
	}
	if err := checkAmount(amount); err != nil {
		return 0, 0, err
	}

	var idA, idB int64

	err := ts.repo.ExecTx(func(repo store.Repository) error {
		var err error

		idA, err = repo.CreateTransaction(store.Transaction{
			AccountID: fromID,
			Date:      date,
			Comment:   comment,
			Amount:    amount,
		})
		if err != nil {
			return fmt.Errorf("first side: %w", err)
		}

		idB, err = repo.CreateTransaction(store.Transaction{
			AccountID: toID,
			Date:      date,
			Comment:   comment,
			Amount:    amount.Neg(),
		})
		if err != nil {
			return fmt.Errorf("second side: %w", err)
		}

		if err := repo.SetRelated(idA, idB); err != nil {
			return err
		}
		return repo.SetRelated(idB, idA)
	})
	if err != nil {
		ts.logger.Warn("transfer rolled back", ts.logger.Args("from", fromID, "to", toID, "error", err))
		return 0, 0, persistErr("add transfer", err)
	}

	ts.logger.Debug("transfer added", ts.logger.Args("from", idA, "to", idB, "amount", amount.String()))
	return idA, idB, nil
}

// SetDate changes the date of a transaction and of its mirror.
func (ts *TransactionService) SetDate(id int64, date time.Time) error {
	return ts.updatePair("set date", id, func(repo store.Repository, txID int64, _ bool) error {
		return repo.UpdateTransactionDate(txID, date)
	})
}

// SetComment changes the comment of a transaction and of its mirror.
func (ts *TransactionService) SetComment(id int64, comment string) error {
	return ts.updatePair("set comment", id, func(repo store.Repository, txID int64, _ bool) error {
		return repo.UpdateTransactionComment(txID, comment)
	})
}

// SetAmount changes the amount of a transaction; its mirror gets the negated
// amount.
func (ts *TransactionService) SetAmount(id int64, amount decimal.Decimal) error {
	if err := checkAmount(amount); err != nil {
		return err
	}
	return ts.updatePair("set amount", id, func(repo store.Repository, txID int64, mirror bool) error {
		if mirror {
			return repo.UpdateTransactionAmount(txID, amount.Neg())
		}
		return repo.UpdateTransactionAmount(txID, amount)
	})
}

// SetReconciled flags this side only; reconciliation is never mirrored.
func (ts *TransactionService) SetReconciled(id int64, reconciled bool) error {
	if err := ts.repo.UpdateTransactionReconciled(id, reconciled); err != nil {
		return persistErr("set reconciled", err)
	}
	ts.logger.Debug("reconciled flag set", ts.logger.Args("id", id, "reconciled", reconciled))
	return nil
}

// MoveTransaction reassigns this side only; a transfer mirror stays where it
// is.
func (ts *TransactionService) MoveTransaction(id, accountID int64) error {
	if err := ts.repo.UpdateTransactionAccount(id, accountID); err != nil {
		return persistErr("move transaction", err)
	}
	ts.logger.Debug("transaction moved", ts.logger.Args("id", id, "account", accountID))
	return nil
}

// DeleteTransaction removes the transaction and its mirror together.
func (ts *TransactionService) DeleteTransaction(id int64) error {
	err := ts.repo.ExecTx(func(repo store.Repository) error {
		tx, err := repo.GetTransactionByID(id)
		if err != nil {
			return err
		}

		if err := repo.DeleteTransaction(tx.ID); err != nil {
			return err
		}
		if tx.RelatedID != nil {
			return repo.DeleteTransaction(*tx.RelatedID)
		}
		return nil
	})
	if err != nil {
		ts.logger.Warn("delete rolled back", ts.logger.Args("id", id, "error", err))
		return persistErr("delete transaction", err)
	}

	ts.logger.Debug("transaction deleted", ts.logger.Args("id", id))
	return nil
}

// GetTransaction returns one transaction with its running total and
// transfer counterpart.
func (ts *TransactionService) GetTransaction(id int64) (*store.Entry, error) {
	e, err := ts.repo.GetEntryByID(id)
	if err != nil {
		return nil, persistErr("get transaction", err)
	}
	return e, nil
}

// ListForAccount yields the transactions matching filter ordered by (date,
// id), each with its running total. A nil filter.AccountID lists every
// account. The store is queried again on every range over the result.
func (ts *TransactionService) ListForAccount(filter store.EntryFilter) iter.Seq2[*store.Entry, error] {
	return func(yield func(*store.Entry, error) bool) {
		for e, err := range ts.repo.Entries(filter) {
			if err != nil {
				yield(nil, persistErr("list transactions", err))
				return
			}
			if !yield(e, nil) {
				return
			}
		}
	}
}

// updatePair applies the same edit to a transaction and, when it is part of
// a transfer, to its mirror, inside one unit of work.
func (ts *TransactionService) updatePair(op string, id int64, apply func(repo store.Repository, txID int64, mirror bool) error) error {
	err := ts.repo.ExecTx(func(repo store.Repository) error {
		tx, err := repo.GetTransactionByID(id)
		if err != nil {
			return err
		}

		if err := apply(repo, tx.ID, false); err != nil {
			return err
		}
		if tx.RelatedID != nil {
			if err := apply(repo, *tx.RelatedID, true); err != nil {
				return fmt.Errorf("mirror: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		ts.logger.Warn("edit rolled back", ts.logger.Args("op", op, "id", id, "error", err))
		return persistErr(op, err)
	}

	ts.logger.Debug("transaction edited", ts.logger.Args("op", op, "id", id))
	return nil
}

func checkAmount(amount decimal.Decimal) error {
	if !amount.Equal(amount.Round(constants.AmountPlaces)) {
		return fmt.Errorf("%w: %s has more than %d decimal places", ErrInvalidAmount, amount.String(), constants.AmountPlaces)
	}
	return nil
}
