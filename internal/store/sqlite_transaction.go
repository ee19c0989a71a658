package store

import (
	"database/sql"
	"errors"
	"fmt"
	"iter"
	"strings"
	"time"

	"github.com/hance08/coin/internal/constants"
	"github.com/shopspring/decimal"
)

type scanner interface {
	Scan(dest ...any) error
}

// CreateTransaction inserts a standalone, unreconciled transaction. Linking a
// transfer pair is done afterwards with SetRelated.
func (s *Store) CreateTransaction(tx Transaction) (int64, error) {
	stmt, err := s.db.Prepare(`
        INSERT INTO trans (id_account, date_trans, comment, amount, reconciled)
        VALUES (?, ?, ?, ?, 0)
        RETURNING pk_uid;
    `)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare transaction SQL: %w", err)
	}
	defer func() {
		_ = stmt.Close()
	}()

	var newID int64
	err = stmt.QueryRow(
		tx.AccountID,
		tx.Date.Format(constants.DateFormat),
		tx.Comment,
		tx.Amount.InexactFloat64(),
	).Scan(&newID)
	if err != nil {
		if isConstraint(err) {
			return 0, fmt.Errorf("failed to insert transaction (account_id: %d): %w: %v", tx.AccountID, ErrConstraintViolation, err)
		}
		return 0, fmt.Errorf("failed to insert transaction: %w", err)
	}

	return newID, nil
}

func (s *Store) GetTransactionByID(id int64) (*Transaction, error) {
	row := s.db.QueryRow(`
        SELECT pk_uid, id_account, date_trans, comment, amount, id_relate, reconciled
        FROM trans
        WHERE pk_uid = ?
    `, id)

	tx := &Transaction{}
	var date string
	var relatedID sql.NullInt64

	err := row.Scan(&tx.ID, &tx.AccountID, &date, &tx.Comment, &tx.Amount, &relatedID, &tx.Reconciled)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("transaction with ID %d not found: %w", id, ErrRecordNotFound)
		}
		return nil, fmt.Errorf("failed to query transaction: %w", err)
	}

	if tx.Date, err = parseDate(date); err != nil {
		return nil, err
	}
	if relatedID.Valid {
		tx.RelatedID = &relatedID.Int64
	}

	return tx, nil
}

const entryColumns = `pk_uid, id_account, relate_account, date_trans, comment, amount, total, reconciled, id_relate`

func (s *Store) GetEntryByID(id int64) (*Entry, error) {
	row := s.db.QueryRow("SELECT "+entryColumns+" FROM trans_total WHERE pk_uid = ?", id)

	e, err := scanEntry(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("transaction with ID %d not found: %w", id, ErrRecordNotFound)
		}
		return nil, fmt.Errorf("failed to query transaction: %w", err)
	}
	return e, nil
}

// Entries lists trans_total rows matching filter ordered by (date, id). The
// query runs each time the sequence is ranged over, so every iteration sees a
// fresh snapshot. The running total always covers the whole account; filters
// only hide rows.
func (s *Store) Entries(filter EntryFilter) iter.Seq2[*Entry, error] {
	return func(yield func(*Entry, error) bool) {
		query, args := entriesQuery(filter)

		rows, err := s.db.Query(query, args...)
		if err != nil {
			yield(nil, fmt.Errorf("failed to query transactions: %w", err))
			return
		}
		defer func() {
			_ = rows.Close()
		}()

		for rows.Next() {
			e, err := scanEntry(rows)
			if err != nil {
				yield(nil, fmt.Errorf("failed to scan transaction: %w", err))
				return
			}
			if !yield(e, nil) {
				return
			}
		}

		if err := rows.Err(); err != nil {
			yield(nil, fmt.Errorf("error iterating transactions: %w", err))
		}
	}
}

func entriesQuery(filter EntryFilter) (string, []any) {
	var (
		where []string
		args  []any
	)

	if filter.AccountID != nil {
		where = append(where, "id_account = ?")
		args = append(args, *filter.AccountID)
	}
	if filter.Comment != "" {
		where = append(where, `comment LIKE ? ESCAPE '\'`)
		args = append(args, "%"+escapeLike(filter.Comment)+"%")
	}
	if filter.Reconciled != nil {
		where = append(where, "reconciled = ?")
		args = append(args, *filter.Reconciled)
	}

	query := "SELECT " + entryColumns + " FROM trans_total"
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY date_trans, pk_uid"

	return query, args
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

func scanEntry(row scanner) (*Entry, error) {
	e := &Entry{}
	var (
		date           string
		relatedAccount sql.NullString
		relatedID      sql.NullInt64
	)

	err := row.Scan(
		&e.ID, &e.AccountID, &relatedAccount,
		&date, &e.Comment, &e.Amount,
		&e.Total, &e.Reconciled, &relatedID,
	)
	if err != nil {
		return nil, err
	}

	if e.Date, err = parseDate(date); err != nil {
		return nil, err
	}
	if relatedAccount.Valid {
		e.RelatedAccount = relatedAccount.String
	}
	if relatedID.Valid {
		e.RelatedID = &relatedID.Int64
	}

	return e, nil
}

func parseDate(s string) (time.Time, error) {
	d, err := time.Parse(constants.DateFormat, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid stored date %q: %w", s, err)
	}
	return d, nil
}

func (s *Store) SetRelated(id, relatedID int64) error {
	return s.execOne("link transaction", id, `
        UPDATE trans
        SET id_relate = ?
        WHERE pk_uid = ?
    `, relatedID, id)
}

func (s *Store) UpdateTransactionDate(id int64, date time.Time) error {
	return s.execOne("update date of transaction", id, `
        UPDATE trans
        SET date_trans = ?
        WHERE pk_uid = ?
    `, date.Format(constants.DateFormat), id)
}

func (s *Store) UpdateTransactionComment(id int64, comment string) error {
	return s.execOne("update comment of transaction", id, `
        UPDATE trans
        SET comment = ?
        WHERE pk_uid = ?
    `, comment, id)
}

func (s *Store) UpdateTransactionAmount(id int64, amount decimal.Decimal) error {
	return s.execOne("update amount of transaction", id, `
        UPDATE trans
        SET amount = ?
        WHERE pk_uid = ?
    `, amount.InexactFloat64(), id)
}

func (s *Store) UpdateTransactionReconciled(id int64, reconciled bool) error {
	return s.execOne("update reconciled flag of transaction", id, `
        UPDATE trans
        SET reconciled = ?
        WHERE pk_uid = ?
    `, reconciled, id)
}

func (s *Store) UpdateTransactionAccount(id, accountID int64) error {
	return s.execOne("move transaction", id, `
        UPDATE trans
        SET id_account = ?
        WHERE pk_uid = ?
    `, accountID, id)
}

// DeleteTransaction removes a single row. A mirror pointing at it has its
// id_relate cleared by the ON DELETE SET NULL action.
func (s *Store) DeleteTransaction(id int64) error {
	return s.execOne("delete transaction", id, `
        DELETE FROM trans
        WHERE pk_uid = ?
    `, id)
}

// DeleteTransactionsByAccount removes every transaction of the account along
// with the other side of each of its transfers, and returns the number of
// rows deleted.
func (s *Store) DeleteTransactionsByAccount(accountID int64) (int64, error) {
	result, err := s.db.Exec(`
        DELETE FROM trans
        WHERE id_account = ?
           OR pk_uid IN (
               SELECT id_relate FROM trans
               WHERE id_account = ? AND id_relate IS NOT NULL
           )
    `, accountID, accountID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete transactions of account #%d: %w", accountID, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rowsAffected, nil
}
