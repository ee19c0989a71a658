package store

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

const accountColumns = "pk_uid, account_name, id_parent"

func (s *Store) CreateAccount(name string, parentID *int64) (int64, error) {
	stmt, err := s.db.Prepare(`
        INSERT INTO account (account_name, id_parent)
        VALUES (?, ?)
        RETURNING pk_uid;
    `)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare SQL: %w", err)
	}
	defer func() {
		_ = stmt.Close()
	}()

	var newID int64
	err = stmt.QueryRow(name, parentID).Scan(&newID)
	if err != nil {
		if isUniqueConstraint(err) {
			return 0, fmt.Errorf("failed to create account '%s': %w", name, ErrAccountExists)
		}
		if isConstraint(err) {
			return 0, fmt.Errorf("failed to create account '%s': %w", name, ErrConstraintViolation)
		}
		return 0, fmt.Errorf("failed to executing SQL insertion: %w", err)
	}

	return newID, nil
}

func (s *Store) GetAllAccounts() ([]*Account, error) {
	rows, err := s.db.Query(`
        SELECT ` + accountColumns + `
        FROM account
        ORDER BY account_name, pk_uid
    `)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	return s.scanAccounts(rows)
}

func (s *Store) GetAccountByName(name string) (*Account, error) {
	row := s.db.QueryRow("SELECT "+accountColumns+" FROM account WHERE account_name = ?", name)

	acc, err := scanAccount(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("account '%s' doesn't exist: %w", name, ErrRecordNotFound)
		}
		return nil, fmt.Errorf("failed to query account '%s': %w", name, err)
	}
	return acc, nil
}

func (s *Store) GetAccountByID(id int64) (*Account, error) {
	row := s.db.QueryRow("SELECT "+accountColumns+" FROM account WHERE pk_uid = ?", id)

	acc, err := scanAccount(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("account with ID %d not found: %w", id, ErrRecordNotFound)
		}
		return nil, fmt.Errorf("failed to query account with ID %d: %w", id, err)
	}
	return acc, nil
}

func (s *Store) GetChildAccounts(parentID int64) ([]*Account, error) {
	rows, err := s.db.Query(`
        SELECT `+accountColumns+`
        FROM account
        WHERE id_parent = ?
        ORDER BY account_name, pk_uid
    `, parentID)
	if err != nil {
		return nil, fmt.Errorf("failed to query child accounts: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	return s.scanAccounts(rows)
}

// GetAccountsExcept lists every account but the given one, ordered by name.
func (s *Store) GetAccountsExcept(id int64) ([]*Account, error) {
	rows, err := s.db.Query(`
        SELECT `+accountColumns+`
        FROM account
        WHERE pk_uid <> ?
        ORDER BY account_name, pk_uid
    `, id)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	return s.scanAccounts(rows)
}

func (s *Store) GetAccountBalance(accountID int64) (decimal.Decimal, error) {
	var balance sql.NullFloat64
	err := s.db.QueryRow(`
        SELECT ROUND(SUM(amount), 2)
        FROM trans
        WHERE id_account = ?
    `, accountID).Scan(&balance)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to calculate balance: %w", err)
	}

	if balance.Valid {
		return decimal.NewFromFloat(balance.Float64), nil
	}
	return decimal.Zero, nil
}

func (s *Store) RenameAccount(id int64, name string) error {
	err := s.execOne("rename account", id, `
        UPDATE account
        SET account_name = ?
        WHERE pk_uid = ?
    `, name, id)
	if errors.Is(err, ErrConstraintViolation) {
		return fmt.Errorf("failed to rename account #%d to '%s': %w", id, name, ErrAccountExists)
	}
	return err
}

// DeleteAccount removes the account row only. Transactions and child accounts
// still referencing it make the delete fail with ErrConstraintViolation.
func (s *Store) DeleteAccount(id int64) error {
	return s.execOne("delete account", id, `
        DELETE FROM account
        WHERE pk_uid = ?
    `, id)
}

func scanAccount(row *sql.Row) (*Account, error) {
	acc := &Account{}
	var parentID sql.NullInt64

	if err := row.Scan(&acc.ID, &acc.Name, &parentID); err != nil {
		return nil, err
	}

	if parentID.Valid {
		acc.ParentID = &parentID.Int64
	}
	return acc, nil
}

func (s *Store) scanAccounts(rows *sql.Rows) ([]*Account, error) {
	var accounts []*Account
	for rows.Next() {
		acc := &Account{}
		var parentID sql.NullInt64

		if err := rows.Scan(&acc.ID, &acc.Name, &parentID); err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}

		if parentID.Valid {
			acc.ParentID = &parentID.Int64
		}

		accounts = append(accounts, acc)
	}

	return accounts, rows.Err()
}
