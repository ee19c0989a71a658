package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestStore opens a migrated ledger in a temporary directory using the
// repository's migrations.
func newTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := NewStore(filepath.Join(t.TempDir(), "coin.db"), os.DirFS("../.."))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	require.NoError(t, err)
	return d
}

func addTx(t *testing.T, s *Store, accountID int64, day, comment, amount string) int64 {
	t.Helper()
	id, err := s.CreateTransaction(Transaction{
		AccountID: accountID,
		Date:      date(t, day),
		Comment:   comment,
		Amount:    decimal.RequireFromString(amount),
	})
	require.NoError(t, err)
	return id
}

func collect(t *testing.T, s *Store, filter EntryFilter) []*Entry {
	t.Helper()
	var out []*Entry
	for e, err := range s.Entries(filter) {
		require.NoError(t, err)
		out = append(out, e)
	}
	return out
}

func TestNewStoreCreatesSchema(t *testing.T) {
	s := newTestStore(t)

	for _, name := range []string{"account", "trans", "trans_total"} {
		var count int
		err := s.db.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE name = ?`, name).Scan(&count)
		require.NoError(t, err)
		assert.Equal(t, 1, count, "schema object %s", name)
	}
}

func TestNewStoreIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "coin.db")

	s, err := NewStore(path, os.DirFS("../.."))
	require.NoError(t, err)
	_, err = s.CreateAccount("Checking", nil)
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = NewStore(path, os.DirFS("../.."))
	require.NoError(t, err)
	defer s.Close()

	acc, err := s.GetAccountByName("Checking")
	require.NoError(t, err)
	assert.True(t, acc.IsTopLevel())
}

func TestAccounts(t *testing.T) {
	s := newTestStore(t)

	assets, err := s.CreateAccount("Assets", nil)
	require.NoError(t, err)
	savings, err := s.CreateAccount("Savings", &assets)
	require.NoError(t, err)
	checking, err := s.CreateAccount("Checking", &assets)
	require.NoError(t, err)

	_, err = s.CreateAccount("Assets", nil)
	require.ErrorIs(t, err, ErrAccountExists)

	missing := int64(999)
	_, err = s.CreateAccount("Orphan", &missing)
	require.ErrorIs(t, err, ErrConstraintViolation)

	children, err := s.GetChildAccounts(assets)
	require.NoError(t, err)
	require.Len(t, children, 2)
	assert.Equal(t, checking, children[0].ID)
	assert.Equal(t, savings, children[1].ID)
	assert.Equal(t, assets, *children[0].ParentID)

	others, err := s.GetAccountsExcept(checking)
	require.NoError(t, err)
	require.Len(t, others, 2)
	assert.Equal(t, "Assets", others[0].Name)
	assert.Equal(t, "Savings", others[1].Name)

	require.NoError(t, s.RenameAccount(savings, "Rainy Day"))
	acc, err := s.GetAccountByID(savings)
	require.NoError(t, err)
	assert.Equal(t, "Rainy Day", acc.Name)

	require.ErrorIs(t, s.RenameAccount(savings, "Checking"), ErrAccountExists)
	require.ErrorIs(t, s.RenameAccount(missing, "Nope"), ErrRecordNotFound)

	_, err = s.GetAccountByName("Nope")
	require.ErrorIs(t, err, ErrRecordNotFound)

	require.ErrorIs(t, s.DeleteAccount(assets), ErrConstraintViolation)
	require.NoError(t, s.DeleteAccount(checking))
	_, err = s.GetAccountByID(checking)
	require.ErrorIs(t, err, ErrRecordNotFound)
}

func TestCreateTransactionDefaults(t *testing.T) {
	s := newTestStore(t)
	acc, err := s.CreateAccount("Checking", nil)
	require.NoError(t, err)

	id := addTx(t, s, acc, "2023-01-01", "paycheck", "100.25")

	tx, err := s.GetTransactionByID(id)
	require.NoError(t, err)
	assert.Equal(t, acc, tx.AccountID)
	assert.Equal(t, "2023-01-01", tx.Date.Format("2006-01-02"))
	assert.Equal(t, "paycheck", tx.Comment)
	assert.Equal(t, "100.25", tx.Amount.StringFixed(2))
	assert.False(t, tx.Reconciled)
	assert.Nil(t, tx.RelatedID)

	_, err = s.CreateTransaction(Transaction{AccountID: 42, Date: date(t, "2023-01-01")})
	require.ErrorIs(t, err, ErrConstraintViolation)

	_, err = s.GetTransactionByID(999)
	require.ErrorIs(t, err, ErrRecordNotFound)
}

func TestEntriesRunningTotal(t *testing.T) {
	s := newTestStore(t)
	checking, err := s.CreateAccount("Checking", nil)
	require.NoError(t, err)
	savings, err := s.CreateAccount("Savings", nil)
	require.NoError(t, err)

	// inserted out of date order on purpose
	addTx(t, s, checking, "2023-01-03", "coffee refund", "10")
	addTx(t, s, checking, "2023-01-01", "paycheck", "100")
	addTx(t, s, savings, "2023-01-02", "interest", "5")
	addTx(t, s, checking, "2023-01-02", "groceries", "-30")

	entries := collect(t, s, EntryFilter{AccountID: &checking})
	require.Len(t, entries, 3)

	var totals []string
	for _, e := range entries {
		totals = append(totals, e.Total.StringFixed(2))
	}
	assert.Equal(t, []string{"100.00", "70.00", "80.00"}, totals)
	assert.Equal(t, "paycheck", entries[0].Comment)

	all := collect(t, s, EntryFilter{})
	require.Len(t, all, 4)
	assert.Equal(t, "interest", all[1].Comment)
	assert.Equal(t, "5.00", all[1].Total.StringFixed(2))
	assert.Equal(t, "70.00", all[2].Total.StringFixed(2))

	// same-day rows are ordered by id
	second := addTx(t, s, checking, "2023-01-01", "bonus", "1")
	entries = collect(t, s, EntryFilter{AccountID: &checking})
	require.Len(t, entries, 4)
	assert.Equal(t, second, entries[1].ID)
	assert.Equal(t, "101.00", entries[1].Total.StringFixed(2))
}

func TestEntriesFiltersKeepTotals(t *testing.T) {
	s := newTestStore(t)
	checking, err := s.CreateAccount("Checking", nil)
	require.NoError(t, err)

	addTx(t, s, checking, "2023-01-01", "Paycheck", "100")
	coffee := addTx(t, s, checking, "2023-01-02", "coffee", "-4.5")
	addTx(t, s, checking, "2023-01-03", "100%_match", "1")

	entries := collect(t, s, EntryFilter{AccountID: &checking, Comment: "COFFEE"})
	require.Len(t, entries, 1)
	assert.Equal(t, coffee, entries[0].ID)
	assert.Equal(t, "95.50", entries[0].Total.StringFixed(2))

	entries = collect(t, s, EntryFilter{Comment: "%_"})
	require.Len(t, entries, 1)
	assert.Equal(t, "100%_match", entries[0].Comment)

	require.NoError(t, s.UpdateTransactionReconciled(coffee, true))
	reconciled := true
	entries = collect(t, s, EntryFilter{Reconciled: &reconciled})
	require.Len(t, entries, 1)
	assert.True(t, entries[0].Reconciled)
}

func TestEntriesStopEarly(t *testing.T) {
	s := newTestStore(t)
	checking, err := s.CreateAccount("Checking", nil)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		addTx(t, s, checking, "2023-01-01", "x", "1")
	}

	seen := 0
	for _, err := range s.Entries(EntryFilter{}) {
		require.NoError(t, err)
		seen++
		if seen == 2 {
			break
		}
	}
	assert.Equal(t, 2, seen)

	// a fresh range re-runs the query
	assert.Len(t, collect(t, s, EntryFilter{}), 5)
}

func TestRelatedEntryAndDelete(t *testing.T) {
	s := newTestStore(t)
	checking, err := s.CreateAccount("Checking", nil)
	require.NoError(t, err)
	savings, err := s.CreateAccount("Savings", nil)
	require.NoError(t, err)

	a := addTx(t, s, checking, "2023-05-01", "move", "50")
	b := addTx(t, s, savings, "2023-05-01", "move", "-50")
	require.NoError(t, s.SetRelated(a, b))
	require.NoError(t, s.SetRelated(b, a))

	e, err := s.GetEntryByID(a)
	require.NoError(t, err)
	assert.Equal(t, "Savings", e.RelatedAccount)
	assert.Equal(t, "Transfer (Savings): move", e.DisplayComment())
	require.NotNil(t, e.RelatedID)
	assert.Equal(t, b, *e.RelatedID)

	require.ErrorIs(t, s.SetRelated(999, a), ErrRecordNotFound)
	require.ErrorIs(t, s.SetRelated(a, 999), ErrConstraintViolation)

	require.NoError(t, s.DeleteTransaction(a))
	tx, err := s.GetTransactionByID(b)
	require.NoError(t, err)
	assert.Nil(t, tx.RelatedID)
	require.ErrorIs(t, s.DeleteTransaction(a), ErrRecordNotFound)
}

func TestDeleteTransactionsByAccountRemovesMirrors(t *testing.T) {
	s := newTestStore(t)
	checking, err := s.CreateAccount("Checking", nil)
	require.NoError(t, err)
	savings, err := s.CreateAccount("Savings", nil)
	require.NoError(t, err)

	addTx(t, s, checking, "2023-05-01", "standalone", "10")
	a := addTx(t, s, checking, "2023-05-02", "move", "50")
	b := addTx(t, s, savings, "2023-05-02", "move", "-50")
	require.NoError(t, s.SetRelated(a, b))
	require.NoError(t, s.SetRelated(b, a))
	keep := addTx(t, s, savings, "2023-05-03", "interest", "1")

	n, err := s.DeleteTransactionsByAccount(checking)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	entries := collect(t, s, EntryFilter{})
	require.Len(t, entries, 1)
	assert.Equal(t, keep, entries[0].ID)

	balance, err := s.GetAccountBalance(savings)
	require.NoError(t, err)
	assert.Equal(t, "1.00", balance.StringFixed(2))
}

func TestExecTxRollsBack(t *testing.T) {
	s := newTestStore(t)
	checking, err := s.CreateAccount("Checking", nil)
	require.NoError(t, err)

	err = s.ExecTx(func(repo Repository) error {
		_, err := repo.CreateTransaction(Transaction{AccountID: checking, Date: date(t, "2023-01-01"), Amount: decimal.NewFromInt(5)})
		require.NoError(t, err)
		return repo.SetRelated(999, 1)
	})
	require.ErrorIs(t, err, ErrRecordNotFound)
	assert.Empty(t, collect(t, s, EntryFilter{}))

	err = s.ExecTx(func(repo Repository) error {
		return repo.ExecTx(func(Repository) error { return nil })
	})
	require.Error(t, err)
}
