package service

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/hance08/coin/internal/store"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var errInjected = errors.New("injected write failure")

// faultyRepo wraps a real store and fails the selected write. It keeps
// wrapping the transaction-scoped repository handed out by ExecTx so faults
// land inside the unit of work.
type faultyRepo struct {
	store.Repository
	fail func(op string, id int64) bool
}

func (f *faultyRepo) ExecTx(fn func(store.Repository) error) error {
	return f.Repository.ExecTx(func(repo store.Repository) error {
		return fn(&faultyRepo{Repository: repo, fail: f.fail})
	})
}

func (f *faultyRepo) check(op string, id int64) error {
	if f.fail != nil && f.fail(op, id) {
		return errInjected
	}
	return nil
}

func (f *faultyRepo) SetRelated(id, relatedID int64) error {
	if err := f.check("SetRelated", id); err != nil {
		return err
	}
	return f.Repository.SetRelated(id, relatedID)
}

func (f *faultyRepo) CreateTransaction(tx store.Transaction) (int64, error) {
	if err := f.check("CreateTransaction", tx.AccountID); err != nil {
		return 0, err
	}
	return f.Repository.CreateTransaction(tx)
}

func (f *faultyRepo) UpdateTransactionDate(id int64, date time.Time) error {
	if err := f.check("UpdateTransactionDate", id); err != nil {
		return err
	}
	return f.Repository.UpdateTransactionDate(id, date)
}

func (f *faultyRepo) UpdateTransactionComment(id int64, comment string) error {
	if err := f.check("UpdateTransactionComment", id); err != nil {
		return err
	}
	return f.Repository.UpdateTransactionComment(id, comment)
}

func (f *faultyRepo) UpdateTransactionAmount(id int64, amount decimal.Decimal) error {
	if err := f.check("UpdateTransactionAmount", id); err != nil {
		return err
	}
	return f.Repository.UpdateTransactionAmount(id, amount)
}

func (f *faultyRepo) DeleteTransaction(id int64) error {
	if err := f.check("DeleteTransaction", id); err != nil {
		return err
	}
	return f.Repository.DeleteTransaction(id)
}

func (f *faultyRepo) DeleteAccount(id int64) error {
	if err := f.check("DeleteAccount", id); err != nil {
		return err
	}
	return f.Repository.DeleteAccount(id)
}

type fixture struct {
	store *store.Store
	repo  *faultyRepo
	svc   *Service
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	s, err := store.NewStore(filepath.Join(t.TempDir(), "coin.db"), os.DirFS("../.."))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	repo := &faultyRepo{Repository: s}
	return &fixture{
		store: s,
		repo:  repo,
		svc:   NewService(repo, nil, nil),
	}
}

// failOn makes the given write fail for the given row (or account) id.
func (f *fixture) failOn(op string, id int64) {
	f.repo.fail = func(gotOp string, gotID int64) bool {
		return gotOp == op && gotID == id
	}
}

func (f *fixture) account(t *testing.T, name string, parentID *int64) int64 {
	t.Helper()
	acc, err := f.svc.Account.CreateAccount(name, parentID)
	require.NoError(t, err)
	return acc.ID
}

func (f *fixture) tx(t *testing.T, id int64) *store.Transaction {
	t.Helper()
	tx, err := f.store.GetTransactionByID(id)
	require.NoError(t, err)
	return tx
}

func (f *fixture) count(t *testing.T) int {
	t.Helper()
	n := 0
	for _, err := range f.store.Entries(store.EntryFilter{}) {
		require.NoError(t, err)
		n++
	}
	return n
}

func day(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	require.NoError(t, err)
	return d
}

func amt(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
