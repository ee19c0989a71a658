package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hance08/coin/internal/service"
	"github.com/hance08/coin/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cli struct {
	cfgPath string
	dbPath  string
}

func newCLI(t *testing.T) *cli {
	t.Helper()

	dir := t.TempDir()
	c := &cli{
		cfgPath: filepath.Join(dir, "config.yaml"),
		dbPath:  filepath.Join(dir, "coin.db"),
	}

	yaml := "database:\n  path: " + c.dbPath + "\ndisplay:\n  currency_symbol: \"€\"\nlog:\n  level: disabled\n"
	require.NoError(t, os.WriteFile(c.cfgPath, []byte(yaml), 0o644))
	return c
}

func (c *cli) run(args ...string) error {
	rootCmd, cleanup := NewRootCmd(os.DirFS(".."))
	defer cleanup()

	rootCmd.SetArgs(append([]string{"--config", c.cfgPath}, args...))
	return rootCmd.Execute()
}

func (c *cli) store(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.NewStore(c.dbPath, os.DirFS(".."))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestInitConfig(t *testing.T) {
	c := newCLI(t)

	cfg, err := initConfig(c.cfgPath)
	require.NoError(t, err)
	assert.Equal(t, c.dbPath, cfg.Database.Path)
	assert.Equal(t, "€", cfg.Display.CurrencySymbol)
	assert.Equal(t, "disabled", cfg.Log.Level)
	assert.Equal(t, c.cfgPath, cfg.ConfigPath)

	t.Setenv("COIN_LOG_LEVEL", "debug")
	t.Setenv("COIN_DISPLAY_CURRENCY_SYMBOL", "£")
	cfg, err = initConfig(c.cfgPath)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "£", cfg.Display.CurrencySymbol)

	_, err = initConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestInitConfigRejectsInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log:\n  level: loud\n"), 0o644))

	_, err := initConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Log.Level")
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, loadDotEnv(filepath.Join(dir, ".env")))

	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("COIN_TEST_DOTENV=loaded\n"), 0o644))
	t.Cleanup(func() { _ = os.Unsetenv("COIN_TEST_DOTENV") })

	require.NoError(t, loadDotEnv(path))
	assert.Equal(t, "loaded", os.Getenv("COIN_TEST_DOTENV"))
}

func TestInitConfigDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{}\n"), 0o644))

	cfg, err := initConfig(path)
	require.NoError(t, err)
	assert.Empty(t, cfg.Database.Path)
	assert.Equal(t, "$", cfg.Display.CurrencySymbol)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLedgerWorkflow(t *testing.T) {
	c := newCLI(t)

	require.NoError(t, c.run("account", "create", "Assets"))
	require.NoError(t, c.run("account", "create", "Checking", "--parent", "Assets"))
	require.NoError(t, c.run("account", "create", "Savings", "--parent", "Assets"))
	require.NoError(t, c.run("account", "create", "Cash"))
	require.NoError(t, c.run("account", "list", "--balance"))

	require.NoError(t, c.run("add", "--account", "Checking", "--date", "2023-01-01", "--comment", "paycheck", "--amount", "1,000"))
	require.NoError(t, c.run("add", "--account", "Checking", "--transfer-to", "Savings", "--date", "2023-05-01", "--comment", "move", "--amount=-50"))
	require.NoError(t, c.run("transaction", "list"))
	require.NoError(t, c.run("transaction", "list", "--account", "Checking", "--unreconciled"))
	require.NoError(t, c.run("transaction", "show", "2"))
	require.NoError(t, c.run("info"))

	s := c.store(t)
	checking, err := s.GetAccountByName("Checking")
	require.NoError(t, err)
	savings, err := s.GetAccountByName("Savings")
	require.NoError(t, err)

	balance, err := s.GetAccountBalance(checking.ID)
	require.NoError(t, err)
	assert.Equal(t, "950.00", balance.StringFixed(2))
	balance, err = s.GetAccountBalance(savings.ID)
	require.NoError(t, err)
	assert.Equal(t, "50.00", balance.StringFixed(2))

	require.NoError(t, c.run("transaction", "edit", "2", "--field", "amount", "--value=-60"))
	require.NoError(t, c.run("transaction", "edit", "3", "--field", "comment", "--value", "savings plan"))
	require.NoError(t, c.run("transaction", "reconcile", "2"))

	b, err := s.GetTransactionByID(3)
	require.NoError(t, err)
	assert.Equal(t, "60.00", b.Amount.StringFixed(2))
	assert.Equal(t, "savings plan", b.Comment)
	assert.False(t, b.Reconciled)

	a, err := s.GetTransactionByID(2)
	require.NoError(t, err)
	assert.Equal(t, "-60.00", a.Amount.StringFixed(2))
	assert.Equal(t, "savings plan", a.Comment)
	assert.True(t, a.Reconciled)

	require.NoError(t, c.run("transaction", "reconcile", "2", "--undo"))
	a, err = s.GetTransactionByID(2)
	require.NoError(t, err)
	assert.False(t, a.Reconciled)

	require.NoError(t, c.run("transaction", "move", "1", "--to", "Cash"))
	moved, err := s.GetTransactionByID(1)
	require.NoError(t, err)
	assert.NotEqual(t, checking.ID, moved.AccountID)

	require.NoError(t, c.run("transaction", "delete", "3", "--yes"))
	_, err = s.GetTransactionByID(2)
	assert.ErrorIs(t, err, store.ErrRecordNotFound)

	require.NoError(t, c.run("account", "rename", "Cash", "Wallet"))
	_, err = s.GetAccountByName("Wallet")
	require.NoError(t, err)

	err = c.run("account", "delete", "Assets", "--yes")
	assert.ErrorIs(t, err, service.ErrAccountHasChildren)

	require.NoError(t, c.run("account", "delete", "Wallet", "--yes"))
	_, err = s.GetTransactionByID(1)
	assert.ErrorIs(t, err, store.ErrRecordNotFound)
}

func TestCommandErrors(t *testing.T) {
	c := newCLI(t)
	require.NoError(t, c.run("account", "create", "Checking"))

	err := c.run("add", "--account", "Nowhere", "--amount", "5")
	assert.ErrorIs(t, err, store.ErrRecordNotFound)

	err = c.run("add", "--account", "Checking", "--amount", "5.001")
	assert.Error(t, err)

	err = c.run("add", "--account", "Checking", "--transfer-to", "Checking", "--amount", "5")
	assert.ErrorIs(t, err, service.ErrSameAccount)

	err = c.run("transaction", "edit", "1", "--field", "total", "--value", "1")
	assert.Error(t, err)

	err = c.run("transaction", "show", "abc")
	assert.Error(t, err)

	err = c.run("account", "create", "Checking")
	assert.ErrorIs(t, err, store.ErrAccountExists)

	err = runWithMissingConfig(t, "info")
	assert.Error(t, err)
}

// runWithMissingConfig runs a command against a config file that does not exist.
func runWithMissingConfig(t *testing.T, args ...string) error {
	t.Helper()
	rootCmd, cleanup := NewRootCmd(os.DirFS(".."))
	defer cleanup()

	rootCmd.SetArgs(append([]string{"--config", filepath.Join(t.TempDir(), "missing.yaml")}, args...))
	return rootCmd.Execute()
}
