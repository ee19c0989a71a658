package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/hance08/coin/internal/store"
	"github.com/hance08/coin/internal/validation"
	"github.com/pterm/pterm"
	"github.com/shopspring/decimal"
)

type AccountService struct {
	repo   store.Repository
	logger *pterm.Logger
}

func NewAccountService(repo store.Repository, logger *pterm.Logger) *AccountService {
	if logger == nil {
		logger = pterm.DefaultLogger.WithLevel(pterm.LogLevelDisabled)
	}
	return &AccountService{repo: repo, logger: logger}
}

// CreateAccount adds an account. A parent must be an existing top-level
// account, which keeps the hierarchy two levels deep.
func (as *AccountService) CreateAccount(name string, parentID *int64) (*store.Account, error) {
	name = strings.TrimSpace(name)
	if err := validation.ValidateAccountName(name); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidName, err)
	}

	if parentID != nil {
		parent, err := as.repo.GetAccountByID(*parentID)
		if err != nil {
			if errors.Is(err, store.ErrRecordNotFound) {
				return nil, fmt.Errorf("%w: %v", ErrInvalidParent, err)
			}
			return nil, persistErr("create account", err)
		}
		if !parent.IsTopLevel() {
			return nil, fmt.Errorf("%w: '%s' is already a child account", ErrInvalidParent, parent.Name)
		}
	}

	newID, err := as.repo.CreateAccount(name, parentID)
	if err != nil {
		return nil, persistErr("create account", err)
	}

	as.logger.Debug("account created", as.logger.Args("id", newID, "name", name))
	return &store.Account{ID: newID, Name: name, ParentID: parentID}, nil
}

func (as *AccountService) GetAllAccounts() ([]*store.Account, error) {
	accounts, err := as.repo.GetAllAccounts()
	if err != nil {
		return nil, persistErr("list accounts", err)
	}
	return accounts, nil
}

// GetAccountByName looks an account up by its exact name. When there is no
// such account the error names the closest existing one, if any is close.
func (as *AccountService) GetAccountByName(name string) (*store.Account, error) {
	name = strings.TrimSpace(name)
	acc, err := as.repo.GetAccountByName(name)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			if suggestion, ok := as.SuggestName(name); ok {
				err = fmt.Errorf("%w, did you mean '%s'?", err, suggestion)
			}
		}
		return nil, persistErr("get account", err)
	}
	return acc, nil
}

// SuggestName returns the existing account name nearest to name, ignoring
// case. Names further than a third of their length away are not suggested.
func (as *AccountService) SuggestName(name string) (string, bool) {
	accounts, err := as.repo.GetAllAccounts()
	if err != nil || len(accounts) == 0 {
		return "", false
	}

	target := strings.ToLower(name)
	best, bestDist := "", -1
	for _, acc := range accounts {
		dist := levenshtein.ComputeDistance(target, strings.ToLower(acc.Name))
		if bestDist < 0 || dist < bestDist {
			best, bestDist = acc.Name, dist
		}
	}

	limit := max(2, len([]rune(best))/3)
	if bestDist > limit {
		return "", false
	}
	return best, true
}

func (as *AccountService) GetAccountByID(id int64) (*store.Account, error) {
	acc, err := as.repo.GetAccountByID(id)
	if err != nil {
		return nil, persistErr("get account", err)
	}
	return acc, nil
}

// NameMap maps every account id to its name.
func (as *AccountService) NameMap() (map[int64]string, error) {
	accounts, err := as.GetAllAccounts()
	if err != nil {
		return nil, err
	}

	names := make(map[int64]string, len(accounts))
	for _, acc := range accounts {
		names[acc.ID] = acc.Name
	}
	return names, nil
}

// OtherAccounts lists transfer or move targets for the given account.
func (as *AccountService) OtherAccounts(excludeID int64) ([]*store.Account, error) {
	accounts, err := as.repo.GetAccountsExcept(excludeID)
	if err != nil {
		return nil, persistErr("list accounts", err)
	}
	return accounts, nil
}

func (as *AccountService) Balance(id int64) (decimal.Decimal, error) {
	balance, err := as.repo.GetAccountBalance(id)
	if err != nil {
		return decimal.Zero, persistErr("account balance", err)
	}
	return balance, nil
}

func (as *AccountService) RenameAccount(id int64, name string) error {
	name = strings.TrimSpace(name)
	if err := validation.ValidateAccountName(name); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidName, err)
	}

	if err := as.repo.RenameAccount(id, name); err != nil {
		return persistErr("rename account", err)
	}

	as.logger.Debug("account renamed", as.logger.Args("id", id, "name", name))
	return nil
}

// DeleteAccount refuses accounts that still have children. Otherwise the
// account goes together with its transactions and the other side of each of
// its transfers, and the number of removed transactions is returned.
func (as *AccountService) DeleteAccount(id int64) (int64, error) {
	children, err := as.repo.GetChildAccounts(id)
	if err != nil {
		return 0, persistErr("delete account", err)
	}
	if len(children) > 0 {
		return 0, fmt.Errorf("%w: delete or move its %d child account(s) first", ErrAccountHasChildren, len(children))
	}

	var removed int64
	err = as.repo.ExecTx(func(repo store.Repository) error {
		var err error
		if removed, err = repo.DeleteTransactionsByAccount(id); err != nil {
			return err
		}
		return repo.DeleteAccount(id)
	})
	if err != nil {
		as.logger.Warn("account delete rolled back", as.logger.Args("id", id, "error", err))
		return 0, persistErr("delete account", err)
	}

	as.logger.Debug("account deleted", as.logger.Args("id", id, "transactions", removed))
	return removed, nil
}

// BuildTree returns top-level accounts with their direct children, both
// levels ordered by name.
func (as *AccountService) BuildTree() ([]AccountNode, error) {
	accounts, err := as.GetAllAccounts()
	if err != nil {
		return nil, err
	}
	return BuildTree(accounts), nil
}
