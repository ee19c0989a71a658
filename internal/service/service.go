package service

import (
	"github.com/hance08/coin/internal/config"
	"github.com/hance08/coin/internal/store"
	"github.com/pterm/pterm"
)

type Service struct {
	Account     *AccountService
	Transaction *TransactionService
	Config      *config.Config
}

func NewService(repo store.Repository, cfg *config.Config, logger *pterm.Logger) *Service {
	return &Service{
		Account:     NewAccountService(repo, logger),
		Transaction: NewTransactionService(repo, logger),
		Config:      cfg,
	}
}
