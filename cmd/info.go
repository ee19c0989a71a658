package cmd

import (
	"os"

	"github.com/hance08/coin/internal/app"
	"github.com/hance08/coin/internal/service"
	"github.com/hance08/coin/internal/store"
	"github.com/hance08/coin/internal/ui/views"
	"github.com/spf13/cobra"
)

type infoRunner struct {
	svc *service.Service
}

func NewInfoCmd(svc *service.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Display application information",
		Long:  `Display current configuration, database path, and ledger size.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &infoRunner{
				svc: svc,
			}

			return runner.Run()
		},
	}
}

func (r *infoRunner) Run() error {
	cfg := r.svc.Config

	configPath := cfg.ConfigPath
	if configPath == "" {
		configPath = "(None, using defaults)"
	}

	dbPath, err := app.ResolveDBPath(cfg)
	if err != nil {
		return err
	}

	dbExists := false
	if _, err := os.Stat(dbPath); err == nil {
		dbExists = true
	}

	accounts, err := r.svc.Account.GetAllAccounts()
	if err != nil {
		return err
	}

	transactions := 0
	for _, err := range r.svc.Transaction.ListForAccount(store.EntryFilter{}) {
		if err != nil {
			return err
		}
		transactions++
	}

	items := views.SystemInfoItem{
		ConfigPath:     configPath,
		DBPath:         dbPath,
		DBExists:       dbExists,
		CurrencySymbol: cfg.Display.CurrencySymbol,
		LogLevel:       cfg.Log.Level,
		AppDataDir:     appDataDirOrUnknown(),
		Accounts:       len(accounts),
		Transactions:   transactions,
	}

	return views.RenderSystemInfo(items)
}

func appDataDirOrUnknown() string {
	dir, err := app.DataDir()
	if err != nil {
		return "Unknown"
	}
	return dir
}
