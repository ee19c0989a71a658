package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/hance08/coin/cmd/account"
	"github.com/hance08/coin/cmd/transaction"
	"github.com/hance08/coin/internal/app"
	"github.com/hance08/coin/internal/config"
	"github.com/hance08/coin/internal/constants"
	"github.com/hance08/coin/internal/errhandler"
	"github.com/hance08/coin/internal/service"
	"github.com/joho/godotenv"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func Execute(migrations fs.FS) {
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " ERROR ",
		Style: pterm.NewStyle(pterm.BgLightRed, pterm.FgBlack),
	}

	rootCmd, cleanup := NewRootCmd(migrations)
	err := rootCmd.Execute()
	cleanup()

	os.Exit(errhandler.HandleError(err))
}

// NewRootCmd builds the command tree. The service is filled in once flags
// are parsed, so every subcommand sees the config selected with --config.
func NewRootCmd(migrations fs.FS) (*cobra.Command, func()) {
	var cfgFile string
	svc := &service.Service{}
	closeDB := func() {}

	rootCmd := &cobra.Command{
		Use:   constants.AppName,
		Short: "coin is a CLI checkbook ledger",
		Long: `coin is a CLI checkbook ledger.

Record deposits, withdrawals and transfers between your accounts, reconcile
them against your statements and follow the running balance of each account.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := initConfig(cfgFile)
			if err != nil {
				return err
			}

			application, cleanup, err := app.NewApp(cfg, migrations)
			if err != nil {
				return err
			}

			*svc = *application.Service
			closeDB = cleanup
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "set the config file path")

	rootCmd.AddCommand(account.NewAccountCmd(svc))
	rootCmd.AddCommand(transaction.NewTransactionCmd(svc))

	rootCmd.AddCommand(NewAddCmd(svc))
	rootCmd.AddCommand(NewInfoCmd(svc))

	return rootCmd, func() { closeDB() }
}

func initConfig(cfgFile string) (*config.Config, error) {
	v := viper.New()

	defaults := config.NewDefault()
	v.SetDefault("database.path", defaults.Database.Path)
	v.SetDefault("display.currency_symbol", defaults.Display.CurrencySymbol)
	v.SetDefault("log.level", defaults.Log.Level)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		appDir, err := app.DataDir()
		if err != nil {
			return nil, fmt.Errorf("error getting app dir: %w", err)
		}

		v.AddConfigPath(appDir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")

		if err := createDefaultConfig(v, appDir); err != nil {
			return nil, fmt.Errorf("failed to ensure config file: %w", err)
		}
	}

	if err := loadDotEnv(".env"); err != nil {
		return nil, err
	}

	v.SetEnvPrefix(strings.ToUpper(constants.AppName))
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv() // allow using environment variables to override

	if err := v.ReadInConfig(); err != nil {
		if cfgFile != "" {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config file error: %w", err)
		}
	}

	cfg := config.NewDefault()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %v", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cfg.ConfigPath = v.ConfigFileUsed()

	return cfg, nil
}

// loadDotEnv adds the COIN_ overrides from a .env file, if there is one.
// Variables already set in the environment win.
func loadDotEnv(path string) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

func createDefaultConfig(v *viper.Viper, appDir string) error {
	if err := os.MkdirAll(appDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configPath := filepath.Join(appDir, "config.yaml")

	if _, err := os.Stat(configPath); err == nil {
		return nil
	}

	if err := v.WriteConfigAs(configPath); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
