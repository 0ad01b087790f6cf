package commands

import (
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/budgetbuddy-dev/budgetbuddy/internal/config"
	"github.com/budgetbuddy-dev/budgetbuddy/internal/kv"
	"github.com/budgetbuddy-dev/budgetbuddy/internal/ledger"
	"github.com/budgetbuddy-dev/budgetbuddy/internal/logging"
	"github.com/budgetbuddy-dev/budgetbuddy/internal/render"
)

// app bundles what every subcommand needs once the config is loaded.
type app struct {
	cfg    *config.Config
	log    *logrus.Logger
	store  kv.Store
	ledger *ledger.Ledger
	money  *render.Money
}

// openApp loads the config named by --config. When the flag was not given
// and the default file does not exist, the defaults are used.
func openApp(cmd *cobra.Command, configPath string) (*app, error) {
	cfg, err := config.Load(config.ExpandPath(configPath))
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		if cmd.Flags().Changed("config") {
			return nil, fmt.Errorf("no config at %s (run budgetbuddy init first)", configPath)
		}
		cfg = config.Default()
	}
	return openAppWithConfig(cfg, cmd.ErrOrStderr())
}

func openAppWithConfig(cfg *config.Config, logOut io.Writer) (*app, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log, err := logging.Setup(cfg.Log, logOut)
	if err != nil {
		return nil, fmt.Errorf("setting up logging: %w", err)
	}

	money, err := render.NewMoney(cfg.Display.Currency, cfg.Display.Locale)
	if err != nil {
		return nil, err
	}

	store, err := kv.Open(cfg.Storage.Backend, cfg.StoreLocation())
	if err != nil {
		return nil, fmt.Errorf("opening store: %w", err)
	}

	l, err := ledger.Open(store, ledger.WithLogger(log))
	if err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("opening ledger: %w", err)
	}

	log.WithFields(logrus.Fields{
		"backend":  cfg.Storage.Backend,
		"location": cfg.StoreLocation(),
	}).Debug("App.Open.Complete")

	return &app{cfg: cfg, log: log, store: store, ledger: l, money: money}, nil
}

func (a *app) Close() error {
	return a.store.Close()
}
