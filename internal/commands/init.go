package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/budgetbuddy-dev/budgetbuddy/internal/config"
	"github.com/budgetbuddy-dev/budgetbuddy/internal/render"
)

func newInitCommand(configPath *string) *cobra.Command {
	var backend string
	var dir string
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file and create the ledger",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := config.ExpandPath(*configPath)
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("config already exists at %s (use --force to overwrite)", path)
			} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
				return fmt.Errorf("checking config: %w", err)
			}

			cfg := config.Default()
			cfg.Storage.Backend = backend
			if dir != "" {
				cfg.Storage.Dir = dir
			}
			return runInit(cmd, path, cfg)
		},
	}

	cmd.Flags().StringVar(&backend, "backend", "file", "storage backend (file or sqlite)")
	cmd.Flags().StringVar(&dir, "dir", "", "data directory (default ~/.budgetbuddy/data)")
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config")

	return cmd
}

func runInit(cmd *cobra.Command, path string, cfg *config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.Storage.Backend == "file" || cfg.Storage.SQLitePath == "" {
		if err := os.MkdirAll(config.ExpandPath(cfg.Storage.Dir), 0o755); err != nil {
			return fmt.Errorf("creating data dir: %w", err)
		}
	}

	if err := config.Save(path, cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	a, err := openAppWithConfig(cfg, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer a.Close()

	msg := fmt.Sprintf("Initialized budgetbuddy at %s (%s backend, %d categories)",
		cfg.StoreLocation(), cfg.Storage.Backend, len(a.ledger.Categories()))
	fmt.Fprintln(cmd.OutOrStdout(), render.Success(msg))
	return nil
}
