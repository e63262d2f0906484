// Package command contains the CLI command constructors.
package command

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/spf13/cobra"

	"github.com/stolasapp/bulletin/internal/config"
	"github.com/stolasapp/bulletin/internal/observability"
)

// RootCommand instantiates the root command, with all sub-commands bound.
func RootCommand() *cobra.Command {
	configFilePath := filepath.Join(xdg.ConfigHome, "bulletin.yaml")
	cmd := &cobra.Command{
		Use:          "bulletin [command] [flags]",
		Short:        "A small community blog with user accounts",
		Version:      version(),
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) (err error) {
			cfg, err := loadOrInitConfig(configFilePath)
			if err != nil {
				return fmt.Errorf("failed to load configuration file: %w", err)
			}
			logger := observability.InitSlog(cfg)
			logger.DebugContext(cmd.Context(), "configuration loaded",
				slog.String("path", configFilePath),
				slog.String("web_address", cfg.WebAddress),
				slog.String("database_driver", cfg.Database.Driver),
			)
			slog.SetDefault(logger)
			cmd.SetContext(context.WithValue(cmd.Context(), configKey{}, cfg))
			return nil
		},
	}

	cmd.PersistentFlags().StringVarP(
		&configFilePath,
		"config", "c",
		configFilePath,
		"path to the configuration file",
	)

	cmd.AddCommand(
		serveCommand(),
		userCommand(),
		groupCommand(),
		seedCommand(),
	)

	return cmd
}

func loadOrInitConfig(configFilePath string) (*config.Config, error) {
	cfg, err := config.Load(configFilePath)
	if err == nil || !errors.Is(err, os.ErrNotExist) {
		return cfg, err
	}

	create, initErr := confirm(fmt.Sprintf("Config not found at %s. Create one?", configFilePath))
	if initErr != nil || !create {
		return nil, errors.Join(err, initErr)
	}

	cfg = config.Default()
	if cfg.Session.Secret, err = config.GenerateSecret(); err != nil {
		return nil, err
	}
	if err = config.Write(configFilePath, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
