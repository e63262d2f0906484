package command

import (
	"context"
	"errors"
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/stolasapp/bulletin/internal/app"
	"github.com/stolasapp/bulletin/internal/config"
	"github.com/stolasapp/bulletin/internal/server"
)

func serveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "serve the bulletin web app",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) (runErr error) {
			cfg, logger, store, err := loadConfig(cmd.Context())
			if err != nil {
				return err
			}
			defer func() {
				if err := store.Close(); err != nil {
					runErr = errors.Join(runErr, err)
				}
			}()

			grp, ctx := errgroup.WithContext(cmd.Context())
			serveApp(ctx, grp, cfg, logger, app.New(cfg, logger, store))
			return grp.Wait()
		},
	}
}

func serveApp(
	ctx context.Context,
	grp *errgroup.Group,
	cfg *config.Config,
	logger *slog.Logger,
	srv *echo.Echo,
) {
	listener, err := server.Listen(ctx, cfg.WebAddress)
	if err != nil {
		grp.Go(func() error { return err })
		return
	}

	logger.InfoContext(ctx,
		"starting app server...",
		slog.String("address", listener.Addr().String()),
		slog.Bool("dev_mode", cfg.DevMode),
	)
	server.Serve(ctx, grp, srv.Server, listener, server.DefaultOptions)
}
