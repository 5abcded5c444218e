package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/mmynk/mvptracker/internal/auth"
	"github.com/mmynk/mvptracker/internal/config"
	"github.com/mmynk/mvptracker/internal/metrics"
	"github.com/mmynk/mvptracker/internal/storage"
	"github.com/mmynk/mvptracker/internal/storage/memory"
	"github.com/mmynk/mvptracker/internal/storage/sqlite"
	"github.com/mmynk/mvptracker/internal/tracker"
	"github.com/mmynk/mvptracker/pkg/logging"
)

func newServeCommand(rootOpts *rootOptions) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the RPC server",
		Long: `Run the tracker RPC server until interrupted.

Example:
  mvptracker serve --config tracker.yaml
  TRACKER_STORAGE_DRIVER=memory mvptracker serve --addr :9000`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := rootOpts.load()
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Server.Addr = addr
			}
			if cfg.Auth.Secret == "" {
				return errNoSecret
			}

			logger := logging.Setup(cfg.Log.Level, cfg.Log.Format)
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			ln, err := net.Listen("tcp", cfg.Server.Addr)
			if err != nil {
				return fmt.Errorf("failed to listen on %s: %w", cfg.Server.Addr, err)
			}
			return serve(ctx, ln, cfg, logger)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default server.addr)")
	return cmd
}

func openStore(cfg config.StorageConfig) (storage.Store, error) {
	switch cfg.Driver {
	case "memory":
		return memory.New(), nil
	case "sqlite":
		return sqlite.New(cfg.Path)
	}
	return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
}

// serve runs the server on ln until ctx is done, then shuts down gracefully.
func serve(ctx context.Context, ln net.Listener, cfg *config.Config, logger *slog.Logger) error {
	store, err := openStore(cfg.Storage)
	if err != nil {
		ln.Close()
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	defer store.Close()
	logger.Info("Storage initialized", "driver", cfg.Storage.Driver, "path", cfg.Storage.Path)

	t := tracker.New(store, logger)
	if err := t.BootstrapAdmins(ctx, cfg.Access.Admins); err != nil {
		ln.Close()
		return err
	}

	jwtManager := auth.NewJWTManager(cfg.Auth.Secret, cfg.Auth.TokenTTL)
	srv := &http.Server{
		Handler:           newHandler(t, jwtManager, metrics.New(), cfg.RSVP, logger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("Connect server starting", "address", ln.Addr().String())
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutting down", "timeout", cfg.Server.ShutdownTimeout)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
