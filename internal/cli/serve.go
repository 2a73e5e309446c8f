package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/vaughan-dsouza/goposts/internal/config"
	"github.com/vaughan-dsouza/goposts/internal/routes"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long: `Load configuration, connect to the configured store and serve the posts API.

Configuration is read from defaults, then the --config YAML file, then the
environment (PORT, APP_ENV, STORE_DRIVER, DATABASE_URL, MONGO_URI, ...).
Invalid configuration aborts startup.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func newLogger() *log.Logger {
	return log.New(os.Stdout, "", log.LstdFlags|log.Lmicroseconds|log.LUTC)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile, os.Getenv)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger := newLogger()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repo, closeStore, err := openStore(ctx, cfg.Store)
	if err != nil {
		return err
	}
	defer closeStore()

	srv := &http.Server{
		Addr:         ":" + strconv.Itoa(cfg.Port),
		Handler:      routes.New(cfg, repo, logger),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Printf("listening on %s (env=%s, store=%s)", srv.Addr, cfg.Env, cfg.Store.Driver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Println("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	logger.Println("server exited")
	return nil
}
