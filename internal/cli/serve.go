package cli

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/mkoehn/suchselgen/internal/api"
	"github.com/mkoehn/suchselgen/internal/factory"
	redisstorage "github.com/mkoehn/suchselgen/internal/storage/redis"
)

type serveOptions struct {
	addr        string
	storageType string
	redisURL    string
}

func newServeCmd() *cobra.Command {
	opts := &serveOptions{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the puzzle generation JSON API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", ":8080", "Listen address")
	cmd.Flags().StringVar(&opts.storageType, "storage", factory.StorageTypeMemory, "Puzzle storage backend: memory, redis")
	cmd.Flags().StringVar(&opts.redisURL, "redis-url", "", "Redis connection URL (required with --storage redis)")

	return cmd
}

func runServe(cmd *cobra.Command, opts *serveOptions) error {
	cfg := factory.Config{
		Logger:      logger,
		StorageType: opts.storageType,
	}
	if opts.storageType == factory.StorageTypeRedis {
		if opts.redisURL == "" {
			return errors.New("--redis-url required with --storage redis")
		}
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = opts.redisURL
		cfg.RedisConfig = &redisCfg
	}

	app, err := factory.New(cfg)
	if err != nil {
		return err
	}

	router := api.NewRouter(api.RouterConfig{
		Logger:  logger,
		Storage: app.Storage,
		Clock:   app.Clock,
		Random:  app.Random,
	})

	server := &http.Server{
		Addr:              opts.addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("serving", slog.String("addr", opts.addr), slog.String("storage", opts.storageType))
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
