package cmd

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"

	config "bounty-ledger.com/bounty-ledger/internal/configs"
	httpapi "bounty-ledger.com/bounty-ledger/internal/http"
	"bounty-ledger.com/bounty-ledger/internal/ledger"
	"bounty-ledger.com/bounty-ledger/internal/locks"
	repository "bounty-ledger.com/bounty-ledger/internal/repositories"
	"bounty-ledger.com/bounty-ledger/internal/services"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long:  "Starts the escrow ledger HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(); err != nil {
			log.Println(".env file not found, using environment variables")
		}

		cfg := config.Load()

		db := config.New(cfg.DatabaseDSN)

		redisClient := config.NewRedisClient(cfg.RedisAddr)
		defer redisClient.Close()

		lockManager := locks.NewRedisLockManager(redisClient, cfg.RedisLockPrefix, int64(cfg.LockTTLSeconds))

		lifecycle := services.NewLifecycleService(
			db,
			repository.NewConfigRepository(db),
			repository.NewTaskRepository(db),
			repository.NewCounterRepository(db),
			ledger.New(db),
			lockManager,
			services.SystemClock(),
		)

		e := echo.New()

		handler := httpapi.NewHandler(lifecycle)
		httpapi.Register(e, handler, cfg.RateLimit, cfg.AuthSecret)

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		go func() {
			log.Printf("HTTP server listening on %s", cfg.AppURL)
			if err := e.Start(cfg.AppURL); err != nil {
				log.Printf("server stopped: %v", err)
			}
		}()

		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(
			context.Background(),
			time.Duration(cfg.ShutdownTimeoutSeconds)*time.Second,
		)
		defer cancel()

		_ = e.Shutdown(shutdownCtx)

		log.Println("HTTP server shut down gracefully")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
