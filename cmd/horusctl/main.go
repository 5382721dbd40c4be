// horusctl - обслуживающие команды каталога: заполнение кодов объявлений
// и загрузка справочника городов.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/horus-listing/internal/app"
	"github.com/horus-listing/internal/config"
	"github.com/horus-listing/internal/pkg/logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	envFile string
	timeout time.Duration
)

var rootCmd = &cobra.Command{
	Use:           "horusctl",
	Short:         "Maintenance commands for the Horus listing store",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "Path to .env file")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Minute, "Operation timeout")

	rootCmd.AddCommand(backfillCmd)
	rootCmd.AddCommand(seedCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// env - конфигурация, логгер и репозитории для одной команды
type env struct {
	cfg   *config.Config
	log   *zap.Logger
	repos *app.Repositories
}

func setup(ctx context.Context) (*env, error) {
	cfg, err := config.LoadFile(envFile)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	repos, err := app.NewRepositories(cfg, log)
	if err != nil {
		return nil, err
	}
	if err := repos.Health(ctx); err != nil {
		_ = repos.Close()
		return nil, fmt.Errorf("data store health check: %w", err)
	}

	return &env{cfg: cfg, log: log, repos: repos}, nil
}

func (e *env) close() {
	if err := e.repos.Close(); err != nil {
		e.log.Error("Failed to close data store", zap.Error(err))
	}
	_ = e.log.Sync()
}

func commandContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	return context.WithTimeout(cmd.Context(), timeout)
}
