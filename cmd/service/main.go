package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pet-adoption/internal/client"
	"pet-adoption/internal/config"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	loadConfig = config.Load
	exitFunc   = os.Exit
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "service",
		Short:         "Pet adoption API server",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runServe,
	}

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "啟動 HTTP 服務 (預設)",
		RunE:  runServe,
	}

	var dbURL string
	migrateCmd := &cobra.Command{
		Use:       "migrate up|down",
		Short:     "執行或回滾資料庫遷移",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"up", "down"},
		RunE: func(cmd *cobra.Command, args []string) error {
			if dbURL == "" {
				return fmt.Errorf("環境變數 DATABASE_URL 未設定")
			}
			switch args[0] {
			case "up":
				if err := runMigrationsFn(dbURL); err != nil {
					return fmt.Errorf("Migration 執行失敗: %v", err)
				}
			case "down":
				if err := rollbackFn(dbURL); err != nil {
					return fmt.Errorf("RollbackAll 失敗: %v", err)
				}
			default:
				return fmt.Errorf("unknown migrate direction %q", args[0])
			}
			fmt.Fprintf(cmd.OutOrStdout(), "migrate %s: done\n", args[0])
			return nil
		},
	}
	migrateCmd.Flags().StringVar(&dbURL, "database-url", os.Getenv("DATABASE_URL"), "Postgres connection string")

	var (
		baseURL string
		timeout time.Duration
	)
	pingCmd := &cobra.Command{
		Use:   "ping",
		Short: "呼叫健康檢查 API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()
			res, err := client.New(baseURL, client.WithTimeout(timeout)).Ping(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "status=%s database=%s cache=%s\n", res.Status, res.Database, res.Cache)
			return nil
		},
	}
	pingCmd.Flags().StringVar(&baseURL, "url", "http://localhost:8080", "API base URL")
	pingCmd.Flags().DurationVar(&timeout, "timeout", 5*time.Second, "request timeout")

	root.AddCommand(serveCmd, migrateCmd, pingCmd)
	return root
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	// token 簽章直接讀取 JWT_SECRET
	if os.Getenv("JWT_SECRET") == "" {
		if err := os.Setenv("JWT_SECRET", cfg.JWTSecret); err != nil {
			return err
		}
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()
	undo := zap.ReplaceGlobals(logger)
	defer undo()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return run(ctx, cfg, logger)
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		exitFunc(1)
	}
}
