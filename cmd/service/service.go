// @title        Pet Adoption API
// @version      1.0
// @description  寵物領養平台後端 API 文件
// @host         localhost:8080
// @BasePath     /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the access token.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"pet-adoption/internal/cache"
	"pet-adoption/internal/config"
	"pet-adoption/internal/database"
	"pet-adoption/internal/handler/auth"
	"pet-adoption/internal/handler/pets"
	"pet-adoption/internal/middleware"
	"pet-adoption/internal/router"
	"pet-adoption/internal/service"
	"pet-adoption/internal/worker"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/sync/errgroup"

	_ "pet-adoption/docs" // 引入 swag 產出的 docs

	echoSwagger "github.com/swaggo/echo-swagger"
)

// CustomValidator wraps go-playground/validator for Echo
// swagger:ignore
type CustomValidator struct {
	validator *validator.Validate
}

// Validate calls the underlying validator
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

const shutdownTimeout = 10 * time.Second

var (
	newPgxPool      = database.NewPgxPool
	newRedisClient  = cache.NewRedisClient
	runMigrationsFn = database.RunMigrations
	rollbackFn      = database.RollbackAll
	ensureAdmin     = service.EnsureAdmin
	newWorkerPool   = worker.NewPool
	startServer     = serveHTTP
	newLogger       = buildLogger
)

func buildLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("無效的 LOG_LEVEL: %w", err)
	}
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(lvl)
	return zc.Build()
}

// serveHTTP 啟動 echo，ctx 結束時優雅關閉
func serveHTTP(ctx context.Context, e *echo.Echo, addr string) error {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return e.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

func newEcho(logger *zap.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = &CustomValidator{validator: validator.New()}
	e.Use(middleware.RequestLogger(logger))
	e.Use(echomw.Recover())
	return e
}

func run(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	db, err := newPgxPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("DB 連線失敗: %v", err)
	}
	defer db.Close()

	redis, err := newRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		return fmt.Errorf("Redis 連線失敗: %v", err)
	}
	defer redis.Close()

	if err := runMigrationsFn(cfg.DatabaseURL); err != nil {
		return fmt.Errorf("Migration 執行失敗: %v", err)
	}

	if _, err := ensureAdmin(ctx, db, cfg.AdminEmail, cfg.AdminPassword, cfg.AdminName); err != nil {
		return fmt.Errorf("建立管理員失敗: %v", err)
	}

	wp := newWorkerPool(cfg.WorkerCount)
	defer wp.Stop()

	e := newEcho(logger)
	router.Setup(e, router.Deps{
		DB:    db,
		Cache: redis,
		Pool:  wp,
		Tokens: auth.TokenConfig{
			AccessTTL:  cfg.AccessTokenTTL,
			RefreshTTL: cfg.RefreshTokenTTL,
		},
		Images: pets.ImageConfig{
			MaxBytes: cfg.MaxImageBytes,
			CacheTTL: cfg.ImageCacheTTL,
		},
		Decision: service.DecisionPolicy{RestoreOnReject: cfg.RestoreOnReject},
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	logger.Info("server starting", zap.String("addr", cfg.HTTPAddr), zap.Int("workers", cfg.WorkerCount))
	return startServer(ctx, e, cfg.HTTPAddr)
}
