package database

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	dbdriver "github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	src "github.com/golang-migrate/migrate/v4/source"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"go.uber.org/zap"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

type migrateInstance interface {
	Up() error
	Down() error
}

// 以下變數供測試覆寫
var (
	pgxpoolParseConfig     = pgxpool.ParseConfig
	pgxpoolNewWithConfig   = pgxpool.NewWithConfig
	sqlOpenDB              = sql.Open
	postgresWithInstanceFn = postgres.WithInstance
	iofsNewFn              = iofs.New
	migrateNewWithInstance = func(sourceName string, sourceDriver src.Driver, databaseName string, databaseDriver dbdriver.Driver) (migrateInstance, error) {
		m, err := migrate.NewWithInstance(sourceName, sourceDriver, databaseName, databaseDriver)
		if err != nil {
			return nil, err
		}
		return m, nil
	}
)

// NewPgxPool 解析連線字串並建立連線池；實際連線延後到第一次查詢
func NewPgxPool(ctx context.Context, url string) (DB, error) {
	cfg, err := pgxpoolParseConfig(url)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}
	pool, err := pgxpoolNewWithConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return pool, nil
}

func newMigrator(dbURL string) (migrateInstance, func() error, error) {
	// migrate 需要 *sql.DB，透過 pgx stdlib driver 開啟
	sqlDB, err := sqlOpenDB("pgx", dbURL)
	if err != nil {
		return nil, nil, err
	}

	driver, err := postgresWithInstanceFn(sqlDB, &postgres.Config{})
	if err != nil {
		sqlDB.Close()
		return nil, nil, err
	}

	sourceDriver, err := iofsNewFn(migrationsFS, "migrations")
	if err != nil {
		sqlDB.Close()
		return nil, nil, err
	}

	m, err := migrateNewWithInstance("iofs", sourceDriver, "postgres", driver)
	if err != nil {
		sqlDB.Close()
		return nil, nil, err
	}
	return m, sqlDB.Close, nil
}

func migrateWith(dbURL, direction string, step func(migrateInstance) error) error {
	m, closeFn, err := newMigrator(dbURL)
	if err != nil {
		return fmt.Errorf("migrate %s: %w", direction, err)
	}
	defer closeFn()

	err = step(m)
	if errors.Is(err, migrate.ErrNoChange) {
		zap.L().Debug("schema already current", zap.String("direction", direction))
		return nil
	}
	if err != nil {
		return fmt.Errorf("migrate %s: %w", direction, err)
	}
	zap.L().Info("migrations applied", zap.String("direction", direction))
	return nil
}

// RunMigrations 套用所有嵌入的 migration
func RunMigrations(dbURL string) error {
	return migrateWith(dbURL, "up", migrateInstance.Up)
}

// RollbackAll 退回所有 migration (down to version 0)
func RollbackAll(dbURL string) error {
	return migrateWith(dbURL, "down", migrateInstance.Down)
}
