package database

import (
	"context"
	"database/sql"
	"errors"
	"io/fs"
	"testing"

	"github.com/golang-migrate/migrate/v4"
	dbdriver "github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	src "github.com/golang-migrate/migrate/v4/source"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

type fakeMigrator struct{ upErr, downErr error }

func (f fakeMigrator) Up() error   { return f.upErr }
func (f fakeMigrator) Down() error { return f.downErr }

func restore() {
	pgxpoolParseConfig = pgxpool.ParseConfig
	pgxpoolNewWithConfig = pgxpool.NewWithConfig
	sqlOpenDB = sql.Open
	postgresWithInstanceFn = postgres.WithInstance
	iofsNewFn = iofs.New
	migrateNewWithInstance = func(sourceName string, sourceDriver src.Driver, databaseName string, databaseDriver dbdriver.Driver) (migrateInstance, error) {
		m, err := migrate.NewWithInstance(sourceName, sourceDriver, databaseName, databaseDriver)
		if err != nil {
			return nil, err
		}
		return m, nil
	}
}

func TestNewPgxPool(t *testing.T) {
	t.Cleanup(restore)

	pgxpoolParseConfig = func(string) (*pgxpool.Config, error) { return nil, errors.New("bad url") }
	_, err := NewPgxPool(context.Background(), "url")
	require.ErrorContains(t, err, "parse database url")

	pgxpoolParseConfig = pgxpool.ParseConfig
	var gotHost string
	pgxpoolNewWithConfig = func(ctx context.Context, cfg *pgxpool.Config) (*pgxpool.Pool, error) {
		gotHost = cfg.ConnConfig.Host
		return nil, errors.New("dial")
	}
	_, err = NewPgxPool(context.Background(), "postgres://pets@db.internal:5432/adoption")
	require.EqualError(t, err, "dial")
	require.Equal(t, "db.internal", gotHost)

	pgxpoolNewWithConfig = func(context.Context, *pgxpool.Config) (*pgxpool.Pool, error) { return &pgxpool.Pool{}, nil }
	db, err := NewPgxPool(context.Background(), "postgres://pets@localhost/adoption")
	require.NoError(t, err)
	require.NotNil(t, db)
}

// migratorOK 讓 newMigrator 的每一步都成功，回傳指定的 migrator
func migratorOK(m migrateInstance) {
	sqlOpenDB = func(string, string) (*sql.DB, error) { return sql.Open("pgx", "") }
	postgresWithInstanceFn = func(*sql.DB, *postgres.Config) (dbdriver.Driver, error) { return nil, nil }
	iofsNewFn = func(fs.FS, string) (src.Driver, error) { return nil, nil }
	migrateNewWithInstance = func(string, src.Driver, string, dbdriver.Driver) (migrateInstance, error) { return m, nil }
}

func TestMigratorSetupErrors(t *testing.T) {
	cases := []struct {
		name      string
		breakStep func()
	}{
		{"open", func() {
			sqlOpenDB = func(string, string) (*sql.DB, error) { return nil, errors.New("open") }
		}},
		{"driver", func() {
			postgresWithInstanceFn = func(*sql.DB, *postgres.Config) (dbdriver.Driver, error) { return nil, errors.New("drv") }
		}},
		{"source", func() {
			iofsNewFn = func(fs.FS, string) (src.Driver, error) { return nil, errors.New("src") }
		}},
		{"instance", func() {
			migrateNewWithInstance = func(string, src.Driver, string, dbdriver.Driver) (migrateInstance, error) {
				return nil, errors.New("mig")
			}
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Cleanup(restore)
			migratorOK(fakeMigrator{})
			tc.breakStep()
			require.ErrorContains(t, RunMigrations("url"), "migrate up")
			require.ErrorContains(t, RollbackAll("url"), "migrate down")
		})
	}
}

func TestRunMigrationsAndRollback(t *testing.T) {
	t.Cleanup(restore)

	migratorOK(fakeMigrator{})
	require.NoError(t, RunMigrations("url"))
	require.NoError(t, RollbackAll("url"))

	migratorOK(fakeMigrator{upErr: migrate.ErrNoChange, downErr: migrate.ErrNoChange})
	require.NoError(t, RunMigrations("url"))
	require.NoError(t, RollbackAll("url"))

	upErr, downErr := errors.New("dirty version 1"), errors.New("locked")
	migratorOK(fakeMigrator{upErr: upErr, downErr: downErr})
	err := RunMigrations("url")
	require.ErrorIs(t, err, upErr)
	require.EqualError(t, err, "migrate up: dirty version 1")
	err = RollbackAll("url")
	require.ErrorIs(t, err, downErr)
	require.EqualError(t, err, "migrate down: locked")
}

func TestEmbeddedMigrations(t *testing.T) {
	entries, err := fs.ReadDir(migrationsFS, "migrations")
	require.NoError(t, err)

	names := map[string]bool{}
	for _, e := range entries {
		names[e.Name()] = true
	}
	require.True(t, names["000001_init.up.sql"])
	require.True(t, names["000001_init.down.sql"])

	up, err := fs.ReadFile(migrationsFS, "migrations/000001_init.up.sql")
	require.NoError(t, err)
	for _, table := range []string{"users", "pets", "orders"} {
		require.Contains(t, string(up), "CREATE TABLE IF NOT EXISTS "+table)
	}
	require.Contains(t, string(up), "CHECK (status IN ('pending', 'approved', 'rejected'))")
}
