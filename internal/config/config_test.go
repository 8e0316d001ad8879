package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var envKeys = []string{
	"CONFIG_FILE", "DATABASE_URL", "REDIS_ADDR", "REDIS_DB", "REDIS_PASSWORD",
	"JWT_SECRET", "HTTP_ADDR", "WORKER_COUNT", "ADMIN_EMAIL", "ADMIN_PASSWORD",
	"ADMIN_NAME", "RESTORE_ON_REJECT", "LOG_LEVEL", "ACCESS_TOKEN_TTL",
	"REFRESH_TOKEN_TTL", "IMAGE_CACHE_TTL", "MAX_IMAGE_BYTES",
}

// clearEnv 清空相關環境變數，結束時還原
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range envKeys {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func setRequired(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/pets")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("JWT_SECRET", "s")
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	setRequired(t)

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, ":8080", cfg.HTTPAddr)
	require.Equal(t, 1, cfg.WorkerCount)
	require.True(t, cfg.RestoreOnReject)
	require.Equal(t, 24*time.Hour, cfg.AccessTokenTTL)
	require.Equal(t, 720*time.Hour, cfg.RefreshTokenTTL)
	require.Equal(t, time.Hour, cfg.ImageCacheTTL)
	require.EqualValues(t, 5<<20, cfg.MaxImageBytes)
}

func TestLoadRequired(t *testing.T) {
	for _, missing := range []string{"DATABASE_URL", "REDIS_ADDR", "JWT_SECRET"} {
		t.Run(missing, func(t *testing.T) {
			clearEnv(t)
			setRequired(t)
			os.Unsetenv(missing)
			_, err := Load()
			require.ErrorContains(t, err, missing)
		})
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	clearEnv(t)
	setRequired(t)
	t.Setenv("REDIS_DB", "2")
	t.Setenv("WORKER_COUNT", "4")
	t.Setenv("RESTORE_ON_REJECT", "false")
	t.Setenv("ACCESS_TOKEN_TTL", "15m")
	t.Setenv("MAX_IMAGE_BYTES", "1024")
	t.Setenv("ADMIN_EMAIL", "admin@petadoption.com")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 2, cfg.RedisDB)
	require.Equal(t, 4, cfg.WorkerCount)
	require.False(t, cfg.RestoreOnReject)
	require.Equal(t, 15*time.Minute, cfg.AccessTokenTTL)
	require.EqualValues(t, 1024, cfg.MaxImageBytes)
	require.Equal(t, "admin@petadoption.com", cfg.AdminEmail)
}

func TestLoadInvalidEnv(t *testing.T) {
	cases := map[string]string{
		"REDIS_DB":          "x",
		"WORKER_COUNT":      "0",
		"RESTORE_ON_REJECT": "maybe",
		"ACCESS_TOKEN_TTL":  "soon",
		"MAX_IMAGE_BYTES":   "big",
	}
	for k, v := range cases {
		t.Run(k, func(t *testing.T) {
			clearEnv(t)
			setRequired(t)
			t.Setenv(k, v)
			_, err := Load()
			require.ErrorContains(t, err, k)
		})
	}
}

func TestLoadYAML(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
database_url: postgres://yaml/pets
redis_addr: redis:6379
jwt_secret: from-yaml
http_addr: ":9090"
restore_on_reject: false
image_cache_ttl: 10m
`), 0o600))
	t.Setenv("CONFIG_FILE", path)
	t.Setenv("HTTP_ADDR", ":7070")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "postgres://yaml/pets", cfg.DatabaseURL)
	require.Equal(t, "from-yaml", cfg.JWTSecret)
	require.Equal(t, ":7070", cfg.HTTPAddr)
	require.False(t, cfg.RestoreOnReject)
	require.Equal(t, 10*time.Minute, cfg.ImageCacheTTL)
	// 未指定的欄位維持預設
	require.Equal(t, 24*time.Hour, cfg.AccessTokenTTL)
}

func TestLoadYAMLErrors(t *testing.T) {
	t.Cleanup(func() { readFile = os.ReadFile })

	clearEnv(t)
	t.Setenv("CONFIG_FILE", "/nope.yaml")
	readFile = func(string) ([]byte, error) { return nil, errors.New("missing") }
	_, err := Load()
	require.Error(t, err)

	readFile = func(string) ([]byte, error) { return []byte("redis_db: [1"), nil }
	_, err = Load()
	require.Error(t, err)
}
