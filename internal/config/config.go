package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config 服務設定；環境變數優先於 CONFIG_FILE 指定的 YAML 檔
type Config struct {
	DatabaseURL     string        `yaml:"database_url"`
	RedisAddr       string        `yaml:"redis_addr"`
	RedisDB         int           `yaml:"redis_db"`
	RedisPassword   string        `yaml:"redis_password"`
	JWTSecret       string        `yaml:"jwt_secret"`
	HTTPAddr        string        `yaml:"http_addr"`
	WorkerCount     int           `yaml:"worker_count"`
	AdminEmail      string        `yaml:"admin_email"`
	AdminPassword   string        `yaml:"admin_password"`
	AdminName       string        `yaml:"admin_name"`
	RestoreOnReject bool          `yaml:"restore_on_reject"`
	LogLevel        string        `yaml:"log_level"`
	AccessTokenTTL  time.Duration `yaml:"access_token_ttl"`
	RefreshTokenTTL time.Duration `yaml:"refresh_token_ttl"`
	ImageCacheTTL   time.Duration `yaml:"image_cache_ttl"`
	MaxImageBytes   int64         `yaml:"max_image_bytes"`
}

func Default() *Config {
	return &Config{
		HTTPAddr:        ":8080",
		WorkerCount:     1,
		AdminName:       "Admin User",
		RestoreOnReject: true,
		LogLevel:        "info",
		AccessTokenTTL:  24 * time.Hour,
		RefreshTokenTTL: 30 * 24 * time.Hour,
		ImageCacheTTL:   time.Hour,
		MaxImageBytes:   5 << 20,
	}
}

var readFile = os.ReadFile

// Load 讀取預設值、YAML 檔（若有）與環境變數並驗證
func Load() (*Config, error) {
	cfg := Default()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		data, err := readFile(path)
		if err != nil {
			return nil, fmt.Errorf("讀取設定檔失敗: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("解析設定檔失敗: %w", err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	str := map[string]*string{
		"DATABASE_URL":   &c.DatabaseURL,
		"REDIS_ADDR":     &c.RedisAddr,
		"REDIS_PASSWORD": &c.RedisPassword,
		"JWT_SECRET":     &c.JWTSecret,
		"HTTP_ADDR":      &c.HTTPAddr,
		"ADMIN_EMAIL":    &c.AdminEmail,
		"ADMIN_PASSWORD": &c.AdminPassword,
		"ADMIN_NAME":     &c.AdminName,
		"LOG_LEVEL":      &c.LogLevel,
	}
	for k, dst := range str {
		if v := os.Getenv(k); v != "" {
			*dst = v
		}
	}

	if v := os.Getenv("REDIS_DB"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("無效的 REDIS_DB: %v", err)
		}
		c.RedisDB = n
	}
	if v := os.Getenv("WORKER_COUNT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return fmt.Errorf("無效的 WORKER_COUNT: %q", v)
		}
		c.WorkerCount = n
	}
	if v := os.Getenv("RESTORE_ON_REJECT"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("無效的 RESTORE_ON_REJECT: %v", err)
		}
		c.RestoreOnReject = b
	}
	if v := os.Getenv("MAX_IMAGE_BYTES"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("無效的 MAX_IMAGE_BYTES: %v", err)
		}
		c.MaxImageBytes = n
	}

	durations := map[string]*time.Duration{
		"ACCESS_TOKEN_TTL":  &c.AccessTokenTTL,
		"REFRESH_TOKEN_TTL": &c.RefreshTokenTTL,
		"IMAGE_CACHE_TTL":   &c.ImageCacheTTL,
	}
	for k, dst := range durations {
		v := os.Getenv(k)
		if v == "" {
			continue
		}
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("無效的 %s: %v", k, err)
		}
		*dst = d
	}
	return nil
}

func (c *Config) Validate() error {
	switch {
	case c.DatabaseURL == "":
		return fmt.Errorf("環境變數 DATABASE_URL 未設定")
	case c.RedisAddr == "":
		return fmt.Errorf("環境變數 REDIS_ADDR 未設定")
	case c.JWTSecret == "":
		return fmt.Errorf("環境變數 JWT_SECRET 未設定")
	case c.WorkerCount <= 0:
		return fmt.Errorf("無效的 WORKER_COUNT: %d", c.WorkerCount)
	case c.AccessTokenTTL <= 0 || c.RefreshTokenTTL <= 0:
		return fmt.Errorf("token TTL 必須大於 0")
	case c.MaxImageBytes <= 0:
		return fmt.Errorf("無效的 MAX_IMAGE_BYTES: %d", c.MaxImageBytes)
	}
	return nil
}
