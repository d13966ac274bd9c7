package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type DatabaseConfig struct {
	// URL is a mysql:// URL or a raw go-sql-driver DSN; when set it wins
	// over the discrete fields.
	URL      string
	User     string
	Password string
	Host     string
	Port     string
	Name     string

	AutoMigrate bool
}

type RedisConfig struct {
	Addr     string // empty disables the availability cache
	Password string
	DB       int
}

type Config struct {
	Port        string
	CORSOrigins []string

	Database DatabaseConfig
	Redis    RedisConfig

	AvailabilityCacheTTL time.Duration

	Log struct {
		Level  string
		Format string
	}

	SeedSampleData bool
}

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	cfg := &Config{}

	cfg.Port = envOrDefault("PORT", "8080")
	cfg.CORSOrigins = parseList(os.Getenv("CORS_ORIGINS"), []string{"*"})

	cfg.Database.URL = strings.TrimSpace(os.Getenv("MYSQL_URL"))
	if cfg.Database.URL == "" {
		cfg.Database.URL = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	}
	cfg.Database.User = envOrDefault("DB_USER", "root")
	cfg.Database.Password = envOrDefault("DB_PASS", "")
	cfg.Database.Host = envOrDefault("DB_HOST", "127.0.0.1")
	cfg.Database.Port = envOrDefault("DB_PORT", "3306")
	cfg.Database.Name = envOrDefault("DB_NAME", "hotel_reservation")
	cfg.Database.AutoMigrate = envBool("DB_AUTO_MIGRATE", true)

	cfg.Redis.Addr = strings.TrimSpace(os.Getenv("REDIS_ADDR"))
	cfg.Redis.Password = os.Getenv("REDIS_PASSWORD")
	cfg.Redis.DB = envInt("REDIS_DB", 0)

	cfg.AvailabilityCacheTTL = time.Duration(envInt("AVAILABILITY_CACHE_TTL", 60)) * time.Second

	cfg.Log.Level = envOrDefault("LOG_LEVEL", "info")
	cfg.Log.Format = envOrDefault("LOG_FORMAT", "json")

	cfg.SeedSampleData = envBool("SEED_SAMPLE_DATA", false)

	return cfg, nil
}

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

func envInt(key string, def int) int {
	if v, err := strconv.Atoi(envOrDefault(key, "")); err == nil && v >= 0 {
		return v
	}
	return def
}

func envBool(key string, def bool) bool {
	if v, err := strconv.ParseBool(envOrDefault(key, "")); err == nil {
		return v
	}
	return def
}

func parseList(raw string, def []string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return def
	}

	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
