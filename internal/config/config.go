package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Store drivers accepted by STORE_DRIVER.
const (
	DriverMemory = "memory"
	DriverMySQL  = "mysql"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort  string        `env:"PORT" env-default:"3000"`
	JWTSecret   string        `env:"JWT_SECRET" env-default:"your-secret-key-change-in-production"`
	StoreDriver string        `env:"STORE_DRIVER" env-default:"memory"`
	MySQLDSN    string        `env:"MYSQL_DSN" env-default:"user:password@tcp(localhost:3306)/recipes?charset=utf8mb4&parseTime=True&loc=Local"`
	RedisAddr   string        `env:"REDIS_ADDR"`
	RedisPass   string        `env:"REDIS_PASSWORD"`
	RedisDB     int           `env:"REDIS_DB" env-default:"0"`
	CacheTTL    time.Duration `env:"CACHE_TTL" env-default:"5m"`
	StaticDir   string        `env:"STATIC_DIR" env-default:"public"`
	SeedSamples bool          `env:"SEED_SAMPLE_RECIPES" env-default:"true"`
	SwaggerHost string        `env:"SWAGGER_HOST"`
}

// Load builds Config from environment with sensible defaults.
func Load() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("read env: %w", err)
	}
	if cfg.StoreDriver != DriverMemory && cfg.StoreDriver != DriverMySQL {
		return nil, fmt.Errorf("unsupported STORE_DRIVER %q", cfg.StoreDriver)
	}
	return &cfg, nil
}
