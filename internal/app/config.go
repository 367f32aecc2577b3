package app

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	apigrpc "github.com/klagrida/fitnesse-calculator-demo/internal/api/grpc"
	"github.com/klagrida/fitnesse-calculator-demo/internal/api/http"
	"github.com/klagrida/fitnesse-calculator-demo/internal/infrastructure/click"
	"github.com/klagrida/fitnesse-calculator-demo/internal/infrastructure/kafka"
	"github.com/klagrida/fitnesse-calculator-demo/internal/infrastructure/mongo"
	"github.com/klagrida/fitnesse-calculator-demo/internal/infrastructure/pg"
	"github.com/klagrida/fitnesse-calculator-demo/internal/infrastructure/redis"
	"github.com/klagrida/fitnesse-calculator-demo/internal/pkg/logger"
)

const AppName = "CALCULATOR"

// Storage backends for evaluation history.
const (
	StoragePostgres = "pg"
	StorageMongo    = "mongo"
	StorageMemory   = "memory"
)

// Config is filled by envconfig with the CALCULATOR prefix.
type Config struct {
	Server     http.ServerConfig `envconfig:"SERVER"`
	Grpc       apigrpc.Config    `envconfig:"GRPC"`
	Storage    string            `envconfig:"STORAGE" default:"memory"`
	DB         pg.Config         `envconfig:"DB"`
	Mongo      mongo.Config      `envconfig:"MONGO"`
	Redis      redis.Config      `envconfig:"REDIS"`
	Kafka      kafka.Config      `envconfig:"KAFKA"`
	ClickHouse click.Config      `envconfig:"CLICKHOUSE"`
	Log        logger.Config     `envconfig:"LOG"`
}

// Validate checks values envconfig cannot.
func (c Config) Validate() error {
	switch c.Storage {
	case StoragePostgres, StorageMongo, StorageMemory:
		return nil
	}
	return fmt.Errorf("config: unknown storage %q (want pg, mongo or memory)", c.Storage)
}

// LoadCfg loads an optional .env file (CALCULATOR_ENV_FILE, default ".env") and then
// fills Config from the environment.
func LoadCfg() (Config, error) {
	envFile := os.Getenv(AppName + "_ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil {
		slog.Debug("config: no .env file, using environment", "path", envFile, "error", err)
	}

	var cfg Config
	if err := envconfig.Process(AppName, &cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
