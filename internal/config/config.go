package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Worker   WorkerConfig
}

type ServerConfig struct {
	Port            string        `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"10s"`
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" envDefault:"30s"`
}

type DatabaseConfig struct {
	Host            string        `env:"DB_HOST" envDefault:"localhost"`
	Port            string        `env:"DB_PORT" envDefault:"5432"`
	User            string        `env:"DB_USER" envDefault:"postgres"`
	Password        string        `env:"DB_PASSWORD" envDefault:"postgres"`
	Name            string        `env:"DB_NAME" envDefault:"swapmarket"`
	MaxOpenConns    int           `env:"DB_MAX_OPEN_CONNS" envDefault:"25"`
	MaxIdleConns    int           `env:"DB_MAX_IDLE_CONNS" envDefault:"5"`
	ConnMaxLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME" envDefault:"5m"`
	ConnMaxIdleTime time.Duration `env:"DB_CONN_MAX_IDLE_TIME" envDefault:"5m"`
	MigrationsDir   string        `env:"DB_MIGRATIONS_DIR" envDefault:"migrations"`
	// SequentialWrites disables multi-statement transactions and commits
	// each write individually, ledger entry before balance.
	SequentialWrites bool `env:"DB_SEQUENTIAL_WRITES" envDefault:"false"`
}

type WorkerConfig struct {
	// ReconcileInterval is how often the ledger audit runs over recently
	// active accounts.
	ReconcileInterval time.Duration `env:"WORKER_RECONCILE_INTERVAL" envDefault:"10m"`
	// ReconcileRepair overwrites drifted cached balances instead of only
	// reporting them.
	ReconcileRepair bool `env:"WORKER_RECONCILE_REPAIR" envDefault:"false"`
	ReconcileBatch  int  `env:"WORKER_RECONCILE_BATCH" envDefault:"50"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}
