package database

import (
	"context"
	"fmt"
	"time"

	"catalog-backend/pkg/logger"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DBConfig centralizes everything needed to reach PostgreSQL:
// connection info, pool sizing and the retry policy used at startup.
type DBConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	DBName   string

	MaxConns          int32
	MinConns          int32
	MaxConnLifetime   time.Duration
	MaxConnIdleTime   time.Duration
	HealthCheckPeriod time.Duration

	MaxRetries     int
	RetryDelay     time.Duration
	ConnectTimeout time.Duration
}

// PostgresDB wraps the pgx connection pool and its lifecycle.
type PostgresDB struct {
	Pool   *pgxpool.Pool
	Config *DBConfig
}

func NewPostgresDB(config *DBConfig) *PostgresDB {
	return &PostgresDB{Config: config}
}

func (db *PostgresDB) buildConnectionString() string {
	return fmt.Sprintf(
		"postgresql://%s:%s@%s:%d/%s",
		db.Config.Username,
		db.Config.Password,
		db.Config.Host,
		db.Config.Port,
		db.Config.DBName,
	)
}

func (db *PostgresDB) configurePool() (*pgxpool.Config, error) {
	config, err := pgxpool.ParseConfig(db.buildConnectionString())
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	config.MaxConns = db.Config.MaxConns
	config.MinConns = db.Config.MinConns
	config.MaxConnLifetime = db.Config.MaxConnLifetime
	config.MaxConnIdleTime = db.Config.MaxConnIdleTime
	config.HealthCheckPeriod = db.Config.HealthCheckPeriod
	config.ConnConfig.ConnectTimeout = db.Config.ConnectTimeout

	return config, nil
}

// connectWithRetry retries with exponential backoff so a database that is
// still coming up does not kill the process.
func (db *PostgresDB) connectWithRetry(ctx context.Context, config *pgxpool.Config) (*pgxpool.Pool, error) {
	var pool *pgxpool.Pool
	var lastErr error

	for attempt := 1; attempt <= db.Config.MaxRetries; attempt++ {
		logger.Info("database connection attempt", map[string]interface{}{
			"attempt": attempt,
			"max":     db.Config.MaxRetries,
		})

		connectCtx, cancel := context.WithTimeout(ctx, db.Config.ConnectTimeout)
		pool, lastErr = pgxpool.NewWithConfig(connectCtx, config)
		cancel()

		if lastErr == nil {
			if err := pool.Ping(ctx); err != nil {
				pool.Close()
				lastErr = err
			} else {
				return pool, nil
			}
		}

		logger.Error("database connection failed", lastErr)

		if attempt < db.Config.MaxRetries {
			delay := db.Config.RetryDelay * time.Duration(1<<uint(attempt-1))
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return nil, fmt.Errorf("connection cancelled: %w", ctx.Err())
			}
		}
	}

	return nil, fmt.Errorf("failed to connect after %d attempts: %w",
		db.Config.MaxRetries, lastErr)
}

// Connect establishes the pool: configure, retry, verify.
func (db *PostgresDB) Connect(ctx context.Context) error {
	config, err := db.configurePool()
	if err != nil {
		return fmt.Errorf("pool configuration failed: %w", err)
	}

	pool, err := db.connectWithRetry(ctx, config)
	if err != nil {
		return fmt.Errorf("connection failed: %w", err)
	}

	db.Pool = pool
	logger.Info("database connection established", nil)
	return nil
}

// HealthCheck verifies connectivity; wired to the health endpoint.
func (db *PostgresDB) HealthCheck(ctx context.Context) error {
	if db.Pool == nil {
		return fmt.Errorf("database pool is not initialized")
	}

	healthCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := db.Pool.Ping(healthCtx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}

	return nil
}

// Close releases the pool.
func (db *PostgresDB) Close() {
	if db.Pool != nil {
		db.Pool.Close()
	}
}
