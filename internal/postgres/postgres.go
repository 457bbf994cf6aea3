package postgres

import (
	"fmt"
	"time"

	"ordersvc/internal/config"
	"ordersvc/pkg/utils"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

// New connects to Postgres, retrying the initial connect with backoff. The
// retry applies to bootstrap only, not to queries.
func New(cfg config.Postgres) (*sqlx.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode,
	)

	var db *sqlx.DB
	connect := func() error {
		var err error
		db, err = sqlx.Connect("postgres", dsn)
		return err
	}

	retryCfg := utils.RetryConfig{
		MaxAttempts:  cfg.ConnAttempts,
		InitialDelay: 100 * time.Millisecond,
		Multiplier:   2,
	}
	if err := utils.Retry(retryCfg, connect); err != nil {
		return nil, fmt.Errorf("failed to connect to db: %w", err)
	}

	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping db: %w", err)
	}

	return db, nil
}
