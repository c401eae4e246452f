package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/mattn/go-sqlite3"

	"github.com/moviemagic/movie-magic/internal/config"
)

// Open connects to the configured database and verifies the connection.
// The sqlite3 driver is the zero-config local default; mysql is used in
// hosted deployments.
func Open(cfg config.Config) (*sql.DB, error) {
	var dsn string
	switch cfg.DBDriver {
	case "sqlite3":
		// _busy_timeout smooths over writer contention from concurrent requests.
		dsn = fmt.Sprintf("file:%s?_busy_timeout=5000", cfg.DBPath)
	case "mysql":
		auth := cfg.DBUser
		if cfg.DBPass != "" {
			auth = fmt.Sprintf("%s:%s", cfg.DBUser, cfg.DBPass)
		}
		// parseTime=true -> DATETIME -> time.Time | loc=UTC keeps times consistent
		dsn = fmt.Sprintf("%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=UTC",
			auth, cfg.DBHost, cfg.DBPort, cfg.DBName)
	default:
		return nil, fmt.Errorf("unsupported db driver %q", cfg.DBDriver)
	}

	db, err := sql.Open(cfg.DBDriver, dsn)
	if err != nil {
		return nil, err
	}

	// Pool settings. SQLite tolerates a single writer; MySQL gets a real pool.
	if cfg.DBDriver == "sqlite3" {
		db.SetMaxOpenConns(1)
	} else {
		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(25)
		db.SetConnMaxLifetime(30 * time.Minute)
	}

	// Ping with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		return nil, err
	}
	return db, nil
}
