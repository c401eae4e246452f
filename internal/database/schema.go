package database

import (
	"context"
	"database/sql"
	"fmt"
)

// Migrate creates the users and bookings tables when they do not exist
// yet. The application bootstraps its own schema at startup so a fresh
// checkout runs without a separate migration step. Statements are
// written per dialect because the auto-increment syntax differs.
func Migrate(ctx context.Context, db *sql.DB, driver string) error {
	var stmts []string
	switch driver {
	case "sqlite3":
		stmts = []string{
			`CREATE TABLE IF NOT EXISTS users (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				name TEXT NOT NULL,
				email TEXT NOT NULL UNIQUE,
				password_hash TEXT NOT NULL,
				created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
			)`,
			`CREATE TABLE IF NOT EXISTS bookings (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				booking_id TEXT NOT NULL UNIQUE,
				user_id INTEGER NOT NULL REFERENCES users(id),
				movie TEXT NOT NULL,
				theater TEXT NOT NULL,
				show_time TEXT NOT NULL,
				seats TEXT NOT NULL,
				price INTEGER NOT NULL,
				created_at TIMESTAMP NOT NULL
			)`,
			`CREATE INDEX IF NOT EXISTS idx_bookings_user_id ON bookings(user_id)`,
		}
	case "mysql":
		stmts = []string{
			`CREATE TABLE IF NOT EXISTS users (
				id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
				name VARCHAR(100) NOT NULL,
				email VARCHAR(100) NOT NULL,
				password_hash VARCHAR(200) NOT NULL,
				created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
				PRIMARY KEY (id),
				UNIQUE KEY uq_users_email (email)
			) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
			`CREATE TABLE IF NOT EXISTS bookings (
				id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
				booking_id VARCHAR(100) NOT NULL,
				user_id BIGINT UNSIGNED NOT NULL,
				movie VARCHAR(100) NOT NULL,
				theater VARCHAR(100) NOT NULL,
				show_time VARCHAR(50) NOT NULL,
				seats VARCHAR(500) NOT NULL,
				price INT NOT NULL,
				created_at DATETIME NOT NULL,
				PRIMARY KEY (id),
				UNIQUE KEY uq_bookings_booking_id (booking_id),
				KEY idx_bookings_user_id (user_id),
				CONSTRAINT fk_bookings_user FOREIGN KEY (user_id) REFERENCES users(id)
			) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
		}
	default:
		return fmt.Errorf("unsupported db driver %q", driver)
	}
	for _, s := range stmts {
		if _, err := db.ExecContext(ctx, s); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
