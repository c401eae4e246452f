package config // package config loads application configuration from environment variables

import (
	"os"
	"strconv"
	"time"
)

// Config holds all runtime configuration values. Each field corresponds
// to an environment variable. Unlike a hosted API, this application is
// expected to run locally with zero configuration, so every variable
// has a usable default; the SQLite driver in particular needs nothing
// beyond the defaults.
type Config struct {
	Env           string        // application environment (e.g. "dev", "prod")
	Port          string        // HTTP port to listen on
	DBDriver      string        // "sqlite3" (default) or "mysql"
	DBPath        string        // SQLite database file (sqlite3 driver only)
	DBUser        string        // database username (mysql driver only)
	DBPass        string        // database password (optional)
	DBHost        string        // database host address
	DBPort        string        // database port number
	DBName        string        // database name
	SessionSecret string        // secret used to sign session cookies
	SessionTTLMin int           // session cookie lifetime in minutes
	SelectionTTL  time.Duration // lifetime of the pending theater/showtime selection
	BcryptCost    int           // bcrypt cost for password hashing
}

// Load reads configuration values from environment variables and
// returns a Config. Missing variables fall back to local-development
// defaults.
func Load() Config {
	return Config{
		Env:           envStr("APP_ENV", "dev"),
		Port:          envStr("APP_PORT", "5000"),
		DBDriver:      envStr("DB_DRIVER", "sqlite3"),
		DBPath:        envStr("DB_PATH", "movie_magic.db"),
		DBUser:        envStr("DB_USER", "root"),
		DBPass:        os.Getenv("DB_PASS"), // empty allowed
		DBHost:        envStr("DB_HOST", "127.0.0.1"),
		DBPort:        envStr("DB_PORT", "3306"),
		DBName:        envStr("DB_NAME", "movie_magic"),
		SessionSecret: envStr("SESSION_SECRET", "local-dev-secret"),
		SessionTTLMin: envInt("SESSION_TTL_MIN", 720),
		SelectionTTL:  envDur("SELECTION_TTL", 30*time.Minute),
		BcryptCost:    envInt("BCRYPT_COST", 10),
	}
}

func envStr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func envInt(k string, d int) int {
	v := os.Getenv(k)
	if v == "" {
		return d
	}
	if n, err := strconv.Atoi(v); err == nil {
		return n
	}
	return d
}

func envDur(k string, d time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return d
	}
	if dur, err := time.ParseDuration(v); err == nil {
		return dur
	}
	return d
}
