package config

import (
	"database/sql"
	"fmt"
	"os"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite"

	"github.com/JC-Quero/gym-tracker/migrations"
)

// Config carries everything the server reads from the environment.
type Config struct {
	// DatabaseURL is a MySQL DSN (user:pass@tcp(host:port)/db). When empty
	// the server falls back to an embedded SQLite file.
	DatabaseURL string
	SQLitePath  string
	Port        string
	JWTSecret   string
}

// Load reads configuration from the environment, honoring a local .env file.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		DatabaseURL: os.Getenv("DATABASE_URL"),
		SQLitePath:  getEnv("SQLITE_PATH", "gym.db"),
		Port:        getEnv("PORT", "8000"),
		JWTSecret:   getEnv("JWT_SECRET", "dev-secret-change-me"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// OpenDB opens the configured store and returns the handle plus its dialect.
func (c *Config) OpenDB() (*sql.DB, string, error) {
	if c.DatabaseURL != "" {
		db, err := openMySQL(c.DatabaseURL)
		return db, migrations.DialectMySQL, err
	}
	db, err := openSQLite(c.SQLitePath)
	return db, migrations.DialectSQLite, err
}

func openMySQL(dsn string) (*sql.DB, error) {
	var db *sql.DB
	var err error
	for i := 0; i < 10; i++ {
		db, err = sql.Open("mysql", dsn)
		if err == nil {
			err = db.Ping()
			if err == nil {
				// Remote hosts drop idle connections; recycle them
				// before that happens.
				db.SetConnMaxLifetime(5 * time.Minute)
				db.SetMaxOpenConns(10)
				db.SetMaxIdleConns(5)
				log.Info().Msg("Connected to MySQL")
				return db, nil
			}
		}
		log.Warn().Err(err).Msgf("Retry %d: failed to connect to MySQL", i+1)
		time.Sleep(3 * time.Second)
	}
	return nil, fmt.Errorf("failed to connect to MySQL after retries: %w", err)
}

func openSQLite(path string) (*sql.DB, error) {
	// Pragmas go in the DSN so every pooled connection gets them.
	dsn := fmt.Sprintf("file:%s?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	log.Info().Str("path", path).Msg("Using embedded SQLite store")
	return db, nil
}
