// Package storage provides SQLite persistence for the user's roster state.
// The advisor never touches this package directly; it consumes the
// roster.Snapshot the repository produces.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver
)

// DB wraps the database connection.
type DB struct {
	conn *sql.DB
}

// Config holds database configuration settings.
type Config struct {
	// Path is the file path to the SQLite database.
	// Use ":memory:" for an in-memory database (useful for testing).
	Path string

	// MaxOpenConns sets the maximum number of open connections.
	// Default: 10
	MaxOpenConns int

	// MaxIdleConns sets the maximum number of idle connections.
	// Default: 2
	MaxIdleConns int

	// ConnMaxLifetime sets how long a connection may be reused.
	// Default: 5 minutes
	ConnMaxLifetime time.Duration

	// BusyTimeout sets how long to wait when the database is locked.
	// Default: 5 seconds
	BusyTimeout time.Duration

	// AutoMigrate runs pending schema migrations on Open.
	AutoMigrate bool
}

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig(path string) *Config {
	return &Config{
		Path:            path,
		MaxOpenConns:    10,
		MaxIdleConns:    2,
		ConnMaxLifetime: 5 * time.Minute,
		BusyTimeout:     5 * time.Second,
	}
}

// Open creates a new database connection with the given configuration.
func Open(config *Config) (*DB, error) {
	if config == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}

	if config.Path != ":memory:" {
		dir := filepath.Dir(config.Path)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	dsn := fmt.Sprintf("%s?_busy_timeout=%d&_journal_mode=WAL&_synchronous=NORMAL&_foreign_keys=on",
		config.Path, config.BusyTimeout.Milliseconds())

	conn, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	conn.SetMaxOpenConns(config.MaxOpenConns)
	conn.SetMaxIdleConns(config.MaxIdleConns)
	conn.SetConnMaxLifetime(config.ConnMaxLifetime)

	if err := conn.Ping(); err != nil {
		if closeErr := conn.Close(); closeErr != nil {
			return nil, fmt.Errorf("close database after ping error: %w (original error: %v)", closeErr, err)
		}
		return nil, fmt.Errorf("ping database: %w", err)
	}

	db := &DB{conn: conn}

	if config.AutoMigrate && config.Path != ":memory:" {
		if err := db.Migrate(config.Path); err != nil {
			if closeErr := conn.Close(); closeErr != nil {
				return nil, fmt.Errorf("close database after migration error: %w (original error: %v)", closeErr, err)
			}
			return nil, err
		}
	}

	return db, nil
}

// Conn returns the underlying *sql.DB for repository construction.
func (db *DB) Conn() *sql.DB {
	return db.conn
}

// Close closes the database connection.
func (db *DB) Close() error {
	if err := db.conn.Close(); err != nil {
		return fmt.Errorf("close database: %w", err)
	}
	return nil
}

// Migrate applies all pending schema migrations.
func (db *DB) Migrate(path string) error {
	mgr, err := NewMigrationManager(path)
	if err != nil {
		return err
	}
	defer func() {
		_, _ = mgr.Close()
	}()
	return mgr.Up()
}
