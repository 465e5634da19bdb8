// Package storage provides the SQLite-backed geocode cache.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/seongmin-k/biffplan/internal/service"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// SQLiteGeocodeCache persists resolved geocode queries so repeated runs of
// the enrichment pass skip the network entirely. Only hits are stored;
// misses are retried on the next run.
type SQLiteGeocodeCache struct {
	db     *sql.DB
	dbPath string
}

var _ service.GeocodeCache = (*SQLiteGeocodeCache)(nil)

// NewSQLiteGeocodeCache opens (or creates) the cache database.
func NewSQLiteGeocodeCache(dbPath string) (*SQLiteGeocodeCache, error) {
	if dbPath == "" {
		return nil, fmt.Errorf("dbPath cannot be empty")
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite doesn't benefit from multiple connections.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	s := &SQLiteGeocodeCache{db: db, dbPath: dbPath}
	if err := s.migrate(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

func (s *SQLiteGeocodeCache) migrate() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS geocode_cache (
		query TEXT PRIMARY KEY,
		lat REAL NOT NULL,
		lon REAL NOT NULL,
		resolved_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`)
	if err != nil {
		return fmt.Errorf("failed to create geocode_cache table: %w", err)
	}
	return nil
}

// Get returns the cached coordinate for a query, if any.
func (s *SQLiteGeocodeCache) Get(ctx context.Context, query string) (*service.Coordinate, bool, error) {
	var c service.Coordinate
	err := s.db.QueryRowContext(ctx,
		`SELECT lat, lon FROM geocode_cache WHERE query = ?`, query,
	).Scan(&c.Lat, &c.Lon)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read geocode cache: %w", err)
	}
	return &c, true, nil
}

// Put stores a resolved coordinate. Nil coordinates are not stored; a miss
// is a retryable state, not a fact worth persisting.
func (s *SQLiteGeocodeCache) Put(ctx context.Context, query string, c *service.Coordinate) error {
	if c == nil {
		return nil
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO geocode_cache (query, lat, lon) VALUES (?, ?, ?)
		 ON CONFLICT(query) DO UPDATE SET lat = excluded.lat, lon = excluded.lon, resolved_at = CURRENT_TIMESTAMP`,
		query, c.Lat, c.Lon)
	if err != nil {
		return fmt.Errorf("failed to write geocode cache: %w", err)
	}
	return nil
}

// Close closes the database connection.
func (s *SQLiteGeocodeCache) Close() error {
	return s.db.Close()
}
