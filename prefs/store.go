// Package prefs persists watch face preferences in SQLite.
//
// Values live in a single key/value table. Keys that were never written
// load as the defaults, so a fresh database behaves like a fresh install.
package prefs

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	_ "modernc.org/sqlite"

	wf "github.com/gogpu/watchface"
	"github.com/gogpu/watchface/host"
)

// Preference keys.
const (
	KeyPrimaryColor    = "primary_color"
	KeyUnreadIndicator = "unread_indicator"
)

// ErrNotFound is returned by Get for a key that has no stored value.
var ErrNotFound = errors.New("prefs: key not found")

const schema = `
CREATE TABLE IF NOT EXISTS preferences (
    key   TEXT PRIMARY KEY,
    value TEXT NOT NULL
);
`

// Store is a host.PreferenceSource backed by a SQLite database.
type Store struct {
	db *sql.DB
}

var _ host.PreferenceSource = (*Store)(nil)

// Open opens (creating if needed) the database at path. Use ":memory:"
// for a throwaway store.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("prefs: open %s: %w", path, err)
	}
	// One connection keeps ":memory:" databases shared.
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("prefs: create schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Get returns the raw value stored under key.
func (s *Store) Get(ctx context.Context, key string) (string, error) {
	var v string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM preferences WHERE key = ?`, key).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("prefs: get %s: %w", key, err)
	}
	return v, nil
}

// Set stores value under key.
func (s *Store) Set(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO preferences (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, value)
	if err != nil {
		return fmt.Errorf("prefs: set %s: %w", key, err)
	}
	return nil
}

// Load implements host.PreferenceSource. Missing keys take their default;
// a malformed stored value is an error.
func (s *Store) Load() (host.Preferences, error) {
	ctx := context.Background()
	p := host.DefaultPreferences()

	switch v, err := s.Get(ctx, KeyPrimaryColor); {
	case errors.Is(err, ErrNotFound):
	case err != nil:
		return p, err
	default:
		c, err := wf.ParseHex(v)
		if err != nil {
			return p, fmt.Errorf("prefs: %s: %w", KeyPrimaryColor, err)
		}
		p.PrimaryColor = c
	}

	switch v, err := s.Get(ctx, KeyUnreadIndicator); {
	case errors.Is(err, ErrNotFound):
	case err != nil:
		return p, err
	default:
		b, err := strconv.ParseBool(v)
		if err != nil {
			return p, fmt.Errorf("prefs: %s: %w", KeyUnreadIndicator, err)
		}
		p.UnreadIndicator = b
	}
	return p, nil
}

// Save writes both preferences in one transaction.
func (s *Store) Save(ctx context.Context, p host.Preferences) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("prefs: begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	const upsert = `INSERT INTO preferences (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`
	if _, err := tx.ExecContext(ctx, upsert, KeyPrimaryColor, p.PrimaryColor.Hex()); err != nil {
		return fmt.Errorf("prefs: save %s: %w", KeyPrimaryColor, err)
	}
	if _, err := tx.ExecContext(ctx, upsert, KeyUnreadIndicator, strconv.FormatBool(p.UnreadIndicator)); err != nil {
		return fmt.Errorf("prefs: save %s: %w", KeyUnreadIndicator, err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("prefs: commit: %w", err)
	}
	return nil
}
