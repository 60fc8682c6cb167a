package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"github.com/meur/tierboard/internal/models"
)

// Store handles all database operations
type Store struct {
	db *sql.DB
}

// New creates a new Store with SQLite
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.db.Close()
}

// migrate runs database migrations
func (s *Store) migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS kv (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS share_images (
			session_id TEXT NOT NULL,
			item_id TEXT NOT NULL,
			mime TEXT NOT NULL,
			data BLOB NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (session_id, item_id)
		)`,
		`CREATE TABLE IF NOT EXISTS tier_lists (
			id TEXT PRIMARY KEY,
			data TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE INDEX IF NOT EXISTS idx_tier_lists_created ON tier_lists(created_at)`,
	}

	for _, m := range migrations {
		if _, err := s.db.Exec(m); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}

	return nil
}

// --- Local slot ---

// ReadSlot returns the value stored under key, or nil if there is none
func (s *Store) ReadSlot(key string) ([]byte, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return []byte(value), nil
}

// WriteSlot stores value under key, replacing any previous value
func (s *Store) WriteSlot(key string, value []byte) error {
	_, err := s.db.Exec(`
		INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, key, string(value), time.Now())
	return err
}

// --- Images ---

// PutImage stores an uploaded image, overwriting an existing one at the same path
func (s *Store) PutImage(ctx context.Context, sessionID, itemID, mime string, data []byte) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO share_images (session_id, item_id, mime, data, created_at) VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(session_id, item_id) DO UPDATE SET mime = excluded.mime, data = excluded.data
	`, sessionID, itemID, mime, data, time.Now())
	return err
}

// GetImage returns an uploaded image and its mime type
func (s *Store) GetImage(ctx context.Context, sessionID, itemID string) ([]byte, string, error) {
	var data []byte
	var mime string
	err := s.db.QueryRowContext(ctx, `
		SELECT data, mime FROM share_images WHERE session_id = ? AND item_id = ?
	`, sessionID, itemID).Scan(&data, &mime)
	if err == sql.ErrNoRows {
		return nil, "", nil
	}
	if err != nil {
		return nil, "", err
	}
	return data, mime, nil
}

// --- Share records ---

// CreateShareRecord inserts a new share record and returns it
func (s *Store) CreateShareRecord(ctx context.Context, state models.TierListState) (*models.ShareRecord, error) {
	id := uuid.New().String()
	data, err := json.Marshal(state)
	if err != nil {
		return nil, fmt.Errorf("failed to encode share record: %w", err)
	}
	now := time.Now().UTC()

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO tier_lists (id, data, created_at) VALUES (?, ?, ?)
	`, id, string(data), now)
	if err != nil {
		return nil, err
	}

	return &models.ShareRecord{ID: id, Data: state, CreatedAt: now}, nil
}

// GetShareRecord returns a share record by ID
func (s *Store) GetShareRecord(ctx context.Context, id string) (*models.ShareRecord, error) {
	var rec models.ShareRecord
	var data string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, data, created_at FROM tier_lists WHERE id = ?
	`, id).Scan(&rec.ID, &data, &rec.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(data), &rec.Data); err != nil {
		return nil, fmt.Errorf("failed to decode share record: %w", err)
	}
	return &rec, nil
}
