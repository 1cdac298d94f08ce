package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/julianstephens/habitquest/internal/constants"
	"github.com/julianstephens/habitquest/internal/models"
)

// SQLiteStore keeps the snapshot as a single row in a snapshots table, keyed
// by the fixed snapshot name.
type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{path: path}
}

func (s *SQLiteStore) open() error {
	if s.db != nil {
		return nil
	}
	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db
	return nil
}

func (s *SQLiteStore) ensureSchema() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS snapshots (
			name TEXT PRIMARY KEY,
			data TEXT NOT NULL,
			updated_at TEXT NOT NULL
		)`)
	return err
}

func (s *SQLiteStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := s.open(); err != nil {
		return err
	}
	if err := s.ensureSchema(); err != nil {
		return fmt.Errorf("failed to create snapshot table: %w", err)
	}

	// Write a default snapshot only on first run
	var count int
	row := s.db.QueryRow(`SELECT count(*) FROM snapshots WHERE name = ?`, constants.SnapshotName)
	if err := row.Scan(&count); err != nil {
		return err
	}
	if count == 0 {
		return s.Save(models.DefaultState())
	}
	return nil
}

func (s *SQLiteStore) Load() (*models.State, error) {
	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return nil, ErrNotInitialized
	}
	if err := s.open(); err != nil {
		return nil, err
	}
	if err := s.ensureSchema(); err != nil {
		return nil, fmt.Errorf("failed to create snapshot table: %w", err)
	}

	var data string
	row := s.db.QueryRow(`SELECT data FROM snapshots WHERE name = ?`, constants.SnapshotName)
	if err := row.Scan(&data); err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotInitialized
		}
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}

	state := &models.State{}
	if err := json.Unmarshal([]byte(data), state); err != nil {
		return nil, fmt.Errorf("failed to parse snapshot: %w", err)
	}
	state.Normalize()
	return state, nil
}

func (s *SQLiteStore) Save(state *models.State) error {
	if err := s.open(); err != nil {
		return err
	}
	if err := s.ensureSchema(); err != nil {
		return fmt.Errorf("failed to create snapshot table: %w", err)
	}

	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to serialize snapshot: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT INTO snapshots (name, data, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			data = excluded.data,
			updated_at = excluded.updated_at`,
		constants.SnapshotName, string(data), time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLiteStore) Path() string {
	return s.path
}
