package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	_ "github.com/lib/pq"

	"github.com/julianstephens/habitquest/internal/constants"
	"github.com/julianstephens/habitquest/internal/models"
)

// PostgresStore keeps the snapshot as a single row in a snapshots table, for
// users who want the state on a shared database instead of a local file.
type PostgresStore struct {
	connStr string
	db      *sql.DB
}

func NewPostgresStore(connStr string) *PostgresStore {
	return &PostgresStore{connStr: connStr}
}

// HasEmbeddedCredentials reports whether a connection string carries a
// password inline. Such strings are rejected; credentials belong in the
// environment, .pgpass, or the OS keyring.
func HasEmbeddedCredentials(connStr string) bool {
	if strings.HasPrefix(connStr, "postgres://") || strings.HasPrefix(connStr, "postgresql://") {
		u, err := url.Parse(connStr)
		if err != nil {
			return false
		}
		if u.User != nil {
			if _, set := u.User.Password(); set {
				return true
			}
		}
		return false
	}
	// key=value DSN form
	for _, field := range strings.Fields(connStr) {
		if strings.HasPrefix(field, "password=") {
			return true
		}
	}
	return false
}

func (s *PostgresStore) open() error {
	if s.db != nil {
		return nil
	}
	db, err := sql.Open("postgres", s.connStr)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return fmt.Errorf("failed to reach database: %w", err)
	}
	s.db = db
	return nil
}

func (s *PostgresStore) ensureSchema() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS snapshots (
			name TEXT PRIMARY KEY,
			data TEXT NOT NULL,
			updated_at TEXT NOT NULL
		)`)
	return err
}

func (s *PostgresStore) Init() error {
	if err := s.open(); err != nil {
		return err
	}
	if err := s.ensureSchema(); err != nil {
		return fmt.Errorf("failed to create snapshot table: %w", err)
	}

	var count int
	row := s.db.QueryRow(`SELECT count(*) FROM snapshots WHERE name = $1`, constants.SnapshotName)
	if err := row.Scan(&count); err != nil {
		return err
	}
	if count == 0 {
		return s.Save(models.DefaultState())
	}
	return nil
}

func (s *PostgresStore) Load() (*models.State, error) {
	if err := s.open(); err != nil {
		return nil, err
	}
	if err := s.ensureSchema(); err != nil {
		return nil, fmt.Errorf("failed to create snapshot table: %w", err)
	}

	var data string
	row := s.db.QueryRow(`SELECT data FROM snapshots WHERE name = $1`, constants.SnapshotName)
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

func (s *PostgresStore) Save(state *models.State) error {
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
		VALUES ($1, $2, $3)
		ON CONFLICT(name) DO UPDATE SET
			data = excluded.data,
			updated_at = excluded.updated_at`,
		constants.SnapshotName, string(data), time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	return nil
}

func (s *PostgresStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *PostgresStore) Path() string {
	return s.connStr
}
