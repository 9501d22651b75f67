package save

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS saves (
	slot       TEXT PRIMARY KEY,
	data       BLOB NOT NULL,
	created_at TEXT NOT NULL
);
`

// ErrNoSave is returned when a slot has no saved game.
var ErrNoSave = errors.New("no save in slot")

// Store persists save slots in a sqlite database.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the save database at path.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create save dir: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open save db: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init save schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save writes the token's data into its slot, replacing any previous save.
func (s *Store) Save(df DataFile) error {
	if df.Slot == "" {
		return errors.New("save: empty slot name")
	}
	_, err := s.db.Exec(
		`INSERT INTO saves (slot, data, created_at) VALUES (?, ?, ?)
		 ON CONFLICT(slot) DO UPDATE SET data = excluded.data, created_at = excluded.created_at`,
		df.Slot, df.Data, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("save slot %q: %w", df.Slot, err)
	}
	return nil
}

// Load reads the token stored in a slot.
func (s *Store) Load(slot string) (DataFile, error) {
	var data []byte
	err := s.db.QueryRow(`SELECT data FROM saves WHERE slot = ?`, slot).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return DataFile{}, fmt.Errorf("load slot %q: %w", slot, ErrNoSave)
	}
	if err != nil {
		return DataFile{}, fmt.Errorf("load slot %q: %w", slot, err)
	}
	return DataFile{Slot: slot, Data: data}, nil
}

// Delete removes a slot; deleting a missing slot is not an error.
func (s *Store) Delete(slot string) error {
	if _, err := s.db.Exec(`DELETE FROM saves WHERE slot = ?`, slot); err != nil {
		return fmt.Errorf("delete slot %q: %w", slot, err)
	}
	return nil
}

// Slots lists saved slot names, newest first.
func (s *Store) Slots() ([]string, error) {
	rows, err := s.db.Query(`SELECT slot FROM saves ORDER BY created_at DESC, slot`)
	if err != nil {
		return nil, fmt.Errorf("list slots: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var slot string
		if err := rows.Scan(&slot); err != nil {
			return nil, fmt.Errorf("scan slot: %w", err)
		}
		out = append(out, slot)
	}
	return out, rows.Err()
}
