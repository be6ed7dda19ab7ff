// Package store persists neural profiles and session outcomes in SQLite.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/k2jama/entrain/internal/models"
)

// ErrNotFound is returned when a profile does not exist.
var ErrNotFound = errors.New("profile not found")

const schema = `
CREATE TABLE IF NOT EXISTS profiles (
	profile_id       TEXT PRIMARY KEY,
	name             TEXT NOT NULL,
	experience_level TEXT NOT NULL,
	data             TEXT NOT NULL,
	created_at       TEXT NOT NULL,
	updated_at       TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS outcomes (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	profile_id TEXT NOT NULL REFERENCES profiles(profile_id) ON DELETE CASCADE,
	date       TEXT NOT NULL,
	data       TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_outcomes_profile ON outcomes(profile_id);
`

// ProfileStore stores profiles and their session outcomes. Profiles are
// serialized as JSON alongside the columns used for lookups.
type ProfileStore struct {
	mu   sync.RWMutex
	db   *sql.DB
	path string
}

// Open opens the store at path, creating the database and its parent
// directory if needed.
func Open(path string) (*ProfileStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("creating store directory: %w", err)
	}

	db, err := sql.Open("sqlite", path+"?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// SQLite works best with a single writer.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(context.Background(), schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing schema: %w", err)
	}

	return &ProfileStore{db: db, path: path}, nil
}

// Close closes the underlying database.
func (s *ProfileStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db.Close()
}

// SaveProfile inserts or updates a profile.
func (s *ProfileStore) SaveProfile(ctx context.Context, p models.NeuralProfile) error {
	if p.ProfileID == "" {
		return fmt.Errorf("saving profile: profile ID is empty")
	}

	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshaling profile %s: %w", p.ProfileID, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC().Format(time.RFC3339Nano)
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO profiles (profile_id, name, experience_level, data, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(profile_id) DO UPDATE SET
			name = excluded.name,
			experience_level = excluded.experience_level,
			data = excluded.data,
			updated_at = excluded.updated_at`,
		p.ProfileID, p.Name, string(p.Safety.ExperienceLevel), string(data), now, now)
	if err != nil {
		return fmt.Errorf("saving profile %s: %w", p.ProfileID, err)
	}
	return nil
}

// GetProfile returns the profile with the given id, or ErrNotFound.
func (s *ProfileStore) GetProfile(ctx context.Context, id string) (models.NeuralProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var data string
	err := s.db.QueryRowContext(ctx,
		`SELECT data FROM profiles WHERE profile_id = ?`, id).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return models.NeuralProfile{}, ErrNotFound
	}
	if err != nil {
		return models.NeuralProfile{}, fmt.Errorf("loading profile %s: %w", id, err)
	}

	var p models.NeuralProfile
	if err := json.Unmarshal([]byte(data), &p); err != nil {
		return models.NeuralProfile{}, fmt.Errorf("unmarshaling profile %s: %w", id, err)
	}
	return p, nil
}

// GetProfileByName returns the first profile with the given name, or
// ErrNotFound.
func (s *ProfileStore) GetProfileByName(ctx context.Context, name string) (models.NeuralProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var data string
	err := s.db.QueryRowContext(ctx,
		`SELECT data FROM profiles WHERE name = ? ORDER BY created_at LIMIT 1`, name).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return models.NeuralProfile{}, ErrNotFound
	}
	if err != nil {
		return models.NeuralProfile{}, fmt.Errorf("loading profile named %s: %w", name, err)
	}

	var p models.NeuralProfile
	if err := json.Unmarshal([]byte(data), &p); err != nil {
		return models.NeuralProfile{}, fmt.Errorf("unmarshaling profile named %s: %w", name, err)
	}
	return p, nil
}

// ListProfiles returns all profiles ordered by name.
func (s *ProfileStore) ListProfiles(ctx context.Context) ([]models.NeuralProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `SELECT data FROM profiles ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("listing profiles: %w", err)
	}
	defer rows.Close()

	var out []models.NeuralProfile
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, fmt.Errorf("listing profiles: %w", err)
		}
		var p models.NeuralProfile
		if err := json.Unmarshal([]byte(data), &p); err != nil {
			return nil, fmt.Errorf("unmarshaling profile: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// DeleteProfile removes a profile and its outcomes. Deleting a missing
// profile returns ErrNotFound.
func (s *ProfileStore) DeleteProfile(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx, `DELETE FROM profiles WHERE profile_id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting profile %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting profile %s: %w", id, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// AddOutcome appends a session outcome for a profile.
func (s *ProfileStore) AddOutcome(ctx context.Context, profileID string, o models.SessionOutcome) error {
	data, err := json.Marshal(o)
	if err != nil {
		return fmt.Errorf("marshaling outcome: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	date := o.Date
	if date.IsZero() {
		date = time.Now().UTC()
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO outcomes (profile_id, date, data) VALUES (?, ?, ?)`,
		profileID, date.Format(time.RFC3339Nano), string(data))
	if err != nil {
		return fmt.Errorf("saving outcome for %s: %w", profileID, err)
	}
	return nil
}

// ListOutcomes returns the most recent outcomes for a profile, newest
// first. A limit of 0 returns everything.
func (s *ProfileStore) ListOutcomes(ctx context.Context, profileID string, limit int) ([]models.SessionOutcome, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query := `SELECT data FROM outcomes WHERE profile_id = ? ORDER BY date DESC`
	args := []any{profileID}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing outcomes for %s: %w", profileID, err)
	}
	defer rows.Close()

	var out []models.SessionOutcome
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, fmt.Errorf("listing outcomes for %s: %w", profileID, err)
		}
		var o models.SessionOutcome
		if err := json.Unmarshal([]byte(data), &o); err != nil {
			return nil, fmt.Errorf("unmarshaling outcome: %w", err)
		}
		out = append(out, o)
	}
	return out, rows.Err()
}
