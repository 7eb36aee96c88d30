// Package session persists the logged-in user's minimal profile in a local
// SQLite file so a restart of the dashboard process does not log the staff
// member out. Only id, email and name are ever stored.
package session

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/prathyu116/NGO-RESOURCE-CLIENT/models"
)

const schema = `
CREATE TABLE IF NOT EXISTS current_user_profile (
    slot       INTEGER PRIMARY KEY CHECK (slot = 1),
    user_id    TEXT NOT NULL,
    email      TEXT NOT NULL,
    name       TEXT NOT NULL,
    saved_at   DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`

type Store struct {
	db *sql.DB
}

// Open opens (or creates) the session database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening session database: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, fmt.Errorf("setting pragma %q: %w", p, err)
		}
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating session schema: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// SaveUser stores the profile, replacing any previous one. There is a single
// slot: one logged-in user per dashboard instance.
func (s *Store) SaveUser(ctx context.Context, user models.User) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO current_user_profile (slot, user_id, email, name)
		 VALUES (1, ?, ?, ?)
		 ON CONFLICT(slot) DO UPDATE SET
		   user_id = excluded.user_id,
		   email = excluded.email,
		   name = excluded.name,
		   saved_at = CURRENT_TIMESTAMP`,
		user.ID, user.Email, user.Name,
	)
	if err != nil {
		return fmt.Errorf("saving user profile: %w", err)
	}
	return nil
}

// CurrentUser returns the stored profile, or nil when nobody is logged in.
func (s *Store) CurrentUser(ctx context.Context) (*models.User, error) {
	user := &models.User{}
	err := s.db.QueryRowContext(ctx,
		`SELECT user_id, email, name FROM current_user_profile WHERE slot = 1`,
	).Scan(&user.ID, &user.Email, &user.Name)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading user profile: %w", err)
	}
	return user, nil
}

// Clear removes the stored profile.
func (s *Store) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM current_user_profile`); err != nil {
		return fmt.Errorf("clearing user profile: %w", err)
	}
	return nil
}
