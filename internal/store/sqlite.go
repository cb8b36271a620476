package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// SQLiteStore serves the user directory from a local SQLite database. The
// table is created and seeded on open, after which it is only read.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens (or creates) the database at path, applies pragmas,
// ensures the users table exists, and seeds it if empty.
func OpenSQLite(path string) (*SQLiteStore, error) {
	if path == "" {
		path = "userbook.db"
	}
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}
	// journal_mode may not be supported in some contexts (e.g., in-memory).
	_, _ = db.Exec(`PRAGMA journal_mode=WAL`)
	if _, err := db.Exec(`PRAGMA busy_timeout=5000`); err != nil {
		_ = db.Close()
		return nil, err
	}

	s := &SQLiteStore{db: db}
	if err := s.ensureSeeded(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) ensureSeeded() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS users (
		seq      INTEGER PRIMARY KEY AUTOINCREMENT,
		id       TEXT NOT NULL UNIQUE,
		name     TEXT NOT NULL,
		username TEXT NOT NULL
	)`)
	if err != nil {
		return err
	}

	var count int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM users`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	for _, u := range seedUsers() {
		if _, err := tx.Exec(`INSERT INTO users (id, name, username) VALUES (?, ?, ?)`,
			u.ID, u.Name, u.Username); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("seed user %s: %w", u.ID, err)
		}
	}
	return tx.Commit()
}

// List returns all users in insertion order.
func (s *SQLiteStore) List(ctx context.Context) ([]User, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	rows, err := s.db.QueryContext(ctx, `SELECT id, name, username FROM users ORDER BY seq`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []User
	for rows.Next() {
		var u User
		if err := rows.Scan(&u.ID, &u.Name, &u.Username); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

// Get returns the user with the given ID, or (nil, nil) if none exists.
func (s *SQLiteStore) Get(ctx context.Context, id string) (*User, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var u User
	err := s.db.QueryRowContext(ctx, `SELECT id, name, username FROM users WHERE id = ?`, id).
		Scan(&u.ID, &u.Name, &u.Username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

// GetBy returns the first user matching every criterion. Criteria naming a
// field outside the users table match nothing.
func (s *SQLiteStore) GetBy(ctx context.Context, criteria map[string]string) (*User, error) {
	if len(criteria) == 0 {
		return nil, nil
	}

	var conds []string
	var args []any
	for field, want := range criteria {
		switch field {
		case "id", "name", "username":
			conds = append(conds, field+" = ?")
			args = append(args, want)
		default:
			return nil, nil
		}
	}

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	query := `SELECT id, name, username FROM users WHERE ` +
		strings.Join(conds, " AND ") + ` ORDER BY seq LIMIT 1`
	var u User
	err := s.db.QueryRowContext(ctx, query, args...).Scan(&u.ID, &u.Name, &u.Username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}
