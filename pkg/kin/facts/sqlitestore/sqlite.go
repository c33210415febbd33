// Package sqlitestore provides a durable facts.Store backed by SQLite.
//
// The inference core never requires durability; this store exists for
// the chat CLI, which saves a conversation's learned facts as a session
// and resumes it later. Reads are served from an in-memory mirror loaded
// at open time, writes go through to the database, so the View side
// stays as cheap as the pure in-memory store.
package sqlitestore

import (
	"context"
	"crypto/rand"
	"database/sql"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"
	_ "modernc.org/sqlite"

	"github.com/famlogic/kin/pkg/kin/facts"
	"github.com/famlogic/kin/pkg/kin/facts/memstore"
	"github.com/famlogic/kin/pkg/kin/internalerr"
)

// Store implements facts.Store with write-through SQLite persistence.
type Store struct {
	db        *sql.DB
	mem       *memstore.Store
	sessionID string
}

// Open opens (or creates) a session database with WAL mode enabled and
// loads every persisted fact into the in-memory mirror. A fresh database
// is assigned a ULID session id.
func Open(ctx context.Context, path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", internalerr.ErrStoreUnavailable, err)
	}

	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: %v", internalerr.ErrStoreUnavailable, err)
	}
	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: %v", internalerr.ErrStoreUnavailable, err)
	}

	s := &Store{db: db, mem: memstore.New()}
	if err := s.loadSession(ctx); err != nil {
		db.Close()
		return nil, err
	}
	if err := s.loadFacts(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// SessionID returns the session identifier minted when the database was
// first created.
func (s *Store) SessionID() string {
	return s.sessionID
}

func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS session (
	id TEXT PRIMARY KEY,
	created_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS male_facts (
	person TEXT PRIMARY KEY
);

CREATE TABLE IF NOT EXISTS female_facts (
	person TEXT PRIMARY KEY
);

CREATE TABLE IF NOT EXISTS parent_facts (
	parent TEXT NOT NULL,
	child TEXT NOT NULL,
	PRIMARY KEY(parent, child)
);
`
	_, err := db.ExecContext(ctx, schema)
	return err
}

func (s *Store) loadSession(ctx context.Context) error {
	row := s.db.QueryRowContext(ctx, "SELECT id FROM session LIMIT 1")
	switch err := row.Scan(&s.sessionID); err {
	case nil:
		return nil
	case sql.ErrNoRows:
		id := ulid.MustNew(ulid.Now(), ulid.Monotonic(rand.Reader, 0)).String()
		if _, err := s.db.ExecContext(ctx,
			"INSERT INTO session (id, created_at) VALUES (?, ?)",
			id, time.Now().UTC().Format(time.RFC3339)); err != nil {
			return fmt.Errorf("create session: %w", err)
		}
		s.sessionID = id
		return nil
	default:
		return fmt.Errorf("load session: %w", err)
	}
}

func (s *Store) loadFacts(ctx context.Context) error {
	if err := s.loadPersons(ctx, "SELECT person FROM male_facts", s.mem.AddMale); err != nil {
		return err
	}
	if err := s.loadPersons(ctx, "SELECT person FROM female_facts", s.mem.AddFemale); err != nil {
		return err
	}

	rows, err := s.db.QueryContext(ctx, "SELECT parent, child FROM parent_facts")
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var parent, child string
		if err := rows.Scan(&parent, &child); err != nil {
			return err
		}
		s.mem.AddParent(ctx, facts.Person(parent), facts.Person(child))
	}
	return rows.Err()
}

func (s *Store) loadPersons(ctx context.Context, query string, add func(context.Context, facts.Person) error) error {
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var person string
		if err := rows.Scan(&person); err != nil {
			return err
		}
		add(ctx, facts.Person(person))
	}
	return rows.Err()
}

// AddMale persists and asserts a male fact. Idempotent.
func (s *Store) AddMale(ctx context.Context, p facts.Person) error {
	if _, err := s.db.ExecContext(ctx,
		"INSERT OR IGNORE INTO male_facts (person) VALUES (?)", string(p)); err != nil {
		return err
	}
	return s.mem.AddMale(ctx, p)
}

// AddFemale persists and asserts a female fact.
func (s *Store) AddFemale(ctx context.Context, p facts.Person) error {
	if _, err := s.db.ExecContext(ctx,
		"INSERT OR IGNORE INTO female_facts (person) VALUES (?)", string(p)); err != nil {
		return err
	}
	return s.mem.AddFemale(ctx, p)
}

// AddParent persists and asserts a parent→child edge.
func (s *Store) AddParent(ctx context.Context, parent, child facts.Person) error {
	if _, err := s.db.ExecContext(ctx,
		"INSERT OR IGNORE INTO parent_facts (parent, child) VALUES (?, ?)",
		string(parent), string(child)); err != nil {
		return err
	}
	return s.mem.AddParent(ctx, parent, child)
}

// RemoveMale retracts a male fact.
func (s *Store) RemoveMale(ctx context.Context, p facts.Person) error {
	if _, err := s.db.ExecContext(ctx,
		"DELETE FROM male_facts WHERE person = ?", string(p)); err != nil {
		return err
	}
	return s.mem.RemoveMale(ctx, p)
}

// RemoveFemale retracts a female fact.
func (s *Store) RemoveFemale(ctx context.Context, p facts.Person) error {
	if _, err := s.db.ExecContext(ctx,
		"DELETE FROM female_facts WHERE person = ?", string(p)); err != nil {
		return err
	}
	return s.mem.RemoveFemale(ctx, p)
}

// RemoveParent retracts a parent→child edge.
func (s *Store) RemoveParent(ctx context.Context, parent, child facts.Person) error {
	if _, err := s.db.ExecContext(ctx,
		"DELETE FROM parent_facts WHERE parent = ? AND child = ?",
		string(parent), string(child)); err != nil {
		return err
	}
	return s.mem.RemoveParent(ctx, parent, child)
}

// IsMale implements facts.View.
func (s *Store) IsMale(p facts.Person) bool { return s.mem.IsMale(p) }

// IsFemale implements facts.View.
func (s *Store) IsFemale(p facts.Person) bool { return s.mem.IsFemale(p) }

// ParentsOf implements facts.View.
func (s *Store) ParentsOf(child facts.Person) []facts.Person { return s.mem.ParentsOf(child) }

// ChildrenOf implements facts.View.
func (s *Store) ChildrenOf(parent facts.Person) []facts.Person { return s.mem.ChildrenOf(parent) }

// Persons implements facts.View.
func (s *Store) Persons() []facts.Person { return s.mem.Persons() }

// ParentEdges implements facts.View.
func (s *Store) ParentEdges() []facts.Edge { return s.mem.ParentEdges() }
