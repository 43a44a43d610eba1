package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/pottingshed/gardenlog/pkg/types"
)

// Store is the durable on-device database. The process holds exactly one
// Store; Open is an idempotent initialization gate, so concurrent early
// callers converge on the same connection instead of opening duplicates.
type Store struct {
	mu     sync.Mutex
	opened bool
	closed bool
	db     *sql.DB
}

// NewStore creates an unopened Store. Call Open before use.
func NewStore() *Store {
	return &Store{}
}

// Open initializes the database on first call: creates the data directory if
// needed, opens the connection, enables write-ahead logging and foreign-key
// enforcement, and runs the idempotent schema setup. Later calls observe the
// already-initialized connection and return nil without re-running setup.
func (s *Store) Open(config types.Config) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return types.ErrStoreClosed
	}
	if s.opened {
		return nil
	}

	dataDir := config.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", config.DatabasePath())
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}

	// One connection: the single-writer model needs no pool, and pragmas
	// below are per-connection.
	db.SetMaxOpenConns(1)

	for _, pragma := range []string{
		"PRAGMA journal_mode = WAL;",
		"PRAGMA foreign_keys = ON;",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return fmt.Errorf("configuring database: %w", err)
		}
	}

	for _, ddl := range schemaDDL {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			return fmt.Errorf("creating schema: %w", err)
		}
	}
	for _, ddl := range indexDDL {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			return fmt.Errorf("creating indexes: %w", err)
		}
	}

	s.db = db
	s.opened = true
	return nil
}

// Close releases the database connection. Idempotent. After Close every
// operation returns ErrStoreClosed.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.opened || s.closed {
		s.closed = true
		return nil
	}

	err := s.db.Close()
	s.db = nil
	s.opened = false
	s.closed = true
	if err != nil {
		return fmt.Errorf("closing database: %w", err)
	}
	return nil
}

// conn returns the live connection or ErrStoreClosed.
func (s *Store) conn() (*sql.DB, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.opened || s.closed {
		return nil, types.ErrStoreClosed
	}
	return s.db, nil
}

// RunInTransaction executes work inside a single transaction: either every
// statement issued through tx becomes durably visible together, or none do.
func (s *Store) RunInTransaction(work func(tx *sql.Tx) error) error {
	db, err := s.conn()
	if err != nil {
		return err
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if err := work(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// execer is the subset of database/sql shared by *sql.DB and *sql.Tx, so the
// insert helpers work both standalone and inside RunInTransaction.
type execer interface {
	Exec(query string, args ...any) (sql.Result, error)
	QueryRow(query string, args ...any) *sql.Row
}

// nextSeq returns the next insertion sequence number for a table, scoped to
// the parent row when the table has one. Explicit rather than relying on the
// implicit SQLite rowid, so ordering survives a change of storage engine.
func nextSeq(e execer, table, scopeColumn, scopeID string) (int64, error) {
	var query string
	var args []any
	if scopeColumn == "" {
		query = fmt.Sprintf("SELECT COALESCE(MAX(seq), 0) + 1 FROM %s", table)
	} else {
		query = fmt.Sprintf("SELECT COALESCE(MAX(seq), 0) + 1 FROM %s WHERE %s = ?", table, scopeColumn)
		args = append(args, scopeID)
	}

	var seq int64
	if err := e.QueryRow(query, args...).Scan(&seq); err != nil {
		return 0, fmt.Errorf("computing next seq for %s: %w", table, err)
	}
	return seq, nil
}
