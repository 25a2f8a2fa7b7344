package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/aussiebroadwan/campusdir/internal/directory/store"

	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"
)

// dbtx is satisfied by both *sql.DB and *sql.Tx so the sub-repositories
// work identically inside and outside a transaction.
type dbtx interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type Store struct {
	db  *sql.DB
	dsn string
}

func NewStore(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	// Enforce FKs
	if _, err := db.ExecContext(context.Background(), `PRAGMA foreign_keys = ON;`); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{
		db:  db,
		dsn: dsn,
	}, nil
}

func (s *Store) Close() error { return s.db.Close() }

// Ping verifies the database connection is still alive.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Tx starts a read/write transaction and returns a Tx-scoped Store.
func (s *Store) Tx(ctx context.Context) (store.Tx, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return newTx(tx), nil
}

// WithTx executes fn within a transaction, automatically handling commit/rollback.
func (s *Store) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	tx, err := s.Tx(ctx)
	if err != nil {
		return err
	}

	// Ensure rollback is called if we panic or return early with error
	defer func() {
		_ = tx.Rollback() // safe to call even after commit
	}()

	if err := fn(tx); err != nil {
		return err // rollback happens in defer
	}

	return tx.Commit()
}

func (s *Store) Users() store.Users       { return &usersRepo{db: s.db} }
func (s *Store) Sessions() store.Sessions { return &sessionsRepo{db: s.db} }
func (s *Store) Students() store.Students { return &studentsRepo{db: s.db} }
func (s *Store) Alumni() store.Alumni     { return &alumniRepo{db: s.db} }
func (s *Store) Events() store.Events     { return &eventsRepo{db: s.db} }
func (s *Store) Meta() store.Meta         { return &metaRepo{db: s.db} }

func mapNotFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return store.ErrNotFound
	}
	return err
}

// mapConstraint translates unique/primary-key violations into
// store.ErrAlreadyExists so services don't see driver error codes.
func mapConstraint(err error) error {
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3lib.SQLITE_CONSTRAINT_UNIQUE:
			return store.ErrAlreadyExists
		}
	}
	return err
}

// Achievements persist as a JSON array in a TEXT column, same habit as
// list-valued fields elsewhere in the schema.
func marshalAchievements(achievements []string) (string, error) {
	if len(achievements) == 0 {
		return "[]", nil
	}
	raw, err := json.Marshal(achievements)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

func unmarshalAchievements(raw string) ([]string, error) {
	if raw == "" || raw == "[]" {
		return nil, nil
	}
	var achievements []string
	if err := json.Unmarshal([]byte(raw), &achievements); err != nil {
		return nil, err
	}
	return achievements, nil
}
