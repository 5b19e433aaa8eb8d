// Package sqldb implements storage.Store with sqlx on top of any SQL
// database that can host the game schema. Dialect packages (sqlite,
// postgres) open the connection and supply the schema and error mapping.
package sqldb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/adarkz/YellowCarGame-chef/internal/storage"
)

// Ensure Store implements storage.Store
var _ storage.Store = (*Store)(nil)

// Dialect describes the differences between SQL backends.
type Dialect struct {
	// DriverName is the database/sql driver name. sqlx uses it to pick the
	// placeholder style.
	DriverName string

	// Schema is executed on startup. It must be idempotent.
	Schema string

	// TxOptions are used for every transaction started by InTx.
	TxOptions *sql.TxOptions

	// IsUniqueViolation reports whether err is a unique or primary key
	// constraint failure.
	IsUniqueViolation func(err error) bool

	// IsConflict reports whether err means the transaction lost a race with
	// a concurrent one.
	IsConflict func(err error) bool
}

// Store implements storage.Store using sqlx.
type Store struct {
	queries
	db *sqlx.DB
}

// queries holds every statement. It runs against either the pool or an
// open transaction.
type queries struct {
	ext     sqlx.ExtContext
	dialect Dialect
	now     func() time.Time
}

// New wraps an open connection pool and applies the dialect schema.
// The caller keeps ownership of db if New fails.
func New(db *sql.DB, dialect Dialect) (*Store, error) {
	if dialect.IsUniqueViolation == nil {
		dialect.IsUniqueViolation = func(error) bool { return false }
	}
	if dialect.IsConflict == nil {
		dialect.IsConflict = func(error) bool { return false }
	}

	xdb := sqlx.NewDb(db, dialect.DriverName)
	if err := runMigrations(xdb, dialect.Schema); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &Store{
		queries: queries{ext: xdb, dialect: dialect, now: time.Now},
		db:      xdb,
	}, nil
}

// runMigrations executes the schema setup.
func runMigrations(db *sqlx.DB, schema string) error {
	if schema == "" {
		return nil
	}
	_, err := db.Exec(schema)
	return err
}

// InTx runs fn inside one transaction using the dialect's options.
func (s *Store) InTx(ctx context.Context, fn func(tx storage.Tx) error) error {
	tx, err := s.db.BeginTxx(ctx, s.dialect.TxOptions)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := fn(&queries{ext: tx, dialect: s.dialect, now: s.now}); err != nil {
		return s.markConflict(err)
	}

	if err := tx.Commit(); err != nil {
		return s.markConflict(fmt.Errorf("failed to commit transaction: %w", err))
	}
	return nil
}

// markConflict adds storage.ErrConflict to err's chain when the dialect
// recognizes it as a lost race.
func (s *Store) markConflict(err error) error {
	if errors.Is(err, storage.ErrConflict) || !s.dialect.IsConflict(err) {
		return err
	}
	return fmt.Errorf("%w: %w", storage.ErrConflict, err)
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// newID returns a time-ordered UUID so that ordering by ID follows
// insertion order.
func newID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}

// createError maps a failed insert to storage.ErrAlreadyExists when the
// dialect recognizes a uniqueness violation.
func (q *queries) createError(what string, err error) error {
	if q.dialect.IsUniqueViolation(err) {
		return fmt.Errorf("failed to create %s: %w: %w", what, storage.ErrAlreadyExists, err)
	}
	return fmt.Errorf("failed to create %s: %w", what, err)
}

// timestamp returns the current Unix time in seconds.
func (q *queries) timestamp() int64 {
	return q.now().Unix()
}
