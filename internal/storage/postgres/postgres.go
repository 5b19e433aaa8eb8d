// Package postgres provides a PostgreSQL-backed implementation of the
// storage.Store interface.
package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/adarkz/YellowCarGame-chef/internal/storage/sqldb"
)

// DriverName is the database/sql driver registered by lib/pq.
const DriverName = "postgres"

// SQLSTATE codes the store reacts to.
const (
	uniqueViolation      pq.ErrorCode = "23505"
	serializationFailure pq.ErrorCode = "40001"
	deadlockDetected     pq.ErrorCode = "40P01"
)

// Dialect returns the PostgreSQL flavor of the game schema.
//
// Transactions run at SERIALIZABLE so that concurrent read-check-write
// sequences cannot both commit. Serialization failures are returned to the
// caller, marked with storage.ErrConflict, and never retried.
func Dialect() sqldb.Dialect {
	return sqldb.Dialect{
		DriverName:        DriverName,
		Schema:            schema,
		TxOptions:         &sql.TxOptions{Isolation: sql.LevelSerializable},
		IsUniqueViolation: isUniqueViolation,
		IsConflict:        isConflict,
	}
}

// New connects to the database described by dsn and runs migrations.
func New(dsn string) (*sqldb.Store, error) {
	db, err := sql.Open(DriverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	store, err := NewWithDB(db)
	if err != nil {
		db.Close()
		return nil, err
	}
	return store, nil
}

// NewWithDB builds a store on an already open connection pool.
func NewWithDB(db *sql.DB) (*sqldb.Store, error) {
	return sqldb.New(db, Dialect())
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}

func isConflict(err error) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	return pqErr.Code == serializationFailure || pqErr.Code == deadlockDetected
}
