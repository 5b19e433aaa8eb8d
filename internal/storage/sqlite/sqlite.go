// Package sqlite provides a SQLite-backed implementation of the storage.Store interface.
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	modernc "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/adarkz/YellowCarGame-chef/internal/storage/sqldb"
)

// DriverName is the database/sql driver registered by modernc.org/sqlite.
const DriverName = "sqlite"

// busyTimeoutMillis bounds how long a transaction waits for the write lock.
const busyTimeoutMillis = 5000

func init() {
	sqlx.BindDriver(DriverName, sqlx.QUESTION)
}

// Dialect returns the SQLite flavor of the game schema.
//
// Every transaction is opened with BEGIN IMMEDIATE (see dsn), so the
// read-check-write sequences in the game core hold the database write lock
// from their first read.
func Dialect() sqldb.Dialect {
	return sqldb.Dialect{
		DriverName:        DriverName,
		Schema:            schema,
		IsUniqueViolation: isUniqueViolation,
		IsConflict:        isConflict,
	}
}

// New creates a new SQLite store with the given database path.
// It creates the parent directories and runs migrations automatically.
func New(dbPath string) (*sqldb.Store, error) {
	// Create parent directory if it doesn't exist
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open(DriverName, dsn(dbPath))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store, err := sqldb.New(db, Dialect())
	if err != nil {
		db.Close()
		return nil, err
	}
	return store, nil
}

// dsn builds a connection string that enables WAL, waits on a busy
// database and takes the write lock when a transaction begins.
func dsn(dbPath string) string {
	return fmt.Sprintf(
		"file:%s?_pragma=busy_timeout(%d)&_pragma=journal_mode(WAL)&_txlock=immediate",
		dbPath, busyTimeoutMillis,
	)
}

func isUniqueViolation(err error) bool {
	var sqliteErr *modernc.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}
	switch sqliteErr.Code() {
	case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
		return true
	}
	return false
}

// isConflict matches SQLITE_BUSY and its extended codes, returned when the
// write lock could not be taken within the busy timeout.
func isConflict(err error) bool {
	var sqliteErr *modernc.Error
	return errors.As(err, &sqliteErr) && sqliteErr.Code()&0xff == sqlite3.SQLITE_BUSY
}
