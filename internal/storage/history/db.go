// Package history records profile switches in a local SQLite database. The
// log is informational only: the mode resolver always derives the active
// profile from the managed files, never from this store.
package history

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// DB is the handle to the switch log.
type DB struct {
	*sql.DB
}

// New opens the switch log at path, creating it when absent, and brings its
// schema up to date.
func New(path string) (*DB, error) {
	sqlDB, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening switch log: %w", err)
	}

	// WAL keeps a crashed switch from corrupting the log.
	if _, err := sqlDB.Exec("PRAGMA foreign_keys = ON; PRAGMA journal_mode = WAL;"); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("setting pragmas: %w", err)
	}

	db := &DB{DB: sqlDB}

	if err := db.migrate(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return db, nil
}
