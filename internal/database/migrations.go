package database

import "database/sql"

// Migration represents a single schema migration step.
type Migration struct {
	Version     int
	Description string
	Up          func(tx *sql.Tx) error
}

// migrations is the ordered list of all schema migrations. They only ever
// make additive changes within one compatibility line; crossing a
// (major, minor) boundary is handled by file naming, not by migrations.
// Append new migrations to the end with incrementing Version numbers.
var migrations = []Migration{
	{
		Version:     1,
		Description: "initial schema",
		Up: func(tx *sql.Tx) error {
			_, err := tx.Exec(`
CREATE TABLE IF NOT EXISTS sources (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    title TEXT,
    url TEXT,
    author TEXT,
    published_date TEXT,
    viewed_date TEXT,
    published_date_unknown INTEGER DEFAULT 0
);
`)
			return err
		},
	},
	{
		Version:     2,
		Description: "add comment column and meta table",
		Up: func(tx *sql.Tx) error {
			// Meta is created here, not in migration 1, so legacy stores
			// stamped as version 1 pick it up on their next migration.
			_, err := tx.Exec(`
ALTER TABLE sources ADD COLUMN comment TEXT;

CREATE TABLE IF NOT EXISTS meta (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL
);
`)
			return err
		},
	},
}

// latestVersion returns the highest migration version number.
func latestVersion() int {
	if len(migrations) == 0 {
		return 0
	}
	return migrations[len(migrations)-1].Version
}
