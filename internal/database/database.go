package database

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
	_ "modernc.org/sqlite"
)

// DB wraps a SQLite database connection to one version line's store.
type DB struct {
	conn *sql.DB
	path string
}

// Open creates or opens the store for the given application version inside
// dataDir. The file name carries the version's compatibility key, so a build
// with a different (major, minor) opens a different, initially empty store
// and older records stay invisible rather than being migrated or rejected.
func Open(dataDir, version string) (*DB, error) {
	path := filepath.Join(dataDir, FileName(version))
	db, err := openFile(path)
	if err != nil {
		return nil, err
	}
	if err := db.stampWriter(version); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// OpenFile opens a store at an explicit path, bypassing the version-keyed
// file naming. Used by tests and by export/import tooling.
func OpenFile(path string) (*DB, error) {
	return openFile(path)
}

func openFile(path string) (*DB, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if _, err := conn.Exec("PRAGMA journal_mode=WAL"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("setting journal mode: %w", err)
	}
	if _, err := conn.Exec("PRAGMA foreign_keys=ON"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	if err := migrate(conn); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrating schema: %w", err)
	}

	return &DB{conn: conn, path: path}, nil
}

// stampWriter records the full version of the build that last opened the
// store. Informational only: compatibility is decided by the file name.
func (db *DB) stampWriter(version string) error {
	var previous string
	err := db.conn.QueryRow("SELECT value FROM meta WHERE key = 'app_version'").Scan(&previous)
	if err != nil && err != sql.ErrNoRows {
		return fmt.Errorf("reading writer version: %w", err)
	}
	if previous != "" && previous != version {
		log.Infof("store %s last written by %s, now %s", filepath.Base(db.path), previous, version)
	}

	_, err = db.conn.Exec(
		"INSERT INTO meta (key, value) VALUES ('app_version', ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		version,
	)
	if err != nil {
		return fmt.Errorf("stamping writer version: %w", err)
	}
	return nil
}

// Reset drops and recreates the sources table of this store. Records of
// other version lines live in other files and are untouched.
func (db *DB) Reset() error {
	dropped, err := db.countSources()
	if err != nil {
		return err
	}
	if _, err := db.conn.Exec("DROP TABLE IF EXISTS sources"); err != nil {
		return fmt.Errorf("dropping sources table: %w", err)
	}
	if _, err := db.conn.Exec("PRAGMA user_version = 0"); err != nil {
		return fmt.Errorf("resetting schema version: %w", err)
	}
	if err := migrate(db.conn); err != nil {
		return fmt.Errorf("recreating schema: %w", err)
	}
	log.Warnf("source database reset, %d records dropped", dropped)
	return nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

// Path returns the database file path.
func (db *DB) Path() string {
	return db.path
}
