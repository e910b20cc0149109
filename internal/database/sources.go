package database

import (
	"database/sql"
	"fmt"

	log "github.com/sirupsen/logrus"
)

// CreateSource inserts a new empty record and returns it with its assigned
// id. All citation fields start out NULL; the id is never reused, even after
// the record is deleted.
func (db *DB) CreateSource() (*Source, error) {
	result, err := db.conn.Exec("INSERT INTO sources DEFAULT VALUES")
	if err != nil {
		return nil, fmt.Errorf("inserting source: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("reading new source id: %w", err)
	}
	log.Debugf("created source %d", id)
	return &Source{ID: id}, nil
}

// GetAllSources returns every record in insertion order.
func (db *DB) GetAllSources() ([]Source, error) {
	rows, err := db.conn.Query(
		`SELECT id, title, url, author, published_date, viewed_date,
		published_date_unknown, comment FROM sources ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("listing sources: %w", err)
	}
	defer rows.Close()

	var sources []Source
	for rows.Next() {
		s, err := scanSource(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scanning source: %w", err)
		}
		sources = append(sources, *s)
	}
	return sources, rows.Err()
}

// GetSource returns a single record by id, or ErrNotFound.
func (db *DB) GetSource(id int64) (*Source, error) {
	row := db.conn.QueryRow(
		`SELECT id, title, url, author, published_date, viewed_date,
		published_date_unknown, comment FROM sources WHERE id = ?`, id,
	)
	s, err := scanSource(row.Scan)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("reading source %d: %w", id, err)
	}
	return s, nil
}

// UpdateSource overwrites the stored record matching s.ID.
// Returns ErrNotFound if no such record exists.
func (db *DB) UpdateSource(s *Source) error {
	result, err := db.conn.Exec(
		`UPDATE sources SET title = ?, url = ?, author = ?, published_date = ?,
		viewed_date = ?, published_date_unknown = ?, comment = ? WHERE id = ?`,
		s.Title, s.URL, s.Author, s.PublishedDate, s.ViewedDate,
		boolToInt(s.PublishedDateUnknown), s.Comment, s.ID,
	)
	if err != nil {
		return fmt.Errorf("updating source %d: %w", s.ID, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating source %d: %w", s.ID, err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	log.Debugf("updated source %d", s.ID)
	return nil
}

// DeleteSource removes the record with the given id. A second delete of the
// same id returns ErrNotFound rather than succeeding silently, so stale
// references surface as errors.
func (db *DB) DeleteSource(id int64) error {
	result, err := db.conn.Exec("DELETE FROM sources WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting source %d: %w", id, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting source %d: %w", id, err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	log.Debugf("deleted source %d", id)
	return nil
}

// countSources returns the number of records in this store.
func (db *DB) countSources() (int, error) {
	var n int
	if err := db.conn.QueryRow("SELECT COUNT(*) FROM sources").Scan(&n); err != nil {
		return 0, fmt.Errorf("counting sources: %w", err)
	}
	return n, nil
}

func scanSource(scan func(dest ...any) error) (*Source, error) {
	var s Source
	var unknown sql.NullInt64
	if err := scan(&s.ID, &s.Title, &s.URL, &s.Author, &s.PublishedDate,
		&s.ViewedDate, &unknown, &s.Comment); err != nil {
		return nil, err
	}
	s.PublishedDateUnknown = unknown.Valid && unknown.Int64 != 0
	return &s, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
