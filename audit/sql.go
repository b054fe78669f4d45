package audit

import (
	"context"
	"database/sql"
	"fmt"
)

const createTableSQL = `CREATE TABLE IF NOT EXISTS request_log (
	id BIGINT NOT NULL AUTO_INCREMENT PRIMARY KEY,
	date DATETIME NOT NULL,
	method VARCHAR(10) NOT NULL,
	path VARCHAR(2048) NOT NULL,
	query TEXT NOT NULL,
	code INT NOT NULL,
	error TEXT NOT NULL
);`

//SQLStore represents a Store backed by a SQL database. The queries are written for MySQL
type SQLStore struct {
	db *sql.DB
}

//NewSQLStore returns a new SQLStore using db
func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{db: db}
}

//CreateTable creates the request_log table if it doesn't exist
func (s *SQLStore) CreateTable(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, createTableSQL); err != nil {
		return fmt.Errorf("Could not create request_log table: %w", err)
	}
	return nil
}

//Record inserts entry into the request_log table
func (s *SQLStore) Record(ctx context.Context, entry *Entry) error {
	_, err := s.db.ExecContext(ctx, "INSERT INTO request_log(date, method, path, query, code, error) VALUES(?, ?, ?, ?, ?, ?);",
		entry.Time.UTC(),
		entry.Method,
		entry.Path,
		entry.Query,
		entry.Code,
		entry.Error,
	)
	if err != nil {
		return fmt.Errorf("Could not insert request_log entry: %w", err)
	}
	return nil
}

//Recent returns the most recent limit entries, newest first
func (s *SQLStore) Recent(ctx context.Context, limit int) ([]*Entry, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT date, method, path, query, code, error FROM request_log ORDER BY id DESC LIMIT ?;", limit)
	if err != nil {
		return nil, fmt.Errorf("Could not query request_log: %w", err)
	}
	defer rows.Close()

	var entries []*Entry
	for rows.Next() {
		e := new(Entry)
		if err := rows.Scan(&(e.Time), &(e.Method), &(e.Path), &(e.Query), &(e.Code), &(e.Error)); err != nil {
			return nil, fmt.Errorf("Could not scan request_log row: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("Could not read request_log rows: %w", err)
	}

	return entries, nil
}
