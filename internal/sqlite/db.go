package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/curio/internal/loader"
)

// DB is an open record database.
type DB struct {
	path string
	db   *sql.DB
}

// Open opens an existing record database read-only.
func Open(path string) (*DB, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	db, err := sql.Open("sqlite", "file:"+path+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	return &DB{path: path, db: db}, nil
}

// Source returns a line source over one record table.
func (d *DB) Source(table string) (*Source, error) {
	if !knownTable(table) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTable, table)
	}
	return &Source{db: d.db, table: table}, nil
}

// Close releases the database handle.
func (d *DB) Close() error {
	return d.db.Close()
}

// Source reads the lines of one record table in seq order.
type Source struct {
	db    *sql.DB
	table string
}

var _ loader.Source = (*Source)(nil)

// Lines implements loader.Source.
func (s *Source) Lines(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT line FROM "+s.table+" ORDER BY seq")
	if err != nil {
		return nil, fmt.Errorf("querying %s: %w", s.table, err)
	}
	defer rows.Close()

	var lines []string
	for rows.Next() {
		var line string
		if err := rows.Scan(&line); err != nil {
			return nil, fmt.Errorf("scanning %s: %w", s.table, err)
		}
		lines = append(lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", s.table, err)
	}
	return lines, nil
}
