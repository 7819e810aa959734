package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/mesh-intelligence/curio/internal/loader"
)

// Import builds a fresh record database at path from the given sources,
// keyed by table name, and returns the number of lines written per table.
// The database is built beside path and renamed over it only once every
// source has loaded, so a failed import leaves any existing file untouched.
func Import(ctx context.Context, path string, sources map[string]loader.Source) (map[string]int, error) {
	for table := range sources {
		if !knownTable(table) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownTable, table)
		}
	}

	tmp := path + ".tmp"
	_ = os.Remove(tmp)
	counts, err := build(ctx, tmp, sources)
	if err != nil {
		_ = os.Remove(tmp)
		return nil, err
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return nil, fmt.Errorf("replacing %s: %w", path, err)
	}
	return counts, nil
}

// build writes every table into a new database at path in one transaction.
// The database is closed when build returns.
func build(ctx context.Context, path string, sources map[string]loader.Source) (map[string]int, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", path, err)
	}
	defer db.Close()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning import transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range Tables {
		if _, err := tx.ExecContext(ctx, createTable(table)); err != nil {
			return nil, fmt.Errorf("creating table %s: %w", table, err)
		}
	}

	counts := make(map[string]int, len(sources))
	for _, table := range Tables {
		src, ok := sources[table]
		if !ok {
			continue
		}
		lines, err := src.Lines(ctx)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", table, err)
		}
		if err := insertLines(ctx, tx, table, lines); err != nil {
			return nil, fmt.Errorf("importing %s: %w", table, err)
		}
		counts[table] = len(lines)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing import transaction: %w", err)
	}
	if err := db.Close(); err != nil {
		return nil, fmt.Errorf("closing %s: %w", path, err)
	}
	return counts, nil
}

func insertLines(ctx context.Context, tx *sql.Tx, table string, lines []string) error {
	stmt, err := tx.PrepareContext(ctx, "INSERT INTO "+table+" (seq, line) VALUES (?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, line := range lines {
		if _, err := stmt.ExecContext(ctx, i+1, line); err != nil {
			return fmt.Errorf("line %d: %w", i+1, err)
		}
	}
	return nil
}
