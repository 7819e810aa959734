// Package sqlite stores curio's input records in a SQLite database and reads
// them back as line sources. The database is an alternative to the three
// text files; the store itself is never written back.
package sqlite

import (
	"errors"
	"fmt"
	"slices"
)

// Table names, one per input file.
const (
	TableInventory = "inventory"
	TableCustomers = "customers"
	TableCommands  = "commands"
)

// Tables lists the record tables in load order.
var Tables = []string{TableInventory, TableCustomers, TableCommands}

// ErrUnknownTable is returned for a table name outside Tables.
var ErrUnknownTable = errors.New("unknown record table")

// createTable returns the DDL for a record table. seq keeps the file order.
func createTable(name string) string {
	return fmt.Sprintf(`CREATE TABLE %s (
    seq INTEGER PRIMARY KEY,
    line TEXT NOT NULL
);`, name)
}

func knownTable(name string) bool {
	return slices.Contains(Tables, name)
}
