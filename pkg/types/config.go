package types

import "errors"

// Config holds the input locations for a curio run.
type Config struct {
	// Source selects where record lines come from (file or sqlite).
	Source string `json:"source" yaml:"source"`

	// DataDir is the directory holding the record files.
	DataDir string `json:"data_dir" yaml:"data_dir,omitempty"`

	InventoryFile string `json:"inventory_file" yaml:"inventory_file"`
	CustomersFile string `json:"customers_file" yaml:"customers_file"`
	CommandsFile  string `json:"commands_file" yaml:"commands_file"`

	// SQLitePath is the database read when Source is sqlite. Relative paths
	// resolve against DataDir.
	SQLitePath string `json:"sqlite_path,omitempty" yaml:"sqlite_path,omitempty"`
}

// Supported source names.
const (
	SourceFile   = "file"
	SourceSQLite = "sqlite"
)

// Default file names inside DataDir.
const (
	DefaultInventoryFile = "inventory.txt"
	DefaultCustomersFile = "customers.txt"
	DefaultCommandsFile  = "commands.txt"
	DefaultSQLiteFile    = "curio.db"
)

// Config validation errors.
var (
	ErrSourceEmpty      = errors.New("source must not be empty")
	ErrSourceUnknown    = errors.New("unknown source")
	ErrSQLitePathEmpty  = errors.New("sqlite source needs sqlite_path")
	ErrFileNameRequired = errors.New("record file names must not be empty")
)

// knownSources lists the sources that Validate accepts.
var knownSources = map[string]bool{
	SourceFile:   true,
	SourceSQLite: true,
}

// DefaultConfig returns a file-source config rooted at dataDir.
func DefaultConfig(dataDir string) Config {
	return Config{
		Source:        SourceFile,
		DataDir:       dataDir,
		InventoryFile: DefaultInventoryFile,
		CustomersFile: DefaultCustomersFile,
		CommandsFile:  DefaultCommandsFile,
	}
}

// Validate checks that the Config is well-formed. It returns a sentinel error
// from this package on failure.
func (c Config) Validate() error {
	if c.Source == "" {
		return ErrSourceEmpty
	}
	if !knownSources[c.Source] {
		return ErrSourceUnknown
	}
	if c.InventoryFile == "" || c.CustomersFile == "" || c.CommandsFile == "" {
		return ErrFileNameRequired
	}
	if c.Source == SourceSQLite && c.SQLitePath == "" {
		return ErrSQLitePathEmpty
	}
	return nil
}
