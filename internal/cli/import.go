package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/curio/internal/loader"
	"github.com/mesh-intelligence/curio/internal/sqlite"
)

func newImportCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "import",
		Short: "Copy the record files into a SQLite database",
		Long: "Read the inventory, customer and command files from the data directory\n" +
			"and write them to sqlite_path, replacing any existing database. Set\n" +
			"source: sqlite to read records from the database afterwards.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := resolveSettings(flags)
			if err != nil {
				return userError("%w", err)
			}

			dbPath := s.file(s.SQLitePath)
			counts, err := sqlite.Import(cmd.Context(), dbPath, map[string]loader.Source{
				sqlite.TableInventory: loader.FileSource{Path: s.file(s.InventoryFile)},
				sqlite.TableCustomers: loader.FileSource{Path: s.file(s.CustomersFile)},
				sqlite.TableCommands:  loader.FileSource{Path: s.file(s.CommandsFile)},
			})
			if err != nil {
				return sysError("import: %w", err)
			}

			if flags.jsonMode {
				return writeJSON(cmd.OutOrStdout(), map[string]any{"database": dbPath, "records": counts})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d inventory, %d customer and %d command records into %s\n",
				counts[sqlite.TableInventory], counts[sqlite.TableCustomers], counts[sqlite.TableCommands], dbPath)
			return nil
		},
	}
}
