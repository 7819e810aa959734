package cli

import (
	"bytes"
	"io"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/curio/internal/command"
	"github.com/mesh-intelligence/curio/internal/loader"
)

// runReport is the --json output of the run command.
type runReport struct {
	Inventory loader.Result   `json:"inventory"`
	Customers loader.Result   `json:"customers"`
	Commands  command.Summary `json:"commands"`
	Output    string          `json:"output"`
}

func newRunCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Load the store and apply every command record",
		Long: "Load the inventory and customer records, then apply the command records\n" +
			"in order. Failed commands are logged and skipped.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			sess, err := openSession(cmd.Context(), flags)
			if err != nil {
				return err
			}
			defer func() {
				if cerr := sess.close(); cerr != nil && err == nil {
					err = sysError("%w", cerr)
				}
			}()

			var out io.Writer = cmd.OutOrStdout()
			var buf bytes.Buffer
			if flags.jsonMode {
				out = &buf
			}

			sum, err := sess.applyCommands(cmd.Context(), out)
			if err != nil {
				return sysError("%w", err)
			}

			if flags.jsonMode {
				return writeJSON(cmd.OutOrStdout(), runReport{
					Inventory: sess.inventoryLoad,
					Customers: sess.customersLoad,
					Commands:  sum,
					Output:    buf.String(),
				})
			}
			return nil
		},
	}
}
