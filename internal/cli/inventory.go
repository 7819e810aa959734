package cli

import (
	"io"
	"slices"

	"github.com/spf13/cobra"
)

func newInventoryCmd(flags *rootFlags) *cobra.Command {
	var apply bool
	cmd := &cobra.Command{
		Use:   "inventory",
		Short: "Display the inventory",
		Args:  cobra.NoArgs,
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

			if apply {
				if _, err := sess.applyCommands(cmd.Context(), io.Discard); err != nil {
					return sysError("%w", err)
				}
			}

			if flags.jsonMode {
				return writeJSON(cmd.OutOrStdout(), slices.Collect(sess.inventory.All()))
			}
			return sess.inventory.OutputAll(cmd.OutOrStdout())
		},
	}
	cmd.Flags().BoolVar(&apply, "apply", false, "apply the command records before displaying")
	return cmd
}
