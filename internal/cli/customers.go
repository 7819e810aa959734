package cli

import (
	"errors"
	"io"
	"slices"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/curio/pkg/types"
)

func newCustomersCmd(flags *rootFlags) *cobra.Command {
	var apply bool
	cmd := &cobra.Command{
		Use:   "customers [id]",
		Short: "Display customer transaction logs",
		Long: "Display every customer's transaction log in name order, or the log of\n" +
			"one customer when an id is given.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			var id int
			if len(args) == 1 {
				if id, err = strconv.Atoi(args[0]); err != nil {
					return userError("customer id %q is not a number", args[0])
				}
			}

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

			out := cmd.OutOrStdout()
			if len(args) == 0 {
				if flags.jsonMode {
					return writeJSON(out, slices.Collect(sess.registry.All()))
				}
				return sess.registry.OutputAll(out)
			}

			c, err := sess.registry.Get(id)
			if errors.Is(err, types.ErrNotFound) || errors.Is(err, types.ErrInvalidID) {
				return userError("%w", err)
			}
			if err != nil {
				return sysError("%w", err)
			}
			if flags.jsonMode {
				return writeJSON(out, c)
			}
			return sess.registry.OutputLog(out, c.ID)
		},
	}
	cmd.Flags().BoolVar(&apply, "apply", false, "apply the command records before displaying")
	return cmd
}
