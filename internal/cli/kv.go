// Key-value subcommands. The weather and notification glue stores opaque
// values here (scheduled-notification IDs, last-alert dates); these commands
// expose the same primitives for inspection and scripting.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pottingshed/gardenlog/pkg/types"
)

func newKVCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "kv",
		Short: "Read and write the key-value store",
	}

	get := &cobra.Command{
		Use:   "get <key>",
		Short: "Print the value stored under a key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.db == nil {
				return types.ErrStoreClosed
			}
			value, err := app.db.GetValue(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), value)
			return nil
		},
	}

	set := &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Store a value under a key, overwriting any existing value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.db == nil {
				return types.ErrStoreClosed
			}
			return app.db.SetValue(args[0], args[1])
		},
	}

	del := &cobra.Command{
		Use:   "del <key>",
		Short: "Remove a key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.db == nil {
				return types.ErrStoreClosed
			}
			return app.db.DeleteValue(args[0])
		},
	}

	cmd.AddCommand(get, set, del)
	return cmd
}
