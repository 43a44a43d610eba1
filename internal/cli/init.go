// Init subcommand: creates the config and data directories and the database
// file so later commands start against an initialized store.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newInitCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize gardenlog storage",
		Long:  "Create the configuration and data directories and initialize the local database.",
		RunE: func(cmd *cobra.Command, args []string) error {
			// PersistentPreRunE already opened (or degraded) the store.
			if app.db == nil {
				return fmt.Errorf("database could not be initialized")
			}
			fmt.Fprintln(cmd.OutOrStdout(), "gardenlog initialized successfully")
			return nil
		},
	}
}
