package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is the gardenlog release version.
const Version = "0.1.0"

const modulePath = "github.com/pottingshed/gardenlog"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the gardenlog version",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "gardenlog v%s\nmodule: %s\n", Version, modulePath)
			return nil
		},
	}
}
