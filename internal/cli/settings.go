// Settings subcommands.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pottingshed/gardenlog/pkg/types"
)

func newSettingsCmd(app *App, flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change preferences",
	}
	cmd.AddCommand(newSettingsShowCmd(app, flags))
	cmd.AddCommand(newSettingsSetCmd(app, flags))
	return cmd
}

func newSettingsShowCmd(app *App, flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current preferences",
		RunE: func(cmd *cobra.Command, args []string) error {
			s := app.Settings.Current()
			if flags.jsonMode {
				return printJSON(cmd, s)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Reminders enabled: %v\n", s.RemindersEnabled)
			fmt.Fprintf(cmd.OutOrStdout(), "Reminder time:     %02d:%02d\n", s.ReminderHour, s.ReminderMinute)
			return nil
		},
	}
}

func newSettingsSetCmd(app *App, flags *rootFlags) *cobra.Command {
	var reminders bool
	var hour, minute int

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change preferences",
		Long: `Set updates only the preferences whose flags were given; everything
else keeps its current value.

Example:
  gardenlog settings set --reminders --hour 8 --minute 30`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var patch types.SettingsPatch
			if cmd.Flags().Changed("reminders") {
				patch.RemindersEnabled = &reminders
			}
			if cmd.Flags().Changed("hour") {
				patch.ReminderHour = &hour
			}
			if cmd.Flags().Changed("minute") {
				patch.ReminderMinute = &minute
			}

			updated := app.Settings.Update(patch)
			if flags.jsonMode {
				return printJSON(cmd, updated)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Reminders enabled: %v, time %02d:%02d\n",
				updated.RemindersEnabled, updated.ReminderHour, updated.ReminderMinute)
			return nil
		},
	}

	cmd.Flags().BoolVar(&reminders, "reminders", false, "enable or disable reminders")
	cmd.Flags().IntVar(&hour, "hour", 0, "reminder hour (0-23)")
	cmd.Flags().IntVar(&minute, "minute", 0, "reminder minute (0-59)")
	return cmd
}
