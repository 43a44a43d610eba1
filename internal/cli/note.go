// Journal note subcommands.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newNoteCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "note",
		Short: "Manage journal notes on a plant",
	}
	cmd.AddCommand(newNoteAddCmd(app))
	cmd.AddCommand(newNoteRemoveCmd(app))
	cmd.AddCommand(newNoteListCmd(app))
	return cmd
}

func newNoteAddCmd(app *App) *cobra.Command {
	var areaID, plantID, text string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a note to a plant's journal",
		RunE: func(cmd *cobra.Command, args []string) error {
			entry, err := app.Garden.AddJournalEntry(areaID, plantID, text)
			if err != nil {
				return fmt.Errorf("add note: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added note %s\n", entry.EntryID)
			return nil
		},
	}

	cmd.Flags().StringVar(&areaID, "area", "", "area ID (required)")
	cmd.Flags().StringVar(&plantID, "plant", "", "plant ID (required)")
	cmd.Flags().StringVar(&text, "text", "", "note text (required)")
	_ = cmd.MarkFlagRequired("area")
	_ = cmd.MarkFlagRequired("plant")
	_ = cmd.MarkFlagRequired("text")
	return cmd
}

func newNoteRemoveCmd(app *App) *cobra.Command {
	var areaID, plantID, entryID string

	cmd := &cobra.Command{
		Use:   "remove",
		Short: "Remove a note from a plant's journal",
		Long:  "Remove deletes a user note. Stage entries are system-generated and cannot be removed.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Garden.RemoveJournalEntry(areaID, plantID, entryID); err != nil {
				return fmt.Errorf("remove note: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed note %s\n", entryID)
			return nil
		},
	}

	cmd.Flags().StringVar(&areaID, "area", "", "area ID (required)")
	cmd.Flags().StringVar(&plantID, "plant", "", "plant ID (required)")
	cmd.Flags().StringVar(&entryID, "entry", "", "journal entry ID (required)")
	_ = cmd.MarkFlagRequired("area")
	_ = cmd.MarkFlagRequired("plant")
	_ = cmd.MarkFlagRequired("entry")
	return cmd
}

func newNoteListCmd(app *App) *cobra.Command {
	var areaID, plantID string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show a plant's journal",
		RunE: func(cmd *cobra.Command, args []string) error {
			plant, err := lookupPlant(app, areaID, plantID)
			if err != nil {
				return err
			}
			if len(plant.Journal) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No journal entries yet")
				return nil
			}
			for _, e := range plant.Journal {
				fmt.Fprintf(cmd.OutOrStdout(), "[%s] %s  %s (%s)\n", e.Type, e.Date, e.Text, e.EntryID)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&areaID, "area", "", "area ID (required)")
	cmd.Flags().StringVar(&plantID, "plant", "", "plant ID (required)")
	_ = cmd.MarkFlagRequired("area")
	_ = cmd.MarkFlagRequired("plant")
	return cmd
}
