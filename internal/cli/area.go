// Area subcommands.
package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pottingshed/gardenlog/internal/catalog"
)

func newAreaCmd(app *App, flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "area",
		Short: "Manage garden areas",
	}
	cmd.AddCommand(newAreaAddCmd(app, flags))
	cmd.AddCommand(newAreaListCmd(app, flags))
	cmd.AddCommand(newAreaRenameCmd(app))
	cmd.AddCommand(newAreaDeleteCmd(app))
	return cmd
}

func newAreaAddCmd(app *App, flags *rootFlags) *cobra.Command {
	var name, emoji, seedID string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new area",
		Long: `Add creates a new garden area.

With --seed, the area is created together with its first plant in one step.

Example:
  gardenlog area add --name "Planter Box 1" --emoji 🪴
  gardenlog area add --name "Raised Bed" --seed tomato`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if seedID != "" {
				merged := catalog.Merged(app.Garden.CustomCatalogEntries())
				item, ok := catalog.FindByID(merged, seedID)
				if !ok {
					return fmt.Errorf("catalog entry %q not found", seedID)
				}
				area, err := app.Garden.CreateAreaAndAddPlant(name, emoji, item)
				if err != nil {
					return fmt.Errorf("create area with plant: %w", err)
				}
				return printResult(cmd, flags, area,
					fmt.Sprintf("Created area %s %s with %s", area.Emoji, area.Name, item.Title))
			}

			area, err := app.Garden.CreateArea(name, emoji)
			if err != nil {
				return fmt.Errorf("create area: %w", err)
			}
			return printResult(cmd, flags, area,
				fmt.Sprintf("Created area %s %s", area.Emoji, area.Name))
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "area name (required)")
	cmd.Flags().StringVar(&emoji, "emoji", "", "area icon")
	cmd.Flags().StringVar(&seedID, "seed", "", "catalog entry ID to plant immediately")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func newAreaListCmd(app *App, flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List areas and their plants",
		RunE: func(cmd *cobra.Command, args []string) error {
			areas := app.Garden.Areas()
			if flags.jsonMode {
				return printJSON(cmd, areas)
			}
			if len(areas) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No areas yet")
				return nil
			}
			for _, a := range areas {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s (%s) — %d plants\n", a.Emoji, a.Name, a.AreaID, len(a.Plants))
				for _, p := range a.Plants {
					stage := string(p.Stage)
					if stage == "" {
						stage = "not started"
					}
					fmt.Fprintf(cmd.OutOrStdout(), "  %s (%s) — %s, planted %s\n", p.SeedTitle, p.PlantID, stage, p.PlantedDate)
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Total plants: %d\n", app.Garden.TotalPlantCount())
			return nil
		},
	}
}

func newAreaRenameCmd(app *App) *cobra.Command {
	var areaID, name, emoji string

	cmd := &cobra.Command{
		Use:   "rename",
		Short: "Rename an area",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Garden.RenameArea(areaID, name, emoji); err != nil {
				return fmt.Errorf("rename area: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Renamed area %s\n", areaID)
			return nil
		},
	}

	cmd.Flags().StringVar(&areaID, "id", "", "area ID (required)")
	cmd.Flags().StringVar(&name, "name", "", "new name (required)")
	cmd.Flags().StringVar(&emoji, "emoji", "", "new icon (kept when omitted)")
	_ = cmd.MarkFlagRequired("id")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func newAreaDeleteCmd(app *App) *cobra.Command {
	var areaID string

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete an area and everything in it",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Garden.DeleteArea(areaID); err != nil {
				return fmt.Errorf("delete area: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted area %s\n", areaID)
			return nil
		},
	}

	cmd.Flags().StringVar(&areaID, "id", "", "area ID (required)")
	_ = cmd.MarkFlagRequired("id")
	return cmd
}

// printResult prints v as JSON in --json mode, or the plain message.
func printResult(cmd *cobra.Command, flags *rootFlags, v any, msg string) error {
	if flags.jsonMode {
		return printJSON(cmd, v)
	}
	fmt.Fprintln(cmd.OutOrStdout(), msg)
	return nil
}

func printJSON(cmd *cobra.Command, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}
