// Plant subcommands.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pottingshed/gardenlog/internal/catalog"
	"github.com/pottingshed/gardenlog/pkg/types"
)

func newPlantCmd(app *App, flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plant",
		Short: "Manage plants in an area",
	}
	cmd.AddCommand(newPlantAddCmd(app, flags))
	cmd.AddCommand(newPlantAdvanceCmd(app))
	cmd.AddCommand(newPlantRollbackCmd(app))
	cmd.AddCommand(newPlantRemoveCmd(app))
	return cmd
}

func newPlantAddCmd(app *App, flags *rootFlags) *cobra.Command {
	var areaID, seedID, name, category string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a plant to an area",
		Long: `Add puts a new plant into an area, either from a catalog entry
(--seed) or freehand with just a name (--name).

Example:
  gardenlog plant add --area <area-id> --seed lettuce
  gardenlog plant add --area <area-id> --name "Mystery squash" --category Vegetable`,
		RunE: func(cmd *cobra.Command, args []string) error {
			switch {
			case seedID != "":
				merged := catalog.Merged(app.Garden.CustomCatalogEntries())
				item, ok := catalog.FindByID(merged, seedID)
				if !ok {
					return fmt.Errorf("catalog entry %q not found", seedID)
				}
				plant, err := app.Garden.AddPlantToArea(areaID, item)
				if err != nil {
					return fmt.Errorf("add plant: %w", err)
				}
				return printResult(cmd, flags, plant,
					fmt.Sprintf("Added %s (%s)", plant.SeedTitle, plant.PlantID))
			case name != "":
				plant, err := app.Garden.AddCustomPlantToArea(areaID, name, category)
				if err != nil {
					return fmt.Errorf("add plant: %w", err)
				}
				return printResult(cmd, flags, plant,
					fmt.Sprintf("Added %s (%s)", plant.SeedTitle, plant.PlantID))
			default:
				return fmt.Errorf("either --seed or --name is required")
			}
		},
	}

	cmd.Flags().StringVar(&areaID, "area", "", "area ID (required)")
	cmd.Flags().StringVar(&seedID, "seed", "", "catalog entry ID")
	cmd.Flags().StringVar(&name, "name", "", "freehand plant name")
	cmd.Flags().StringVar(&category, "category", "", "freehand plant category (default: Other)")
	_ = cmd.MarkFlagRequired("area")
	return cmd
}

func newPlantAdvanceCmd(app *App) *cobra.Command {
	var areaID, plantID string

	cmd := &cobra.Command{
		Use:   "advance",
		Short: "Advance a plant to its next growth stage",
		RunE: func(cmd *cobra.Command, args []string) error {
			plant, err := lookupPlant(app, areaID, plantID)
			if err != nil {
				return err
			}

			next, ok := plant.Stage.Next()
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "Already done; nothing to advance")
				return nil
			}
			if err := app.Garden.UpdatePlantStage(areaID, plantID, next); err != nil {
				return fmt.Errorf("advance stage: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s is now %s\n", plant.SeedTitle, next)
			return nil
		},
	}

	cmd.Flags().StringVar(&areaID, "area", "", "area ID (required)")
	cmd.Flags().StringVar(&plantID, "plant", "", "plant ID (required)")
	_ = cmd.MarkFlagRequired("area")
	_ = cmd.MarkFlagRequired("plant")
	return cmd
}

func newPlantRollbackCmd(app *App) *cobra.Command {
	var areaID, plantID string

	cmd := &cobra.Command{
		Use:   "rollback",
		Short: "Move a plant back to its previous growth stage",
		RunE: func(cmd *cobra.Command, args []string) error {
			plant, err := lookupPlant(app, areaID, plantID)
			if err != nil {
				return err
			}

			prev, ok := plant.Stage.Prev()
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "Not started yet; nothing to roll back")
				return nil
			}
			if err := app.Garden.RollbackPlantStage(areaID, plantID, prev); err != nil {
				return fmt.Errorf("rollback stage: %w", err)
			}
			stage := string(prev)
			if stage == "" {
				stage = "not started"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s is back to %s\n", plant.SeedTitle, stage)
			return nil
		},
	}

	cmd.Flags().StringVar(&areaID, "area", "", "area ID (required)")
	cmd.Flags().StringVar(&plantID, "plant", "", "plant ID (required)")
	_ = cmd.MarkFlagRequired("area")
	_ = cmd.MarkFlagRequired("plant")
	return cmd
}

func newPlantRemoveCmd(app *App) *cobra.Command {
	var areaID, plantID string

	cmd := &cobra.Command{
		Use:   "remove",
		Short: "Remove a plant from its area",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Garden.RemovePlantFromArea(areaID, plantID); err != nil {
				return fmt.Errorf("remove plant: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed plant %s\n", plantID)
			return nil
		},
	}

	cmd.Flags().StringVar(&areaID, "area", "", "area ID (required)")
	cmd.Flags().StringVar(&plantID, "plant", "", "plant ID (required)")
	_ = cmd.MarkFlagRequired("area")
	_ = cmd.MarkFlagRequired("plant")
	return cmd
}

// lookupPlant finds a plant in the current in-memory snapshot.
func lookupPlant(app *App, areaID, plantID string) (types.Plant, error) {
	for _, a := range app.Garden.Areas() {
		if a.AreaID != areaID {
			continue
		}
		if p := a.FindPlant(plantID); p != nil {
			return *p, nil
		}
		return types.Plant{}, types.ErrPlantNotFound
	}
	return types.Plant{}, types.ErrAreaNotFound
}
