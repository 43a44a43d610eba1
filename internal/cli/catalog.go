// Catalog subcommands.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pottingshed/gardenlog/internal/catalog"
	"github.com/pottingshed/gardenlog/pkg/types"
)

func newCatalogCmd(app *App, flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Browse the plant catalog",
	}
	cmd.AddCommand(newCatalogListCmd(app, flags))
	cmd.AddCommand(newCatalogAddCmd(app, flags))
	return cmd
}

func newCatalogListCmd(app *App, flags *rootFlags) *cobra.Command {
	var query, category string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List catalog entries, built-in and custom",
		RunE: func(cmd *cobra.Command, args []string) error {
			entries := catalog.Merged(app.Garden.CustomCatalogEntries())
			entries = catalog.FilterByCategory(catalog.Search(entries, query), category)

			if flags.jsonMode {
				return printJSON(cmd, entries)
			}
			for _, e := range entries {
				marker := ""
				if e.IsCustom {
					marker = " (custom)"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s — %s [%s]%s\n", e.ID, e.Title, e.Category, marker)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&query, "query", "", "substring match against name, scientific name, description")
	cmd.Flags().StringVar(&category, "category", "", "exact category filter")
	return cmd
}

func newCatalogAddCmd(app *App, flags *rootFlags) *cobra.Command {
	var fields types.CatalogEntry

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Submit a custom catalog entry",
		Long: `Add creates a user-submitted catalog entry. Custom entries appear in
the merged catalog alongside the built-in ones and can be planted like any
other entry. They cannot be edited or deleted once created.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			entry, err := app.Garden.AddCustomSeedToCatalog(fields)
			if err != nil {
				return fmt.Errorf("add catalog entry: %w", err)
			}
			return printResult(cmd, flags, entry,
				fmt.Sprintf("Created catalog entry %s (%s)", entry.Title, entry.ID))
		},
	}

	cmd.Flags().StringVar(&fields.Title, "title", "", "entry title (required)")
	cmd.Flags().StringVar(&fields.Category, "category", "", "category (default: Vegetable)")
	cmd.Flags().StringVar(&fields.ScientificName, "scientific-name", "", "scientific name")
	cmd.Flags().StringVar(&fields.Description, "description", "", "description")
	cmd.Flags().StringVar(&fields.ImageURL, "image-url", "", "image URL")
	cmd.Flags().StringSliceVar(&fields.PlantingSeasons, "seasons", nil, "planting seasons")
	cmd.Flags().StringVar(&fields.BestMonths, "best-months", "", "best sowing months")
	cmd.Flags().StringVar(&fields.SunRequirements, "sun", "", "sun requirements")
	cmd.Flags().StringVar(&fields.Watering, "watering", "", "watering needs")
	cmd.Flags().StringVar(&fields.FrostTolerance, "frost", "", "frost tolerance")
	cmd.Flags().StringVar(&fields.Difficulty, "difficulty", "", "growing difficulty")
	cmd.Flags().StringVar(&fields.PlantLife, "plant-life", "", "annual, biennial, or perennial")
	cmd.Flags().BoolVar(&fields.SuitableForContainers, "containers", false, "suitable for containers")
	cmd.Flags().BoolVar(&fields.RequiresTrellis, "trellis", false, "requires a trellis")
	cmd.Flags().StringVar(&fields.DaysToGermination, "germination", "", "days to germination")
	cmd.Flags().StringVar(&fields.DaysToHarvest, "harvest", "", "days to harvest")
	cmd.Flags().StringVar(&fields.SowingDepth, "sowing-depth", "", "sowing depth")
	cmd.Flags().StringVar(&fields.Spacing, "spacing", "", "plant spacing")
	cmd.Flags().StringVar(&fields.CompanionPlants, "companions", "", "companion plants")
	cmd.Flags().StringVar(&fields.PlantHeight, "height", "", "plant height")
	cmd.Flags().BoolVar(&fields.DroughtTolerant, "drought-tolerant", false, "drought tolerant")
	_ = cmd.MarkFlagRequired("title")
	return cmd
}
