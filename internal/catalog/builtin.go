// Package catalog provides the plant reference catalog: the static built-in
// entries shipped with the app merged with the user-submitted custom
// entries, plus the search helpers the browse UI filters with.
package catalog

import "github.com/pottingshed/gardenlog/pkg/types"

// builtin is the static read-only catalog, loaded once and never mutated.
var builtin = []types.CatalogEntry{
	{
		ID:                    "tomato",
		Title:                 "Tomato",
		Category:              "Vegetable",
		ScientificName:        "Solanum lycopersicum",
		Description:           "Warm-season fruiting crop. Start indoors and transplant after the last frost.",
		PlantingSeasons:       []string{"Spring"},
		BestMonths:            "Mar–May",
		SunRequirements:       "Full sun",
		Watering:              "Regular, keep soil evenly moist",
		FrostTolerance:        "None",
		Difficulty:            "Medium",
		PlantLife:             "Annual",
		SuitableForContainers: true,
		RequiresTrellis:       true,
		DaysToGermination:     "6–11",
		DaysToHarvest:         "60–85",
		SowingDepth:           "0.5 cm",
		Spacing:               "45–60 cm",
		CompanionPlants:       "Basil, marigold, carrot",
		PlantHeight:           "1–2 m",
	},
	{
		ID:                    "lettuce",
		Title:                 "Lettuce",
		Category:              "Vegetable",
		ScientificName:        "Lactuca sativa",
		Description:           "Fast cool-season salad green. Sow successively for a steady supply.",
		PlantingSeasons:       []string{"Spring", "Autumn"},
		BestMonths:            "Mar–Apr, Sep–Oct",
		SunRequirements:       "Partial sun",
		Watering:              "Frequent, shallow",
		FrostTolerance:        "Light frost",
		Difficulty:            "Easy",
		PlantLife:             "Annual",
		SuitableForContainers: true,
		DaysToGermination:     "2–10",
		DaysToHarvest:         "45–60",
		SowingDepth:           "0.5 cm",
		Spacing:               "20–30 cm",
		CompanionPlants:       "Carrot, radish, strawberry",
		PlantHeight:           "15–30 cm",
	},
	{
		ID:                    "carrot",
		Title:                 "Carrot",
		Category:              "Vegetable",
		ScientificName:        "Daucus carota",
		Description:           "Root crop for loose, stone-free soil. Sow direct; does not transplant.",
		PlantingSeasons:       []string{"Spring", "Summer"},
		BestMonths:            "Apr–Jul",
		SunRequirements:       "Full sun",
		Watering:              "Moderate, even",
		FrostTolerance:        "Hardy",
		Difficulty:            "Easy",
		PlantLife:             "Biennial grown as annual",
		SuitableForContainers: true,
		DaysToGermination:     "14–21",
		DaysToHarvest:         "70–80",
		SowingDepth:           "1 cm",
		Spacing:               "5 cm",
		CompanionPlants:       "Onion, leek, rosemary",
		PlantHeight:           "30 cm",
	},
	{
		ID:                    "basil",
		Title:                 "Basil",
		Category:              "Herb",
		ScientificName:        "Ocimum basilicum",
		Description:           "Tender aromatic herb. Pinch flower spikes to keep leaves coming.",
		PlantingSeasons:       []string{"Spring", "Summer"},
		BestMonths:            "May–Jul",
		SunRequirements:       "Full sun",
		Watering:              "Regular, avoid wetting leaves",
		FrostTolerance:        "None",
		Difficulty:            "Easy",
		PlantLife:             "Annual",
		SuitableForContainers: true,
		DaysToGermination:     "5–10",
		DaysToHarvest:         "30–40",
		SowingDepth:           "0.5 cm",
		Spacing:               "20 cm",
		CompanionPlants:       "Tomato, pepper",
		PlantHeight:           "30–60 cm",
	},
	{
		ID:                    "zucchini",
		Title:                 "Zucchini",
		Category:              "Vegetable",
		ScientificName:        "Cucurbita pepo",
		Description:           "Prolific summer squash. Two plants feed a family; harvest young.",
		PlantingSeasons:       []string{"Spring", "Summer"},
		BestMonths:            "May–Jun",
		SunRequirements:       "Full sun",
		Watering:              "Heavy, at the base",
		FrostTolerance:        "None",
		Difficulty:            "Easy",
		PlantLife:             "Annual",
		DaysToGermination:     "7–14",
		DaysToHarvest:         "45–55",
		SowingDepth:           "2 cm",
		Spacing:               "90 cm",
		CompanionPlants:       "Nasturtium, corn, bean",
		PlantHeight:           "60–90 cm",
	},
	{
		ID:                    "strawberry",
		Title:                 "Strawberry",
		Category:              "Fruit",
		ScientificName:        "Fragaria × ananassa",
		Description:           "Perennial runner-forming fruit. Net against birds as berries ripen.",
		PlantingSeasons:       []string{"Spring", "Autumn"},
		BestMonths:            "Apr–May, Sep",
		SunRequirements:       "Full sun",
		Watering:              "Regular, avoid waterlogging",
		FrostTolerance:        "Hardy",
		Difficulty:            "Easy",
		PlantLife:             "Perennial",
		SuitableForContainers: true,
		DaysToHarvest:         "90–110",
		Spacing:               "30 cm",
		CompanionPlants:       "Lettuce, spinach, thyme",
		PlantHeight:           "15–20 cm",
	},
	{
		ID:                    "sunflower",
		Title:                 "Sunflower",
		Category:              "Flower",
		ScientificName:        "Helianthus annuus",
		Description:           "Tall cheerful annual. Sow direct after frost; stake in windy spots.",
		PlantingSeasons:       []string{"Spring"},
		BestMonths:            "Apr–Jun",
		SunRequirements:       "Full sun",
		Watering:              "Moderate",
		FrostTolerance:        "None",
		Difficulty:            "Easy",
		PlantLife:             "Annual",
		DroughtTolerant:       true,
		DaysToGermination:     "7–10",
		DaysToHarvest:         "80–120",
		SowingDepth:           "2.5 cm",
		Spacing:               "30–45 cm",
		CompanionPlants:       "Cucumber, corn",
		PlantHeight:           "1.5–3 m",
	},
	{
		ID:                    "pea",
		Title:                 "Pea",
		Category:              "Vegetable",
		ScientificName:        "Pisum sativum",
		Description:           "Cool-season climbing legume. Fixes nitrogen; pick pods often.",
		PlantingSeasons:       []string{"Spring", "Autumn"},
		BestMonths:            "Feb–Apr, Sep",
		SunRequirements:       "Full sun to partial shade",
		Watering:              "Moderate",
		FrostTolerance:        "Hardy",
		Difficulty:            "Easy",
		PlantLife:             "Annual",
		SuitableForContainers: true,
		RequiresTrellis:       true,
		DaysToGermination:     "7–14",
		DaysToHarvest:         "60–70",
		SowingDepth:           "2.5 cm",
		Spacing:               "5–7 cm",
		CompanionPlants:       "Carrot, turnip, radish",
		PlantHeight:           "60–180 cm",
	},
	{
		ID:                    "rosemary",
		Title:                 "Rosemary",
		Category:              "Herb",
		ScientificName:        "Salvia rosmarinus",
		Description:           "Woody Mediterranean perennial. Thrives on neglect and sharp drainage.",
		PlantingSeasons:       []string{"Spring"},
		BestMonths:            "Apr–May",
		SunRequirements:       "Full sun",
		Watering:              "Sparse",
		FrostTolerance:        "Moderate",
		Difficulty:            "Medium",
		PlantLife:             "Perennial",
		SuitableForContainers: true,
		DroughtTolerant:       true,
		DaysToGermination:     "15–25",
		Spacing:               "60 cm",
		CompanionPlants:       "Cabbage, bean, carrot",
		PlantHeight:           "60–120 cm",
	},
	{
		ID:                    "radish",
		Title:                 "Radish",
		Category:              "Vegetable",
		ScientificName:        "Raphanus sativus",
		Description:           "The fastest crop in the garden. Sow little and often; harvest in a month.",
		PlantingSeasons:       []string{"Spring", "Summer", "Autumn"},
		BestMonths:            "Mar–Sep",
		SunRequirements:       "Full sun to partial shade",
		Watering:              "Frequent, light",
		FrostTolerance:        "Light frost",
		Difficulty:            "Easy",
		PlantLife:             "Annual",
		SuitableForContainers: true,
		DaysToGermination:     "3–7",
		DaysToHarvest:         "25–35",
		SowingDepth:           "1 cm",
		Spacing:               "5 cm",
		CompanionPlants:       "Lettuce, pea, cucumber",
		PlantHeight:           "15–20 cm",
	},
}

// Builtin returns a copy of the static built-in catalog.
func Builtin() []types.CatalogEntry {
	out := make([]types.CatalogEntry, len(builtin))
	copy(out, builtin)
	return out
}
