package types

import "strings"

// CustomIDPrefix marks user-submitted catalog entries so their IDs can never
// collide with built-in catalog IDs.
const CustomIDPrefix = "custom-"

// DefaultCatalogCategory is applied when a custom catalog entry is submitted
// without a category.
const DefaultCatalogCategory = "Vegetable"

// CatalogEntry is a plant reference record: either a built-in entry shipped
// with the app or a user-submitted custom entry (IsCustom true, ID prefixed
// with CustomIDPrefix). Catalog entries describe what can be grown; a Plant
// is an instance of one growing in an area.
type CatalogEntry struct {
	ID             string
	Title          string
	Category       string
	ScientificName string
	Description    string
	ImageURL       string

	// PlantingSeasons is stored as a JSON text array in the database.
	PlantingSeasons []string

	BestMonths      string
	SunRequirements string
	Watering        string
	FrostTolerance  string
	Difficulty      string
	PlantLife       string

	SuitableForContainers bool
	RequiresTrellis       bool

	DaysToGermination string
	DaysToHarvest     string
	SowingDepth       string
	Spacing           string
	CompanionPlants   string
	PlantHeight       string

	DroughtTolerant bool

	// IsCustom is true for user-submitted entries.
	IsCustom bool
}

// IsCustomID reports whether a catalog ID belongs to a user-submitted entry.
func IsCustomID(id string) bool {
	return strings.HasPrefix(id, CustomIDPrefix)
}

// Matches reports whether the entry matches a free-text query by
// case-insensitive substring against title, scientific name, or description.
// An empty query matches everything.
func (e *CatalogEntry) Matches(query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(e.Title), q) ||
		strings.Contains(strings.ToLower(e.ScientificName), q) ||
		strings.Contains(strings.ToLower(e.Description), q)
}
