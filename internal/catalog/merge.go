package catalog

import "github.com/pottingshed/gardenlog/pkg/types"

// Merged returns the one logical catalog: built-in entries followed by the
// user-submitted custom entries, recomputed on every call so it always
// reflects the current custom list.
func Merged(custom []types.CatalogEntry) []types.CatalogEntry {
	out := make([]types.CatalogEntry, 0, len(builtin)+len(custom))
	out = append(out, Builtin()...)
	out = append(out, custom...)
	return out
}

// Search filters entries by free-text substring match against title,
// scientific name, and description. An empty query returns everything.
func Search(entries []types.CatalogEntry, query string) []types.CatalogEntry {
	var out []types.CatalogEntry
	for i := range entries {
		if entries[i].Matches(query) {
			out = append(out, entries[i])
		}
	}
	return out
}

// FilterByCategory filters entries by exact category. An empty category
// returns everything.
func FilterByCategory(entries []types.CatalogEntry, category string) []types.CatalogEntry {
	if category == "" {
		return entries
	}
	var out []types.CatalogEntry
	for i := range entries {
		if entries[i].Category == category {
			out = append(out, entries[i])
		}
	}
	return out
}

// FindByID returns the entry with the given ID from the merged catalog.
func FindByID(entries []types.CatalogEntry, id string) (types.CatalogEntry, bool) {
	for i := range entries {
		if entries[i].ID == id {
			return entries[i], true
		}
	}
	return types.CatalogEntry{}, false
}
