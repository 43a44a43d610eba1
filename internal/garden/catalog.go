// Custom catalog entry creation. Entries are create-only in the current
// design: no update or delete operation exists for them.
package garden

import (
	"strings"

	"github.com/pottingshed/gardenlog/pkg/types"
)

// AddCustomSeedToCatalog constructs a user-submitted catalog entry from the
// given fields, applying field-level defaults, and appends it to the custom
// list. The generated ID carries the custom prefix so it can never collide
// with a built-in catalog ID.
func (s *Store) AddCustomSeedToCatalog(fields types.CatalogEntry) (types.CatalogEntry, error) {
	entry := fields
	entry.Title = strings.TrimSpace(entry.Title)
	if entry.Title == "" {
		return types.CatalogEntry{}, types.ErrInvalidName
	}

	entry.ID = types.CustomIDPrefix + types.NewID()
	entry.IsCustom = true
	entry.Category = strings.TrimSpace(entry.Category)
	if entry.Category == "" {
		entry.Category = types.DefaultCatalogCategory
	}
	entry.ScientificName = strings.TrimSpace(entry.ScientificName)
	entry.Description = strings.TrimSpace(entry.Description)
	entry.ImageURL = strings.TrimSpace(entry.ImageURL)

	s.mu.Lock()
	s.custom = append(s.custom, entry)
	s.mu.Unlock()

	s.dispatch("insert custom catalog entry", func() error {
		return s.db.InsertCustomCatalogEntry(entry)
	})
	return entry, nil
}

// CustomCatalogEntries returns a copy of the user-submitted catalog entries
// in insertion order.
func (s *Store) CustomCatalogEntries() []types.CatalogEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]types.CatalogEntry, len(s.custom))
	copy(out, s.custom)
	return out
}
