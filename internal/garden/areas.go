// Area mutations: create, rename, delete, and the atomic create-and-add
// composite.
package garden

import (
	"strings"

	"github.com/pottingshed/gardenlog/pkg/types"
)

// CreateArea adds a new empty area and returns it, so a create-and-reference
// flow can use the generated ID immediately.
func (s *Store) CreateArea(name, emoji string) (types.Area, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return types.Area{}, types.ErrInvalidName
	}
	if emoji == "" {
		emoji = types.DefaultAreaEmoji
	}

	area := types.Area{
		AreaID:    types.NewID(),
		Name:      name,
		Emoji:     emoji,
		CreatedAt: types.Today(),
		Plants:    []types.Plant{},
	}

	s.mu.Lock()
	s.areas = append(s.areas, area)
	s.mu.Unlock()

	s.dispatch("insert area", func() error {
		return s.db.InsertArea(area)
	})
	return copyArea(area), nil
}

// RenameArea updates an area's name, and its emoji when newEmoji is
// non-empty; an empty newEmoji keeps the existing icon.
func (s *Store) RenameArea(areaID, newName, newEmoji string) error {
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return types.ErrInvalidName
	}

	s.mu.Lock()
	area := s.findArea(areaID)
	if area == nil {
		s.mu.Unlock()
		return types.ErrAreaNotFound
	}
	area.Name = newName
	if newEmoji != "" {
		area.Emoji = newEmoji
	}
	emoji := area.Emoji
	s.mu.Unlock()

	s.dispatch("update area", func() error {
		return s.db.UpdateArea(areaID, newName, emoji)
	})
	return nil
}

// DeleteArea removes an area and everything in it. The durable delete relies
// on cascade to remove the area's plants and their journal entries.
func (s *Store) DeleteArea(areaID string) error {
	s.mu.Lock()
	found := false
	for i := range s.areas {
		if s.areas[i].AreaID == areaID {
			s.areas = append(s.areas[:i], s.areas[i+1:]...)
			found = true
			break
		}
	}
	s.mu.Unlock()

	if !found {
		return types.ErrAreaNotFound
	}

	s.dispatch("delete area", func() error {
		return s.db.DeleteArea(areaID)
	})
	return nil
}

// CreateAreaAndAddPlant creates an area with its first plant as one state
// transition, so no reader ever observes the area without the plant, and
// persists both rows inside a single transaction for the same reason.
func (s *Store) CreateAreaAndAddPlant(name, emoji string, item types.CatalogEntry) (types.Area, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return types.Area{}, types.ErrInvalidName
	}
	if emoji == "" {
		emoji = types.DefaultAreaEmoji
	}

	plant := plantFromCatalog(item)
	area := types.Area{
		AreaID:    types.NewID(),
		Name:      name,
		Emoji:     emoji,
		CreatedAt: types.Today(),
		Plants:    []types.Plant{plant},
	}

	s.mu.Lock()
	s.areas = append(s.areas, area)
	s.mu.Unlock()

	s.dispatch("insert area with plant", func() error {
		return s.db.InsertAreaWithPlant(area, plant)
	})
	return copyArea(area), nil
}
