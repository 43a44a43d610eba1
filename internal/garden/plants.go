// Plant mutations: adding from the catalog or freehand, stage transitions,
// and removal.
package garden

import (
	"strings"

	"github.com/pottingshed/gardenlog/pkg/types"
)

// DefaultFreehandCategory is used for freehand plants added without one.
const DefaultFreehandCategory = "Other"

// plantFromCatalog builds a not-started plant, denormalizing the catalog
// display fields at this instant so the plant's card keeps rendering even if
// the catalog entry later changes or is deleted.
func plantFromCatalog(item types.CatalogEntry) types.Plant {
	seedID := item.ID
	p := types.Plant{
		PlantID:      types.NewID(),
		SeedID:       &seedID,
		SeedTitle:    item.Title,
		SeedCategory: item.Category,
		PlantedDate:  types.Today(),
		Stage:        types.StageNone,
		Journal:      []types.JournalEntry{},
	}
	if item.ImageURL != "" {
		img := item.ImageURL
		p.SeedImage = &img
	}
	return p
}

// AddPlantToArea adds a plant built from a catalog entry and returns it.
func (s *Store) AddPlantToArea(areaID string, item types.CatalogEntry) (types.Plant, error) {
	plant := plantFromCatalog(item)

	s.mu.Lock()
	area := s.findArea(areaID)
	if area == nil {
		s.mu.Unlock()
		return types.Plant{}, types.ErrAreaNotFound
	}
	area.Plants = append(area.Plants, plant)
	s.mu.Unlock()

	s.dispatch("insert plant", func() error {
		return s.db.InsertPlant(areaID, plant)
	})
	return copyPlant(plant), nil
}

// AddCustomPlantToArea adds a freehand plant with no catalog linkage.
// Category defaults to DefaultFreehandCategory when empty.
func (s *Store) AddCustomPlantToArea(areaID, name, category string) (types.Plant, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return types.Plant{}, types.ErrInvalidName
	}
	if category == "" {
		category = DefaultFreehandCategory
	}

	plant := types.Plant{
		PlantID:      types.NewID(),
		SeedTitle:    name,
		SeedCategory: category,
		PlantedDate:  types.Today(),
		Stage:        types.StageNone,
		Journal:      []types.JournalEntry{},
	}

	s.mu.Lock()
	area := s.findArea(areaID)
	if area == nil {
		s.mu.Unlock()
		return types.Plant{}, types.ErrAreaNotFound
	}
	area.Plants = append(area.Plants, plant)
	s.mu.Unlock()

	s.dispatch("insert plant", func() error {
		return s.db.InsertPlant(areaID, plant)
	})
	return copyPlant(plant), nil
}

// UpdatePlantStage advances a plant to newStage and records exactly one
// stage-type journal entry for the transition. Stages only move to the
// immediately next one; advancing from the terminal stage is a no-op.
//
// The stage update and the journal insert are dispatched as two independent
// writes. They need not be transactional with each other, but the queue
// guarantees both eventually execute in order.
func (s *Store) UpdatePlantStage(areaID, plantID string, newStage types.Stage) error {
	if !newStage.Valid() || newStage == types.StageNone {
		return types.ErrInvalidStage
	}

	s.mu.Lock()
	_, plant := s.findPlant(areaID, plantID)
	if plant == nil {
		s.mu.Unlock()
		return types.ErrPlantNotFound
	}

	next, ok := plant.Stage.Next()
	if !ok {
		// Terminal stage: nothing to advance to.
		s.mu.Unlock()
		return nil
	}
	if newStage != next {
		s.mu.Unlock()
		return types.ErrStageNotAdjacent
	}

	entry := types.JournalEntry{
		EntryID: types.NewID(),
		Date:    types.Today(),
		Text:    newStage.Label(),
		Type:    types.EntryTypeStage,
	}
	plant.Stage = newStage
	plant.Journal = append(plant.Journal, entry)
	s.mu.Unlock()

	s.dispatch("update plant stage", func() error {
		return s.db.UpdatePlantStage(plantID, newStage)
	})
	s.dispatch("insert stage entry", func() error {
		return s.db.InsertJournalEntry(plantID, entry)
	})
	return nil
}

// RollbackPlantStage moves a plant back to previousStage and removes the
// most recently added stage-type journal entry, acting as a true inverse of
// the matching advance rather than a forward-logged event. previousStage may be
// StageNone, returning the plant to not-started. Rolling back from
// not-started is a no-op.
func (s *Store) RollbackPlantStage(areaID, plantID string, previousStage types.Stage) error {
	if !previousStage.Valid() {
		return types.ErrInvalidStage
	}

	s.mu.Lock()
	_, plant := s.findPlant(areaID, plantID)
	if plant == nil {
		s.mu.Unlock()
		return types.ErrPlantNotFound
	}

	prev, ok := plant.Stage.Prev()
	if !ok {
		// Already not started: nothing to roll back.
		s.mu.Unlock()
		return nil
	}
	if previousStage != prev {
		s.mu.Unlock()
		return types.ErrStageNotAdjacent
	}

	plant.Stage = previousStage
	if i := plant.LastStageEntry(); i >= 0 {
		plant.Journal = append(plant.Journal[:i], plant.Journal[i+1:]...)
	}
	s.mu.Unlock()

	s.dispatch("update plant stage", func() error {
		return s.db.UpdatePlantStage(plantID, previousStage)
	})
	s.dispatch("delete last stage entry", func() error {
		return s.db.DeleteLastStageEntry(plantID)
	})
	return nil
}

// RemovePlantFromArea removes a plant. The durable delete relies on cascade
// to remove the plant's journal entries.
func (s *Store) RemovePlantFromArea(areaID, plantID string) error {
	s.mu.Lock()
	area := s.findArea(areaID)
	if area == nil {
		s.mu.Unlock()
		return types.ErrAreaNotFound
	}
	found := false
	for i := range area.Plants {
		if area.Plants[i].PlantID == plantID {
			area.Plants = append(area.Plants[:i], area.Plants[i+1:]...)
			found = true
			break
		}
	}
	s.mu.Unlock()

	if !found {
		return types.ErrPlantNotFound
	}

	s.dispatch("delete plant", func() error {
		return s.db.DeletePlant(plantID)
	})
	return nil
}
