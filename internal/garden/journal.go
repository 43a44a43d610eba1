// Note-type journal mutations. Stage entries are appended and removed only
// by the stage transition operations in plants.go.
package garden

import (
	"strings"

	"github.com/pottingshed/gardenlog/pkg/types"
)

// AddJournalEntry appends a user note to a plant's journal and returns it.
// Text is trimmed first; text that trims empty is rejected locally before
// any state change or persistence dispatch.
func (s *Store) AddJournalEntry(areaID, plantID, text string) (types.JournalEntry, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return types.JournalEntry{}, types.ErrEmptyEntryText
	}

	entry := types.JournalEntry{
		EntryID: types.NewID(),
		Date:    types.Today(),
		Text:    text,
		Type:    types.EntryTypeNote,
	}

	s.mu.Lock()
	_, plant := s.findPlant(areaID, plantID)
	if plant == nil {
		s.mu.Unlock()
		return types.JournalEntry{}, types.ErrPlantNotFound
	}
	plant.Journal = append(plant.Journal, entry)
	s.mu.Unlock()

	s.dispatch("insert note entry", func() error {
		return s.db.InsertJournalEntry(plantID, entry)
	})
	return entry, nil
}

// RemoveJournalEntry removes a user note. Stage entries are read-only to the
// user: asking to remove one is ignored.
func (s *Store) RemoveJournalEntry(areaID, plantID, entryID string) error {
	s.mu.Lock()
	_, plant := s.findPlant(areaID, plantID)
	if plant == nil {
		s.mu.Unlock()
		return types.ErrPlantNotFound
	}

	found := false
	for i := range plant.Journal {
		if plant.Journal[i].EntryID != entryID {
			continue
		}
		if plant.Journal[i].Type == types.EntryTypeStage {
			s.mu.Unlock()
			return nil
		}
		plant.Journal = append(plant.Journal[:i], plant.Journal[i+1:]...)
		found = true
		break
	}
	s.mu.Unlock()

	if !found {
		return types.ErrEntryNotFound
	}

	s.dispatch("delete note entry", func() error {
		return s.db.DeleteJournalEntry(entryID)
	})
	return nil
}
