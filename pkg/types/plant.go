package types

// Plant is one tracked instance of something growing inside an area.
// Display fields are denormalized from the catalog entry at add-time so the
// plant keeps rendering correctly even if the catalog entry later changes
// or disappears.
type Plant struct {
	// PlantID is a UUID v7, generated on creation.
	PlantID string

	// SeedID references the catalog entry this plant was added from.
	// Nil for freehand plants with no catalog linkage.
	SeedID *string

	// SeedTitle is the catalog title captured at add-time.
	SeedTitle string

	// SeedCategory is the catalog category captured at add-time.
	SeedCategory string

	// SeedImage is the catalog image URL captured at add-time, if any.
	SeedImage *string

	// PlantedDate is the display-formatted date the plant was added.
	PlantedDate string

	// Stage is the current growth stage. StageNone means not started.
	Stage Stage

	// Journal holds the plant's entries in insertion order.
	Journal []JournalEntry
}

// StageEntryCount returns the number of stage-type journal entries.
func (p *Plant) StageEntryCount() int {
	n := 0
	for _, e := range p.Journal {
		if e.Type == EntryTypeStage {
			n++
		}
	}
	return n
}

// LastStageEntry returns the index of the most recently added stage-type
// entry, or -1 if the journal has none.
func (p *Plant) LastStageEntry() int {
	for i := len(p.Journal) - 1; i >= 0; i-- {
		if p.Journal[i].Type == EntryTypeStage {
			return i
		}
	}
	return -1
}
