package types

// Journal entry types.
const (
	// EntryTypeStage marks a system-generated entry recorded on a stage
	// transition. Stage entries are not user-deletable.
	EntryTypeStage = "stage"

	// EntryTypeNote marks a user-authored free-text entry.
	EntryTypeNote = "note"
)

// JournalEntry is a dated record attached to a plant.
type JournalEntry struct {
	// EntryID is a UUID v7, generated on creation.
	EntryID string

	// Date is the display-formatted calendar date of the entry. Multiple
	// entries can share a date; ordering comes from the insertion sequence,
	// never from this field.
	Date string

	// Text is the entry content. For stage entries this is the stage label.
	Text string

	// Type is EntryTypeStage or EntryTypeNote.
	Type string
}
