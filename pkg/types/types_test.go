package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlant_StageEntryCount(t *testing.T) {
	p := Plant{Journal: []JournalEntry{
		{EntryID: "e1", Type: EntryTypeStage},
		{EntryID: "e2", Type: EntryTypeNote},
		{EntryID: "e3", Type: EntryTypeStage},
	}}
	assert.Equal(t, 2, p.StageEntryCount())

	empty := Plant{}
	assert.Zero(t, empty.StageEntryCount())
}

func TestPlant_LastStageEntry(t *testing.T) {
	p := Plant{Journal: []JournalEntry{
		{EntryID: "e1", Type: EntryTypeStage},
		{EntryID: "e2", Type: EntryTypeNote},
		{EntryID: "e3", Type: EntryTypeStage},
		{EntryID: "e4", Type: EntryTypeNote},
	}}
	assert.Equal(t, 2, p.LastStageEntry())

	notesOnly := Plant{Journal: []JournalEntry{{EntryID: "e1", Type: EntryTypeNote}}}
	assert.Equal(t, -1, notesOnly.LastStageEntry())
}

func TestArea_FindPlant(t *testing.T) {
	a := Area{Plants: []Plant{{PlantID: "p1"}, {PlantID: "p2"}}}

	p := a.FindPlant("p2")
	require.NotNil(t, p)
	assert.Equal(t, "p2", p.PlantID)

	// Returned pointer aliases the slice element.
	p.SeedTitle = "Basil"
	assert.Equal(t, "Basil", a.Plants[1].SeedTitle)

	assert.Nil(t, a.FindPlant("missing"))
}

func TestSettings_Apply(t *testing.T) {
	enabled := true
	hour := 18

	got := DefaultSettings().Apply(SettingsPatch{
		RemindersEnabled: &enabled,
		ReminderHour:     &hour,
	})
	assert.True(t, got.RemindersEnabled)
	assert.Equal(t, 18, got.ReminderHour)
	assert.Equal(t, 0, got.ReminderMinute)

	// Empty patch changes nothing.
	assert.Equal(t, got, got.Apply(SettingsPatch{}))
}

func TestCatalogEntry_Matches(t *testing.T) {
	e := CatalogEntry{
		Title:          "Cherry Tomato",
		ScientificName: "Solanum lycopersicum",
		Description:    "Sweet bite-sized fruit",
	}

	assert.True(t, e.Matches(""))
	assert.True(t, e.Matches("  "))
	assert.True(t, e.Matches("tomato"))
	assert.True(t, e.Matches("SOLANUM"))
	assert.True(t, e.Matches("bite-sized"))
	assert.False(t, e.Matches("cucumber"))
}

func TestIsCustomID(t *testing.T) {
	assert.True(t, IsCustomID("custom-0192d1"))
	assert.False(t, IsCustomID("tomato"))
	assert.False(t, IsCustomID(""))
}

func TestNewID(t *testing.T) {
	a, b := NewID(), NewID()
	assert.NotEmpty(t, a)
	assert.NotEqual(t, a, b)
	assert.Len(t, a, 36)
}

func TestDisplayDate(t *testing.T) {
	d := time.Date(2026, time.August, 25, 14, 30, 0, 0, time.UTC)
	assert.Equal(t, "Aug 25, 2026", DisplayDate(d))
}

func TestConfig_DatabasePath(t *testing.T) {
	c := Config{DataDir: "/tmp/gardenlog"}
	assert.Equal(t, "/tmp/gardenlog/"+DatabaseFileName, c.DatabasePath())
}
