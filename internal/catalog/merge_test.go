package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pottingshed/gardenlog/pkg/types"
)

func TestBuiltin_ReturnsCopy(t *testing.T) {
	a := Builtin()
	require.NotEmpty(t, a)

	a[0].Title = "mutated"
	b := Builtin()
	assert.NotEqual(t, "mutated", b[0].Title)
}

func TestBuiltin_EntriesAreWellFormed(t *testing.T) {
	seen := map[string]bool{}
	for _, e := range Builtin() {
		assert.NotEmpty(t, e.ID)
		assert.NotEmpty(t, e.Title)
		assert.NotEmpty(t, e.Category)
		assert.False(t, e.IsCustom)
		assert.False(t, types.IsCustomID(e.ID))
		assert.False(t, seen[e.ID], "duplicate catalog ID %q", e.ID)
		seen[e.ID] = true
	}
}

func TestMerged(t *testing.T) {
	custom := []types.CatalogEntry{
		{ID: "custom-1", Title: "Heirloom Bean", Category: "Vegetable", IsCustom: true},
	}

	merged := Merged(custom)
	require.Len(t, merged, len(Builtin())+1)

	// Built-ins first, custom entries after.
	assert.False(t, merged[0].IsCustom)
	assert.Equal(t, "custom-1", merged[len(merged)-1].ID)

	// No custom entries: merged equals the built-in list.
	assert.Len(t, Merged(nil), len(Builtin()))
}

func TestSearch(t *testing.T) {
	entries := Merged(nil)

	got := Search(entries, "tomato")
	require.NotEmpty(t, got)
	for _, e := range got {
		assert.True(t, e.Matches("tomato"))
	}

	assert.Len(t, Search(entries, ""), len(entries))
	assert.Empty(t, Search(entries, "no such plant anywhere"))
}

func TestFilterByCategory(t *testing.T) {
	entries := Merged(nil)

	herbs := FilterByCategory(entries, "Herb")
	require.NotEmpty(t, herbs)
	for _, e := range herbs {
		assert.Equal(t, "Herb", e.Category)
	}

	assert.Len(t, FilterByCategory(entries, ""), len(entries))
	assert.Empty(t, FilterByCategory(entries, "Tree"))
}

func TestFindByID(t *testing.T) {
	custom := []types.CatalogEntry{{ID: "custom-1", Title: "Heirloom Bean", IsCustom: true}}
	entries := Merged(custom)

	e, ok := FindByID(entries, "lettuce")
	require.True(t, ok)
	assert.Equal(t, "Lettuce", e.Title)

	e, ok = FindByID(entries, "custom-1")
	require.True(t, ok)
	assert.True(t, e.IsCustom)

	_, ok = FindByID(entries, "missing")
	assert.False(t, ok)
}
