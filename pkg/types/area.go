package types

// DefaultAreaEmoji is used when an area is created without an icon.
const DefaultAreaEmoji = "🌱"

// Area is a user-named container for plants, such as a planter box or a bed.
// An area owns its plants: deleting the area deletes every plant in it along
// with their journal entries.
type Area struct {
	// AreaID is a UUID v7, generated on creation.
	AreaID string

	// Name is the user-chosen name (required, non-empty).
	Name string

	// Emoji is the icon shown next to the name.
	Emoji string

	// CreatedAt is the display-formatted creation date.
	CreatedAt string

	// Plants holds the area's plants in insertion order.
	Plants []Plant
}

// FindPlant returns a pointer into Plants for the plant with the given ID,
// or nil if the area does not contain it.
func (a *Area) FindPlant(plantID string) *Plant {
	for i := range a.Plants {
		if a.Plants[i].PlantID == plantID {
			return &a.Plants[i]
		}
	}
	return nil
}
