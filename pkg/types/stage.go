package types

// Stage is a plant's position in the fixed growth lifecycle.
// The zero value StageNone means the plant has not started growing yet;
// it is stored as NULL in the database.
type Stage string

// Growth stages in lifecycle order.
const (
	StageNone       Stage = ""
	StagePlanted    Stage = "planted"
	StageSprouted   Stage = "sprouted"
	StageGrowing    Stage = "growing"
	StageHarvesting Stage = "harvesting"
	StageDone       Stage = "done"
)

// stageOrder lists the stages a plant moves through, StageNone first.
var stageOrder = []Stage{
	StageNone,
	StagePlanted,
	StageSprouted,
	StageGrowing,
	StageHarvesting,
	StageDone,
}

// stageLabels are the journal texts recorded on each forward transition.
var stageLabels = map[Stage]string{
	StagePlanted:    "🌱 Planted",
	StageSprouted:   "🌿 Sprouted",
	StageGrowing:    "🪴 Growing",
	StageHarvesting: "🧺 Harvesting",
	StageDone:       "✅ Done",
}

// Valid reports whether s is a recognized stage, including StageNone.
func (s Stage) Valid() bool {
	for _, st := range stageOrder {
		if st == s {
			return true
		}
	}
	return false
}

// Next returns the stage immediately after s. ok is false when s is the
// terminal stage (advancing from done is a no-op for callers).
func (s Stage) Next() (next Stage, ok bool) {
	for i, st := range stageOrder {
		if st == s {
			if i+1 < len(stageOrder) {
				return stageOrder[i+1], true
			}
			return s, false
		}
	}
	return s, false
}

// Prev returns the stage immediately before s. ok is false when s is
// StageNone (rolling back from not-started is a no-op for callers).
func (s Stage) Prev() (prev Stage, ok bool) {
	for i, st := range stageOrder {
		if st == s {
			if i > 0 {
				return stageOrder[i-1], true
			}
			return s, false
		}
	}
	return s, false
}

// Label returns the journal text for a forward transition into s.
func (s Stage) Label() string {
	return stageLabels[s]
}
