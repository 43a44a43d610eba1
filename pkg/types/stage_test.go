package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStage_Valid(t *testing.T) {
	for _, s := range []Stage{StageNone, StagePlanted, StageSprouted, StageGrowing, StageHarvesting, StageDone} {
		assert.True(t, s.Valid(), "stage %q", s)
	}
	assert.False(t, Stage("flowering").Valid())
	assert.False(t, Stage("Planted").Valid()) // case-sensitive
}

func TestStage_Next(t *testing.T) {
	steps := []struct {
		from, want Stage
	}{
		{StageNone, StagePlanted},
		{StagePlanted, StageSprouted},
		{StageSprouted, StageGrowing},
		{StageGrowing, StageHarvesting},
		{StageHarvesting, StageDone},
	}
	for _, step := range steps {
		next, ok := step.from.Next()
		assert.True(t, ok, "from %q", step.from)
		assert.Equal(t, step.want, next)
	}

	// Terminal stage has no successor.
	next, ok := StageDone.Next()
	assert.False(t, ok)
	assert.Equal(t, StageDone, next)
}

func TestStage_Prev(t *testing.T) {
	prev, ok := StageDone.Prev()
	assert.True(t, ok)
	assert.Equal(t, StageHarvesting, prev)

	prev, ok = StagePlanted.Prev()
	assert.True(t, ok)
	assert.Equal(t, StageNone, prev)

	// Not-started has no predecessor.
	prev, ok = StageNone.Prev()
	assert.False(t, ok)
	assert.Equal(t, StageNone, prev)
}

func TestStage_NextPrevAreInverses(t *testing.T) {
	s := StageNone
	for {
		next, ok := s.Next()
		if !ok {
			break
		}
		back, ok := next.Prev()
		assert.True(t, ok)
		assert.Equal(t, s, back)
		s = next
	}
	assert.Equal(t, StageDone, s)
}

func TestStage_Label(t *testing.T) {
	assert.Equal(t, "🌱 Planted", StagePlanted.Label())
	assert.Equal(t, "✅ Done", StageDone.Label())
	assert.Empty(t, StageNone.Label())
}
