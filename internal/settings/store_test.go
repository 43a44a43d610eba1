package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pottingshed/gardenlog/internal/sqlite"
	"github.com/pottingshed/gardenlog/pkg/types"
)

func newTestKV(t *testing.T) *sqlite.Store {
	t.Helper()
	db := sqlite.NewStore()
	require.NoError(t, db.Open(types.Config{DataDir: t.TempDir()}))
	t.Cleanup(func() { db.Close() })
	return db
}

func boolPtr(b bool) *bool { return &b }
func intPtr(i int) *int    { return &i }

func TestStore_DefaultsWithoutRecord(t *testing.T) {
	s := NewStore(newTestKV(t), nil)
	defer s.Close()
	s.Load()

	assert.Equal(t, types.DefaultSettings(), s.Current())
}

func TestStore_UpdateAndReload(t *testing.T) {
	db := newTestKV(t)

	s := NewStore(db, nil)
	got := s.Update(types.SettingsPatch{
		RemindersEnabled: boolPtr(true),
		ReminderHour:     intPtr(18),
	})
	assert.True(t, got.RemindersEnabled)
	assert.Equal(t, 18, got.ReminderHour)
	assert.Equal(t, 0, got.ReminderMinute) // untouched fields keep their value
	s.Close()

	s2 := NewStore(db, nil)
	defer s2.Close()
	s2.Load()

	assert.Equal(t, got, s2.Current())
}

func TestStore_PartialPatchLeavesOtherFields(t *testing.T) {
	s := NewStore(newTestKV(t), nil)
	defer s.Close()

	s.Update(types.SettingsPatch{ReminderHour: intPtr(7)})
	got := s.Update(types.SettingsPatch{ReminderMinute: intPtr(30)})

	assert.Equal(t, 7, got.ReminderHour)
	assert.Equal(t, 30, got.ReminderMinute)
	assert.False(t, got.RemindersEnabled)
}

func TestStore_OlderRecordMergesOverDefaults(t *testing.T) {
	db := newTestKV(t)

	// A record written before ReminderMinute existed carries only the fields
	// its release knew about.
	require.NoError(t, db.SetValue(Key, `{"remindersEnabled":true,"reminderHour":17}`))

	s := NewStore(db, nil)
	defer s.Close()
	s.Load()

	got := s.Current()
	assert.True(t, got.RemindersEnabled)
	assert.Equal(t, 17, got.ReminderHour)
	assert.Equal(t, types.DefaultSettings().ReminderMinute, got.ReminderMinute)
}

func TestStore_CorruptRecordFallsBackToDefaults(t *testing.T) {
	db := newTestKV(t)
	require.NoError(t, db.SetValue(Key, "{not json"))

	s := NewStore(db, nil)
	defer s.Close()
	s.Load()

	assert.Equal(t, types.DefaultSettings(), s.Current())
}

func TestStore_MemoryOnlyMode(t *testing.T) {
	s := NewStore(nil, nil)
	defer s.Close()
	s.Load()

	got := s.Update(types.SettingsPatch{RemindersEnabled: boolPtr(true)})
	assert.True(t, got.RemindersEnabled)
	assert.True(t, s.Current().RemindersEnabled)
}

func TestStore_PersistedRecordShape(t *testing.T) {
	db := newTestKV(t)

	s := NewStore(db, nil)
	s.Update(types.SettingsPatch{RemindersEnabled: boolPtr(true), ReminderHour: intPtr(8), ReminderMinute: intPtr(15)})
	s.Flush()
	s.Close()

	raw, err := db.GetValue(Key)
	require.NoError(t, err)
	assert.JSONEq(t, `{"remindersEnabled":true,"reminderHour":8,"reminderMinute":15}`, raw)
}
