// Package settings implements the user preference store: the same
// optimistic dual-write pattern as the garden store, over a flat record
// persisted as one JSON value in the key-value sub-store.
package settings

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/pottingshed/gardenlog/internal/persist"
	"github.com/pottingshed/gardenlog/pkg/types"
)

// Key is the kv_store key holding the serialized settings record.
const Key = "settings"

// KV is the key-value surface the store persists through. Satisfied by
// *sqlite.Store. Nil puts the store into memory-only mode.
type KV interface {
	GetValue(key string) (string, error)
	SetValue(key, value string) error
}

// Store holds the current in-memory settings.
type Store struct {
	logger *slog.Logger
	kv     KV
	queue  *persist.Queue

	mu      sync.Mutex
	current types.Settings
}

// NewStore creates a settings store initialized to the hard-coded defaults.
func NewStore(kv KV, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		logger:  logger,
		kv:      kv,
		queue:   persist.NewQueue(logger),
		current: types.DefaultSettings(),
	}
}

// stored mirrors the persisted record with every field optional, so a record
// written by an older release merges over the defaults instead of zeroing
// fields it never knew about.
type stored struct {
	RemindersEnabled *bool `json:"remindersEnabled"`
	ReminderHour     *int  `json:"reminderHour"`
	ReminderMinute   *int  `json:"reminderMinute"`
}

// Load reads the stored record and merges it over the defaults
// field-by-field. A missing record, or any read or parse failure, leaves the
// defaults in place.
func (s *Store) Load() {
	if s.kv == nil {
		return
	}

	raw, err := s.kv.GetValue(Key)
	if err != nil {
		if err != types.ErrNotFound {
			s.logger.Error("loading settings failed, using defaults",
				slog.String("error", err.Error()))
		}
		return
	}

	var rec stored
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		s.logger.Error("parsing stored settings failed, using defaults",
			slog.String("error", err.Error()))
		return
	}

	merged := types.DefaultSettings().Apply(types.SettingsPatch{
		RemindersEnabled: rec.RemindersEnabled,
		ReminderHour:     rec.ReminderHour,
		ReminderMinute:   rec.ReminderMinute,
	})

	s.mu.Lock()
	s.current = merged
	s.mu.Unlock()
}

// Current returns the in-memory settings.
func (s *Store) Current() types.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Update merges the patch into the current settings immediately and
// persists the whole serialized record asynchronously under one key.
func (s *Store) Update(patch types.SettingsPatch) types.Settings {
	s.mu.Lock()
	s.current = s.current.Apply(patch)
	updated := s.current
	s.mu.Unlock()

	if s.kv == nil {
		s.logger.Debug("settings write skipped: memory-only mode")
		return updated
	}

	s.queue.Enqueue("save settings", func() error {
		raw, err := json.Marshal(updated)
		if err != nil {
			return fmt.Errorf("marshaling settings: %w", err)
		}
		return s.kv.SetValue(Key, string(raw))
	})
	return updated
}

// Flush blocks until every enqueued settings write has executed.
func (s *Store) Flush() {
	s.queue.Flush()
}

// Close flushes pending writes and stops the background writer.
func (s *Store) Close() {
	s.queue.Close()
}
