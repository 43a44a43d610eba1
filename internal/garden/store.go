// Package garden implements the authoritative in-memory garden state: the
// areas, plants, journals, and custom catalog entries the UI reads and
// mutates. Every mutation applies to memory synchronously, then enqueues the
// matching durable write on a background queue; callers never wait for, or
// fail on, persistence. The in-memory state always wins over the database
// until the next full load.
package garden

import (
	"log/slog"
	"sync"

	"github.com/pottingshed/gardenlog/internal/persist"
	"github.com/pottingshed/gardenlog/pkg/types"
)

// Persister is the data-access surface the store writes through. It is
// satisfied by *sqlite.Store. A nil Persister puts the store into degraded
// memory-only mode: the session stays fully usable, nothing survives a
// restart.
type Persister interface {
	LoadAllAreas() ([]types.Area, error)
	LoadCustomCatalogEntries() ([]types.CatalogEntry, error)

	InsertArea(area types.Area) error
	UpdateArea(areaID, name, emoji string) error
	DeleteArea(areaID string) error
	InsertAreaWithPlant(area types.Area, plant types.Plant) error

	InsertPlant(areaID string, plant types.Plant) error
	UpdatePlantStage(plantID string, stage types.Stage) error
	DeletePlant(plantID string) error

	InsertJournalEntry(plantID string, entry types.JournalEntry) error
	DeleteJournalEntry(entryID string) error
	DeleteLastStageEntry(plantID string) error

	InsertCustomCatalogEntry(entry types.CatalogEntry) error
}

// Store owns the canonical in-memory garden state for the app session.
type Store struct {
	logger *slog.Logger
	db     Persister
	queue  *persist.Queue

	mu      sync.Mutex
	loading bool
	areas   []types.Area
	custom  []types.CatalogEntry
}

// NewStore creates a Store around the given persister. A nil logger defaults
// to slog.Default.
func NewStore(db Persister, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		logger:  logger,
		db:      db,
		queue:   persist.NewQueue(logger),
		loading: true,
	}
}

// Load seeds the in-memory state from the durable store. A load failure is
// not fatal: the session starts empty and the store keeps working in memory,
// so the app opens instead of blocking on a broken database.
func (s *Store) Load() {
	var areas []types.Area
	var custom []types.CatalogEntry

	if s.db != nil {
		var err error
		areas, err = s.db.LoadAllAreas()
		if err != nil {
			s.logger.Error("loading areas failed, starting empty",
				slog.String("error", err.Error()))
			areas = nil
		}
		custom, err = s.db.LoadCustomCatalogEntries()
		if err != nil {
			s.logger.Error("loading custom catalog failed, starting empty",
				slog.String("error", err.Error()))
			custom = nil
		}
	} else {
		s.logger.Warn("persistence unavailable, running memory-only")
	}

	s.mu.Lock()
	s.areas = areas
	s.custom = custom
	s.loading = false
	s.mu.Unlock()
}

// Loading reports whether the initial load has not finished yet.
func (s *Store) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Areas returns a deep copy of the current areas in insertion order.
func (s *Store) Areas() []types.Area {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]types.Area, len(s.areas))
	for i := range s.areas {
		out[i] = copyArea(s.areas[i])
	}
	return out
}

// TotalPlantCount returns the number of plants across all areas, recomputed
// from current in-memory state.
func (s *Store) TotalPlantCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for i := range s.areas {
		n += len(s.areas[i].Plants)
	}
	return n
}

// Flush blocks until every persistence write enqueued so far has executed.
func (s *Store) Flush() {
	s.queue.Flush()
}

// Close flushes pending writes and stops the background writer.
func (s *Store) Close() {
	s.queue.Close()
}

// dispatch enqueues a durable write, or drops it with a debug log in
// memory-only mode.
func (s *Store) dispatch(label string, run func() error) {
	if s.db == nil {
		s.logger.Debug("write skipped: memory-only mode", slog.String("op", label))
		return
	}
	s.queue.Enqueue(label, run)
}

// findArea returns a pointer into s.areas. Caller must hold s.mu.
func (s *Store) findArea(areaID string) *types.Area {
	for i := range s.areas {
		if s.areas[i].AreaID == areaID {
			return &s.areas[i]
		}
	}
	return nil
}

// findPlant returns pointers into s.areas for the area and plant. Caller
// must hold s.mu.
func (s *Store) findPlant(areaID, plantID string) (*types.Area, *types.Plant) {
	area := s.findArea(areaID)
	if area == nil {
		return nil, nil
	}
	return area, area.FindPlant(plantID)
}

// copyArea deep-copies an area so callers cannot alias internal state.
func copyArea(a types.Area) types.Area {
	out := a
	out.Plants = make([]types.Plant, len(a.Plants))
	for i := range a.Plants {
		out.Plants[i] = copyPlant(a.Plants[i])
	}
	return out
}

func copyPlant(p types.Plant) types.Plant {
	out := p
	if p.SeedID != nil {
		id := *p.SeedID
		out.SeedID = &id
	}
	if p.SeedImage != nil {
		img := *p.SeedImage
		out.SeedImage = &img
	}
	out.Journal = make([]types.JournalEntry, len(p.Journal))
	copy(out.Journal, p.Journal)
	return out
}
