// This file implements the bulk hierarchical load that seeds the in-memory
// garden state on startup.
package sqlite

import (
	"database/sql"

	"github.com/pottingshed/gardenlog/pkg/types"
)

// LoadAllAreas returns every area with its plants nested inside and every
// plant with its journal nested inside, all in insertion order.
//
// The load is hierarchical on purpose: a flat three-way join would repeat
// each area and plant once per journal row and push the reassembly burden
// onto the caller. Per-parent fetches keep each scan trivial.
func (s *Store) LoadAllAreas() ([]types.Area, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	areas, err := loadAreaRows(db)
	if err != nil {
		return nil, err
	}

	for i := range areas {
		plants, err := plantsForArea(db, areas[i].AreaID)
		if err != nil {
			return nil, err
		}
		for j := range plants {
			journal, err := journalForPlant(db, plants[j].PlantID)
			if err != nil {
				return nil, err
			}
			plants[j].Journal = journal
		}
		areas[i].Plants = plants
	}

	return areas, nil
}

// InsertAreaWithPlant persists a new area and its first plant inside one
// transaction, so a partial write can never leave an area row without the
// plant row the caller's state depends on.
func (s *Store) InsertAreaWithPlant(area types.Area, plant types.Plant) error {
	return s.RunInTransaction(func(tx *sql.Tx) error {
		if err := insertAreaRow(tx, area); err != nil {
			return err
		}
		return insertPlantRow(tx, area.AreaID, plant)
	})
}
