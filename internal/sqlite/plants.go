// This file implements the data access functions for the plants table,
// including the nullable-column coercion between row shape and domain shape.
package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/pottingshed/gardenlog/pkg/types"
)

// InsertPlant writes a new plant row under an area.
func (s *Store) InsertPlant(areaID string, plant types.Plant) error {
	db, err := s.conn()
	if err != nil {
		return err
	}
	return insertPlantRow(db, areaID, plant)
}

// insertPlantRow performs the actual insert against db or an open transaction.
// Absent optional values (seed linkage, image, not-started stage) are written
// as NULL.
func insertPlantRow(e execer, areaID string, plant types.Plant) error {
	if plant.PlantID == "" {
		return types.ErrInvalidID
	}

	seq, err := nextSeq(e, "plants", "area_id", areaID)
	if err != nil {
		return err
	}

	_, err = e.Exec(
		`INSERT INTO plants (id, area_id, seed_id, seed_title, seed_category, seed_image, planted_date, stage, seq)
         VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		plant.PlantID,
		areaID,
		nullableString(plant.SeedID),
		plant.SeedTitle,
		plant.SeedCategory,
		nullableString(plant.SeedImage),
		plant.PlantedDate,
		nullableStage(plant.Stage),
		seq,
	)
	if err != nil {
		return fmt.Errorf("inserting plant %s: %w", plant.PlantID, err)
	}
	return nil
}

// UpdatePlantStage sets the stage column. StageNone is written as NULL.
func (s *Store) UpdatePlantStage(plantID string, stage types.Stage) error {
	db, err := s.conn()
	if err != nil {
		return err
	}

	if _, err := db.Exec(
		"UPDATE plants SET stage = ? WHERE id = ?",
		nullableStage(stage), plantID,
	); err != nil {
		return fmt.Errorf("updating stage for plant %s: %w", plantID, err)
	}
	return nil
}

// DeletePlant removes a plant row. Its journal entries are removed by the
// ON DELETE CASCADE foreign key.
func (s *Store) DeletePlant(plantID string) error {
	db, err := s.conn()
	if err != nil {
		return err
	}

	if _, err := db.Exec("DELETE FROM plants WHERE id = ?", plantID); err != nil {
		return fmt.Errorf("deleting plant %s: %w", plantID, err)
	}
	return nil
}

// plantsForArea returns the area's plants in insertion order, without
// journal entries.
func plantsForArea(db *sql.DB, areaID string) ([]types.Plant, error) {
	rows, err := db.Query(
		`SELECT id, seed_id, seed_title, seed_category, seed_image, planted_date, stage
         FROM plants WHERE area_id = ? ORDER BY seq ASC`,
		areaID,
	)
	if err != nil {
		return nil, fmt.Errorf("querying plants for area %s: %w", areaID, err)
	}
	defer rows.Close()

	var plants []types.Plant
	for rows.Next() {
		var p types.Plant
		var seedID, seedTitle, seedCategory, seedImage, stage sql.NullString
		if err := rows.Scan(&p.PlantID, &seedID, &seedTitle, &seedCategory, &seedImage, &p.PlantedDate, &stage); err != nil {
			return nil, fmt.Errorf("scanning plant: %w", err)
		}
		if seedID.Valid {
			p.SeedID = &seedID.String
		}
		p.SeedTitle = seedTitle.String
		p.SeedCategory = seedCategory.String
		if seedImage.Valid {
			p.SeedImage = &seedImage.String
		}
		if stage.Valid {
			p.Stage = types.Stage(stage.String)
		}
		plants = append(plants, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating plants: %w", err)
	}
	return plants, nil
}

// nullableString converts an optional domain string to its column value.
func nullableString(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

// nullableStage converts a stage to its column value; not-started is NULL.
func nullableStage(stage types.Stage) any {
	if stage == types.StageNone {
		return nil
	}
	return string(stage)
}
