// This file implements the data access functions for custom catalog entries.
// Array fields are serialized as JSON text and booleans as 0/1 integers on
// write; both are converted back to native values on read.
package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/pottingshed/gardenlog/pkg/types"
)

// InsertCustomCatalogEntry writes a user-submitted catalog entry. Entries
// are create-only: there is no update or delete operation for them.
func (s *Store) InsertCustomCatalogEntry(entry types.CatalogEntry) error {
	db, err := s.conn()
	if err != nil {
		return err
	}
	if entry.ID == "" {
		return types.ErrInvalidID
	}

	seasonsJSON, err := json.Marshal(entry.PlantingSeasons)
	if err != nil {
		return fmt.Errorf("marshaling planting seasons: %w", err)
	}

	seq, err := nextSeq(db, "custom_catalog_entries", "", "")
	if err != nil {
		return err
	}

	_, err = db.Exec(
		`INSERT INTO custom_catalog_entries (
            id, title, category, scientific_name, description, image_url,
            planting_seasons, best_months, sun_requirements, watering,
            frost_tolerance, difficulty, plant_life, suitable_for_containers,
            requires_trellis, days_to_germination, days_to_harvest,
            sowing_depth, spacing, companion_plants, plant_height,
            drought_tolerant, is_custom, seq
         ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.ID,
		entry.Title,
		entry.Category,
		entry.ScientificName,
		entry.Description,
		entry.ImageURL,
		string(seasonsJSON),
		entry.BestMonths,
		entry.SunRequirements,
		entry.Watering,
		entry.FrostTolerance,
		entry.Difficulty,
		entry.PlantLife,
		boolToInt(entry.SuitableForContainers),
		boolToInt(entry.RequiresTrellis),
		entry.DaysToGermination,
		entry.DaysToHarvest,
		entry.SowingDepth,
		entry.Spacing,
		entry.CompanionPlants,
		entry.PlantHeight,
		boolToInt(entry.DroughtTolerant),
		1,
		seq,
	)
	if err != nil {
		return fmt.Errorf("inserting custom catalog entry %s: %w", entry.ID, err)
	}
	return nil
}

// LoadCustomCatalogEntries returns every custom catalog entry in insertion
// order, with JSON arrays deserialized and 0/1 integers restored to booleans.
func (s *Store) LoadCustomCatalogEntries() ([]types.CatalogEntry, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(
		`SELECT id, title, category, scientific_name, description, image_url,
                planting_seasons, best_months, sun_requirements, watering,
                frost_tolerance, difficulty, plant_life, suitable_for_containers,
                requires_trellis, days_to_germination, days_to_harvest,
                sowing_depth, spacing, companion_plants, plant_height,
                drought_tolerant
         FROM custom_catalog_entries ORDER BY seq ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("querying custom catalog entries: %w", err)
	}
	defer rows.Close()

	var entries []types.CatalogEntry
	for rows.Next() {
		e, err := scanCatalogEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating custom catalog entries: %w", err)
	}
	return entries, nil
}

// scanCatalogEntry converts one row into a domain CatalogEntry.
func scanCatalogEntry(rows *sql.Rows) (types.CatalogEntry, error) {
	var e types.CatalogEntry
	var scientificName, description, imageURL, seasons sql.NullString
	var bestMonths, sunReq, watering, frost, difficulty, plantLife sql.NullString
	var germination, harvest, sowingDepth, spacing, companions, height sql.NullString
	var containers, trellis, drought int

	if err := rows.Scan(
		&e.ID, &e.Title, &e.Category, &scientificName, &description, &imageURL,
		&seasons, &bestMonths, &sunReq, &watering, &frost, &difficulty,
		&plantLife, &containers, &trellis, &germination, &harvest,
		&sowingDepth, &spacing, &companions, &height, &drought,
	); err != nil {
		return e, fmt.Errorf("scanning custom catalog entry: %w", err)
	}

	e.ScientificName = scientificName.String
	e.Description = description.String
	e.ImageURL = imageURL.String
	e.BestMonths = bestMonths.String
	e.SunRequirements = sunReq.String
	e.Watering = watering.String
	e.FrostTolerance = frost.String
	e.Difficulty = difficulty.String
	e.PlantLife = plantLife.String
	e.DaysToGermination = germination.String
	e.DaysToHarvest = harvest.String
	e.SowingDepth = sowingDepth.String
	e.Spacing = spacing.String
	e.CompanionPlants = companions.String
	e.PlantHeight = height.String
	e.SuitableForContainers = containers != 0
	e.RequiresTrellis = trellis != 0
	e.DroughtTolerant = drought != 0
	e.IsCustom = true

	if seasons.Valid && seasons.String != "" && seasons.String != "null" {
		if err := json.Unmarshal([]byte(seasons.String), &e.PlantingSeasons); err != nil {
			return e, fmt.Errorf("parsing planting seasons for %s: %w", e.ID, err)
		}
	}
	return e, nil
}

// boolToInt maps a boolean to its 0/1 column value.
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
