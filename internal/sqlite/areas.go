// This file implements the data access functions for the areas table.
package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/pottingshed/gardenlog/pkg/types"
)

// InsertArea writes a new area row. The area's plants are not written here;
// use InsertPlant or InsertAreaWithPlant for those.
func (s *Store) InsertArea(area types.Area) error {
	db, err := s.conn()
	if err != nil {
		return err
	}
	return insertAreaRow(db, area)
}

// insertAreaRow performs the actual insert against db or an open transaction.
func insertAreaRow(e execer, area types.Area) error {
	if area.AreaID == "" {
		return types.ErrInvalidID
	}

	seq, err := nextSeq(e, "areas", "", "")
	if err != nil {
		return err
	}

	_, err = e.Exec(
		"INSERT INTO areas (id, name, emoji, created_at, seq) VALUES (?, ?, ?, ?, ?)",
		area.AreaID, area.Name, area.Emoji, area.CreatedAt, seq,
	)
	if err != nil {
		return fmt.Errorf("inserting area %s: %w", area.AreaID, err)
	}
	return nil
}

// UpdateArea updates the name and emoji of an existing area.
func (s *Store) UpdateArea(areaID, name, emoji string) error {
	db, err := s.conn()
	if err != nil {
		return err
	}

	res, err := db.Exec(
		"UPDATE areas SET name = ?, emoji = ? WHERE id = ?",
		name, emoji, areaID,
	)
	if err != nil {
		return fmt.Errorf("updating area %s: %w", areaID, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return types.ErrNotFound
	}
	return nil
}

// DeleteArea removes an area row. The plants and journal entries under it
// are removed by the ON DELETE CASCADE foreign keys; no explicit child
// deletes are issued.
func (s *Store) DeleteArea(areaID string) error {
	db, err := s.conn()
	if err != nil {
		return err
	}

	if _, err := db.Exec("DELETE FROM areas WHERE id = ?", areaID); err != nil {
		return fmt.Errorf("deleting area %s: %w", areaID, err)
	}
	return nil
}

// loadAreaRows returns every area in insertion order, without children.
func loadAreaRows(db *sql.DB) ([]types.Area, error) {
	rows, err := db.Query("SELECT id, name, emoji, created_at FROM areas ORDER BY seq ASC")
	if err != nil {
		return nil, fmt.Errorf("querying areas: %w", err)
	}
	defer rows.Close()

	var areas []types.Area
	for rows.Next() {
		var a types.Area
		if err := rows.Scan(&a.AreaID, &a.Name, &a.Emoji, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning area: %w", err)
		}
		areas = append(areas, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating areas: %w", err)
	}
	return areas, nil
}
