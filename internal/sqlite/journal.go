// This file implements the data access functions for the journal_entries
// table, including the stage-rollback delete that removes the most recently
// inserted stage entry.
package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/pottingshed/gardenlog/pkg/types"
)

// InsertJournalEntry writes a new journal row under a plant.
func (s *Store) InsertJournalEntry(plantID string, entry types.JournalEntry) error {
	db, err := s.conn()
	if err != nil {
		return err
	}

	seq, err := nextSeq(db, "journal_entries", "plant_id", plantID)
	if err != nil {
		return err
	}

	if _, err := db.Exec(
		"INSERT INTO journal_entries (id, plant_id, date, text, type, seq) VALUES (?, ?, ?, ?, ?, ?)",
		entry.EntryID, plantID, entry.Date, entry.Text, entry.Type, seq,
	); err != nil {
		return fmt.Errorf("inserting journal entry %s: %w", entry.EntryID, err)
	}
	return nil
}

// DeleteJournalEntry removes a journal row by ID.
func (s *Store) DeleteJournalEntry(entryID string) error {
	db, err := s.conn()
	if err != nil {
		return err
	}

	if _, err := db.Exec("DELETE FROM journal_entries WHERE id = ?", entryID); err != nil {
		return fmt.Errorf("deleting journal entry %s: %w", entryID, err)
	}
	return nil
}

// DeleteLastStageEntry removes the single most recently inserted stage-type
// entry for a plant. "Most recent" means highest insertion sequence, not
// latest date, since several entries can share a date. No-op when the plant
// has no stage entries.
func (s *Store) DeleteLastStageEntry(plantID string) error {
	db, err := s.conn()
	if err != nil {
		return err
	}

	if _, err := db.Exec(
		`DELETE FROM journal_entries WHERE id = (
            SELECT id FROM journal_entries
            WHERE plant_id = ? AND type = ?
            ORDER BY seq DESC LIMIT 1
         )`,
		plantID, types.EntryTypeStage,
	); err != nil {
		return fmt.Errorf("deleting last stage entry for plant %s: %w", plantID, err)
	}
	return nil
}

// journalForPlant returns the plant's entries in insertion order.
func journalForPlant(db *sql.DB, plantID string) ([]types.JournalEntry, error) {
	rows, err := db.Query(
		"SELECT id, date, text, type FROM journal_entries WHERE plant_id = ? ORDER BY seq ASC",
		plantID,
	)
	if err != nil {
		return nil, fmt.Errorf("querying journal for plant %s: %w", plantID, err)
	}
	defer rows.Close()

	var entries []types.JournalEntry
	for rows.Next() {
		var e types.JournalEntry
		if err := rows.Scan(&e.EntryID, &e.Date, &e.Text, &e.Type); err != nil {
			return nil, fmt.Errorf("scanning journal entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating journal entries: %w", err)
	}
	return entries, nil
}
