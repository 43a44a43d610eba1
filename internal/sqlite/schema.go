// Package sqlite implements the durable on-device store for gardenlog on an
// embedded SQLite database. It owns schema creation, referential integrity,
// the transaction primitive, and the row-level data access functions that
// translate between flat row shapes and the nested domain shapes.
package sqlite

// Schema DDL. Setup is idempotent: every statement is CREATE ... IF NOT
// EXISTS, so opening an existing database re-runs them as no-ops.
//
// Each child table carries an explicit seq column assigned per parent scope
// (areas and custom_catalog_entries globally, plants per area, journal
// entries per plant). List ordering always comes from seq, never from a
// calendar date: multiple rows can share a date.
const (
	createAreas = `CREATE TABLE IF NOT EXISTS areas (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    emoji TEXT NOT NULL DEFAULT '🌱',
    created_at TEXT NOT NULL,
    seq INTEGER NOT NULL
);`

	createPlants = `CREATE TABLE IF NOT EXISTS plants (
    id TEXT PRIMARY KEY,
    area_id TEXT NOT NULL,
    seed_id TEXT,
    seed_title TEXT,
    seed_category TEXT,
    seed_image TEXT,
    planted_date TEXT NOT NULL,
    stage TEXT,
    seq INTEGER NOT NULL,
    FOREIGN KEY (area_id) REFERENCES areas(id) ON DELETE CASCADE
);`

	createJournalEntries = `CREATE TABLE IF NOT EXISTS journal_entries (
    id TEXT PRIMARY KEY,
    plant_id TEXT NOT NULL,
    date TEXT NOT NULL,
    text TEXT NOT NULL,
    type TEXT NOT NULL DEFAULT 'note',
    seq INTEGER NOT NULL,
    FOREIGN KEY (plant_id) REFERENCES plants(id) ON DELETE CASCADE
);`

	createCustomCatalogEntries = `CREATE TABLE IF NOT EXISTS custom_catalog_entries (
    id TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    category TEXT NOT NULL DEFAULT 'Vegetable',
    scientific_name TEXT,
    description TEXT,
    image_url TEXT,
    planting_seasons TEXT,
    best_months TEXT,
    sun_requirements TEXT,
    watering TEXT,
    frost_tolerance TEXT,
    difficulty TEXT,
    plant_life TEXT,
    suitable_for_containers INTEGER NOT NULL DEFAULT 0,
    requires_trellis INTEGER NOT NULL DEFAULT 0,
    days_to_germination TEXT,
    days_to_harvest TEXT,
    sowing_depth TEXT,
    spacing TEXT,
    companion_plants TEXT,
    plant_height TEXT,
    drought_tolerant INTEGER NOT NULL DEFAULT 0,
    is_custom INTEGER NOT NULL DEFAULT 1,
    seq INTEGER NOT NULL
);`

	createKVStore = `CREATE TABLE IF NOT EXISTS kv_store (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL
);`
)

// Index DDL for the foreign-key lookups the hierarchical loader performs.
const (
	idxPlantsArea       = `CREATE INDEX IF NOT EXISTS idx_plants_area ON plants(area_id);`
	idxJournalPlant     = `CREATE INDEX IF NOT EXISTS idx_journal_plant ON journal_entries(plant_id);`
	idxJournalPlantType = `CREATE INDEX IF NOT EXISTS idx_journal_plant_type ON journal_entries(plant_id, type);`
)

// schemaDDL lists all CREATE TABLE statements in dependency order.
var schemaDDL = []string{
	createAreas,
	createPlants,
	createJournalEntries,
	createCustomCatalogEntries,
	createKVStore,
}

// indexDDL lists all CREATE INDEX statements.
var indexDDL = []string{
	idxPlantsArea,
	idxJournalPlant,
	idxJournalPlantType,
}
