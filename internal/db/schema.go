package db

// SchemaVersion is recorded in the schema_version table when a fresh
// store is created.
const SchemaVersion = 1

// SchemaSQL is the complete schema for fresh Stockbook stores.
//
// This is the single source of truth for the database schema. All
// repository tests create in-memory databases from GetSchemaSQL(), so
// a repository referencing a column that does not exist here fails
// immediately with "no such column" instead of drifting silently.
//
// Foreign keys are enforced at connection time (PRAGMA foreign_keys).
// The only cascading deletes are from events to their typed detail
// rows; removing an animal, mob, or product never rewrites history.
const SchemaSQL = `
-- Property settings (singleton row)
CREATE TABLE IF NOT EXISTS property_settings (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	property_name TEXT NOT NULL DEFAULT '',
	pic TEXT NOT NULL DEFAULT '',
	owner_name TEXT NOT NULL DEFAULT '',
	address TEXT NOT NULL DEFAULT '',
	phone TEXT NOT NULL DEFAULT '',
	email TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

-- Paddocks
CREATE TABLE IF NOT EXISTS paddocks (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL,
	area_hectares REAL,
	notes TEXT DEFAULT '',
	pic TEXT DEFAULT '',
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

-- Mobs
CREATE TABLE IF NOT EXISTS mobs (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL,
	species TEXT NOT NULL DEFAULT 'cattle',
	description TEXT DEFAULT '',
	current_paddock_id INTEGER REFERENCES paddocks(id),
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

-- Animals
CREATE TABLE IF NOT EXISTS animals (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	eid TEXT DEFAULT '',
	visual_tag TEXT DEFAULT '',
	species TEXT NOT NULL DEFAULT 'cattle',
	breed TEXT DEFAULT '',
	sex TEXT NOT NULL DEFAULT 'female',
	date_of_birth DATE,
	status TEXT NOT NULL DEFAULT 'alive',
	mob_id INTEGER REFERENCES mobs(id),
	dam_id INTEGER REFERENCES animals(id),
	sire_id INTEGER REFERENCES animals(id),
	notes TEXT DEFAULT '',
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

-- Treatment products
CREATE TABLE IF NOT EXISTS products (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL,
	active_ingredient TEXT DEFAULT '',
	category TEXT DEFAULT '',
	meat_whp_days INTEGER DEFAULT 0,
	milk_whp_days INTEGER DEFAULT 0,
	esi_days INTEGER DEFAULT 0,
	default_dose TEXT DEFAULT '',
	default_route TEXT DEFAULT 'subcutaneous',
	notes TEXT DEFAULT '',
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

-- Events (base table for all event types)
CREATE TABLE IF NOT EXISTS events (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	event_type TEXT NOT NULL,
	event_date DATE NOT NULL,
	animal_id INTEGER REFERENCES animals(id),
	mob_id INTEGER REFERENCES mobs(id),
	notes TEXT DEFAULT '',
	recorded_by TEXT DEFAULT '',
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

-- Movement detail rows
CREATE TABLE IF NOT EXISTS movement_events (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	event_id INTEGER NOT NULL REFERENCES events(id) ON DELETE CASCADE,
	from_paddock_id INTEGER REFERENCES paddocks(id),
	to_paddock_id INTEGER REFERENCES paddocks(id),
	reason TEXT DEFAULT '',
	head_count INTEGER DEFAULT 0
);

-- Treatment detail rows
CREATE TABLE IF NOT EXISTS treatment_events (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	event_id INTEGER NOT NULL REFERENCES events(id) ON DELETE CASCADE,
	product_id INTEGER REFERENCES products(id),
	batch_number TEXT DEFAULT '',
	dose TEXT DEFAULT '',
	route TEXT DEFAULT '',
	administered_by TEXT DEFAULT '',
	meat_whp_end DATE,
	milk_whp_end DATE,
	esi_end DATE
);

-- Weigh detail rows
CREATE TABLE IF NOT EXISTS weigh_events (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	event_id INTEGER NOT NULL REFERENCES events(id) ON DELETE CASCADE,
	weight_kg REAL NOT NULL,
	condition_score REAL
);

-- Tasks
CREATE TABLE IF NOT EXISTS tasks (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	title TEXT NOT NULL,
	description TEXT DEFAULT '',
	due_date DATE,
	source_event_id INTEGER REFERENCES events(id),
	animal_id INTEGER REFERENCES animals(id),
	mob_id INTEGER REFERENCES mobs(id),
	completed INTEGER DEFAULT 0,
	completed_at TIMESTAMP,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

-- Schema version tracking
CREATE TABLE IF NOT EXISTS schema_version (
	version INTEGER PRIMARY KEY
);

-- Indexes for common queries
CREATE INDEX IF NOT EXISTS idx_animals_mob ON animals(mob_id);
CREATE INDEX IF NOT EXISTS idx_animals_status ON animals(status);
CREATE INDEX IF NOT EXISTS idx_animals_eid ON animals(eid);
CREATE INDEX IF NOT EXISTS idx_animals_visual_tag ON animals(visual_tag);
CREATE INDEX IF NOT EXISTS idx_events_date ON events(event_date);
CREATE INDEX IF NOT EXISTS idx_events_type ON events(event_type);
CREATE INDEX IF NOT EXISTS idx_events_animal ON events(animal_id);
CREATE INDEX IF NOT EXISTS idx_events_mob ON events(mob_id);
CREATE INDEX IF NOT EXISTS idx_tasks_due ON tasks(due_date);
CREATE INDEX IF NOT EXISTS idx_tasks_completed ON tasks(completed);
CREATE INDEX IF NOT EXISTS idx_treatment_whp ON treatment_events(meat_whp_end);
`

// GetSchemaSQL returns the authoritative schema. Tests use this to
// build in-memory databases instead of hardcoding CREATE TABLE
// statements.
func GetSchemaSQL() string {
	return SchemaSQL
}
