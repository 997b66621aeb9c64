package dictstore

import (
	"database/sql"
	"fmt"
)

// migrationsSQL is the dictionary store's schema, executed as one batch the
// way the teacher's InitDB hands its whole embedded SQL string to
// db.Exec and lets SQLite do the statement splitting.
const migrationsSQL = `
CREATE TABLE IF NOT EXISTS dictionaries (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL UNIQUE,
	revision TEXT,
	sequence INTEGER,
	author TEXT,
	enabled INTEGER NOT NULL DEFAULT 1,
	priority INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS terms (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	dictionary_id INTEGER NOT NULL REFERENCES dictionaries(id) ON DELETE CASCADE,
	expression TEXT NOT NULL,
	reading TEXT NOT NULL DEFAULT '',
	definitions_json TEXT NOT NULL DEFAULT '[]',
	tags_json TEXT NOT NULL DEFAULT '[]',
	rules_json TEXT NOT NULL DEFAULT '[]',
	score INTEGER NOT NULL DEFAULT 0
);
CREATE INDEX IF NOT EXISTS idx_terms_expression ON terms(expression);
CREATE INDEX IF NOT EXISTS idx_terms_reading ON terms(reading);

CREATE TABLE IF NOT EXISTS kanji (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	dictionary_id INTEGER NOT NULL REFERENCES dictionaries(id) ON DELETE CASCADE,
	character TEXT NOT NULL,
	onyomi_json TEXT NOT NULL DEFAULT '[]',
	kunyomi_json TEXT NOT NULL DEFAULT '[]',
	glossary_json TEXT NOT NULL DEFAULT '[]',
	tags_json TEXT NOT NULL DEFAULT '[]',
	stats_json TEXT NOT NULL DEFAULT '{}'
);
CREATE INDEX IF NOT EXISTS idx_kanji_character ON kanji(character);

CREATE TABLE IF NOT EXISTS frequencies (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	dictionary_id INTEGER NOT NULL REFERENCES dictionaries(id) ON DELETE CASCADE,
	headword TEXT NOT NULL,
	reading TEXT NOT NULL DEFAULT '',
	freq_display TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_frequencies_headword ON frequencies(headword);

CREATE TABLE IF NOT EXISTS pitches (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	dictionary_id INTEGER NOT NULL REFERENCES dictionaries(id) ON DELETE CASCADE,
	headword TEXT NOT NULL,
	reading TEXT NOT NULL DEFAULT '',
	mora_json TEXT NOT NULL DEFAULT '[]',
	position_json TEXT NOT NULL DEFAULT '[]'
);
CREATE INDEX IF NOT EXISTS idx_pitches_headword ON pitches(headword);

CREATE TABLE IF NOT EXISTS tags (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	dictionary_id INTEGER NOT NULL REFERENCES dictionaries(id) ON DELETE CASCADE,
	name TEXT NOT NULL,
	category TEXT NOT NULL DEFAULT '',
	notes TEXT NOT NULL DEFAULT '',
	order_num INTEGER NOT NULL DEFAULT 0,
	score INTEGER NOT NULL DEFAULT 0
);
CREATE INDEX IF NOT EXISTS idx_tags_name ON tags(dictionary_id, name);
`

// InitDB runs the dictionary store's schema against db, delegating
// statement splitting to SQLite the way the teacher's pkg/db.InitDB does.
func InitDB(db *sql.DB) error {
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return err
	}
	if _, err := db.Exec(migrationsSQL); err != nil {
		return err
	}
	if err := ensureColumnExists(db, "dictionaries", "priority", "INTEGER NOT NULL DEFAULT 0"); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}

// ensureColumnExists adds column to table if it is missing, matching the
// teacher's PRAGMA-table_info-then-ALTER idiom used for
// forward-compatible migrations on already-deployed databases.
func ensureColumnExists(db *sql.DB, table, column, definition string) error {
	rows, err := db.Query(fmt.Sprintf("PRAGMA table_info(%s)", table))
	if err != nil {
		return fmt.Errorf("failed to check table info: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var cid int
		var name, ctype string
		var notnull, pk int
		var dfltVal any
		if err := rows.Scan(&cid, &name, &ctype, &notnull, &dfltVal, &pk); err != nil {
			return fmt.Errorf("failed to scan table info: %w", err)
		}
		if name == column {
			return nil
		}
	}
	if err := rows.Err(); err != nil {
		return err
	}

	query := fmt.Sprintf("ALTER TABLE %s ADD COLUMN %s %s;", table, column, definition)
	if _, err := db.Exec(query); err != nil {
		return fmt.Errorf("failed to add column %s: %w", column, err)
	}
	return nil
}
