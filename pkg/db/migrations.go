package db

// migrationsSQL creates the schema for dictionary storage and tokenized
// document ingestion. dictionary_entries/dictionary_readings back
// SQLiteDictionary; sources/token_occurrences/token_contexts track where
// and how often a dictionary entry was encountered while tokenizing
// ingested documents.
const migrationsSQL = `
CREATE TABLE IF NOT EXISTS dictionary_entries (
	entry_id TEXT PRIMARY KEY,
	payload  TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS dictionary_readings (
	text     TEXT NOT NULL,
	folded   TEXT NOT NULL,
	entry_id TEXT NOT NULL REFERENCES dictionary_entries(entry_id) ON DELETE CASCADE
);
CREATE INDEX IF NOT EXISTS idx_dictionary_readings_text ON dictionary_readings(text);
CREATE INDEX IF NOT EXISTS idx_dictionary_readings_folded ON dictionary_readings(folded);

CREATE TABLE IF NOT EXISTS sources (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	source_type TEXT NOT NULL,
	title TEXT,
	author TEXT,
	website TEXT,
	url TEXT,
	meta TEXT,
	added_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
	last_processed_sentence INTEGER DEFAULT -1
);

CREATE TABLE IF NOT EXISTS token_occurrences (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	entry_id TEXT NOT NULL,
	source_id INTEGER NOT NULL REFERENCES sources(id),
	surface_form TEXT NOT NULL,
	deinflection_reasons TEXT,
	occurrence_count INTEGER NOT NULL DEFAULT 1,
	first_seen_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
	UNIQUE(entry_id, source_id, surface_form)
);

CREATE TABLE IF NOT EXISTS token_contexts (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	occurrence_id INTEGER NOT NULL REFERENCES token_occurrences(id) ON DELETE CASCADE,
	sentence TEXT NOT NULL,
	UNIQUE(occurrence_id, sentence)
);
`
