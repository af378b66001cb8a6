package db

import (
	"database/sql"
	"fmt"
	"strings"
	"time"
)

// DBExecutor is an interface that allows methods to accept either *sql.DB or *sql.Tx.
type DBExecutor interface {
	Exec(query string, args ...interface{}) (sql.Result, error)
	Query(query string, args ...interface{}) (*sql.Rows, error)
	QueryRow(query string, args ...interface{}) *sql.Row
}

func isUniqueConstraintErr(err error) bool {
	if err == nil {
		return false
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "unique") || strings.Contains(s, "constraint failed")
}

// UpsertDictionaryEntry inserts or replaces the stored JSON payload for a
// dictionary entry, and refreshes its reading index rows.
func UpsertDictionaryEntry(db DBExecutor, entryID, payload string, readings, folded []string) error {
	if entryID == "" {
		return fmt.Errorf("entryID must be non-empty")
	}
	if _, err := db.Exec(
		`INSERT INTO dictionary_entries (entry_id, payload) VALUES (?, ?)
		 ON CONFLICT(entry_id) DO UPDATE SET payload = excluded.payload`,
		entryID, payload,
	); err != nil {
		return fmt.Errorf("upsert dictionary entry: %w", err)
	}

	if _, err := db.Exec(`DELETE FROM dictionary_readings WHERE entry_id = ?`, entryID); err != nil {
		return fmt.Errorf("clear dictionary readings: %w", err)
	}
	for i, text := range readings {
		if _, err := db.Exec(
			`INSERT INTO dictionary_readings (text, folded, entry_id) VALUES (?, ?, ?)`,
			text, folded[i], entryID,
		); err != nil {
			return fmt.Errorf("insert dictionary reading: %w", err)
		}
	}
	return nil
}

// CreateOrGetSource returns the existing source id matching url/title/author,
// or inserts a new source and returns its id.
func CreateOrGetSource(db DBExecutor, sourceType, title, author, website, url, meta string) (int64, error) {
	trimmedSourceType := strings.TrimSpace(sourceType)
	if trimmedSourceType == "" {
		return 0, fmt.Errorf("sourceType must be non-empty")
	}

	const maxRetries = 3
	var id int64
	for attempt := 0; attempt < maxRetries; attempt++ {
		err := db.QueryRow(
			`SELECT id FROM sources WHERE IFNULL(url, '') = ? AND IFNULL(title, '') = ? AND IFNULL(author, '') = ?`,
			url, title, author,
		).Scan(&id)
		if err == nil {
			return id, nil
		}
		if err != sql.ErrNoRows {
			return 0, err
		}

		res, err := db.Exec(
			`INSERT INTO sources (source_type, title, author, website, url, meta) VALUES (?, ?, ?, ?, ?, ?)`,
			trimmedSourceType, title, author, website, url, meta,
		)
		if err != nil {
			if isUniqueConstraintErr(err) {
				continue
			}
			return 0, err
		}
		return res.LastInsertId()
	}

	return 0, fmt.Errorf("could not create or get source after %d retries", maxRetries)
}

// RecordTokenOccurrence increments the occurrence count for entryID as seen
// under surfaceForm in sourceID, recording the deinflection reasons that
// produced the match and storing sentence up to a handful of example
// contexts.
func RecordTokenOccurrence(db DBExecutor, entryID string, sourceID int64, surfaceForm, deinflectionReasons, context string) error {
	if entryID == "" {
		return fmt.Errorf("entryID must be non-empty")
	}
	if sourceID <= 0 {
		return fmt.Errorf("sourceID must be positive")
	}

	var occurrenceID int64
	err := db.QueryRow(`INSERT INTO token_occurrences (entry_id, source_id, surface_form, deinflection_reasons, occurrence_count, first_seen_at)
		VALUES (?, ?, ?, ?, 1, ?)
		ON CONFLICT(entry_id, source_id, surface_form) DO UPDATE SET
		  occurrence_count = token_occurrences.occurrence_count + 1
		RETURNING id`, entryID, sourceID, surfaceForm, deinflectionReasons, time.Now()).Scan(&occurrenceID)
	if err != nil {
		return err
	}

	if context == "" {
		return nil
	}
	_, err = db.Exec(`
		INSERT INTO token_contexts (occurrence_id, sentence)
		SELECT ?, ?
		WHERE (SELECT COUNT(*) FROM token_contexts WHERE occurrence_id = ?) < 5
		ON CONFLICT DO NOTHING`,
		occurrenceID, context, occurrenceID)
	return err
}

// GetSourceProgress returns the last processed sentence index for a source.
func GetSourceProgress(db DBExecutor, sourceID int64) (int, error) {
	var index int
	err := db.QueryRow("SELECT last_processed_sentence FROM sources WHERE id = ?", sourceID).Scan(&index)
	if err != nil {
		return 0, err
	}
	return index, nil
}

// UpdateSourceProgress updates the last processed sentence index.
func UpdateSourceProgress(db DBExecutor, sourceID int64, index int) error {
	_, err := db.Exec("UPDATE sources SET last_processed_sentence = ? WHERE id = ?", index, sourceID)
	return err
}
