package dictionary

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"unicode/utf8"

	"github.com/japaniel/wakachi/pkg/db"
	"github.com/japaniel/wakachi/pkg/model"
	"github.com/japaniel/wakachi/pkg/normalize"
)

// SQLiteDictionary is a Dictionary backed by a SQLite database holding one
// JSON payload row per entry plus a folded-text reading index, per the
// schema InitDB creates.
type SQLiteDictionary struct {
	conn *sql.DB
}

// NewSQLiteDictionary wraps an already-migrated *sql.DB.
func NewSQLiteDictionary(conn *sql.DB) *SQLiteDictionary {
	return &SQLiteDictionary{conn: conn}
}

// ImportEntries writes entries into the database, replacing any existing
// row with the same EntryID.
func (d *SQLiteDictionary) ImportEntries(entries []*model.WordEntry) error {
	tx, err := d.conn.Begin()
	if err != nil {
		return fmt.Errorf("dictionary: begin import: %w", err)
	}
	defer tx.Rollback()

	for _, e := range entries {
		payload, err := json.Marshal(e)
		if err != nil {
			return fmt.Errorf("dictionary: marshal entry %s: %w", e.EntryID, err)
		}

		var readings, folded []string
		for _, k := range e.KanjiReadings {
			readings = append(readings, k.Text)
			folded = append(folded, normalize.KanaToHiragana(k.Text))
		}
		for _, k := range e.KanaReadings {
			readings = append(readings, k.Text)
			folded = append(folded, normalize.KanaToHiragana(k.Text))
		}

		if err := db.UpsertDictionaryEntry(tx, e.EntryID, string(payload), readings, folded); err != nil {
			return fmt.Errorf("dictionary: import entry %s: %w", e.EntryID, err)
		}
	}

	return tx.Commit()
}

// GetWords implements Dictionary.
func (d *SQLiteDictionary) GetWords(inputText string, maxResults int, matchingText ...string) []*model.WordEntry {
	if utf8.RuneCountInString(inputText) > maxLookupLen {
		return nil
	}
	match := resolveMatchingText(inputText, matchingText)
	folded := normalize.KanaToHiragana(inputText)

	rows, err := d.conn.Query(
		`SELECT DISTINCT e.entry_id, e.payload
		   FROM dictionary_readings r
		   JOIN dictionary_entries e ON e.entry_id = r.entry_id
		  WHERE r.text = ? OR r.folded = ?
		  ORDER BY e.entry_id`,
		inputText, folded,
	)
	if err != nil {
		return nil
	}
	defer rows.Close()

	var out []*model.WordEntry
	for rows.Next() {
		if maxResults > 0 && len(out) >= maxResults {
			break
		}
		var entryID, payload string
		if err := rows.Scan(&entryID, &payload); err != nil {
			return out
		}
		var entry model.WordEntry
		if err := json.Unmarshal([]byte(payload), &entry); err != nil {
			continue
		}
		out = append(out, withMatchFlags(&entry, match))
	}
	return out
}
