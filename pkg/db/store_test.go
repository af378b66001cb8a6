package db

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
)

func setupTestDB(t *testing.T) *sql.DB {
	conn, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	conn.SetMaxOpenConns(1)
	if err := InitDB(conn); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return conn
}

func TestUpsertDictionaryEntry(t *testing.T) {
	conn := setupTestDB(t)
	defer conn.Close()

	if err := UpsertDictionaryEntry(conn, "1000", `{"entryId":"1000"}`, []string{"食べる", "たべる"}, []string{"食べる", "たべる"}); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	var payload string
	if err := conn.QueryRow(`SELECT payload FROM dictionary_entries WHERE entry_id = ?`, "1000").Scan(&payload); err != nil {
		t.Fatalf("query payload: %v", err)
	}
	if payload != `{"entryId":"1000"}` {
		t.Fatalf("unexpected payload %q", payload)
	}

	var count int
	if err := conn.QueryRow(`SELECT COUNT(*) FROM dictionary_readings WHERE entry_id = ?`, "1000").Scan(&count); err != nil {
		t.Fatalf("count readings: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2 reading rows, got %d", count)
	}

	// Re-upsert with fewer readings: stale reading rows must be cleared.
	if err := UpsertDictionaryEntry(conn, "1000", `{"entryId":"1000","v":2}`, []string{"食べる"}, []string{"食べる"}); err != nil {
		t.Fatalf("re-upsert: %v", err)
	}
	if err := conn.QueryRow(`SELECT COUNT(*) FROM dictionary_readings WHERE entry_id = ?`, "1000").Scan(&count); err != nil {
		t.Fatalf("count readings after re-upsert: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 reading row after re-upsert, got %d", count)
	}
}

func TestUpsertDictionaryEntryEmptyID(t *testing.T) {
	conn := setupTestDB(t)
	defer conn.Close()
	if err := UpsertDictionaryEntry(conn, "", "{}", nil, nil); err == nil {
		t.Fatalf("expected error for empty entryID")
	}
}

func TestCreateOrGetSource(t *testing.T) {
	conn := setupTestDB(t)
	defer conn.Close()
	id1, err := CreateOrGetSource(conn, "website_article", "", "", "example.com", "https://example.com/a", "")
	if err != nil {
		t.Fatalf("create source: %v", err)
	}
	id2, err := CreateOrGetSource(conn, "website_article", "", "", "example.com", "https://example.com/a", "")
	if err != nil {
		t.Fatalf("get source: %v", err)
	}
	if id1 != id2 {
		t.Fatalf("expected same source id, got %d and %d", id1, id2)
	}
}

func TestCreateOrGetSourceEmpty(t *testing.T) {
	conn := setupTestDB(t)
	defer conn.Close()
	if _, err := CreateOrGetSource(conn, "  ", "", "", "", "", ""); err == nil {
		t.Fatalf("expected error for empty sourceType")
	}
}

func TestRecordTokenOccurrence(t *testing.T) {
	conn := setupTestDB(t)
	defer conn.Close()

	sID, err := CreateOrGetSource(conn, "website_article", "", "", "example.com", "https://example.com/b", "")
	if err != nil {
		t.Fatalf("create source: %v", err)
	}

	if err := RecordTokenOccurrence(conn, "1000", sID, "食べました", "PolitePast", "昨日すしを食べました。"); err != nil {
		t.Fatalf("record: %v", err)
	}
	if err := RecordTokenOccurrence(conn, "1000", sID, "食べました", "PolitePast", "今日も食べました。"); err != nil {
		t.Fatalf("record again: %v", err)
	}

	var count int
	if err := conn.QueryRow(`SELECT occurrence_count FROM token_occurrences WHERE entry_id = ? AND source_id = ? AND surface_form = ?`,
		"1000", sID, "食べました").Scan(&count); err != nil {
		t.Fatalf("query count: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected occurrence_count=2, got %d", count)
	}

	var ctxCount int
	if err := conn.QueryRow(`SELECT COUNT(*) FROM token_contexts`).Scan(&ctxCount); err != nil {
		t.Fatalf("count contexts: %v", err)
	}
	if ctxCount != 2 {
		t.Fatalf("expected 2 distinct contexts, got %d", ctxCount)
	}
}

func TestRecordTokenOccurrenceInvalidIDs(t *testing.T) {
	conn := setupTestDB(t)
	defer conn.Close()
	if err := RecordTokenOccurrence(conn, "", 1, "x", "", ""); err == nil {
		t.Fatalf("expected error for empty entryID")
	}
	if err := RecordTokenOccurrence(conn, "1000", 0, "x", "", ""); err == nil {
		t.Fatalf("expected error for sourceID <= 0")
	}
}

func TestSourceProgress(t *testing.T) {
	conn := setupTestDB(t)
	defer conn.Close()
	sID, err := CreateOrGetSource(conn, "website_article", "", "", "", "https://example.com/c", "")
	if err != nil {
		t.Fatalf("create source: %v", err)
	}
	idx, err := GetSourceProgress(conn, sID)
	if err != nil {
		t.Fatalf("get progress: %v", err)
	}
	if idx != -1 {
		t.Fatalf("expected initial progress -1, got %d", idx)
	}
	if err := UpdateSourceProgress(conn, sID, 5); err != nil {
		t.Fatalf("update progress: %v", err)
	}
	idx, err = GetSourceProgress(conn, sID)
	if err != nil {
		t.Fatalf("get progress after update: %v", err)
	}
	if idx != 5 {
		t.Fatalf("expected progress 5, got %d", idx)
	}
}
