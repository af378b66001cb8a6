package db

import "time"

// Source is a provenance record for a document that was tokenized.
type Source struct {
	ID                    int64
	SourceType            string
	Title                 string
	Author                string
	Website               string
	URL                   string
	Meta                  string
	AddedAt               time.Time
	LastProcessedSentence int
}

// TokenOccurrence counts how many times a dictionary entry was matched, by
// a given surface form, while tokenizing a given source.
type TokenOccurrence struct {
	ID                   int64
	EntryID              string
	SourceID             int64
	SurfaceForm          string
	DeinflectionReasons  string
	OccurrenceCount      int
	FirstSeenAt          time.Time
}
