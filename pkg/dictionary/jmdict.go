package dictionary

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/japaniel/wakachi/pkg/model"
)

// JMdictElement is one kanji or kana headword as it appears in a
// jmdict-simplified style export: a reading text plus its priority markers
// (ichi1, news1, spec1, gai1, nfNN, ...) and info tags (rK, sK, ok, ...).
type JMdictElement struct {
	Text     string   `json:"text"`
	Priority []string `json:"priority"`
	Tags     []string `json:"tags"`
	NoKanji  bool     `json:"noKanji"`
}

// JMdictGloss is a single-language definition string.
type JMdictGloss struct {
	Text string `json:"text"`
	Lang string `json:"lang"`
}

// JMdictSense is one numbered meaning of an entry.
type JMdictSense struct {
	PartOfSpeech []string      `json:"partOfSpeech"`
	Gloss        []JMdictGloss `json:"gloss"`
	Info         []string      `json:"info"`
	Field        []string      `json:"field"`
	Misc         []string      `json:"misc"`
	Dialect      []string      `json:"dialect"`
}

// JMdictEntry is a single dictionary entry as read from the import file.
type JMdictEntry struct {
	Id    string          `json:"id"`
	Kanji []JMdictElement `json:"kanji"`
	Kana  []JMdictElement `json:"kana"`
	Sense []JMdictSense   `json:"sense"`
}

type jmdictFile struct {
	Words []JMdictEntry `json:"words"`
}

// LoadJMdictSimplified reads a jmdict-simplified style JSON export, either
// wrapped in a top-level {"words": [...]} object or as a bare top-level
// array, and returns its entries.
func LoadJMdictSimplified(path string) ([]JMdictEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("dictionary: read %s: %w", path, err)
	}

	var wrapped jmdictFile
	if err := json.Unmarshal(data, &wrapped); err == nil && wrapped.Words != nil {
		return wrapped.Words, nil
	}

	var bare []JMdictEntry
	if err := json.Unmarshal(data, &bare); err != nil {
		return nil, fmt.Errorf("dictionary: parse %s: %w", path, err)
	}
	return bare, nil
}

// ToWordEntry converts a raw import record into the richer model.WordEntry
// used throughout the rest of the package.
func ToWordEntry(e JMdictEntry) *model.WordEntry {
	out := &model.WordEntry{
		EntryID: e.Id,
		EntSeq:  e.Id,
	}

	for _, k := range e.Kanji {
		out.KanjiReadings = append(out.KanjiReadings, model.KanjiReading{
			Text:     k.Text,
			Priority: k.Priority,
			Info:     k.Tags,
		})
	}
	for _, k := range e.Kana {
		out.KanaReadings = append(out.KanaReadings, model.KanaReading{
			Text:     k.Text,
			Priority: k.Priority,
			Info:     k.Tags,
			NoKanji:  k.NoKanji,
		})
	}
	for i, s := range e.Sense {
		sense := model.Sense{
			Index:    i,
			POSTags:  s.PartOfSpeech,
			Info:     s.Info,
			Field:    s.Field,
			Misc:     s.Misc,
			Dialects: s.Dialect,
		}
		for _, g := range s.Gloss {
			sense.Glosses = append(sense.Glosses, model.Gloss{Text: g.Text, Lang: g.Lang})
		}
		out.Senses = append(out.Senses, sense)
	}
	return out
}

// LoadWordEntries loads and converts a full jmdict-simplified style export
// in one step.
func LoadWordEntries(path string) ([]*model.WordEntry, error) {
	raw, err := LoadJMdictSimplified(path)
	if err != nil {
		return nil, err
	}
	out := make([]*model.WordEntry, len(raw))
	for i, e := range raw {
		out[i] = ToWordEntry(e)
	}
	return out, nil
}
