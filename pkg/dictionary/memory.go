package dictionary

import (
	"sync"
	"unicode/utf8"

	"github.com/japaniel/wakachi/pkg/model"
	"github.com/japaniel/wakachi/pkg/normalize"
)

// MemoryDictionary is a fully in-memory Dictionary backed by a folded-text
// index. It is the implementation used by tests and by small, embedded
// deployments that load a dictionary once at startup.
type MemoryDictionary struct {
	mu     sync.RWMutex
	byText map[string][]*model.WordEntry
	byFold map[string][]*model.WordEntry
}

// NewMemoryDictionary builds a MemoryDictionary from entries, indexing every
// kanji and kana reading by its exact text and its hiragana-folded form.
func NewMemoryDictionary(entries []*model.WordEntry) *MemoryDictionary {
	d := &MemoryDictionary{
		byText: make(map[string][]*model.WordEntry),
		byFold: make(map[string][]*model.WordEntry),
	}
	for _, e := range entries {
		d.index(e)
	}
	return d
}

func (d *MemoryDictionary) index(e *model.WordEntry) {
	add := func(text string) {
		d.byText[text] = append(d.byText[text], e)
		fold := normalize.KanaToHiragana(text)
		d.byFold[fold] = append(d.byFold[fold], e)
	}
	for _, k := range e.KanjiReadings {
		add(k.Text)
	}
	for _, k := range e.KanaReadings {
		add(k.Text)
	}
}

// GetWords implements Dictionary.
func (d *MemoryDictionary) GetWords(inputText string, maxResults int, matchingText ...string) []*model.WordEntry {
	if utf8.RuneCountInString(inputText) > maxLookupLen {
		return nil
	}
	match := resolveMatchingText(inputText, matchingText)

	d.mu.RLock()
	defer d.mu.RUnlock()

	seen := make(map[string]bool)
	var out []*model.WordEntry
	add := func(list []*model.WordEntry) {
		for _, e := range list {
			if maxResults > 0 && len(out) >= maxResults {
				return
			}
			if seen[e.EntryID] {
				continue
			}
			seen[e.EntryID] = true
			out = append(out, withMatchFlags(e, match))
		}
	}

	add(d.byText[inputText])
	add(d.byFold[normalize.KanaToHiragana(inputText)])
	return out
}
