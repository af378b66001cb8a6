// Package dictionary provides the abstract word-lookup contract the word
// search loop depends on, plus concrete implementations backed by an
// in-memory index, a SQLite-backed store, and a bounded lookup cache.
package dictionary

import "github.com/japaniel/wakachi/pkg/model"

// maxLookupLen bounds the input length a lookup is attempted for: no
// dictionary entry exceeds this many code points, so longer probes are
// guaranteed misses.
const maxLookupLen = 15

// Dictionary resolves a surface or dictionary-form string to the entries
// whose kanji or kana reading equals it (under hiragana folding).
// matchingText, if given, is the text used to decide which reading(s) are
// flagged as the matched one; it defaults to inputText.
type Dictionary interface {
	GetWords(inputText string, maxResults int, matchingText ...string) []*model.WordEntry
}

func resolveMatchingText(inputText string, matchingText []string) string {
	if len(matchingText) > 0 && matchingText[0] != "" {
		return matchingText[0]
	}
	return inputText
}
