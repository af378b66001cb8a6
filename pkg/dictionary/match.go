package dictionary

import (
	"github.com/japaniel/wakachi/pkg/model"
	"github.com/japaniel/wakachi/pkg/normalize"
)

// foldedEquals compares two strings under hiragana folding, so a katakana
// reading matches a hiragana probe and vice versa.
func foldedEquals(a, b string) bool {
	if a == b {
		return true
	}
	return normalize.KanaToHiragana(a) == normalize.KanaToHiragana(b)
}

// withMatchFlags returns a shallow copy of entry with Match/MatchRange set on
// the reading(s) equal to matchingText. Kanji readings take priority: if any
// kanji reading matches, only matching kanji readings are flagged and no kana
// reading is. Otherwise every kana reading equal to matchingText is flagged.
func withMatchFlags(entry *model.WordEntry, matchingText string) *model.WordEntry {
	out := *entry
	out.KanjiReadings = append([]model.KanjiReading(nil), entry.KanjiReadings...)
	out.KanaReadings = append([]model.KanaReading(nil), entry.KanaReadings...)

	rng := &model.MatchRange{Start: 0, End: normalize.UTF16Len(matchingText)}

	anyKanjiMatch := false
	for i := range out.KanjiReadings {
		if foldedEquals(out.KanjiReadings[i].Text, matchingText) {
			anyKanjiMatch = true
			break
		}
	}
	if anyKanjiMatch {
		for i := range out.KanjiReadings {
			if foldedEquals(out.KanjiReadings[i].Text, matchingText) {
				out.KanjiReadings[i].Match = true
				out.KanjiReadings[i].MatchRange = rng
			}
		}
		return &out
	}

	for i := range out.KanaReadings {
		if foldedEquals(out.KanaReadings[i].Text, matchingText) {
			out.KanaReadings[i].Match = true
			out.KanaReadings[i].MatchRange = rng
		}
	}
	return &out
}
