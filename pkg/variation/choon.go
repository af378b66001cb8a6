// Package variation generates alternate spellings of a word fragment that
// the word-search loop tries alongside the literal text: choon (long-vowel
// mark) expansion and kyuujitai (old kanji form) substitution.
package variation

import "strings"

const choon = 'ー'

var choonVowels = []rune{'あ', 'い', 'う', 'え', 'お'}

// ExpandChoon finds the first occurrence of the long-vowel mark ー and
// returns the five variants produced by replacing it with each hiragana
// vowel in turn. Returns nil if text contains no ー. Only the first
// occurrence is expanded; callers re-enter with the refined variant to
// expand any further ones.
func ExpandChoon(text string) []string {
	runes := []rune(text)
	idx := -1
	for i, r := range runes {
		if r == choon {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil
	}

	variants := make([]string, 0, len(choonVowels))
	for _, v := range choonVowels {
		var b strings.Builder
		b.WriteString(string(runes[:idx]))
		b.WriteRune(v)
		b.WriteString(string(runes[idx+1:]))
		variants = append(variants, b.String())
	}
	return variants
}
