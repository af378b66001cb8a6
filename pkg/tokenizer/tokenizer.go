// Package tokenizer drives the word-search loop across an entire input,
// emitting a left-to-right sequence of Tokens with positions reported in
// the original, un-normalized text's UTF-16 code units.
package tokenizer

import (
	"github.com/japaniel/wakachi/pkg/dictionary"
	"github.com/japaniel/wakachi/pkg/model"
	"github.com/japaniel/wakachi/pkg/normalize"
	"github.com/japaniel/wakachi/pkg/ranking"
	"github.com/japaniel/wakachi/pkg/wordsearch"
)

// DefaultMaxResults is the candidate budget Tokenize passes to word search
// when the caller does not specify one.
const DefaultMaxResults = 12

// Tokenize normalizes text, then repeatedly searches the dictionary from
// the current position, advancing by the best result's match length (or by
// a single character on a dictionary miss: one UTF-16 code unit, or two for
// a character outside the Basic Multilingual Plane) until the input is
// consumed.
// dict must be safe for concurrent use if Tokenize itself is called
// concurrently against it.
func Tokenize(text string, dict dictionary.Dictionary, maxResults int) []model.Token {
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}

	norm, offsetMap := normalize.Normalize(text, normalize.DefaultOptions())
	normRunes := []rune(norm)

	var tokens []model.Token
	p := 0  // position in normalized UTF-16 code units
	ri := 0 // position in normRunes corresponding to p

	for ri < len(normRunes) {
		suffix := string(normRunes[ri:])
		results := wordsearch.Search(dict, suffix, maxResults)
		best := ranking.Best(results)

		matchRunes := 1
		if best != nil && best.MatchLen > 0 {
			matchRunes = best.MatchLen
		}
		if ri+matchRunes > len(normRunes) {
			matchRunes = len(normRunes) - ri
		}

		matchUnits := normalize.UTF16Len(string(normRunes[ri : ri+matchRunes]))

		origStart := offsetMap[p]
		origEnd := offsetMap[p+matchUnits]

		tok := model.Token{
			Text:  normalize.SliceUTF16(text, origStart, origEnd),
			Start: origStart,
			End:   origEnd,
		}
		if best != nil {
			tok.DictionaryEntry = best.Entry
			tok.DeinflectionReasons = best.ReasonChains
		}
		tokens = append(tokens, tok)

		p += matchUnits
		ri += matchRunes
	}

	return tokens
}
