// Package wordsearch implements the greedy longest-match lookup the
// tokenizer drives one position at a time: given a suffix of the input, it
// finds the longest leading prefix that resolves (directly, through
// deinflection, or through a handful of historical spelling variants) to at
// least one dictionary entry.
package wordsearch

import (
	"unicode"

	"github.com/japaniel/wakachi/pkg/deinflect"
	"github.com/japaniel/wakachi/pkg/dictionary"
	"github.com/japaniel/wakachi/pkg/model"
	"github.com/japaniel/wakachi/pkg/variation"
)

// budgetMultiplier bounds the number of dictionary entries Search will
// collect, relative to maxResults, before giving up regardless of how many
// backoff lengths remain.
const budgetMultiplier = 5

// DefaultMaxResults is used whenever a caller passes maxResults <= 0. The
// tokenizer driver passes its own, larger default instead.
const DefaultMaxResults = 7

// Search tries input's longest leading prefix first, shortening by one code
// unit (two, if that would split a palatalized digraph) each time, and
// returns every WordResult found across every prefix length tried. Spelling
// variants (choon expansion, kyuujitai normalization) are tried alongside
// the literal prefix until some prefix length yields a match; from then on
// they are not tried again. The scan stops early once the current prefix is
// nothing but digits/commas/periods, or once the result budget is spent.
func Search(dict dictionary.Dictionary, input string, maxResults int) []model.WordResult {
	runes := []rune(input)
	if len(runes) == 0 {
		return nil
	}
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}

	budget := maxResults * budgetMultiplier
	includeVariants := true

	var results []model.WordResult
	for end := len(runes); end > 0; {
		if isStopCandidate(runes[:end]) {
			break
		}

		candidate := string(runes[:end])

		before := len(results)
		searchOnePrefix(dict, candidate, end, includeVariants, &results, &budget)
		if len(results) > before {
			includeVariants = false
		}

		if budget <= 0 {
			break
		}

		if variation.EndsInYoon(candidate) {
			end -= 2
		} else {
			end--
		}
	}

	return results
}

// searchOnePrefix looks up candidate directly, through every deinflection
// candidate reachable from it, and (if includeVariants) through its
// spelling variants, appending every match to results.
func searchOnePrefix(dict dictionary.Dictionary, candidate string, matchLen int, includeVariants bool, results *[]model.WordResult, budget *int) {
	for _, text := range candidateTexts(candidate, includeVariants) {
		if *budget <= 0 {
			break
		}
		for _, e := range dict.GetWords(text, *budget, text) {
			*results = append(*results, model.WordResult{Entry: e, MatchLen: matchLen})
			*budget--
		}
	}

	for _, c := range deinflect.Deinflect(candidate) {
		if len(c.ReasonChains) == 0 {
			continue // identity form, already covered by the direct lookup above
		}
		if *budget <= 0 {
			break
		}
		for _, e := range dict.GetWords(c.Word, *budget, c.Word) {
			if !dictionary.EntryMatchesType(e, c.Type) {
				continue
			}
			*results = append(*results, model.WordResult{Entry: e, MatchLen: matchLen, ReasonChains: c.ReasonChains})
			*budget--
		}
	}
}

// candidateTexts returns candidate plus, when includeVariants is set, every
// choon/kyuujitai spelling variant of it.
func candidateTexts(candidate string, includeVariants bool) []string {
	if !includeVariants {
		return []string{candidate}
	}
	return append([]string{candidate}, variantsOf(candidate)...)
}

// variantsOf generates every kyuujitai substitution and every repeated
// choon expansion of text. ExpandChoon only resolves the first ー in its
// input, so expand recurses on each variant to resolve any remaining ones.
func variantsOf(text string) []string {
	seen := map[string]bool{text: true}
	var out []string
	add := func(s string) {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}

	if kyuu := variation.KyuujitaiToShinjitai(text); kyuu != text {
		add(kyuu)
	}

	var expand func(s string)
	expand = func(s string) {
		for _, v := range variation.ExpandChoon(s) {
			add(v)
			expand(v)
		}
	}
	expand(text)

	return out
}

// isStopRune reports whether r is a digit or a comma/period in any of their
// half-width, full-width, or ideographic forms. Search ends its backoff once
// the remaining prefix consists of nothing but such runes (isStopCandidate).
func isStopRune(r rune) bool {
	if unicode.IsDigit(r) {
		return true
	}
	switch r {
	case ',', '.', '、', '。', '，', '．':
		return true
	}
	return false
}

// isStopCandidate reports whether every rune in runes is a stop rune, per
// step 1 of the backoff loop: a remaining candidate made entirely of
// digits/commas/periods ends the search rather than being looked up.
func isStopCandidate(runes []rune) bool {
	if len(runes) == 0 {
		return false
	}
	for _, r := range runes {
		if !isStopRune(r) {
			return false
		}
	}
	return true
}
