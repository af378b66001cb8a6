package dictionary

import (
	"strings"

	"github.com/japaniel/wakachi/pkg/model"
)

// verbBits is the union of WordType bits that count as "a verb" for the
// purpose of the expression-only-tag fallback below.
const verbBits = model.IchidanVerb | model.GodanVerb | model.KuruVerb |
	model.SuruVerb | model.SpecialSuruVerb

// rowTagTypes refines a handful of short JMDict codes to the specific Godan
// conjugation row they denote, beyond the generic GodanVerb bit that every
// v5*/v4* tag carries (see tagMatchesType). Every deinflection rule already
// ORs its row bit with the generic GodanVerb bit into candidate.Type, so this
// only narrows matches further; it is never required for a tag to match.
var rowTagTypes = map[string]model.WordType{
	"v5u":   model.GodanVerbU,
	"v5k":   model.GodanVerbKu,
	"v5g":   model.GodanVerbGu,
	"v5s":   model.GodanVerbSu,
	"v5t":   model.GodanVerbTsu,
	"v5n":   model.GodanVerbNu,
	"v5b":   model.GodanVerbBu,
	"v5m":   model.GodanVerbMu,
	"v5r":   model.GodanVerbRu,
	"v5r-i": model.GodanVerbRu,
	"v5aru": model.GodanVerbAru,
	"v5k-s": model.GodanVerbAru,
}

// expressionOnlyTags are POS tags that describe a fixed multi-word
// expression rather than any single grammatical class. An entry tagged only
// with these carries no verb/adjective class information of its own, so it
// is treated as satisfying any verb-shaped type query: the expression as a
// whole inflects like whichever verb or adjective it ends in, and the
// deinflection engine has already stripped that inflection by the time the
// dictionary is consulted.
var expressionOnlyTags = map[string]bool{
	"exp":         true,
	"expressions (phrases, clauses, etc.)": true,
}

// tagBits computes the WordType bit(s) a single POS tag denotes, combining
// JMDict's short codes and the long-form English phrases some dictionary
// sources use instead. Matching is by prefix (short codes) or substring
// (English phrases), not exact equality, so compound tags like "v1-s" or
// long descriptive strings like "Ichidan verb (ichidan, ru-verb)" are
// recognized the same as the bare tag or phrase.
func tagBits(lower string) model.WordType {
	var bits model.WordType

	switch {
	case strings.HasPrefix(lower, "v1"):
		bits |= model.IchidanVerb
	case strings.HasPrefix(lower, "v5"), strings.HasPrefix(lower, "v4"):
		bits |= model.GodanVerb
		if t, ok := rowTagTypes[lower]; ok {
			bits |= t
		}
	case strings.HasPrefix(lower, "adj-i"):
		bits |= model.IAdj
	case lower == "vk", strings.HasPrefix(lower, "vk-"):
		bits |= model.KuruVerb
	case lower == "vs-i":
		bits |= model.SuruVerb
	case lower == "vs-s":
		bits |= model.SuruVerb | model.SpecialSuruVerb
	case lower == "vz":
		bits |= model.SpecialSuruVerb
	case lower == "vs":
		bits |= model.NounVS
	}

	if strings.Contains(lower, "ichidan verb") {
		bits |= model.IchidanVerb
	}
	if strings.Contains(lower, "godan verb") {
		bits |= model.GodanVerb
	}
	if strings.Contains(lower, "adjective") {
		bits |= model.IAdj
	}
	if strings.Contains(lower, "kuru verb") {
		bits |= model.KuruVerb
	}
	if strings.Contains(lower, "suru verb") {
		bits |= model.SuruVerb
	}
	if strings.Contains(lower, "noun or participle") && strings.Contains(lower, "suru") {
		bits |= model.NounVS
	}

	return bits
}

// tagMatchesType reports whether a single POS tag denotes a WordType that
// intersects mask.
func tagMatchesType(tag string, mask model.WordType) bool {
	lower := strings.ToLower(strings.TrimSpace(tag))
	bits := tagBits(lower)
	return bits != 0 && mask.Has(bits)
}

// onlyExpressionTags reports whether every tag in tags is an
// expression-only tag (and there is at least one).
func onlyExpressionTags(tags []string) bool {
	if len(tags) == 0 {
		return false
	}
	for _, tag := range tags {
		if !expressionOnlyTags[strings.ToLower(strings.TrimSpace(tag))] {
			return false
		}
	}
	return true
}

// EntryMatchesType reports whether entry has at least one sense whose
// part-of-speech tags denote a WordType intersecting mask. An entry whose
// senses carry only expression tags (exp) is treated as matching any verb
// mask: fixed expressions inflect as whichever verb or adjective they end
// in, and that inflection has already been stripped by deinflection.
func EntryMatchesType(entry *model.WordEntry, mask model.WordType) bool {
	for _, sense := range entry.Senses {
		for _, tag := range sense.POSTags {
			if tagMatchesType(tag, mask) {
				return true
			}
		}
		if mask.Has(verbBits) && onlyExpressionTags(sense.POSTags) {
			return true
		}
	}
	return false
}
