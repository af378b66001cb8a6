package deinflect

import "github.com/japaniel/wakachi/pkg/model"

const maxSuffixLen = 7

// candidateKey identifies a live candidate by its surface text and type: the
// same word can be reachable at two different types (e.g. as a SuruVerb stem
// and, separately, as a plain noun), and those are distinct candidates.
type candidateKey struct {
	word string
	typ  model.WordType
}

// Deinflect returns every dictionary-form candidate reachable from word by
// zero or more rule applications, each annotated with the chain(s) of
// grammatical reasons that justify the derivation. The identity candidate
// (word itself, with no reason chain) is always present.
func Deinflect(word string) []model.CandidateWord {
	candidates := []model.CandidateWord{{Word: word, Type: model.All}}
	index := map[candidateKey]int{{word, model.All}: 0}

	limit := maxSuffixLen
	if maxRuleLen < limit {
		limit = maxRuleLen
	}

	for i := 0; i < len(candidates); i++ {
		cur := candidates[i]

		if isPureMasuStem(cur) {
			continue
		}

		if cur.Type.Has(model.MasuStem | model.TaTeStem | model.IrrealisStem) {
			forwardStem(&candidates, index, cur)
		}

		applyEndingRules(&candidates, index, cur, limit)
	}

	out := make([]model.CandidateWord, 0, len(candidates))
	for _, c := range candidates {
		if c.Type.Has(model.All) {
			out = append(out, c)
		}
	}
	return out
}

// isPureMasuStem reports whether cur is an Ichidan candidate whose only
// reason chain is [MasuStem], as stem forwarding produces from a stem with
// no recorded reasons. Such a candidate carries no inflection of its own
// and is not expanded any further.
func isPureMasuStem(cur model.CandidateWord) bool {
	if !cur.Type.Has(model.IchidanVerb) {
		return false
	}
	return len(cur.ReasonChains) == 1 && len(cur.ReasonChains[0]) == 1 && cur.ReasonChains[0][0] == model.MasuStem
}

// forwardStem closes an Ichidan/Kuru-shaped masu-, te- or irrealis-stem back
// into a dictionary form by appending る. Suppressed when the stem is an
// irrealis stem whose nearest reason is already Passive, Causative or
// CausativePassive: appending る there would double-count a verb ending
// already captured by a direct causative/passive rule.
func forwardStem(candidates *[]model.CandidateWord, index map[candidateKey]int, cur model.CandidateWord) {
	if cur.Type.Has(model.IrrealisStem) && len(cur.ReasonChains) > 0 && len(cur.ReasonChains[0]) > 0 {
		switch cur.ReasonChains[0][0] {
		case model.Passive, model.Causative, model.CausativePassive:
			return
		}
	}

	chains := cur.ReasonChains.CloneAll()
	if len(chains) == 0 {
		chains = model.ReasonChains{model.ReasonChain{model.MasuStem}}
	}

	word := cur.Word + "る"
	toType := model.IchidanVerb | model.KuruVerb
	key := candidateKey{word, toType}

	if pos, exists := index[key]; exists {
		existing := &(*candidates)[pos]
		existing.ReasonChains = append(chains, existing.ReasonChains...)
		return
	}

	index[key] = len(*candidates)
	*candidates = append(*candidates, model.CandidateWord{Word: word, Type: toType, ReasonChains: chains})
}

// applyEndingRules tries every suffix length from min(limit, len(cur.Word))
// down to 1, looking up exact-match rules in ruleIndex and applying each
// whose FromType intersects cur.Type. Longer suffixes are tried first so
// that a same-word/different-type collision in applyRule is resolved in
// favor of the longer (more specific) match.
func applyEndingRules(candidates *[]model.CandidateWord, index map[candidateKey]int, cur model.CandidateWord, limit int) {
	runes := []rune(cur.Word)
	maxLen := limit
	if len(runes) < maxLen {
		maxLen = len(runes)
	}

	for l := maxLen; l >= 1; l-- {
		ending := string(runes[len(runes)-l:])
		rules, ok := ruleIndex[ending]
		if !ok {
			continue
		}
		stem := string(runes[:len(runes)-l])
		for _, rule := range rules {
			if !cur.Type.Has(rule.FromType) {
				continue
			}
			applyRule(candidates, index, cur, stem+rule.To, rule)
		}
	}
}

// applyRule folds one rule application into candidates: merging into an
// existing same-type candidate for newWord if one exists, or composing a new
// reason chain and appending a fresh candidate otherwise.
func applyRule(candidates *[]model.CandidateWord, index map[candidateKey]int, cur model.CandidateWord, newWord string, rule Rule) {
	key := candidateKey{newWord, rule.ToType}
	if pos, exists := index[key]; exists {
		existing := &(*candidates)[pos]
		ruleChain := append(model.ReasonChain(nil), rule.Reasons...)
		existing.ReasonChains = append(model.ReasonChains{ruleChain}, existing.ReasonChains...)
		return
	}

	chains := cur.ReasonChains.CloneAll()
	switch {
	case len(chains) == 0:
		if len(rule.Reasons) > 0 {
			chains = model.ReasonChains{append(model.ReasonChain(nil), rule.Reasons...)}
		}
	case len(rule.Reasons) > 0 && rule.Reasons[0] == model.Causative &&
		len(chains[0]) > 0 && chains[0][0] == model.PotentialOrPassive:
		chains[0][0] = model.CausativePassive
	case len(rule.Reasons) > 0 && rule.Reasons[0] == model.MasuStem:
		// masu-stem implicit: the candidate already carries a real chain,
		// so the bare stem extraction contributes nothing further.
	default:
		chains[0] = chains[0].Prepend(rule.Reasons...)
	}

	if hasRepeatedReason(chains) {
		return
	}

	index[key] = len(*candidates)
	*candidates = append(*candidates, model.CandidateWord{Word: newWord, Type: rule.ToType, ReasonChains: chains})
}

func hasRepeatedReason(chains model.ReasonChains) bool {
	for _, c := range chains {
		seen := make(map[model.Reason]bool, len(c))
		for _, r := range c {
			if seen[r] {
				return true
			}
			seen[r] = true
		}
	}
	return false
}
