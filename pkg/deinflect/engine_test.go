package deinflect

import (
	"testing"

	"github.com/japaniel/wakachi/pkg/model"
)

func findCandidate(candidates []model.CandidateWord, word string) *model.CandidateWord {
	for i := range candidates {
		if candidates[i].Word == word {
			return &candidates[i]
		}
	}
	return nil
}

func containsChain(chains model.ReasonChains, want model.ReasonChain) bool {
	for _, c := range chains {
		if len(c) != len(want) {
			continue
		}
		match := true
		for i := range c {
			if c[i] != want[i] {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}

func TestDeinflectAlwaysContainsIdentity(t *testing.T) {
	for _, word := range []string{"食べる", "読んでいます", "パーク", "です"} {
		candidates := Deinflect(word)
		id := findCandidate(candidates, word)
		if id == nil {
			t.Fatalf("Deinflect(%q) missing identity candidate", word)
		}
		if len(id.ReasonChains) != 0 {
			t.Errorf("Deinflect(%q) identity candidate has non-empty chains: %v", word, id.ReasonChains)
		}
	}
}

func TestDeinflectNoRepeatedReasonInAnyChain(t *testing.T) {
	words := []string{"食べました", "食べさせられませんでした", "読んでいます", "高くなかった"}
	for _, word := range words {
		for _, c := range Deinflect(word) {
			for _, chain := range c.ReasonChains {
				seen := make(map[model.Reason]bool)
				for _, r := range chain {
					if seen[r] {
						t.Errorf("Deinflect(%q): candidate %q has repeated reason %v in chain %v", word, c.Word, r, chain)
					}
					seen[r] = true
				}
			}
		}
	}
}

func TestDeinflectPolitePast(t *testing.T) {
	candidates := Deinflect("食べました")
	got := findCandidate(candidates, "食べる")
	if got == nil {
		t.Fatalf("Deinflect(食べました) did not produce 食べる; got %v", candidates)
	}
	if !got.Type.Has(model.IchidanVerb) {
		t.Errorf("食べる candidate has type %v, want IchidanVerb set", got.Type)
	}
	if !containsChain(got.ReasonChains, model.ReasonChain{model.PolitePast}) {
		t.Errorf("食べる candidate chains %v do not contain [PolitePast]", got.ReasonChains)
	}
}

func TestDeinflectCausativePassiveWithPoliteNegativePast(t *testing.T) {
	candidates := Deinflect("食べさせられませんでした")
	got := findCandidate(candidates, "食べる")
	if got == nil {
		t.Fatalf("Deinflect(食べさせられませんでした) did not produce 食べる; got %v", candidates)
	}
	if !containsChain(got.ReasonChains, model.ReasonChain{model.CausativePassive, model.PoliteNegativePast}) {
		t.Errorf("食べる candidate chains %v do not contain [CausativePassive PoliteNegativePast]", got.ReasonChains)
	}
}

func TestDeinflectGodanTeIruPolite(t *testing.T) {
	candidates := Deinflect("読んでいます")
	got := findCandidate(candidates, "読む")
	if got == nil {
		t.Fatalf("Deinflect(読んでいます) did not produce 読む; got %v", candidates)
	}
	if !got.Type.Has(model.GodanVerb) {
		t.Errorf("読む candidate has type %v, want GodanVerb set", got.Type)
	}
	if !containsChain(got.ReasonChains, model.ReasonChain{model.Polite, model.Continuous}) {
		t.Errorf("読む candidate chains %v do not contain [Polite Continuous]", got.ReasonChains)
	}
}

func TestDeinflectIAdjectivePast(t *testing.T) {
	candidates := Deinflect("高くなかった")
	got := findCandidate(candidates, "高い")
	if got == nil {
		t.Fatalf("Deinflect(高くなかった) did not produce 高い; got %v", candidates)
	}
	if !got.Type.Has(model.IAdj) {
		t.Errorf("高い candidate has type %v, want IAdj set", got.Type)
	}
	if !containsChain(got.ReasonChains, model.ReasonChain{model.NegativePast}) {
		t.Errorf("高い candidate chains %v do not contain [NegativePast]", got.ReasonChains)
	}
}

func TestDeinflectTerminalOnly(t *testing.T) {
	for _, c := range Deinflect("食べました") {
		if !c.Type.IsTerminal() {
			t.Errorf("candidate %q leaked a non-terminal type %v into the result", c.Word, c.Type)
		}
	}
}

// TestApplyRuleFallsThroughOnTypeMismatch exercises spec.md:112's explicit
// requirement: when a rule produces a word already present in the index
// under a different type, the candidate is appended separately rather than
// discarded.
func TestApplyRuleFallsThroughOnTypeMismatch(t *testing.T) {
	root := model.CandidateWord{Word: "root", Type: model.All}
	candidates := []model.CandidateWord{root}
	index := map[candidateKey]int{{"root", model.All}: 0}

	ichidan := Rule{From: "x", To: "y", FromType: model.All, ToType: model.IchidanVerb, Reasons: []model.Reason{model.Polite}}
	godan := Rule{From: "x", To: "y", FromType: model.All, ToType: model.GodanVerb, Reasons: []model.Reason{model.Past}}

	applyRule(&candidates, index, root, "newword", ichidan)
	applyRule(&candidates, index, root, "newword", godan)

	var found []model.CandidateWord
	for _, c := range candidates {
		if c.Word == "newword" {
			found = append(found, c)
		}
	}
	if len(found) != 2 {
		t.Fatalf("expected 2 distinct-type candidates for %q, got %d: %v", "newword", len(found), found)
	}
	if found[0].Type == found[1].Type {
		t.Errorf("expected the two candidates to carry different types, both are %v", found[0].Type)
	}
}

// TestApplyRuleMergesSameTypeCollision confirms the merge branch (same word,
// same type) still prepends a new reason chain instead of appending a
// duplicate candidate.
func TestApplyRuleMergesSameTypeCollision(t *testing.T) {
	root := model.CandidateWord{Word: "root", Type: model.All}
	candidates := []model.CandidateWord{root}
	index := map[candidateKey]int{{"root", model.All}: 0}

	rule := Rule{From: "x", To: "y", FromType: model.All, ToType: model.IchidanVerb, Reasons: []model.Reason{model.Polite}}

	applyRule(&candidates, index, root, "newword", rule)
	applyRule(&candidates, index, root, "newword", rule)

	var found *model.CandidateWord
	count := 0
	for i := range candidates {
		if candidates[i].Word == "newword" {
			count++
			found = &candidates[i]
		}
	}
	if count != 1 {
		t.Fatalf("expected exactly 1 candidate for repeated same-type rule application, got %d", count)
	}
	if len(found.ReasonChains) != 2 {
		t.Errorf("expected the merge to produce 2 reason chains, got %d: %v", len(found.ReasonChains), found.ReasonChains)
	}
}

// TestApplyEndingRulesTriesLongestSuffixFirst confirms suffix lengths are
// scanned from longest to shortest, per spec.md:106.
func TestApplyEndingRulesTriesLongestSuffixFirst(t *testing.T) {
	origIndex, origMax := ruleIndex, maxRuleLen
	defer func() { ruleIndex, maxRuleLen = origIndex, origMax }()

	ruleIndex = map[string][]Rule{
		"ab": {{From: "ab", To: "long", FromType: model.All, ToType: model.IchidanVerb, Reasons: []model.Reason{model.Polite}}},
		"b":  {{From: "b", To: "short", FromType: model.All, ToType: model.GodanVerb, Reasons: []model.Reason{model.Past}}},
	}
	maxRuleLen = 2

	cur := model.CandidateWord{Word: "xab", Type: model.All}
	candidates := []model.CandidateWord{cur}
	index := map[candidateKey]int{{"xab", model.All}: 0}

	applyEndingRules(&candidates, index, cur, maxRuleLen)

	var order []string
	for _, c := range candidates[1:] {
		order = append(order, c.Word)
	}
	want := []string{"xlong", "xashort"}
	if len(order) != len(want) {
		t.Fatalf("expected candidates %v, got %v", want, order)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("candidate %d = %q, want %q (expected longest suffix \"ab\" tried before shorter suffix \"b\")", i, order[i], want[i])
		}
	}
}
