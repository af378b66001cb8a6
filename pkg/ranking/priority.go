// Package ranking orders the WordResults a word-search pass returns, so the
// tokenizer can pick the single best headword for a matched span.
package ranking

import (
	"sort"
	"strconv"
	"strings"

	"github.com/japaniel/wakachi/pkg/model"
)

// tagScore maps a priority marker (as it appears in KanjiReading/KanaReading
// Priority) to its weight. ichi1/news1/spec1/gai1 mark the headword as
// "common" by different corpora; the *2 variants mark a secondary, less
// common sense of that marker and are scored lower.
func tagScore(tag string) (score float64, ok bool) {
	switch tag {
	case "ichi1", "i1":
		return 50, true
	case "ichi2", "i2":
		return 25, true
	case "news1", "n1":
		return 40, true
	case "news2", "n2":
		return 20, true
	case "spec1", "s1":
		return 32, true
	case "spec2", "s2":
		return 16, true
	case "gai1", "g1":
		return 30, true
	case "gai2", "g2":
		return 15, true
	}
	if strings.HasPrefix(tag, "nf") {
		n, err := strconv.Atoi(tag[2:])
		if err != nil {
			return 0, false
		}
		score := 48 - float64(n)/2
		if score < 0 {
			score = 0
		}
		if score > 48 {
			score = 48
		}
		return score, true
	}
	return 0, false
}

// PriorityScore scores each matched reading (MatchRange set) on entry from
// its own priority markers: the top tag score, plus each remaining tag
// score's contribution shrinking by a factor of ten per rank, so no
// combination of minor tags ever outweighs one clearly dominant tag. The
// result is the highest such score over the matched readings, or 0 when
// none of them carries a priority marker.
func PriorityScore(entry *model.WordEntry) float64 {
	best := 0.0
	score := func(priorities []string, matched bool) {
		if !matched {
			return
		}
		var scores []float64
		for _, tag := range priorities {
			if s, ok := tagScore(tag); ok {
				scores = append(scores, s)
			}
		}
		if len(scores) == 0 {
			return
		}

		sort.Sort(sort.Reverse(sort.Float64Slice(scores)))

		total := scores[0]
		divisor := 10.0
		for _, s := range scores[1:] {
			total += s / divisor
			divisor *= 10
		}
		if total > best {
			best = total
		}
	}

	for _, k := range entry.KanjiReadings {
		score(k.Priority, k.MatchRange != nil)
	}
	for _, k := range entry.KanaReadings {
		score(k.Priority, k.MatchRange != nil)
	}

	return best
}
