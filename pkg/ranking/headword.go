package ranking

import "github.com/japaniel/wakachi/pkg/model"

func hasInfoTag(info []string, tags ...string) bool {
	for _, i := range info {
		for _, t := range tags {
			if i == t {
				return true
			}
		}
	}
	return false
}

// HeadwordType classifies entry as 1 or 2 for the sorter: no kana reading
// matched, no kanji readings at all, every kanji reading marked rare, the
// entry being usually written in kana, or the matched kana reading being
// search-only-without-kanji all yield 1; an obscure matched kana reading
// (ok/rk/sk/ik) or the ordinary case yield 2.
func HeadwordType(entry *model.WordEntry) int {
	matchedKana := matchedKanaReading(entry)

	if matchedKana == nil {
		return 1
	}

	if hasInfoTag(matchedKana.Info, "ok", "rk", "sk", "ik") {
		return 2
	}

	if len(entry.KanjiReadings) == 0 {
		return 1
	}

	allKanjiRare := true
	for _, k := range entry.KanjiReadings {
		if !hasInfoTag(k.Info, "rK", "sK", "iK") {
			allKanjiRare = false
			break
		}
	}
	if allKanjiRare {
		return 1
	}

	if usuallyKana(entry) {
		return 1
	}

	if matchedKana.NoKanji {
		return 1
	}

	return 2
}

func matchedKanaReading(entry *model.WordEntry) *model.KanaReading {
	for i := range entry.KanaReadings {
		if entry.KanaReadings[i].MatchRange != nil {
			return &entry.KanaReadings[i]
		}
	}
	return nil
}

// usuallyKana reports whether at least half of the entry's English-language
// senses carry the "usually kana" (uk) misc tag.
func usuallyKana(entry *model.WordEntry) bool {
	total, uk := 0, 0
	for _, s := range entry.Senses {
		isEnglish := len(s.Glosses) == 0
		for _, g := range s.Glosses {
			if g.Lang == "" || g.Lang == "eng" {
				isEnglish = true
				break
			}
		}
		if !isEnglish {
			continue
		}
		total++
		for _, m := range s.Misc {
			if m == "uk" {
				uk++
				break
			}
		}
	}
	if total == 0 {
		return false
	}
	return float64(uk)*2 >= float64(total)
}
