package deinflect

import "github.com/japaniel/wakachi/pkg/model"

// godanRow describes the five conjugation bases of one Godan consonant row,
// keyed by the kana that ends the dictionary form.
type godanRow struct {
	a    string // mizenkei (negative/passive/causative base)
	i    string // ren'youkei (masu-stem base)
	e    string // kateikei (potential/conditional base)
	o    string // ishikei (volitional base)
	te   string // onbin te-form ending, replaces the dictionary kana
	ta   string // onbin ta-form ending, replaces the dictionary kana
	bit  model.WordType
}

var godanRows = map[string]godanRow{
	"う": {a: "わ", i: "い", e: "え", o: "お", te: "って", ta: "った", bit: model.GodanVerbU},
	"く": {a: "か", i: "き", e: "け", o: "こ", te: "いて", ta: "いた", bit: model.GodanVerbKu},
	"ぐ": {a: "が", i: "ぎ", e: "げ", o: "ご", te: "いで", ta: "いだ", bit: model.GodanVerbGu},
	"す": {a: "さ", i: "し", e: "せ", o: "そ", te: "して", ta: "した", bit: model.GodanVerbSu},
	"つ": {a: "た", i: "ち", e: "て", o: "と", te: "って", ta: "った", bit: model.GodanVerbTsu},
	"ぬ": {a: "な", i: "に", e: "ね", o: "の", te: "んで", ta: "んだ", bit: model.GodanVerbNu},
	"ぶ": {a: "ば", i: "び", e: "べ", o: "ぼ", te: "んで", ta: "んだ", bit: model.GodanVerbBu},
	"む": {a: "ま", i: "み", e: "め", o: "も", te: "んで", ta: "んだ", bit: model.GodanVerbMu},
	"る": {a: "ら", i: "り", e: "れ", o: "ろ", te: "って", ta: "った", bit: model.GodanVerbRu},
}

func godanRules(dictKana string, row godanRow) []Rule {
	toType := model.GodanVerb | row.bit
	rules := []Rule{
		{From: row.a + "ない", To: dictKana, FromType: model.All, ToType: toType, Reasons: []model.Reason{model.Negative}},
		{From: row.a + "なかった", To: dictKana, FromType: model.All, ToType: toType, Reasons: []model.Reason{model.NegativePast}},
		{From: row.a + "ず", To: dictKana, FromType: model.All, ToType: toType, Reasons: []model.Reason{model.Zu}},
		{From: row.a + "ぬ", To: dictKana, FromType: model.All, ToType: toType, Reasons: []model.Reason{model.Nu}},
		{From: row.a + "れる", To: dictKana, FromType: model.All, ToType: toType, Reasons: []model.Reason{model.Passive}},
		{From: row.a + "せる", To: dictKana, FromType: model.All, ToType: toType, Reasons: []model.Reason{model.Causative}},
		{From: row.a + "せられる", To: dictKana, FromType: model.All, ToType: toType, Reasons: []model.Reason{model.CausativePassive}},
		{From: row.e + "る", To: dictKana, FromType: model.All, ToType: toType, Reasons: []model.Reason{model.Potential}},
		{From: row.o + "う", To: dictKana, FromType: model.All, ToType: toType, Reasons: []model.Reason{model.Volitional}},
		{From: row.e + "ば", To: dictKana, FromType: model.All, ToType: toType, Reasons: []model.Reason{model.Ba}},
		{From: row.i + "ます", To: dictKana, FromType: model.All, ToType: toType, Reasons: []model.Reason{model.Polite}},
		{From: row.i + "ました", To: dictKana, FromType: model.All, ToType: toType, Reasons: []model.Reason{model.PolitePast}},
		{From: row.i + "ません", To: dictKana, FromType: model.All, ToType: toType, Reasons: []model.Reason{model.PoliteNegative}},
		{From: row.i + "ませんでした", To: dictKana, FromType: model.All, ToType: toType, Reasons: []model.Reason{model.PoliteNegativePast}},
		{From: row.i + "ましょう", To: dictKana, FromType: model.All, ToType: toType, Reasons: []model.Reason{model.PoliteVolitional}},
		{From: row.i + "たい", To: dictKana, FromType: model.All, ToType: toType, Reasons: []model.Reason{model.Tai}},
		{From: row.i + "たかった", To: dictKana, FromType: model.All, ToType: toType, Reasons: []model.Reason{model.TaiPast}},
		{From: row.i + "すぎる", To: dictKana, FromType: model.All, ToType: toType, Reasons: []model.Reason{model.Sugiru}},
		{From: row.i + "そう", To: dictKana, FromType: model.All, ToType: toType, Reasons: []model.Reason{model.Sou}},
		{From: row.i + "がる", To: dictKana, FromType: model.All, ToType: toType, Reasons: []model.Reason{model.Garu}},
		{From: row.te, To: dictKana, FromType: model.All, ToType: toType, Reasons: []model.Reason{model.Te}},
		{From: row.ta, To: dictKana, FromType: model.All, ToType: toType, Reasons: []model.Reason{model.Past}},
		{From: row.ta + "ら", To: dictKana, FromType: model.All, ToType: toType, Reasons: []model.Reason{model.Tara}},
		{From: row.ta + "り", To: dictKana, FromType: model.All, ToType: toType, Reasons: []model.Reason{model.Tari}},
		{From: row.te + "いる", To: dictKana, FromType: model.All, ToType: toType, Reasons: []model.Reason{model.Continuous}},
		{From: row.te + "いた", To: dictKana, FromType: model.All, ToType: toType, Reasons: []model.Reason{model.ContinuousPast}},
		{From: row.te + "います", To: dictKana, FromType: model.All, ToType: toType, Reasons: []model.Reason{model.Polite, model.Continuous}},
		{From: row.te + "いました", To: dictKana, FromType: model.All, ToType: toType, Reasons: []model.Reason{model.PolitePast, model.Continuous}},
		{From: row.te + "おく", To: dictKana, FromType: model.All, ToType: toType, Reasons: []model.Reason{model.TeOku}},
		{From: row.te + "しまう", To: dictKana, FromType: model.All, ToType: toType, Reasons: []model.Reason{model.TeShimau}},
		{From: row.e, To: dictKana, FromType: model.All, ToType: toType, Reasons: []model.Reason{model.Imperative}},
	}
	return rules
}

func buildGodanRules() []Rule {
	var out []Rule
	for kana, row := range godanRows {
		out = append(out, godanRules(kana, row)...)
	}
	return out
}

// ichidanRules covers verbs whose dictionary form ends in one of the eru/iru
// stems that drop る wholesale under every conjugation (食べる, 見る, ...).
func ichidanRules() []Rule {
	const toType = model.IchidanVerb
	return []Rule{
		{From: "ない", To: "る", FromType: model.All, ToType: toType, Reasons: []model.Reason{model.Negative}},
		{From: "なかった", To: "る", FromType: model.All, ToType: toType, Reasons: []model.Reason{model.NegativePast}},
		{From: "ず", To: "る", FromType: model.All, ToType: toType, Reasons: []model.Reason{model.Zu}},
		{From: "られる", To: "る", FromType: model.All, ToType: toType, Reasons: []model.Reason{model.PotentialOrPassive}},
		{From: "させる", To: "る", FromType: model.All, ToType: toType, Reasons: []model.Reason{model.Causative}},
		{From: "させられる", To: "る", FromType: model.All, ToType: toType, Reasons: []model.Reason{model.CausativePassive}},
		{From: "よう", To: "る", FromType: model.All, ToType: toType, Reasons: []model.Reason{model.Volitional}},
		{From: "れば", To: "る", FromType: model.All, ToType: toType, Reasons: []model.Reason{model.Ba}},
		{From: "ます", To: "る", FromType: model.All, ToType: toType, Reasons: []model.Reason{model.Polite}},
		{From: "ました", To: "る", FromType: model.All, ToType: toType, Reasons: []model.Reason{model.PolitePast}},
		{From: "ません", To: "る", FromType: model.All, ToType: toType, Reasons: []model.Reason{model.PoliteNegative}},
		{From: "ませんでした", To: "る", FromType: model.All, ToType: toType, Reasons: []model.Reason{model.PoliteNegativePast}},
		{From: "ましょう", To: "る", FromType: model.All, ToType: toType, Reasons: []model.Reason{model.PoliteVolitional}},
		{From: "たい", To: "る", FromType: model.All, ToType: toType, Reasons: []model.Reason{model.Tai}},
		{From: "たかった", To: "る", FromType: model.All, ToType: toType, Reasons: []model.Reason{model.TaiPast}},
		{From: "すぎる", To: "る", FromType: model.All, ToType: toType, Reasons: []model.Reason{model.Sugiru}},
		{From: "そう", To: "る", FromType: model.All, ToType: toType, Reasons: []model.Reason{model.Sou}},
		{From: "て", To: "る", FromType: model.All, ToType: toType, Reasons: []model.Reason{model.Te}},
		{From: "た", To: "る", FromType: model.All, ToType: toType, Reasons: []model.Reason{model.Past}},
		{From: "たら", To: "る", FromType: model.All, ToType: toType, Reasons: []model.Reason{model.Tara}},
		{From: "たり", To: "る", FromType: model.All, ToType: toType, Reasons: []model.Reason{model.Tari}},
		{From: "ている", To: "る", FromType: model.All, ToType: toType, Reasons: []model.Reason{model.Continuous}},
		{From: "ていた", To: "る", FromType: model.All, ToType: toType, Reasons: []model.Reason{model.ContinuousPast}},
		{From: "ています", To: "る", FromType: model.All, ToType: toType, Reasons: []model.Reason{model.Polite, model.Continuous}},
		{From: "ておく", To: "る", FromType: model.All, ToType: toType, Reasons: []model.Reason{model.TeOku}},
		{From: "てしまう", To: "る", FromType: model.All, ToType: toType, Reasons: []model.Reason{model.TeShimau}},
		{From: "ろ", To: "る", FromType: model.All, ToType: toType, Reasons: []model.Reason{model.Imperative}},
	}
}

// kuruRules covers the single irregular verb 来る (and its okurigana-free
// kana spelling くる) whose stem vowel shifts between き/く/こ rather than
// following a regular row.
func kuruRules() []Rule {
	const toType = model.KuruVerb
	mk := func(from string, reasons ...model.Reason) Rule {
		return Rule{From: from, To: "くる", FromType: model.All, ToType: toType, Reasons: reasons}
	}
	return []Rule{
		mk("こない", model.Negative),
		mk("こなかった", model.NegativePast),
		mk("こず", model.Zu),
		mk("こられる", model.PotentialOrPassive),
		mk("こさせる", model.Causative),
		mk("こさせられる", model.CausativePassive),
		mk("こよう", model.Volitional),
		mk("これば", model.Ba),
		mk("きます", model.Polite),
		mk("きました", model.PolitePast),
		mk("きません", model.PoliteNegative),
		mk("きませんでした", model.PoliteNegativePast),
		mk("きたい", model.Tai),
		mk("きて", model.Te),
		mk("きた", model.Past),
		mk("きている", model.Continuous),
		mk("きていた", model.ContinuousPast),
		mk("きています", model.Polite, model.Continuous),
		mk("こい", model.Imperative),
	}
}

// suruRules covers する itself and the suru-verb noun pattern (勉強する and
// the like), which the dictionary stores as a noun entry with vs POS tags
// rather than a standalone verb headword.
func suruRules() []Rule {
	const toType = model.SuruVerb | model.NounVS | model.SpecialSuruVerb
	mk := func(from string, to string, reasons ...model.Reason) Rule {
		return Rule{From: from, To: to, FromType: model.All, ToType: toType, Reasons: reasons}
	}
	return []Rule{
		mk("しない", "する", model.Negative),
		mk("しなかった", "する", model.NegativePast),
		mk("せず", "する", model.Zu),
		mk("される", "する", model.PotentialOrPassive),
		mk("させる", "する", model.Causative),
		mk("させられる", "する", model.CausativePassive),
		mk("しよう", "する", model.Volitional),
		mk("すれば", "する", model.Ba),
		mk("します", "する", model.Polite),
		mk("しました", "する", model.PolitePast),
		mk("しません", "する", model.PoliteNegative),
		mk("しませんでした", "する", model.PoliteNegativePast),
		mk("したい", "する", model.Tai),
		mk("して", "する", model.Te),
		mk("した", "する", model.Past),
		mk("している", "する", model.Continuous),
		mk("していた", "する", model.ContinuousPast),
		mk("しています", "する", model.Polite, model.Continuous),
		mk("しろ", "する", model.Imperative),
		mk("せよ", "する", model.Imperative),
	}
}

// iAdjectiveRules covers the い-adjective predicate inflections (高い,
// 高かった, 高くない, ...).
func iAdjectiveRules() []Rule {
	const toType = model.IAdj
	mk := func(from string, reasons ...model.Reason) Rule {
		return Rule{From: from, To: "い", FromType: model.All, ToType: toType, Reasons: reasons}
	}
	return []Rule{
		mk("かった", model.Past),
		mk("くない", model.Negative),
		mk("くなかった", model.NegativePast),
		mk("くて", model.AdjectiveTe),
		mk("く", model.AdjectiveAdv),
		mk("ければ", model.Ba),
		mk("かったら", model.Tara),
		mk("さ", model.Noun),
		mk("すぎる", model.Sugiru),
		mk("そう", model.Sou),
		mk("かろう", model.Volitional),
		mk("くありません", model.PoliteNegative),
		mk("いです", model.Polite),
		mk("かったです", model.PolitePast),
	}
}

// masuStemRules are the generic, verb-class-agnostic stem extractions that
// feed the engine's stem-forwarding step. They apply to any candidate type
// (fromType model.All) and produce an intermediate MasuStem/TaTeStem/
// IrrealisStem typed candidate that the engine then tries to close back
// into a full Ichidan or Kuru dictionary form by appending る.
func masuStemRules() []Rule {
	return []Rule{
		{From: "ます", To: "", FromType: model.All, ToType: model.MasuStem, Reasons: []model.Reason{model.Polite}},
		{From: "ました", To: "", FromType: model.All, ToType: model.MasuStem, Reasons: []model.Reason{model.PolitePast}},
		{From: "ません", To: "", FromType: model.All, ToType: model.MasuStem, Reasons: []model.Reason{model.PoliteNegative}},
		{From: "ましょう", To: "", FromType: model.All, ToType: model.MasuStem, Reasons: []model.Reason{model.PoliteVolitional}},
		{From: "ませんでした", To: "", FromType: model.All, ToType: model.MasuStem, Reasons: []model.Reason{model.PoliteNegativePast}},
		{From: "て", To: "", FromType: model.All, ToType: model.TaTeStem, Reasons: []model.Reason{model.Te}},
		{From: "た", To: "", FromType: model.All, ToType: model.TaTeStem, Reasons: []model.Reason{model.Past}},
		{From: "ない", To: "", FromType: model.All, ToType: model.IrrealisStem, Reasons: []model.Reason{model.Negative}},
		{From: "なかった", To: "", FromType: model.All, ToType: model.IrrealisStem, Reasons: []model.Reason{model.NegativePast}},
	}
}

// Rules is the complete, immutable rule table the engine searches. Built
// once at package init from the per-class generators above.
var Rules = buildRuleTable()

// validateRules panics on a malformed rule table: an empty From, a zero
// type mask, or a rule with no recorded reason. The table is static, so a
// failure here is a programming error, not a runtime condition callers can
// recover from.
func validateRules(rules []Rule) {
	const stemBits = model.MasuStem | model.TaTeStem | model.IrrealisStem | model.DaDeStem
	for _, r := range rules {
		if r.From == "" {
			panic("deinflect: rule table contains a rule with an empty From")
		}
		if r.FromType == 0 {
			panic("deinflect: rule " + r.From + " has a zero FromType")
		}
		if r.ToType == 0 {
			panic("deinflect: rule " + r.From + " has a zero ToType")
		}
		if !r.ToType.IsTerminal() && !r.ToType.Has(stemBits) {
			panic("deinflect: rule " + r.From + " has a ToType that is neither terminal nor a stem marker")
		}
		if len(r.Reasons) == 0 {
			panic("deinflect: rule " + r.From + " records no reasons")
		}
	}
}

func init() {
	validateRules(Rules)
}

func buildRuleTable() []Rule {
	var all []Rule
	all = append(all, buildGodanRules()...)
	all = append(all, ichidanRules()...)
	all = append(all, kuruRules()...)
	all = append(all, suruRules()...)
	all = append(all, iAdjectiveRules()...)
	all = append(all, masuStemRules()...)
	return all
}
