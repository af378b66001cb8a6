package variation

// kyuujitaiToShinjitai maps pre-1946 (kyuujitai) kanji forms to their
// post-1946 (shinjitai) simplified counterparts. Not exhaustive — it covers
// the kyuujitai that still turn up in scanned or reprinted pre-war text.
var kyuujitaiToShinjitai = map[rune]rune{
	'舊': '旧', '體': '体', '國': '国', '學': '学', '發': '発',
	'廣': '広', '關': '関', '應': '応', '氣': '気', '會': '会',
	'經': '経', '藝': '芸', '藏': '蔵', '擔': '担', '單': '単',
	'團': '団', '對': '対', '畫': '画', '壽': '寿', '實': '実',
	'從': '従', '縱': '縦', '獸': '獣', '處': '処', '觸': '触',
	'眞': '真', '萬': '万', '拂': '払', '佛': '仏', '變': '変',
	'辨': '弁', '辯': '弁', '瓣': '弁', '豐': '豊', '賣': '売',
	'拜': '拝', '燈': '灯', '當': '当', '黨': '党',
	'鐵': '鉄', '傳': '伝', '轉': '転', '惡': '悪', '醫': '医',
	'圍': '囲', '爲': '為', '壹': '壱', '榮': '栄', '驛': '駅',
	'橫': '横', '黃': '黄', '溫': '温', '價': '価', '嚴': '厳',
	'驗': '験',
}

// KyuujitaiToShinjitai substitutes every recognised old kanji form in text
// with its modern equivalent. Returns text unchanged (same value) if nothing
// applies.
func KyuujitaiToShinjitai(text string) string {
	changed := false
	runes := []rune(text)
	for i, r := range runes {
		if repl, ok := kyuujitaiToShinjitai[r]; ok {
			runes[i] = repl
			changed = true
		}
	}
	if !changed {
		return text
	}
	return string(runes)
}
